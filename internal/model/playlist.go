package model

import (
	"errors"
	"strings"
)

var (
	// ErrAlreadyAdded is returned by Add when the video is already in the playlist.
	ErrAlreadyAdded = errors.New("video already added")

	// ErrNotInPlaylist is returned by Remove when the video is not in the playlist.
	ErrNotInPlaylist = errors.New("video is not in playlist")
)

// Playlist is a named, ordered collection of videos.
//
// A video appears at most once in a playlist. The playlist keeps references
// to catalog videos, so flag changes made after a video was added are
// visible when the playlist is listed.
//
// Example:
//
//	p := NewPlaylist("My Cool Playlist")
//	_ = p.Add(video)
//	p.Key() // "my cool playlist"
type Playlist struct {
	// Name is the display name, as typed on creation.
	Name string

	videos []*Video
}

// NewPlaylist creates an empty playlist.
func NewPlaylist(name string) *Playlist {
	return &Playlist{Name: name}
}

// Key returns the case-insensitive lookup key for the playlist name.
func (p *Playlist) Key() string {
	return NameKey(p.Name)
}

// NameKey normalizes a playlist name for case-insensitive comparison.
func NameKey(name string) string {
	return strings.ToLower(name)
}

// Videos returns a copy of the playlist videos in insertion order.
func (p *Playlist) Videos() []*Video {
	return append([]*Video(nil), p.videos...)
}

// Len returns the number of videos in the playlist.
func (p *Playlist) Len() int {
	return len(p.videos)
}

// Contains reports whether the video with the given id is in the playlist.
func (p *Playlist) Contains(id string) bool {
	return p.indexOf(id) >= 0
}

// Add appends a video to the end of the playlist.
func (p *Playlist) Add(v *Video) error {
	if p.Contains(v.ID) {
		return ErrAlreadyAdded
	}
	p.videos = append(p.videos, v)
	return nil
}

// Remove deletes the video with the given id, keeping the order of the rest.
func (p *Playlist) Remove(id string) error {
	i := p.indexOf(id)
	if i < 0 {
		return ErrNotInPlaylist
	}
	p.videos = append(p.videos[:i], p.videos[i+1:]...)
	return nil
}

// Clear removes every video from the playlist.
func (p *Playlist) Clear() {
	p.videos = nil
}

func (p *Playlist) indexOf(id string) int {
	for i, v := range p.videos {
		if v.ID == id {
			return i
		}
	}
	return -1
}
