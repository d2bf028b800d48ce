package player

import (
	"errors"
	"sort"

	"github.com/handiism/video-player/internal/model"
)

// CreatePlaylist creates an empty playlist. Names are unique regardless of case.
func (c *Controller) CreatePlaylist(name string) {
	p := model.NewPlaylist(name)
	if _, ok := c.playlists[p.Key()]; ok {
		c.warn("Cannot create playlist: A playlist with the same name already exists")
		return
	}
	c.playlists[p.Key()] = p
	c.log.Debug().Str("playlist", name).Msg("playlist created")
	c.success("Successfully created new playlist: %s", name)
}

// AddToPlaylist appends a video to a playlist.
func (c *Controller) AddToPlaylist(name, id string) {
	p, ok := c.Playlist(name)
	if !ok {
		c.warn("Cannot add video to %s: Playlist does not exist", name)
		return
	}
	v, ok := c.catalog.Video(id)
	if !ok {
		c.warn("Cannot add video to %s: Video does not exist", name)
		return
	}
	if p.Contains(v.ID) {
		c.warn("Cannot add video to %s: Video already added", name)
		return
	}
	if v.Flagged {
		c.warn("Cannot add video to %s: Video is currently flagged (reason: %s)", name, v.FlagReason)
		return
	}
	if err := p.Add(v); err != nil {
		c.warn("Cannot add video to %s: %s", name, err)
		return
	}
	c.log.Debug().Str("playlist", p.Name).Str("video", v.ID).Msg("video added")
	c.success("Added video to %s: %s", name, v.Title)
}

// RemoveFromPlaylist removes a video from a playlist.
func (c *Controller) RemoveFromPlaylist(name, id string) {
	v, ok := c.catalog.Video(id)
	if !ok {
		c.warn("Cannot remove video from %s: Video does not exist", name)
		return
	}
	p, ok := c.Playlist(name)
	if !ok {
		c.warn("Cannot remove video from %s: Playlist does not exist", name)
		return
	}
	if err := p.Remove(v.ID); err != nil {
		if errors.Is(err, model.ErrNotInPlaylist) {
			c.warn("Cannot remove video from %s: Video is not in playlist", name)
			return
		}
		c.warn("Cannot remove video from %s: %s", name, err)
		return
	}
	c.log.Debug().Str("playlist", p.Name).Str("video", v.ID).Msg("video removed")
	c.success("Removed video from %s: %s", name, v.Title)
}

// ClearPlaylist removes every video from a playlist but keeps the playlist.
func (c *Controller) ClearPlaylist(name string) {
	p, ok := c.Playlist(name)
	if !ok {
		c.warn("Cannot clear playlist %s: Playlist does not exist", name)
		return
	}
	p.Clear()
	c.log.Debug().Str("playlist", p.Name).Msg("playlist cleared")
	c.success("Successfully removed all videos from %s", name)
}

// DeletePlaylist removes a playlist. The name is matched case-insensitively,
// like every other playlist lookup.
func (c *Controller) DeletePlaylist(name string) {
	key := model.NameKey(name)
	if _, ok := c.playlists[key]; !ok {
		c.warn("Cannot delete playlist %s: Playlist does not exist", name)
		return
	}
	delete(c.playlists, key)
	c.log.Debug().Str("playlist", name).Msg("playlist deleted")
	c.success("Deleted playlist: %s", name)
}

// ShowAllPlaylists lists playlist display names in case-sensitive order.
func (c *Controller) ShowAllPlaylists() {
	names := c.PlaylistNames()
	if len(names) == 0 {
		c.info("No playlists exist yet")
		return
	}
	c.info("Showing all playlists:")
	for _, name := range names {
		c.info("%s", name)
	}
}

// ShowPlaylist lists the videos of a playlist in insertion order.
func (c *Controller) ShowPlaylist(name string) {
	p, ok := c.Playlist(name)
	if !ok {
		c.warn("Cannot show playlist %s: Playlist does not exist", name)
		return
	}
	c.info("Showing playlist: %s", name)
	if p.Len() == 0 {
		c.info("No videos here yet")
		return
	}
	for _, v := range p.Videos() {
		c.info("%s", v)
	}
}

// PlaylistNames returns the display names of all playlists, sorted
// byte-wise (upper case before lower case).
func (c *Controller) PlaylistNames() []string {
	names := make([]string, 0, len(c.playlists))
	for _, p := range c.playlists {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
