package model

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFlagReason is recorded when a video is flagged without a reason.
const DefaultFlagReason = "Not supplied"

var (
	// ErrAlreadyFlagged is returned by Flag when the video is already flagged.
	ErrAlreadyFlagged = errors.New("video is already flagged")

	// ErrNotFlagged is returned by Unflag when the video is not flagged.
	ErrNotFlagged = errors.New("video is not flagged")
)

// Video represents a single entry of the video catalog.
//
// ID, Title and Tags are fixed when the catalog is loaded. The flag state is
// the only mutable part and changes through Flag and Unflag.
//
// Example:
//
//	v := NewVideo("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"})
//	fmt.Println(v) // Amazing Cats (amazing_cats_video_id) [#cat #animal]
type Video struct {
	// ID uniquely identifies the video within the catalog.
	ID string

	// Title is the human readable video title.
	Title string

	// Tags holds the video tags in catalog order, e.g. "#cat".
	Tags []string

	// Flagged marks the video as hidden and unplayable.
	Flagged bool

	// FlagReason explains why the video was flagged.
	// Empty when the video is not flagged.
	FlagReason string
}

// NewVideo creates an unflagged Video.
func NewVideo(id, title string, tags []string) *Video {
	return &Video{
		ID:    id,
		Title: title,
		Tags:  append([]string(nil), tags...),
	}
}

// Flag marks the video as flagged.
//
// An empty reason is replaced with DefaultFlagReason. Returns
// ErrAlreadyFlagged without touching the current reason if the video is
// already flagged.
func (v *Video) Flag(reason string) error {
	if v.Flagged {
		return ErrAlreadyFlagged
	}
	if reason == "" {
		reason = DefaultFlagReason
	}
	v.Flagged = true
	v.FlagReason = reason
	return nil
}

// Unflag clears the flag and its reason.
func (v *Video) Unflag() error {
	if !v.Flagged {
		return ErrNotFlagged
	}
	v.Flagged = false
	v.FlagReason = ""
	return nil
}

// HasTag reports whether tag is one of the video tags (exact match).
func (v *Video) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Summary formats the video with at most its first two tags:
//
//	Amazing Cats (amazing_cats_video_id) [#cat #animal]
//
// It is used for the currently playing video and for search results.
func (v *Video) Summary() string {
	tags := v.Tags
	if len(tags) > 2 {
		tags = tags[:2]
	}
	return formatVideo(v.Title, v.ID, tags)
}

// String formats the video with all of its tags, followed by the flag
// annotation when the video is flagged:
//
//	Amazing Cats (amazing_cats_video_id) [#cat #animal] - FLAGGED (reason: dont_like_cats)
func (v *Video) String() string {
	line := formatVideo(v.Title, v.ID, v.Tags)
	if v.Flagged {
		line += fmt.Sprintf(" - FLAGGED (reason: %s)", v.FlagReason)
	}
	return line
}

func formatVideo(title, id string, tags []string) string {
	return fmt.Sprintf("%s (%s) [%s]", title, id, strings.Join(tags, " "))
}
