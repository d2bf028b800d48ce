package player

import (
	"sort"

	"github.com/handiism/video-player/internal/model"
)

// NumberOfVideos reports the size of the catalog.
func (c *Controller) NumberOfVideos() {
	c.info("%d videos in the library", len(c.catalog.Videos()))
}

// ShowAllVideos lists every catalog video sorted by title.
// Flagged videos are listed with their flag reason.
func (c *Controller) ShowAllVideos() {
	c.info("Here's a list of all available videos:")
	for _, v := range c.sortedVideos() {
		c.info("%s", v)
	}
}

// Play starts the video with the given id, stopping the current one first.
func (c *Controller) Play(id string) {
	v, ok := c.catalog.Video(id)
	if !ok {
		c.warn("Cannot play video: Video does not exist")
		return
	}
	if v.Flagged {
		c.warn("Cannot play video: Video is currently flagged (reason: %s)", v.FlagReason)
		return
	}
	c.start(v)
}

// PlayRandom plays a random unflagged video.
func (c *Controller) PlayRandom() {
	var candidates []*model.Video
	for _, v := range c.sortedVideos() {
		if !v.Flagged {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		c.warn("No videos available")
		return
	}
	c.start(candidates[c.random.Intn(len(candidates))])
}

// Stop stops the current video.
func (c *Controller) Stop() {
	if c.current == nil {
		c.warn("Cannot stop video: No video is currently playing")
		return
	}
	c.stopCurrent()
}

// Pause pauses the current video.
func (c *Controller) Pause() {
	switch c.State() {
	case StateIdle:
		c.warn("Cannot pause video: No video is currently playing")
	case StatePaused:
		c.warn("Video already paused: %s", c.current.Title)
	default:
		c.paused = true
		c.log.Debug().Str("video", c.current.ID).Msg("paused")
		c.success("Pausing video: %s", c.current.Title)
	}
}

// Continue resumes the paused video.
func (c *Controller) Continue() {
	switch c.State() {
	case StateIdle:
		c.warn("Cannot continue video: No video is currently playing")
	case StatePlaying:
		c.warn("Cannot continue video: Video is not paused")
	default:
		c.paused = false
		c.log.Debug().Str("video", c.current.ID).Msg("continued")
		c.success("Continuing video: %s", c.current.Title)
	}
}

// ShowPlaying prints the current video and whether it is paused.
func (c *Controller) ShowPlaying() {
	if c.current == nil {
		c.info("No video is currently playing")
		return
	}
	if c.paused {
		c.info("Currently playing: %s - PAUSED", c.current.Summary())
		return
	}
	c.info("Currently playing: %s", c.current.Summary())
}

func (c *Controller) start(v *model.Video) {
	if c.current != nil {
		c.stopCurrent()
	}
	c.current = v
	c.paused = false
	c.log.Debug().Str("video", v.ID).Msg("playing")
	c.success("Playing video: %s", v.Title)
}

func (c *Controller) stopCurrent() {
	title := c.current.Title
	c.log.Debug().Str("video", c.current.ID).Msg("stopped")
	c.current = nil
	c.paused = false
	c.success("Stopping video: %s", title)
}

// sortedVideos returns the catalog sorted by title, keeping catalog order for
// equal titles.
func (c *Controller) sortedVideos() []*model.Video {
	videos := c.catalog.Videos()
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Title < videos[j].Title
	})
	return videos
}
