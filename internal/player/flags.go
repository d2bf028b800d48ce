package player

// FlagVideo hides a video. An empty reason is recorded as "Not supplied".
// Flagging the current video stops it first.
func (c *Controller) FlagVideo(id, reason string) {
	v, ok := c.catalog.Video(id)
	if !ok {
		c.warn("Cannot flag video: Video does not exist")
		return
	}
	if v.Flagged {
		c.warn("Cannot flag video: Video is already flagged")
		return
	}
	if c.current == v {
		c.stopCurrent()
	}
	if err := v.Flag(reason); err != nil {
		c.warn("Cannot flag video: %s", err)
		return
	}
	c.log.Debug().Str("video", v.ID).Str("reason", v.FlagReason).Msg("video flagged")
	c.success("Successfully flagged video: %s (reason: %s)", v.Title, v.FlagReason)
}

// AllowVideo removes the flag from a video.
func (c *Controller) AllowVideo(id string) {
	v, ok := c.catalog.Video(id)
	if !ok {
		c.warn("Cannot remove flag from video: Video does not exist")
		return
	}
	if err := v.Unflag(); err != nil {
		c.warn("Cannot remove flag from video: Video is not flagged")
		return
	}
	c.log.Debug().Str("video", v.ID).Msg("video allowed")
	c.success("Successfully removed flag from video: %s", v.Title)
}
