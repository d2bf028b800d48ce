package player

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/handiism/video-player/internal/model"
)

// SearchVideos lists unflagged videos whose title contains term
// (case-sensitive) and offers to play one of them.
func (c *Controller) SearchVideos(term string) {
	c.search(term, func(v *model.Video) bool {
		return strings.Contains(v.Title, term)
	})
}

// SearchVideosWithTag lists unflagged videos carrying exactly tag and offers
// to play one of them.
func (c *Controller) SearchVideosWithTag(tag string) {
	c.search(tag, func(v *model.Video) bool {
		return v.HasTag(tag)
	})
}

// search filters the catalog in its natural order. A valid selection only
// announces the video; the playback state is not changed.
func (c *Controller) search(term string, match func(*model.Video) bool) {
	var results []*model.Video
	for _, v := range c.catalog.Videos() {
		if !v.Flagged && match(v) {
			results = append(results, v)
		}
	}

	if len(results) == 0 {
		c.info("No search results for %s", term)
		return
	}

	c.info("Here are the results for %s:", term)
	for i, v := range results {
		c.info("%d) %s", i+1, v.Summary())
	}
	c.emit(LevelPrompt, "Would you like to play any of the above? If yes, specify the number of the video.")
	c.emit(LevelPrompt, "If your answer is not a valid number, we will assume it's a no.")

	choice, ok := c.chooser.Choose(len(results))
	if !ok || choice < 1 || choice > len(results) {
		c.log.Debug().Str("term", term).Msg("no search selection")
		return
	}
	c.success("Playing video: %s", results[choice-1].Title)
}

// LineChooser reads the search selection as one line of text.
type LineChooser struct {
	r *bufio.Reader
}

// NewLineChooser creates a Chooser reading selections from r.
func NewLineChooser(r io.Reader) *LineChooser {
	if br, ok := r.(*bufio.Reader); ok {
		return &LineChooser{r: br}
	}
	return &LineChooser{r: bufio.NewReader(r)}
}

// Choose reads one line and parses it as a number. Anything that is not a
// number, including end of input, is no choice.
func (l *LineChooser) Choose(count int) (int, bool) {
	line, err := l.r.ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}
	return ParseChoice(line)
}

// ParseChoice interprets text typed at the search prompt.
func ParseChoice(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return n, true
}
