package player

import (
	"context"
	"errors"

	"github.com/handiism/video-player/internal/export"
	"github.com/handiism/video-player/internal/model"
)

// Exporter writes playlists to files in the named format ("" selects the
// exporter default). *export.Writer satisfies it.
type Exporter interface {
	Export(p *model.Playlist, format string) (string, error)
	ExportAll(ctx context.Context, playlists []*model.Playlist, format string) ([]string, error)
}

// ExportPlaylist writes one playlist file through the configured Exporter.
func (c *Controller) ExportPlaylist(name, format string) {
	p, ok := c.Playlist(name)
	if !ok {
		c.warn("Cannot export playlist %s: Playlist does not exist", name)
		return
	}
	if c.exporter == nil {
		c.warn("Cannot export playlist %s: Export is not configured", name)
		return
	}

	path, err := c.exporter.Export(p, format)
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			c.warn("Cannot export playlist %s: Unknown format %s", name, format)
			return
		}
		c.log.Error().Err(err).Str("playlist", p.Name).Msg("export failed")
		c.emit(LevelError, "Cannot export playlist %s: %v", name, err)
		return
	}
	c.log.Info().Str("playlist", p.Name).Str("path", path).Msg("playlist exported")
	c.success("Exported playlist %s to %s", name, path)
}

// ExportAllPlaylists writes every playlist, in display name order.
func (c *Controller) ExportAllPlaylists(format string) {
	names := c.PlaylistNames()
	if len(names) == 0 {
		c.info("No playlists exist yet")
		return
	}
	if c.exporter == nil {
		c.warn("Cannot export playlists: Export is not configured")
		return
	}

	playlists := make([]*model.Playlist, len(names))
	for i, name := range names {
		playlists[i], _ = c.Playlist(name)
	}

	paths, err := c.exporter.ExportAll(context.Background(), playlists, format)
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			c.warn("Cannot export playlists: Unknown format %s", format)
			return
		}
		c.log.Error().Err(err).Msg("export failed")
		c.emit(LevelError, "Cannot export playlists: %v", err)
		return
	}
	for i, path := range paths {
		c.success("Exported playlist %s to %s", playlists[i].Name, path)
	}
	c.log.Info().Int("count", len(paths)).Msg("playlists exported")
}
