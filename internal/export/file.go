package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/handiism/video-player/internal/model"
	"golang.org/x/sync/errgroup"
)

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// Config holds playlist export settings.
type Config struct {
	// Dir is the directory exported playlists are written to.
	Dir string

	// Format is used when Export is called without a format name.
	Format Format

	// Extended adds #EXTM3U/#EXTINF lines to M3U playlists.
	Extended bool

	// URLFormat is the location written for each video. "{id}" is replaced
	// with the video id.
	// Example: "https://videos.example.com/watch?v={id}"
	URLFormat string

	// MaxConcurrent limits parallel file writes in ExportAll.
	MaxConcurrent int
}

// Writer renders playlists and writes them to Config.Dir.
//
// Playlist names that sanitise to the same file name are kept apart with a
// numeric suffix ("cats_dogs.m3u", "cats_dogs (2).m3u"). A path stays
// assigned to the playlist that first used it for the lifetime of the
// Writer, so exporting a playlist again overwrites its own file only.
//
// Example:
//
//	w := export.NewWriter(&export.Config{Dir: "/tmp/playlists", URLFormat: "{id}"})
//	path, err := w.Export(playlist, "pls")
//	// path = "/tmp/playlists/My Playlist.pls"
type Writer struct {
	cfg *Config

	mu sync.Mutex
	// owners maps a lower case file path to the playlist key that owns it.
	owners map[string]string
}

// NewWriter creates a Writer. A nil cfg exports extended M3U files to the
// current directory with bare video ids as locations.
func NewWriter(cfg *Config) *Writer {
	if cfg == nil {
		cfg = &Config{Dir: ".", Extended: true, URLFormat: "{id}"}
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.URLFormat == "" {
		cfg.URLFormat = "{id}"
	}
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	return &Writer{cfg: cfg, owners: make(map[string]string)}
}

// Render returns the playlist content without writing it.
func (w *Writer) Render(p *model.Playlist, format Format) string {
	return w.render(w.takeSnapshot(p), format)
}

// Export writes one playlist and returns the written file path.
// An empty format name selects Config.Format.
func (w *Writer) Export(p *model.Playlist, formatName string) (string, error) {
	format, err := w.resolveFormat(formatName)
	if err != nil {
		return "", err
	}
	if err := EnsureDir(w.cfg.Dir); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	s := w.takeSnapshot(p)
	path := w.assignPaths([]snapshot{s}, format)[0]
	if err := w.save(s, format, path); err != nil {
		return "", err
	}
	return path, nil
}

// ExportAll writes several playlists in parallel, at most
// Config.MaxConcurrent at a time. Paths are returned in input order and are
// distinct for every playlist.
//
// Playlists are copied before any file is written, so the caller may keep
// using them once ExportAll returns.
func (w *Writer) ExportAll(ctx context.Context, playlists []*model.Playlist, formatName string) ([]string, error) {
	format, err := w.resolveFormat(formatName)
	if err != nil {
		return nil, err
	}
	if err := EnsureDir(w.cfg.Dir); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	snapshots := make([]snapshot, len(playlists))
	for i, p := range playlists {
		snapshots[i] = w.takeSnapshot(p)
	}
	paths := w.assignPaths(snapshots, format)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.MaxConcurrent)

	for i, s := range snapshots {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return w.save(s, format, paths[i])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (w *Writer) resolveFormat(name string) (Format, error) {
	if name == "" {
		return w.cfg.Format, nil
	}
	return ParseFormat(name)
}

// assignPaths picks a file path for every snapshot before anything is
// written. Paths are compared ignoring case so that exports also stay apart
// on case-insensitive file systems.
func (w *Writer) assignPaths(snapshots []snapshot, format Format) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, len(snapshots))
	used := make(map[string]bool, len(snapshots))

	for i, s := range snapshots {
		owner := model.NameKey(s.name)
		base := SanitizeFileName(s.name)
		if base == "" {
			base = "playlist"
		}

		name := base
		for n := 2; ; n++ {
			path := filepath.Join(w.cfg.Dir, name+format.Extension())
			key := strings.ToLower(path)
			if current, taken := w.owners[key]; !used[key] && (!taken || current == owner) {
				w.owners[key] = owner
				used[key] = true
				paths[i] = path
				break
			}
			name = fmt.Sprintf("%s (%d)", base, n)
		}
	}

	return paths
}

func (w *Writer) save(s snapshot, format Format, path string) error {
	if err := os.WriteFile(path, []byte(w.render(s, format)), 0644); err != nil {
		return fmt.Errorf("write %s playlist %s: %w", format, path, err)
	}
	return nil
}

// SanitizeFileName removes or replaces characters that are invalid in file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Leading and trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Cats: Part 1/2") // Returns "Cats_ Part 1_2"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
