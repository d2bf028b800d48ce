package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/handiism/video-player/internal/export"
)

// Settings holds all configuration options.
type Settings struct {
	// Catalog settings
	CatalogPath string `json:"catalog_path"` // empty = built-in catalog

	// Session settings
	RandomSeed int64  `json:"random_seed"` // 0 = seeded from the clock
	Prompt     string `json:"prompt"`

	// Logging
	LogFile       string `json:"log_file"`
	LogLevel      string `json:"log_level"`    // trace, debug, info, warn, error
	LogMaxSize    int    `json:"log_max_size"` // megabytes
	LogMaxBackups int    `json:"log_max_backups"`

	// Playlist export
	ExportDir           string `json:"export_dir"`
	ExportFormat        string `json:"export_format"` // m3u, pls, wpl, zpl
	M3UExtended         bool   `json:"m3u_extended"`
	VideoURLFormat      string `json:"video_url_format"`
	MaxConcurrentExport int    `json:"max_concurrent_export"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return &Settings{
		CatalogPath: "",

		RandomSeed: 0,
		Prompt:     "YT> ",

		LogFile:       filepath.Join(cacheDir, "video-player", "video-player.log"),
		LogLevel:      "info",
		LogMaxSize:    1,
		LogMaxBackups: 2,

		ExportDir:           filepath.Join(homeDir, "Videos", "Playlists"),
		ExportFormat:        "m3u",
		M3UExtended:         true,
		VideoURLFormat:      "https://www.youtube.com/watch?v={id}",
		MaxConcurrentExport: 4,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToExportConfig converts settings to export.Config.
// An unknown export format falls back to M3U.
func (s *Settings) ToExportConfig() *export.Config {
	format, err := export.ParseFormat(s.ExportFormat)
	if err != nil {
		format = export.FormatM3U
	}

	return &export.Config{
		Dir:           s.ExportDir,
		Format:        format,
		Extended:      s.M3UExtended,
		URLFormat:     s.VideoURLFormat,
		MaxConcurrent: s.MaxConcurrentExport,
	}
}
