// Package config provides configuration management for video-player.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to export.Config for the playlist exporter
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Built-in catalog, clock-seeded PLAY_RANDOM
//	// Logs to <user cache dir>/video-player/video-player.log
//	// Exports extended M3U playlists to ~/Videos/Playlists
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.CatalogPath = "/data/videos.txt"
//	err := settings.Save("/path/to/config.json")
package config
