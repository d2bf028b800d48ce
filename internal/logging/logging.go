// Package logging sets up diagnostic logging for video-player.
//
// Logs are written as JSON lines to a size-rotated file. Standard output is
// reserved for player messages, so nothing is logged to the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/handiism/video-player/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup opens the rotating log file named in settings and returns a logger
// writing to it. verbose forces the debug level. The returned io.Closer
// closes the log file.
func Setup(settings *config.Settings, verbose bool) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(settings.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(settings.LogFile), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   settings.LogFile,
		MaxSize:    settings.LogMaxSize,
		MaxBackups: settings.LogMaxBackups,
	}

	return New(file, level), file, nil
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel converts a level name to a zerolog level. An empty name is info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
