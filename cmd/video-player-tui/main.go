package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/handiism/video-player/internal/config"
	"github.com/handiism/video-player/internal/export"
	"github.com/handiism/video-player/internal/library"
	"github.com/handiism/video-player/internal/logging"
	"github.com/handiism/video-player/internal/player"
	"github.com/handiism/video-player/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	catalogFlag := flag.String("catalog", "", "Video catalog file (overrides config)")
	verboseFlag := flag.Bool("verbose", false, "Write debug logs")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *catalogFlag != "" {
		settings.CatalogPath = *catalogFlag
	}

	logger, logFile, err := logging.Setup(settings, *verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}

	lib, err := library.Load(settings.CatalogPath)
	if err != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	seed := settings.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	err = tui.Run(lib, settings,
		player.WithRandomizer(rand.New(rand.NewSource(seed))),
		player.WithLogger(logger),
		player.WithExporter(export.NewWriter(settings.ToExportConfig())),
	)
	logFile.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
