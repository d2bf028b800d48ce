package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/handiism/video-player/internal/command"
	"github.com/handiism/video-player/internal/config"
	"github.com/handiism/video-player/internal/export"
	"github.com/handiism/video-player/internal/library"
	"github.com/handiism/video-player/internal/logging"
	"github.com/handiism/video-player/internal/player"
)

// commandList collects repeated -exec flags.
type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, "; ")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	// Command line flags
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		catalogFlag = flag.String("catalog", "", "Video catalog file (overrides config)")
		logFlag     = flag.String("log", "", "Log file (overrides config)")
		seedFlag    = flag.Int64("seed", 0, "Random seed for PLAY_RANDOM (overrides config)")
		verboseFlag = flag.Bool("verbose", false, "Write debug logs")
		execFlag    commandList
	)
	flag.Var(&execFlag, "exec", "Command to run instead of the prompt (repeatable)")

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	// Apply flags
	if *catalogFlag != "" {
		settings.CatalogPath = *catalogFlag
	}
	if *logFlag != "" {
		settings.LogFile = *logFlag
	}
	if *seedFlag != 0 {
		settings.RandomSeed = *seedFlag
	}

	logger, logFile, err := logging.Setup(settings, *verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		return 1
	}
	defer logFile.Close()

	lib, err := library.Load(settings.CatalogPath)
	if err != nil {
		logger.Error().Err(err).Str("catalog", settings.CatalogPath).Msg("loading catalog")
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return 1
	}

	seed := settings.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Search selections and commands share one buffered stdin. Scripts
	// given with -exec never wait for a selection.
	stdin := bufio.NewReader(os.Stdin)
	out := player.WriterHandler(os.Stdout)

	ctrl := player.New(lib, out,
		player.WithChooser(newChooser(stdin, len(execFlag) > 0)),
		player.WithRandomizer(rand.New(rand.NewSource(seed))),
		player.WithLogger(logger),
		player.WithExporter(export.NewWriter(settings.ToExportConfig())),
	)
	dispatcher := command.New(ctrl, out)

	logger.Info().
		Str("session", ctrl.Session()).
		Int("videos", lib.Len()).
		Int64("seed", seed).
		Msg("video player started")

	// Handle interrupts
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("interrupted")
		fmt.Println("\nInterrupted, exiting...")
		logFile.Close()
		os.Exit(130)
	}()

	if len(execFlag) > 0 {
		runScript(dispatcher, execFlag)
		return 0
	}

	fmt.Println("Hello and welcome to the video player, what would you like to do?")
	fmt.Println("Enter HELP for a list of available commands or EXIT to terminate.")

	if err := repl(dispatcher, stdin, os.Stdout, settings.Prompt); err != nil {
		logger.Error().Err(err).Msg("reading commands")
		fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
		return 1
	}

	fmt.Println("The video player has now terminated its execution. Thank you and goodbye!")
	logger.Info().Msg("video player stopped")
	return 0
}

// newChooser reads search selections from in, except for scripted runs
// which never select.
func newChooser(in *bufio.Reader, scripted bool) player.Chooser {
	if scripted {
		return player.NoChoice
	}
	return player.NewLineChooser(in)
}

// runScript executes lines in order, stopping at EXIT.
func runScript(d *command.Dispatcher, lines []string) {
	for _, line := range lines {
		if err := d.Execute(line); errors.Is(err, command.ErrExit) {
			return
		}
	}
}

// repl reads commands until EXIT or end of input.
func repl(d *command.Dispatcher, in *bufio.Reader, out io.Writer, prompt string) error {
	for {
		fmt.Fprint(out, prompt)

		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line != "" {
			if execErr := d.Execute(line); errors.Is(execErr, command.ErrExit) {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
	}
}
