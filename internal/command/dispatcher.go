package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/handiism/video-player/internal/export"
	"github.com/handiism/video-player/internal/player"
)

// ErrExit is returned by Execute for the EXIT command.
var ErrExit = errors.New("exit requested")

// Player is the set of operations commands are mapped to.
// *player.Controller implements it.
type Player interface {
	NumberOfVideos()
	ShowAllVideos()
	Play(id string)
	PlayRandom()
	Stop()
	Pause()
	Continue()
	ShowPlaying()
	CreatePlaylist(name string)
	AddToPlaylist(name, id string)
	RemoveFromPlaylist(name, id string)
	ClearPlaylist(name string)
	DeletePlaylist(name string)
	ShowAllPlaylists()
	ShowPlaylist(name string)
	SearchVideos(term string)
	SearchVideosWithTag(tag string)
	FlagVideo(id, reason string)
	AllowVideo(id string)
	ExportPlaylist(name, format string)
	ExportAllPlaylists(format string)
}

// formatArg is the optional export format argument, e.g. "[m3u|pls|wpl|zpl]".
var formatArg = func() string {
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = f.String()
	}
	return "[" + strings.Join(names, "|") + "]"
}()

// command describes one command word.
type command struct {
	name    string
	args    string
	help    string
	minArgs int
	maxArgs int // -1 = unlimited
	run     func(p Player, in input)
}

// commands is kept in help order.
var commands = []command{
	{
		name: "NUMBER_OF_VIDEOS", help: "Shows how many videos are in the library.",
		run: func(p Player, _ input) { p.NumberOfVideos() },
	},
	{
		name: "SHOW_ALL_VIDEOS", help: "Lists all videos from the library.",
		run: func(p Player, _ input) { p.ShowAllVideos() },
	},
	{
		name: "PLAY", args: "<video_id>", help: "Plays specified video.",
		minArgs: 1, maxArgs: 1,
		run: func(p Player, in input) { p.Play(in.args[0]) },
	},
	{
		name: "PLAY_RANDOM", help: "Plays a random video from the library.",
		run: func(p Player, _ input) { p.PlayRandom() },
	},
	{
		name: "STOP", help: "Stop the current video.",
		run: func(p Player, _ input) { p.Stop() },
	},
	{
		name: "PAUSE", help: "Pause the current video.",
		run: func(p Player, _ input) { p.Pause() },
	},
	{
		name: "CONTINUE", help: "Resume the current paused video.",
		run: func(p Player, _ input) { p.Continue() },
	},
	{
		name: "SHOW_PLAYING", help: "Displays the title, id and paused status of the current video.",
		run: func(p Player, _ input) { p.ShowPlaying() },
	},
	{
		name: "CREATE_PLAYLIST", args: "<playlist_name>", help: "Creates a new (empty) playlist with the provided name.",
		minArgs: 1, maxArgs: -1,
		run: func(p Player, in input) { p.CreatePlaylist(in.rest) },
	},
	{
		name: "ADD_TO_PLAYLIST", args: "<playlist_name> <video_id>", help: "Adds the requested video to the playlist.",
		minArgs: 2, maxArgs: -1,
		run: func(p Player, in input) {
			name, id := in.splitLast()
			p.AddToPlaylist(name, id)
		},
	},
	{
		name: "REMOVE_FROM_PLAYLIST", args: "<playlist_name> <video_id>", help: "Removes the specified video from the specified playlist.",
		minArgs: 2, maxArgs: -1,
		run: func(p Player, in input) {
			name, id := in.splitLast()
			p.RemoveFromPlaylist(name, id)
		},
	},
	{
		name: "CLEAR_PLAYLIST", args: "<playlist_name>", help: "Removes all videos from the specified playlist.",
		minArgs: 1, maxArgs: -1,
		run: func(p Player, in input) { p.ClearPlaylist(in.rest) },
	},
	{
		name: "DELETE_PLAYLIST", args: "<playlist_name>", help: "Deletes the playlist.",
		minArgs: 1, maxArgs: -1,
		run: func(p Player, in input) { p.DeletePlaylist(in.rest) },
	},
	{
		name: "SHOW_ALL_PLAYLISTS", help: "Display all the available playlists.",
		run: func(p Player, _ input) { p.ShowAllPlaylists() },
	},
	{
		name: "SHOW_PLAYLIST", args: "<playlist_name>", help: "Displays the videos of the specified playlist.",
		minArgs: 1, maxArgs: -1,
		run: func(p Player, in input) { p.ShowPlaylist(in.rest) },
	},
	{
		name: "SEARCH_VIDEOS", args: "<search_term>", help: "Display all the videos whose titles contain the search_term.",
		minArgs: 1, maxArgs: -1,
		run: func(p Player, in input) { p.SearchVideos(in.rest) },
	},
	{
		name: "SEARCH_VIDEOS_WITH_TAG", args: "<tag_name>", help: "Display all videos whose tags contain the provided tag.",
		minArgs: 1, maxArgs: 1,
		run: func(p Player, in input) { p.SearchVideosWithTag(in.args[0]) },
	},
	{
		name: "FLAG_VIDEO", args: "<video_id> [flag_reason]", help: "Mark a video as flagged.",
		minArgs: 1, maxArgs: -1,
		run: func(p Player, in input) { p.FlagVideo(in.args[0], in.afterFirst()) },
	},
	{
		name: "ALLOW_VIDEO", args: "<video_id>", help: "Removes a flag from a video.",
		minArgs: 1, maxArgs: 1,
		run: func(p Player, in input) { p.AllowVideo(in.args[0]) },
	},
	{
		name: "EXPORT_PLAYLIST", args: "<playlist_name> " + formatArg, help: "Writes the playlist to a playlist file.",
		minArgs: 1, maxArgs: -1,
		run: func(p Player, in input) {
			name, format := in.splitFormat()
			p.ExportPlaylist(name, format)
		},
	},
	{
		name: "EXPORT_ALL_PLAYLISTS", args: formatArg, help: "Writes every playlist to a playlist file.",
		maxArgs: 1,
		run: func(p Player, in input) {
			format := ""
			if len(in.args) == 1 {
				format = in.args[0]
			}
			p.ExportAllPlaylists(format)
		},
	},
}

// Dispatcher parses command lines and runs them against a Player.
type Dispatcher struct {
	player  Player
	onEvent player.Handler
	byName  map[string]command
}

// New creates a Dispatcher. Messages produced by the dispatcher itself
// (help, usage, unknown commands) go to onEvent.
func New(p Player, onEvent player.Handler) *Dispatcher {
	byName := make(map[string]command, len(commands))
	for _, c := range commands {
		byName[c.name] = c
	}
	return &Dispatcher{player: p, onEvent: onEvent, byName: byName}
}

// Execute runs one command line. Command words are case-insensitive and
// blank lines are ignored. It returns ErrExit for EXIT/QUIT and nil
// otherwise; invalid input is reported through the handler.
func (d *Dispatcher) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	word, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, rest = line[:i], strings.TrimSpace(line[i:])
	}
	in := input{args: strings.Fields(rest), rest: rest}

	name := strings.ToUpper(word)
	switch name {
	case "EXIT", "QUIT":
		return ErrExit
	case "HELP":
		d.help()
		return nil
	}

	cmd, ok := d.byName[name]
	if !ok {
		d.emit(player.LevelWarning, "Please enter a valid command, type HELP for a list of available commands.")
		return nil
	}
	if len(in.args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(in.args) > cmd.maxArgs) {
		d.emit(player.LevelWarning, fmt.Sprintf("Usage: %s", cmd.usage()))
		return nil
	}

	cmd.run(d.player, in)
	return nil
}

// Names returns all command words in help order.
func Names() []string {
	names := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		names = append(names, c.name)
	}
	return append(names, "HELP", "EXIT")
}

func (d *Dispatcher) help() {
	d.emit(player.LevelInfo, "Available commands:")
	for _, c := range commands {
		d.emit(player.LevelInfo, fmt.Sprintf("    %s - %s", c.usage(), c.help))
	}
	d.emit(player.LevelInfo, "    HELP - Displays help.")
	d.emit(player.LevelInfo, "    EXIT - Terminates the program execution.")
}

func (d *Dispatcher) emit(level player.Level, message string) {
	if d.onEvent != nil {
		d.onEvent(player.Event{Message: message, Level: level})
	}
}

func (c command) usage() string {
	if c.args == "" {
		return c.name
	}
	return c.name + " " + c.args
}

// input is everything after the command word.
type input struct {
	// args are the whitespace-separated words, used for ids and counts.
	args []string
	// rest is the text as typed, trimmed at both ends. Playlist names,
	// search terms and flag reasons are taken from it so inner spacing
	// is kept.
	rest string
}

// splitLast treats the last word as the video id and the text before it as
// the playlist name.
func (in input) splitLast() (string, string) {
	id := in.args[len(in.args)-1]
	name := strings.TrimRightFunc(strings.TrimSuffix(in.rest, id), unicode.IsSpace)
	return name, id
}

// afterFirst returns the text following the first word.
func (in input) afterFirst() string {
	return strings.TrimLeftFunc(strings.TrimPrefix(in.rest, in.args[0]), unicode.IsSpace)
}

// splitFormat takes a trailing format name off the playlist name, if present.
func (in input) splitFormat() (string, string) {
	if len(in.args) > 1 {
		if _, err := export.ParseFormat(in.args[len(in.args)-1]); err == nil {
			return in.splitLast()
		}
	}
	return in.rest, ""
}
