package command

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/handiism/video-player/internal/library"
	"github.com/handiism/video-player/internal/player"
)

// fakePlayer records the calls it receives as "METHOD(arg, arg)".
type fakePlayer struct {
	calls []string
}

func (f *fakePlayer) record(method string, args ...string) {
	f.calls = append(f.calls, fmt.Sprintf("%s(%s)", method, strings.Join(args, ", ")))
}

func (f *fakePlayer) NumberOfVideos() { f.record("NumberOfVideos") }
func (f *fakePlayer) ShowAllVideos() { f.record("ShowAllVideos") }
func (f *fakePlayer) Play(id string) { f.record("Play", id) }
func (f *fakePlayer) PlayRandom() { f.record("PlayRandom") }
func (f *fakePlayer) Stop() { f.record("Stop") }
func (f *fakePlayer) Pause() { f.record("Pause") }
func (f *fakePlayer) Continue() { f.record("Continue") }
func (f *fakePlayer) ShowPlaying() { f.record("ShowPlaying") }
func (f *fakePlayer) CreatePlaylist(name string) { f.record("CreatePlaylist", name) }
func (f *fakePlayer) AddToPlaylist(name, id string) { f.record("AddToPlaylist", name, id) }
func (f *fakePlayer) RemoveFromPlaylist(name, id string) { f.record("RemoveFromPlaylist", name, id) }
func (f *fakePlayer) ClearPlaylist(name string) { f.record("ClearPlaylist", name) }
func (f *fakePlayer) DeletePlaylist(name string) { f.record("DeletePlaylist", name) }
func (f *fakePlayer) ShowAllPlaylists() { f.record("ShowAllPlaylists") }
func (f *fakePlayer) ShowPlaylist(name string) { f.record("ShowPlaylist", name) }
func (f *fakePlayer) SearchVideos(term string) { f.record("SearchVideos", term) }
func (f *fakePlayer) SearchVideosWithTag(tag string) { f.record("SearchVideosWithTag", tag) }
func (f *fakePlayer) FlagVideo(id, reason string) { f.record("FlagVideo", id, reason) }
func (f *fakePlayer) AllowVideo(id string) { f.record("AllowVideo", id) }
func (f *fakePlayer) ExportPlaylist(name, format string) { f.record("ExportPlaylist", name, format) }
func (f *fakePlayer) ExportAllPlaylists(format string) { f.record("ExportAllPlaylists", format) }

var _ Player = (*player.Controller)(nil)

func TestExecute_Dispatch(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"NUMBER_OF_VIDEOS", "NumberOfVideos()"},
		{"show_all_videos", "ShowAllVideos()"},
		{"PLAY amazing_cats_video_id", "Play(amazing_cats_video_id)"},
		{"  Play   funny_dogs_video_id  ", "Play(funny_dogs_video_id)"},
		{"PLAY_RANDOM", "PlayRandom()"},
		{"STOP", "Stop()"},
		{"PAUSE", "Pause()"},
		{"CONTINUE", "Continue()"},
		{"SHOW_PLAYING", "ShowPlaying()"},
		{"CREATE_PLAYLIST my_list", "CreatePlaylist(my_list)"},
		{"CREATE_PLAYLIST My   Cool List", "CreatePlaylist(My   Cool List)"},
		{"CREATE_PLAYLIST   padded name   ", "CreatePlaylist(padded name)"},
		{"ADD_TO_PLAYLIST my_list amazing_cats_video_id", "AddToPlaylist(my_list, amazing_cats_video_id)"},
		{"ADD_TO_PLAYLIST My List amazing_cats_video_id", "AddToPlaylist(My List, amazing_cats_video_id)"},
		{"ADD_TO_PLAYLIST My  List   amazing_cats_video_id", "AddToPlaylist(My  List, amazing_cats_video_id)"},
		{"REMOVE_FROM_PLAYLIST My\tList amazing_cats_video_id", "RemoveFromPlaylist(My\tList, amazing_cats_video_id)"},
		{"REMOVE_FROM_PLAYLIST my_list amazing_cats_video_id", "RemoveFromPlaylist(my_list, amazing_cats_video_id)"},
		{"CLEAR_PLAYLIST my_list", "ClearPlaylist(my_list)"},
		{"DELETE_PLAYLIST my_list", "DeletePlaylist(my_list)"},
		{"SHOW_ALL_PLAYLISTS", "ShowAllPlaylists()"},
		{"SHOW_PLAYLIST my_list", "ShowPlaylist(my_list)"},
		{"SEARCH_VIDEOS cat", "SearchVideos(cat)"},
		{"SEARCH_VIDEOS Life at", "SearchVideos(Life at)"},
		{"SEARCH_VIDEOS Life  at", "SearchVideos(Life  at)"},
		{"PLAY\tfunny_dogs_video_id", "Play(funny_dogs_video_id)"},
		{"SEARCH_VIDEOS_WITH_TAG #cat", "SearchVideosWithTag(#cat)"},
		{"FLAG_VIDEO funny_dogs_video_id", "FlagVideo(funny_dogs_video_id, )"},
		{"FLAG_VIDEO funny_dogs_video_id dont_like_dogs", "FlagVideo(funny_dogs_video_id, dont_like_dogs)"},
		{"FLAG_VIDEO funny_dogs_video_id too many dogs", "FlagVideo(funny_dogs_video_id, too many dogs)"},
		{"FLAG_VIDEO funny_dogs_video_id  too  many", "FlagVideo(funny_dogs_video_id, too  many)"},
		{"ALLOW_VIDEO funny_dogs_video_id", "AllowVideo(funny_dogs_video_id)"},
		{"EXPORT_PLAYLIST my_list", "ExportPlaylist(my_list, )"},
		{"EXPORT_PLAYLIST my_list pls", "ExportPlaylist(my_list, pls)"},
		{"EXPORT_PLAYLIST My List WPL", "ExportPlaylist(My List, WPL)"},
		{"EXPORT_PLAYLIST My List", "ExportPlaylist(My List, )"},
		{"EXPORT_PLAYLIST My  List   pls", "ExportPlaylist(My  List, pls)"},
		{"EXPORT_ALL_PLAYLISTS", "ExportAllPlaylists()"},
		{"EXPORT_ALL_PLAYLISTS zpl", "ExportAllPlaylists(zpl)"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			fake := &fakePlayer{}
			var events []player.Event
			d := New(fake, func(e player.Event) { events = append(events, e) })

			if err := d.Execute(tt.line); err != nil {
				t.Fatalf("Execute(%q) unexpected error: %v", tt.line, err)
			}
			if len(fake.calls) != 1 || fake.calls[0] != tt.want {
				t.Errorf("Execute(%q) calls = %v, want [%s]", tt.line, fake.calls, tt.want)
			}
			if len(events) != 0 {
				t.Errorf("Execute(%q) emitted %v, want nothing", tt.line, events)
			}
		})
	}
}

func TestExecute_Exit(t *testing.T) {
	for _, line := range []string{"EXIT", "exit", "QUIT", "  Quit  "} {
		d := New(&fakePlayer{}, nil)
		if err := d.Execute(line); !errors.Is(err, ErrExit) {
			t.Errorf("Execute(%q) = %v, want ErrExit", line, err)
		}
	}
}

func TestExecute_BlankLine(t *testing.T) {
	fake := &fakePlayer{}
	var events []player.Event
	d := New(fake, func(e player.Event) { events = append(events, e) })

	for _, line := range []string{"", "   ", "\t\n"} {
		if err := d.Execute(line); err != nil {
			t.Errorf("Execute(%q) unexpected error: %v", line, err)
		}
	}
	if len(fake.calls) != 0 || len(events) != 0 {
		t.Errorf("blank lines should be ignored, got calls %v events %v", fake.calls, events)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"DANCE", "Please enter a valid command, type HELP for a list of available commands."},
		{"PLAY", "Usage: PLAY <video_id>"},
		{"PLAY a b", "Usage: PLAY <video_id>"},
		{"ADD_TO_PLAYLIST my_list", "Usage: ADD_TO_PLAYLIST <playlist_name> <video_id>"},
		{"CREATE_PLAYLIST", "Usage: CREATE_PLAYLIST <playlist_name>"},
		{"SEARCH_VIDEOS_WITH_TAG #cat #dog", "Usage: SEARCH_VIDEOS_WITH_TAG <tag_name>"},
		{"FLAG_VIDEO", "Usage: FLAG_VIDEO <video_id> [flag_reason]"},
		{"EXPORT_ALL_PLAYLISTS m3u pls", "Usage: EXPORT_ALL_PLAYLISTS [m3u|pls|wpl|zpl]"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			fake := &fakePlayer{}
			var events []player.Event
			d := New(fake, func(e player.Event) { events = append(events, e) })

			if err := d.Execute(tt.line); err != nil {
				t.Fatalf("Execute(%q) unexpected error: %v", tt.line, err)
			}
			if len(fake.calls) != 0 {
				t.Errorf("Execute(%q) should not reach the player, got %v", tt.line, fake.calls)
			}
			if len(events) != 1 || events[0].Message != tt.want || events[0].Level != player.LevelWarning {
				t.Errorf("Execute(%q) events = %+v, want warning %q", tt.line, events, tt.want)
			}
		})
	}
}

func TestExecute_Help(t *testing.T) {
	var events []player.Event
	d := New(&fakePlayer{}, func(e player.Event) { events = append(events, e) })

	if err := d.Execute("help"); err != nil {
		t.Fatalf("Execute(help) unexpected error: %v", err)
	}

	if len(events) != len(Names())+1 {
		t.Fatalf("HELP printed %d lines, want %d", len(events), len(Names())+1)
	}
	if events[0].Message != "Available commands:" {
		t.Errorf("first help line = %q", events[0].Message)
	}
	text := make([]string, len(events))
	for i, e := range events {
		text[i] = e.Message
	}
	joined := strings.Join(text, "\n")
	for _, name := range Names() {
		if !strings.Contains(joined, "    "+name) {
			t.Errorf("HELP should mention %s", name)
		}
	}
}

func TestExecute_Session(t *testing.T) {
	lib, err := library.Default()
	if err != nil {
		t.Fatalf("library.Default() unexpected error: %v", err)
	}

	var out []string
	handler := func(e player.Event) { out = append(out, e.Message) }
	d := New(player.New(lib, handler), handler)

	script := []string{
		"CREATE_PLAYLIST my_PLAYlist",
		"ADD_TO_PLAYLIST my_playlist amazing_cats_video_id",
		"PLAY amazing_cats_video_id",
		"PAUSE",
		"SHOW_PLAYING",
		"FLAG_VIDEO amazing_cats_video_id dont_like_cats",
		"SHOW_PLAYLIST MY_PLAYLIST",
	}
	for _, line := range script {
		if err := d.Execute(line); err != nil {
			t.Fatalf("Execute(%q) unexpected error: %v", line, err)
		}
	}

	want := []string{
		"Successfully created new playlist: my_PLAYlist",
		"Added video to my_playlist: Amazing Cats",
		"Playing video: Amazing Cats",
		"Pausing video: Amazing Cats",
		"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal] - PAUSED",
		"Stopping video: Amazing Cats",
		"Successfully flagged video: Amazing Cats (reason: dont_like_cats)",
		"Showing playlist: MY_PLAYLIST",
		"Amazing Cats (amazing_cats_video_id) [#cat #animal] - FLAGGED (reason: dont_like_cats)",
	}
	if strings.Join(out, "\n") != strings.Join(want, "\n") {
		t.Errorf("session output mismatch\ngot:\n%s\nwant:\n%s", strings.Join(out, "\n"), strings.Join(want, "\n"))
	}
}

func TestExecute_KeepsInnerSpacing(t *testing.T) {
	lib, err := library.Default()
	if err != nil {
		t.Fatalf("library.Default() unexpected error: %v", err)
	}

	var out []string
	handler := func(e player.Event) { out = append(out, e.Message) }
	d := New(player.New(lib, handler), handler)

	for _, line := range []string{"CREATE_PLAYLIST My  List", "CREATE_PLAYLIST My List", "SHOW_ALL_PLAYLISTS"} {
		if err := d.Execute(line); err != nil {
			t.Fatalf("Execute(%q) unexpected error: %v", line, err)
		}
	}

	want := []string{
		"Successfully created new playlist: My  List",
		"Successfully created new playlist: My List",
		"Showing all playlists:",
		"My  List",
		"My List",
	}
	if strings.Join(out, "\n") != strings.Join(want, "\n") {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", strings.Join(out, "\n"), strings.Join(want, "\n"))
	}
}
