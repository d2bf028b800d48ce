package player

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/handiism/video-player/internal/mocks"
)

const (
	promptLine1 = "Would you like to play any of the above? If yes, specify the number of the video."
	promptLine2 = "If your answer is not a valid number, we will assume it's a no."
)

func TestSearchVideos_WithSelection(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// given
	chooser := mocks.NewMockChooser(mockCtrl)
	chooser.EXPECT().Choose(2).Return(2, true).Times(1)
	ctrl, rec := newTestController(t, WithChooser(chooser))

	// when
	ctrl.SearchVideos("Cat")

	// then
	assertLines(t, rec,
		"Here are the results for Cat:",
		"1) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		"2) Another Cat Video (another_cat_video_id) [#cat #animal]",
		promptLine1,
		promptLine2,
		"Playing video: Another Cat Video",
	)
	if ctrl.State() != StateIdle {
		t.Errorf("a search selection only announces the video, state = %v", ctrl.State())
	}
}

func TestSearchVideos_InvalidSelection(t *testing.T) {
	tests := []struct {
		name   string
		choice int
		ok     bool
	}{
		{"no number", 0, false},
		{"zero", 0, true},
		{"too large", 3, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			chooser := mocks.NewMockChooser(mockCtrl)
			chooser.EXPECT().Choose(2).Return(tt.choice, tt.ok).Times(1)
			ctrl, rec := newTestController(t, WithChooser(chooser))

			ctrl.SearchVideos("Cat")

			if got := rec.last().Message; got != promptLine2 {
				t.Errorf("last line = %q, want the prompt only", got)
			}
		})
	}
}

func TestSearchVideos_CaseSensitive(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	chooser := mocks.NewMockChooser(mockCtrl)
	chooser.EXPECT().Choose(gomock.Any()).Times(0)
	ctrl, rec := newTestController(t, WithChooser(chooser))

	ctrl.SearchVideos("cat")

	assertLines(t, rec, "No search results for cat")
}

func TestSearchVideos_SkipsFlagged(t *testing.T) {
	ctrl, rec := newTestController(t)
	ctrl.FlagVideo("amazing_cats_video_id", "")
	rec.reset()

	ctrl.SearchVideos("Cat")

	lines := rec.lines()
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[1] != "1) Another Cat Video (another_cat_video_id) [#cat #animal]" {
		t.Errorf("unexpected result line %q", lines[1])
	}
}

func TestSearchVideosWithTag(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	chooser := mocks.NewMockChooser(mockCtrl)
	chooser.EXPECT().Choose(3).Return(1, true).Times(1)
	ctrl, rec := newTestController(t, WithChooser(chooser))

	ctrl.SearchVideosWithTag("#animal")

	assertLines(t, rec,
		"Here are the results for #animal:",
		"1) Funny Dogs (funny_dogs_video_id) [#dog #animal]",
		"2) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		"3) Another Cat Video (another_cat_video_id) [#cat #animal]",
		promptLine1,
		promptLine2,
		"Playing video: Funny Dogs",
	)
}

func TestSearchVideosWithTag_ExactMatch(t *testing.T) {
	ctrl, rec := newTestController(t)

	ctrl.SearchVideosWithTag("#anim")
	ctrl.SearchVideosWithTag("animal")

	assertLines(t, rec,
		"No search results for #anim",
		"No search results for animal",
	)
}

func TestSearch_PromptLevel(t *testing.T) {
	ctrl, rec := newTestController(t)

	ctrl.SearchVideosWithTag("#google")

	if got := rec.last().Level; got != LevelPrompt {
		t.Errorf("prompt level = %v, want LevelPrompt", got)
	}
}

func TestLineChooser(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"number", "2\n", 2, true},
		{"padded", "  3  \n", 3, true},
		{"no newline", "1", 1, true},
		{"text", "no\n", 0, false},
		{"empty line", "\n", 0, false},
		{"end of input", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewLineChooser(strings.NewReader(tt.input)).Choose(5)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Choose() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLineChooser_ReadsOneLinePerCall(t *testing.T) {
	chooser := NewLineChooser(strings.NewReader("1\nx\n3\n"))

	if n, ok := chooser.Choose(3); n != 1 || !ok {
		t.Errorf("first Choose() = (%d, %v), want (1, true)", n, ok)
	}
	if _, ok := chooser.Choose(3); ok {
		t.Error("second Choose() should be no choice")
	}
	if n, ok := chooser.Choose(3); n != 3 || !ok {
		t.Errorf("third Choose() = (%d, %v), want (3, true)", n, ok)
	}
}
