package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/video-player/internal/player"
)

// Bridge connects a player controller running on a worker goroutine to the
// Bubble Tea program. It is the controller's output handler and its search
// chooser.
type Bridge struct {
	events  chan player.Event
	prompts chan int
	answers chan string
	done    chan struct{}
}

// NewBridge creates an open Bridge.
func NewBridge() *Bridge {
	return &Bridge{
		events:  make(chan player.Event),
		prompts: make(chan int),
		answers: make(chan string),
		done:    make(chan struct{}),
	}
}

// handle forwards one event to the UI. It blocks until the UI takes it, so
// output keeps its order.
func (b *Bridge) handle(e player.Event) {
	select {
	case b.events <- e:
	case <-b.done:
	}
}

// Choose asks the UI for a selection and waits for the typed answer.
func (b *Bridge) Choose(count int) (int, bool) {
	select {
	case b.prompts <- count:
	case <-b.done:
		return 0, false
	}

	select {
	case answer := <-b.answers:
		return player.ParseChoice(answer)
	case <-b.done:
		return 0, false
	}
}

// answer delivers text typed at the selection prompt.
func (b *Bridge) answer(text string) tea.Cmd {
	return func() tea.Msg {
		select {
		case b.answers <- text:
		case <-b.done:
		}
		return nil
	}
}

// close releases a worker blocked on the UI.
func (b *Bridge) close() {
	close(b.done)
}

func waitForEvent(events <-chan player.Event) tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: <-events}
	}
}

func waitForPrompt(prompts <-chan int) tea.Cmd {
	return func() tea.Msg {
		return PromptMsg{Count: <-prompts}
	}
}
