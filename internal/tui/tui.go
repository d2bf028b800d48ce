// Package tui provides a Bubble Tea terminal user interface for video-player.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/video-player/internal/command"
	"github.com/handiism/video-player/internal/config"
	"github.com/handiism/video-player/internal/library"
	"github.com/handiism/video-player/internal/player"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// maxLogs bounds the scrollback kept in memory.
const maxLogs = 500

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRunning
	StateChoosing
)

// LogEntry represents an output line in the UI.
type LogEntry struct {
	Message string
	Level   player.Level
	Echo    bool // the command line typed by the user
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state      State
	textInput  textinput.Model
	spinner    spinner.Model
	viewport   viewport.Model
	settings   *config.Settings
	dispatcher *command.Dispatcher
	bridge     *Bridge
	logs       []LogEntry
	history    []string
	histPos    int

	width  int
	height int
}

// NewModel creates a new TUI model running commands through d. The Bridge
// must be the handler and chooser of the controller behind d.
func NewModel(d *command.Dispatcher, b *Bridge, settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Prompt = settings.Prompt
	ti.Placeholder = "HELP"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.ShowSuggestions = true
	ti.SetSuggestions(command.Names())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:      StateInput,
		textInput:  ti,
		spinner:    sp,
		viewport:   viewport.New(80, 20),
		settings:   settings,
		dispatcher: d,
		bridge:     b,
		logs:       make([]LogEntry, 0),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		waitForEvent(m.bridge.events),
		waitForPrompt(m.bridge.prompts),
	)
}

// Message types
type (
	// EventMsg carries one line of controller output.
	EventMsg struct {
		Event player.Event
	}

	// PromptMsg is sent when a search waits for a selection.
	PromptMsg struct {
		Count int
	}

	// CommandDoneMsg is sent when a command line has been executed.
	CommandDoneMsg struct {
		Err error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-9, 5)
		m.textInput.Width = max(msg.Width-len(m.textInput.Prompt)-6, 10)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case "up":
			if m.state == StateInput && m.histPos > 0 {
				m.histPos--
				m.textInput.SetValue(m.history[m.histPos])
				m.textInput.CursorEnd()
			}
			return m, nil

		case "down":
			if m.state == StateInput && m.histPos < len(m.history) {
				m.histPos++
				if m.histPos == len(m.history) {
					m.textInput.SetValue("")
				} else {
					m.textInput.SetValue(m.history[m.histPos])
					m.textInput.CursorEnd()
				}
			}
			return m, nil

		case "enter":
			switch m.state {
			case StateInput:
				line := m.textInput.Value()
				m.textInput.Reset()
				if strings.TrimSpace(line) == "" {
					return m, nil
				}
				m.history = append(m.history, line)
				m.histPos = len(m.history)
				m.appendLog(LogEntry{Message: m.settings.Prompt + line, Echo: true})
				m.state = StateRunning
				return m, tea.Batch(m.execute(line), m.spinner.Tick)

			case StateChoosing:
				answer := m.textInput.Value()
				m.textInput.Reset()
				m.textInput.Placeholder = "HELP"
				m.appendLog(LogEntry{Message: answer, Echo: true})
				m.state = StateRunning
				return m, tea.Batch(m.bridge.answer(answer), waitForPrompt(m.bridge.prompts), m.spinner.Tick)
			}
		}

	case spinner.TickMsg:
		if m.state == StateRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case EventMsg:
		m.appendLog(LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		cmds = append(cmds, waitForEvent(m.bridge.events))

	case PromptMsg:
		m.state = StateChoosing
		m.textInput.Placeholder = fmt.Sprintf("1-%d, anything else for no", msg.Count)

	case CommandDoneMsg:
		if errors.Is(msg.Err, command.ErrExit) {
			return m, tea.Quit
		}
		m.state = StateInput
	}

	// Update text input
	if m.state == StateInput || m.state == StateChoosing {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// execute runs one command line on a worker goroutine.
func (m Model) execute(line string) tea.Cmd {
	d := m.dispatcher
	return func() tea.Msg {
		return CommandDoneMsg{Err: d.Execute(line)}
	}
}

func (m *Model) appendLog(entry LogEntry) {
	m.logs = append(m.logs, entry)
	// Keep only the last maxLogs lines
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderLogs())
	m.viewport.GotoBottom()
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("▶ Video Player"))
	b.WriteString("\n")

	b.WriteString(boxStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.textInput.View())
	case StateRunning:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Running..."))
	case StateChoosing:
		b.WriteString(subtitleStyle.Render("? "))
		b.WriteString(m.textInput.View())
	}
	b.WriteString("\n")

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for i, log := range m.logs {
		if i > 0 {
			b.WriteString("\n")
		}
		if log.Echo {
			b.WriteString(dimStyle.Render(log.Message))
			continue
		}

		var style lipgloss.Style
		prefix := " "
		switch log.Level {
		case player.LevelError:
			style = errorStyle
			prefix = "✗"
		case player.LevelWarning:
			style = warningStyle
			prefix = "!"
		case player.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case player.LevelPrompt:
			style = subtitleStyle
			prefix = "?"
		default:
			style = infoStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: run • tab: complete • ↑/↓: history • pgup/pgdown: scroll • esc: quit"
	case StateChoosing:
		return "enter: answer • ctrl+c: quit"
	case StateRunning:
		return "ctrl+c: quit"
	}
	return ""
}

// Run starts the TUI application over catalog. opts are applied to the
// player controller; its output handler and chooser belong to the TUI.
func Run(catalog library.Catalog, settings *config.Settings, opts ...player.Option) error {
	b := NewBridge()
	defer b.close()

	opts = append(opts, player.WithChooser(b))
	ctrl := player.New(catalog, b.handle, opts...)

	p := tea.NewProgram(NewModel(command.New(ctrl, b.handle), b, settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
