package player

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/video-player/internal/library"
	"github.com/handiism/video-player/internal/model"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=../mocks/mock_player.go -package=mocks github.com/handiism/video-player/internal/player Chooser,Randomizer

// Level indicates the kind of a player message.
type Level int

const (
	// LevelInfo is a plain output line such as a listing entry.
	LevelInfo Level = iota

	// LevelSuccess reports a completed state change.
	LevelSuccess

	// LevelWarning reports a rejected command; state is unchanged.
	LevelWarning

	// LevelError reports an infrastructure failure (for example an export I/O error).
	LevelError

	// LevelPrompt asks the user for input.
	LevelPrompt
)

// Event is a single line of player output.
type Event struct {
	Message string
	Level   Level
}

// Handler receives player output, one event per line.
type Handler func(Event)

// WriterHandler returns a Handler printing each message as a line to w.
func WriterHandler(w io.Writer) Handler {
	return func(e Event) {
		fmt.Fprintln(w, e.Message)
	}
}

// Chooser supplies the optional selection after a search.
//
// Choose is called with the number of listed results and returns the
// 1-based number typed by the user. ok is false when the user made no
// numeric choice.
type Chooser interface {
	Choose(count int) (choice int, ok bool)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(count int) (int, bool)

// Choose calls f(count).
func (f ChooserFunc) Choose(count int) (int, bool) {
	return f(count)
}

// NoChoice is a Chooser that never selects anything. It is the default for
// non-interactive sessions.
var NoChoice Chooser = ChooserFunc(func(int) (int, bool) { return 0, false })

// Randomizer picks random indexes for PlayRandom. *rand.Rand satisfies it.
type Randomizer interface {
	// Intn returns a number in [0, n).
	Intn(n int) int
}

// State is the playback state of a Controller.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Controller owns the playback state and the playlists of one session and
// implements every user-facing operation.
//
// A Controller is not safe for concurrent use; operations are expected to
// run one after another.
type Controller struct {
	catalog  library.Catalog
	onEvent  Handler
	chooser  Chooser
	random   Randomizer
	exporter Exporter
	log      zerolog.Logger
	session  string

	current *model.Video
	paused  bool

	// playlists is keyed by model.NameKey of the display name.
	playlists map[string]*model.Playlist
}

// Option configures a Controller.
type Option func(*Controller)

// WithChooser sets the source of search selections.
func WithChooser(c Chooser) Option {
	return func(ctrl *Controller) {
		ctrl.chooser = c
	}
}

// WithRandomizer sets the random source used by PlayRandom.
func WithRandomizer(r Randomizer) Option {
	return func(ctrl *Controller) {
		ctrl.random = r
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(ctrl *Controller) {
		ctrl.log = l
	}
}

// WithExporter enables EXPORT_PLAYLIST.
func WithExporter(e Exporter) Option {
	return func(ctrl *Controller) {
		ctrl.exporter = e
	}
}

// New creates a Controller over catalog, sending output to onEvent.
//
// Without options the controller never selects search results, picks random
// videos from a time-seeded source and does not log.
func New(catalog library.Catalog, onEvent Handler, opts ...Option) *Controller {
	c := &Controller{
		catalog:   catalog,
		onEvent:   onEvent,
		chooser:   NoChoice,
		random:    rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       zerolog.Nop(),
		session:   uuid.NewString(),
		playlists: make(map[string]*model.Playlist),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("session", c.session).Logger()
	return c
}

// Session returns the unique id of this controller, used in logs.
func (c *Controller) Session() string {
	return c.session
}

// State returns the current playback state.
func (c *Controller) State() State {
	switch {
	case c.current == nil:
		return StateIdle
	case c.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// Current returns the video being played or paused, or nil when idle.
func (c *Controller) Current() *model.Video {
	return c.current
}

// Playlist returns the playlist with the given name (case-insensitive).
func (c *Controller) Playlist(name string) (*model.Playlist, bool) {
	p, ok := c.playlists[model.NameKey(name)]
	return p, ok
}

func (c *Controller) emit(level Level, format string, args ...any) {
	if c.onEvent == nil {
		return
	}
	c.onEvent(Event{Message: fmt.Sprintf(format, args...), Level: level})
}

func (c *Controller) info(format string, args ...any) {
	c.emit(LevelInfo, format, args...)
}

func (c *Controller) success(format string, args ...any) {
	c.emit(LevelSuccess, format, args...)
}

func (c *Controller) warn(format string, args ...any) {
	c.emit(LevelWarning, format, args...)
}
