// Package input defines the front-end neutral events the sessions consume
// and the engine that dispatches them.
package input

import "github.com/piwi3910/rectcut/internal/model"

// Kind identifies an input event.
type Kind int

const (
	KeyDown Kind = iota
	PointerDown
	PointerUp
	PointerMotion
	Quit
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "KeyDown"
	case PointerDown:
		return "PointerDown"
	case PointerUp:
		return "PointerUp"
	case PointerMotion:
		return "PointerMotion"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Key names used by the sessions.
const (
	KeyEscape = "Escape"
	KeyQ      = "q"
)

// Event is one input event with its position already in partition space.
type Event struct {
	Kind   Kind
	Pos    model.Point
	Delta  model.Point // PointerMotion only
	Button Button      // PointerDown and PointerUp only
	Key    string      // KeyDown only
}

// Handler reacts to one event.
type Handler func(Event)

// Handlers maps event kinds to their handler. Kinds without an entry are
// dropped.
type Handlers map[Kind]Handler

// Engine dispatches events to a fixed handler table and owns the running
// flag of the control loop.
type Engine struct {
	handlers Handlers
	running  bool
}

// NewEngine returns a running engine with no handlers.
func NewEngine() *Engine {
	return &Engine{running: true}
}

// SetHandlers installs the handler table. Sessions build their table once
// and the engine keeps it for the rest of the run.
func (e *Engine) SetHandlers(h Handlers) {
	e.handlers = h
}

// Running reports whether the loop should keep going.
func (e *Engine) Running() bool { return e.running }

// Quit stops the loop after the current event.
func (e *Engine) Quit() { e.running = false }

// Dispatch delivers ev to its handler. Quit events stop the engine directly.
// Events are ignored once the engine has stopped.
func (e *Engine) Dispatch(ev Event) {
	if !e.running {
		return
	}
	if ev.Kind == Quit {
		e.Quit()
		return
	}
	if h, ok := e.handlers[ev.Kind]; ok {
		h(ev)
	}
}

// Tracker turns absolute pointer positions into motion events with deltas.
type Tracker struct {
	last model.Point
	seen bool
}

// Motion returns a PointerMotion event for pos. The first motion has a zero
// delta.
func (t *Tracker) Motion(pos model.Point) Event {
	var delta model.Point
	if t.seen {
		delta = pos.Sub(t.last)
	}
	t.last = pos
	t.seen = true
	return Event{Kind: PointerMotion, Pos: pos, Delta: delta}
}

// Reset forgets the last position, for when the pointer leaves the surface.
func (t *Tracker) Reset() {
	t.seen = false
}
