// Package term runs a partition session in a terminal. Each cell is one
// partition unit.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/piwi3910/rectcut/internal/input"
	"github.com/piwi3910/rectcut/internal/model"
	"github.com/piwi3910/rectcut/internal/render"
	"github.com/piwi3910/rectcut/internal/session"
)

var (
	outlineStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(200, 200, 200))
	previewStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(200, 0, 0))
)

// Terminal drives a session from tcell events.
type Terminal struct {
	screen  tcell.Screen
	session session.Session
	engine  *input.Engine
	tracker input.Tracker
	buttons tcell.ButtonMask
}

// New binds s to an initialised screen.
func New(screen tcell.Screen, s session.Session) *Terminal {
	t := &Terminal{screen: screen, session: s, engine: input.NewEngine()}
	t.engine.SetHandlers(s.Handlers(t.engine.Quit))
	screen.EnableMouse(tcell.MouseMotionEvents)
	return t
}

// Running reports whether the session still accepts events.
func (t *Terminal) Running() bool { return t.engine.Running() }

// Run draws and handles events until the session quits or the screen is
// finalised.
func (t *Terminal) Run() {
	t.Draw()
	for t.engine.Running() {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.HandleEvent(ev)
		t.Draw()
	}
}

// HandleEvent translates one tcell event into session events.
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if out, ok := keyEvent(ev.Key(), ev.Rune()); ok {
			t.engine.Dispatch(out)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		for _, out := range t.mouseEvents(model.Pt(x, y), ev.Buttons()) {
			t.engine.Dispatch(out)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// keyEvent maps a key press to a session event. Ctrl+C quits directly.
func keyEvent(key tcell.Key, r rune) (input.Event, bool) {
	switch key {
	case tcell.KeyEscape:
		return input.Event{Kind: input.KeyDown, Key: input.KeyEscape}, true
	case tcell.KeyCtrlC:
		return input.Event{Kind: input.Quit}, true
	case tcell.KeyRune:
		return input.Event{Kind: input.KeyDown, Key: string(r)}, true
	}
	return input.Event{}, false
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button input.Button
}{
	{tcell.Button1, input.ButtonLeft},
	{tcell.Button2, input.ButtonRight},
	{tcell.Button3, input.ButtonMiddle},
}

// mouseEvents turns a tcell mouse report, which carries the full button
// state, into a motion event followed by any press or release transitions.
func (t *Terminal) mouseEvents(pos model.Point, buttons tcell.ButtonMask) []input.Event {
	events := []input.Event{t.tracker.Motion(pos)}
	if events[0].Delta == (model.Point{}) && t.buttons != buttons {
		// Pure button change; skip the empty motion.
		events = events[:0]
	}
	for _, b := range mouseButtons {
		was := t.buttons&b.mask != 0
		is := buttons&b.mask != 0
		switch {
		case is && !was:
			events = append(events, input.Event{Kind: input.PointerDown, Pos: pos, Button: b.button})
		case was && !is:
			events = append(events, input.Event{Kind: input.PointerUp, Pos: pos, Button: b.button})
		}
	}
	t.buttons = buttons
	return events
}

// Draw renders the session's frame.
func (t *Terminal) Draw() {
	f := t.session.Frame()
	w, h := t.screen.Size()
	img := render.Image(f.Rects, f.Preview, model.Size{Width: w, Height: h})

	t.screen.Clear()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch img.RGBAAt(x, y) {
			case render.Outline:
				t.screen.SetContent(x, y, ' ', nil, outlineStyle)
			case render.Preview:
				t.screen.SetContent(x, y, ' ', nil, previewStyle)
			}
		}
	}
	t.screen.Show()
}

// BufferFor returns a config whose buffer is the screen size at scale 1.
func BufferFor(cfg model.AppConfig, screen tcell.Screen) model.AppConfig {
	w, h := screen.Size()
	cfg.BufferWidth = w
	cfg.BufferHeight = h
	cfg.Scale = 1
	return cfg
}
