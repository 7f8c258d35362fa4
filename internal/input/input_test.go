package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/rectcut/internal/model"
)

func TestEngine_DispatchByKind(t *testing.T) {
	e := NewEngine()
	var got []Kind
	record := func(ev Event) { got = append(got, ev.Kind) }
	e.SetHandlers(Handlers{
		PointerDown:   record,
		PointerMotion: record,
	})

	e.Dispatch(Event{Kind: PointerDown})
	e.Dispatch(Event{Kind: PointerUp}) // no handler
	e.Dispatch(Event{Kind: PointerMotion})

	assert.Equal(t, []Kind{PointerDown, PointerMotion}, got)
	assert.True(t, e.Running())
}

func TestEngine_QuitEventStops(t *testing.T) {
	e := NewEngine()
	calls := 0
	e.SetHandlers(Handlers{KeyDown: func(Event) { calls++ }})

	e.Dispatch(Event{Kind: Quit})
	assert.False(t, e.Running())

	e.Dispatch(Event{Kind: KeyDown, Key: "x"})
	assert.Equal(t, 0, calls, "stopped engine drops events")
}

func TestEngine_HandlerCanQuit(t *testing.T) {
	e := NewEngine()
	e.SetHandlers(Handlers{KeyDown: func(ev Event) {
		if ev.Key == KeyEscape {
			e.Quit()
		}
	}})

	e.Dispatch(Event{Kind: KeyDown, Key: "a"})
	assert.True(t, e.Running())
	e.Dispatch(Event{Kind: KeyDown, Key: KeyEscape})
	assert.False(t, e.Running())
}

func TestTracker_Deltas(t *testing.T) {
	var tr Tracker
	ev := tr.Motion(model.Pt(10, 10))
	assert.Equal(t, PointerMotion, ev.Kind)
	assert.Equal(t, model.Pt(0, 0), ev.Delta)

	ev = tr.Motion(model.Pt(13, 8))
	assert.Equal(t, model.Pt(3, -2), ev.Delta)

	tr.Reset()
	ev = tr.Motion(model.Pt(50, 50))
	assert.Equal(t, model.Pt(0, 0), ev.Delta)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "PointerMotion", PointerMotion.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
