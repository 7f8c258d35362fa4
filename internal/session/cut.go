package session

import (
	"github.com/piwi3910/rectcut/internal/drag"
	"github.com/piwi3910/rectcut/internal/input"
	"github.com/piwi3910/rectcut/internal/model"
	"github.com/piwi3910/rectcut/internal/partition"
)

// CutSession cuts rectangles on left click and switches orientation on
// right click. Pointer motion keeps the preview line under the pointer.
type CutSession struct {
	part *partition.Partition
}

// NewCutSession returns a cut session over a fresh partition of root.
func NewCutSession(root model.Rect) *CutSession {
	return &CutSession{part: partition.New(root)}
}

func (s *CutSession) Mode() model.Mode                { return model.ModeCut }
func (s *CutSession) Partition() *partition.Partition { return s.part }

// Handlers implements Session.
func (s *CutSession) Handlers(quit func()) input.Handlers {
	return input.Handlers{
		input.KeyDown:       quitHandler(quit),
		input.PointerDown:   s.pointerDown,
		input.PointerMotion: s.pointerMotion,
	}
}

func (s *CutSession) pointerDown(ev input.Event) {
	switch ev.Button {
	case input.ButtonLeft:
		if s.part.Cut(ev.Pos) {
			Logger().Debug("cut", "pos", ev.Pos.String(), "orientation", s.part.Orientation().String(), "rects", s.part.Len())
		}
	case input.ButtonRight:
		o := s.part.SwitchDirection()
		Logger().Debug("orientation", "next", o.String())
		s.part.UpdatePreview(ev.Pos)
	}
}

func (s *CutSession) pointerMotion(ev input.Event) {
	s.part.UpdatePreview(ev.Pos)
}

// Frame implements Session.
func (s *CutSession) Frame() Frame {
	f := Frame{
		Bounds:      s.part.Root(),
		Rects:       s.part.Rects(),
		Cursor:      drag.CursorDefault,
		Orientation: s.part.Orientation(),
		Mode:        model.ModeCut,
	}
	if seg, ok := s.part.Preview(); ok {
		f.Preview = &seg
	}
	return f
}
