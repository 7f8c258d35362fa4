package session

import (
	"github.com/piwi3910/rectcut/internal/drag"
	"github.com/piwi3910/rectcut/internal/input"
	"github.com/piwi3910/rectcut/internal/model"
	"github.com/piwi3910/rectcut/internal/partition"
)

// DragSession splits the root once down the middle and lets the pointer
// drag the shared edge of the two halves. Only this one pair is linked;
// later cuts are not part of this mode.
type DragSession struct {
	part   *partition.Partition
	link   *drag.LinkedEdges
	ctrl   *drag.Controller
	cursor drag.CursorHint
}

// NewDragSession returns a drag session over root. A root too narrow to
// have an interior column stays whole and nothing can be dragged.
func NewDragSession(root model.Rect) *DragSession {
	part := partition.New(root)
	s := &DragSession{part: part}

	mid := model.Pt(root.Left+root.Width/2, root.Top+root.Height/2)
	if part.Cut(mid) {
		s.link = drag.LinkVertical(part.Rect(0), part.Rect(1))
		s.ctrl = drag.NewController(s.link)
	} else {
		s.ctrl = drag.NewController()
	}
	return s
}

func (s *DragSession) Mode() model.Mode                { return model.ModeDrag }
func (s *DragSession) Partition() *partition.Partition { return s.part }

// Link returns the linked pair, or nil when the root could not be split.
func (s *DragSession) Link() *drag.LinkedEdges { return s.link }

// Controller returns the drag state machine.
func (s *DragSession) Controller() *drag.Controller { return s.ctrl }

// Handlers implements Session.
func (s *DragSession) Handlers(quit func()) input.Handlers {
	return input.Handlers{
		input.KeyDown:       quitHandler(quit),
		input.PointerDown:   s.pointerDown,
		input.PointerUp:     s.pointerUp,
		input.PointerMotion: s.pointerMotion,
	}
}

func (s *DragSession) pointerDown(ev input.Event) {
	if ev.Button != input.ButtonLeft {
		return
	}
	if s.ctrl.PointerDown(ev.Pos) {
		Logger().Debug("grab", "pos", ev.Pos.String(), "axis", s.ctrl.Active().Axis.String())
	}
}

func (s *DragSession) pointerUp(ev input.Event) {
	if s.ctrl.State() == drag.Dragging {
		Logger().Debug("release", "pos", ev.Pos.String())
	}
	s.ctrl.PointerUp()
}

func (s *DragSession) pointerMotion(ev input.Event) {
	s.cursor = s.ctrl.PointerMotion(ev.Pos, ev.Delta)
}

// Frame implements Session. Drag mode never shows a preview line.
func (s *DragSession) Frame() Frame {
	return Frame{
		Bounds:      s.part.Root(),
		Rects:       s.part.Rects(),
		Cursor:      s.cursor,
		Orientation: s.part.Orientation(),
		Mode:        model.ModeDrag,
	}
}
