package drag

import "github.com/piwi3910/rectcut/internal/model"

// State is the grab state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "Dragging"
	}
	return "Idle"
}

// CursorHint tells the front end which pointer shape fits the hover state.
type CursorHint int

const (
	CursorDefault CursorHint = iota
	CursorResizeHorizontal
	CursorResizeVertical
)

func (c CursorHint) String() string {
	switch c {
	case CursorResizeHorizontal:
		return "ResizeHorizontal"
	case CursorResizeVertical:
		return "ResizeVertical"
	default:
		return "Default"
	}
}

func hintFor(l *LinkedEdges) CursorHint {
	if l == nil {
		return CursorDefault
	}
	if l.Axis == AxisY {
		return CursorResizeVertical
	}
	return CursorResizeHorizontal
}

// Controller tracks which link, if any, the pointer has grabbed.
type Controller struct {
	links  []*LinkedEdges
	active *LinkedEdges
}

// NewController returns an idle controller over links. Hit tests try links
// in the given order.
func NewController(links ...*LinkedEdges) *Controller {
	return &Controller{links: links}
}

// State returns Dragging while a link is grabbed.
func (c *Controller) State() State {
	if c.active != nil {
		return Dragging
	}
	return Idle
}

// Active returns the grabbed link or nil.
func (c *Controller) Active() *LinkedEdges { return c.active }

// HitTest returns the first link whose edge lies under pos along the
// link's axis, or nil.
func (c *Controller) HitTest(pos model.Point) *LinkedEdges {
	for _, l := range c.links {
		if l.Collides(l.Axis.Of(pos)) {
			return l
		}
	}
	return nil
}

// PointerDown grabs the link under pos. It reports whether a link was grabbed.
func (c *Controller) PointerDown(pos model.Point) bool {
	if l := c.HitTest(pos); l != nil {
		c.active = l
		return true
	}
	return false
}

// PointerUp releases any grabbed link.
func (c *Controller) PointerUp() {
	c.active = nil
}

// PointerMotion drags the grabbed link by the delta component along its
// axis. While idle it only hit-tests pos. The result is the cursor hint for
// the new state.
func (c *Controller) PointerMotion(pos, delta model.Point) CursorHint {
	if c.active != nil {
		if d := c.active.Axis.Of(delta); d != 0 {
			c.active.ApplyDelta(d)
		}
		return hintFor(c.active)
	}
	return hintFor(c.HitTest(pos))
}
