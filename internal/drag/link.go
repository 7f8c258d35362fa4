package drag

import "github.com/piwi3910/rectcut/internal/model"

// Axis selects which component of a pointer position or delta drives a link.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Of returns the component of p along the axis.
func (a Axis) Of(p model.Point) int {
	if a == AxisY {
		return p.Y
	}
	return p.X
}

// LinkedEdges ties one edge of each of two rectangles so they move as one.
type LinkedEdges struct {
	First  EdgeAttr
	Second EdgeAttr
	Axis   Axis
}

// NewLinkedEdges links a and b along axis.
func NewLinkedEdges(a, b EdgeAttr, axis Axis) *LinkedEdges {
	return &LinkedEdges{First: a, Second: b, Axis: axis}
}

// LinkVertical links the right edge of left with the left edge of right,
// the pair produced by a vertical cut.
func LinkVertical(left, right *model.Rect) *LinkedEdges {
	return NewLinkedEdges(NewEdgeAttr(left, RightEdge), NewEdgeAttr(right, LeftEdge), AxisX)
}

// Collides reports whether either member edge exposes v.
func (l *LinkedEdges) Collides(v int) bool {
	return l.First.Collides(v) || l.Second.Collides(v)
}

// ApplyDelta adds amount to both member edges. Nothing stops the drag from
// crossing the opposite edge of either rectangle.
func (l *LinkedEdges) ApplyDelta(amount int) {
	l.First.SetValue(l.First.Value() + amount)
	l.Second.SetValue(l.Second.Value() + amount)
}
