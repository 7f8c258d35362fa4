// Package drag moves the shared edge of two adjacent rectangles together.
package drag

import "github.com/piwi3910/rectcut/internal/model"

// Edge names one of the two vertical edges of a rectangle.
type Edge int

const (
	LeftEdge  Edge = iota // Absolute left coordinate; the right edge stays put when written
	RightEdge             // Exposed as the width; writing it moves the right edge
)

func (e Edge) String() string {
	if e == RightEdge {
		return "right"
	}
	return "left"
}

// EdgeAttr is a read/write view of one edge of one rectangle.
//
// The two edges are deliberately asymmetric: LeftEdge reads and writes the
// absolute left coordinate, RightEdge reads and writes the width. Adding the
// same delta to both views of a shared cut line moves that line by delta.
type EdgeAttr struct {
	rect *model.Rect
	edge Edge
}

// NewEdgeAttr returns a view of edge e of r.
func NewEdgeAttr(r *model.Rect, e Edge) EdgeAttr {
	return EdgeAttr{rect: r, edge: e}
}

// Rect returns the rectangle the view writes through.
func (a EdgeAttr) Rect() *model.Rect { return a.rect }

// Edge returns which edge the view names.
func (a EdgeAttr) Edge() Edge { return a.edge }

// Value returns the left coordinate for LeftEdge or the width for RightEdge.
func (a EdgeAttr) Value() int {
	if a.edge == RightEdge {
		return a.rect.Width
	}
	return a.rect.Left
}

// SetValue writes v. For RightEdge v becomes the width. For LeftEdge v
// becomes the left coordinate and the width changes by the opposite amount
// so the right edge does not move.
func (a EdgeAttr) SetValue(v int) {
	switch a.edge {
	case RightEdge:
		a.rect.Width = v
	case LeftEdge:
		diff := a.rect.Left - v
		a.rect.Left = v
		a.rect.Width += diff
	}
}

// Collides reports whether v equals the value the view exposes.
func (a EdgeAttr) Collides(v int) bool {
	return a.Value() == v
}
