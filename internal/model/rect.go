package model

import "fmt"

// Point is an integer position in partition space.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Segment is a line between two inclusive end points.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Rect is an axis-aligned integer rectangle. Right and Bottom are one unit
// beyond the last column and row covered by the rectangle.
//
// Zero width or height is allowed; a cut on a rectangle's exact origin
// produces one.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRect returns the rectangle with the given origin and size.
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns Left + Width.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns Top + Height.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Area returns Width * Height.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies within the rectangle, boundary pixels
// included. The right and bottom coordinates are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// OnBorder reports whether p lies on the outermost column or row of pixels
// of the rectangle.
func (r Rect) OnBorder(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.Left || p.X == r.Right()-1 || p.Y == r.Top || p.Y == r.Bottom()-1
}

// InteriorContains reports whether p lies inside the rectangle but off its
// border pixels. Only interior points may start a cut or a preview.
func (r Rect) InteriorContains(p Point) bool {
	return r.Contains(p) && !r.OnBorder(p)
}

// Intersect returns the overlap of r and s, or the zero Rect when they do
// not overlap.
func (r Rect) Intersect(s Rect) Rect {
	left := max(r.Left, s.Left)
	top := max(r.Top, s.Top)
	right := min(r.Right(), s.Right())
	bottom := min(r.Bottom(), s.Bottom())
	if right <= left || bottom <= top {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Overlaps reports whether the interiors of r and s share any area.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Intersect(s).Empty()
}

// Inset shrinks r by d on each axis, keeping it centred. Half of d is taken
// from each side with the origin shift truncated toward zero, so
// Inset((0,0,100,100), 25) is (12,12,75,75).
func Inset(r Rect, d int) Rect {
	return Rect{
		Left:   r.Left + d/2,
		Top:    r.Top + d/2,
		Width:  r.Width - d,
		Height: r.Height - d,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d,%d,%d,%d)", r.Left, r.Top, r.Width, r.Height)
}
