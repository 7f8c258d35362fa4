package model

// Size is a width and height pair in pixels or partition units.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Viewport maps screen pixels onto a smaller partition buffer by an integer
// scale on each axis.
type Viewport struct {
	Screen Size
	Buffer Size
	XScale int
	YScale int
}

// NewViewport builds a viewport for the given screen and buffer sizes. Scale
// factors are the integer quotients of screen and buffer, clamped to 1.
func NewViewport(screen, buffer Size) Viewport {
	v := Viewport{Screen: screen, Buffer: buffer, XScale: 1, YScale: 1}
	if buffer.Width > 0 && screen.Width/buffer.Width > 0 {
		v.XScale = screen.Width / buffer.Width
	}
	if buffer.Height > 0 && screen.Height/buffer.Height > 0 {
		v.YScale = screen.Height / buffer.Height
	}
	return v
}

// ScaledViewport is a viewport whose screen is buffer multiplied by scale.
func ScaledViewport(buffer Size, scale int) Viewport {
	return NewViewport(Size{Width: buffer.Width * scale, Height: buffer.Height * scale}, buffer)
}

// ToSpace converts a screen position to partition space.
func (v Viewport) ToSpace(x, y int) Point {
	return Point{X: floorDiv(x, v.XScale), Y: floorDiv(y, v.YScale)}
}

// ToScreen converts a partition position to the top-left screen pixel that
// covers it.
func (v Viewport) ToScreen(p Point) (x, y int) {
	return p.X * v.XScale, p.Y * v.YScale
}

// floorDiv divides rounding toward negative infinity so positions left of or
// above the screen origin stay outside the buffer.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
