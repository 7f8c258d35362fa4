package model

// Orientation is the axis along which the next cut splits a rectangle.
type Orientation int

const (
	Vertical   Orientation = iota // Split into left and right parts
	Horizontal                    // Split into top and bottom parts
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	default:
		return "Vertical"
	}
}

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}
