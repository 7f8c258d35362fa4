// Package partition implements a flat binary space partition of a root
// rectangle built by successive cuts at user-chosen points.
package partition

import "github.com/piwi3910/rectcut/internal/model"

// Partition is an ordered list of disjoint rectangles whose union is the
// root rectangle. Cuts replace one rectangle with its two halves, appended
// at the end of the list; the order carries no tree structure.
type Partition struct {
	root        model.Rect
	rects       []*model.Rect
	orientation model.Orientation
	preview     *model.Segment
}

// New returns a partition holding only root. The first cut is vertical.
func New(root model.Rect) *Partition {
	r := root
	return &Partition{
		root:        root,
		rects:       []*model.Rect{&r},
		orientation: model.Vertical,
	}
}

// Root returns the rectangle the partition was created with.
func (p *Partition) Root() model.Rect { return p.root }

// Orientation returns the orientation the next cut will use.
func (p *Partition) Orientation() model.Orientation { return p.orientation }

// Len returns the number of live rectangles.
func (p *Partition) Len() int { return len(p.rects) }

// Rects returns a copy of the live rectangles in partition order.
func (p *Partition) Rects() []model.Rect {
	out := make([]model.Rect, len(p.rects))
	for i, r := range p.rects {
		out[i] = *r
	}
	return out
}

// Rect returns a live handle to the i-th rectangle. Writes through the
// handle change the partition; the handle stays valid until that rectangle
// is cut.
func (p *Partition) Rect(i int) *model.Rect {
	if i < 0 || i >= len(p.rects) {
		return nil
	}
	return p.rects[i]
}

// Area returns the summed area of all live rectangles.
func (p *Partition) Area() int {
	total := 0
	for _, r := range p.rects {
		total += r.Area()
	}
	return total
}

// Preview returns the line the next cut would follow, if the last preview
// request hit a rectangle's interior.
func (p *Partition) Preview() (model.Segment, bool) {
	if p.preview == nil {
		return model.Segment{}, false
	}
	return *p.preview, true
}

// hit returns the index of the first rectangle whose interior holds pos,
// or -1. Border pixels never match.
func (p *Partition) hit(pos model.Point) int {
	for i, r := range p.rects {
		if r.InteriorContains(pos) {
			return i
		}
	}
	return -1
}

// Cut splits the rectangle whose interior holds pos along the current
// orientation. It reports whether a cut happened; positions on a border or
// outside every rectangle leave the partition unchanged.
func (p *Partition) Cut(pos model.Point) bool {
	i := p.hit(pos)
	if i < 0 {
		return false
	}
	parent := *p.rects[i]
	a, b := Split(parent, p.orientation, pos)

	p.rects = append(p.rects[:i], p.rects[i+1:]...)
	p.rects = append(p.rects, &a, &b)
	return true
}

// UpdatePreview sets the preview to the line a cut at pos would make, or
// clears it when pos is not inside any rectangle's interior. It reports
// whether a preview is now set.
func (p *Partition) UpdatePreview(pos model.Point) bool {
	i := p.hit(pos)
	if i < 0 {
		p.preview = nil
		return false
	}
	line := CutLine(*p.rects[i], p.orientation, pos)
	p.preview = &line
	return true
}

// ClearPreview removes any preview line.
func (p *Partition) ClearPreview() {
	p.preview = nil
}

// SwitchDirection toggles the orientation of the next cut and returns it.
// Existing rectangles and the current preview are left alone.
func (p *Partition) SwitchDirection() model.Orientation {
	p.orientation = p.orientation.Toggle()
	return p.orientation
}
