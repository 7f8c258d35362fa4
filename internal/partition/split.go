package partition

import "github.com/piwi3910/rectcut/internal/model"

// Split divides r into two rectangles at pos along orientation o.
//
// A vertical split yields the part left of pos.X and the part from pos.X to
// the right edge; a horizontal split yields the part above pos.Y and the part
// from pos.Y to the bottom. Both parts keep r's extent on the other axis.
// When pos lies on r's left or top edge the first part is degenerate.
func Split(r model.Rect, o model.Orientation, pos model.Point) (model.Rect, model.Rect) {
	if o == model.Horizontal {
		a := model.NewRect(r.Left, r.Top, r.Width, pos.Y-r.Top)
		b := model.NewRect(r.Left, pos.Y, r.Width, r.Bottom()-pos.Y)
		return a, b
	}
	a := model.NewRect(r.Left, r.Top, pos.X-r.Left, r.Height)
	b := model.NewRect(pos.X, r.Top, r.Right()-pos.X, r.Height)
	return a, b
}

// CutLine returns the segment a cut of r at pos would follow. End points are
// inclusive, so the line stops on r's last column or row.
func CutLine(r model.Rect, o model.Orientation, pos model.Point) model.Segment {
	if o == model.Horizontal {
		return model.Segment{
			Start: model.Pt(r.Left, pos.Y),
			End:   model.Pt(r.Right()-1, pos.Y),
		}
	}
	return model.Segment{
		Start: model.Pt(pos.X, r.Top),
		End:   model.Pt(pos.X, r.Bottom()-1),
	}
}
