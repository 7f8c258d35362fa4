package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/piwi3910/rectcut/internal/model"
)

// DXF layer names.
const (
	LayerBounds = "BOUNDS"
	LayerPieces = "PIECES"
)

// ExportDXF writes every rectangle as four LINE entities. The bounds go on
// LayerBounds and the pieces on LayerPieces. Y is flipped about the bounds
// so the drawing is upright in CAD, where Y grows upward.
func ExportDXF(path string, layout Layout) error {
	if err := checkLayout(layout); err != nil {
		return err
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(LayerBounds, color.White, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerBounds, err)
	}
	if err := writeRect(d, layout.Bounds, layout.Bounds); err != nil {
		return err
	}

	if _, err := d.AddLayer(LayerPieces, color.Cyan, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerPieces, err)
	}
	for _, r := range layout.Pieces {
		if err := writeRect(d, r, layout.Bounds); err != nil {
			return err
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

// writeRect adds the four sides of r to the current layer.
func writeRect(d *drawing.Drawing, r, bounds model.Rect) error {
	flip := func(y int) float64 { return float64(bounds.Bottom() - (y - bounds.Top)) }
	x0, x1 := float64(r.Left), float64(r.Right())
	y0, y1 := flip(r.Top), flip(r.Bottom())

	sides := [4][4]float64{
		{x0, y0, x1, y0},
		{x1, y0, x1, y1},
		{x1, y1, x0, y1},
		{x0, y1, x0, y0},
	}
	for _, s := range sides {
		if _, err := d.Line(s[0], s[1], 0, s[2], s[3], 0); err != nil {
			return fmt.Errorf("failed to add line for %v: %w", r, err)
		}
	}
	return nil
}
