package export

import (
	"fmt"
	"image/png"
	"os"

	"github.com/piwi3910/rectcut/internal/model"
	"github.com/piwi3910/rectcut/internal/render"
)

// ExportPNG renders the layout at buffer size and upscales it by scale with
// nearest-neighbour sampling, so each partition unit becomes a scale x scale
// block.
func ExportPNG(path string, layout Layout, buffer model.Size, scale int) error {
	if err := checkLayout(layout); err != nil {
		return err
	}
	if scale <= 0 {
		return fmt.Errorf("scale must be > 0, got %d", scale)
	}

	dst := render.Scale(render.Image(layout.Pieces, nil, buffer), scale)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PNG: %w", err)
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	return nil
}
