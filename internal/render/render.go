// Package render rasterises partition frames at buffer resolution.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/piwi3910/rectcut/internal/model"
)

// Drawing colours.
var (
	Background = color.RGBA{A: 255}
	Outline    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Preview    = color.RGBA{R: 200, A: 255}
)

// Image draws the outline of every rectangle and, when preview is not nil,
// the preview segment into a new image the size of buffer. Pixels outside
// the buffer are clipped.
func Image(rects []model.Rect, preview *model.Segment, buffer model.Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buffer.Width, buffer.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	for _, r := range rects {
		StrokeRect(img, r, Outline)
	}
	if preview != nil {
		Line(img, *preview, Preview)
	}
	return img
}

// StrokeRect draws the border pixels of r. Empty rectangles draw nothing.
func StrokeRect(img *image.RGBA, r model.Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	for x := r.Left; x < r.Right(); x++ {
		img.SetRGBA(x, r.Top, c)
		img.SetRGBA(x, r.Bottom()-1, c)
	}
	for y := r.Top; y < r.Bottom(); y++ {
		img.SetRGBA(r.Left, y, c)
		img.SetRGBA(r.Right()-1, y, c)
	}
}

// Line draws an axis-aligned segment with inclusive end points. Diagonal
// segments are not produced by the partition and are drawn as their
// bounding box outline.
func Line(img *image.RGBA, s model.Segment, c color.RGBA) {
	x0, x1 := min(s.Start.X, s.End.X), max(s.Start.X, s.End.X)
	y0, y1 := min(s.Start.Y, s.End.Y), max(s.Start.Y, s.End.Y)
	StrokeRect(img, model.NewRect(x0, y0, x1-x0+1, y1-y0+1), c)
}

// Scale upscales src by an integer factor with nearest-neighbour sampling.
func Scale(src *image.RGBA, factor int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
