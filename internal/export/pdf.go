package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes a single-page PDF with the partition outline, each piece
// outlined and numbered, and a stats line.
func ExportPDF(path string, layout Layout) error {
	if err := checkLayout(layout); err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()
	renderLayoutPage(pdf, layout)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func renderLayoutPage(pdf *fpdf.Fpdf, layout Layout) {
	b := layout.Bounds

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Partition %d x %d", b.Width, b.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Area: %d of %d", len(layout.Pieces), layout.TotalArea(), b.Area())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth/float64(b.Width), drawHeight/float64(b.Height))

	canvasW := float64(b.Width) * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Bounds
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, float64(b.Height)*scale, "D")

	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)
	for i, r := range layout.Pieces {
		px := offsetX + float64(r.Left-b.Left)*scale
		py := offsetY + float64(r.Top-b.Top)*scale
		pw := float64(r.Width) * scale
		ph := float64(r.Height) * scale
		pdf.Rect(px, py, pw, ph, "D")

		if pw > 8 && ph > 6 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			label := fmt.Sprintf("%d", i+1)
			lw := pdf.GetStringWidth(label)
			pdf.SetXY(px+(pw-lw)/2, py+ph/2-2)
			pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
		}
	}
}

// labelFontSize picks a font size that fits the piece rectangle.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w, h) / 3
	return math.Max(5, math.Min(size, 10))
}
