// Package export renders the current partition to files for printing,
// CAD/CNC and spreadsheets. Exports are one-way; nothing here reads a
// partition back.
package export

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/piwi3910/rectcut/internal/model"
	"github.com/piwi3910/rectcut/internal/partition"
)

// Layout is a snapshot of a partition to export.
type Layout struct {
	Bounds model.Rect
	Pieces []model.Rect
}

// FromPartition snapshots p.
func FromPartition(p *partition.Partition) Layout {
	return Layout{Bounds: p.Root(), Pieces: p.Rects()}
}

// TotalArea returns the summed area of all pieces.
func (l Layout) TotalArea() int {
	total := 0
	for _, r := range l.Pieces {
		total += r.Area()
	}
	return total
}

// PieceInfo identifies one piece on a label or in a cut list.
type PieceInfo struct {
	ID     string `json:"id"`
	Index  int    `json:"index"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Name is the short human label printed next to a piece.
func (p PieceInfo) Name() string {
	return fmt.Sprintf("#%d", p.Index)
}

// CollectPieces lists the layout's pieces in partition order with 1-based
// indices and fresh short IDs.
func CollectPieces(l Layout) []PieceInfo {
	pieces := make([]PieceInfo, 0, len(l.Pieces))
	for i, r := range l.Pieces {
		pieces = append(pieces, PieceInfo{
			ID:     uuid.New().String()[:8],
			Index:  i + 1,
			Left:   r.Left,
			Top:    r.Top,
			Width:  r.Width,
			Height: r.Height,
		})
	}
	return pieces
}

func checkLayout(l Layout) error {
	if len(l.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}
	if l.Bounds.Empty() {
		return fmt.Errorf("layout bounds %v are empty", l.Bounds)
	}
	return nil
}
