package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PiecesSheet is the worksheet name used by ExportXLSX.
const PiecesSheet = "Pieces"

var xlsxHeader = []string{"ID", "Index", "Left", "Top", "Width", "Height", "Area"}

// ExportXLSX writes a cut list with one row per piece and a totals row.
func ExportXLSX(path string, layout Layout) error {
	if err := checkLayout(layout); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PiecesSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, h := range xlsxHeader {
		if err := setCell(f, col+1, 1, h); err != nil {
			return err
		}
	}

	pieces := CollectPieces(layout)
	for i, p := range pieces {
		row := i + 2
		values := []any{p.ID, p.Index, p.Left, p.Top, p.Width, p.Height, p.Width * p.Height}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	totalRow := len(pieces) + 2
	if err := setCell(f, 1, totalRow, "Total"); err != nil {
		return err
	}
	if err := setCell(f, len(xlsxHeader), totalRow, layout.TotalArea()); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell %d,%d: %w", col, row, err)
	}
	if err := f.SetCellValue(PiecesSheet, cell, v); err != nil {
		return fmt.Errorf("failed to set %s: %w", cell, err)
	}
	return nil
}
