package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"leasetrack/internal/model"
)

const xlsxSheet = "Leasing Report"

// Fixed presentation constants for the spreadsheet layout.
var xlsxColWidths = []float64{6, 8, 13, 22, 24, 16, 22, 28, 16}

const (
	xlsxTitleRowHeight  = 26.0
	xlsxHeaderRowHeight = 24.0
	xlsxDataRowHeight   = 22.0
)

func thinBorders() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	out := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		out = append(out, excelize.Border{Type: s, Color: "000000", Style: 1})
	}
	return out
}

// XLSX renders a styled sheet: merged title band, period and staff lines,
// a blank separator, a shaded header row, and one bordered data row per
// entry (first three columns centered, remainder left-aligned, all cells
// word-wrapped).
func XLSX(entries []model.Entry, meta Meta) (File, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return File{}, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(Headers))
	if err != nil {
		return File{}, err
	}

	for i, w := range xlsxColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return File{}, err
		}
		if err := f.SetColWidth(xlsxSheet, col, col, w); err != nil {
			return File{}, err
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return File{}, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
		Border:    thinBorders(),
	})
	if err != nil {
		return File{}, err
	}
	centerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return File{}, err
	}
	leftStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return File{}, err
	}

	// Rows 1-3: title band (merged across all columns), period, staff.
	if err := f.MergeCell(xlsxSheet, "A1", lastCol+"1"); err != nil {
		return File{}, err
	}
	if err := f.SetCellValue(xlsxSheet, "A1", meta.Title); err != nil {
		return File{}, err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", lastCol+"1", titleStyle); err != nil {
		return File{}, err
	}
	if err := f.SetRowHeight(xlsxSheet, 1, xlsxTitleRowHeight); err != nil {
		return File{}, err
	}
	if err := f.SetCellValue(xlsxSheet, "A2", meta.Period); err != nil {
		return File{}, err
	}
	if err := f.SetCellValue(xlsxSheet, "A3", meta.Staff); err != nil {
		return File{}, err
	}

	// Row 4 stays blank; row 5 is the column header.
	const headerRow = 5
	for i, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return File{}, err
		}
		if err := f.SetCellValue(xlsxSheet, cell, h); err != nil {
			return File{}, err
		}
	}
	if err := f.SetCellStyle(xlsxSheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), headerStyle); err != nil {
		return File{}, err
	}
	if err := f.SetRowHeight(xlsxSheet, headerRow, xlsxHeaderRowHeight); err != nil {
		return File{}, err
	}

	for i, e := range entries {
		row := headerRow + 1 + i
		for j, val := range displayRow(i+1, e) {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return File{}, err
			}
			if err := f.SetCellValue(xlsxSheet, cell, val); err != nil {
				return File{}, err
			}
		}
		// First three columns centered, remainder left-aligned.
		if err := f.SetCellStyle(xlsxSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), centerStyle); err != nil {
			return File{}, err
		}
		if err := f.SetCellStyle(xlsxSheet, fmt.Sprintf("D%d", row), fmt.Sprintf("%s%d", lastCol, row), leftStyle); err != nil {
			return File{}, err
		}
		if err := f.SetRowHeight(xlsxSheet, row, xlsxDataRowHeight); err != nil {
			return File{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return File{}, err
	}
	return File{Name: fileName(meta.Today, "xlsx"), Data: buf.Bytes()}, nil
}
