package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"leasetrack/internal/model"
)

// Column widths in mm. The first three are fixed; the remaining six split
// the rest of a landscape A4 content width (297 - 2*10 margins = 277).
var pdfColWidths = []float64{10, 14, 24, 38, 40, 30, 38, 52, 31}

// PDF renders a landscape table: centered bold title, period and staff
// lines, shaded bold header row, 7pt body text.
func PDF(entries []model.Entry, meta Meta) (File, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	// Pin the embedded creation date so identical input yields identical bytes.
	pdf.SetCreationDate(meta.Today.UTC())
	pdf.SetModificationDate(meta.Today.UTC())
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	// The core Helvetica font is cp1252; UTF-8 input (accented tenant names,
	// a translated title) must go through the codepage translator or it
	// renders as mojibake.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, tr(meta.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(meta.Period), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(meta.Staff), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(217, 217, 217)
		for i, h := range Headers {
			pdf.CellFormat(pdfColWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	pdf.SetFont("Helvetica", "", 7)
	for i, e := range entries {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			header()
			pdf.SetFont("Helvetica", "", 7)
		}
		for j, val := range displayRow(i+1, e) {
			align := "L"
			if j < 3 {
				align = "C"
			}
			pdf.CellFormat(pdfColWidths[j], 6, tr(val), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return File{}, err
	}
	return File{Name: fileName(meta.Today, "pdf"), Data: buf.Bytes()}, nil
}
