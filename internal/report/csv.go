package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"leasetrack/internal/model"
)

// utf8BOM marks the payload as UTF-8 for spreadsheet apps that sniff the
// charset (standard declaration; see the import side, which strips it).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV renders entries with the raw field names as header, one row per
// entry, dates as yyyy-MM-dd. The output round-trips through the importer.
func CSV(entries []model.Entry, meta Meta) (File, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(model.Fields); err != nil {
		return File{}, err
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			strconv.Itoa(e.Week),
			e.Date.UTC().Format("2006-01-02"),
			e.TenantName,
			e.BusinessName,
			e.BusinessType,
			e.Contact,
			e.Notes,
			e.Status,
		}
		if err := w.Write(row); err != nil {
			return File{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return File{}, err
	}

	return File{Name: fileName(meta.Today, "csv"), Data: buf.Bytes()}, nil
}
