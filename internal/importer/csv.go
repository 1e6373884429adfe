// Package importer parses an uploaded CSV into entries. The import is
// all-or-nothing: the first invalid row aborts the whole parse with a
// RowError naming the row, and the caller's store is left untouched.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"leasetrack/internal/model"
	"leasetrack/internal/store"
)

// RowError reports the row that made an import fail.
type RowError struct {
	Line   int    // 1-based data row number (header excluded)
	Raw    string // the offending row as read
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("import aborted at row %d: %s (row: %s)", e.Line, e.Reason, e.Raw)
}

// dateLayouts are the accepted input formats, day-first before US-style.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses any accepted calendar-date representation.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %q", s)
}

// ParseCSV reads a comma-separated file with a header row and returns the
// parsed entries. Column order is free; column names must match the entry
// field names. Rows missing date or tenantName, with an unparseable date,
// with a non-integer week, or repeating an id abort the parse. Rows without
// an id get a freshly generated one.
func ParseCSV(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	col := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		col[h] = i
	}
	for _, required := range []string{model.FieldDate, model.FieldTenantName} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv header is missing column %q", required)
		}
	}

	cell := func(row []string, field string) string {
		i, ok := col[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var entries []model.Entry
	seen := map[string]bool{}
	line := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		line++
		raw := strings.Join(row, ",")

		dateStr := cell(row, model.FieldDate)
		tenant := cell(row, model.FieldTenantName)
		if dateStr == "" || tenant == "" {
			return nil, &RowError{Line: line, Raw: raw, Reason: "date and tenantName are required"}
		}

		date, err := ParseDate(dateStr)
		if err != nil {
			return nil, &RowError{Line: line, Raw: raw, Reason: err.Error()}
		}

		week := 0
		if w := cell(row, model.FieldWeek); w != "" {
			week, err = strconv.Atoi(w)
			if err != nil || week < 0 {
				return nil, &RowError{Line: line, Raw: raw, Reason: fmt.Sprintf("invalid week: %q", w)}
			}
		}

		id := cell(row, model.FieldID)
		if id == "" {
			id = store.NewEntryID()
			for seen[id] {
				id = store.NewEntryIDLong()
			}
		} else if seen[id] {
			return nil, &RowError{Line: line, Raw: raw, Reason: fmt.Sprintf("duplicate id: %q", id)}
		}
		seen[id] = true

		entries = append(entries, model.Entry{
			ID:           id,
			Week:         week,
			Date:         date,
			TenantName:   tenant,
			BusinessName: cell(row, model.FieldBusinessName),
			BusinessType: cell(row, model.FieldBusinessType),
			Contact:      cell(row, model.FieldContact),
			Notes:        cell(row, model.FieldNotes),
			Status:       cell(row, model.FieldStatus),
		})
	}

	return entries, nil
}
