// Package report renders the final sorted/filtered entry sequence into
// downloadable report payloads (CSV, XLSX, PDF). Every formatter is a pure
// transformation: same entries + same metadata + same Today value => same
// file name and (format permitting) same bytes.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"leasetrack/internal/model"
)

// Meta is the report chrome shared by all formatters. Today is injected by
// the caller so exports are reproducible.
type Meta struct {
	Title  string
	Period string
	Staff  string
	Today  time.Time
}

// File is a rendered report ready to hand to the user.
type File struct {
	Name string
	Data []byte
}

// Headers are the display column headers, in order. The first column is a
// sequence number; the rest map 1:1 to entry fields.
var Headers = []string{
	"No.",
	"Week",
	"Date",
	"Tenant Name",
	"Business Name",
	"Business Type",
	"Contact",
	"Notes",
	"Status",
}

func fileName(today time.Time, ext string) string {
	return fmt.Sprintf("leasing_report_%s.%s", today.UTC().Format("2006-01-02"), ext)
}

// PeriodLabel renders the reporting-period line for a date range.
func PeriodLabel(r model.DateRange) string {
	if r.From == nil {
		return "Period: all dates"
	}
	from := model.DayUTC(*r.From).Format("02/01/2006")
	to := from
	if r.To != nil {
		to = model.DayUTC(*r.To).Format("02/01/2006")
	}
	if from == to {
		return "Period: " + from
	}
	return fmt.Sprintf("Period: %s - %s", from, to)
}

// StaffLabel renders the staff-name line.
func StaffLabel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Prepared by: -"
	}
	return "Prepared by: " + name
}

// displayRow maps an entry to its display cells; seq is 1-based. Dates are
// shown as dd/MM/yyyy on reports (the CSV export keeps yyyy-MM-dd).
func displayRow(seq int, e model.Entry) []string {
	return []string{
		strconv.Itoa(seq),
		strconv.Itoa(e.Week),
		e.Date.UTC().Format("02/01/2006"),
		e.TenantName,
		e.BusinessName,
		e.BusinessType,
		e.Contact,
		e.Notes,
		e.Status,
	}
}
