package view

import (
	"leasetrack/internal/model"
)

// FilterByDateRange keeps entries whose date falls inside r, inclusive on
// both ends. Entry dates and both bounds are normalized to UTC midnight
// before comparing, so the result is independent of the local timezone.
// A nil From passes everything; a nil To means a single-day range.
func FilterByDateRange(entries []model.Entry, r model.DateRange) []model.Entry {
	if r.From == nil {
		return entries
	}
	from := model.DayUTC(*r.From)
	to := from
	if r.To != nil {
		to = model.DayUTC(*r.To)
	}

	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		day := model.DayUTC(e.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}
