package view

import (
	"strconv"
	"strings"

	"leasetrack/internal/model"
)

// FilterByFields keeps entries matching every non-empty filter value.
// Predicates per field:
//   - week: decimal representation contains the filter value
//   - date: ISO form (yyyy-MM-dd) contains the filter value, so a year or
//     year-month prefix matches
//   - other known fields: case-folded substring match
//   - unknown fields: no effect
func FilterByFields(entries []model.Entry, filters model.Filters) []model.Entry {
	if filters.IsEmpty() {
		return entries
	}

	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if matchesAll(e, filters) {
			out = append(out, e)
		}
	}
	return out
}

func matchesAll(e model.Entry, filters model.Filters) bool {
	for field, want := range filters {
		if want == "" {
			continue
		}
		if !model.KnownField(field) {
			continue
		}
		switch field {
		case model.FieldWeek:
			if !strings.Contains(strconv.Itoa(e.Week), want) {
				return false
			}
		case model.FieldDate:
			if !strings.Contains(e.Date.UTC().Format("2006-01-02"), want) {
				return false
			}
		default:
			have := strings.ToLower(stringField(e, field))
			if !strings.Contains(have, strings.ToLower(want)) {
				return false
			}
		}
	}
	return true
}

func stringField(e model.Entry, field string) string {
	switch field {
	case model.FieldID:
		return e.ID
	case model.FieldTenantName:
		return e.TenantName
	case model.FieldBusinessName:
		return e.BusinessName
	case model.FieldBusinessType:
		return e.BusinessType
	case model.FieldContact:
		return e.Contact
	case model.FieldNotes:
		return e.Notes
	case model.FieldStatus:
		return e.Status
	default:
		return ""
	}
}
