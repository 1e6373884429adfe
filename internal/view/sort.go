package view

import (
	"sort"
	"strings"

	"leasetrack/internal/model"
)

// SortEntries orders entries by the selected field. A nil sort returns the
// input unchanged. The sort is stable and operates on a copy: ties keep
// their prior relative order and the input slice is never reordered.
func SortEntries(entries []model.Entry, s *model.Sort) []model.Entry {
	if s == nil || s.Field == "" {
		return entries
	}

	out := make([]model.Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		c := compareField(out[i], out[j], s.Field)
		if s.Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compareField is a three-way comparator: week numerically, date by
// instant, everything else case-insensitive lexicographic.
func compareField(a, b model.Entry, field string) int {
	switch field {
	case model.FieldWeek:
		switch {
		case a.Week < b.Week:
			return -1
		case a.Week > b.Week:
			return 1
		}
		return 0
	case model.FieldDate:
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	default:
		av := strings.ToLower(stringField(a, field))
		bv := strings.ToLower(stringField(b, field))
		return strings.Compare(av, bv)
	}
}
