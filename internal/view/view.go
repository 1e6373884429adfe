// Package view implements the pure filter/sort pipeline over entries:
// date-range filter, per-field filter, then a stable single-field sort.
// Nothing here mutates its input; the TUI, the CLI listing, and the export
// formatters all consume the same Apply output.
package view

import (
	"leasetrack/internal/model"
)

// Apply runs the full pipeline for the given view state.
func Apply(entries []model.Entry, state model.ViewState) []model.Entry {
	out := FilterByDateRange(entries, state.Range)
	out = FilterByFields(out, state.Filters)
	return SortEntries(out, state.Sort)
}
