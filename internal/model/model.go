package model

import "time"

// Entry is one leasing/tenancy record.
type Entry struct {
	ID           string    `json:"id"`
	Week         int       `json:"week"`
	Date         time.Time `json:"date"`
	TenantName   string    `json:"tenantName"`
	BusinessName string    `json:"businessName"`
	BusinessType string    `json:"businessType"`
	Contact      string    `json:"contact"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status,omitempty"`
}

// Field names accepted by filters and sorting. These match the JSON tags
// and the CSV header exactly.
const (
	FieldID           = "id"
	FieldWeek         = "week"
	FieldDate         = "date"
	FieldTenantName   = "tenantName"
	FieldBusinessName = "businessName"
	FieldBusinessType = "businessType"
	FieldContact      = "contact"
	FieldNotes        = "notes"
	FieldStatus       = "status"
)

// Fields lists the entry fields in CSV header order.
var Fields = []string{
	FieldID,
	FieldWeek,
	FieldDate,
	FieldTenantName,
	FieldBusinessName,
	FieldBusinessType,
	FieldContact,
	FieldNotes,
	FieldStatus,
}

// KnownField reports whether name is an entry field.
func KnownField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Filters maps a field name to a substring predicate value.
// An absent key, or a key with an empty value, imposes no constraint.
type Filters map[string]string

// IsEmpty reports whether no filter imposes a constraint.
func (f Filters) IsEmpty() bool {
	for _, v := range f {
		if v != "" {
			return false
		}
	}
	return true
}

// Clone returns an independent copy, so a draft can be edited without
// touching the committed filters.
func (f Filters) Clone() Filters {
	if f == nil {
		return nil
	}
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Sort is a single-field sort selection.
type Sort struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

// DateRange is an inclusive UTC-day range. A nil From means no constraint;
// a nil To means a single-day range equal to From.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// IsZero reports whether the range imposes no constraint.
func (r DateRange) IsZero() bool { return r.From == nil }

// ViewState is the full set of controls applied to the entry table.
// A nil Sort preserves the filtered order.
type ViewState struct {
	Range   DateRange `json:"range"`
	Filters Filters   `json:"filters,omitempty"`
	Sort    *Sort     `json:"sort,omitempty"`
}

// ToggleSort selects field for sorting. Selecting the current field flips
// the direction; selecting a new field resets to ascending.
func (v *ViewState) ToggleSort(field string) {
	if v.Sort != nil && v.Sort.Field == field {
		v.Sort.Desc = !v.Sort.Desc
		return
	}
	v.Sort = &Sort{Field: field}
}

// DayUTC truncates t to UTC midnight. Both the picker's local selection and
// the stored instant go through this before any range comparison, so an
// entry passes or fails identically in every timezone.
func DayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
