package view

import (
	"testing"
	"time"

	"leasetrack/internal/model"
)

func entryFixture() []model.Entry {
	return []model.Entry{
		{ID: "ent-a", Week: 3, Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), TenantName: "Amina Hassan", BusinessName: "Duka la Vitabu", Status: "Active"},
		{ID: "ent-b", Week: 13, Date: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), TenantName: "Baraka Juma", BusinessName: "Mama Lishe", Status: "Pending"},
		{ID: "ent-c", Week: 30, Date: time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), TenantName: "Carol Mushi", BusinessName: "Salon Carol", Status: "active"},
	}
}

func TestFilterByFields_EmptyFiltersPassEverything(t *testing.T) {
	entries := entryFixture()
	if got := FilterByFields(entries, nil); len(got) != len(entries) {
		t.Fatalf("nil filters: expected %d entries, got %d", len(entries), len(got))
	}
	if got := FilterByFields(entries, model.Filters{model.FieldStatus: ""}); len(got) != len(entries) {
		t.Fatalf("empty value: expected %d entries, got %d", len(entries), len(got))
	}
}

func TestFilterByFields_WeekSubstring(t *testing.T) {
	got := FilterByFields(entryFixture(), model.Filters{model.FieldWeek: "3"})
	if !sameIDs(ids(got), "ent-a", "ent-b", "ent-c") {
		t.Fatalf(`filter "3" should match weeks 3, 13 and 30; got %v`, ids(got))
	}

	got = FilterByFields(entryFixture(), model.Filters{model.FieldWeek: "13"})
	if !sameIDs(ids(got), "ent-b") {
		t.Fatalf(`filter "13" should match only week 13; got %v`, ids(got))
	}
}

func TestFilterByFields_DateSubstring(t *testing.T) {
	got := FilterByFields(entryFixture(), model.Filters{model.FieldDate: "2025-06"})
	if !sameIDs(ids(got), "ent-a") {
		t.Fatalf("year-month prefix should match, got %v", ids(got))
	}

	got = FilterByFields(entryFixture(), model.Filters{model.FieldDate: "06-02"})
	if !sameIDs(ids(got), "ent-a", "ent-c") {
		t.Fatalf("month-day infix should match both years, got %v", ids(got))
	}
}

func TestFilterByFields_CaseFolded(t *testing.T) {
	got := FilterByFields(entryFixture(), model.Filters{model.FieldStatus: "ACTIVE"})
	if !sameIDs(ids(got), "ent-a", "ent-c") {
		t.Fatalf("status match should ignore case, got %v", ids(got))
	}

	got = FilterByFields(entryFixture(), model.Filters{model.FieldTenantName: "hassan"})
	if !sameIDs(ids(got), "ent-a") {
		t.Fatalf("tenant match should ignore case, got %v", ids(got))
	}
}

func TestFilterByFields_AllFiltersMustMatch(t *testing.T) {
	got := FilterByFields(entryFixture(), model.Filters{
		model.FieldWeek:   "3",
		model.FieldStatus: "pending",
	})
	if !sameIDs(ids(got), "ent-b") {
		t.Fatalf("filters should AND together, got %v", ids(got))
	}
}

func TestFilterByFields_UnknownFieldIgnored(t *testing.T) {
	got := FilterByFields(entryFixture(), model.Filters{"bogus": "zzz"})
	if len(got) != 3 {
		t.Fatalf("unknown field should impose no constraint, got %d entries", len(got))
	}
}
