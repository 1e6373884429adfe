package view

import (
	"testing"
	"time"

	"leasetrack/internal/model"
)

func TestApply_RangeThenFiltersThenSort(t *testing.T) {
	entries := []model.Entry{
		{ID: "ent-a", Week: 24, Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), TenantName: "Amina", Status: "Active"},
		{ID: "ent-b", Week: 23, Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), TenantName: "Baraka", Status: "Active"},
		{ID: "ent-c", Week: 25, Date: time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), TenantName: "Carol", Status: "Vacated"},
		{ID: "ent-d", Week: 30, Date: time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC), TenantName: "Daudi", Status: "Active"},
	}

	state := model.ViewState{
		Range:   model.DateRange{From: dayPtr("2025-06-01"), To: dayPtr("2025-06-30")},
		Filters: model.Filters{model.FieldStatus: "active"},
		Sort:    &model.Sort{Field: model.FieldDate, Desc: true},
	}

	got := Apply(entries, state)
	if !sameIDs(ids(got), "ent-a", "ent-b") {
		t.Fatalf("expected June actives newest first, got %v", ids(got))
	}
}

func TestApply_ZeroStateIsIdentity(t *testing.T) {
	entries := []model.Entry{
		dated("ent-b", "2025-06-15"),
		dated("ent-a", "2025-06-01"),
	}
	got := Apply(entries, model.ViewState{})
	if !sameIDs(ids(got), "ent-b", "ent-a") {
		t.Fatalf("zero view state must not reorder, got %v", ids(got))
	}
}
