package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"leasetrack/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	in := &DB{
		Version:   1,
		StaffName: "Neema",
		Language:  "Swahili",
		UIText:    map[string]string{"appTitle": "Ufuatiliaji wa Upangishaji"},
		Entries: []model.Entry{
			{ID: "ent-a", Week: 24, Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), TenantName: "Amina Hassan", Status: "Active"},
			{ID: "ent-b", Week: 25, Date: time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), TenantName: "Baraka Juma"},
		},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.StaffName != "Neema" || out.Language != "Swahili" {
		t.Fatalf("metadata did not round-trip: %+v", out)
	}
	if out.UIText["appTitle"] != "Ufuatiliaji wa Upangishaji" {
		t.Fatalf("ui text did not round-trip: %+v", out.UIText)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out.Entries))
	}
	if out.Entries[0].ID != "ent-a" || !out.Entries[0].Date.Equal(in.Entries[0].Date) {
		t.Fatalf("entry did not round-trip: %+v", out.Entries[0])
	}
}

func TestLoadSeedsFreshStore(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.Entries) == 0 {
		t.Fatalf("a fresh store should fall back to the seed dataset")
	}
	for _, e := range out.Entries {
		if e.ID == "" || e.TenantName == "" {
			t.Fatalf("seed entry missing id or tenant: %+v", e)
		}
	}
}

func TestLoadSeedsOnCorruptEntries(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	db, err := s.openSQLite(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO kv(k, v) VALUES(?, ?)`, keyEntries, "{not json"); err != nil {
		t.Fatalf("plant corrupt value: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("load should not fail on a corrupt collection: %v", err)
	}
	if len(out.Entries) != len(SeedEntries()) {
		t.Fatalf("expected the seed dataset, got %d entries", len(out.Entries))
	}
}

func TestLoadImportsLegacyJSONOnce(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}

	legacy := DB{
		Version:   1,
		StaffName: "Neema",
		Entries: []model.Entry{
			{ID: "ent-legacy", Week: 10, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), TenantName: "Legacy Tenant"},
		},
	}
	b, err := json.Marshal(legacy)
	if err != nil {
		t.Fatalf("marshal legacy: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "db.json"), b, 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.Entries) != 1 || out.Entries[0].ID != "ent-legacy" {
		t.Fatalf("expected legacy entries to be imported, got %+v", out.Entries)
	}
	if out.StaffName != "Neema" {
		t.Fatalf("expected legacy staff name, got %q", out.StaffName)
	}

	// A later edit to db.json is ignored; sqlite is the source of truth now.
	if err := os.WriteFile(filepath.Join(dir, "db.json"), []byte(`{"entries":[]}`), 0o644); err != nil {
		t.Fatalf("rewrite legacy file: %v", err)
	}
	again, err := s.Load()
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(again.Entries) != 1 || again.Entries[0].ID != "ent-legacy" {
		t.Fatalf("legacy file should only be imported once, got %+v", again.Entries)
	}
}

func TestSaveEmptyCollectionSticks(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	if err := s.Save(&DB{Version: 1, Entries: []model.Entry{}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// An explicitly saved empty collection is not the same as a missing one
	// and must not be re-seeded.
	if len(out.Entries) != 0 {
		t.Fatalf("expected an empty collection, got %d entries", len(out.Entries))
	}
}
