package store

import (
	"context"
	"os"
	"path/filepath"

	"leasetrack/internal/model"
)

const dbFileName = "db.json"

// State keys inside the workspace SQLite kv table. The entry collection is
// a JSON array under a single named key.
const (
	keyVersion  = "version"
	keyEntries  = "leasing_entries"
	keyStaff    = "staff_name"
	keyLanguage = "language"
	keyUIText   = "ui_text"
)

// DB is the in-memory workspace state. It is loaded once at startup and
// written back only on an explicit save.
type DB struct {
	Version   int               `json:"version"`
	StaffName string            `json:"staffName,omitempty"`
	Language  string            `json:"language,omitempty"`
	UIText    map[string]string `json:"uiText,omitempty"`
	Entries   []model.Entry     `json:"entries"`
}

type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for a .leasetrack store dir.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".leasetrack")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

// Load reads the workspace state. SQLite is the source of truth; a legacy
// db.json is imported once if the SQLite state is empty. A missing or
// unreadable entry collection falls back to the seed dataset.
func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	return s.LoadSQLite(context.Background())
}

func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return s.SaveSQLite(context.Background(), db)
}

func (db *DB) FindEntry(id string) (*model.Entry, bool) {
	for i := range db.Entries {
		if db.Entries[i].ID == id {
			return &db.Entries[i], true
		}
	}
	return nil, false
}

// DeleteEntry removes the entry with the given id. It reports whether an
// entry was removed.
func (db *DB) DeleteEntry(id string) bool {
	for i := range db.Entries {
		if db.Entries[i].ID == id {
			db.Entries = append(db.Entries[:i], db.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceEntries swaps the whole collection (bulk import). The previous
// slice is untouched so a failed import can keep using it.
func (db *DB) ReplaceEntries(entries []model.Entry) {
	db.Entries = entries
}

// NextEntryID returns a fresh id not present in the store.
func (db *DB) NextEntryID() string {
	for i := 0; i < 100; i++ {
		id := NewEntryID()
		if _, ok := db.FindEntry(id); !ok {
			return id
		}
	}
	// 40-bit suffixes collide 100 times in a row only if something is very
	// wrong with the entropy source; fall back to a longer suffix.
	return NewEntryIDLong()
}
