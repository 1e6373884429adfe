package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"leasetrack/internal/model"

	_ "modernc.org/sqlite"
)

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), "state.sqlite")
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when CLI and TUI overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func getKV(ctx context.Context, db *sql.DB, k string) (string, bool, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, k).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// LoadSQLite loads the workspace state from state.sqlite. If the state is
// empty but a legacy db.json exists, it is imported once. A missing entry
// key or a JSON parse failure falls back to the seed dataset rather than
// failing the load.
func (s Store) LoadSQLite(ctx context.Context) (*DB, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	_, hasEntries, err := getKV(ctx, db, keyEntries)
	if err != nil {
		return nil, err
	}
	if !hasEntries {
		// One-time import from db.json if present.
		if b, err := os.ReadFile(s.dbPath()); err == nil && len(b) > 0 {
			var legacy DB
			if err := json.Unmarshal(b, &legacy); err == nil {
				if legacy.Version == 0 {
					legacy.Version = 1
				}
				if err := s.SaveSQLite(ctx, &legacy); err != nil {
					return nil, err
				}
			}
		}
	}

	out := &DB{Version: 1}

	if v, ok, err := getKV(ctx, db, keyVersion); err != nil {
		return nil, err
	} else if ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			out.Version = n
		}
	}

	if v, ok, err := getKV(ctx, db, keyEntries); err != nil {
		return nil, err
	} else if ok {
		var entries []model.Entry
		if err := json.Unmarshal([]byte(v), &entries); err == nil {
			out.Entries = entries
		} else {
			out.Entries = SeedEntries()
		}
	} else {
		out.Entries = SeedEntries()
	}

	if v, ok, err := getKV(ctx, db, keyStaff); err != nil {
		return nil, err
	} else if ok {
		out.StaffName = v
	}
	if v, ok, err := getKV(ctx, db, keyLanguage); err != nil {
		return nil, err
	} else if ok {
		out.Language = v
	}
	if v, ok, err := getKV(ctx, db, keyUIText); err != nil {
		return nil, err
	} else if ok {
		var text map[string]string
		if err := json.Unmarshal([]byte(v), &text); err == nil && len(text) > 0 {
			out.UIText = text
		}
	}

	return out, nil
}

func (s Store) SaveSQLite(ctx context.Context, st *DB) error {
	if st == nil {
		return errors.New("nil db")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	entries := st.Entries
	if entries == nil {
		entries = []model.Entry{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	uiTextJSON := ""
	if len(st.UIText) > 0 {
		b, err := json.Marshal(st.UIText)
		if err != nil {
			return err
		}
		uiTextJSON = string(b)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	version := st.Version
	if version == 0 {
		version = 1
	}
	pairs := map[string]string{
		keyVersion:  strconv.Itoa(version),
		keyEntries:  string(entriesJSON),
		keyStaff:    strings.TrimSpace(st.StaffName),
		keyLanguage: strings.TrimSpace(st.Language),
		keyUIText:   uiTextJSON,
	}
	for k, v := range pairs {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v) VALUES(?, ?)`, k, v); err != nil {
			return err
		}
	}

	return tx.Commit()
}
