package tui

import (
	"strings"
	"testing"
	"time"

	"leasetrack/internal/model"
	"leasetrack/internal/store"

	"github.com/charmbracelet/x/ansi"
	tea "github.com/charmbracelet/bubbletea"
)

func testDB() *store.DB {
	return &store.DB{
		Version:   1,
		StaffName: "Neema",
		Entries: []model.Entry{
			{ID: "ent-a", Week: 24, Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), TenantName: "Amina Hassan", BusinessName: "Duka la Vitabu", Status: "Active"},
			{ID: "ent-b", Week: 25, Date: time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), TenantName: "Baraka Juma", BusinessName: "Mama Lishe", Status: "Pending"},
		},
	}
}

func plainView(m tea.Model) string {
	return ansi.Strip(m.(appModel).View())
}

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestViewListsEntries(t *testing.T) {
	var m tea.Model = newAppModel(store.Store{Dir: t.TempDir()}, testDB())

	out := plainView(m)
	if !strings.Contains(out, "Leasing Tracker") {
		t.Fatalf("missing app title:\n%s", out)
	}
	if !strings.Contains(out, "Amina Hassan") || !strings.Contains(out, "Baraka Juma") {
		t.Fatalf("missing entries:\n%s", out)
	}
	if !strings.Contains(out, "12/06/2025") {
		t.Fatalf("dates should display day-first:\n%s", out)
	}
	if !strings.Contains(out, "2/2 entries") {
		t.Fatalf("missing row count:\n%s", out)
	}
}

func TestFilterCommitAndDiscard(t *testing.T) {
	var m tea.Model = newAppModel(store.Store{Dir: t.TempDir()}, testDB())

	// "/" opens the filter bar; first input is week, tab twice to tenant.
	m = press(m, "/", "tab", "tab")
	m = typeText(m, "amina")
	m = press(m, "enter")

	out := plainView(m)
	if !strings.Contains(out, "1/2 entries") {
		t.Fatalf("committed filter did not narrow the table:\n%s", out)
	}
	if strings.Contains(out, "Baraka Juma") {
		t.Fatalf("filtered-out entry still visible:\n%s", out)
	}

	// Reopen, type something else, esc discards the draft.
	m = press(m, "/")
	m = typeText(m, "999")
	m = press(m, "esc")

	out = plainView(m)
	if !strings.Contains(out, "1/2 entries") {
		t.Fatalf("discarded draft changed the committed filters:\n%s", out)
	}
}

func TestDateRangeNarrowsTable(t *testing.T) {
	var m tea.Model = newAppModel(store.Store{Dir: t.TempDir()}, testDB())

	m = press(m, "d")
	m = typeText(m, "2025-06-19")
	m = press(m, "enter")

	out := plainView(m)
	if !strings.Contains(out, "1/2 entries") || strings.Contains(out, "Amina Hassan") {
		t.Fatalf("single-day range should keep only the 19th:\n%s", out)
	}
	if !strings.Contains(out, "Period: 19/06/2025") {
		t.Fatalf("missing period summary:\n%s", out)
	}
}

func TestDigitKeysToggleSort(t *testing.T) {
	m := newAppModel(store.Store{Dir: t.TempDir()}, testDB())

	var tm tea.Model = m
	tm = press(tm, "3")
	am := tm.(appModel)
	if am.state.Sort == nil || am.state.Sort.Field != model.FieldDate || am.state.Sort.Desc {
		t.Fatalf("digit 3 should sort by date ascending, got %+v", am.state.Sort)
	}

	tm = press(tm, "3")
	am = tm.(appModel)
	if !am.state.Sort.Desc {
		t.Fatalf("second press should flip to descending")
	}
	if got := am.visibleIDs[0]; got != "ent-b" {
		t.Fatalf("descending date sort should put the newest first, got %s", got)
	}

	// Column header shows the direction marker.
	if out := plainView(tm); !strings.Contains(out, "Date v") {
		t.Fatalf("missing sort marker in header:\n%s", out)
	}
}

func TestAddEntryThroughForm(t *testing.T) {
	var m tea.Model = newAppModel(store.Store{Dir: t.TempDir()}, testDB())

	m = press(m, "a")
	m = typeText(m, "26") // week
	m = press(m, "tab")
	m = typeText(m, "2025-06-26") // date
	m = press(m, "tab")
	m = typeText(m, "Clara Tesha") // tenant
	m = press(m, "enter")

	am := m.(appModel)
	if len(am.db.Entries) != 3 {
		t.Fatalf("expected 3 entries after add, got %d", len(am.db.Entries))
	}
	added := am.db.Entries[2]
	if added.TenantName != "Clara Tesha" || added.Week != 26 {
		t.Fatalf("unexpected added entry: %+v", added)
	}
	if !strings.HasPrefix(added.ID, "ent-") {
		t.Fatalf("added entry has no generated id: %q", added.ID)
	}
	if !am.dirty {
		t.Fatalf("add should mark the state dirty")
	}
}

func TestFormRejectsMissingTenant(t *testing.T) {
	var m tea.Model = newAppModel(store.Store{Dir: t.TempDir()}, testDB())

	m = press(m, "a")
	m = typeText(m, "26")
	m = press(m, "tab")
	m = typeText(m, "2025-06-26")
	m = press(m, "enter") // tenant left empty

	am := m.(appModel)
	if am.mode != modeForm {
		t.Fatalf("invalid form should stay open")
	}
	if len(am.db.Entries) != 2 {
		t.Fatalf("invalid form must not add an entry")
	}
	if out := plainView(m); !strings.Contains(out, "tenant name is required") {
		t.Fatalf("missing validation message:\n%s", out)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	var m tea.Model = newAppModel(store.Store{Dir: t.TempDir()}, testDB())

	m = press(m, "x", "n")
	if got := len(m.(appModel).db.Entries); got != 2 {
		t.Fatalf("declined delete removed an entry, %d left", got)
	}

	m = press(m, "x", "y")
	am := m.(appModel)
	if len(am.db.Entries) != 1 {
		t.Fatalf("confirmed delete did not remove the entry, %d left", len(am.db.Entries))
	}
	if !am.dirty {
		t.Fatalf("delete should mark the state dirty")
	}
}

func TestQuitGuardsUnsavedChanges(t *testing.T) {
	var m tea.Model = newAppModel(store.Store{Dir: t.TempDir()}, testDB())

	// Clean state quits immediately.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected a quit command from a clean state")
	}

	// Dirty state asks first.
	m = press(m, "x", "y", "q")
	am := m.(appModel)
	if am.mode != modeConfirmQuit {
		t.Fatalf("expected the unsaved-changes prompt, mode=%d", am.mode)
	}
	m = press(m, "n")
	if m.(appModel).mode != modeTable {
		t.Fatalf("declining should return to the table")
	}
}

func TestSavePersistsAndClearsDirty(t *testing.T) {
	dir := t.TempDir()
	s := store.Store{Dir: dir}
	var m tea.Model = newAppModel(s, testDB())

	m = press(m, "x", "y", "s")
	am := m.(appModel)
	if am.dirty {
		t.Fatalf("save should clear the dirty flag")
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if len(loaded.Entries) != 1 {
		t.Fatalf("expected the deletion to be persisted, got %d entries", len(loaded.Entries))
	}
}
