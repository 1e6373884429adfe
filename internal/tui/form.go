package tui

import (
	"fmt"
	"strconv"
	"strings"

	"leasetrack/internal/importer"
	"leasetrack/internal/model"
	"leasetrack/internal/translate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form field order matches the table columns, minus the sequence number.
var formFields = []string{
	model.FieldWeek,
	model.FieldDate,
	model.FieldTenantName,
	model.FieldBusinessName,
	model.FieldBusinessType,
	model.FieldContact,
	model.FieldNotes,
	model.FieldStatus,
}

func (m *appModel) openForm(e *model.Entry) {
	m.formInputs = make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.Width = 40
		switch f {
		case model.FieldWeek:
			ti.Placeholder = "1"
			ti.CharLimit = 3
			ti.Width = 6
		case model.FieldDate:
			ti.Placeholder = "yyyy-mm-dd"
			ti.CharLimit = 19
			ti.Width = 20
		}
		if e != nil {
			switch f {
			case model.FieldWeek:
				ti.SetValue(strconv.Itoa(e.Week))
			case model.FieldDate:
				ti.SetValue(e.Date.UTC().Format("2006-01-02"))
			case model.FieldTenantName:
				ti.SetValue(e.TenantName)
			case model.FieldBusinessName:
				ti.SetValue(e.BusinessName)
			case model.FieldBusinessType:
				ti.SetValue(e.BusinessType)
			case model.FieldContact:
				ti.SetValue(e.Contact)
			case model.FieldNotes:
				ti.SetValue(e.Notes)
			case model.FieldStatus:
				ti.SetValue(e.Status)
			}
		}
		m.formInputs[i] = ti
	}

	m.editingID = ""
	if e != nil {
		m.editingID = e.ID
	}
	m.formFocus = 0
	m.formInputs[0].Focus()
	m.mode = modeForm
	m.status = ""
	m.isErr = false
}

func (m *appModel) formValue(field string) string {
	for i, f := range formFields {
		if f == field {
			return strings.TrimSpace(m.formInputs[i].Value())
		}
	}
	return ""
}

// commitForm validates the draft and writes it into the collection. The
// same rules as the CSV importer apply: date must parse, week must be a
// non-negative integer, tenant name is required.
func (m *appModel) commitForm() error {
	tenant := m.formValue(model.FieldTenantName)
	if tenant == "" {
		return fmt.Errorf("tenant name is required")
	}

	date, err := importer.ParseDate(m.formValue(model.FieldDate))
	if err != nil {
		return err
	}

	week := 0
	if v := m.formValue(model.FieldWeek); v != "" {
		week, err = strconv.Atoi(v)
		if err != nil || week < 0 {
			return fmt.Errorf("week must be a non-negative integer, got %q", v)
		}
	}

	entry := model.Entry{
		ID:           m.editingID,
		Week:         week,
		Date:         date,
		TenantName:   tenant,
		BusinessName: m.formValue(model.FieldBusinessName),
		BusinessType: m.formValue(model.FieldBusinessType),
		Contact:      m.formValue(model.FieldContact),
		Notes:        m.formValue(model.FieldNotes),
		Status:       m.formValue(model.FieldStatus),
	}

	if m.editingID == "" {
		entry.ID = m.db.NextEntryID()
		m.db.Entries = append(m.db.Entries, entry)
	} else {
		existing, ok := m.db.FindEntry(m.editingID)
		if !ok {
			return fmt.Errorf("entry %s no longer exists", m.editingID)
		}
		*existing = entry
	}
	m.dirty = true
	return nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeTable
		return m, nil

	case "enter":
		if err := m.commitForm(); err != nil {
			m.fail(err)
			return m, nil
		}
		m.mode = modeTable
		m.status = ""
		m.refresh()
		return m, nil

	case "tab", "down":
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + 1) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, nil

	case "shift+tab", "up":
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + len(m.formInputs) - 1) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m appModel) formView() string {
	var b strings.Builder

	heading := m.text[translate.KeyAddHint]
	if m.editingID != "" {
		heading = m.text[translate.KeyEditHint] + " " + m.editingID
	}
	b.WriteString(styleTitle().Render(heading))
	b.WriteString("\n\n")

	for i, f := range formFields {
		label := m.columnTitle(f)
		if m.formFocus == i {
			b.WriteString(styleBar().Render(fmt.Sprintf("%-14s", label)))
		} else {
			b.WriteString(styleMuted().Render(fmt.Sprintf("%-14s", label)))
		}
		b.WriteString(" ")
		b.WriteString(m.formInputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" && m.isErr {
		b.WriteString(styleError().Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render("enter save  tab next field  esc cancel"))
	return b.String()
}
