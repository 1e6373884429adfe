package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"leasetrack/internal/importer"
	"leasetrack/internal/model"
	"leasetrack/internal/report"
	"leasetrack/internal/store"
	"leasetrack/internal/translate"
	"leasetrack/internal/view"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeTable mode = iota
	modeFilter
	modeRange
	modeForm
	modeConfirmDelete
	modeConfirmQuit
)

// filterFields are the columns with a filter input, in display order.
var filterFields = []string{
	model.FieldWeek,
	model.FieldDate,
	model.FieldTenantName,
	model.FieldBusinessName,
	model.FieldBusinessType,
	model.FieldContact,
	model.FieldNotes,
	model.FieldStatus,
}

// sortDigits maps the 1-9 digit row to display columns. Digit 1 is the
// sequence-number column, which has no sortable field.
var sortDigits = map[string]string{
	"2": model.FieldWeek,
	"3": model.FieldDate,
	"4": model.FieldTenantName,
	"5": model.FieldBusinessName,
	"6": model.FieldBusinessType,
	"7": model.FieldContact,
	"8": model.FieldNotes,
	"9": model.FieldStatus,
}

type appModel struct {
	store store.Store
	db    *store.DB
	text  translate.Catalog

	mode  mode
	state model.ViewState

	table      table.Model
	visibleIDs []string

	// Draft filter inputs; committed into state.Filters on enter only.
	filterInputs []textinput.Model
	filterFocus  int

	rangeInputs [2]textinput.Model
	rangeFocus  int

	formInputs []textinput.Model
	formFocus  int
	editingID  string // "" while adding

	dirty  bool
	status string
	isErr  bool

	width  int
	height int
}

func newAppModel(s store.Store, db *store.DB) appModel {
	m := appModel{
		store: s,
		db:    db,
		text:  translate.Merge(db.UIText),
	}

	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(colorHeaderFg).BorderStyle(lipgloss.NormalBorder()).BorderForeground(colorMuted).BorderBottom(true)
	st.Selected = st.Selected.Foreground(colorSelectedFg).Background(colorSelectedBg)
	m.table.SetStyles(st)

	m.filterInputs = make([]textinput.Model, len(filterFields))
	for i := range m.filterInputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = m.columnTitle(filterFields[i])
		ti.CharLimit = 64
		ti.Width = 14
		m.filterInputs[i] = ti
	}

	for i := range m.rangeInputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "yyyy-mm-dd"
		ti.CharLimit = 10
		ti.Width = 12
		m.rangeInputs[i] = ti
	}

	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) columnTitle(field string) string {
	switch field {
	case model.FieldWeek:
		return m.text[translate.KeyColWeek]
	case model.FieldDate:
		return m.text[translate.KeyColDate]
	case model.FieldTenantName:
		return m.text[translate.KeyColTenant]
	case model.FieldBusinessName:
		return m.text[translate.KeyColBusiness]
	case model.FieldBusinessType:
		return m.text[translate.KeyColType]
	case model.FieldContact:
		return m.text[translate.KeyColContact]
	case model.FieldNotes:
		return m.text[translate.KeyColNotes]
	case model.FieldStatus:
		return m.text[translate.KeyColStatus]
	default:
		return field
	}
}

func (m *appModel) columns() []table.Column {
	marker := func(field string) string {
		if m.state.Sort == nil || m.state.Sort.Field != field {
			return ""
		}
		if m.state.Sort.Desc {
			return " v"
		}
		return " ^"
	}
	return []table.Column{
		{Title: m.text[translate.KeyColNo], Width: 4},
		{Title: m.text[translate.KeyColWeek] + marker(model.FieldWeek), Width: 6},
		{Title: m.text[translate.KeyColDate] + marker(model.FieldDate), Width: 11},
		{Title: m.text[translate.KeyColTenant] + marker(model.FieldTenantName), Width: 18},
		{Title: m.text[translate.KeyColBusiness] + marker(model.FieldBusinessName), Width: 22},
		{Title: m.text[translate.KeyColType] + marker(model.FieldBusinessType), Width: 13},
		{Title: m.text[translate.KeyColContact] + marker(model.FieldContact), Width: 18},
		{Title: m.text[translate.KeyColNotes] + marker(model.FieldNotes), Width: 22},
		{Title: m.text[translate.KeyColStatus] + marker(model.FieldStatus), Width: 14},
	}
}

// refresh reruns the pipeline and rebuilds the table rows.
func (m *appModel) refresh() {
	entries := view.Apply(m.db.Entries, m.state)

	rows := make([]table.Row, 0, len(entries))
	ids := make([]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Week),
			e.Date.UTC().Format("02/01/2006"),
			e.TenantName,
			e.BusinessName,
			e.BusinessType,
			e.Contact,
			e.Notes,
			e.Status,
		})
		ids = append(ids, e.ID)
	}
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.visibleIDs = ids
}

func (m *appModel) selectedID() (string, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visibleIDs) {
		return "", false
	}
	return m.visibleIDs[i], true
}

func (m *appModel) note(msg string) {
	m.status = msg
	m.isErr = false
}

func (m *appModel) fail(err error) {
	m.status = err.Error()
	m.isErr = true
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 7
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeRange:
			return m.updateRange(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeConfirmQuit:
			return m.updateConfirmQuit(msg)
		}
		return m.updateTable(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m appModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if field, ok := sortDigits[key]; ok {
		m.state.ToggleSort(field)
		m.refresh()
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		if m.dirty {
			m.mode = modeConfirmQuit
			return m, nil
		}
		return m, tea.Quit

	case "/":
		// Seed the draft from the committed filters.
		for i, f := range filterFields {
			m.filterInputs[i].SetValue(m.state.Filters[f])
		}
		m.filterFocus = 0
		m.filterInputs[0].Focus()
		m.mode = modeFilter
		return m, nil

	case "d":
		if m.state.Range.From != nil {
			m.rangeInputs[0].SetValue(model.DayUTC(*m.state.Range.From).Format("2006-01-02"))
		} else {
			m.rangeInputs[0].SetValue("")
		}
		if m.state.Range.To != nil {
			m.rangeInputs[1].SetValue(model.DayUTC(*m.state.Range.To).Format("2006-01-02"))
		} else {
			m.rangeInputs[1].SetValue("")
		}
		m.rangeFocus = 0
		m.rangeInputs[0].Focus()
		m.rangeInputs[1].Blur()
		m.mode = modeRange
		return m, nil

	case "a":
		m.openForm(nil)
		return m, nil

	case "e":
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		e, ok := m.db.FindEntry(id)
		if !ok {
			return m, nil
		}
		m.openForm(e)
		return m, nil

	case "x":
		if _, ok := m.selectedID(); ok {
			m.mode = modeConfirmDelete
		}
		return m, nil

	case "s":
		if err := m.store.Save(m.db); err != nil {
			m.fail(err)
		} else {
			m.dirty = false
			m.note(m.text[translate.KeySaved])
		}
		return m, nil

	case "r":
		db, err := m.store.Load()
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.db = db
		m.text = translate.Merge(db.UIText)
		m.dirty = false
		m.refresh()
		return m, nil

	case "c":
		m.export("csv")
		return m, nil
	case "X":
		m.export("xlsx")
		return m, nil
	case "p":
		m.export("pdf")
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *appModel) export(kind string) {
	entries := view.Apply(m.db.Entries, m.state)
	meta := report.Meta{
		Title:  m.text[translate.KeyReportTitle],
		Period: report.PeriodLabel(m.state.Range),
		Staff:  report.StaffLabel(m.db.StaffName),
		Today:  time.Now().UTC(),
	}

	var file report.File
	var err error
	switch kind {
	case "csv":
		file, err = report.CSV(entries, meta)
	case "xlsx":
		file, err = report.XLSX(entries, meta)
	case "pdf":
		file, err = report.PDF(entries, meta)
	}
	if err == nil {
		err = os.WriteFile(file.Name, file.Data, 0o644)
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.note(fmt.Sprintf("%s %s (%d)", m.text[translate.KeyExported], file.Name, len(entries)))
}

func (m appModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Discard the draft; committed filters stay as they were.
		for i := range m.filterInputs {
			m.filterInputs[i].Blur()
		}
		m.mode = modeTable
		return m, nil

	case "enter":
		filters := model.Filters{}
		for i, f := range filterFields {
			if v := strings.TrimSpace(m.filterInputs[i].Value()); v != "" {
				filters[f] = v
			}
		}
		m.state.Filters = filters
		for i := range m.filterInputs {
			m.filterInputs[i].Blur()
		}
		m.mode = modeTable
		m.refresh()
		return m, nil

	case "tab", "shift+tab":
		m.filterInputs[m.filterFocus].Blur()
		if msg.String() == "tab" {
			m.filterFocus = (m.filterFocus + 1) % len(m.filterInputs)
		} else {
			m.filterFocus = (m.filterFocus + len(m.filterInputs) - 1) % len(m.filterInputs)
		}
		m.filterInputs[m.filterFocus].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInputs[m.filterFocus], cmd = m.filterInputs[m.filterFocus].Update(msg)
	return m, cmd
}

func (m appModel) updateRange(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.rangeInputs[0].Blur()
		m.rangeInputs[1].Blur()
		m.mode = modeTable
		return m, nil

	case "enter":
		fromStr := strings.TrimSpace(m.rangeInputs[0].Value())
		toStr := strings.TrimSpace(m.rangeInputs[1].Value())

		var r model.DateRange
		if fromStr != "" {
			from, err := importer.ParseDate(fromStr)
			if err != nil {
				m.fail(err)
				return m, nil
			}
			r.From = &from
			if toStr != "" {
				to, err := importer.ParseDate(toStr)
				if err != nil {
					m.fail(err)
					return m, nil
				}
				r.To = &to
			}
		}
		m.state.Range = r
		m.rangeInputs[0].Blur()
		m.rangeInputs[1].Blur()
		m.mode = modeTable
		m.refresh()
		return m, nil

	case "tab", "shift+tab":
		m.rangeInputs[m.rangeFocus].Blur()
		m.rangeFocus = 1 - m.rangeFocus
		m.rangeInputs[m.rangeFocus].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.rangeInputs[m.rangeFocus], cmd = m.rangeInputs[m.rangeFocus].Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if id, ok := m.selectedID(); ok {
			if m.db.DeleteEntry(id) {
				m.dirty = true
			}
		}
		m.mode = modeTable
		m.refresh()
		return m, nil
	case "n", "N", "esc":
		m.mode = modeTable
		return m, nil
	}
	return m, nil
}

func (m appModel) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, tea.Quit
	case "n", "N", "esc":
		m.mode = modeTable
		return m, nil
	}
	return m, nil
}

func (m appModel) View() string {
	var b strings.Builder

	title := m.text[translate.KeyAppTitle]
	if m.db.Language != "" {
		title += " (" + m.db.Language + ")"
	}
	if m.dirty {
		title += " *"
	}
	b.WriteString(styleTitle().Render(title))
	b.WriteString("\n")

	switch m.mode {
	case modeFilter:
		b.WriteString(m.filterBarView())
	case modeRange:
		b.WriteString(m.rangeBarView())
	case modeForm:
		return m.formView()
	case modeConfirmDelete:
		b.WriteString(styleError().Render(m.text[translate.KeyDeletePrompt]))
		b.WriteString("\n")
	case modeConfirmQuit:
		b.WriteString(styleError().Render(m.text[translate.KeyUnsavedPrompt]))
		b.WriteString("\n")
	default:
		b.WriteString(m.summaryView())
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.status != "" {
		if m.isErr {
			b.WriteString(styleError().Render(m.status))
		} else {
			b.WriteString(styleMuted().Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m appModel) summaryView() string {
	parts := []string{
		fmt.Sprintf("%d/%d %s", len(m.visibleIDs), len(m.db.Entries), m.text[translate.KeyRowCount]),
	}
	if m.state.Range.From != nil {
		parts = append(parts, report.PeriodLabel(m.state.Range))
	}
	if !m.state.Filters.IsEmpty() {
		var active []string
		for _, f := range filterFields {
			if v := m.state.Filters[f]; v != "" {
				active = append(active, f+"~"+v)
			}
		}
		parts = append(parts, strings.Join(active, " "))
	}
	return styleMuted().Render(strings.Join(parts, "  |  ")) + "\n"
}

func (m appModel) filterBarView() string {
	var cells []string
	for i := range m.filterInputs {
		cells = append(cells, m.filterInputs[i].View())
	}
	return styleBar().Render(strings.Join(cells, " | ")) + "\n"
}

func (m appModel) rangeBarView() string {
	return styleBar().Render("from "+m.rangeInputs[0].View()+"  to "+m.rangeInputs[1].View()) + "\n"
}

func (m appModel) helpView() string {
	hints := []string{
		m.text[translate.KeyFilterHint],
		m.text[translate.KeyDateRangeHint],
		m.text[translate.KeySortHint],
		m.text[translate.KeyAddHint],
		m.text[translate.KeyEditHint],
		m.text[translate.KeyDeleteHint],
		m.text[translate.KeyExportHint],
		m.text[translate.KeySaveHint],
		m.text[translate.KeyQuitHint],
	}
	return styleMuted().Render(strings.Join(hints, "  "))
}

// Run starts the interactive table over an already-loaded workspace.
func Run(s store.Store, db *store.DB) error {
	applyColorProfilePreference()
	applyThemePreference()

	p := tea.NewProgram(newAppModel(s, db), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
