package translate

// Catalog maps UI-text keys to display strings.
type Catalog map[string]string

// UI-text keys. Every user-visible chrome string in the TUI goes through
// the catalog so a translated catalog retitles the whole interface.
const (
	KeyAppTitle      = "appTitle"
	KeyReportTitle   = "reportTitle"
	KeyFilterHint    = "filterHint"
	KeyDateRangeHint = "dateRangeHint"
	KeySortHint      = "sortHint"
	KeyExportHint    = "exportHint"
	KeySaveHint      = "saveHint"
	KeyQuitHint      = "quitHint"
	KeyAddHint       = "addHint"
	KeyEditHint      = "editHint"
	KeyDeleteHint    = "deleteHint"
	KeyRowCount      = "rowCount"
	KeyUnsavedPrompt = "unsavedPrompt"
	KeyDeletePrompt  = "deletePrompt"
	KeySaved         = "saved"
	KeyExported      = "exported"
	KeyColNo         = "colNo"
	KeyColWeek       = "colWeek"
	KeyColDate       = "colDate"
	KeyColTenant     = "colTenant"
	KeyColBusiness   = "colBusiness"
	KeyColType       = "colType"
	KeyColContact    = "colContact"
	KeyColNotes      = "colNotes"
	KeyColStatus     = "colStatus"
)

// DefaultCatalog returns the built-in English UI text.
func DefaultCatalog() Catalog {
	return Catalog{
		KeyAppTitle:      "Leasing Tracker",
		KeyReportTitle:   "Leasing Entry Report",
		KeyFilterHint:    "/ filter",
		KeyDateRangeHint: "d date range",
		KeySortHint:      "1-9 sort",
		KeyExportHint:    "c/X/p export",
		KeySaveHint:      "s save",
		KeyQuitHint:      "q quit",
		KeyAddHint:       "a add",
		KeyEditHint:      "e edit",
		KeyDeleteHint:    "x delete",
		KeyRowCount:      "entries",
		KeyUnsavedPrompt: "Unsaved changes. Quit anyway? (y/n)",
		KeyDeletePrompt:  "Delete selected entry? (y/n)",
		KeySaved:         "Saved",
		KeyExported:      "Exported",
		KeyColNo:         "No.",
		KeyColWeek:       "Week",
		KeyColDate:       "Date",
		KeyColTenant:     "Tenant Name",
		KeyColBusiness:   "Business Name",
		KeyColType:       "Business Type",
		KeyColContact:    "Contact",
		KeyColNotes:      "Notes",
		KeyColStatus:     "Status",
	}
}

// Merge overlays stored translations onto the defaults so new keys added
// after a catalog was translated still render (in English).
func Merge(stored map[string]string) Catalog {
	out := DefaultCatalog()
	for k, v := range stored {
		if v == "" {
			continue
		}
		if _, ok := out[k]; ok {
			out[k] = v
		}
	}
	return out
}
