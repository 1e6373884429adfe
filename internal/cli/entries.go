package cli

import (
	"errors"
	"strings"

	"leasetrack/internal/importer"
	"leasetrack/internal/model"
	"leasetrack/internal/view"

	"github.com/spf13/cobra"
)

func newEntriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Entry commands",
	}

	cmd.AddCommand(newEntriesListCmd(app))
	cmd.AddCommand(newEntriesShowCmd(app))
	cmd.AddCommand(newEntriesAddCmd(app))
	cmd.AddCommand(newEntriesSetCmd(app))
	cmd.AddCommand(newEntriesDeleteCmd(app))

	return cmd
}

func newEntriesListCmd(app *App) *cobra.Command {
	var vf viewFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries through the date-range/filter/sort pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			state, err := vf.state()
			if err != nil {
				return writeErr(cmd, err)
			}
			entries := view.Apply(db.Entries, state)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"entries": entries,
				"total":   len(db.Entries),
				"shown":   len(entries),
			}})
		},
	}

	vf.register(cmd)
	return cmd
}

func newEntriesShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			e, ok := db.FindEntry(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("entry", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": e})
		},
	}
	return cmd
}

// entryFlags registers the writable entry fields; set tracks which flags
// were provided so `entries set` only touches what the user named.
type entryFlags struct {
	week     int
	date     string
	tenant   string
	business string
	btype    string
	contact  string
	notes    string
	status   string
}

func (ef *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ef.week, "week", 0, "Week number")
	cmd.Flags().StringVar(&ef.date, "date", "", "Entry date (e.g. 2025-06-02)")
	cmd.Flags().StringVar(&ef.tenant, "tenant", "", "Tenant name")
	cmd.Flags().StringVar(&ef.business, "business", "", "Business name")
	cmd.Flags().StringVar(&ef.btype, "type", "", "Business type")
	cmd.Flags().StringVar(&ef.contact, "contact", "", "Contact (phone or email)")
	cmd.Flags().StringVar(&ef.notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&ef.status, "status", "", "Status line")
}

func newEntriesAddCmd(app *App) *cobra.Command {
	var ef entryFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			if strings.TrimSpace(ef.tenant) == "" {
				return writeErr(cmd, errors.New("missing --tenant"))
			}
			date, err := importer.ParseDate(ef.date)
			if err != nil {
				return writeErr(cmd, err)
			}
			if ef.week < 0 {
				return writeErr(cmd, errors.New("--week must be non-negative"))
			}

			e := model.Entry{
				ID:           db.NextEntryID(),
				Week:         ef.week,
				Date:         date,
				TenantName:   strings.TrimSpace(ef.tenant),
				BusinessName: strings.TrimSpace(ef.business),
				BusinessType: strings.TrimSpace(ef.btype),
				Contact:      strings.TrimSpace(ef.contact),
				Notes:        ef.notes,
				Status:       strings.TrimSpace(ef.status),
			}
			db.Entries = append(db.Entries, e)
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": e})
		},
	}

	ef.register(cmd)
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newEntriesSetCmd(app *App) *cobra.Command {
	var ef entryFlags

	cmd := &cobra.Command{
		Use:   "set <entry-id>",
		Short: "Update fields of an entry in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			e, ok := db.FindEntry(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("entry", args[0]))
			}

			flags := cmd.Flags()
			if flags.Changed("week") {
				if ef.week < 0 {
					return writeErr(cmd, errors.New("--week must be non-negative"))
				}
				e.Week = ef.week
			}
			if flags.Changed("date") {
				date, err := importer.ParseDate(ef.date)
				if err != nil {
					return writeErr(cmd, err)
				}
				e.Date = date
			}
			if flags.Changed("tenant") {
				if strings.TrimSpace(ef.tenant) == "" {
					return writeErr(cmd, errors.New("--tenant must not be empty"))
				}
				e.TenantName = strings.TrimSpace(ef.tenant)
			}
			if flags.Changed("business") {
				e.BusinessName = strings.TrimSpace(ef.business)
			}
			if flags.Changed("type") {
				e.BusinessType = strings.TrimSpace(ef.btype)
			}
			if flags.Changed("contact") {
				e.Contact = strings.TrimSpace(ef.contact)
			}
			if flags.Changed("notes") {
				e.Notes = ef.notes
			}
			if flags.Changed("status") {
				e.Status = strings.TrimSpace(ef.status)
			}

			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": e})
		},
	}

	ef.register(cmd)
	return cmd
}

func newEntriesDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !db.DeleteEntry(args[0]) {
				return writeErr(cmd, errNotFound("entry", args[0]))
			}
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": args[0]}})
		},
	}
	return cmd
}
