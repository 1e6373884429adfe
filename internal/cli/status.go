package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var setStaff string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show workspace status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			if cmd.Flags().Changed("set-staff") {
				db.StaffName = strings.TrimSpace(setStaff)
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
			}

			language := db.Language
			if language == "" {
				language = "English (built-in)"
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"dir":       s.Dir,
				"workspace": app.Workspace,
				"entries":   len(db.Entries),
				"staffName": db.StaffName,
				"language":  language,
			}})
		},
	}

	cmd.Flags().StringVar(&setStaff, "set-staff", "", "Persist the staff name used on reports")
	return cmd
}
