package cli

import (
	"leasetrack/internal/model"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var empty bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the workspace (seeds the built-in dataset)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if empty {
				db.Entries = []model.Entry{}
			}
			// Materialize the state so the next load doesn't depend on the
			// seed fallback path.
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"dir":     s.Dir,
				"entries": len(db.Entries),
			}})
		},
	}

	cmd.Flags().BoolVar(&empty, "empty", false, "Start with an empty collection instead of the seed dataset")
	return cmd
}
