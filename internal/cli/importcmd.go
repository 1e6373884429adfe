package cli

import (
	"os"
	"path/filepath"
	"strings"

	"leasetrack/internal/importer"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Replace all entries from a CSV file (all-or-nothing)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if strings.ToLower(filepath.Ext(path)) != ".csv" {
				return writeErr(cmd, errNotCSV(path))
			}

			f, err := os.Open(path)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer f.Close()

			entries, err := importer.ParseCSV(f)
			if err != nil {
				// The store was never touched; the previous collection stands.
				return writeErr(cmd, err)
			}

			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			db.ReplaceEntries(entries)
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"imported": len(entries),
				"file":     path,
			}})
		},
	}
	return cmd
}

type notCSVError struct{ path string }

func (e notCSVError) Error() string {
	return "only .csv files can be imported: " + e.path
}

func errNotCSV(path string) error { return notCSVError{path: path} }
