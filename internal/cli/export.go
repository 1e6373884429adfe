package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"leasetrack/internal/report"
	"leasetrack/internal/translate"
	"leasetrack/internal/view"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var vf viewFlags
	var outDir string
	var title string
	var staff string

	cmd := &cobra.Command{
		Use:   "export csv|xlsx|pdf",
		Short: "Export the current view as a report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := strings.ToLower(args[0])

			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			state, err := vf.state()
			if err != nil {
				return writeErr(cmd, err)
			}
			entries := view.Apply(db.Entries, state)

			staffName := strings.TrimSpace(staff)
			if staffName == "" {
				staffName = db.StaffName
			}
			meta := report.Meta{
				Title:  title,
				Period: report.PeriodLabel(state.Range),
				Staff:  report.StaffLabel(staffName),
				Today:  time.Now().UTC(),
			}
			if meta.Title == "" {
				meta.Title = translate.Merge(db.UIText)[translate.KeyReportTitle]
			}

			var file report.File
			switch kind {
			case "csv":
				file, err = report.CSV(entries, meta)
			case "xlsx":
				file, err = report.XLSX(entries, meta)
			case "pdf":
				file, err = report.PDF(entries, meta)
			default:
				return writeErr(cmd, fmt.Errorf("unknown export format: %q (want csv|xlsx|pdf)", args[0]))
			}
			if err != nil {
				return writeErr(cmd, err)
			}

			path := filepath.Join(outDir, file.Name)
			if err := os.WriteFile(path, file.Data, 0o644); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"file": path,
				"rows": len(entries),
			}})
		},
	}

	vf.register(cmd)
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory to write the report into")
	cmd.Flags().StringVar(&title, "title", "", "Report title (default: the UI catalog's report title)")
	cmd.Flags().StringVar(&staff, "staff", "", "Staff name line (default: the workspace staff name)")
	return cmd
}
