package cli

import (
	"errors"
	"os"
	"strings"

	"leasetrack/internal/translate"

	"github.com/spf13/cobra"
)

func newTranslateCmd(app *App) *cobra.Command {
	var reset bool
	var modelName string

	cmd := &cobra.Command{
		Use:   "translate [language]",
		Short: "Translate the UI text via Gemini (or --reset to English)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			if reset {
				db.UIText = nil
				db.Language = ""
				if err := s.Save(db); err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"language": "English (built-in)"}})
			}

			if len(args) == 0 {
				return writeErr(cmd, errors.New("missing target language (or pass --reset)"))
			}
			language := strings.TrimSpace(args[0])

			client := translate.NewClient(translate.Config{
				APIKey: os.Getenv("LEASETRACK_GEMINI_API_KEY"),
				Model:  modelName,
			})

			// Always translate from the built-in English catalog, not from a
			// previous translation.
			catalog, err := client.TranslateCatalog(cmd.Context(), language, translate.DefaultCatalog())
			if err != nil {
				// The stored catalog is untouched on failure.
				return writeErr(cmd, err)
			}

			db.UIText = catalog
			db.Language = language
			if err := s.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"language": language,
				"keys":     len(catalog),
			}})
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Restore the built-in English UI text")
	cmd.Flags().StringVar(&modelName, "model", "", "Gemini model override")
	return cmd
}
