package cli

import (
	"fmt"
	"strings"

	"leasetrack/internal/importer"
	"leasetrack/internal/model"

	"github.com/spf13/cobra"
)

// viewFlags are the pipeline controls shared by `entries list` and
// `export`, so scripts exercise exactly what the TUI shows.
type viewFlags struct {
	from    string
	to      string
	filters []string
	sortBy  string
	desc    bool
}

func (vf *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&vf.from, "from", "", "Range start date (inclusive, e.g. 2025-06-01)")
	cmd.Flags().StringVar(&vf.to, "to", "", "Range end date (inclusive; default: same day as --from)")
	cmd.Flags().StringArrayVar(&vf.filters, "filter", nil, "Column filter field=value (repeatable; substring match)")
	cmd.Flags().StringVar(&vf.sortBy, "sort", "", "Sort field (week|date|tenantName|...)")
	cmd.Flags().BoolVar(&vf.desc, "desc", false, "Sort descending")
}

func (vf *viewFlags) state() (model.ViewState, error) {
	var st model.ViewState

	if vf.from != "" {
		t, err := importer.ParseDate(vf.from)
		if err != nil {
			return st, fmt.Errorf("--from: %w", err)
		}
		st.Range.From = &t
	}
	if vf.to != "" {
		if vf.from == "" {
			return st, fmt.Errorf("--to requires --from")
		}
		t, err := importer.ParseDate(vf.to)
		if err != nil {
			return st, fmt.Errorf("--to: %w", err)
		}
		st.Range.To = &t
	}

	if len(vf.filters) > 0 {
		st.Filters = model.Filters{}
		for _, f := range vf.filters {
			field, value, ok := strings.Cut(f, "=")
			if !ok {
				return st, fmt.Errorf("--filter wants field=value, got %q", f)
			}
			field = strings.TrimSpace(field)
			if !model.KnownField(field) {
				return st, fmt.Errorf("--filter: unknown field %q", field)
			}
			st.Filters[field] = strings.TrimSpace(value)
		}
	}

	if vf.sortBy != "" {
		if !model.KnownField(vf.sortBy) {
			return st, fmt.Errorf("--sort: unknown field %q", vf.sortBy)
		}
		st.Sort = &model.Sort{Field: vf.sortBy, Desc: vf.desc}
	} else if vf.desc {
		return st, fmt.Errorf("--desc requires --sort")
	}

	return st, nil
}
