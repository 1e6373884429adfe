package main

import (
	"os"
	"strings"

	"leasetrack/internal/cli"
)

func isEntryID(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "ent-") {
		return false
	}
	// Keep it permissive; ids are generated but users may paste variants.
	return len(s) > len("ent-")
}

// rewriteDirectEntryLookupArgs makes `leasetrack <entry-id>` behave like
// `leasetrack entries show <entry-id>`. Cobra treats the first non-flag
// token as a subcommand, so argv is rewritten before parsing. Persistent
// flags may come first (e.g. `leasetrack --dir ... ent-x`), so the first
// positional token is located rather than assuming argv[1].
func rewriteDirectEntryLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":       true,
		"--workspace": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isEntryID(argv[i+1]) {
				out := make([]string, 0, len(argv)+2)
				out = append(out, argv[:i+1]...)
				out = append(out, "entries", "show")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		// First positional token.
		if isEntryID(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "entries", "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectEntryLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
