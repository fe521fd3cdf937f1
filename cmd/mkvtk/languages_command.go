package main

import (
	"strings"

	"github.com/spf13/cobra"

	mkvtoolnix "github.com/wagiedev/mkvtoolnix-go"
)

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "languages [QUERY]",
		Short: "List the languages mkvmerge knows, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ctx.client(cmd)
			if err != nil {
				return err
			}

			table, err := tk.Languages(cmd.Context())
			if err != nil {
				return err
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			matches := filterLanguages(table, query)

			if ctx.json() {
				return writeJSON(cmd, matches)
			}

			rows := make([][]string, 0, len(matches))
			for _, l := range matches {
				rows = append(rows, []string{l.Name, l.ISO6393, l.ISO6392, l.ISO6391})
			}

			cmd.Println(renderTable([]string{"Name", "ISO 639-3", "ISO 639-2", "ISO 639-1"}, rows, nil))

			return nil
		},
	}
}

// filterLanguages keeps languages whose name contains query or whose code
// equals it, ignoring case.
func filterLanguages(table *mkvtoolnix.LanguageTable, query string) []mkvtoolnix.Language {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []mkvtoolnix.Language

	for l := range table.All() {
		if query == "" ||
			strings.Contains(strings.ToLower(l.Name), query) ||
			query == l.ISO6393 || query == l.ISO6392 || query == l.ISO6391 {
			out = append(out, l)
		}
	}

	return out
}
