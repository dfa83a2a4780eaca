package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/export"
	"github.com/gorewood/driftwood/internal/journal"
	"github.com/gorewood/driftwood/internal/output"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var flags filterFlags
	var timezone string

	cmd := &cobra.Command{
		Use:   "list <journal>",
		Short: "List journal entries",
		Long: `List entries in a Day One journal folder as a table.

Examples:
  driftwood list Journal.dayone
  driftwood list Journal.dayone --tags vacation --last 10
  driftwood list Journal.dayone --after 30d --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], timezone, flags)
		},
	}

	addFilterFlags(cmd, &flags)
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA time zone overriding entry zones")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, journalDir string, timezone string, flags filterFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	entries, err := loadJournal(printer, journalDir, timezone)
	if err != nil {
		return err
	}

	entries, err = applyFilterFlags(entries, flags)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return export.FormatJSON(printer, entries)
	}

	if len(entries) == 0 {
		printer.Println("No entries match.")
		return nil
	}

	printer.Table(
		[]string{"DATE", "PLACE", "TAGS", "PHOTO"},
		entryRows(entries),
	)
	printer.Print("\n%d entries\n", len(entries))
	return nil
}

// entryRows builds table rows for the entry listing.
func entryRows(entries []*journal.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		photo := ""
		if entry.HasPhoto() {
			photo = "✓"
		}
		rows = append(rows, []string{
			entry.Date.Format("2006-01-02 15:04"),
			truncate(entry.Place(), 40),
			truncate(strings.Join(entry.Tags, ", "), 30),
			photo,
		})
	}
	return rows
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return fmt.Sprintf("%s…", string(runes[:max-1]))
}
