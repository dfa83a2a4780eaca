// Package main provides the entry point for the driftwood CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/journal"
)

// filterFlags holds the entry-selection flags shared by export and list.
type filterFlags struct {
	tags    []string
	exclude []string
	after   string
	before  string
	last    int
	reverse bool
}

// addFilterFlags registers the shared selection flags on a command.
func addFilterFlags(cmd *cobra.Command, flags *filterFlags) {
	cmd.Flags().StringSliceVar(&flags.tags, "tags", []string{}, "Include only entries with one of these tags ('any' matches every tagged entry)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", []string{}, "Exclude entries with any of these tags")
	cmd.Flags().StringVar(&flags.after, "after", "", "Include entries on or after duration (24h, 7d) or date (2023-05-01)")
	cmd.Flags().StringVar(&flags.before, "before", "", "Include entries before duration (24h, 7d) or date (2023-05-01)")
	cmd.Flags().IntVar(&flags.last, "last", 0, "Keep only the last N entries after filtering")
	cmd.Flags().BoolVar(&flags.reverse, "reverse", false, "Reverse chronological order")
}

// applyFilterFlags applies the shared selection flags to loaded entries.
// Naive date cutoffs are interpreted in the journal's default zone.
func applyFilterFlags(entries []*journal.Entry, flags filterFlags) ([]*journal.Entry, error) {
	zone := journal.DefaultTimezone(entries)

	var after, before time.Time
	var err error
	if flags.after != "" {
		after, err = parseAfterValue(flags.after, zone)
		if err != nil {
			return nil, err
		}
	}
	if flags.before != "" {
		before, err = parseBeforeValue(flags.before, zone)
		if err != nil {
			return nil, err
		}
	}

	entries = journal.FilterByDate(entries, after, before)
	entries = journal.FilterByTags(entries, flags.tags)
	entries = journal.ExcludeTags(entries, flags.exclude)
	entries = journal.LimitLast(entries, flags.last)
	if flags.reverse {
		entries = journal.Reverse(entries)
	}
	return entries, nil
}
