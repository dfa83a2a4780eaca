package mcp

import (
	"fmt"
	"time"

	"github.com/gorewood/driftwood/internal/journal"
)

// previewLength caps the text preview in entry summaries.
const previewLength = 80

// loadFiltered loads the journal and applies the shared filters.
func loadFiltered(journalDir string, input FilterInput) ([]*journal.Entry, error) {
	entries, err := journal.Load(journalDir, journal.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}
	return applyFilters(entries, input)
}

// applyFilters applies the shared filter input to loaded entries.
func applyFilters(entries []*journal.Entry, input FilterInput) ([]*journal.Entry, error) {
	zone := journal.DefaultTimezone(entries)

	after, err := parseCutoff(input.After, zone)
	if err != nil {
		return nil, fmt.Errorf("invalid after value: %w", err)
	}
	before, err := parseCutoff(input.Before, zone)
	if err != nil {
		return nil, fmt.Errorf("invalid before value: %w", err)
	}

	entries = journal.FilterByDate(entries, after, before)
	entries = journal.FilterByTags(entries, input.Tags)
	entries = journal.ExcludeTags(entries, input.Exclude)
	entries = journal.LimitLast(entries, input.Last)
	if input.Reverse {
		entries = journal.Reverse(entries)
	}
	return entries, nil
}

// parseCutoff parses a date cutoff. Date-only values are interpreted in
// the journal's default zone; an empty value means no cutoff.
func parseCutoff(value string, zone *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, zone); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as date", value)
}

// toSummaries converts entries to EntrySummary slices.
func toSummaries(entries []*journal.Entry) []EntrySummary {
	result := make([]EntrySummary, 0, len(entries))
	for _, entry := range entries {
		result = append(result, EntrySummary{
			UUID:     entry.UUID,
			Date:     entry.Date.Format(time.RFC3339),
			Place:    entry.Place(),
			Tags:     entry.Tags,
			HasPhoto: entry.HasPhoto(),
			Preview:  preview(entry.Text),
		})
	}
	return result
}

// preview returns the start of the text, truncated on a rune boundary.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "…"
}
