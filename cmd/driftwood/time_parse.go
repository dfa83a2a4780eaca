// Package main provides the entry point for the driftwood CLI.
package main

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// durationRegex matches duration strings like "24h", "7d", "2w", "1m".
var durationRegex = regexp.MustCompile(`^(\d+)([hdwm])$`)

// parseAfterValue parses an --after value into an inclusive UTC cutoff.
// Accepts:
//   - Durations: "24h", "48h", "7d", "2w", "1m" (hours, days, weeks, months)
//   - Dates: "2023-05-01" (YYYY-MM-DD, interpreted in zone)
//   - Timestamps: RFC3339
func parseAfterValue(value string, zone *time.Location) (time.Time, error) {
	t, err := parseTimeValue(value, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --after value %q; use duration (24h, 7d, 2w) or date (2023-05-01)", value)
	}
	return t, nil
}

// parseBeforeValue parses a --before value into an exclusive UTC cutoff.
// Date-only values mean the start of that day, so "--before 2023-05-01"
// excludes all of May 1st.
func parseBeforeValue(value string, zone *time.Location) (time.Time, error) {
	t, err := parseTimeValue(value, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --before value %q; use duration (24h, 7d, 2w) or date (2023-05-01)", value)
	}
	return t, nil
}

// parseTimeValue parses a time value (duration, date, or timestamp)
// into a UTC time. Date-only values are interpreted in zone.
func parseTimeValue(value string, zone *time.Location) (time.Time, error) {
	// Try parsing as duration first
	if matches := durationRegex.FindStringSubmatch(value); len(matches) == 3 {
		return parseDuration(matches[1], matches[2])
	}

	// Try parsing as date (YYYY-MM-DD) in the journal's zone
	if t, err := time.ParseInLocation("2006-01-02", value, zone); err == nil {
		return t.UTC(), nil
	}

	// Try parsing as timestamp (RFC3339)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid time value: %s", value)
}

// parseDuration converts a numeric value and unit to a time cutoff.
func parseDuration(numStr, unit string) (time.Time, error) {
	num, err := strconv.Atoi(numStr)
	if err != nil || num <= 0 {
		return time.Time{}, fmt.Errorf("invalid duration number: %s", numStr)
	}

	now := time.Now().UTC()

	switch unit {
	case "h":
		return now.Add(-time.Duration(num) * time.Hour), nil
	case "d":
		return now.AddDate(0, 0, -num), nil
	case "w":
		return now.AddDate(0, 0, -num*7), nil
	case "m":
		return now.AddDate(0, -num, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown duration unit: %s", unit)
	}
}
