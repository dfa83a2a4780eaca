package main

import (
	"testing"
	"time"
)

func TestParseAfterValue_Duration(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiff  time.Duration // approximate difference from now
		tolerance time.Duration // allowed tolerance
		wantErr   bool
	}{
		{"24 hours", "24h", 24 * time.Hour, time.Second, false},
		{"48 hours", "48h", 48 * time.Hour, time.Second, false},
		{"7 days", "7d", 7 * 24 * time.Hour, time.Second, false},
		{"2 weeks", "2w", 14 * 24 * time.Hour, time.Second, false},
		{"1 month", "1m", 30 * 24 * time.Hour, 48 * time.Hour, false}, // months vary (28-31 days)
		{"invalid unit", "5x", 0, 0, true},
		{"no number", "d", 0, 0, true},
		{"negative", "-5d", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now().UTC()
			got, err := parseAfterValue(tt.input, time.UTC)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseAfterValue(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseAfterValue(%q) unexpected error: %v", tt.input, err)
				return
			}

			// Check that the result is approximately the expected duration ago
			diff := now.Sub(got)
			if diff < tt.wantDiff-tt.tolerance || diff > tt.wantDiff+tt.tolerance {
				t.Errorf("parseAfterValue(%q) = %v ago, want ~%v ago (tolerance %v)", tt.input, diff, tt.wantDiff, tt.tolerance)
			}
		})
	}
}

func TestParseAfterValue_Date(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		zone    *time.Location
		want    time.Time
		wantErr bool
	}{
		{"ISO date", "2023-05-01", time.UTC, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{
			"ISO date in zone", "2023-05-01", time.FixedZone("PDT", -7*3600),
			time.Date(2023, 5, 1, 7, 0, 0, 0, time.UTC), false,
		},
		{"invalid date", "2023-13-45", time.UTC, time.Time{}, true},
		{"wrong format", "05-01-2023", time.UTC, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAfterValue(tt.input, tt.zone)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseAfterValue(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseAfterValue(%q) unexpected error: %v", tt.input, err)
				return
			}

			if !got.Equal(tt.want) {
				t.Errorf("parseAfterValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAfterValue_RFC3339(t *testing.T) {
	input := "2023-05-01T10:30:00Z"
	want := time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC)

	got, err := parseAfterValue(input, time.UTC)
	if err != nil {
		t.Fatalf("parseAfterValue(%q) unexpected error: %v", input, err)
	}

	if !got.Equal(want) {
		t.Errorf("parseAfterValue(%q) = %v, want %v", input, got, want)
	}
}

func TestParseBeforeValue(t *testing.T) {
	// A date-only cutoff means the start of that day, excluding it.
	got, err := parseBeforeValue("2023-05-01", time.UTC)
	if err != nil {
		t.Fatalf("parseBeforeValue unexpected error: %v", err)
	}
	want := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseBeforeValue(2023-05-01) = %v, want %v", got, want)
	}

	if _, err := parseBeforeValue("gibberish", time.UTC); err == nil {
		t.Error("parseBeforeValue(gibberish) expected error, got nil")
	}
}
