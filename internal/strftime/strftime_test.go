package strftime

import (
	"strings"
	"testing"
	"time"
)

// TestLayout tests strftime pattern translation.
func TestLayout(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
		wantErr string
	}{
		{
			name:    "full date pattern",
			pattern: "%A, %b %e, %Y",
			want:    "Monday, Jan _2, 2006",
		},
		{
			name:    "time with zone",
			pattern: "%-I:%M %p %Z",
			want:    "3:04 PM MST",
		},
		{
			name:    "padded date",
			pattern: "%Y-%m-%d",
			want:    "2006-01-02",
		},
		{
			name:    "unpadded day and month",
			pattern: "%-m/%-d/%y",
			want:    "1/2/06",
		},
		{
			name:    "literal percent",
			pattern: "100%%",
			want:    "100%",
		},
		{
			name:    "no verbs",
			pattern: "plain text",
			want:    "plain text",
		},
		{
			name:    "trailing bare percent",
			pattern: "%Y%",
			wantErr: "bare %",
		},
		{
			name:    "trailing bare percent dash",
			pattern: "%Y%-",
			wantErr: "bare %-",
		},
		{
			name:    "unsupported verb",
			pattern: "%Q",
			wantErr: "unsupported strftime verb %Q",
		},
		{
			name:    "unsupported unpadded verb",
			pattern: "%-H",
			wantErr: "unsupported strftime verb %-H",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Layout(tt.pattern)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Layout(%q) = %q, want error containing %q", tt.pattern, got, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Layout(%q) error = %q, want containing %q", tt.pattern, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Layout(%q) returned error: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("Layout(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestFormat tests end-to-end formatting of a known time.
func TestFormat(t *testing.T) {
	pdt := time.FixedZone("PDT", -7*3600)
	afternoon := time.Date(2023, time.May, 1, 14, 5, 0, 0, pdt)

	tests := []struct {
		name    string
		time    time.Time
		pattern string
		want    string
	}{
		{
			name:    "empty pattern uses default",
			time:    afternoon,
			pattern: "",
			want:    "Monday, May  1, 2023",
		},
		{
			name:    "twelve hour clock with zone",
			time:    afternoon,
			pattern: "%-I:%M %p %Z",
			want:    "2:05 PM PDT",
		},
		{
			name:    "space padded day",
			time:    afternoon,
			pattern: "%b %e",
			want:    "May  1",
		},
		{
			name:    "iso date",
			time:    afternoon,
			pattern: "%Y-%m-%d",
			want:    "2023-05-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.time, tt.pattern)
			if err != nil {
				t.Fatalf("Format returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestFormatPropagatesError verifies bad patterns surface as errors.
func TestFormatPropagatesError(t *testing.T) {
	_, err := Format(time.Now(), "%Q")
	if err == nil {
		t.Fatal("expected error for unsupported verb, got nil")
	}
}
