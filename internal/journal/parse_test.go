package journal

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// entryPlist builds an XML plist for tests. Pairs of extra key/value
// XML fragments are appended inside the top-level dict.
func entryPlist(uuid, creationDate string, extra ...string) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
`)
	if uuid != "" {
		fmt.Fprintf(&builder, "\t<key>UUID</key>\n\t<string>%s</string>\n", uuid)
	}
	if creationDate != "" {
		fmt.Fprintf(&builder, "\t<key>Creation Date</key>\n\t<date>%s</date>\n", creationDate)
	}
	for _, fragment := range extra {
		builder.WriteString(fragment)
		builder.WriteString("\n")
	}
	builder.WriteString("</dict>\n</plist>\n")
	return builder.String()
}

// TestParseEntry tests decoding a complete .doentry plist.
func TestParseEntry(t *testing.T) {
	raw := entryPlist("ABC123", "2023-05-01T21:05:00Z",
		"\t<key>Entry Text</key>\n\t<string>A fine day at the lake.</string>",
		"\t<key>Time Zone</key>\n\t<string>America/Los_Angeles</string>",
		"\t<key>Starred</key>\n\t<true/>",
		"\t<key>Tags</key>\n\t<array>\n\t\t<string>travel</string>\n\t\t<string>family</string>\n\t</array>",
		"\t<key>Location</key>\n\t<dict>\n\t\t<key>Place Name</key>\n\t\t<string>Lake House</string>\n\t\t<key>Locality</key>\n\t\t<string>Sandpoint</string>\n\t\t<key>Administrative Area</key>\n\t\t<string>Idaho</string>\n\t\t<key>Country</key>\n\t\t<string>United States</string>\n\t</dict>",
		"\t<key>Weather</key>\n\t<dict>\n\t\t<key>Celsius</key>\n\t\t<string>18</string>\n\t\t<key>Fahrenheit</key>\n\t\t<string>64</string>\n\t\t<key>Description</key>\n\t\t<string>Partly Cloudy</string>\n\t</dict>",
	)

	entry, err := ParseEntry([]byte(raw))
	if err != nil {
		t.Fatalf("ParseEntry returned error: %v", err)
	}

	if entry.UUID != "ABC123" {
		t.Errorf("UUID = %q, want ABC123", entry.UUID)
	}
	want := time.Date(2023, 5, 1, 21, 5, 0, 0, time.UTC)
	if !entry.CreationDate.Equal(want) {
		t.Errorf("CreationDate = %v, want %v", entry.CreationDate, want)
	}
	if entry.Text != "A fine day at the lake." {
		t.Errorf("Text = %q", entry.Text)
	}
	if entry.TimeZone != "America/Los_Angeles" {
		t.Errorf("TimeZone = %q", entry.TimeZone)
	}
	if !entry.Starred {
		t.Error("Starred = false, want true")
	}
	if len(entry.Tags) != 2 || entry.Tags[0] != "travel" {
		t.Errorf("Tags = %v, want [travel family]", entry.Tags)
	}
	if entry.Location == nil || entry.Location.PlaceName != "Lake House" {
		t.Errorf("Location = %+v, want Place Name Lake House", entry.Location)
	}
	if entry.Weather == nil || entry.Weather.Fahrenheit != "64" {
		t.Errorf("Weather = %+v, want Fahrenheit 64", entry.Weather)
	}
}

// TestParseEntryMinimal verifies optional keys default sensibly.
func TestParseEntryMinimal(t *testing.T) {
	entry, err := ParseEntry([]byte(entryPlist("XYZ", "2023-05-01T21:05:00Z")))
	if err != nil {
		t.Fatalf("ParseEntry returned error: %v", err)
	}
	if entry.Text != "" {
		t.Errorf("Text = %q, want empty for entry without Entry Text", entry.Text)
	}
	if entry.Location != nil {
		t.Errorf("Location = %+v, want nil", entry.Location)
	}
	if entry.Weather != nil {
		t.Errorf("Weather = %+v, want nil", entry.Weather)
	}
	if len(entry.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", entry.Tags)
	}
}

// TestParseEntryErrors tests the rejection cases.
func TestParseEntryErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "missing creation date",
			data:    entryPlist("NODATE", ""),
			wantErr: "no Creation Date",
		},
		{
			name:    "malformed xml",
			data:    "<?xml version=\"1.0\"?>\n<plist version=\"1.0\"><dict><key>UUID</dict>",
			wantErr: "parsing entry plist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntry([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseEntry returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want containing %q", err, tt.wantErr)
			}
		})
	}
}
