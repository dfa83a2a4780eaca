package journal

import (
	"fmt"
	"os"
	"time"

	"howett.net/plist"
)

// rawEntry mirrors the Day One .doentry plist schema.
type rawEntry struct {
	UUID         string      `plist:"UUID"`
	CreationDate time.Time   `plist:"Creation Date"`
	Text         string      `plist:"Entry Text"`
	Tags         []string    `plist:"Tags"`
	TimeZone     string      `plist:"Time Zone"`
	Starred      bool        `plist:"Starred"`
	Location     *rawPlace   `plist:"Location"`
	Weather      *rawWeather `plist:"Weather"`
}

type rawPlace struct {
	PlaceName string `plist:"Place Name"`
	Locality  string `plist:"Locality"`
	AdminArea string `plist:"Administrative Area"`
	Country   string `plist:"Country"`
}

type rawWeather struct {
	Celsius     string `plist:"Celsius"`
	Fahrenheit  string `plist:"Fahrenheit"`
	Description string `plist:"Description"`
}

// ParseEntry decodes a single .doentry plist into an Entry.
// The creation date is required; a plist without one is rejected.
// A missing Entry Text key yields an empty text, matching Day One's own
// treatment of empty entries.
func ParseEntry(data []byte) (*Entry, error) {
	var raw rawEntry
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing entry plist: %w", err)
	}

	if raw.CreationDate.IsZero() {
		return nil, fmt.Errorf("entry plist has no Creation Date")
	}

	entry := &Entry{
		UUID:         raw.UUID,
		CreationDate: raw.CreationDate.UTC(),
		Text:         raw.Text,
		Tags:         raw.Tags,
		TimeZone:     raw.TimeZone,
		Starred:      raw.Starred,
	}

	if raw.Location != nil {
		entry.Location = &Location{
			PlaceName: raw.Location.PlaceName,
			Locality:  raw.Location.Locality,
			AdminArea: raw.Location.AdminArea,
			Country:   raw.Location.Country,
		}
	}
	if raw.Weather != nil {
		entry.Weather = &Weather{
			Celsius:     raw.Weather.Celsius,
			Fahrenheit:  raw.Weather.Fahrenheit,
			Description: raw.Weather.Description,
		}
	}

	return entry, nil
}

// ParseEntryFile reads and decodes a .doentry file.
func ParseEntryFile(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entry file: %w", err)
	}
	entry, err := ParseEntry(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entry, nil
}
