// Package journal provides the entry schema, plist parsing, and folder
// loading for Day One journals.
package journal

import (
	"fmt"
	"strings"
	"time"
)

// Location holds the place hierarchy attached to an entry, from most to
// least specific.
type Location struct {
	PlaceName string `json:"place_name,omitempty"`
	Locality  string `json:"locality,omitempty"`
	AdminArea string `json:"admin_area,omitempty"`
	Country   string `json:"country,omitempty"`
}

// Weather holds the weather snapshot attached to an entry. Day One stores
// the temperatures as strings.
type Weather struct {
	Celsius     string `json:"celsius,omitempty"`
	Fahrenheit  string `json:"fahrenheit,omitempty"`
	Description string `json:"description,omitempty"`
}

// Entry represents a single journal entry.
//
// CreationDate is the UTC creation time as recorded in the entry file.
// Date is the same instant localized to the entry's time zone; it is set
// by the loader (or by the caller for programmatic entries) and is the
// value templates format.
type Entry struct {
	UUID         string    `json:"uuid"`
	CreationDate time.Time `json:"creation_date"`
	Date         time.Time `json:"date"`
	TimeZone     string    `json:"time_zone,omitempty"`
	Text         string    `json:"text"`
	Tags         []string  `json:"tags,omitempty"`
	Photo        string    `json:"photo,omitempty"`
	Location     *Location `json:"location,omitempty"`
	Weather      *Weather  `json:"weather,omitempty"`
	Starred      bool      `json:"starred,omitempty"`
}

// MissingFieldError is returned when an entry lacks a required field.
// Index is the entry's position in the sequence being processed.
type MissingFieldError struct {
	Field string
	Index int
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("entry %d: missing required field %q", e.Index, e.Field)
}

// HasPhoto reports whether the entry has an attached photo. Any non-empty
// reference counts as present; whether the referenced bytes are readable
// is the image encoder's concern.
func (e *Entry) HasPhoto() bool {
	return e.Photo != ""
}

// HasTag reports whether the entry carries the given tag.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// placeOrder lists location fields from most to least specific.
func (l *Location) placeOrder() []string {
	return []string{l.PlaceName, l.Locality, l.AdminArea, l.Country}
}

// Place formats the entry's location as a comma-separated string using
// all four levels of specificity. Returns "" when no location is set.
func (e *Entry) Place() string {
	return e.PlaceLevels(4, nil)
}

// PlaceLevels formats the entry's location using the given number of
// levels of specificity (1-4, most specific first), dropping empty parts
// and any names in ignore. Returns "" when no location is set.
func (e *Entry) PlaceLevels(levels int, ignore []string) string {
	if e.Location == nil {
		return ""
	}
	if levels < 0 {
		levels = 0
	}
	order := e.Location.placeOrder()
	if levels > len(order) {
		levels = len(order)
	}

	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[name] = true
	}

	var names []string
	for _, name := range order[:levels] {
		if name != "" && !ignored[name] {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// WeatherString formats the entry's weather as "NN° Description" using
// the requested temperature unit ("celsius"/"c" or anything else for
// Fahrenheit). Returns "" when no weather is set.
func (e *Entry) WeatherString(unit string) string {
	if e.Weather == nil {
		return ""
	}
	temperature := e.Weather.Fahrenheit
	switch strings.ToLower(unit) {
	case "celsius", "c":
		temperature = e.Weather.Celsius
	}
	return fmt.Sprintf("%s° %s", temperature, e.Weather.Description)
}

// Validate checks that the required date field is set. Index is reported
// in any resulting MissingFieldError.
//
// Text cannot be distinguished from an intentionally empty entry once
// loaded (Day One itself omits the key for empty entries), so emptiness
// is not an error: empty text still flows through the markup converter.
func (e *Entry) Validate(index int) error {
	if e.Date.IsZero() && e.CreationDate.IsZero() {
		return &MissingFieldError{Field: "date", Index: index}
	}
	return nil
}
