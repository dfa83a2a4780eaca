package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LoadOptions controls journal folder loading.
type LoadOptions struct {
	// Timezone overrides every entry's recorded time zone when non-empty.
	Timezone string
}

// Load reads a Day One journal folder and returns its entries sorted by
// creation date ascending.
//
// Entries live under <dir>/entries as .doentry plists; files that fail
// to parse are skipped. Photos under <dir>/photos are attached to
// entries by UUID base name; photos without a matching entry are
// ignored. Entries without a recorded time zone inherit the zone of the
// nearest newer entry that has one, and each entry's Date is its
// creation instant localized to that zone.
func Load(dir string, opts LoadOptions) ([]*Entry, error) {
	byUUID, err := loadEntryFiles(filepath.Join(dir, "entries"))
	if err != nil {
		return nil, err
	}
	if len(byUUID) == 0 {
		return nil, fmt.Errorf("no journal entries found in %s", dir)
	}

	attachPhotos(byUUID, dir)

	entries := make([]*Entry, 0, len(byUUID))
	for _, entry := range byUUID {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreationDate.Before(entries[j].CreationDate)
	})

	localize(entries, opts.Timezone)

	return entries, nil
}

// loadEntryFiles parses every .doentry file in dir, keyed by UUID.
// Later files win on UUID collision, matching the order os.ReadDir
// yields them (sorted by name).
func loadEntryFiles(dir string) (map[string]*Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading entries directory: %w", err)
	}

	byUUID := make(map[string]*Entry)
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".doentry" {
			continue
		}
		entry, err := ParseEntryFile(filepath.Join(dir, file.Name()))
		if err != nil {
			// Tolerant loader: a single corrupt file should not sink
			// the whole export.
			continue
		}
		key := entry.UUID
		if key == "" {
			key = file.Name()
		}
		byUUID[key] = entry
	}
	return byUUID, nil
}

// attachPhotos links files in <dir>/photos to entries by UUID base name.
func attachPhotos(byUUID map[string]*Entry, dir string) {
	photosDir := filepath.Join(dir, "photos")
	files, err := os.ReadDir(photosDir)
	if err != nil {
		// No photos directory is a perfectly normal journal.
		return
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		base := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		if entry, ok := byUUID[base]; ok {
			entry.Photo = filepath.Join(photosDir, file.Name())
		}
	}
}

// localize backfills time zones and sets each entry's localized Date.
//
// Entries are scanned newest-first; an entry without a zone inherits the
// zone of the nearest newer entry that has one, and the newest recorded
// zone seeds the default so trailing zone-less entries still localize
// consistently. An override zone, when given, applies to every entry.
func localize(entries []*Entry, override string) {
	defaultZone := override
	if defaultZone == "" {
		defaultZone = newestZone(entries)
	}

	zone := defaultZone
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if override != "" {
			entry.TimeZone = override
		} else if entry.TimeZone != "" {
			zone = entry.TimeZone
		} else {
			entry.TimeZone = zone
		}
		entry.Date = entry.CreationDate.In(location(entry.TimeZone))
	}
}

// newestZone returns the time zone of the newest entry that records one,
// or "" when no entry does.
func newestZone(entries []*Entry) string {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].TimeZone != "" {
			return entries[i].TimeZone
		}
	}
	return ""
}

// location resolves an IANA zone name, falling back to UTC for unknown
// or empty names.
func location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DefaultTimezone returns the zone the journal's newest entry uses, for
// interpreting naive date cutoffs. Returns UTC when entries carry no
// zone.
func DefaultTimezone(entries []*Entry) *time.Location {
	return location(newestZone(entries))
}
