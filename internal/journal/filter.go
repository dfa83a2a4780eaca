package journal

import (
	"time"
)

// TagAny is the special tag filter value matching any entry that has at
// least one tag.
const TagAny = "any"

// FilterByTags returns the entries carrying at least one of the given
// tags. The single value TagAny matches every tagged entry. An empty tag
// list returns the input unchanged.
func FilterByTags(entries []*Entry, tags []string) []*Entry {
	if len(tags) == 0 {
		return entries
	}
	if len(tags) == 1 && tags[0] == TagAny {
		return filter(entries, func(e *Entry) bool {
			return len(e.Tags) > 0
		})
	}
	return filter(entries, func(e *Entry) bool {
		return hasAnyTag(e, tags)
	})
}

// ExcludeTags returns the entries carrying none of the given tags.
func ExcludeTags(entries []*Entry, tags []string) []*Entry {
	if len(tags) == 0 {
		return entries
	}
	return filter(entries, func(e *Entry) bool {
		return !hasAnyTag(e, tags)
	})
}

// FilterByDate returns the entries created on or after `after` and
// before `before`. A zero cutoff disables that bound. Cutoffs compare
// against the UTC creation date.
func FilterByDate(entries []*Entry, after, before time.Time) []*Entry {
	if after.IsZero() && before.IsZero() {
		return entries
	}
	return filter(entries, func(e *Entry) bool {
		if !after.IsZero() && e.CreationDate.Before(after) {
			return false
		}
		if !before.IsZero() && !e.CreationDate.Before(before) {
			return false
		}
		return true
	})
}

// LimitLast returns the last n entries, or the input unchanged when the
// limit is zero, negative, or larger than the sequence.
func LimitLast(entries []*Entry, n int) []*Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}

// Reverse returns the entries in reverse order as a new slice.
func Reverse(entries []*Entry) []*Entry {
	reversed := make([]*Entry, len(entries))
	for i, entry := range entries {
		reversed[len(entries)-1-i] = entry
	}
	return reversed
}

// hasAnyTag reports whether the entry carries any of the given tags.
func hasAnyTag(e *Entry, tags []string) bool {
	for _, tag := range tags {
		if e.HasTag(tag) {
			return true
		}
	}
	return false
}

// filter returns the entries for which keep is true, preserving order.
func filter(entries []*Entry, keep func(*Entry) bool) []*Entry {
	var result []*Entry
	for _, entry := range entries {
		if keep(entry) {
			result = append(result, entry)
		}
	}
	return result
}

// Group is a named run of entries produced by GroupByPattern.
type Group struct {
	Name    string
	Entries []*Entry
}

// GroupByPattern splits entries into groups keyed by formatting each
// entry's localized date with the given pattern (via the format
// function, typically a strftime formatter). Groups appear in first-seen
// key order and entries keep their order within a group. An empty
// pattern yields a single unnamed group.
func GroupByPattern(entries []*Entry, pattern string, format func(time.Time, string) (string, error)) ([]Group, error) {
	if pattern == "" {
		return []Group{{Entries: entries}}, nil
	}

	index := make(map[string]int)
	var groups []Group
	for _, entry := range entries {
		name, err := format(entry.Date, pattern)
		if err != nil {
			return nil, err
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}
	return groups, nil
}
