// Package strftime formats times using strftime-style patterns.
//
// Journal templates traditionally use strftime verbs rather than Go
// reference layouts, so patterns are translated verb-by-verb into
// time.Format layouts. The supported verbs cover the date and time forms
// journal templates use, including the GNU "-" no-padding modifier for
// day, month, and 12-hour fields.
package strftime

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPattern is the full human-readable date form used when no
// pattern is given, e.g. "Monday, May  1, 2023".
const DefaultPattern = "%A, %b %e, %Y"

// layouts maps strftime verbs to Go reference-layout fragments.
var layouts = map[byte]string{
	'A': "Monday",
	'a': "Mon",
	'B': "January",
	'b': "Jan",
	'd': "02",
	'e': "_2",
	'H': "15",
	'I': "03",
	'M': "04",
	'm': "01",
	'p': "PM",
	'S': "05",
	'Y': "2006",
	'y': "06",
	'Z': "MST",
}

// unpadded maps verbs that accept the "-" no-padding modifier to their
// unpadded layout fragments. %-H has no Go equivalent and is rejected.
var unpadded = map[byte]string{
	'd': "2",
	'm': "1",
	'I': "3",
}

// Layout translates a strftime pattern into a Go time layout.
// Unknown verbs are an error rather than silently passed through, so a
// template typo surfaces instead of leaking into rendered output.
func Layout(pattern string) (string, error) {
	var builder strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			builder.WriteByte(c)
			continue
		}

		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("pattern %q ends with a bare %%", pattern)
		}

		switch verb := pattern[i]; {
		case verb == '%':
			builder.WriteByte('%')
		case verb == '-':
			i++
			if i >= len(pattern) {
				return "", fmt.Errorf("pattern %q ends with a bare %%-", pattern)
			}
			fragment, ok := unpadded[pattern[i]]
			if !ok {
				return "", fmt.Errorf("unsupported strftime verb %%-%c", pattern[i])
			}
			builder.WriteString(fragment)
		default:
			fragment, ok := layouts[verb]
			if !ok {
				return "", fmt.Errorf("unsupported strftime verb %%%c", verb)
			}
			builder.WriteString(fragment)
		}
	}
	return builder.String(), nil
}

// Format formats t using a strftime pattern. An empty pattern uses
// DefaultPattern.
func Format(t time.Time, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
