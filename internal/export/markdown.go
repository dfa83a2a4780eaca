// Package export provides formatting and file output for journal
// entries.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/driftwood/internal/journal"
	"github.com/gorewood/driftwood/internal/output"
	"github.com/gorewood/driftwood/internal/strftime"
)

// FormatMarkdown formats a single entry as a markdown document with
// YAML frontmatter.
func FormatMarkdown(entry *journal.Entry) string {
	var builder strings.Builder

	writeFrontmatter(&builder, entry)
	writeHeader(&builder, entry)
	writeBody(&builder, entry)

	return builder.String()
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, entry *journal.Entry) {
	builder.WriteString("---\n")
	if entry.UUID != "" {
		fmt.Fprintf(builder, "uuid: %s\n", entry.UUID)
	}
	fmt.Fprintf(builder, "date: %s\n", entry.Date.Format("2006-01-02"))
	if entry.TimeZone != "" {
		fmt.Fprintf(builder, "time_zone: %s\n", entry.TimeZone)
	}
	if len(entry.Tags) > 0 {
		fmt.Fprintf(builder, "tags: [%s]\n", strings.Join(entry.Tags, ", "))
	}
	if entry.Starred {
		builder.WriteString("starred: true\n")
	}
	builder.WriteString("---\n\n")
}

// writeHeader writes the title and the place/time and weather subtitle
// lines.
func writeHeader(builder *strings.Builder, entry *journal.Entry) {
	title, err := strftime.Format(entry.Date, "")
	if err != nil {
		// The default pattern is a constant; this cannot fail.
		title = entry.Date.Format("Monday, Jan _2, 2006")
	}
	fmt.Fprintf(builder, "# %s\n\n", title)

	timeOfDay, err := strftime.Format(entry.Date, "%-I:%M %p %Z")
	if err != nil {
		timeOfDay = entry.Date.Format("3:04 PM MST")
	}
	if place := entry.Place(); place != "" {
		fmt.Fprintf(builder, "*%s, %s*\n\n", place, timeOfDay)
	} else {
		fmt.Fprintf(builder, "*%s*\n\n", timeOfDay)
	}

	if weather := entry.WeatherString(""); weather != "" {
		fmt.Fprintf(builder, "*%s*\n\n", weather)
	}
}

// writeBody writes the photo reference and the raw entry text.
func writeBody(builder *strings.Builder, entry *journal.Entry) {
	if entry.HasPhoto() {
		fmt.Fprintf(builder, "![photo](%s)\n\n", entry.Photo)
	}
	builder.WriteString(entry.Text)
	if entry.Text != "" && !strings.HasSuffix(entry.Text, "\n") {
		builder.WriteString("\n")
	}
}

// WriteMarkdownFiles writes each entry as a separate markdown file to
// the output directory. Files are named by UUID, falling back to the
// entry's date and position.
func WriteMarkdownFiles(entries []*journal.Entry, dir string) error {
	for i, entry := range entries {
		filename := filepath.Join(dir, entryFilename(entry, i)+".md")

		if err := os.WriteFile(filename, []byte(FormatMarkdown(entry)), 0600); err != nil {
			return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", filename, err))
		}
	}
	return nil
}

// entryFilename returns a stable file base name for an entry.
func entryFilename(entry *journal.Entry, index int) string {
	if entry.UUID != "" {
		return entry.UUID
	}
	return fmt.Sprintf("%s-%03d", entry.Date.Format("2006-01-02"), index)
}
