package export

import (
	"github.com/gorewood/driftwood/internal/journal"
	"github.com/gorewood/driftwood/internal/output"
)

// FormatJSON outputs the entries as a JSON array to the printer.
func FormatJSON(printer *output.Printer, entries []*journal.Entry) error {
	return printer.WriteJSON(entries)
}
