// Package render produces HTML documents from journal entries.
//
// The renderer is a single synchronous pass: each entry becomes one
// article block, in input order, formatted through three collaborator
// filters (date formatting, image embedding, markup conversion). Either
// the whole document renders or an error is returned; there is no
// partial output.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/gorewood/driftwood/internal/imgdata"
	"github.com/gorewood/driftwood/internal/journal"
	"github.com/gorewood/driftwood/internal/markup"
	"github.com/gorewood/driftwood/internal/strftime"
)

// DateFormatter formats a time with a strftime pattern; an empty pattern
// selects the formatter's default.
type DateFormatter func(t time.Time, pattern string) (string, error)

// ImageEncoder returns an embeddable image source for the referenced
// photo, scaled to fit maxDim.
type ImageEncoder func(photo string, maxDim int) (string, error)

// MarkupConverter converts lightweight markup to an HTML fragment. The
// fragment is inserted verbatim, without re-escaping.
type MarkupConverter func(text string) (string, error)

// Page is the data available to templates.
type Page struct {
	Entries []*journal.Entry
	Today   time.Time
}

// Renderer renders an ordered sequence of journal entries into one
// document. Entries are never mutated; a Renderer holds no per-render
// state, so one Renderer may serve concurrent renders.
type Renderer struct {
	tmpl        *template.Template
	formatDate  DateFormatter
	encodeImage ImageEncoder
	convert     MarkupConverter
	now         func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDateFormatter replaces the default strftime date formatter.
func WithDateFormatter(f DateFormatter) Option {
	return func(r *Renderer) { r.formatDate = f }
}

// WithImageEncoder replaces the default data-URI image encoder.
func WithImageEncoder(f ImageEncoder) Option {
	return func(r *Renderer) { r.encodeImage = f }
}

// WithMarkupConverter replaces the default markdown converter.
func WithMarkupConverter(f MarkupConverter) Option {
	return func(r *Renderer) { r.convert = f }
}

// WithClock replaces the clock behind the template's Today value.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New parses the template and returns a Renderer using the default
// collaborators unless options replace them.
func New(tmpl *Template, opts ...Option) (*Renderer, error) {
	defaultConverter := markup.New(markup.Options{})
	r := &Renderer{
		formatDate:  strftime.Format,
		encodeImage: imgdata.EncodeFile,
		convert:     defaultConverter.Convert,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	parsed, err := template.New(tmpl.Name).Funcs(r.funcMap()).Parse(tmpl.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", tmpl.Name, err)
	}
	r.tmpl = parsed
	return r, nil
}

// funcMap exposes the collaborators as template filters. Each returns an
// error as its second value so collaborator failures abort execution
// instead of leaking into the document.
func (r *Renderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time, pattern ...string) (string, error) {
			p := ""
			if len(pattern) > 0 {
				p = pattern[0]
			}
			return r.formatDate(t, p)
		},
		"imgbase64": func(photo string, maxDim int) (template.URL, error) {
			src, err := r.encodeImage(photo, maxDim)
			if err != nil {
				return "", err
			}
			// Data URIs are not on html/template's safe-scheme list;
			// the encoder's output is the trust boundary here.
			return template.URL(src), nil
		},
		"markdown": func(text string) (template.HTML, error) {
			fragment, err := r.convert(text)
			if err != nil {
				return "", err
			}
			return template.HTML(fragment), nil
		},
	}
}

// Render produces the document for the entries, in order. Validation
// failures return a journal.MissingFieldError; collaborator and
// template failures propagate wrapped. On error no output is returned.
func (r *Renderer) Render(entries []*journal.Entry) (string, error) {
	for i, entry := range entries {
		if err := entry.Validate(i); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	page := Page{Entries: entries, Today: r.now()}
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("rendering journal: %w", err)
	}
	return buf.String(), nil
}
