// Package markup converts lightweight markup (markdown) into HTML
// fragments for journal rendering.
package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options controls the conversion behaviors journal exports expose.
type Options struct {
	// Autobold promotes the first line of the text to a heading.
	Autobold bool
	// HardBreaks renders single newlines as <br> elements.
	HardBreaks bool
}

// Converter turns markdown text into HTML fragments. Converted output is
// trusted downstream and inserted without further escaping, so raw HTML
// in the source text is passed through, matching how journal entries
// have always been rendered.
type Converter struct {
	md       goldmark.Markdown
	autobold bool
}

// New creates a Converter with the given options.
func New(opts Options) *Converter {
	rendererOpts := []renderer.Option{html.WithUnsafe()}
	if opts.HardBreaks {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	return &Converter{
		md:       goldmark.New(goldmark.WithRendererOptions(rendererOpts...)),
		autobold: opts.Autobold,
	}
}

// Convert renders text to an HTML fragment. Empty input yields an empty
// fragment, not an error.
func (c *Converter) Convert(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	if c.autobold {
		text = boldFirstLine(text)
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("converting markup: %w", err)
	}
	return buf.String(), nil
}

// boldFirstLine turns the first line of text into a heading, unless it
// already is one.
func boldFirstLine(text string) string {
	first, rest, found := strings.Cut(text, "\n")
	if strings.HasPrefix(first, "#") || strings.TrimSpace(first) == "" {
		return text
	}
	heading := "# " + first
	if !found {
		return heading
	}
	return heading + "\n" + rest
}
