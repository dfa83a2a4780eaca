package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/driftwood/internal/journal"
	"github.com/gorewood/driftwood/internal/markup"
	"github.com/gorewood/driftwood/internal/render"
)

// --- Shared types ---

// EntrySummary is a compact entry representation for tool output.
type EntrySummary struct {
	UUID     string   `json:"uuid,omitempty"      jsonschema:"entry UUID"`
	Date     string   `json:"date"                jsonschema:"localized entry date, RFC3339"`
	Place    string   `json:"place,omitempty"     jsonschema:"formatted location"`
	Tags     []string `json:"tags,omitempty"      jsonschema:"entry tags"`
	HasPhoto bool     `json:"has_photo,omitempty" jsonschema:"whether the entry has an attached photo"`
	Preview  string   `json:"preview,omitempty"   jsonschema:"start of the entry text"`
}

// FilterInput holds the entry filters shared by query and render.
type FilterInput struct {
	Tags    []string `json:"tags,omitempty"    jsonschema:"include only entries with one of these tags; the single value 'any' matches every tagged entry"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"exclude entries with any of these tags"`
	After   string   `json:"after,omitempty"   jsonschema:"include entries on or after this date (YYYY-MM-DD or RFC3339)"`
	Before  string   `json:"before,omitempty"  jsonschema:"include entries before this date (YYYY-MM-DD or RFC3339)"`
	Last    int      `json:"last,omitempty"    jsonschema:"keep only the last N entries after filtering"`
	Reverse bool     `json:"reverse,omitempty" jsonschema:"reverse chronological order"`
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Journal    string `json:"journal"             jsonschema:"journal folder path"`
	EntryCount int    `json:"entry_count"         jsonschema:"number of entries"`
	PhotoCount int    `json:"photo_count"         jsonschema:"number of entries with photos"`
	Earliest   string `json:"earliest,omitempty"  jsonschema:"earliest entry date"`
	Latest     string `json:"latest,omitempty"    jsonschema:"latest entry date"`
	TimeZone   string `json:"time_zone,omitempty" jsonschema:"journal default time zone"`
}

func handleStatus(journalDir string) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		entries, err := journal.Load(journalDir, journal.LoadOptions{})
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		photos := 0
		for _, entry := range entries {
			if entry.HasPhoto() {
				photos++
			}
		}

		out := StatusOutput{
			Journal:    journalDir,
			EntryCount: len(entries),
			PhotoCount: photos,
			Earliest:   entries[0].Date.Format("2006-01-02"),
			Latest:     entries[len(entries)-1].Date.Format("2006-01-02"),
			TimeZone:   journal.DefaultTimezone(entries).String(),
		}
		return nil, out, nil
	}
}

// --- Query tool ---

// QueryInput is the input for the query tool.
type QueryInput struct {
	FilterInput
}

// QueryOutput is the output for the query tool.
type QueryOutput struct {
	Count   int            `json:"count"             jsonschema:"number of matching entries"`
	Entries []EntrySummary `json:"entries,omitempty" jsonschema:"matching entries"`
}

func handleQuery(journalDir string) mcp.ToolHandlerFor[QueryInput, QueryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, QueryOutput, error) {
		entries, err := loadFiltered(journalDir, input.FilterInput)
		if err != nil {
			return nil, QueryOutput{}, err
		}

		out := QueryOutput{
			Count:   len(entries),
			Entries: toSummaries(entries),
		}
		return nil, out, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	FilterInput
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA time zone overriding entry zones"`
	Autobold bool   `json:"autobold,omitempty" jsonschema:"promote each entry's first line to a heading"`
	Nl2br    bool   `json:"nl2br,omitempty"    jsonschema:"render single newlines as <br>"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Document   string `json:"document"    jsonschema:"the rendered HTML document"`
	EntryCount int    `json:"entry_count" jsonschema:"number of entries rendered"`
}

func handleRender(journalDir string) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		entries, err := journal.Load(journalDir, journal.LoadOptions{Timezone: input.Timezone})
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("loading journal: %w", err)
		}
		entries, err = applyFilters(entries, input.FilterInput)
		if err != nil {
			return nil, RenderOutput{}, err
		}

		tmpl, err := render.Resolve(render.ResolveOptions{})
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("resolving template: %w", err)
		}

		converter := markup.New(markup.Options{
			Autobold:   input.Autobold,
			HardBreaks: input.Nl2br,
		})
		renderer, err := render.New(tmpl, render.WithMarkupConverter(converter.Convert))
		if err != nil {
			return nil, RenderOutput{}, err
		}

		document, err := renderer.Render(entries)
		if err != nil {
			return nil, RenderOutput{}, err
		}

		out := RenderOutput{
			Document:   document,
			EntryCount: len(entries),
		}
		return nil, out, nil
	}
}
