// Package mcp provides a Model Context Protocol server for driftwood.
// It exposes journal operations as MCP tools that any MCP-capable agent
// can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all driftwood tools registered.
// journalDir is the Day One journal folder the tools operate on; it is
// re-read on every call so tools always see the journal's current
// contents.
func NewServer(version string, journalDir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "driftwood",
		Version: version,
	}, nil)
	registerTools(server, journalDir)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools. Every
// driftwood tool is read-only: the journal is never written.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all driftwood tools to the server.
func registerTools(server *mcp.Server, journalDir string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show journal state: entry count, photo count, date range, and default time zone.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(journalDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query",
		Description: "List journal entries with filters: tags, excluded tags, date range, last N, reverse order.",
		Annotations: readOnlyAnnotations(),
	}, handleQuery(journalDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render the journal (optionally filtered) to a complete HTML document and return it.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(journalDir))
}
