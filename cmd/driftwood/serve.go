package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	driftwoodmcp "github.com/gorewood/driftwood/internal/mcp"
	"github.com/gorewood/driftwood/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var journalDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run driftwood as a Model Context Protocol (MCP) server over stdio.

This exposes journal operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "driftwood": {
        "command": "driftwood",
        "args": ["serve", "--journal", "/path/to/Journal.dayone"]
      }
    }
  }

Available tools: status, query, render`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if journalDir == "" {
				return output.NewUserError("specify the journal folder with --journal")
			}
			server := driftwoodmcp.NewServer(buildVersion(), journalDir)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().StringVar(&journalDir, "journal", "", "Day One journal folder to serve")

	return cmd
}
