package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/output"
	"github.com/gorewood/driftwood/internal/render"
)

// newTemplatesCmd creates the templates command.
func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available export templates",
		Long: `List the templates available to the export command.

Templates in the config directory shadow built-in templates with the
same name. Use 'export --template NAME' to pick one.`,
		Args: cobra.NoArgs,
		RunE: runTemplates,
	}
	return cmd
}

// runTemplates executes the templates command.
func runTemplates(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	templates := render.ListTemplates()

	if printer.IsJSON() {
		return printer.WriteJSON(templates)
	}

	printer.Section("Templates")
	rows := make([][]string, 0, len(templates))
	for _, tmpl := range templates {
		source := tmpl.Source
		if tmpl.Overrides != "" {
			source = fmt.Sprintf("%s (overrides %s)", tmpl.Source, tmpl.Overrides)
		}
		rows = append(rows, []string{tmpl.Name, tmpl.Description, source})
	}
	printer.Table([]string{"NAME", "DESCRIPTION", "SOURCE"}, rows)
	return nil
}
