// Package main provides the entry point for the driftwood CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/driftwood/internal/config"
	"github.com/gorewood/driftwood/internal/export"
	"github.com/gorewood/driftwood/internal/journal"
	"github.com/gorewood/driftwood/internal/markup"
	"github.com/gorewood/driftwood/internal/output"
	"github.com/gorewood/driftwood/internal/render"
	"github.com/gorewood/driftwood/internal/strftime"
)

// exportFlags holds all export command flags.
type exportFlags struct {
	filterFlags
	out         string
	format      string
	template    string
	templateDir string
	timezone    string
	group       string
	autobold    bool
	nl2br       bool
}

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export <journal>",
		Short: "Export a journal folder to HTML or markdown",
		Long: `Export a Day One journal folder to a styled HTML document or to
per-entry markdown files.

Examples:
  driftwood export Journal.dayone                          # HTML to stdout
  driftwood export Journal.dayone --out journal.html       # HTML to a file
  driftwood export Journal.dayone --format md --out notes/ # Markdown files
  driftwood export Journal.dayone --tags vacation          # Only tagged entries
  driftwood export Journal.dayone --after 2023-01-01 --before 2024-01-01
  driftwood export Journal.dayone --group %Y-%m --out pages/ # One file per month
  driftwood export Journal.dayone --template mine.html     # Custom template`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	addFilterFlags(cmd, &flags.filterFlags)
	cmd.Flags().StringVar(&flags.out, "out", "", "Output file or directory (default: stdout)")
	cmd.Flags().StringVar(&flags.format, "format", "", "Output format: html or md (default: html)")
	cmd.Flags().StringVar(&flags.template, "template", "", "Template name or path")
	cmd.Flags().StringVar(&flags.templateDir, "template-dir", "", "Directory to search for templates")
	cmd.Flags().StringVar(&flags.timezone, "timezone", "", "IANA time zone overriding entry zones")
	cmd.Flags().StringVar(&flags.group, "group", "", "Split output by strftime pattern of each entry's date (e.g. %Y-%m)")
	cmd.Flags().BoolVar(&flags.autobold, "autobold", false, "Promote each entry's first line to a heading")
	cmd.Flags().BoolVar(&flags.nl2br, "nl2br", false, "Render single newlines as <br>")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, journalDir string, flags exportFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	flags = mergeConfig(printer, flags)

	format, err := resolveFormat(printer, flags)
	if err != nil {
		return err
	}

	entries, err := loadJournal(printer, journalDir, flags.timezone)
	if err != nil {
		return err
	}

	entries, err = applyFilterFlags(entries, flags.filterFlags)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if format == "md" {
		return writeMarkdownOutput(printer, entries, flags.out)
	}
	return writeHTMLOutput(printer, entries, flags)
}

// mergeConfig fills unset flags from the persistent config file.
func mergeConfig(printer *output.Printer, flags exportFlags) exportFlags {
	cfg, err := config.Load()
	if err != nil {
		printer.Warn("ignoring config: %v", err)
		return flags
	}

	if flags.format == "" {
		flags.format = cfg.Format
	}
	if flags.timezone == "" {
		flags.timezone = cfg.Timezone
	}
	if flags.templateDir == "" {
		flags.templateDir = cfg.TemplateDir
	}
	flags.autobold = flags.autobold || cfg.Autobold
	flags.nl2br = flags.nl2br || cfg.Nl2br
	return flags
}

// resolveFormat validates the format and its flag combinations.
func resolveFormat(printer *output.Printer, flags exportFlags) (string, error) {
	format := flags.format
	if format == "" {
		format = "html"
	}
	if format != "html" && format != "md" {
		err := output.NewUserError("--format must be 'html' or 'md'")
		printer.Error(err)
		return "", err
	}
	if format == "md" && flags.template != "" {
		err := output.NewUserError("--template applies to html output only")
		printer.Error(err)
		return "", err
	}
	if format == "md" && flags.group != "" {
		err := output.NewUserError("--group applies to html output only")
		printer.Error(err)
		return "", err
	}
	return format, nil
}

// loadJournal loads the journal folder, mapping failures to exit-coded
// errors.
func loadJournal(printer *output.Printer, dir string, timezone string) ([]*journal.Entry, error) {
	entries, err := journal.Load(dir, journal.LoadOptions{Timezone: timezone})
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("loading journal: %v", err), err)
		printer.Error(sysErr)
		return nil, sysErr
	}
	return entries, nil
}

// writeMarkdownOutput writes markdown to stdout or per-entry files.
func writeMarkdownOutput(printer *output.Printer, entries []*journal.Entry, out string) error {
	if out == "" {
		for i, entry := range entries {
			if i > 0 {
				printer.Println("---")
			}
			printer.Print("%s", export.FormatMarkdown(entry))
		}
		return nil
	}

	if err := os.MkdirAll(out, 0755); err != nil {
		sysErr := output.NewSystemError(fmt.Sprintf("failed to create output directory: %v", err))
		printer.Error(sysErr)
		return sysErr
	}
	if err := export.WriteMarkdownFiles(entries, out); err != nil {
		printer.Error(err)
		return err
	}

	if !printer.IsJSON() {
		printer.Print("Exported %d entries to %s\n", len(entries), out)
	}
	return nil
}

// writeHTMLOutput renders entries and writes the document(s).
func writeHTMLOutput(printer *output.Printer, entries []*journal.Entry, flags exportFlags) error {
	renderer, err := buildRenderer(printer, flags)
	if err != nil {
		return err
	}

	groups, err := journal.GroupByPattern(entries, flags.group, strftime.Format)
	if err != nil {
		userErr := output.NewUserError(fmt.Sprintf("invalid --group pattern: %v", err))
		printer.Error(userErr)
		return userErr
	}

	if len(groups) == 1 && groups[0].Name == "" {
		return writeSingleDocument(printer, renderer, groups[0].Entries, flags.out)
	}
	return writeGroupedDocuments(printer, renderer, groups, flags.out)
}

// buildRenderer resolves the template and constructs the renderer with
// the requested markup options.
func buildRenderer(printer *output.Printer, flags exportFlags) (*render.Renderer, error) {
	tmpl, err := render.Resolve(render.ResolveOptions{
		Template:    flags.template,
		TemplateDir: flags.templateDir,
		Format:      "html",
	})
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return nil, userErr
	}

	converter := markup.New(markup.Options{
		Autobold:   flags.autobold,
		HardBreaks: flags.nl2br,
	})
	renderer, err := render.New(tmpl, render.WithMarkupConverter(converter.Convert))
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return nil, userErr
	}
	return renderer, nil
}

// writeSingleDocument renders one document to stdout or a file.
func writeSingleDocument(printer *output.Printer, renderer *render.Renderer, entries []*journal.Entry, out string) error {
	document, err := renderDocument(printer, renderer, entries)
	if err != nil {
		return err
	}

	if out == "" {
		printer.Print("%s", document)
		return nil
	}

	path := out
	if !strings.Contains(filepath.Base(out), ".") {
		// Treat an extensionless destination as a directory.
		if err := os.MkdirAll(out, 0755); err != nil {
			sysErr := output.NewSystemError(fmt.Sprintf("failed to create output directory: %v", err))
			printer.Error(sysErr)
			return sysErr
		}
		path = filepath.Join(out, "journal.html")
	}

	if err := export.WriteDocument(path, document); err != nil {
		printer.Error(err)
		return err
	}
	if !printer.IsJSON() {
		printer.Print("Exported %d entries to %s\n", len(entries), path)
	}
	return nil
}

// writeGroupedDocuments renders each group into its own file under the
// output directory.
func writeGroupedDocuments(printer *output.Printer, renderer *render.Renderer, groups []journal.Group, out string) error {
	if out == "" {
		err := output.NewUserError("specify --out DIR when splitting output with --group")
		printer.Error(err)
		return err
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		sysErr := output.NewSystemError(fmt.Sprintf("failed to create output directory: %v", err))
		printer.Error(sysErr)
		return sysErr
	}

	total := 0
	for _, group := range groups {
		document, err := renderDocument(printer, renderer, group.Entries)
		if err != nil {
			return err
		}
		path := filepath.Join(out, group.Name+".html")
		if err := export.WriteDocument(path, document); err != nil {
			printer.Error(err)
			return err
		}
		total += len(group.Entries)
	}

	if !printer.IsJSON() {
		printer.Print("Exported %d entries to %d files in %s\n", total, len(groups), out)
	}
	return nil
}

// renderDocument runs the renderer, mapping failures to exit-coded
// errors.
func renderDocument(printer *output.Printer, renderer *render.Renderer, entries []*journal.Entry) (string, error) {
	document, err := renderer.Render(entries)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("rendering: %v", err), err)
		printer.Error(sysErr)
		return "", sysErr
	}
	return document, nil
}
