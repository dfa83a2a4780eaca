package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/driftwood/internal/config"
)

// Template is a journal template with optional YAML frontmatter
// metadata and the template source after it.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Format      string `yaml:"format,omitempty"`

	// Template source (after frontmatter)
	Content string `yaml:"-"`

	// Source location for display: "built-in", "config", or a path
	Source string `yaml:"-"`
}

// TemplateInfo provides template metadata for listing. Only config-dir
// and built-in templates are enumerable; current-directory templates
// resolve by name but are not listed.
type TemplateInfo struct {
	Name        string
	Description string
	Source      string // "built-in" or "config"
	Overrides   string // empty or the source this one shadows
}

// ResolveOptions selects which template to load.
type ResolveOptions struct {
	// Template is a template file name, or a path when it contains a
	// directory component. Empty means the default for Format.
	Template string
	// TemplateDir restricts the search to one directory.
	TemplateDir string
	// Format picks the default template name (default.<format>) when no
	// template is named. Empty means "html".
	Format string
}

// Resolve finds and loads a template.
//
// An explicit path (containing a separator) is loaded directly. With a
// template dir, only that directory is searched. Otherwise the search
// order is: current directory (only when a template was named), the
// config dir's templates directory, then the built-in templates.
func Resolve(opts ResolveOptions) (*Template, error) {
	name := opts.Template
	if name == "" {
		format := opts.Format
		if format == "" {
			format = "html"
		}
		name = "default." + format
	}

	// Explicit path: only that file.
	if dir, base := filepath.Split(opts.Template); dir != "" {
		return loadFromPath(filepath.Clean(dir), base)
	}

	// Restricted directory: only there.
	if opts.TemplateDir != "" {
		return loadFromPath(opts.TemplateDir, name)
	}

	// A named template may also live in the current directory.
	if opts.Template != "" {
		if tmpl, err := loadFromPath(".", name); err == nil {
			return tmpl, nil
		}
	}

	if tmpl, err := loadFromPath(configTemplatesDir(), name); err == nil {
		tmpl.Source = "config"
		return tmpl, nil
	}

	if tmpl, err := loadBuiltin(name); err == nil {
		return tmpl, nil
	}

	return nil, fmt.Errorf("template %q not found", name)
}

// ListTemplates returns all available templates, config-dir templates
// first, marking built-ins they shadow.
func ListTemplates() []TemplateInfo {
	seen := make(map[string]bool)
	var templates []TemplateInfo

	for _, info := range listFromPath(configTemplatesDir(), "config") {
		seen[info.Name] = true
		templates = append(templates, info)
	}

	for _, info := range listBuiltins() {
		if seen[info.Name] {
			info.Overrides = "config"
		}
		templates = append(templates, info)
	}

	return templates
}

// configTemplatesDir returns the templates directory under the config dir.
func configTemplatesDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}

// loadFromPath loads a template file from a directory.
func loadFromPath(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}
	tmpl.Source = path
	return tmpl, nil
}

// listFromPath lists template files in a directory.
func listFromPath(dir, source string) []TemplateInfo {
	if dir == "" {
		return nil
	}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var templates []TemplateInfo
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		tmpl, err := parseTemplate(string(data))
		if err != nil {
			continue
		}
		templates = append(templates, TemplateInfo{
			Name:        entry.Name(),
			Description: tmpl.Description,
			Source:      source,
		})
	}
	return templates
}

// parseTemplate parses raw template text with optional YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Content = content
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from template content.
// Frontmatter is delimited by --- lines at the very start.
func splitFrontmatter(raw string) (frontmatter, content string) {
	if !strings.HasPrefix(raw, "---\n") {
		return "", raw
	}

	rest := raw[len("---\n"):]
	before, after, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return "", raw
	}

	return before, after
}
