package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the name of the defaults file inside the config dir.
const configFile = "config.yaml"

// Config holds persistent export defaults. Command-line flags always
// take precedence over these values.
type Config struct {
	// Timezone overrides entry time zones (IANA name).
	Timezone string `yaml:"timezone,omitempty"`
	// TemplateDir restricts template resolution to one directory.
	TemplateDir string `yaml:"template_dir,omitempty"`
	// Format is the default output format ("html" or "md").
	Format string `yaml:"format,omitempty"`
	// Autobold promotes each entry's first line to a heading.
	Autobold bool `yaml:"autobold,omitempty"`
	// Nl2br renders single newlines as <br> elements.
	Nl2br bool `yaml:"nl2br,omitempty"`
}

// Load reads config.yaml from the config directory. A missing file is
// not an error and yields a zero Config; a malformed file is an error.
func Load() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return &Config{}, nil
	}
	return LoadFile(filepath.Join(dir, configFile))
}

// LoadFile reads a config file from an explicit path. A missing file
// yields a zero Config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
