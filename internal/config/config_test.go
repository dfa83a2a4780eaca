package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDir tests config directory resolution precedence.
func TestDir(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv("DRIFTWOOD_CONFIG_HOME", "/custom/driftwood")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		if got := Dir(); got != "/custom/driftwood" {
			t.Errorf("Dir() = %q, want /custom/driftwood", got)
		}
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("DRIFTWOOD_CONFIG_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		want := filepath.Join("/xdg", "driftwood")
		if got := Dir(); got != want {
			t.Errorf("Dir() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to home config", func(t *testing.T) {
		t.Setenv("DRIFTWOOD_CONFIG_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "")
		got := Dir()
		if got == "" {
			t.Skip("no home directory in test environment")
		}
		if !strings.HasSuffix(got, "driftwood") {
			t.Errorf("Dir() = %q, want a driftwood directory", got)
		}
	})
}

// TestLoadFile tests reading the defaults file.
func TestLoadFile(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "timezone: America/Los_Angeles\nformat: md\nautobold: true\nnl2br: true\ntemplate_dir: /templates\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile returned error: %v", err)
		}
		if cfg.Timezone != "America/Los_Angeles" {
			t.Errorf("Timezone = %q", cfg.Timezone)
		}
		if cfg.Format != "md" {
			t.Errorf("Format = %q", cfg.Format)
		}
		if !cfg.Autobold || !cfg.Nl2br {
			t.Errorf("Autobold = %v, Nl2br = %v, want both true", cfg.Autobold, cfg.Nl2br)
		}
		if cfg.TemplateDir != "/templates" {
			t.Errorf("TemplateDir = %q", cfg.TemplateDir)
		}
	})

	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("LoadFile returned error: %v", err)
		}
		if *cfg != (Config{}) {
			t.Errorf("cfg = %+v, want zero value", cfg)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(": : :\n"), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Fatal("LoadFile accepted malformed yaml")
		}
	})
}

// TestLoad tests loading via the config directory.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DRIFTWOOD_CONFIG_HOME", dir)
	content := "format: html\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Format != "html" {
		t.Errorf("Format = %q, want html", cfg.Format)
	}
}
