package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CHARTVIEW_CONFIG", filepath.Join(dir, "config.toml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Scheme != "dark" {
		t.Errorf("scheme = %q, want %q", cfg.UI.Scheme, "dark")
	}
	if cfg.UI.SizeClass != "large" {
		t.Errorf("size class = %q, want %q", cfg.UI.SizeClass, "large")
	}
	if cfg.UI.ValueFormat != "%.1f" {
		t.Errorf("value format = %q, want %q", cfg.UI.ValueFormat, "%.1f")
	}
	if !cfg.UI.DropShadow {
		t.Error("drop shadow should default to true")
	}
	if cfg.Data.Path == "" {
		t.Error("data path should have a default")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := isolate(t)
	doc := "[ui]\nscheme = \"light\"\nsize_class = \"medium\"\n\n[data]\npath = \"/tmp/points.toml\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Scheme != "light" {
		t.Errorf("scheme = %q, want %q", cfg.UI.Scheme, "light")
	}
	if cfg.UI.SizeClass != "medium" {
		t.Errorf("size class = %q, want %q", cfg.UI.SizeClass, "medium")
	}
	if cfg.Data.Path != "/tmp/points.toml" {
		t.Errorf("data path = %q, want %q", cfg.Data.Path, "/tmp/points.toml")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("CHARTVIEW_UI_SCHEME", "light")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Scheme != "light" {
		t.Errorf("scheme = %q, want env override %q", cfg.UI.Scheme, "light")
	}
}
