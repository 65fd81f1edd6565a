package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
mask_character = "#"
show_severity = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MaskRune != '#' {
		t.Fatalf("unexpected mask rune: %q", cfg.MaskRune)
	}
	if cfg.ShowSeverity {
		t.Fatalf("show_severity override ignored")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := defaultConfig()
	if cfg != want {
		t.Fatalf("empty file changed defaults: got %+v want %+v", cfg, want)
	}
}

func TestLoadConfigBadMask(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`mask_character = "##"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatalf("multi-character mask accepted")
	}
}
