package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("exists = true for a missing file")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.LibraryDir == "" || strings.HasPrefix(cfg.LibraryDir, "~") {
		t.Errorf("library dir not expanded: %q", cfg.LibraryDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
library_dir = "` + dir + `/lib"
log_level = "DEBUG"
log_format = "JSON"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || resolved != path {
		t.Errorf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("normalization: %+v", cfg)
	}
	if cfg.LibraryDir != filepath.Join(dir, "lib") {
		t.Errorf("library dir = %q", cfg.LibraryDir)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []string{
		`log_level = "loud"`,
		`log_format = "yaml"`,
		`library_dir = ""`,
	}
	for _, body := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, _, err := Load(path); err == nil {
			t.Errorf("no error for %q", body)
		}
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/librettos")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "librettos") {
		t.Errorf("got %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("sample not found after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		LibraryDir: filepath.Join(dir, "lib"),
		LogDir:     filepath.Join(dir, "logs"),
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{cfg.LibraryDir, cfg.LogDir} {
		if _, err := os.Stat(d); err != nil {
			t.Errorf("missing %q: %v", d, err)
		}
	}
}
