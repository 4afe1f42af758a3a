package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"libretto/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")
	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("resolved anchors", "component", "resolver", "tracks", 12)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "INFO resolver: resolved anchors") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "tracks=12") {
		t.Errorf("line = %q", line)
	}
}

func TestNewFromConfigCreatesLogDir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.LogDir = filepath.Join(dir, "logs")
	cfg.LogFormat = "json"

	if _, err := NewFromConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.LogDir); err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")
	logger, err := New(Options{OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatal(err)
	}

	logger.WithGroup("track").Info("estimated", "title", "Finale")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "track.title=Finale") {
		t.Errorf("line = %q", string(data))
	}
}
