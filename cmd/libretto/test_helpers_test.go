package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"libretto/internal/config"
	"libretto/internal/model"
	"libretto/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := t.TempDir()

	configPath := filepath.Join(base, "config.toml")
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

// fixtureBase is a two-number libretto small enough to hand-check
// estimation arithmetic against.
func fixtureBase() *model.BaseLibretto {
	base := model.NewBaseLibretto(model.OperaMetadata{
		Title:    "Le nozze di Figaro",
		Composer: "Mozart",
		Language: "it",
	})
	base.Numbers = []model.MusicalNumber{
		{
			ID:         "no-1-duettino",
			Label:      "N° 1: Duettino",
			NumberType: model.NumberDuettino,
			Act:        "1",
			Segments: []model.Segment{
				{ID: "no-1-duettino-001", SegmentType: model.SegmentSung, Character: "FIGARO", Text: "Cinque... dieci... venti... trenta..."},
				{ID: "no-1-duettino-002", SegmentType: model.SegmentSung, Character: "SUSANNA", Text: "Ora sì ch'io son contenta"},
			},
		},
		{
			ID:         "no-2-duettino",
			Label:      "N° 2: Duettino",
			NumberType: model.NumberDuettino,
			Act:        "1",
			Segments: []model.Segment{
				{ID: "no-2-duettino-001", SegmentType: model.SegmentSung, Character: "FIGARO", Text: "Se a caso madama la notte ti chiama"},
			},
		},
	}
	return base
}
