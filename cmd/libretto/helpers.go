package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"libretto/internal/config"
	"libretto/internal/model"
	"libretto/internal/textutil"
)

// readDocument loads a JSON document from path after tilde expansion.
func readDocument(path string, v any) (string, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", expanded, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return "", fmt.Errorf("parse %s: %w", expanded, err)
	}
	return expanded, nil
}

func readBase(path string) (*model.BaseLibretto, string, error) {
	var base model.BaseLibretto
	expanded, err := readDocument(path, &base)
	if err != nil {
		return nil, "", err
	}
	return &base, expanded, nil
}

func readOverlay(path string) (*model.TimingOverlay, string, error) {
	var overlay model.TimingOverlay
	expanded, err := readDocument(path, &overlay)
	if err != nil {
		return nil, "", err
	}
	return &overlay, expanded, nil
}

// writeDocument marshals v as indented JSON and writes it to path,
// creating parent directories as needed.
func writeDocument(path string, v any) (string, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')
	if dir := filepath.Dir(expanded); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", expanded, err)
	}
	return expanded, nil
}

// defaultDocumentPath places a document under the library root, in a
// directory named after the opera.
func defaultDocumentPath(cfg *config.Config, title, name string) (string, error) {
	safe := textutil.SanitizeFileName(title)
	if safe == "" {
		return "", fmt.Errorf("cannot derive a library path without an opera title; pass --out")
	}
	return filepath.Join(cfg.LibraryDir, safe, name), nil
}

// trackLabel formats a disc/track position for table output.
func trackLabel(disc, track int) string {
	switch {
	case disc > 0:
		return fmt.Sprintf("%d-%d", disc, track)
	case track > 0:
		return fmt.Sprintf("%d", track)
	default:
		return "-"
	}
}

func formatSeconds(seconds float64) string {
	return fmt.Sprintf("%.3f", seconds)
}

func printWarnings(out io.Writer, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
}
