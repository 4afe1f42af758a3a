package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"libretto/internal/model"
	"libretto/internal/testsupport"
)

func fixtureOverlay(basePath string) model.TimingOverlay {
	return model.TimingOverlay{
		Version:      model.DocumentVersion,
		BaseLibretto: basePath,
		Recording: model.RecordingMetadata{
			Conductor: "Giulini",
			Orchestra: "Philharmonia",
		},
		TrackTimings: []model.TrackTiming{
			{
				TrackTitle:      "Cinque... dieci... venti...",
				TrackNumber:     1,
				DurationSeconds: 100,
				NumberIDs:       []string{"no-1-duettino"},
			},
			{
				TrackTitle:      "Se a caso madama",
				TrackNumber:     2,
				DurationSeconds: 50,
				NumberIDs:       []string{"no-2-duettino"},
			},
		},
	}
}

func TestScaffoldCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	basePath := filepath.Join(env.baseDir, "base.json")
	testsupport.WriteJSON(t, basePath, fixtureBase())
	overlayPath := filepath.Join(env.baseDir, "overlay.json")

	out, _, err := runCLI(t, []string{"scaffold", "--base", basePath, "--out", overlayPath}, env.configPath)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	requireContains(t, out, "Tracks scaffolded: 2")

	var overlay model.TimingOverlay
	testsupport.ReadJSON(t, overlayPath, &overlay)
	if len(overlay.TrackTimings) != 2 {
		t.Fatalf("expected 2 scaffolded tracks, got %d", len(overlay.TrackTimings))
	}
	if overlay.TrackTimings[0].NumberIDs[0] != "no-1-duettino" {
		t.Fatalf("unexpected first track number: %v", overlay.TrackTimings[0].NumberIDs)
	}

	// Without --out the overlay lands in the library under the opera title.
	defaultPath := filepath.Join(env.cfg.LibraryDir, "Le nozze di Figaro", "overlay.json")
	if _, _, err := runCLI(t, []string{"scaffold", "--base", basePath}, env.configPath); err != nil {
		t.Fatalf("scaffold to library: %v", err)
	}
	if _, err := os.Stat(defaultPath); err != nil {
		t.Fatalf("expected overlay at %s: %v", defaultPath, err)
	}
}

func TestEstimateWriteThenMerge(t *testing.T) {
	env := setupCLITestEnv(t)

	basePath := filepath.Join(env.baseDir, "base.json")
	testsupport.WriteJSON(t, basePath, fixtureBase())
	overlayPath := filepath.Join(env.baseDir, "overlay.json")
	testsupport.WriteJSON(t, overlayPath, fixtureOverlay(basePath))

	_, _, err := runCLI(t, []string{"estimate", "--base", basePath, "--overlay", overlayPath, "--write"}, env.configPath)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	var estimated model.TimingOverlay
	testsupport.ReadJSON(t, overlayPath, &estimated)
	times := estimated.TrackTimings[0].SegmentTimes
	if len(times) != 2 {
		t.Fatalf("expected 2 segment times on track 1, got %d", len(times))
	}
	// 4-word and 5-word segments over 100s: second starts at 400/9.
	if times[0].Start != 0 {
		t.Fatalf("first segment start = %v, want 0", times[0].Start)
	}
	if math.Abs(times[1].Start-44.444) > 1e-9 {
		t.Fatalf("second segment start = %v, want 44.444", times[1].Start)
	}

	mergedPath := filepath.Join(env.baseDir, "interchange.json")
	out, _, err := runCLI(t, []string{"merge", "--base", basePath, "--overlay", overlayPath, "--out", mergedPath}, env.configPath)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "Wrote interchange libretto")

	var doc model.InterchangeLibretto
	testsupport.ReadJSON(t, mergedPath, &doc)
	if len(doc.Tracks) != 2 {
		t.Fatalf("expected 2 interchange tracks, got %d", len(doc.Tracks))
	}
	if doc.Tracks[0].TrackID != "t1" {
		t.Fatalf("track ID = %q, want t1", doc.Tracks[0].TrackID)
	}
	if len(doc.Tracks[0].Segments) != 2 {
		t.Fatalf("expected 2 timed segments, got %d", len(doc.Tracks[0].Segments))
	}
}

func TestMergeRefusesInvalidOverlay(t *testing.T) {
	env := setupCLITestEnv(t)

	basePath := filepath.Join(env.baseDir, "base.json")
	testsupport.WriteJSON(t, basePath, fixtureBase())

	overlay := fixtureOverlay(basePath)
	overlay.TrackTimings = overlay.TrackTimings[:1]
	overlayPath := filepath.Join(env.baseDir, "overlay.json")
	testsupport.WriteJSON(t, overlayPath, overlay)

	mergedPath := filepath.Join(env.baseDir, "interchange.json")
	_, errOut, err := runCLI(t, []string{"merge", "--base", basePath, "--overlay", overlayPath, "--out", mergedPath}, env.configPath)
	if err == nil {
		t.Fatal("expected merge to refuse an overlay with unaccounted numbers")
	}
	requireContains(t, errOut, "unaccounted_number")
}

func TestValidateCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	basePath := filepath.Join(env.baseDir, "base.json")
	testsupport.WriteJSON(t, basePath, fixtureBase())

	out, _, err := runCLI(t, []string{"validate", basePath}, env.configPath)
	if err != nil {
		t.Fatalf("validate base: %v", err)
	}
	requireContains(t, out, "valid")

	overlay := fixtureOverlay(basePath)
	overlay.TrackTimings[0].SegmentTimes = []model.SegmentTime{
		{SegmentID: "no-9-ghost-001", Start: 0},
	}
	overlayPath := filepath.Join(env.baseDir, "overlay.json")
	testsupport.WriteJSON(t, overlayPath, overlay)

	out, _, err = runCLI(t, []string{"validate", overlayPath, "--base", basePath}, env.configPath)
	if err == nil {
		t.Fatal("expected validation failure for unknown segment reference")
	}
	requireContains(t, out, "unknown_segment_id")
	requireContains(t, out, "Coverage:")
}

func TestCatalogImportAndList(t *testing.T) {
	env := setupCLITestEnv(t)

	basePath := filepath.Join(env.cfg.LibraryDir, "figaro", "base.json")
	testsupport.WriteJSON(t, basePath, fixtureBase())

	out, _, err := runCLI(t, []string{"catalog", "import", basePath}, env.configPath)
	if err != nil {
		t.Fatalf("catalog import: %v", err)
	}
	requireContains(t, out, "Le nozze di Figaro")

	out, _, err = runCLI(t, []string{"catalog", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	requireContains(t, out, "Le nozze di Figaro")
	requireContains(t, out, filepath.Join("figaro", "base.json"))
}
