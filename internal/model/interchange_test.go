package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleTrack() InterchangeTrack {
	endOverture := 10.0
	endFigaro := 25.0
	return InterchangeTrack{
		TrackID:         "act-1",
		Title:           "Act I",
		DurationSeconds: 100,
		Segments: []InterchangeSegment{
			{
				Start:       0,
				End:         &endOverture,
				SegmentType: SegmentInterlude,
				Direction:   "Overture begins.",
			},
			{
				Start:       10,
				End:         &endFigaro,
				SegmentType: SegmentSung,
				Character:   "FIGARO",
				Text:        "Cinque... dieci...",
				Translation: "Five... ten...",
			},
		},
	}
}

func TestSegmentAt(t *testing.T) {
	track := sampleTrack()

	if _, ok := track.SegmentAt(-1); ok {
		t.Error("SegmentAt(-1) reported a segment before the track start")
	}

	seg, ok := track.SegmentAt(5)
	if !ok || seg.Direction != "Overture begins." {
		t.Errorf("SegmentAt(5) = %+v, want overture direction", seg)
	}

	seg, ok = track.SegmentAt(15)
	if !ok || seg.Character != "FIGARO" {
		t.Errorf("SegmentAt(15) = %+v, want FIGARO segment", seg)
	}
}

func TestInterchangeSegmentTypeDefault(t *testing.T) {
	track := sampleTrack()

	data, err := json.Marshal(track)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// "sung" is the default and must be omitted; "interlude" must appear.
	if strings.Contains(string(data), `"type":"sung"`) {
		t.Errorf("default sung type serialized: %s", data)
	}
	if !strings.Contains(string(data), `"type":"interlude"`) {
		t.Errorf("interlude type missing: %s", data)
	}

	var parsed InterchangeTrack
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.Segments[1].SegmentType != SegmentSung {
		t.Errorf("absent type parsed as %q, want sung", parsed.Segments[1].SegmentType)
	}
	if parsed.Segments[0].SegmentType != SegmentInterlude {
		t.Errorf("interlude parsed as %q", parsed.Segments[0].SegmentType)
	}
}

func TestInterchangeJSONRoundTrip(t *testing.T) {
	doc := InterchangeLibretto{
		Version: DocumentVersion,
		Opera: OperaMetadata{
			Title:               "Tosca",
			Composer:            "Giacomo Puccini",
			Language:            "it",
			TranslationLanguage: "en",
		},
		Tracks: []InterchangeTrack{sampleTrack()},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var parsed InterchangeLibretto
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.Opera.Title != "Tosca" {
		t.Errorf("opera title = %q, want Tosca", parsed.Opera.Title)
	}
	if len(parsed.Tracks) != 1 || len(parsed.Tracks[0].Segments) != 2 {
		t.Errorf("unexpected track shape: %+v", parsed.Tracks)
	}
}
