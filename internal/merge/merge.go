// Package merge combines a base libretto with a timing overlay into a
// self-contained interchange document for display systems, and
// scaffolds blank overlays from a base.
package merge

import (
	"fmt"

	"libretto/internal/model"
)

// Result is the outcome of a merge.
type Result struct {
	Libretto model.InterchangeLibretto
	Stats    Stats
	Warnings []string
}

// Stats counts what the merge saw and produced.
type Stats struct {
	BaseSegments      int
	OverlayReferences int
	MergedSegments    int
	Tracks            int
}

// segmentContext is a segment's owning act and scene.
type segmentContext struct {
	act   string
	scene string
}

// Documents resolves the overlay's segment references against the base
// and produces one interchange track per track timing.
//
// A referenced segment missing from the base is warned about but still
// emitted as a timed slot with empty text fields, so playback positions
// are never silently dropped. Base segments no track references are
// skipped.
func Documents(base *model.BaseLibretto, overlay *model.TimingOverlay) Result {
	result := Result{}

	segments := make(map[string]model.Segment)
	contexts := make(map[string]segmentContext)
	baseSegments := 0
	for _, number := range base.Numbers {
		for _, seg := range number.Segments {
			segments[seg.ID] = seg
			contexts[seg.ID] = segmentContext{act: number.Act, scene: number.Scene}
			baseSegments++
		}
	}

	result.Libretto = model.InterchangeLibretto{
		Version: model.DocumentVersion,
		Opera:   base.Opera,
	}

	for i, track := range overlay.TrackTimings {
		merged := mergeTrack(track, i, segments, contexts, overlay.Recording, &result.Warnings)
		result.Libretto.Tracks = append(result.Libretto.Tracks, merged)
		result.Stats.OverlayReferences += len(track.SegmentTimes)
		result.Stats.MergedSegments += len(merged.Segments)
	}

	result.Stats.BaseSegments = baseSegments
	result.Stats.Tracks = len(overlay.TrackTimings)
	return result
}

func mergeTrack(
	track model.TrackTiming,
	index int,
	segments map[string]model.Segment,
	contexts map[string]segmentContext,
	recording model.RecordingMetadata,
	warnings *[]string,
) model.InterchangeTrack {
	out := model.InterchangeTrack{
		TrackID:         trackID(track, index),
		Title:           track.TrackTitle,
		Album:           recording.AlbumTitle,
		Artist:          artist(recording),
		DiscNumber:      track.DiscNumber,
		TrackNumber:     track.TrackNumber,
		DurationSeconds: track.DurationSeconds,
	}

	for j, st := range track.SegmentTimes {
		seg, found := segments[st.SegmentID]
		if !found {
			*warnings = append(*warnings, fmt.Sprintf(
				"track %q: segment %q not found in base libretto",
				track.TrackTitle, st.SegmentID))
		}

		merged := model.InterchangeSegment{
			Start:       st.Start,
			SegmentType: model.SegmentSung,
		}
		if j+1 < len(track.SegmentTimes) {
			next := track.SegmentTimes[j+1].Start
			merged.End = &next
		} else if track.DurationSeconds > 0 {
			dur := track.DurationSeconds
			merged.End = &dur
		}
		if found {
			merged.SegmentType = seg.SegmentType
			merged.Character = seg.Character
			merged.Text = seg.Text
			merged.Translation = seg.Translation
			merged.Direction = seg.Direction
			merged.Group = seg.Group
		}
		if ctx, ok := contexts[st.SegmentID]; ok {
			merged.Act = ctx.act
			merged.Scene = ctx.scene
		}
		out.Segments = append(out.Segments, merged)
	}

	if len(out.Segments) > 0 {
		out.Act = out.Segments[0].Act
		out.Scene = out.Segments[0].Scene
	}
	return out
}

// trackID derives a stable ID from whatever numbering is available.
func trackID(track model.TrackTiming, index int) string {
	switch {
	case track.DiscNumber > 0 && track.TrackNumber > 0:
		return fmt.Sprintf("d%d-t%d", track.DiscNumber, track.TrackNumber)
	case track.TrackNumber > 0:
		return fmt.Sprintf("t%d", track.TrackNumber)
	default:
		return fmt.Sprintf("track-%d", index+1)
	}
}

func artist(recording model.RecordingMetadata) string {
	if recording.Conductor == "" {
		return ""
	}
	if recording.Orchestra != "" {
		return recording.Conductor + " / " + recording.Orchestra
	}
	return recording.Conductor
}
