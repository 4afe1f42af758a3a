package anchor

import (
	"fmt"

	"libretto/internal/model"
)

// Result is the outcome of anchor resolution.
type Result struct {
	// Overlay is a copy of the input with start_segment_id populated
	// where matches were found. The input overlay is never mutated.
	Overlay model.TimingOverlay
	// Resolutions has one entry per track, in track order.
	Resolutions []TrackResolution
	// Warnings report unmatched anchors.
	Warnings []string
}

// TrackResolution describes how one track's start segment was found.
type TrackResolution struct {
	TrackTitle  string
	DiscNumber  int
	TrackNumber int
	// Anchors are all quoted snippets extracted from the title.
	Anchors []string
	// SegmentID is the resolved start segment, empty if unresolved.
	SegmentID string
	// Method is empty when no match was attempted or none succeeded.
	Method MatchMethod
}

// Resolve matches each track's first title anchor against the base
// libretto and fills in start_segment_id. The first anchor determines
// the start because it conventionally quotes the track's opening words.
//
// A track with a pre-set start segment keeps it. A track whose title
// carries no quotes falls back to the first segment of its first
// referenced number. An unmatchable anchor leaves the track unresolved
// and produces a warning; resolution as a whole never fails.
func Resolve(base *model.BaseLibretto, overlay *model.TimingOverlay) Result {
	result := Result{Overlay: overlay.Clone()}
	index := NewIndex(base)

	for i, track := range overlay.TrackTimings {
		anchors := Extract(track.TrackTitle)
		res := TrackResolution{
			TrackTitle:  track.TrackTitle,
			DiscNumber:  track.DiscNumber,
			TrackNumber: track.TrackNumber,
			Anchors:     anchors,
		}

		if track.StartSegmentID != "" {
			res.SegmentID = track.StartSegmentID
			res.Method = MatchManual
			result.Resolutions = append(result.Resolutions, res)
			continue
		}

		if len(anchors) == 0 {
			if segID, ok := firstSegmentOfFirstNumber(base, track.NumberIDs); ok {
				result.Overlay.TrackTimings[i].StartSegmentID = segID
				res.SegmentID = segID
			}
			result.Resolutions = append(result.Resolutions, res)
			continue
		}

		// An anchor may quote the tail of the previous track's number,
		// so the restricted pass searches that track's numbers too.
		searchNIDs := append([]string(nil), track.NumberIDs...)
		if i > 0 {
			for _, nid := range overlay.TrackTimings[i-1].NumberIDs {
				if !contains(searchNIDs, nid) {
					searchNIDs = append(searchNIDs, nid)
				}
			}
		}

		segID, method, ok := index.Match(anchors[0], searchNIDs)
		if ok {
			result.Overlay.TrackTimings[i].StartSegmentID = segID
			res.SegmentID = segID
			res.Method = method
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"D%dT%d: anchor %q — no match found in base libretto",
				track.DiscNumber, track.TrackNumber, anchors[0]))
		}
		result.Resolutions = append(result.Resolutions, res)
	}

	return result
}

func firstSegmentOfFirstNumber(base *model.BaseLibretto, numberIDs []string) (string, bool) {
	if len(numberIDs) == 0 {
		return "", false
	}
	number, ok := base.FindNumber(numberIDs[0])
	if !ok || len(number.Segments) == 0 {
		return "", false
	}
	return number.Segments[0].ID, true
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
