package estimate

import "libretto/internal/model"

// Result is the outcome of an estimation pass.
type Result struct {
	// Overlay is a copy of the input with segment_times filled in.
	// The input overlay is never mutated, so re-running is safe.
	Overlay model.TimingOverlay
	// Stats has one entry per estimated track, in track order.
	Stats []TrackStats
	// Warnings report skipped tracks and unresolvable references.
	Warnings []string
}

// TrackStats summarizes one track's estimation.
type TrackStats struct {
	TrackTitle        string
	DiscNumber        int
	TrackNumber       int
	Duration          float64
	SegmentsEstimated int
	TotalWordWeight   float64
}

// Timings fills estimated segment start times into every track that has
// a duration and empty segment_times. Tracks already carrying times are
// never re-estimated.
//
// If any track has a resolved start segment, boundary mode runs for the
// whole overlay; otherwise estimation falls back to whole-number
// assignment.
func Timings(base *model.BaseLibretto, overlay *model.TimingOverlay) Result {
	for _, track := range overlay.TrackTimings {
		if track.StartSegmentID != "" {
			return boundaryMode(base, overlay)
		}
	}
	return numberMode(base, overlay)
}
