package estimate

import (
	"fmt"

	"libretto/internal/model"
)

// numberMode assigns whole numbers to tracks by their declared number
// IDs. A number referenced by one track is distributed over that
// track's duration directly. A number spanning several tracks has the
// durations pooled, is distributed across the pooled total, then split
// back per track with offsets renormalized to each track's own start.
func numberMode(base *model.BaseLibretto, overlay *model.TimingOverlay) Result {
	result := Result{Overlay: overlay.Clone()}

	// Numbers are processed in first-reference order so output and
	// stats are deterministic.
	var numberOrder []string
	numberToTracks := make(map[string][]int)
	for i, track := range overlay.TrackTimings {
		for _, nid := range track.NumberIDs {
			if _, seen := numberToTracks[nid]; !seen {
				numberOrder = append(numberOrder, nid)
			}
			numberToTracks[nid] = append(numberToTracks[nid], i)
		}
	}

	// A track referencing several numbers is estimated once, for all of
	// them together.
	estimated := make(map[int]bool)

	for _, numberID := range numberOrder {
		number, ok := base.FindNumber(numberID)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"number %q referenced by overlay but not found in base libretto", numberID))
			continue
		}
		if len(number.Segments) == 0 {
			continue
		}

		type trackDuration struct {
			index    int
			duration float64
		}
		var eligible []trackDuration
		for _, i := range numberToTracks[numberID] {
			track := overlay.TrackTimings[i]
			if len(track.SegmentTimes) > 0 || track.DurationSeconds <= 0 {
				continue
			}
			eligible = append(eligible, trackDuration{i, track.DurationSeconds})
		}
		if len(eligible) == 0 {
			continue
		}

		if len(eligible) == 1 {
			trackIdx := eligible[0].index
			if estimated[trackIdx] {
				continue
			}
			track := overlay.TrackTimings[trackIdx]
			segments := trackSegments(base, track, &result.Warnings)
			times := distribute(segments, eligible[0].duration)

			result.Stats = append(result.Stats, TrackStats{
				TrackTitle:        track.TrackTitle,
				DiscNumber:        track.DiscNumber,
				TrackNumber:       track.TrackNumber,
				Duration:          eligible[0].duration,
				SegmentsEstimated: len(times),
				TotalWordWeight:   totalWeight(segments),
			})
			result.Overlay.TrackTimings[trackIdx].SegmentTimes = times
			estimated[trackIdx] = true
			continue
		}

		// Multi-track number: pool the durations.
		alreadyDone := false
		var pooled float64
		for _, td := range eligible {
			if estimated[td.index] {
				alreadyDone = true
			}
			pooled += td.duration
		}
		if alreadyDone {
			continue
		}

		segments := numberSegments(number)
		allTimes := distribute(segments, pooled)
		if len(allTimes) == 0 {
			continue
		}

		// Split on cumulative track ends, renormalizing offsets so each
		// bucket starts at its own track's zero. The final segment always
		// lands on the last track.
		var cumulative float64
		next := 0
		for _, td := range eligible {
			trackEnd := cumulative + td.duration
			var bucket []model.SegmentTime
			for next < len(allTimes) &&
				(allTimes[next].Start < trackEnd || len(allTimes)-next == 1) {
				st := allTimes[next]
				st.Start = roundToMS(max(st.Start-cumulative, 0))
				bucket = append(bucket, st)
				next++
			}

			track := overlay.TrackTimings[td.index]
			result.Stats = append(result.Stats, TrackStats{
				TrackTitle:        track.TrackTitle,
				DiscNumber:        track.DiscNumber,
				TrackNumber:       track.TrackNumber,
				Duration:          td.duration,
				SegmentsEstimated: len(bucket),
				TotalWordWeight:   totalWeight(segments) / float64(len(eligible)),
			})
			result.Overlay.TrackTimings[td.index].SegmentTimes = bucket
			estimated[td.index] = true
			cumulative = trackEnd
		}
	}

	return result
}

// trackSegments weights the segments of every number a track declares.
func trackSegments(base *model.BaseLibretto, track model.TrackTiming, warnings *[]string) []weightedSegment {
	var segments []weightedSegment
	for _, nid := range track.NumberIDs {
		number, ok := base.FindNumber(nid)
		if !ok {
			*warnings = append(*warnings, fmt.Sprintf(
				"track %q: number %q not found in base libretto", track.TrackTitle, nid))
			continue
		}
		segments = append(segments, numberSegments(number)...)
	}
	return segments
}
