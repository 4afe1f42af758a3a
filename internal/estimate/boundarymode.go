package estimate

import (
	"fmt"

	"libretto/internal/anchor"
	"libretto/internal/model"
)

// boundaryMode estimates against a single ordered segment list spanning
// every number referenced anywhere in the overlay. Each track owns the
// slice from its resolved start segment up to the next track's start,
// which lets a track carry the tail of one number plus the head of the
// next. Recitative passages, identified by classified title anchors,
// are estimated at half weight.
func boundaryMode(base *model.BaseLibretto, overlay *model.TimingOverlay) Result {
	result := Result{Overlay: overlay.Clone()}

	referenced := make(map[string]bool)
	for _, track := range overlay.TrackTimings {
		for _, nid := range track.NumberIDs {
			referenced[nid] = true
		}
	}

	// The global list follows base document order, not reference order,
	// so boundaries are meaningful even when tracks declare numbers
	// loosely.
	var global []weightedSegment
	position := make(map[string]int)
	for _, number := range base.Numbers {
		if !referenced[number.ID] {
			continue
		}
		for _, seg := range number.Segments {
			position[seg.ID] = len(global)
			global = append(global, weightedSegment{id: seg.ID, weight: wordWeight(seg)})
		}
	}

	starts := trackStartPositions(base, overlay, position, &result.Warnings)
	index := anchor.NewIndex(base)

	for i, track := range overlay.TrackTimings {
		if len(track.SegmentTimes) > 0 || starts[i] < 0 {
			continue
		}
		if track.DurationSeconds <= 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"track %q: no duration, skipped", track.TrackTitle))
			continue
		}

		start := starts[i]
		end := len(global)
		for j := i + 1; j < len(starts); j++ {
			if starts[j] >= 0 {
				end = starts[j]
				break
			}
		}
		if end < start {
			// Track order and libretto order disagree. Estimating a
			// reversed range would produce garbage times, so the track
			// is skipped instead.
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"track %q: start segment %q follows the next track's start in the libretto, skipped",
				track.TrackTitle, track.StartSegmentID))
			continue
		}

		segments := discountRecitatives(track, global[start:end], position, start, index)
		times := distribute(segments, track.DurationSeconds)

		result.Stats = append(result.Stats, TrackStats{
			TrackTitle:        track.TrackTitle,
			DiscNumber:        track.DiscNumber,
			TrackNumber:       track.TrackNumber,
			Duration:          track.DurationSeconds,
			SegmentsEstimated: len(times),
			TotalWordWeight:   totalWeight(segments),
		})
		result.Overlay.TrackTimings[i].SegmentTimes = times
	}

	return result
}

// trackStartPositions resolves each track to its position in the global
// list, or -1 when unresolvable. A track without a start segment falls
// back to the first segment of its first referenced number.
func trackStartPositions(base *model.BaseLibretto, overlay *model.TimingOverlay, position map[string]int, warnings *[]string) []int {
	starts := make([]int, len(overlay.TrackTimings))
	for i, track := range overlay.TrackTimings {
		starts[i] = -1
		if track.StartSegmentID != "" {
			if pos, ok := position[track.StartSegmentID]; ok {
				starts[i] = pos
			} else {
				*warnings = append(*warnings, fmt.Sprintf(
					"track %q: start segment %q not found among referenced numbers",
					track.TrackTitle, track.StartSegmentID))
			}
			continue
		}
		for _, nid := range track.NumberIDs {
			number, ok := base.FindNumber(nid)
			if !ok || len(number.Segments) == 0 {
				continue
			}
			if pos, ok := position[number.Segments[0].ID]; ok {
				starts[i] = pos
			}
			break
		}
		if starts[i] < 0 {
			*warnings = append(*warnings, fmt.Sprintf(
				"track %q: no start segment resolvable, skipped", track.TrackTitle))
		}
	}
	return starts
}

// discountRecitatives maps each classified title anchor to a position
// inside the track's range and halves the weight of every segment from
// a recitative anchor until the next anchor or the range end.
func discountRecitatives(track model.TrackTiming, rangeSegs []weightedSegment, position map[string]int, rangeStart int, index *anchor.Index) []weightedSegment {
	segments := append([]weightedSegment(nil), rangeSegs...)
	anchors := anchor.ClassifyTitle(track.TrackTitle)
	if len(anchors) == 0 {
		return segments
	}

	type anchorPos struct {
		offset       int
		isRecitative bool
	}
	var positions []anchorPos
	for _, ta := range anchors {
		segID, _, ok := index.Match(ta.Anchor, track.NumberIDs)
		if !ok {
			continue
		}
		pos, ok := position[segID]
		if !ok {
			continue
		}
		offset := pos - rangeStart
		if offset < 0 || offset >= len(segments) {
			continue
		}
		positions = append(positions, anchorPos{offset, ta.IsRecitative})
	}

	for k, ap := range positions {
		if !ap.isRecitative {
			continue
		}
		until := len(segments)
		if k+1 < len(positions) {
			until = positions[k+1].offset
		}
		for j := ap.offset; j < until; j++ {
			segments[j].weight *= recitativeDiscount
		}
	}
	return segments
}
