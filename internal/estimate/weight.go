package estimate

import (
	"strings"

	"libretto/internal/model"
)

// minSegmentWeight keeps textless segments (directions, interludes) on
// the timeline instead of collapsing them to zero duration.
const minSegmentWeight = 0.5

// recitativeDiscount halves the weight of recitative passages, which
// are delivered much faster than sung text of the same length.
const recitativeDiscount = 0.5

// weightedSegment is one segment prepared for distribution.
type weightedSegment struct {
	id     string
	weight float64
}

// wordWeight is a segment's share of singing time: its word count,
// floored at minSegmentWeight for textless and non-sung segments.
func wordWeight(seg model.Segment) float64 {
	switch seg.SegmentType {
	case model.SegmentDirection, model.SegmentInterlude:
		return minSegmentWeight
	}
	count := len(strings.Fields(seg.Text))
	if count == 0 {
		return minSegmentWeight
	}
	return float64(count)
}

// numberSegments weights every segment of a musical number.
func numberSegments(number model.MusicalNumber) []weightedSegment {
	out := make([]weightedSegment, 0, len(number.Segments))
	for _, seg := range number.Segments {
		out = append(out, weightedSegment{id: seg.ID, weight: wordWeight(seg)})
	}
	return out
}
