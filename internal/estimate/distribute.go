package estimate

import (
	"math"

	"libretto/internal/model"
)

// distribute spreads a duration across ordered weighted segments.
// Segment i starts at duration times the weight accumulated before it
// over the total weight, rounded to the millisecond. A non-positive
// duration or zero total weight yields nothing.
func distribute(segments []weightedSegment, duration float64) []model.SegmentTime {
	if len(segments) == 0 || duration <= 0 {
		return nil
	}
	total := totalWeight(segments)
	if total == 0 {
		return nil
	}

	result := make([]model.SegmentTime, 0, len(segments))
	var cumulative float64
	for _, seg := range segments {
		result = append(result, model.SegmentTime{
			SegmentID: seg.id,
			Start:     roundToMS(cumulative / total * duration),
		})
		cumulative += seg.weight
	}
	return result
}

func roundToMS(seconds float64) float64 {
	return math.Round(seconds*1000) / 1000
}

func totalWeight(segments []weightedSegment) float64 {
	var sum float64
	for _, seg := range segments {
		sum += seg.weight
	}
	return sum
}
