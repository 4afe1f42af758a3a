// Package validate checks base librettos and timing overlays for
// internal consistency and cross-references overlays against their
// base. Every check accumulates findings and runs to completion, so
// one pass reports everything an operator has to fix.
package validate

import (
	"sort"

	"libretto/internal/model"
)

// BaseLibretto checks a base libretto on its own: required opera
// fields and globally unique segment IDs.
func BaseLibretto(base *model.BaseLibretto) []Error {
	var errs []Error

	if base.Opera.Title == "" {
		errs = append(errs, missingField("opera.title"))
	}
	if base.Opera.Composer == "" {
		errs = append(errs, missingField("opera.composer"))
	}
	if base.Opera.Language == "" {
		errs = append(errs, missingField("opera.language"))
	}

	seen := make(map[string]bool)
	for _, number := range base.Numbers {
		if number.ID == "" {
			errs = append(errs, missingField("number.id (label: "+number.Label+")"))
		}
		for _, seg := range number.Segments {
			if seen[seg.ID] {
				errs = append(errs, duplicateSegmentID(seg.ID))
			}
			seen[seg.ID] = true
		}
	}
	return errs
}

// OverlayStandalone checks an overlay without a base: segment times
// must be non-negative and non-decreasing within each track.
func OverlayStandalone(overlay *model.TimingOverlay) []Error {
	var errs []Error
	for _, track := range overlay.TrackTimings {
		prev := -1.0
		for _, st := range track.SegmentTimes {
			if st.Start < 0 {
				errs = append(errs, negativeTime(st.Start))
			}
			if st.Start < prev {
				errs = append(errs, segmentsUnordered(track.TrackTitle))
			}
			prev = st.Start
		}
	}
	return errs
}

// Overlay runs the standalone checks and then cross-references the
// overlay against its base: every referenced segment must exist, and
// every base number must be exactly one of covered, omitted, or
// reported unaccounted.
func Overlay(overlay *model.TimingOverlay, base *model.BaseLibretto) []Error {
	errs := OverlayStandalone(overlay)

	baseSegIDs := make(map[string]bool)
	for _, id := range base.SegmentIDs() {
		baseSegIDs[id] = true
	}
	for _, track := range overlay.TrackTimings {
		for _, st := range track.SegmentTimes {
			if !baseSegIDs[st.SegmentID] {
				errs = append(errs, unknownSegmentID(st.SegmentID))
			}
		}
	}

	covered := make(map[string]bool)
	for _, id := range overlay.CoveredNumberIDs() {
		covered[id] = true
	}
	omitted := make(map[string]bool)
	baseNumbers := make(map[string]bool)
	for _, n := range base.Numbers {
		baseNumbers[n.ID] = true
	}

	for _, id := range overlay.OmittedNumberIDs() {
		if omitted[id] {
			continue
		}
		omitted[id] = true
		if !baseNumbers[id] {
			errs = append(errs, unknownOmittedNumber(id))
		}
		if covered[id] {
			errs = append(errs, conflictingCoverage(id))
		}
	}

	var unaccounted []string
	for id := range baseNumbers {
		if !covered[id] && !omitted[id] {
			unaccounted = append(unaccounted, id)
		}
	}
	sort.Strings(unaccounted)
	for _, id := range unaccounted {
		errs = append(errs, unaccountedNumber(id))
	}

	return errs
}

// CoverageReport summarizes how an overlay accounts for the base's
// numbers.
type CoverageReport struct {
	Total       int
	Covered     int
	Omitted     int
	Unaccounted int
}

// Coverage classifies every base number into exactly one bucket, so
// the three counts always sum to Total. A number both covered and
// omitted counts as covered; Overlay reports the conflict separately.
func Coverage(overlay *model.TimingOverlay, base *model.BaseLibretto) CoverageReport {
	covered := make(map[string]bool)
	for _, id := range overlay.CoveredNumberIDs() {
		covered[id] = true
	}
	omitted := make(map[string]bool)
	for _, id := range overlay.OmittedNumberIDs() {
		omitted[id] = true
	}

	report := CoverageReport{Total: len(base.Numbers)}
	for _, n := range base.Numbers {
		switch {
		case covered[n.ID]:
			report.Covered++
		case omitted[n.ID]:
			report.Omitted++
		default:
			report.Unaccounted++
		}
	}
	return report
}
