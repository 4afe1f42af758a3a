// Package align pairs segments from two independently classified streams
// of the same opera. Pairing is strictly by generated segment ID: the
// classifier produces identical IDs from structurally parallel token
// streams, so no cross-lingual matching is needed or attempted.
//
// Divergence between the streams (one language missing a character line
// the other has) silently drops alignment for the affected segments;
// unmatched originals keep an empty translation and unmatched
// translations are discarded.
package align

import "libretto/internal/model"

// Segments copies translation text onto every original segment whose ID
// appears in the translation stream. The originals slice is modified in
// place; order is preserved.
func Segments(original []model.Segment, translation []model.Segment) {
	byID := make(map[string]string, len(translation))
	for _, seg := range translation {
		byID[seg.ID] = seg.Text
	}
	for i := range original {
		if text, ok := byID[original[i].ID]; ok {
			original[i].Translation = text
		}
	}
}

// Numbers aligns translations across whole classified numbers,
// segment by segment.
func Numbers(original []model.MusicalNumber, translation []model.MusicalNumber) {
	var flat []model.Segment
	for _, n := range translation {
		flat = append(flat, n.Segments...)
	}
	for i := range original {
		Segments(original[i].Segments, flat)
	}
}
