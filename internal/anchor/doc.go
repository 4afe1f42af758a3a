// Package anchor recovers per-track starting segments from quoted text
// snippets embedded in track titles.
//
// Opera recordings conventionally quote the opening words of each
// track's content in the track title, for example:
//
//	Recitativo "Bravo, signor padrone"; No. 3 Cavatina "Se vuol ballare"
//
// The first quoted string marks where the track begins in the libretto.
// Resolution extracts those anchors, fuzzily matches them against the
// base libretto's segment text, and populates start_segment_id on each
// track timing. The timing estimator's boundary mode depends on these
// resolved anchors.
package anchor
