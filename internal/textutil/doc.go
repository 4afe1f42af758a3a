// Package textutil provides text processing utilities for slug generation,
// match normalization, and filename sanitization.
//
// The primary use cases are:
//   - Generating stable slug IDs from musical number labels
//   - Normalizing libretto text and track-title anchors for fuzzy matching
//     (diacritics stripped, smart punctuation folded)
//   - Sanitizing opera titles and labels for safe filesystem use
//
// Normalization is deterministic: the same input always yields the same
// form, which is what keeps generated IDs stable across languages.
package textutil
