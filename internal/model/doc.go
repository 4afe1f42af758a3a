// Package model defines the document types shared across the pipeline:
// the flat ContentElement token stream produced by acquisition, the
// untimed BaseLibretto built by classification, the recording-specific
// TimingOverlay, and the denormalized InterchangeLibretto merge output.
//
// BaseLibretto is built once and treated as immutable afterwards. A
// TimingOverlay references base segments only by string ID; the weak
// reference is intentional so overlays stay independently distributable.
// InterchangeLibretto is a disposable derived view, recomputed whenever
// the overlay changes.
package model
