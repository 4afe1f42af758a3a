// Package estimate fills in segment start times from track durations.
//
// Timing data for opera recordings is rarely authored from scratch.
// The estimator produces a first approximation by distributing each
// track's duration across its segments in proportion to word count,
// on the theory that singing time roughly tracks text length. The
// result is then hand-corrected.
//
// Two modes exist. Boundary mode is used when anchor resolution has
// recovered per-track start segments: a single ordered segment list
// spans all referenced numbers and each track owns the slice between
// its start segment and the next track's, which lets a track cross a
// number boundary. Number mode is the fallback when no anchors
// resolved: whole numbers are assigned to tracks by declared number
// IDs, pooling durations when one number spans several tracks.
package estimate
