package model

import "sort"

// TimingOverlay carries recording-specific timing data that references a
// base libretto's segment IDs. It is authored incrementally: scaffolded
// from the base, anchor-resolved, estimated, then hand-corrected.
type TimingOverlay struct {
	Version string `json:"version"`
	// BaseLibretto is the path of the referenced base document, relative
	// to the library root. Informational only; resolution is always by
	// segment ID.
	BaseLibretto   string            `json:"base_libretto"`
	Recording      RecordingMetadata `json:"recording"`
	Contributors   []Contributor     `json:"contributors,omitempty"`
	TrackTimings   []TrackTiming     `json:"track_timings"`
	OmittedNumbers []OmittedNumber   `json:"omitted_numbers,omitempty"`
}

// RecordingMetadata identifies the recording the overlay was timed against.
type RecordingMetadata struct {
	Conductor  string `json:"conductor,omitempty"`
	Orchestra  string `json:"orchestra,omitempty"`
	Year       int    `json:"year,omitempty"`
	Label      string `json:"label,omitempty"`
	AlbumTitle string `json:"album_title,omitempty"`
}

// Contributor is a person who contributed timing data.
type Contributor struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	Date string `json:"date,omitempty"`
}

// TrackTiming holds the timing data for a single audio track.
type TrackTiming struct {
	TrackTitle      string  `json:"track_title"`
	DiscNumber      int     `json:"disc_number,omitempty"`
	TrackNumber     int     `json:"track_number,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	// NumberIDs lists the musical numbers this track contains.
	NumberIDs []string `json:"number_ids"`
	// StartSegmentID anchors the track's first segment. Set by anchor
	// resolution or by hand; a manually set value is never re-resolved.
	StartSegmentID string `json:"start_segment_id,omitempty"`
	// SegmentTimes are ordered by start time.
	SegmentTimes []SegmentTime `json:"segment_times,omitempty"`
}

// OmittedNumber declares a musical number this recording does not perform.
type OmittedNumber struct {
	NumberID string `json:"number_id"`
	Reason   string `json:"reason,omitempty"`
}

// SegmentTime is one segment's start offset within a track, in seconds.
type SegmentTime struct {
	SegmentID string  `json:"segment_id"`
	Start     float64 `json:"start"`
}

// SegmentIDs returns every referenced segment ID in track order.
func (o *TimingOverlay) SegmentIDs() []string {
	var ids []string
	for _, t := range o.TrackTimings {
		for _, st := range t.SegmentTimes {
			ids = append(ids, st.SegmentID)
		}
	}
	return ids
}

// CoveredNumberIDs returns the sorted, deduplicated number IDs referenced
// by any track.
func (o *TimingOverlay) CoveredNumberIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, t := range o.TrackTimings {
		for _, nid := range t.NumberIDs {
			if _, ok := seen[nid]; ok {
				continue
			}
			seen[nid] = struct{}{}
			ids = append(ids, nid)
		}
	}
	sort.Strings(ids)
	return ids
}

// OmittedNumberIDs returns the explicitly omitted number IDs in
// declaration order.
func (o *TimingOverlay) OmittedNumberIDs() []string {
	ids := make([]string, 0, len(o.OmittedNumbers))
	for _, om := range o.OmittedNumbers {
		ids = append(ids, om.NumberID)
	}
	return ids
}

// Clone returns a deep copy. Overlay-filling passes operate on clones so
// re-running them never mutates the caller's document.
func (o TimingOverlay) Clone() TimingOverlay {
	cp := o
	cp.Contributors = append([]Contributor(nil), o.Contributors...)
	cp.OmittedNumbers = append([]OmittedNumber(nil), o.OmittedNumbers...)
	cp.TrackTimings = make([]TrackTiming, len(o.TrackTimings))
	for i, t := range o.TrackTimings {
		tc := t
		tc.NumberIDs = append([]string(nil), t.NumberIDs...)
		tc.SegmentTimes = append([]SegmentTime(nil), t.SegmentTimes...)
		cp.TrackTimings[i] = tc
	}
	return cp
}
