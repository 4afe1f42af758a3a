package model

import "encoding/json"

// InterchangeLibretto is the denormalized merge of a base libretto and a
// timing overlay: a self-contained timed document ready for playback-time
// display. It is derived state and is recomputed whenever the overlay
// changes.
type InterchangeLibretto struct {
	Version string             `json:"version"`
	Opera   OperaMetadata      `json:"opera"`
	Tracks  []InterchangeTrack `json:"tracks"`
}

// InterchangeTrack is one audio track with its timed segments.
type InterchangeTrack struct {
	TrackID         string               `json:"track_id"`
	Title           string               `json:"title"`
	Album           string               `json:"album,omitempty"`
	Artist          string               `json:"artist,omitempty"`
	DiscNumber      int                  `json:"disc_number,omitempty"`
	TrackNumber     int                  `json:"track_number,omitempty"`
	DurationSeconds float64              `json:"duration_seconds,omitempty"`
	Act             string               `json:"act,omitempty"`
	Scene           string               `json:"scene,omitempty"`
	Segments        []InterchangeSegment `json:"segments"`
}

// InterchangeSegment is a timed text segment carrying its own resolved
// fields. End is nil only when neither a following segment nor a track
// duration was available.
type InterchangeSegment struct {
	Start float64  `json:"start"`
	End   *float64 `json:"end,omitempty"`
	// SegmentType defaults to "sung" and is omitted from JSON when default.
	SegmentType SegmentType `json:"-"`
	Character   string      `json:"character,omitempty"`
	Text        string      `json:"text,omitempty"`
	Translation string      `json:"translation,omitempty"`
	Direction   string      `json:"direction,omitempty"`
	Act         string      `json:"act,omitempty"`
	Scene       string      `json:"scene,omitempty"`
	Group       string      `json:"group,omitempty"`
}

// interchangeSegmentJSON is the wire form: type is present only when it is
// not the "sung" default.
type interchangeSegmentJSON struct {
	Start       float64     `json:"start"`
	End         *float64    `json:"end,omitempty"`
	SegmentType SegmentType `json:"type,omitempty"`
	Character   string      `json:"character,omitempty"`
	Text        string      `json:"text,omitempty"`
	Translation string      `json:"translation,omitempty"`
	Direction   string      `json:"direction,omitempty"`
	Act         string      `json:"act,omitempty"`
	Scene       string      `json:"scene,omitempty"`
	Group       string      `json:"group,omitempty"`
}

// MarshalJSON omits the segment type when it is the "sung" default.
func (s InterchangeSegment) MarshalJSON() ([]byte, error) {
	wire := interchangeSegmentJSON{
		Start:       s.Start,
		End:         s.End,
		Character:   s.Character,
		Text:        s.Text,
		Translation: s.Translation,
		Direction:   s.Direction,
		Act:         s.Act,
		Scene:       s.Scene,
		Group:       s.Group,
	}
	if s.SegmentType != "" && s.SegmentType != SegmentSung {
		wire.SegmentType = s.SegmentType
	}
	return json.Marshal(wire)
}

// UnmarshalJSON applies the "sung" default when the type field is absent.
func (s *InterchangeSegment) UnmarshalJSON(data []byte) error {
	var wire interchangeSegmentJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*s = InterchangeSegment{
		Start:       wire.Start,
		End:         wire.End,
		SegmentType: wire.SegmentType,
		Character:   wire.Character,
		Text:        wire.Text,
		Translation: wire.Translation,
		Direction:   wire.Direction,
		Act:         wire.Act,
		Scene:       wire.Scene,
		Group:       wire.Group,
	}
	if s.SegmentType == "" {
		s.SegmentType = SegmentSung
	}
	return nil
}

// SegmentAt returns the active segment at the given playback time: the
// last segment whose start is at or before it.
func (t *InterchangeTrack) SegmentAt(seconds float64) (InterchangeSegment, bool) {
	for i := len(t.Segments) - 1; i >= 0; i-- {
		if t.Segments[i].Start <= seconds {
			return t.Segments[i], true
		}
	}
	return InterchangeSegment{}, false
}
