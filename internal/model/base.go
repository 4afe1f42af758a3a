package model

// BaseLibretto is the untimed, recording-independent structured text of an
// opera. Segment IDs are globally unique and stable across languages;
// timing overlays reference them.
type BaseLibretto struct {
	Version string          `json:"version"`
	Opera   OperaMetadata   `json:"opera"`
	Cast    []CastMember    `json:"cast"`
	Numbers []MusicalNumber `json:"numbers"`
}

// OperaMetadata describes the opera itself.
type OperaMetadata struct {
	Title      string `json:"title"`
	Composer   string `json:"composer"`
	Librettist string `json:"librettist,omitempty"`
	// Language is the ISO 639-1 code of the original language ("it", "de").
	Language string `json:"language"`
	// TranslationLanguage is set when segments carry translations.
	TranslationLanguage string `json:"translation_language,omitempty"`
	// Year of the opera's premiere.
	Year int `json:"year,omitempty"`
}

// CastMember is one entry of the cast list.
type CastMember struct {
	// Character name as printed in the libretto ("Il Conte d'Almaviva").
	Character string `json:"character"`
	// ShortName is the normalized form used in segment attributions
	// ("IL CONTE").
	ShortName   string `json:"short_name,omitempty"`
	VoiceType   string `json:"voice_type,omitempty"`
	Description string `json:"description,omitempty"`
}

// NumberType classifies a musical number.
type NumberType string

const (
	NumberOverture   NumberType = "overture"
	NumberAria       NumberType = "aria"
	NumberDuet       NumberType = "duet"
	NumberDuettino   NumberType = "duettino"
	NumberTerzetto   NumberType = "terzetto"
	NumberQuartet    NumberType = "quartet"
	NumberQuintet    NumberType = "quintet"
	NumberSextet     NumberType = "sextet"
	NumberCavatina   NumberType = "cavatina"
	NumberCanzone    NumberType = "canzone"
	NumberChorus     NumberType = "chorus"
	NumberFinale     NumberType = "finale"
	NumberRecitative NumberType = "recitative"
	NumberOther      NumberType = "other"
)

// MusicalNumber is a formally titled structural division of the opera.
// Most tracks of a recording correspond to one number, though a track may
// span several numbers and a long finale may span several tracks.
type MusicalNumber struct {
	// ID is the generated slug ("no-1-duettino", "rec-1a", "overture").
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	NumberType NumberType `json:"number_type"`
	Act        string     `json:"act"`
	Scene      string     `json:"scene,omitempty"`
	Segments   []Segment  `json:"segments"`
}

// SegmentType classifies the content of a segment.
type SegmentType string

const (
	SegmentSung      SegmentType = "sung"
	SegmentSpoken    SegmentType = "spoken"
	SegmentDirection SegmentType = "direction"
	SegmentInterlude SegmentType = "interlude"
)

// Segment is the atomic attributable unit of libretto text: one character's
// contiguous lines, or a standalone stage direction. Overlays reference
// segments by ID.
type Segment struct {
	ID          string      `json:"id"`
	SegmentType SegmentType `json:"segment_type"`
	// Character holds the singing/speaking name(s) ("FIGARO",
	// "SUSANNA, FIGARO").
	Character   string `json:"character,omitempty"`
	Text        string `json:"text,omitempty"`
	Translation string `json:"translation,omitempty"`
	Direction   string `json:"direction,omitempty"`
	// Group tags ensemble segments sung simultaneously within a number.
	Group string `json:"group,omitempty"`
}

// DocumentVersion is written into every document this tool produces.
const DocumentVersion = "1.0"

// NewBaseLibretto returns an empty base libretto for the given opera.
func NewBaseLibretto(opera OperaMetadata) *BaseLibretto {
	return &BaseLibretto{Version: DocumentVersion, Opera: opera}
}

// SegmentIDs returns every segment ID in document order.
func (b *BaseLibretto) SegmentIDs() []string {
	var ids []string
	for _, n := range b.Numbers {
		for _, s := range n.Segments {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// FindSegment looks a segment up by ID.
func (b *BaseLibretto) FindSegment(id string) (Segment, bool) {
	for _, n := range b.Numbers {
		for _, s := range n.Segments {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Segment{}, false
}

// FindNumber looks a musical number up by ID.
func (b *BaseLibretto) FindNumber(id string) (MusicalNumber, bool) {
	for _, n := range b.Numbers {
		if n.ID == id {
			return n, true
		}
	}
	return MusicalNumber{}, false
}
