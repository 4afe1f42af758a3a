package classify

import (
	"fmt"
	"strings"

	"libretto/internal/model"
)

// SplitSegments splits a number block's elements into ordered segments.
//
// Each Character element opens a new segment attributed to that name.
// Text elements accumulate newline-joined into the open segment. A
// Direction attaches to the open segment, or becomes a standalone
// direction segment when nothing is open yet. Blank lines are stanza
// separators and are discarded.
func SplitSegments(number RawNumber) []model.Segment {
	var segments []model.Segment
	seq := 0
	currentCharacter := ""

	newSegment := func(segType model.SegmentType, character string) *model.Segment {
		seq++
		segments = append(segments, model.Segment{
			ID:          fmt.Sprintf("%s-%03d", number.ID, seq),
			SegmentType: segType,
			Character:   character,
		})
		return &segments[len(segments)-1]
	}

	for _, elem := range number.Elements {
		switch elem.Kind {
		case model.KindCharacter:
			currentCharacter = elem.Text
			newSegment(model.SegmentSung, elem.Text)

		case model.KindText:
			text := strings.TrimSpace(elem.Text)
			if text == "" {
				continue
			}
			if len(segments) == 0 {
				newSegment(model.SegmentSung, currentCharacter).Text = text
				continue
			}
			seg := &segments[len(segments)-1]
			if seg.Text == "" {
				seg.Text = text
			} else {
				seg.Text += "\n" + text
			}

		case model.KindDirection:
			text := strings.TrimSpace(elem.Text)
			if text == "" {
				continue
			}
			if len(segments) == 0 {
				newSegment(model.SegmentDirection, "").Direction = text
				continue
			}
			seg := &segments[len(segments)-1]
			if seg.Direction == "" {
				seg.Direction = text
			} else {
				seg.Direction += " " + text
			}
		}
		// ActHeader and NumberLabel never appear inside a number block;
		// BlankLine is dropped.
	}

	return segments
}
