package classify

import (
	"regexp"
	"strings"
	"unicode"

	"libretto/internal/model"
)

// CastResult holds the cast members found at the head of a token stream
// and the index of the first element after the cast section.
type CastResult struct {
	Members []model.CastMember
	// EndIndex is where the libretto body starts. Zero when no cast
	// section was found.
	EndIndex int
}

// castHeaders are the section headers that open a cast list, compared
// case-insensitively.
var castHeaders = map[string]struct{}{
	"personaggi":        {},
	"cast":              {},
	"characters":        {},
	"dramatis personae": {},
}

var (
	// "FIGARO (bass)" — name with parenthesized voice type.
	characterEntryPattern = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)
	// "Cherubino, paggio del Conte - mezzosoprano" — name, optional
	// description, dash, voice type.
	textEntryPattern = regexp.MustCompile(`^(.+?)\s*[-–]\s*(\S.*)$`)
)

// ExtractCast parses the cast section from the beginning of an element
// sequence.
//
// Two formats are recognized: Character entries like "FIGARO (bass)"
// (English sources) and Text entries like "Figaro - basso-baritono"
// (Italian sources). A Text line that parses as neither and does not
// start with a capital letter is treated as a continuation of the
// previous member's description. The section ends at the first ActHeader,
// NumberLabel, or Direction.
func ExtractCast(elements []model.ContentElement) CastResult {
	var members []model.CastMember
	i := 0

	// Skip leading blank lines and find the cast header.
	for ; i < len(elements); i++ {
		elem := elements[i]
		if elem.Kind == model.KindBlankLine {
			continue
		}
		if elem.Kind == model.KindActHeader && isCastHeader(elem.Text) {
			i++
			break
		}
		return CastResult{}
	}

	for ; i < len(elements); i++ {
		elem := elements[i]
		switch elem.Kind {
		case model.KindBlankLine:
			continue

		case model.KindActHeader, model.KindNumberLabel, model.KindDirection:
			return CastResult{Members: members, EndIndex: i}

		case model.KindCharacter:
			if member, ok := parseCharacterEntry(elem.Text); ok {
				members = append(members, member)
			}

		case model.KindText:
			if member, ok := parseTextEntry(elem.Text); ok {
				members = append(members, member)
			} else if len(members) > 0 {
				// Continuation line, e.g. "peasants and the count's
				// tenants" following a CHORUS entry.
				last := &members[len(members)-1]
				if last.Description != "" {
					last.Description += "; "
				}
				last.Description += strings.TrimSpace(elem.Text)
			}
		}
	}

	return CastResult{Members: members, EndIndex: len(elements)}
}

func isCastHeader(text string) bool {
	_, ok := castHeaders[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// parseCharacterEntry parses an English-style cast line: "FIGARO (bass)"
// or a bare name like "CHORUS".
func parseCharacterEntry(text string) (model.CastMember, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.CastMember{}, false
	}
	if m := characterEntryPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		return model.CastMember{
			Character: name,
			ShortName: name,
			VoiceType: strings.TrimSpace(m[2]),
		}, true
	}
	return model.CastMember{Character: text, ShortName: text}, true
}

// parseTextEntry parses an Italian-style cast line:
// "Name[, description] - voice_type". Entries without a voice type
// ("Due Donne") must start with a capitalized word; anything else is
// continuation text for the caller to handle.
func parseTextEntry(text string) (model.CastMember, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.CastMember{}, false
	}
	if m := textEntryPattern.FindStringSubmatch(text); m != nil {
		character, description := splitNameDescription(strings.TrimSpace(m[1]))
		return model.CastMember{
			Character:   character,
			VoiceType:   strings.TrimSpace(m[2]),
			Description: description,
		}, true
	}
	first, _ := firstRune(text)
	if !unicode.IsUpper(first) {
		return model.CastMember{}, false
	}
	character, description := splitNameDescription(text)
	return model.CastMember{Character: character, Description: description}, true
}

// splitNameDescription splits "Cherubino, paggio del Conte" at the first
// comma into name and description.
func splitNameDescription(text string) (name, description string) {
	if idx := strings.Index(text, ","); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+1:])
	}
	return text, ""
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
