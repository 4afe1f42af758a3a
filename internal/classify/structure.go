package classify

import (
	"fmt"
	"regexp"
	"strings"

	"libretto/internal/model"
	"libretto/internal/textutil"
)

// RawNumber is an intermediate number block: the label, generated ID, and
// the content elements belonging to it, before segment splitting.
type RawNumber struct {
	Label      string
	ID         string
	NumberType model.NumberType
	Act        string
	Scene      string
	Elements   []model.ContentElement
}

// actOrdinals maps language-specific ordinal keywords to act numbers.
// Italian and English cover the corpus sources.
var actOrdinals = []struct {
	act      string
	keywords []string
}{
	{"1", []string{"PRIMO", "FIRST", "ONE"}},
	{"2", []string{"SECONDO", "SECOND", "TWO"}},
	{"3", []string{"TERZO", "THIRD", "THREE"}},
	{"4", []string{"QUARTO", "FOURTH", "FOUR"}},
	{"5", []string{"QUINTO", "FIFTH", "FIVE"}},
}

var numericActPattern = regexp.MustCompile(`(?i)(?:act|atto)\s+(\d+)`)

// overtureKeywords open the classification cascade; overture and finale
// win over anything else in the label.
var overtureKeywords = []string{"sinfonia", "overture", "ouverture"}

// numberTypeRules classify the remaining sung forms, first match wins.
// Compound forms are listed before the keywords they contain ("duettino"
// before "duetto").
var numberTypeRules = []struct {
	keywords []string
	numType  model.NumberType
}{
	{[]string{"duettino"}, model.NumberDuettino},
	{[]string{"duetto", "duet"}, model.NumberDuet},
	{[]string{"terzetto", "trio"}, model.NumberTerzetto},
	{[]string{"quartetto", "quartet"}, model.NumberQuartet},
	{[]string{"quintetto", "quintet"}, model.NumberQuintet},
	{[]string{"sestetto", "sextet"}, model.NumberSextet},
	{[]string{"cavatina"}, model.NumberCavatina},
	{[]string{"canzone"}, model.NumberCanzone},
	{[]string{"coro", "chorus"}, model.NumberChorus},
	{[]string{"aria"}, model.NumberAria},
}

// noiseKeywords are the musical terms whose presence marks a label as a
// real number. A label with no digit, none of these, and no "N°"/"No."
// prefix is incidental credit text.
var noiseKeywords = []string{
	"aria", "duet", "terzet", "quartet", "quintet", "sextet",
	"cavatina", "canzone", "coro", "chorus", "finale", "recitativ",
	"overture", "sinfonia", "ouverture", "duettino",
}

var (
	// "N° 1: Duettino" / "No. 17 - Recitativo ed Aria"
	labeledNumberPattern = regexp.MustCompile(`(?i)n[°o.]\s*(\d+)\s*[:\-–]\s*(.+)`)
	// "N° 22" with no trailing label
	bareNumberPattern = regexp.MustCompile(`(?i)n[°o.]\s*(\d+)`)
)

// SplitIntoNumbers walks the elements after the cast section, tracking
// the current act and scene, and groups content under number blocks.
//
// Each NumberLabel opens a new block unless it is noise. Content arriving
// before any block in the current act opens an implicit recitative block:
// "rec-N" while no act is known, "rec-{act}{letter}" with letters counted
// per act once an act header has been seen. Empty trailing blocks are
// dropped, except an empty overture which real recordings do carry.
func SplitIntoNumbers(elements []model.ContentElement) []RawNumber {
	var numbers []RawNumber
	currentAct := ""
	currentScene := ""
	needBlock := true
	globalRecits := 0
	actRecits := 0

	for _, elem := range elements {
		switch elem.Kind {
		case model.KindActHeader:
			if act, ok := parseActNumber(elem.Text); ok {
				if act != currentAct {
					currentAct = act
					currentScene = ""
					actRecits = 0
					needBlock = true
				}
			}
			// Non-act headers ("Personaggi" leftovers) are ignored.

		case model.KindNumberLabel:
			if isNoiseLabel(elem.Text) {
				continue
			}
			numType := classifyNumberType(elem.Text)
			numbers = append(numbers, RawNumber{
				Label:      elem.Text,
				ID:         generateNumberID(elem.Text, currentAct, numType),
				NumberType: numType,
				Act:        currentAct,
				Scene:      currentScene,
			})
			needBlock = false

		default:
			if needBlock {
				if elem.Kind == model.KindBlankLine {
					continue
				}
				var id string
				if currentAct == "" {
					globalRecits++
					id = fmt.Sprintf("rec-%d", globalRecits)
				} else {
					actRecits++
					id = fmt.Sprintf("rec-%s%c", currentAct, rune('a'-1+actRecits))
				}
				numbers = append(numbers, RawNumber{
					Label:      "Recitativo",
					ID:         id,
					NumberType: model.NumberRecitative,
					Act:        currentAct,
					Scene:      currentScene,
				})
				needBlock = false
			}
			last := &numbers[len(numbers)-1]
			last.Elements = append(last.Elements, elem)
		}
	}

	kept := numbers[:0]
	for _, n := range numbers {
		if len(n.Elements) > 0 || n.NumberType == model.NumberOverture {
			kept = append(kept, n)
		}
	}
	return kept
}

// parseActNumber extracts an act number from an ActHeader: "ATTO PRIMO",
// "ACT TWO", "ATTO 3". Returns false for non-act headers.
func parseActNumber(text string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(text))
	for _, ord := range actOrdinals {
		for _, kw := range ord.keywords {
			if strings.Contains(upper, kw) {
				return ord.act, true
			}
		}
	}
	if m := numericActPattern.FindStringSubmatch(upper); m != nil {
		return m[1], true
	}
	return "", false
}

// classifyNumberType maps a label to a NumberType by keyword cascade:
// overture and finale first, then the recitative compound ("Recitativo ed
// Aria" collapses to aria), then the sung-form rules, first match wins.
func classifyNumberType(label string) model.NumberType {
	lower := strings.ToLower(label)

	if containsAny(lower, overtureKeywords) {
		return model.NumberOverture
	}
	if strings.Contains(lower, "finale") {
		return model.NumberFinale
	}
	if strings.Contains(lower, "recitativ") {
		if strings.Contains(lower, "aria") {
			return model.NumberAria
		}
		return model.NumberRecitative
	}
	for _, rule := range numberTypeRules {
		if containsAny(lower, rule.keywords) {
			return rule.numType
		}
	}
	return model.NumberOther
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// generateNumberID derives the stable slug ID for a number label.
//
//	"Sinfonia"                     → "overture"
//	"N° 1: Duettino"               → "no-1-duettino"
//	"N° 22"                        → "no-22"
//	"Marcia"                       → "marcia"
//	(no usable characters)         → "number-act{act}"
func generateNumberID(label, act string, numType model.NumberType) string {
	if numType == model.NumberOverture {
		return "overture"
	}
	if m := labeledNumberPattern.FindStringSubmatch(label); m != nil {
		return fmt.Sprintf("no-%s-%s", m[1], textutil.Slug(m[2]))
	}
	if m := bareNumberPattern.FindStringSubmatch(label); m != nil {
		return "no-" + m[1]
	}
	if slug := textutil.Slug(label); slug != "" {
		return slug
	}
	return "number-act" + act
}

// isNoiseLabel filters NumberLabel entries that are not real musical
// numbers: catalog references ("Symphony No.38 in D 'Prague'"), end
// markers ("Fin dell'opera", "Fine"), and credit lines with no digit and
// no musical keyword ("Lorenzo Da Ponte").
func isNoiseLabel(text string) bool {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "symphony") {
		return true
	}
	if strings.HasPrefix(lower, "fin ") || lower == "fine" {
		return true
	}
	if strings.ContainsAny(text, "0123456789") {
		return false
	}
	if containsAny(lower, noiseKeywords) {
		return false
	}
	if strings.HasPrefix(lower, "n°") || strings.HasPrefix(lower, "no.") {
		return false
	}
	return true
}
