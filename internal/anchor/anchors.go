package anchor

import "strings"

// Extract returns the quoted spans of a track title in left-to-right
// order. Straight and typographic double quotes both delimit; empty
// spans are dropped.
func Extract(title string) []string {
	var anchors []string
	runes := []rune(title)
	for i := 0; i < len(runes); i++ {
		open := runes[i]
		if open != '"' && open != '“' {
			continue
		}
		close := '"'
		if open == '“' {
			close = '”'
		}
		var quoted []rune
		j := i + 1
		for ; j < len(runes); j++ {
			if runes[j] == close || runes[j] == '"' {
				break
			}
			quoted = append(quoted, runes[j])
		}
		i = j
		if trimmed := strings.TrimSpace(string(quoted)); trimmed != "" {
			anchors = append(anchors, trimmed)
		}
	}
	return anchors
}

// TitleAnchor is one quoted anchor from a track title, tagged with
// whether the title text preceding it labels a recitative section.
type TitleAnchor struct {
	IsRecitative bool
	Anchor       string
}

// sungKeywords are the sung-form labels that compete with "recitativ"
// when classifying an anchor's context. Stems, so Italian and German
// spellings both hit.
var sungKeywords = []string{
	"aria", "duett", "cavatina", "canzon", "terzett",
	"quartett", "quintett", "sestett", "finale", "coro",
	"sinfonia", "marcia",
}

// ClassifyTitle extracts a title's anchors and classifies each as
// recitative or not by the label text since the previous anchor. An
// anchor is recitative when the rightmost "recitativ" in that context
// sits rightward of every sung-form keyword.
func ClassifyTitle(title string) []TitleAnchor {
	var result []TitleAnchor
	searchFrom := 0
	for _, a := range Extract(title) {
		pos := strings.Index(title[searchFrom:], a)
		if pos < 0 {
			continue
		}
		absPos := searchFrom + pos
		context := strings.ToLower(title[searchFrom:absPos])
		result = append(result, TitleAnchor{
			IsRecitative: isRecitativeContext(context),
			Anchor:       a,
		})
		searchFrom = absPos + len(a)
	}
	return result
}

func isRecitativeContext(context string) bool {
	recitPos := strings.LastIndex(context, "recitativ")
	if recitPos < 0 {
		return false
	}
	lastSung := -1
	for _, kw := range sungKeywords {
		if p := strings.LastIndex(context, kw); p > lastSung {
			lastSung = p
		}
	}
	return recitPos > lastSung
}
