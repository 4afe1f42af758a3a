package model

// ElementKind discriminates the closed set of token types produced by the
// acquisition layer.
type ElementKind string

const (
	KindActHeader   ElementKind = "ActHeader"
	KindNumberLabel ElementKind = "NumberLabel"
	KindCharacter   ElementKind = "Character"
	KindDirection   ElementKind = "Direction"
	KindText        ElementKind = "Text"
	KindBlankLine   ElementKind = "BlankLine"
)

// ContentElement is one typed token of scraped libretto text. Text is empty
// for BlankLine elements and carries the source line otherwise.
type ContentElement struct {
	Kind ElementKind `json:"type"`
	Text string      `json:"text,omitempty"`
}

// ActHeader returns an act or section header token (e.g. "ATTO PRIMO").
func ActHeader(text string) ContentElement {
	return ContentElement{Kind: KindActHeader, Text: text}
}

// NumberLabel returns a musical number label token (e.g. "N° 1: Duettino").
func NumberLabel(text string) ContentElement {
	return ContentElement{Kind: KindNumberLabel, Text: text}
}

// Character returns a character attribution token (e.g. "FIGARO").
func Character(text string) ContentElement {
	return ContentElement{Kind: KindCharacter, Text: text}
}

// Direction returns a stage direction token.
func Direction(text string) ContentElement {
	return ContentElement{Kind: KindDirection, Text: text}
}

// Text returns a sung or spoken text token.
func Text(text string) ContentElement {
	return ContentElement{Kind: KindText, Text: text}
}

// BlankLine returns a stanza separator token.
func BlankLine() ContentElement {
	return ContentElement{Kind: KindBlankLine}
}

// AcquiredLibretto is a complete bilingual acquisition before classification.
// Rows are pre-aligned by the source site, one paragraph per row in two
// languages.
type AcquiredLibretto struct {
	Source SourceInfo     `json:"source"`
	Lang1  string         `json:"lang1"`
	Lang2  string         `json:"lang2"`
	Rows   []BilingualRow `json:"rows"`
}

// SourceInfo records the provenance of an acquisition.
type SourceInfo struct {
	URL       string `json:"url"`
	Site      string `json:"site"`
	FetchedAt string `json:"fetched_at"`
	Opera     string `json:"opera"`
}

// BilingualRow is a single aligned row: one paragraph in two languages.
type BilingualRow struct {
	Index         int              `json:"index"`
	Lang1Elements []ContentElement `json:"lang1_elements"`
	Lang2Elements []ContentElement `json:"lang2_elements"`
}

// Lang1Stream flattens the first-language columns of every row into a
// single token stream.
func (a *AcquiredLibretto) Lang1Stream() []ContentElement {
	return flattenRows(a.Rows, func(r BilingualRow) []ContentElement { return r.Lang1Elements })
}

// Lang2Stream flattens the second-language columns of every row into a
// single token stream.
func (a *AcquiredLibretto) Lang2Stream() []ContentElement {
	return flattenRows(a.Rows, func(r BilingualRow) []ContentElement { return r.Lang2Elements })
}

func flattenRows(rows []BilingualRow, pick func(BilingualRow) []ContentElement) []ContentElement {
	var out []ContentElement
	for _, row := range rows {
		out = append(out, pick(row)...)
	}
	return out
}
