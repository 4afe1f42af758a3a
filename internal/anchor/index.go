package anchor

import (
	"strings"

	"libretto/internal/model"
	"libretto/internal/textutil"
)

// candidate is one text-bearing segment prepared for matching. The
// normalized forms are computed once so every anchor probe is a plain
// string comparison.
type candidate struct {
	segmentID     string
	numberID      string
	firstLine     string
	fullText      string
	firstLineNorm string
	fullTextNorm  string
}

// Index is a searchable view of a base libretto's segment text.
// Read-only after construction, so it can be shared freely.
type Index struct {
	candidates []candidate
}

// NewIndex collects every segment with non-empty text, in document
// order.
func NewIndex(base *model.BaseLibretto) *Index {
	idx := &Index{}
	for _, number := range base.Numbers {
		for _, seg := range number.Segments {
			if seg.Text == "" {
				continue
			}
			firstLine, _, _ := strings.Cut(seg.Text, "\n")
			idx.candidates = append(idx.candidates, candidate{
				segmentID:     seg.ID,
				numberID:      number.ID,
				firstLine:     firstLine,
				fullText:      seg.Text,
				firstLineNorm: textutil.NormalizeForMatch(firstLine),
				fullTextNorm:  textutil.NormalizeForMatch(seg.Text),
			})
		}
	}
	return idx
}
