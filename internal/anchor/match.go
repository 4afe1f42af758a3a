package anchor

import (
	"strings"

	"libretto/internal/textutil"
)

// MatchMethod records how an anchor was matched to a segment.
type MatchMethod string

const (
	// MatchPrefix is a symmetric prefix match on the first line.
	MatchPrefix MatchMethod = "prefix"
	// MatchNormalized is a normalized substring match within the first line.
	MatchNormalized MatchMethod = "normalized"
	// MatchSubstring is a substring match anywhere in the full text.
	MatchSubstring MatchMethod = "substring"
	// MatchManual marks a start segment that was set by hand and preserved.
	MatchManual MatchMethod = "manual"
)

// prefixLen is how many normalized runes the prefix strategy compares.
// Long enough to be distinctive, short enough to survive truncated
// track titles.
const prefixLen = 15

// strategy is one matching rule. Strategies run in declared order,
// each across two passes (restricted to the given number IDs, then
// unrestricted); the first hit wins.
type strategy struct {
	method MatchMethod
	hit    func(anchorNorm, anchorPrefix string, cand *candidate) bool
}

var strategies = []strategy{
	{MatchPrefix, func(anchorNorm, anchorPrefix string, cand *candidate) bool {
		candPrefix := textutil.Prefix(cand.firstLineNorm, prefixLen)
		return strings.HasPrefix(cand.firstLineNorm, anchorPrefix) ||
			(candPrefix != "" && strings.HasPrefix(anchorNorm, candPrefix))
	}},
	{MatchNormalized, func(anchorNorm, _ string, cand *candidate) bool {
		return strings.Contains(cand.firstLineNorm, anchorNorm)
	}},
	{MatchSubstring, func(anchorNorm, _ string, cand *candidate) bool {
		return strings.Contains(cand.fullTextNorm, anchorNorm)
	}},
}

// Match finds the segment an anchor points at, preferring candidates
// inside the given number IDs before widening to the whole index.
func (x *Index) Match(anchor string, numberIDs []string) (string, MatchMethod, bool) {
	candidates := x.candidates
	anchorNorm := textutil.NormalizeForMatch(anchor)
	anchorPrefix := textutil.Prefix(anchorNorm, prefixLen)
	inScope := make(map[string]struct{}, len(numberIDs))
	for _, nid := range numberIDs {
		inScope[nid] = struct{}{}
	}

	for _, st := range strategies {
		for _, restricted := range []bool{true, false} {
			for i := range candidates {
				cand := &candidates[i]
				if restricted {
					if _, ok := inScope[cand.numberID]; !ok {
						continue
					}
				}
				if st.hit(anchorNorm, anchorPrefix, cand) {
					return cand.segmentID, st.method, true
				}
			}
		}
	}
	return "", "", false
}
