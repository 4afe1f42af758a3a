package classify

import "libretto/internal/model"

// Result is the output of the full classification pipeline for one token
// stream: the cast list, the ordered numbers with their segments, and the
// same segments flattened in document order.
type Result struct {
	Cast     []model.CastMember
	Numbers  []model.MusicalNumber
	Segments []model.Segment
}

// Run executes cast extraction, structural splitting, and segment
// splitting over a token stream. It is total: any input yields a result.
func Run(elements []model.ContentElement) Result {
	castResult := ExtractCast(elements)
	raw := SplitIntoNumbers(elements[castResult.EndIndex:])

	var result Result
	result.Cast = castResult.Members
	for _, number := range raw {
		segs := SplitSegments(number)
		result.Numbers = append(result.Numbers, model.MusicalNumber{
			ID:         number.ID,
			Label:      number.Label,
			NumberType: number.NumberType,
			Act:        number.Act,
			Scene:      number.Scene,
			Segments:   segs,
		})
		result.Segments = append(result.Segments, segs...)
	}
	return result
}
