package classify

import (
	"reflect"
	"testing"

	"libretto/internal/model"
)

// figaroOpening is the stream from the Sinfonia through the first
// duettino, with an Italian cast header.
func figaroOpening() []model.ContentElement {
	return []model.ContentElement{
		model.ActHeader("Personaggi"),
		model.Text("Figaro - basso-baritono"),
		model.NumberLabel("Sinfonia"),
		model.ActHeader("ATTO PRIMO"),
		model.NumberLabel("N° 1: Duettino"),
		model.Character("FIGARO"),
		model.Text("Cinque... dieci..."),
		model.Character("SUSANNA"),
		model.Text("Ora sì ch'io son contenta."),
	}
}

func TestRunFigaroOpening(t *testing.T) {
	result := Run(figaroOpening())

	if len(result.Cast) != 1 {
		t.Fatalf("got %d cast members, want 1", len(result.Cast))
	}
	if result.Cast[0].Character != "Figaro" || result.Cast[0].VoiceType != "basso-baritono" {
		t.Errorf("cast[0] = %+v", result.Cast[0])
	}

	num, ok := findNumber(result.Numbers, "no-1-duettino")
	if !ok {
		t.Fatalf("no-1-duettino not found in %+v", result.Numbers)
	}
	if len(num.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(num.Segments))
	}
	if num.Segments[0].ID != "no-1-duettino-001" || num.Segments[0].Character != "FIGARO" {
		t.Errorf("segment 1 = %+v", num.Segments[0])
	}
	if num.Segments[1].ID != "no-1-duettino-002" || num.Segments[1].Character != "SUSANNA" {
		t.Errorf("segment 2 = %+v", num.Segments[1])
	}
}

func TestRunNeverEmptyHanded(t *testing.T) {
	tests := []struct {
		name     string
		elements []model.ContentElement
	}{
		{"nil stream", nil},
		{"only blanks", []model.ContentElement{model.BlankLine(), model.BlankLine()}},
		{"no cast header", []model.ContentElement{
			model.ActHeader("ATTO PRIMO"),
			model.Character("FIGARO"),
			model.Text("Cinque..."),
		}},
		{"unmatched labels", []model.ContentElement{
			model.NumberLabel("Lorenzo Da Ponte"),
			model.Text("testo"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Totality: classification must not panic and must produce a
			// well-formed (possibly empty) result for any input.
			result := Run(tt.elements)
			for _, n := range result.Numbers {
				if n.ID == "" {
					t.Errorf("number with empty id: %+v", n)
				}
			}
		})
	}
}

// TestIDDeterminism is the bilingual contract: structurally parallel
// streams in different languages must yield identical number and segment
// ID sequences.
func TestIDDeterminism(t *testing.T) {
	italian := []model.ContentElement{
		model.ActHeader("ATTO PRIMO"),
		model.NumberLabel("N° 1: Duettino"),
		model.Character("FIGARO"),
		model.Text("Cinque... dieci..."),
		model.Character("SUSANNA"),
		model.Text("Ora sì ch'io son contenta."),
	}
	english := []model.ContentElement{
		model.ActHeader("ACT ONE"),
		model.NumberLabel("N° 1: Duettino"),
		model.Character("FIGARO"),
		model.Text("Five... ten..."),
		model.Character("SUSANNA"),
		model.Text("How happy I am now."),
	}

	itIDs := collectIDs(Run(italian))
	enIDs := collectIDs(Run(english))
	if !reflect.DeepEqual(itIDs, enIDs) {
		t.Errorf("parallel streams diverged:\n italian %v\n english %v", itIDs, enIDs)
	}
}

func collectIDs(r Result) []string {
	var ids []string
	for _, n := range r.Numbers {
		ids = append(ids, n.ID)
	}
	for _, s := range r.Segments {
		ids = append(ids, s.ID)
	}
	return ids
}

func findNumber(numbers []model.MusicalNumber, id string) (model.MusicalNumber, bool) {
	for _, n := range numbers {
		if n.ID == id {
			return n, true
		}
	}
	return model.MusicalNumber{}, false
}
