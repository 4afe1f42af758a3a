package classify

import (
	"testing"

	"libretto/internal/model"
)

func TestParseActNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"ATTO PRIMO", "1", true},
		{"ACT TWO", "2", true},
		{"ATTO TERZO", "3", true},
		{"ATTO QUARTO", "4", true},
		{"ACT FIVE", "5", true},
		{"ACT 3", "3", true},
		{"Atto 12", "12", true},
		{"Personaggi", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseActNumber(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("parseActNumber(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestClassifyNumberType(t *testing.T) {
	tests := []struct {
		label string
		want  model.NumberType
	}{
		{"N° 1: Duettino", model.NumberDuettino},
		{"Sinfonia", model.NumberOverture},
		{"N° 15: Finale", model.NumberFinale},
		{"N° 17: Recitativo ed Aria", model.NumberAria},
		{"Recitativo", model.NumberRecitative},
		{"N° 8: Coro", model.NumberChorus},
		{"N° 18: Sestetto", model.NumberSextet},
		{"N° 7: Terzetto", model.NumberTerzetto},
		{"N° 13: Duetto", model.NumberDuet},
		{"N° 10: Cavatina", model.NumberCavatina},
		{"Canzone", model.NumberCanzone},
		{"Marcia", model.NumberOther},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := classifyNumberType(tt.label); got != tt.want {
				t.Errorf("classifyNumberType(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestGenerateNumberID(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		act     string
		numType model.NumberType
		want    string
	}{
		{"overture", "Sinfonia", "1", model.NumberOverture, "overture"},
		{"labeled", "N° 1: Duettino", "1", model.NumberDuettino, "no-1-duettino"},
		{"compound label", "N° 17: Recitativo ed Aria", "3", model.NumberAria, "no-17-recitativo-ed-aria"},
		{"bare number", "N° 22", "4", model.NumberFinale, "no-22"},
		{"slug fallback", "Marcia", "1", model.NumberOther, "marcia"},
		{"empty slug", "***", "2", model.NumberOther, "number-act2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateNumberID(tt.label, tt.act, tt.numType); got != tt.want {
				t.Errorf("generateNumberID(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestIsNoiseLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"Symphony No.38 in D 'Prague'", true},
		{"Fin dell'opera", true},
		{"Fine", true},
		{"Lorenzo Da Ponte", true},
		{"N° 1: Duettino", false},
		{"Sinfonia", false},
		{"N° 22: Finale", false},
		{"Recitativo", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := isNoiseLabel(tt.label); got != tt.want {
				t.Errorf("isNoiseLabel(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestSplitIntoNumbers(t *testing.T) {
	elements := []model.ContentElement{
		model.ActHeader("ATTO PRIMO"),
		model.Direction("(A room in the castle)"),
		model.NumberLabel("N° 1: Duettino"),
		model.Character("FIGARO"),
		model.Text("Cinque... dieci..."),
		model.Character("SUSANNA"),
		model.Text("Ora sì ch'io son contenta."),
		model.NumberLabel("N° 2: Duettino"),
		model.Character("FIGARO"),
		model.Text("Se a caso madama..."),
		model.ActHeader("ATTO SECONDO"),
		model.NumberLabel("N° 10: Cavatina"),
		model.Character("LA CONTESSA"),
		model.Text("Porgi, amor..."),
	}

	numbers := SplitIntoNumbers(elements)
	if len(numbers) != 4 {
		t.Fatalf("got %d numbers, want 4 (implicit recitative + three labeled)", len(numbers))
	}

	if numbers[0].NumberType != model.NumberRecitative || numbers[0].ID != "rec-1a" || numbers[0].Act != "1" {
		t.Errorf("implicit recitative = %+v", numbers[0])
	}
	if numbers[1].ID != "no-1-duettino" || numbers[1].Act != "1" || len(numbers[1].Elements) != 4 {
		t.Errorf("first duettino = %+v", numbers[1])
	}
	if numbers[2].ID != "no-2-duettino" || len(numbers[2].Elements) != 2 {
		t.Errorf("second duettino = %+v", numbers[2])
	}
	if numbers[3].ID != "no-10-cavatina" || numbers[3].Act != "2" {
		t.Errorf("cavatina = %+v", numbers[3])
	}
}

func TestSplitIntoNumbersNoActKnown(t *testing.T) {
	elements := []model.ContentElement{
		model.Character("FIGARO"),
		model.Text("Cinque..."),
	}
	numbers := SplitIntoNumbers(elements)
	if len(numbers) != 1 || numbers[0].ID != "rec-1" {
		t.Fatalf("numbers = %+v, want single rec-1", numbers)
	}
}

func TestSplitIntoNumbersPerActRecitLetters(t *testing.T) {
	elements := []model.ContentElement{
		model.ActHeader("ATTO PRIMO"),
		model.Text("testo primo"),
		model.ActHeader("ATTO SECONDO"),
		model.Text("testo secondo"),
	}
	numbers := SplitIntoNumbers(elements)
	if len(numbers) != 2 {
		t.Fatalf("got %d numbers, want 2", len(numbers))
	}
	if numbers[0].ID != "rec-1a" || numbers[1].ID != "rec-2a" {
		t.Errorf("recitative ids = %q, %q; want rec-1a, rec-2a (letters reset per act)",
			numbers[0].ID, numbers[1].ID)
	}
}

func TestSplitIntoNumbersNoiseFiltered(t *testing.T) {
	elements := []model.ContentElement{
		model.ActHeader("ATTO PRIMO"),
		model.NumberLabel("N° 9: Aria"),
		model.Character("FIGARO"),
		model.Text("Non più andrai..."),
		model.NumberLabel("Symphony No.38 in D 'Prague'"),
		model.ActHeader("ATTO SECONDO"),
	}
	numbers := SplitIntoNumbers(elements)
	if len(numbers) != 1 || numbers[0].ID != "no-9-aria" {
		t.Errorf("numbers = %+v, want only no-9-aria", numbers)
	}
}

func TestSplitIntoNumbersEmptyOvertureRetained(t *testing.T) {
	elements := []model.ContentElement{
		model.NumberLabel("Sinfonia"),
		model.ActHeader("ATTO PRIMO"),
		model.NumberLabel("N° 1: Duettino"),
		model.Character("FIGARO"),
		model.Text("Cinque..."),
	}
	numbers := SplitIntoNumbers(elements)
	if len(numbers) != 2 {
		t.Fatalf("got %d numbers, want 2", len(numbers))
	}
	if numbers[0].ID != "overture" || len(numbers[0].Elements) != 0 {
		t.Errorf("overture block = %+v, want retained empty overture", numbers[0])
	}
}
