package textutil

import "testing"

func TestNormalizeForMatch(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"accents", "perchè", "perche"},
		{"smart apostrophe", "Crudel’s", "Crudel's"},
		{"ellipsis spelling", "Cinque... dieci", "Cinque… dieci"},
		{"separator punctuation", "Bravo, signor padrone!", "Bravo signor padrone"},
		{"case", "SE VUOL BALLARE", "se vuol ballare"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			na, nb := NormalizeForMatch(tt.a), NormalizeForMatch(tt.b)
			if na != nb {
				t.Errorf("NormalizeForMatch(%q) = %q, NormalizeForMatch(%q) = %q; want equal",
					tt.a, na, tt.b, nb)
			}
		})
	}
}

func TestNormalizeForMatchTrims(t *testing.T) {
	if got := NormalizeForMatch("  Se vuol  ballare  "); got != "se vuol ballare" {
		t.Errorf("NormalizeForMatch() = %q, want %q", got, "se vuol ballare")
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"shorter than n", "abc", 15, "abc"},
		{"exact cut", "abcdef", 3, "abc"},
		{"multibyte safe", "così fan tutte", 4, "così"},
		{"zero", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prefix(tt.s, tt.n); got != tt.want {
				t.Errorf("Prefix(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"simple", "Duettino", "duettino"},
		{"punctuation", "Recitativo ed Aria", "recitativo-ed-aria"},
		{"mixed symbols", "N° 17: Recitativo ed Aria", "n-17-recitativo-ed-aria"},
		{"no alphanumerics", "—!?—", ""},
		{"accents kept", "Già la notte", "già-la-notte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.label); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Le nozze di Figaro", "Le nozze di Figaro"},
		{"colon", "Tosca: Act I", "Tosca- Act I"},
		{"slash", "Orfeo / Orphée", "Orfeo - Orphée"},
		{"question mark removed", "Dove sono?", "Dove sono"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
