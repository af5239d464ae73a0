package termindex

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"dipirona", "dipirona", 0},
		{"dipirona", "", 8},
		{"", "abc", 3},
		{"dipirona", "dipiron", 1},
		{"dipirona", "dipirena", 1},
		{"dipirona", "dipironaa", 1},
		{"dipirona", "dipriona", 1},
		{"kitten", "sitting", 3},
		{"paracetamol", "dipirona", 10},
	}
	for _, tt := range tests {
		if got := EditDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEditDistance_symmetric(t *testing.T) {
	pairs := [][2]string{
		{"dipirona", "dipiron"},
		{"sódica", "sodica"},
		{"amoxicilina", "amoxicillina"},
	}
	for _, p := range pairs {
		if d1, d2 := EditDistance(p[0], p[1]), EditDistance(p[1], p[0]); d1 != d2 {
			t.Errorf("EditDistance(%q, %q) = %d but reversed = %d", p[0], p[1], d1, d2)
		}
	}
}

func TestEditDistance_runes(t *testing.T) {
	if got := EditDistance("sódica", "sodica"); got != 1 {
		t.Errorf("accent substitution = %d, want 1", got)
	}
	if got := EditDistance("composição", "composicao"); got != 2 {
		t.Errorf("two accent substitutions = %d, want 2", got)
	}
}
