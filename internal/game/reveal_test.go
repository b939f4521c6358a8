package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/ascii-hangman/internal/phrase"
)

func TestRevealAllOccurrences(t *testing.T) {
	s := phrase.Parse("good look", nil)
	m := NewMask(s)

	got, hits := Reveal(s, m, "o")
	if hits != 4 {
		t.Errorf("hits = %d, want 4", hits)
	}
	want := Mask{false, true, true, false, false, false, true, true, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected mask (-want +got)\n%s", diff)
	}
	if m.Count() != 0 {
		t.Errorf("input mask modified, %d revealed", m.Count())
	}

	again, hits := Reveal(s, got, "o")
	if hits != 0 {
		t.Errorf("second reveal hits = %d, want 0", hits)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("second reveal changed mask (-want +got)\n%s", diff)
	}
}

func TestRevealSkipsLiterals(t *testing.T) {
	s := phrase.Parse("a-b", nil)
	if _, hits := Reveal(s, NewMask(s), ""); hits != 0 {
		t.Errorf("empty key revealed %d positions", hits)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		entry string
		mask  Mask
		want  string
	}{
		{"good luck", Mask{true, true, true, true, false, true, true, false, true}, "g o o d   l u _ k"},
		{"3*7=21", Mask{false, false, false, false, false, false}, "_ * _ = _ _"},
		{"Hi!", Mask{true, true, false}, "H i !"},
	}
	for _, test := range tests {
		s := phrase.Parse(test.entry, nil)
		got := Render(s, test.mask)
		if got != test.want {
			t.Errorf("Render(%q) = %q, want %q", test.entry, got, test.want)
		}
		if len([]rune(got)) != 2*s.Len()-1 {
			t.Errorf("Render(%q) has %d cells, want %d", test.entry, (len([]rune(got))+1)/2, s.Len())
		}
	}
}

func TestFullyRevealed(t *testing.T) {
	s := phrase.Parse("a b!", nil)
	if FullyRevealed(s, Mask{true, false, false, false}) {
		t.Error("FullyRevealed with b hidden")
	}
	// Literal positions need no revealing.
	if !FullyRevealed(s, Mask{true, false, true, false}) {
		t.Error("not FullyRevealed with all letters shown")
	}
}
