package game

import (
	"strings"

	"github.com/robalobadob/ascii-hangman/internal/phrase"
)

// Placeholder is shown for hidden characters.
const Placeholder = '_'

// Mask records which positions of a secret are revealed. Reveal never clears
// a position.
type Mask []bool

// NewMask returns the mask a round starts with: hint positions revealed.
func NewMask(s *phrase.Secret) Mask {
	m := make(Mask, s.Len())
	for _, i := range s.Hints() {
		m[i] = true
	}
	return m
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	copy(out, m)
	return out
}

// Count is the number of revealed positions.
func (m Mask) Count() int {
	var n int
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Reveal discloses every hidden Guessable position whose key equals key and
// returns the updated mask along with the number of positions newly
// revealed. m itself is left untouched.
func Reveal(s *phrase.Secret, m Mask, key string) (Mask, int) {
	out := m.Clone()
	var hits int
	for i := 0; i < s.Len(); i++ {
		if out[i] || s.Class(i) != phrase.Guessable {
			continue
		}
		if s.Key(i) == key {
			out[i] = true
			hits++
		}
	}
	return out, hits
}

// Occurs reports whether key matches any Guessable position, revealed or not.
func Occurs(s *phrase.Secret, key string) bool {
	for i := 0; i < s.Len(); i++ {
		if s.Class(i) == phrase.Guessable && s.Key(i) == key {
			return true
		}
	}
	return false
}

// Render shows the secret one cell per character, cells joined by a single
// space: "_ o o _   _ _ _ _". Literal characters are always shown.
func Render(s *phrase.Secret, m Mask) string {
	var b strings.Builder
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.Class(i) == phrase.Guessable && !m[i] {
			b.WriteRune(Placeholder)
			continue
		}
		b.WriteRune(s.Rune(i))
	}
	return b.String()
}

// FullyRevealed reports whether every Guessable position is revealed.
func FullyRevealed(s *phrase.Secret, m Mask) bool {
	for i := 0; i < s.Len(); i++ {
		if s.Class(i) == phrase.Guessable && !m[i] {
			return false
		}
	}
	return true
}
