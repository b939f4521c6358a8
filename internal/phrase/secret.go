package phrase

import "golang.org/x/text/unicode/norm"

// Class tags one character of a secret.
type Class uint8

const (
	// Literal characters (spaces, punctuation) are always shown.
	Literal Class = iota
	// Guessable characters are hidden until guessed.
	Guessable
)

func (c Class) String() string {
	switch c {
	case Literal:
		return "literal"
	case Guessable:
		return "guessable"
	}
	return ""
}

// hintMark toggles hint mode inside a configured entry: "Guess _me_" shows
// "me" from the start.
const hintMark = '_'

// Secret is the phrase chosen for a round. It is never modified after Parse.
type Secret struct {
	entry   string
	norm    *Normalizer
	runes   []rune
	classes []Class
	keys    []string
	hints   []int
}

// Parse builds a Secret from a configured entry using n. Hint markers are
// removed from the text and their enclosed positions recorded. A nil n means
// DefaultNormalizer.
func Parse(entry string, n *Normalizer) *Secret {
	if n == nil {
		n = DefaultNormalizer()
	}
	s := &Secret{entry: entry, norm: n}
	inHint := false
	for _, r := range norm.NFC.String(entry) {
		if r == hintMark {
			inHint = !inHint
			continue
		}
		pos := len(s.runes)
		class := n.Classify(r)
		s.runes = append(s.runes, r)
		s.classes = append(s.classes, class)
		if class == Guessable {
			s.keys = append(s.keys, n.Key(string(r)))
			if inHint {
				s.hints = append(s.hints, pos)
			}
		} else {
			s.keys = append(s.keys, "")
		}
	}
	return s
}

// Entry is the configuration entry the secret was parsed from.
func (s *Secret) Entry() string { return s.entry }

// Normalizer returns the rules the secret was parsed with; guesses against
// it must use the same rules.
func (s *Secret) Normalizer() *Normalizer { return s.norm }

// Text is the secret as displayed once fully revealed.
func (s *Secret) Text() string { return string(s.runes) }

// Len is the number of characters in the secret.
func (s *Secret) Len() int { return len(s.runes) }

// Rune returns the character at position i.
func (s *Secret) Rune(i int) rune { return s.runes[i] }

// Class returns the classification of position i.
func (s *Secret) Class(i int) Class { return s.classes[i] }

// Key returns the comparison key of position i; empty for Literal positions.
func (s *Secret) Key(i int) string { return s.keys[i] }

// Hints returns the Guessable positions shown from the start.
func (s *Secret) Hints() []int {
	out := make([]int, len(s.hints))
	copy(out, s.hints)
	return out
}

// Guessable counts the Guessable positions.
func (s *Secret) Guessable() int {
	var n int
	for _, c := range s.classes {
		if c == Guessable {
			n++
		}
	}
	return n
}

// Hidden counts the Guessable positions that are not hints, i.e. what the
// player still has to find at round start.
func (s *Secret) Hidden() int {
	return s.Guessable() - len(s.hints)
}

func (s *Secret) String() string { return s.Text() }
