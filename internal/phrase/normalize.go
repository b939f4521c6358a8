package phrase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer holds the rules used to classify secret characters and to
// compare guesses against them.
//
// Comparison keys are always case folded. With diacritic folding enabled,
// combining marks are stripped first, so "É", "é" and "e" share a key.
type Normalizer struct {
	foldDiacritics bool
	alphabet       map[string]struct{} // keys of allowed characters; nil means any letter or digit
}

// NewNormalizer builds a Normalizer. An empty alphabet accepts every letter
// and digit. Alphabet characters are themselves normalized, so "abc" with
// diacritic folding also accepts "á".
func NewNormalizer(alphabet string, foldDiacritics bool) *Normalizer {
	n := &Normalizer{foldDiacritics: foldDiacritics}
	alphabet = strings.TrimSpace(alphabet)
	if alphabet == "" {
		return n
	}
	n.alphabet = make(map[string]struct{})
	for _, r := range norm.NFC.String(alphabet) {
		if unicode.IsSpace(r) {
			continue
		}
		n.alphabet[n.Key(string(r))] = struct{}{}
	}
	return n
}

// DefaultNormalizer accepts any letter or digit and folds diacritics.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer("", true)
}

// Key returns the comparison key of s.
func (n *Normalizer) Key(s string) string {
	s = norm.NFC.String(s)
	if n.foldDiacritics {
		t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if folded, _, err := transform.String(t, s); err == nil {
			s = folded
		}
	}
	return cases.Fold().String(s)
}

// Classify reports whether r is hidden in a secret or always shown.
func (n *Normalizer) Classify(r rune) Class {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return Literal
	}
	if n.alphabet == nil {
		return Guessable
	}
	if _, ok := n.alphabet[n.Key(string(r))]; ok {
		return Guessable
	}
	return Literal
}

// GuessKey normalizes raw player input. It succeeds only when the input,
// trimmed and composed, is exactly one Guessable character.
func (n *Normalizer) GuessKey(raw string) (string, bool) {
	s := norm.NFC.String(strings.TrimSpace(raw))
	if utf8.RuneCountInString(s) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if n.Classify(r) != Guessable {
		return "", false
	}
	return n.Key(s), true
}
