// internal/phrase/book.go
//
// PhraseBook: the candidate secrets of a game and the policy that picks one.
//
// Filtering (NewBook):
//   - surrounding whitespace is trimmed;
//   - blank entries and "#" comments are dropped;
//   - entries leaving nothing to guess (no Guessable character outside hints)
//     are dropped, since a round on them would be won before the first guess.
//
// Selection draws exactly one index from the supplied rng.Source.

package phrase

import (
	"errors"
	"strings"

	"github.com/robalobadob/ascii-hangman/internal/rng"
)

// ErrEmptyPhraseBook is returned when no usable entry remains after filtering.
var ErrEmptyPhraseBook = errors.New("phrase: no usable phrases configured")

// Book is an immutable, filtered list of candidate secrets.
type Book struct {
	entries []string
	norm    *Normalizer
}

// NewBook filters entries and returns a Book, or ErrEmptyPhraseBook.
// A nil normalizer means DefaultNormalizer.
func NewBook(entries []string, n *Normalizer) (*Book, error) {
	if n == nil {
		n = DefaultNormalizer()
	}
	b := &Book{norm: n}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" || strings.HasPrefix(e, "#") {
			continue
		}
		if Parse(e, n).Hidden() == 0 {
			continue
		}
		b.entries = append(b.entries, e)
	}
	if len(b.entries) == 0 {
		return nil, ErrEmptyPhraseBook
	}
	return b, nil
}

// Len is the number of usable entries.
func (b *Book) Len() int { return len(b.entries) }

// Entries returns a copy of the usable entries.
func (b *Book) Entries() []string {
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Normalizer returns the rules secrets from this book are parsed with.
func (b *Book) Normalizer() *Normalizer { return b.norm }

// Select picks one entry uniformly at random and parses it. It returns the
// chosen index alongside the secret so callers can avoid repeats.
func (b *Book) Select(src rng.Source) (*Secret, int) {
	i := src.NextIndex(len(b.entries))
	return Parse(b.entries[i], b.norm), i
}

// Without returns a Book lacking entry i. It fails with ErrEmptyPhraseBook
// when i was the last entry.
func (b *Book) Without(i int) (*Book, error) {
	if len(b.entries) <= 1 {
		return nil, ErrEmptyPhraseBook
	}
	out := &Book{norm: b.norm, entries: make([]string, 0, len(b.entries)-1)}
	out.entries = append(out.entries, b.entries[:i]...)
	out.entries = append(out.entries, b.entries[i+1:]...)
	return out, nil
}

// Select filters entries and picks a secret in one step.
func Select(entries []string, n *Normalizer, src rng.Source) (*Secret, error) {
	b, err := NewBook(entries, n)
	if err != nil {
		return nil, err
	}
	s, _ := b.Select(src)
	return s, nil
}
