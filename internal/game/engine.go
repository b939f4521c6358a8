// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Start rounds from a phrase book and a randomness source.
//   - Normalize and validate guesses (one guessable character, folded).
//   - Reveal every occurrence of a correct guess at once.
//   - Track state transitions: playing → won/lost.
//
// Guess policy:
//   - Invalid input and repeated guesses never cost a life and leave the
//     round unchanged.
//   - A character already on screen from a hint is reported as Repeated.
//   - Each SubmitGuess call is all-or-nothing.
package game

import (
	"github.com/robalobadob/ascii-hangman/internal/phrase"
	"github.com/robalobadob/ascii-hangman/internal/rng"
)

// NewRound validates cfg, then draws one secret from book.
// A nil or empty book fails with phrase.ErrEmptyPhraseBook.
func NewRound(book *phrase.Book, src rng.Source, cfg Config) (*Round, error) {
	r, _, err := NewRoundIndex(book, src, cfg)
	return r, err
}

// NewRoundIndex is NewRound that also reports the index of the chosen entry
// in book.
func NewRoundIndex(book *phrase.Book, src rng.Source, cfg Config) (*Round, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}
	if book == nil || book.Len() == 0 {
		return nil, 0, phrase.ErrEmptyPhraseBook
	}
	s, idx := book.Select(src)
	return newRound(s, cfg.MaxLives), idx, nil
}

// Start begins a round on a known secret.
func Start(s *phrase.Secret, cfg Config) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s == nil || s.Hidden() == 0 {
		return nil, phrase.ErrEmptyPhraseBook
	}
	return newRound(s, cfg.MaxLives), nil
}

func newRound(s *phrase.Secret, maxLives int) *Round {
	return &Round{
		secret:   s,
		mask:     NewMask(s),
		lives:    maxLives,
		maxLives: maxLives,
		state:    InProgress,
		history:  make(map[string]struct{}),
	}
}

// SubmitGuess evaluates raw player input and updates the round.
//
// Order of checks:
//  1. Finished round → ErrRoundAlreadyFinished.
//  2. Not exactly one guessable character → Invalid.
//  3. Already guessed → Repeated.
//  4. Occurrences revealed → Hit(n), Won when nothing is left hidden.
//     No occurrence → Miss, one life lost, Lost at zero lives.
func (r *Round) SubmitGuess(raw string) (Outcome, error) {
	if r.state.Finished() {
		return Outcome{}, ErrRoundAlreadyFinished
	}

	key, ok := r.secret.Normalizer().GuessKey(raw)
	if !ok {
		return Outcome{Kind: Invalid}, nil
	}
	if _, seen := r.history[key]; seen {
		return Outcome{Kind: Repeated}, nil
	}

	mask, hits := Reveal(r.secret, r.mask, key)
	r.history[key] = struct{}{}
	r.tried = append(r.tried, key)

	switch {
	case hits > 0:
		r.mask = mask
		r.found += hits
		if FullyRevealed(r.secret, r.mask) {
			r.state = Won
		}
		return Outcome{Kind: Hit, Count: hits}, nil
	case Occurs(r.secret, key):
		return Outcome{Kind: Repeated}, nil
	default:
		r.lives--
		if r.lives <= 0 {
			r.lives = 0
			r.state = Lost
		}
		return Outcome{Kind: Miss}, nil
	}
}

// Secret is the phrase being guessed.
func (r *Round) Secret() *phrase.Secret { return r.secret }

// Mask returns a copy of the revealed positions.
func (r *Round) Mask() Mask { return r.mask.Clone() }

// Lives is the number of wrong guesses left.
func (r *Round) Lives() int { return r.lives }

// MaxLives is the number of lives the round started with.
func (r *Round) MaxLives() int { return r.maxLives }

// State reports whether the round is in progress, won or lost.
func (r *Round) State() State { return r.state }

// Tried returns the normalized guesses in the order they were made.
func (r *Round) Tried() []string {
	out := make([]string, len(r.tried))
	copy(out, r.tried)
	return out
}

// Progress reports how many characters guessing has revealed out of those
// hidden at round start.
func (r *Round) Progress() (found, total int) {
	return r.found, r.secret.Hidden()
}

// Display renders the secret as the player currently sees it. Once the round
// is lost the whole secret is shown.
func (r *Round) Display() string {
	if r.state == Lost {
		all := make(Mask, r.secret.Len())
		for i := range all {
			all[i] = true
		}
		return Render(r.secret, all)
	}
	return Render(r.secret, r.mask)
}

// FullyRevealed reports whether nothing is left hidden.
func (r *Round) FullyRevealed() bool {
	return FullyRevealed(r.secret, r.mask)
}
