// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - State: where a round is in its lifecycle (in progress/won/lost).
//   - Outcome: the result of one submitted guess.
//   - Config: the settings a round is started with.
//   - Round: state for a single in-progress or finished round.

package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/robalobadob/ascii-hangman/internal/art"
	"github.com/robalobadob/ascii-hangman/internal/phrase"
)

var (
	// ErrInvalidConfiguration is shared with the art package so one errors.Is
	// check covers both lives and frame settings.
	ErrInvalidConfiguration = art.ErrInvalidConfiguration
	// ErrRoundAlreadyFinished is returned when guessing after Won or Lost.
	ErrRoundAlreadyFinished = errors.New("game: round already finished")
)

// DefaultLives is the number of wrong guesses allowed when not configured.
const DefaultLives = 7

// State is the lifecycle of a round.
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return ""
}

// Finished reports whether s is terminal.
func (s State) Finished() bool { return s == Won || s == Lost }

// Kind classifies a guess.
// Possible values:
//   - Hit:      the character occurs in the secret; Count positions revealed.
//   - Miss:     the character does not occur; one life lost.
//   - Repeated: the character was already guessed (or is already shown).
//   - Invalid:  the input is not a single guessable character.
type Kind int

const (
	Hit Kind = iota + 1
	Miss
	Repeated
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Repeated:
		return "repeated"
	case Invalid:
		return "invalid"
	}
	return ""
}

// Outcome is the result of SubmitGuess. Count is only set for Hit.
type Outcome struct {
	Kind  Kind
	Count int
}

func (o Outcome) String() string {
	if o.Kind == Hit {
		return "hit(" + strconv.Itoa(o.Count) + ")"
	}
	return o.Kind.String()
}

// Config holds the settings a round starts with.
type Config struct {
	// MaxLives is the number of wrong guesses before the round is lost.
	MaxLives int
}

// Validate rejects settings no round can be played with.
func (c Config) Validate() error {
	if c.MaxLives <= 0 {
		return fmt.Errorf("%w: max lives must be positive, got %d", ErrInvalidConfiguration, c.MaxLives)
	}
	return nil
}

// Round holds the state of one round. It is owned by the caller and only
// changed through SubmitGuess.
type Round struct {
	secret   *phrase.Secret
	mask     Mask
	lives    int
	maxLives int
	state    State
	history  map[string]struct{}
	tried    []string // history in submission order, as typed
	found    int      // positions revealed by guesses, hints excluded
}
