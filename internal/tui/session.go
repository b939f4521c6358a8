package tui

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ascii-hangman/internal/art"
	"github.com/robalobadob/ascii-hangman/internal/game"
	"github.com/robalobadob/ascii-hangman/internal/phrase"
	"github.com/robalobadob/ascii-hangman/internal/rng"
)

// Tally counts finished rounds in this process. It is not persisted.
type Tally struct {
	Won  int
	Lost int
}

// Session plays rounds read line by line from In.
type Session struct {
	Book     *phrase.Book
	Source   rng.Source
	Config   game.Config
	Art      *art.Disclosure
	In       io.Reader
	Renderer *Renderer
	// Replay offers a new round after each finished one. Secrets are not
	// repeated until every entry of the book has been played.
	Replay bool
}

// Run plays until input ends, ctx is cancelled between turns, or a round
// finishes without Replay. End of input is not an error.
func (s *Session) Run(ctx context.Context) (Tally, error) {
	var tally Tally
	if s.Art == nil {
		return tally, errors.New("tui: session has no art")
	}

	sc := bufio.NewScanner(s.In)
	book := s.Book
	for {
		round, idx, err := game.NewRoundIndex(book, s.Source, s.Config)
		if err != nil {
			return tally, err
		}
		log.Debug().Int("entry", idx).Int("hidden", round.Secret().Hidden()).Int("lives", round.Lives()).Msg("round started")

		v := s.view(round, tally)
		if err := s.Renderer.Render(v); err != nil {
			return tally, err
		}

		for !round.State().Finished() {
			if err := ctx.Err(); err != nil {
				return tally, err
			}
			if !sc.Scan() {
				return tally, sc.Err()
			}
			line := sc.Text()
			o, err := round.SubmitGuess(line)
			if err != nil {
				return tally, err
			}
			log.Debug().Str("outcome", o.String()).Int("lives", round.Lives()).Msg("guess")

			switch round.State() {
			case game.Won:
				tally.Won++
			case game.Lost:
				tally.Lost++
			}

			v = s.view(round, tally)
			v.LastGuess, v.Outcome = line, o
			if err := s.Renderer.Render(v); err != nil {
				return tally, err
			}
		}
		log.Debug().Str("state", round.State().String()).Msg("round finished")

		if !s.Replay {
			return tally, nil
		}
		if !sc.Scan() {
			return tally, sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		if next, err := book.Without(idx); err == nil {
			book = next
		} else {
			book = s.Book
		}
	}
}

func (s *Session) view(r *game.Round, tally Tally) View {
	found, total := r.Progress()
	return View{
		Image: s.Art.Frame(art.Stage{
			Lives:    r.Lives(),
			MaxLives: r.MaxLives(),
			Revealed: found,
			Total:    total,
		}),
		Secret: r.Display(),
		Lives:  r.Lives(),
		State:  r.State(),
		Tried:  r.Tried(),
		Score:  tally,
		Replay: s.Replay,
	}
}
