package main

import (
	"errors"
	"testing"

	"github.com/robalobadob/ascii-hangman/internal/art"
	"github.com/robalobadob/ascii-hangman/internal/game"
	"github.com/robalobadob/ascii-hangman/internal/rng"
	"github.com/robalobadob/ascii-hangman/internal/words"
)

func TestSetupDefaults(t *testing.T) {
	d, gcfg, err := setup(&words.Config{Secrets: []string{"x"}}, options{lives: 7}, rng.Seeded(1))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if gcfg.MaxLives != 7 {
		t.Errorf("MaxLives = %d, want 7", gcfg.MaxLives)
	}
	if d.Len() != 8 || d.Mode() != art.TraditionalRewarding {
		t.Errorf("disclosure has %d frames in mode %v, want 8 traditional", d.Len(), d.Mode())
	}
}

func TestSetupModifiersWin(t *testing.T) {
	success := art.SuccessRewarding
	cfg := &words.Config{
		Image: []string{"  O", " /|\\"},
		Mode:  &success,
		Lives: 3,
	}
	d, gcfg, err := setup(cfg, options{lives: 7}, rng.Seeded(1))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if gcfg.MaxLives != 3 {
		t.Errorf("MaxLives = %d, want 3 from :lives", gcfg.MaxLives)
	}
	if d.Mode() != art.SuccessRewarding {
		t.Errorf("mode = %v, want success-rewarding", d.Mode())
	}
	if got, want := d.Last(), "  O\n /|\\"; got != want {
		t.Errorf("last frame = %q, want the custom image %q", got, want)
	}
}

func TestSetupInvalid(t *testing.T) {
	if _, _, err := setup(&words.Config{}, options{lives: 0}, rng.Seeded(1)); !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Errorf("setup(lives 0) error = %v, want ErrInvalidConfiguration", err)
	}

	cfg := &words.Config{FrameTable: art.Table{0, 9}}
	if _, _, err := setup(cfg, options{lives: 7}, rng.Seeded(1)); !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Errorf("setup(bad frame table) error = %v, want ErrInvalidConfiguration", err)
	}
}
