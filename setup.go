// setup.go
//
// Turns loaded configuration and command-line options into game settings.
// Responsibilities:
//   - Resolve the number of lives (a :lives modifier beats the flag).
//   - Pick the picture: the custom image if configured, else a built-in one.
//   - Build and validate the frame disclosure before any round starts.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ascii-hangman/assets"
	"github.com/robalobadob/ascii-hangman/internal/art"
	"github.com/robalobadob/ascii-hangman/internal/game"
	"github.com/robalobadob/ascii-hangman/internal/rng"
	"github.com/robalobadob/ascii-hangman/internal/words"
)

type options struct {
	lives int
}

func setup(cfg *words.Config, opts options, src rng.Source) (*art.Disclosure, game.Config, error) {
	gcfg := game.Config{MaxLives: opts.lives}
	if cfg.Lives > 0 {
		gcfg.MaxLives = cfg.Lives
	}
	if err := gcfg.Validate(); err != nil {
		return nil, gcfg, err
	}

	mode := art.TraditionalRewarding
	if cfg.Mode != nil {
		mode = *cfg.Mode
	}

	img := cfg.Image
	if len(img) == 0 {
		imgs, err := assets.Images()
		if err != nil {
			return nil, gcfg, fmt.Errorf("load built-in images: %w", err)
		}
		if len(imgs) == 0 {
			return nil, gcfg, fmt.Errorf("%w: no built-in images", art.ErrInvalidConfiguration)
		}
		i := src.NextIndex(len(imgs))
		img = imgs[i]
		log.Debug().Int("image", i).Msg("using built-in image")
	}

	d, err := art.New(art.Split(img, gcfg.MaxLives+1), mode, cfg.FrameTable)
	if err != nil {
		return nil, gcfg, err
	}
	log.Debug().Str("mode", mode.String()).Int("lives", gcfg.MaxLives).Int("frames", d.Len()).Msg("game configured")
	return d, gcfg, nil
}
