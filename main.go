package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ascii-hangman/internal/daily"
	"github.com/robalobadob/ascii-hangman/internal/game"
	"github.com/robalobadob/ascii-hangman/internal/phrase"
	"github.com/robalobadob/ascii-hangman/internal/rng"
	"github.com/robalobadob/ascii-hangman/internal/tui"
	"github.com/robalobadob/ascii-hangman/internal/words"
)

var version = "dev"

const usage = `ASCII-ART HANGMAN FOR KIDS

The computer picks a word, phrase or sentence from a word list and you guess
it one letter or digit at a time. While you play, an ASCII-art picture is
disclosed bit by bit.

Usage: ascii-hangman [flags] [FILE]...

FILE is a word list; several files are concatenated. Without FILE,
ascii-hangman-words.txt is used, and written from a template if missing.

Word list lines:
  word or phrase     a secret (starts with a letter, digit, '-' or '_')
  _hint_             characters between a pair of '_' are shown from the start
  # text             comment
  |picture row       one row of a custom ASCII-art image
  :success-rewarding       every found character discloses more of the image
  :traditional-rewarding   every lost life discloses more (default)
  :lives N                 number of wrong guesses allowed
  :frame-table I0 I1 ...   image stage shown after 0, 1, ... lost lives

Example custom image with a gallows:
  :traditional-rewarding
  |  ______
  |  |    |
  |  |    O
  |  |   /|\
  |  |    |
  |  |   / \
  |__|_____

Flags (also read from HANGMAN_<FLAG> environment variables and .env):
`

func main() {
	_ = godotenv.Load()

	fs := flag.NewFlagSetWithEnvPrefix(os.Args[0], "HANGMAN", flag.ExitOnError)
	var (
		lives          = fs.Int("lives", game.DefaultLives, "Number of wrong guesses allowed.")
		dailyMode      = fs.Bool("daily", false, "Play the phrase of the day: the same secret for everyone on a UTC date.")
		dailySalt      = fs.String("daily-salt", "ascii-hangman", "Salt mixed into the phrase of the day.")
		seed           = fs.Int64("seed", 0, "Seed for reproducible secret selection; 0 uses crypto/rand.")
		alphabet       = fs.String("alphabet", "", "Characters to hide; empty hides every letter and digit.")
		keepDiacritics = fs.Bool("keep-diacritics", false, "Treat accented letters as different from their base letter.")
		logLevel       = fs.String("log-level", getEnv("LOG_LEVEL", "warn"), "Level of log messages written to stderr.")
		showVersion    = fs.Bool("version", false, "Print the version and exit.")
	)
	fs.BoolVar(showVersion, "V", false, "Shorthand for -version.")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if *showVersion {
		fmt.Fprintln(os.Stderr, version)
		return
	}

	cfg, err := words.Load(fs.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("error in configuration file")
	}

	var src rng.Source = rng.Crypto()
	switch {
	case *dailyMode:
		today := daily.Today(*dailySalt)
		src = today
		log.Info().Str("date", daily.DateKey(today.Date)).Msg("phrase of the day")
	case *seed != 0:
		src = rng.Seeded(*seed)
	}

	book, err := phrase.NewBook(cfg.Secrets, phrase.NewNormalizer(*alphabet, !*keepDiacritics))
	if err != nil {
		log.Fatal().Err(err).Msg("no secrets to play with")
	}

	opts := options{lives: *lives}
	d, gcfg, err := setup(cfg, opts, src)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game settings")
	}

	in := bufio.NewReader(os.Stdin)
	out := tui.Stdout()
	if cfg.Demo {
		_ = out.Message("No word list was found, so a template was written to the current directory.\n" +
			"Add your own words to it and start again.\n\nPress [Enter] to play the demo.")
		if _, err := in.ReadString('\n'); err != nil {
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := &tui.Session{
		Book:     book,
		Source:   src,
		Config:   gcfg,
		Art:      d,
		In:       in,
		Renderer: out,
		Replay:   !*dailyMode,
	}
	tally, err := s.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("game aborted")
	}
	log.Info().Int("won", tally.Won).Int("lost", tally.Lost).Msg("session finished")
	fmt.Println()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
