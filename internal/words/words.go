// internal/words/words.go
//
// Loads word-list configuration files for the game.
//
// Responsibilities:
//   - Parse the line-oriented configuration format into a Config.
//   - Concatenate several files in command-line order.
//   - Write a template file, and fall back to the demo secret, when a
//     configured file does not exist.
//
// File format (UTF-8, one item per line):
//   - starting with a letter, a digit, '-' or '_': a secret;
//   - '#': comment; blank lines are ignored;
//   - '|': one row of a custom ASCII-art image (the '|' is stripped);
//   - ':': a modifier, one of
//       :traditional-rewarding    every lost life discloses more of the image
//       :success-rewarding        every found character discloses more
//       :lives N                  number of wrong guesses allowed
//       :frame-table I0 I1 ...    frame shown after 0, 1, ... lost lives
//
// Any other line is a syntax error reported with file name and line number.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ascii-hangman/assets"
	"github.com/robalobadob/ascii-hangman/internal/art"
)

// DefaultFile is read when no file is named on the command line.
const DefaultFile = "ascii-hangman-words.txt"

// ErrSyntax marks a malformed configuration line.
var ErrSyntax = errors.New("syntax error")

// Config is the merged content of one or more configuration files.
type Config struct {
	Secrets    []string
	Image      []string  // custom image rows; empty means use a built-in one
	Mode       *art.Mode // nil when no mode modifier was given
	Lives      int       // 0 when no :lives modifier was given
	FrameTable art.Table
	Demo       bool // a file was missing and the demo secret was used
}

// Parse reads one configuration file. name is only used in error messages.
func Parse(r io.Reader, name string) (*Config, error) {
	c := &Config{}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if n == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if err := c.parseLine(line); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return c, nil
}

func (c *Config) parseLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	first, _ := utf8.DecodeRuneInString(line)
	switch {
	case first == '#':
		return nil
	case first == '|':
		c.Image = append(c.Image, line[1:])
		return nil
	case first == ':':
		return c.parseModifier(line[1:])
	case unicode.IsLetter(first), unicode.IsDigit(first), first == '-', first == '_':
		c.Secrets = append(c.Secrets, line)
		return nil
	}
	return fmt.Errorf("%w: unexpected line %q", ErrSyntax, line)
}

func (c *Config) parseModifier(s string) error {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty modifier", ErrSyntax)
	}
	switch fields[0] {
	case "traditional-rewarding", "success-rewarding":
		if len(fields) != 1 {
			return fmt.Errorf("%w: %q takes no argument", ErrSyntax, fields[0])
		}
		m, err := art.ParseMode(fields[0])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		c.Mode = &m
	case "lives":
		if len(fields) != 2 {
			return fmt.Errorf("%w: usage :lives N", ErrSyntax)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: lives must be a positive number, got %q", ErrSyntax, fields[1])
		}
		c.Lives = n
	case "frame-table":
		if len(fields) < 2 {
			return fmt.Errorf("%w: usage :frame-table I0 I1 ...", ErrSyntax)
		}
		t := make(art.Table, 0, len(fields)-1)
		for _, f := range fields[1:] {
			n, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("%w: frame index %q is not a number", ErrSyntax, f)
			}
			t = append(t, n)
		}
		c.FrameTable = t
	default:
		return fmt.Errorf("%w: unknown modifier %q", ErrSyntax, fields[0])
	}
	return nil
}

// Merge appends o to c. Secrets and image rows accumulate; modifiers in o
// override those in c.
func (c *Config) Merge(o *Config) {
	c.Secrets = append(c.Secrets, o.Secrets...)
	c.Image = append(c.Image, o.Image...)
	if o.Mode != nil {
		c.Mode = o.Mode
	}
	if o.Lives != 0 {
		c.Lives = o.Lives
	}
	if len(o.FrameTable) > 0 {
		c.FrameTable = o.FrameTable
	}
	c.Demo = c.Demo || o.Demo
}

// Load reads and merges the given files; with none it reads DefaultFile.
// A missing file is replaced on disk by the template and contributes the
// demo secret to this session.
func Load(paths []string) (*Config, error) {
	if len(paths) == 0 {
		paths = []string{DefaultFile}
	}

	out := &Config{}
	for _, p := range paths {
		c, err := loadFile(p)
		if err != nil {
			return nil, err
		}
		out.Merge(c)
	}
	return out, nil
}

func loadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return demo(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f, path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", path).Int("secrets", len(c.Secrets)).Int("image_rows", len(c.Image)).Msg("loaded word list")
	return c, nil
}

// demo writes the template to path and returns a Config holding only the
// demo secret. Failing to write the template is logged, not fatal.
func demo(path string) (*Config, error) {
	tmpl, err := assets.Template()
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	if err := os.WriteFile(path, tmpl, 0o644); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("could not write template word list")
	} else {
		log.Warn().Str("file", path).Msg("word list not found, wrote template")
	}

	secret, err := assets.Demo()
	if err != nil {
		return nil, fmt.Errorf("read demo secret: %w", err)
	}
	return &Config{Secrets: []string{secret}, Demo: true}, nil
}
