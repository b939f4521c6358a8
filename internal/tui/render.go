// internal/tui/render.go
//
// Draws the game screen.
// Layout, top to bottom:
//   - title;
//   - the current art frame;
//   - status table: lives, last guess, tried characters, session score;
//   - the secret as currently revealed;
//   - a one-line instruction or message.
//
// On a terminal the screen is cleared before each frame and sections are
// colored; otherwise frames are appended as plain text, which keeps piped
// output and tests readable.

package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/robalobadob/ascii-hangman/internal/game"
)

// Title is printed above every frame.
const Title = "ASCII-ART HANGMAN FOR KIDS"

const (
	ansiClear  = "\x1b[2J\x1b[H"
	ansiReset  = "\x1b[0m"
	ansiWhite  = "\x1b[37m"
	ansiYellow = "\x1b[33m"
	ansiGreen  = "\x1b[32m"
	ansiRed    = "\x1b[31m"
)

// View is everything shown in one frame. The renderer never changes game
// state; the loop builds a View after every guess.
type View struct {
	Image     string
	Secret    string
	Lives     int
	LastGuess string
	Outcome   game.Outcome // zero before the first guess
	State     game.State
	Tried     []string
	Score     Tally
	Replay    bool // offer another round once this one is over
}

// Renderer writes Views to an output stream.
type Renderer struct {
	out   io.Writer
	fancy bool
}

// NewRenderer writes to out; fancy enables screen clearing and colors.
func NewRenderer(out io.Writer, fancy bool) *Renderer {
	return &Renderer{out: out, fancy: fancy}
}

// Stdout returns a renderer for the process's standard output, fancy only
// when it is a terminal.
func Stdout() *Renderer {
	fd := os.Stdout.Fd()
	fancy := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return NewRenderer(colorable.NewColorable(os.Stdout), fancy)
}

// Render draws v.
func (r *Renderer) Render(v View) error {
	var b bytes.Buffer

	if r.fancy {
		b.WriteString(ansiClear)
	}
	r.section(&b, ansiWhite, Title+"\n\n")
	r.section(&b, ansiYellow, v.Image+"\n\n")
	r.section(&b, ansiWhite, status(v))
	r.section(&b, ansiGreen, "\n "+v.Secret+"\n\n")

	color := ansiWhite
	if v.State == game.Lost || v.Outcome.Kind == game.Invalid {
		color = ansiRed
	}
	r.section(&b, color, instructions(v)+"\n")

	_, err := r.out.Write(b.Bytes())
	return err
}

// Message writes a line outside of a frame, e.g. before the first round.
func (r *Renderer) Message(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.out, format+"\n", args...)
	return err
}

func (r *Renderer) section(b *bytes.Buffer, color, text string) {
	if r.fancy {
		b.WriteString(color)
		b.WriteString(text)
		b.WriteString(ansiReset)
		return
	}
	b.WriteString(text)
}

func status(v View) string {
	var b bytes.Buffer
	table := tablewriter.NewWriter(&b)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	last := v.LastGuess
	if v.Outcome.Kind != 0 {
		last = fmt.Sprintf("%s (%s)", strings.TrimSpace(v.LastGuess), v.Outcome)
	}
	table.Append([]string{"Lives:", strconv.Itoa(v.Lives), "Last guess:", last})
	table.Append([]string{"Tried:", strings.Join(v.Tried, " "), "Score:", fmt.Sprintf("%d won, %d lost", v.Score.Won, v.Score.Lost)})
	table.Render()
	return b.String()
}

func instructions(v View) string {
	var msg string
	switch v.State {
	case game.Won:
		msg = "Congratulations! You won!"
	case game.Lost:
		msg = "Sorry, you lost. The secret is shown above."
	default:
		switch v.Outcome.Kind {
		case game.Invalid:
			return "Please type a single letter or digit, then [Enter]:"
		case game.Repeated:
			return "You already tried that one. Type another letter then [Enter]:"
		}
		return "Type a letter then type [Enter]:"
	}
	if v.Replay {
		msg += " Press [Enter] to play again, [Ctrl+D] to quit."
	}
	return msg
}
