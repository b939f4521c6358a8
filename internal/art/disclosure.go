// internal/art/disclosure.go
//
// ArtDisclosure: maps game progress onto one of N ordered ASCII-art frames.
//
// Modes:
//   - TraditionalRewarding: every lost life discloses the next stage.
//     index = floor((maxLives - lives) * N / maxLives), clamped to [0, N-1],
//     or an explicit lookup table (lives lost → index) when configured.
//   - SuccessRewarding: every character found by guessing discloses more.
//     index = floor(revealed * (N-1) / total).
//
// All functions here are pure; frames are static data built by Split or
// supplied by configuration.

package art

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration reports settings a game cannot start with.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Mode selects what drives disclosure.
type Mode int

const (
	TraditionalRewarding Mode = iota
	SuccessRewarding
)

func (m Mode) String() string {
	switch m {
	case TraditionalRewarding:
		return "traditional-rewarding"
	case SuccessRewarding:
		return "success-rewarding"
	}
	return ""
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "traditional-rewarding":
		return TraditionalRewarding, nil
	case "success-rewarding":
		return SuccessRewarding, nil
	}
	return 0, fmt.Errorf("unknown disclosure mode %q", s)
}

// FrameFor maps remaining lives onto a frame index. Lives outside
// [0, maxLives] are clamped.
func FrameFor(lives, maxLives, frameCount int) (int, error) {
	if maxLives <= 0 {
		return 0, fmt.Errorf("%w: max lives must be positive, got %d", ErrInvalidConfiguration, maxLives)
	}
	if frameCount <= 0 {
		return 0, fmt.Errorf("%w: no art frames", ErrInvalidConfiguration)
	}
	lost := maxLives - clamp(lives, 0, maxLives)
	return clamp(lost*frameCount/maxLives, 0, frameCount-1), nil
}

// FrameForProgress maps found characters onto a frame index. A secret with
// nothing to find shows the last frame.
func FrameForProgress(revealed, total, frameCount int) int {
	if frameCount <= 0 {
		return 0
	}
	if total <= 0 {
		return frameCount - 1
	}
	return clamp(clamp(revealed, 0, total)*(frameCount-1)/total, 0, frameCount-1)
}

// Table is an explicit lives-lost → frame index lookup.
type Table []int

// Validate checks the table against the number of frames: indexes must be in
// range and never go back.
func (t Table) Validate(frameCount int) error {
	prev := 0
	for i, idx := range t {
		if idx < 0 || idx >= frameCount {
			return fmt.Errorf("%w: frame table entry %d is %d, want 0..%d", ErrInvalidConfiguration, i, idx, frameCount-1)
		}
		if idx < prev {
			return fmt.Errorf("%w: frame table decreases at entry %d", ErrInvalidConfiguration, i)
		}
		prev = idx
	}
	return nil
}

// index returns the frame for the given number of lost lives; entries past
// the end of the table repeat the last one.
func (t Table) index(lost int) int {
	if len(t) == 0 {
		return 0
	}
	return t[clamp(lost, 0, len(t)-1)]
}

// Stage is the game progress a frame is chosen for.
type Stage struct {
	Lives    int
	MaxLives int
	Revealed int // characters found by guessing
	Total    int // characters to find at round start
}

// Disclosure chooses frames for a game.
type Disclosure struct {
	frames []string
	mode   Mode
	table  Table
}

// New validates the frames and the optional table.
func New(frames []string, mode Mode, table Table) (*Disclosure, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no art frames", ErrInvalidConfiguration)
	}
	if err := table.Validate(len(frames)); err != nil {
		return nil, err
	}
	return &Disclosure{frames: frames, mode: mode, table: table}, nil
}

// Len is the number of frames.
func (d *Disclosure) Len() int { return len(d.frames) }

// Mode reports what drives disclosure.
func (d *Disclosure) Mode() Mode { return d.mode }

// Index returns the frame index for st.
func (d *Disclosure) Index(st Stage) int {
	if d.mode == SuccessRewarding {
		return FrameForProgress(st.Revealed, st.Total, len(d.frames))
	}
	if len(d.table) > 0 {
		return d.table.index(st.MaxLives - clamp(st.Lives, 0, st.MaxLives))
	}
	idx, err := FrameFor(st.Lives, st.MaxLives, len(d.frames))
	if err != nil {
		return 0
	}
	return idx
}

// Frame returns the frame for st.
func (d *Disclosure) Frame(st Stage) string {
	return d.frames[d.Index(st)]
}

// Last is the fully disclosed frame.
func (d *Disclosure) Last() string {
	return d.frames[len(d.frames)-1]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
