// internal/rng/rng.go
//
// Randomness sources for secret selection.
// Responsibilities:
//   - Define Source, the single-method interface the game draws indexes from.
//   - Adapt *math/rand.Rand (seeded, for tests and reproducible sessions).
//   - Provide a crypto/rand backed source for normal play.

package rng

import (
	cryptorand "crypto/rand"
	"math/rand"
)

// Source yields indexes in [0, bound).
type Source interface {
	NextIndex(bound int) int
}

// Rand adapts a *rand.Rand to Source.
type Rand struct {
	r *rand.Rand
}

// New wraps r.
func New(r *rand.Rand) *Rand {
	return &Rand{r: r}
}

// Seeded returns a deterministic source for the given seed.
func Seeded(seed int64) *Rand {
	return New(rand.New(rand.NewSource(seed)))
}

// Crypto returns a source backed by crypto/rand.
func Crypto() *Rand {
	return New(rand.New(cryptoSource{}))
}

// NextIndex returns a uniform index in [0, bound). A non-positive bound
// yields 0.
func (s *Rand) NextIndex(bound int) int {
	if bound <= 0 {
		return 0
	}
	return s.r.Intn(bound)
}

type cryptoSource struct{}

func (cryptoSource) Int63() int64 {
	var buf [8]byte
	_, err := cryptorand.Read(buf[:])
	if err != nil {
		panic(err)
	}
	return int64(buf[0]) |
		int64(buf[1])<<8 |
		int64(buf[2])<<16 |
		int64(buf[3])<<24 |
		int64(buf[4])<<32 |
		int64(buf[5])<<40 |
		int64(buf[6])<<48 |
		int64(buf[7]&0x7f)<<56
}

func (cryptoSource) Seed(int64) {}
