package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PhraseIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func PhraseIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Source picks the same phrase for everyone on a given day.
type Source struct {
	Date time.Time
	Salt string
}

// Today returns a Source for the current UTC date.
func Today(salt string) Source {
	return Source{Date: time.Now().UTC(), Salt: salt}
}

// NextIndex implements rng.Source.
func (s Source) NextIndex(bound int) int {
	return PhraseIndex(s.Date, s.Salt, bound)
}
