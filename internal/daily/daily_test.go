package daily

import (
	"testing"
	"time"

	"github.com/robalobadob/ascii-hangman/internal/rng"
)

var _ rng.Source = Source{}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	d := time.Date(2026, 3, 1, 2, 0, 0, 0, loc)
	if got, want := DateKey(d), "2026-02-28"; got != want {
		t.Errorf("DateKey = %q, want %q", got, want)
	}
}

func TestSourceIsStablePerDay(t *testing.T) {
	morning := Source{Date: time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC), Salt: "s"}
	evening := Source{Date: time.Date(2026, 10, 19, 22, 30, 0, 0, time.UTC), Salt: "s"}

	for i := 0; i < 5; i++ {
		if a, b := morning.NextIndex(1000), evening.NextIndex(1000); a != b {
			t.Fatalf("same day gave %d and %d", a, b)
		}
	}
}

func TestSourceVaries(t *testing.T) {
	seen := make(map[int]bool)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 30; d++ {
		seen[Source{Date: start.AddDate(0, 0, d), Salt: "s"}.NextIndex(1000)] = true
	}
	if len(seen) < 20 {
		t.Errorf("30 days produced only %d distinct indexes", len(seen))
	}

	day := Source{Date: start, Salt: "a"}
	other := Source{Date: start, Salt: "b"}
	same := 0
	for n := 2; n < 50; n++ {
		if day.NextIndex(n) == other.NextIndex(n) {
			same++
		}
	}
	if same == 48 {
		t.Error("salt has no effect on the index")
	}
}

func TestPhraseIndexBounds(t *testing.T) {
	d := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	if got := PhraseIndex(d, "s", 0); got != 0 {
		t.Errorf("PhraseIndex with n=0 = %d, want 0", got)
	}
	for n := 1; n < 40; n++ {
		if got := PhraseIndex(d, "s", n); got < 0 || got >= n {
			t.Errorf("PhraseIndex(n=%d) = %d, out of range", n, got)
		}
	}
}
