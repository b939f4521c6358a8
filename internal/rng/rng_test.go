package rng

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeededIsDeterministic(t *testing.T) {
	a, b := Seeded(42), Seeded(42)

	var got, want []int
	for i := 0; i < 20; i++ {
		got = append(got, a.NextIndex(10))
		want = append(want, b.NextIndex(10))
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("same seed gave different draws (-want +got)\n%s", diff)
	}
}

func TestNextIndexInRange(t *testing.T) {
	for name, src := range map[string]Source{
		"seeded": Seeded(7),
		"crypto": Crypto(),
	} {
		for i := 0; i < 500; i++ {
			if n := src.NextIndex(3); n < 0 || n >= 3 {
				t.Fatalf("%s: NextIndex(3) = %d, out of range", name, n)
			}
		}
	}
}

func TestNextIndexNonPositiveBound(t *testing.T) {
	src := Seeded(1)
	for _, bound := range []int{0, -4} {
		if got := src.NextIndex(bound); got != 0 {
			t.Errorf("NextIndex(%d) = %d, want 0", bound, got)
		}
	}
}
