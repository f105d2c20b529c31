package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed returns the same draw every time.
type fixed float64

func (f fixed) Float64() float64 { return float64(f) }
func (f fixed) IntN(int) int     { return 0 }

func TestWeightedCumulative(t *testing.T) {
	choices := []Choice[string]{{"a", 0.2}, {"b", 0.3}, {"c", 0.5}}
	cases := []struct {
		u    float64
		want string
	}{
		{0, "a"},
		{0.19, "a"},
		{0.2, "b"},
		{0.49, "b"},
		{0.5, "c"},
		{0.999, "c"},
	}
	for _, c := range cases {
		got := Weighted(fixed(c.u), choices...)
		assert.Equal(t, c.want, got, "draw %v", c.u)
	}
}

func TestWeightedKeepsSmallProbabilities(t *testing.T) {
	// A list-replication draw would give 0.005 zero weight.
	got := Weighted(fixed(0.004), Choice[bool]{true, 0.005}, Choice[bool]{false, 0.995})
	assert.True(t, got)
}

func TestWeightedShortfallPicksLast(t *testing.T) {
	got := Weighted(fixed(0.9), Choice[int]{1, 0.1}, Choice[int]{2, 0.1})
	assert.Equal(t, 2, got)
}

func TestWeightedPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Weighted[int](fixed(0)) })
}

func TestChanceBounds(t *testing.T) {
	assert.False(t, Chance(fixed(0), 0), "p=0 never fires")
	assert.True(t, Chance(fixed(0.999999), 1), "p=1 always fires")
	assert.False(t, Chance(fixed(0), -3), "negative p clamps to 0")
	assert.True(t, Chance(fixed(0.5), 7), "p>1 clamps to 1")
}

func TestChanceFrequency(t *testing.T) {
	src := New(42)
	const n = 20000
	hits := 0
	for i := 0; i < n; i++ {
		if Chance(src, 0.3) {
			hits++
		}
	}
	assert.InDelta(t, 0.3, float64(hits)/n, 0.02)
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
