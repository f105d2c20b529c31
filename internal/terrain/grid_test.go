package terrain

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/internal/rng"
)

func TestNewRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		g, err := New(size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) err = %v, want ErrInvalidSize", size, err)
		}
		if g != nil {
			t.Errorf("New(%d) returned a grid", size)
		}
	}
}

func TestNewIsAllOcean(t *testing.T) {
	g, err := New(6)
	require.NoError(t, err)
	assert.Equal(t, 36, g.Count(Ocean))
	assert.Equal(t, map[Tile]int{Ocean: 36}, g.Histogram())
}

func TestInBounds(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)
	cases := []struct {
		r, c int
		want bool
	}{
		{0, 0, true},
		{3, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 4, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.r, c.c); got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.r, c.c, got, c.want)
		}
	}
}

func TestSetGet(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)
	g.Set(1, 2, Shore)
	assert.Equal(t, Shore, g.Get(1, 2))
	assert.Equal(t, Shore, g.At(Coord{1, 2}))
	assert.Equal(t, Ocean, g.Get(2, 1), "Set must not touch the transposed cell")
	assert.Panics(t, func() { g.Get(3, 0) })
}

func TestNeighbors(t *testing.T) {
	big, err := New(5)
	require.NoError(t, err)
	one, err := New(1)
	require.NoError(t, err)

	cases := []struct {
		name string
		grid *Grid
		p    Coord
		want []Coord
	}{
		{"interior keeps south north west east", big, Coord{2, 2}, []Coord{{3, 2}, {1, 2}, {2, 1}, {2, 3}}},
		{"top-left corner", big, Coord{0, 0}, []Coord{{1, 0}, {0, 1}}},
		{"bottom-right corner", big, Coord{4, 4}, []Coord{{3, 4}, {4, 3}}},
		{"top edge", big, Coord{0, 2}, []Coord{{1, 2}, {0, 1}, {0, 3}}},
		{"single cell", one, Coord{0, 0}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(tc.grid.Neighbors(tc.p))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNeighborsStopsEarly(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)
	n := 0
	for range g.Neighbors(Coord{2, 2}) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestRandomCoordInBounds(t *testing.T) {
	g, err := New(7)
	require.NoError(t, err)
	src := rng.New(3)
	for i := 0; i < 500; i++ {
		p := g.RandomCoord(src)
		require.True(t, g.InBounds(p.R, p.C), "sampled %v", p)
	}
}

func TestTilesIsACopy(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)
	g.Set(0, 1, Land)
	tiles := g.Tiles()
	assert.Equal(t, [][]Tile{{Ocean, Land}, {Ocean, Ocean}}, tiles)
	tiles[0][0] = Mountain
	assert.Equal(t, Ocean, g.Get(0, 0))
}

func TestTileString(t *testing.T) {
	assert.Equal(t, "mountain", Mountain.String())
	assert.Equal(t, "unknown", Tile(9).String())
	assert.False(t, Tile(4).Valid())
	assert.Len(t, All(), 4)
}
