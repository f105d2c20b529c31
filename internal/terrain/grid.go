// Package terrain holds the square tile grid that islands are grown on.
package terrain

import (
	"fmt"
	"iter"

	"islandgen/internal/rng"
)

// Coord is a (row, column) position on the grid.
type Coord struct {
	R, C int
}

// Grid is a square matrix of tiles, Ocean until something writes to it.
type Grid struct {
	size  int
	tiles [][]Tile
}

// New creates a size×size grid filled with ocean.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	tiles := make([][]Tile, size)
	for r := range tiles {
		tiles[r] = make([]Tile, size)
	}
	return &Grid{size: size, tiles: tiles}, nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (r, c) lies on the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}

// Get returns the tile at (r, c). Panics if out of bounds.
func (g *Grid) Get(r, c int) Tile {
	return g.tiles[r][c]
}

// Set overwrites the tile at (r, c). Panics if out of bounds.
func (g *Grid) Set(r, c int, t Tile) {
	g.tiles[r][c] = t
}

// At is Get for a Coord.
func (g *Grid) At(p Coord) Tile { return g.tiles[p.R][p.C] }

// RandomCoord samples a uniformly distributed position, row first.
func (g *Grid) RandomCoord(src rng.Source) Coord {
	r := src.IntN(g.size)
	c := src.IntN(g.size)
	return Coord{R: r, C: c}
}

// neighborOffsets is south, north, west, east. The classifier and the island
// flood fill both depend on this order for reproducible draws.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

// Neighbors yields the in-bounds axis-aligned neighbors of p. Edges never wrap.
func (g *Grid) Neighbors(p Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, d := range neighborOffsets {
			n := Coord{R: p.R + d[0], C: p.C + d[1]}
			if !g.InBounds(n.R, n.C) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Tiles returns a row-major copy of the grid for renderers.
func (g *Grid) Tiles() [][]Tile {
	out := make([][]Tile, g.size)
	for r := range g.tiles {
		out[r] = make([]Tile, g.size)
		copy(out[r], g.tiles[r])
	}
	return out
}

// Count returns how many tiles have type t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.tiles {
		for _, v := range row {
			if v == t {
				n++
			}
		}
	}
	return n
}

// Histogram counts tiles per terrain type.
func (g *Grid) Histogram() map[Tile]int {
	h := make(map[Tile]int, len(tileNames))
	for _, row := range g.tiles {
		for _, v := range row {
			h[v]++
		}
	}
	return h
}
