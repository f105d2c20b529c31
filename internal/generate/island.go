package generate

import (
	"math"

	"islandgen/internal/rng"
	"islandgen/internal/terrain"
)

// Stability is the default weight pulling expansion toward shoreline. Too low
// and land saturates the grid; too high and islands come out as small diamonds.
const Stability = 0.45

// Island is one flood-filled land mass. It grows to completion inside
// NewIsland and is never mutated afterwards.
type Island struct {
	core      terrain.Coord
	frontier  []terrain.Coord
	visited   []terrain.Coord
	steps     int
	stability float64
}

// NewIsland grows an island from core on grid. Earlier islands are not
// protected: expansion treats only Ocean as claimable, but an island seeded on
// top of another one overwrites its core tile.
func NewIsland(grid *terrain.Grid, src rng.Source, core terrain.Coord, stability float64) *Island {
	isl := &Island{
		core:      core,
		frontier:  []terrain.Coord{core},
		visited:   []terrain.Coord{core},
		stability: stability,
	}
	isl.grow(grid, src)
	return isl
}

func (isl *Island) grow(grid *terrain.Grid, src rng.Source) {
	grid.Set(isl.core.R, isl.core.C, terrain.Land)
	for len(isl.frontier) > 0 {
		target := isl.frontier[0]
		isl.frontier = isl.frontier[1:]
		isl.steps++
		isl.expand(grid, src, target, oceanProb(len(isl.visited)))
	}
	isl.frontier = nil
}

// oceanProb is the logistic curve 1/(1+e^-g) over island size g. It tends to 1
// as the island grows, closing the coastline.
func oceanProb(g int) float64 {
	return 1 / (1 + math.Exp(-float64(g)))
}

func (isl *Island) expand(grid *terrain.Grid, src rng.Source, p terrain.Coord, oceanP float64) {
	for n := range grid.Neighbors(p) {
		if grid.At(n) != terrain.Ocean {
			continue
		}
		// d is always 1 at 4-connectivity; the term is kept so a wider
		// neighborhood would weight diagonal steps.
		d := math.Hypot(float64(p.R-n.R), float64(p.C-n.C))
		shoreWeight := isl.stability * d * oceanP
		if rng.Chance(src, shoreWeight) {
			grid.Set(n.R, n.C, terrain.Shore)
			continue
		}
		grid.Set(n.R, n.C, terrain.Land)
		isl.frontier = append(isl.frontier, n)
		isl.visited = append(isl.visited, n)
	}
}

// Core returns the seed coordinate.
func (isl *Island) Core() terrain.Coord { return isl.core }

// Visited returns the coordinates this island claimed as land, seed first.
func (isl *Island) Visited() []terrain.Coord {
	out := make([]terrain.Coord, len(isl.visited))
	copy(out, isl.visited)
	return out
}

// Size is the number of land tiles the island claimed.
func (isl *Island) Size() int { return len(isl.visited) }

// Steps is the number of frontier pops performed during growth.
func (isl *Island) Steps() int { return isl.steps }

// Done reports whether the frontier is empty.
func (isl *Island) Done() bool { return len(isl.frontier) == 0 }
