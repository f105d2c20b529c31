package generate

import (
	"islandgen/internal/rng"
	"islandgen/internal/terrain"
)

// ClassifyMountains promotes shore tiles to mountains in one row-major pass.
// A shore tile becomes a mountain with probability land/(land+ocean) over its
// neighbors; shore tiles with neither neighbor type are skipped. Promotions
// are written in place, so later tiles in the pass see earlier mountains.
// It returns the number of tiles promoted.
func ClassifyMountains(grid *terrain.Grid, src rng.Source) int {
	promoted := 0
	size := grid.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if grid.Get(r, c) != terrain.Shore {
				continue
			}
			ocean, land := 0, 0
			for n := range grid.Neighbors(terrain.Coord{R: r, C: c}) {
				switch grid.At(n) {
				case terrain.Ocean:
					ocean++
				case terrain.Land:
					land++
				}
			}
			if ocean+land == 0 {
				continue
			}
			if rng.Chance(src, float64(land)/float64(ocean+land)) {
				grid.Set(r, c, terrain.Mountain)
				promoted++
			}
		}
	}
	return promoted
}
