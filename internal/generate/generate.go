// Package generate grows islands on a terrain grid and places mountains on
// their shorelines.
package generate

import (
	"fmt"
	"log/slog"

	"islandgen/internal/rng"
	"islandgen/internal/terrain"
)

// Config drives one map generation.
type Config struct {
	Size      int
	Islands   int
	Mountains bool
	Stability float64
	Seed      int64
	Rand      rng.Source   // overrides Seed when non-nil
	Logger    *slog.Logger // nil discards warnings
}

// DefaultConfig returns a 50×50 map with five islands and mountains.
func DefaultConfig() Config {
	return Config{
		Size:      50,
		Islands:   5,
		Mountains: true,
		Stability: Stability,
	}
}

// Validate checks the config without generating anything.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: got %d", terrain.ErrInvalidSize, c.Size)
	}
	if c.Islands < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeIslands, c.Islands)
	}
	if c.Stability < 0 || c.Stability > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidStability, c.Stability)
	}
	return nil
}

// Stats summarizes a generated map.
type Stats struct {
	Seed      int64 // zero unless Seeded
	Seeded    bool  // false when Config.Rand supplied the randomness
	Islands   int
	Promoted  int
	TileCount map[terrain.Tile]int
}

// Generator owns a grid and the islands grown on it.
type Generator struct {
	cfg      Config
	grid     *terrain.Grid
	rand     rng.Source
	logger   *slog.Logger
	placed   []*Island
	promoted int
}

// New validates cfg and allocates an all-ocean grid.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := terrain.New(cfg.Size)
	if err != nil {
		return nil, err
	}
	src := cfg.Rand
	if src == nil {
		src = rng.New(cfg.Seed)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{cfg: cfg, grid: grid, rand: src, logger: logger}, nil
}

// Generate builds a complete map from cfg.
func Generate(cfg Config) (*Generator, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	g.Run()
	return g, nil
}

// Run places the configured islands and, if enabled, the mountains.
func (g *Generator) Run() {
	g.Islands(g.cfg.Islands)
	if g.cfg.Mountains {
		g.Mountains()
	}
}

// Islands grows n islands one after another from random seed coordinates.
func (g *Generator) Islands(n int) {
	for i := 0; i < n; i++ {
		core := g.grid.RandomCoord(g.rand)
		isl := NewIsland(g.grid, g.rand, core, g.cfg.Stability)
		g.placed = append(g.placed, isl)
		g.logger.Debug("island grown", "core_row", core.R, "core_col", core.C, "size", isl.Size())
	}
}

// Mountains runs the shore classifier. Without any islands it logs a warning
// and leaves the grid untouched.
func (g *Generator) Mountains() int {
	if len(g.placed) == 0 {
		g.logger.Warn("mountains requested before any island; grid left unchanged",
			"size", g.grid.Size())
		return 0
	}
	n := ClassifyMountains(g.grid, g.rand)
	g.promoted += n
	return n
}

// Grid returns the grid being generated.
func (g *Generator) Grid() *terrain.Grid { return g.grid }

// Placed returns the islands grown so far, oldest first.
func (g *Generator) Placed() []*Island { return g.placed }

// Stats reports tile counts and generation totals.
func (g *Generator) Stats() Stats {
	st := Stats{
		Islands:   len(g.placed),
		Promoted:  g.promoted,
		TileCount: g.grid.Histogram(),
	}
	if g.cfg.Rand == nil {
		st.Seed, st.Seeded = g.cfg.Seed, true
	}
	return st
}
