// Package view runs the interactive map viewer on a tcell screen.
package view

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"islandgen/internal/generate"
	"islandgen/internal/render"
	"islandgen/internal/terrain"

	"github.com/gdamore/tcell/v2"
)

// View shows one generated map at a time and regenerates it on request.
type View struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      generate.Config
	gen      *generate.Generator
	seeds    *rand.Rand
	logger   *slog.Logger

	hover   terrain.Coord
	hovered bool
}

// New generates the first map from cfg and prepares the viewer. seeds
// supplies the seed for every map after the first.
func New(screen tcell.Screen, cfg generate.Config, theme render.Theme, seeds *rand.Rand) (*View, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	v := &View{
		screen:   screen,
		renderer: render.NewRenderer(screen, theme),
		cfg:      cfg,
		seeds:    seeds,
		logger:   logger,
	}
	if err := v.regenerate(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return v, nil
}

// Generator returns the generator behind the current map.
func (v *View) Generator() *generate.Generator { return v.gen }

// Config returns the settings of the current map.
func (v *View) Config() generate.Config { return v.cfg }

// Renderer returns the renderer drawing the map.
func (v *View) Renderer() *render.Renderer { return v.renderer }

func (v *View) regenerate() error {
	gen, err := generate.Generate(v.cfg)
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}
	v.gen = gen
	v.renderer.Camera().Fit(v.cfg.Size)
	st := gen.Stats()
	v.logger.Info("map generated",
		"seed", st.Seed, "size", v.cfg.Size, "islands", st.Islands, "mountains", st.Promoted)
	return nil
}

// Apply performs one action. It reports true when the viewer should exit.
func (v *View) Apply(a Action) (bool, error) {
	switch a {
	case ActionQuit:
		return true, nil
	case ActionScrollN, ActionScrollS, ActionScrollE, ActionScrollW:
		dr, dc := scrollDelta(a)
		v.renderer.Camera().Scroll(dr, dc, v.cfg.Size)
	case ActionRegenerate:
		v.cfg.Seed = v.seeds.Int64()
		return false, v.regenerate()
	case ActionToggleMountains:
		v.cfg.Mountains = !v.cfg.Mountains
		return false, v.regenerate()
	case ActionMoreIslands:
		v.cfg.Islands++
		return false, v.regenerate()
	case ActionFewerIslands:
		if v.cfg.Islands == 0 {
			return false, nil
		}
		v.cfg.Islands--
		return false, v.regenerate()
	case ActionCycleTheme:
		v.renderer.SetTheme(nextTheme(v.renderer.Theme()))
	case ActionCenter:
		cam := v.renderer.Camera()
		cam.Center(v.cfg.Size/2, v.cfg.Size/2)
		cam.Fit(v.cfg.Size)
	}
	return false, nil
}

func nextTheme(cur render.Theme) render.Theme {
	for i, th := range render.Themes {
		if th.Name == cur.Name {
			return render.Themes[(i+1)%len(render.Themes)]
		}
	}
	return render.Themes[0]
}

// Hover records the screen cell under the mouse pointer. It reports whether
// the cell lies on the map.
func (v *View) Hover(sx, sy int) bool {
	row, col, ok := v.renderer.TileAt(v.gen.Grid(), sx, sy)
	v.hover, v.hovered = terrain.Coord{R: row, C: col}, ok
	return ok
}

// Draw renders the map and status bar.
func (v *View) Draw() {
	st := v.gen.Stats()
	grid := v.gen.Grid()
	v.renderer.DrawGrid(grid)
	status := render.StatusLine(st.Seed, st.Islands, v.cfg.Mountains, st.TileCount)
	if v.hovered && grid.InBounds(v.hover.R, v.hover.C) {
		status += "  " + render.HoverText(v.hover.R, v.hover.C, grid.At(v.hover))
	}
	v.renderer.DrawStatus(status, helpText)
}

// Run draws and handles input until the user quits or the screen is
// finalized. The screen is left open for the caller to Fini.
func (v *View) Run() error {
	for {
		v.Draw()
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Resize(v.cfg.Size)
		case *tcell.EventMouse:
			v.Hover(ev.Position())
		case *tcell.EventKey:
			quit, err := v.Apply(keyToAction(ev))
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}
