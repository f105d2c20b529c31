// Package render draws terrain grids to a terminal.
package render

import (
	"islandgen/internal/terrain"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// statusRows is the number of screen rows reserved below the map.
const statusRows = 2

// Renderer draws a terrain grid onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-statusRows, 1)),
		theme:  theme,
	}
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme { return r.theme }

// SetTheme switches the glyph theme.
func (r *Renderer) SetTheme(th Theme) { r.theme = th }

// Camera exposes the viewport.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize picks up a new screen size, keeping the current offsets.
func (r *Renderer) Resize(size int) {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-statusRows, 1)
	r.camera.Fit(size)
}

// DrawGrid clears the screen and draws every tile inside the viewport. The
// camera is first clamped to the grid.
func (r *Renderer) DrawGrid(grid *terrain.Grid) {
	r.screen.Clear()
	size := grid.Size()
	r.camera.Fit(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sx, sy, onScreen := r.camera.WorldToScreen(row, col)
			if !onScreen {
				continue
			}
			g := r.theme.Glyph(grid.Get(row, col))
			r.putGlyph(sx, sy, g.Text, g.Style)
		}
	}
}

// TileAt maps a screen cell back to the grid position under it.
// ok is false for cells outside the map area or the grid.
func (r *Renderer) TileAt(grid *terrain.Grid, sx, sy int) (row, col int, ok bool) {
	if sx < 0 || sx >= r.camera.ViewWidth || sy < 0 || sy >= r.camera.ViewHeight {
		return 0, 0, false
	}
	row, col = r.camera.ScreenToWorld(sx, sy)
	return row, col, grid.InBounds(row, col)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
