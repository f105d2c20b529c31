package render

import (
	"fmt"
	"strings"

	"islandgen/internal/terrain"

	"github.com/gdamore/tcell/v2"
)

// StatusLine formats the one-line summary shown under the map.
func StatusLine(seed int64, islands int, mountains bool, counts map[terrain.Tile]int) string {
	mtn := "off"
	if mountains {
		mtn = "on"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "seed %d  islands %d  mountains %s", seed, islands, mtn)
	for _, t := range terrain.All() {
		if t == terrain.Ocean {
			continue
		}
		fmt.Fprintf(&sb, "  %s %d", t, counts[t])
	}
	return sb.String()
}

// HoverText describes the tile under the mouse pointer.
func HoverText(row, col int, t terrain.Tile) string {
	return fmt.Sprintf("(%d,%d) %s", row, col, t)
}

// DrawStatus renders the separator, status text and key help at the bottom
// of the screen, then shows the frame.
func (r *Renderer) DrawStatus(status, help string) {
	_, screenH := r.screen.Size()
	y := screenH - statusRows
	r.drawText(0, y, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, y+1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
