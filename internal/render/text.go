package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"islandgen/internal/terrain"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ansiReset = "\x1b[0m"

// WriteText dumps tiles row by row without color, each tile padded to two
// columns so digit and emoji output line up the same way.
func WriteText(w io.Writer, tiles [][]terrain.Tile, theme Theme) error {
	return writeTiles(w, tiles, theme, false)
}

// WriteColor is WriteText with each glyph wrapped in the ANSI escape for its
// theme foreground color. Glyphs with the default color are left bare.
func WriteColor(w io.Writer, tiles [][]terrain.Tile, theme Theme) error {
	return writeTiles(w, tiles, theme, true)
}

func writeTiles(w io.Writer, tiles [][]terrain.Tile, theme Theme, color bool) error {
	bw := bufio.NewWriter(w)
	for _, row := range tiles {
		var sb strings.Builder
		for _, t := range row {
			g := theme.Glyph(t)
			if esc := ansiForeground(g.Style); color && esc != "" {
				sb.WriteString(esc + g.Text + ansiReset)
			} else {
				sb.WriteString(g.Text)
			}
			if pad := 2 - runewidth.StringWidth(g.Text); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		line := strings.TrimRight(sb.String(), " ")
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ansiForeground returns the 24-bit foreground escape for a style, or "" when
// the style keeps the terminal's default color.
func ansiForeground(st tcell.Style) string {
	fg, _, _ := st.Decompose()
	if fg == tcell.ColorDefault {
		return ""
	}
	r, g, b := fg.RGB()
	if r < 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
