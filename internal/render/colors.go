package render

import (
	"islandgen/internal/terrain"

	"github.com/gdamore/tcell/v2"
)

// Glyph is the text and style used to draw one tile type.
type Glyph struct {
	Text  string
	Style tcell.Style
}

// Theme maps every terrain type to a glyph.
type Theme struct {
	Name   string
	Glyphs [4]Glyph // indexed by terrain.Tile
}

// Glyph returns the glyph for t, falling back to the ocean glyph.
func (th Theme) Glyph(t terrain.Tile) Glyph {
	if !t.Valid() {
		return th.Glyphs[terrain.Ocean]
	}
	return th.Glyphs[t]
}

var base = tcell.StyleDefault.Background(tcell.ColorBlack)

// DigitTheme prints tile codes in the classic blue/green/yellow/white.
var DigitTheme = Theme{
	Name: "digits",
	Glyphs: [4]Glyph{
		terrain.Ocean:    {"0", base.Foreground(tcell.ColorBlue)},
		terrain.Land:     {"1", base.Foreground(tcell.ColorGreen)},
		terrain.Shore:    {"2", base.Foreground(tcell.ColorYellow)},
		terrain.Mountain: {"3", base.Foreground(tcell.ColorWhite)},
	},
}

// EmojiTheme draws each tile as a colored square. Emoji carry their own
// colors, so the style only sets the background.
var EmojiTheme = Theme{
	Name: "emoji",
	Glyphs: [4]Glyph{
		terrain.Ocean:    {"🟦", base},
		terrain.Land:     {"🟩", base},
		terrain.Shore:    {"🟨", base},
		terrain.Mountain: {"⬜", base},
	},
}

// Themes lists the available themes in cycling order.
var Themes = []Theme{EmojiTheme, DigitTheme}

// ThemeByName looks a theme up by name.
func ThemeByName(name string) (Theme, bool) {
	for _, th := range Themes {
		if th.Name == name {
			return th, true
		}
	}
	return Theme{}, false
}
