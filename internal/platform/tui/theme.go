package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/basket-fighter/internal/core"
)

// Glyph is the terminal stand-in for a sprite.
type Glyph struct {
	Text  string
	Color core.Color
}

// Theme contains the configurable visual styles of the terminal frontend.
type Theme struct {
	Sprites map[core.SpriteID]Glyph
	Unknown Glyph

	Border core.Color
	Label  core.Color

	Warning lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Sprites: map[core.SpriteID]Glyph{
			core.SpriteApple:  {Text: "●", Color: core.ColorRed},
			core.SpriteBanana: {Text: ")", Color: core.ColorBrightYellow},
			core.SpriteCherry: {Text: "♥", Color: core.ColorMagenta},
			core.SpritePear:   {Text: "♠", Color: core.ColorBrightGreen},
			core.SpriteBasket: {Text: `\___/`, Color: core.ColorBrown},
		},
		Unknown: Glyph{Text: "?", Color: core.ColorWhite},

		Border: core.ColorGray,
		Label:  core.ColorWhite,

		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Glyph returns the glyph drawn for a sprite.
func (t Theme) Glyph(id core.SpriteID) Glyph {
	if g, ok := t.Sprites[id]; ok {
		return g
	}
	return t.Unknown
}
