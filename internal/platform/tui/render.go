package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/basket-fighter/internal/core"
)

// Minimum terminal size that still fits the playfield and the help line.
const (
	MinWidth  = 24
	MinHeight = 10
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Rasterizer projects canvas pixel coordinates onto screen cells.
type Rasterizer struct {
	theme   Theme
	canvasW int
	canvasH int
}

// NewRasterizer creates a rasterizer for a canvas of the given pixel size.
func NewRasterizer(theme Theme, canvasW, canvasH int) Rasterizer {
	return Rasterizer{
		theme:   theme,
		canvasW: core.Max(canvasW, 1),
		canvasH: core.Max(canvasH, 1),
	}
}

// Playfield returns the cell area inside the border for a screen.
func Playfield(s *core.Screen) core.Rect {
	return core.NewRect(1, 1, core.Max(s.Width()-2, 0), core.Max(s.Height()-2, 0))
}

// Cell returns the screen cell a canvas point falls in, relative to area.
// Points outside the canvas are pinned to the first cell outside the area.
func (r Rasterizer) Cell(area core.Rect, pos core.Vec) (int, int) {
	x := area.X + int(math.Floor(pos.X*float64(area.W)/float64(r.canvasW)))
	y := area.Y + int(math.Floor(pos.Y*float64(area.H)/float64(r.canvasH)))
	return core.Clamp(x, area.X-1, area.Right()), core.Clamp(y, area.Y-1, area.Bottom())
}

// Draw clears dst and draws the border and every live canvas item.
// Sprites and labels are centered on their position and clipped to the
// playfield.
func (r Rasterizer) Draw(dst *core.Screen, c *core.Canvas) {
	dst.Clear()
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), r.theme.Border)

	area := Playfield(dst)
	for _, it := range c.Items() {
		x, y := r.Cell(area, it.Pos)
		if it.IsText() {
			r.drawClipped(dst, area, x, y, it.Text, r.theme.Label)
			continue
		}
		g := r.theme.Glyph(it.Sprite)
		r.drawClipped(dst, area, x, y, g.Text, g.Color)
	}
}

func (r Rasterizer) drawClipped(dst *core.Screen, area core.Rect, cx, y int, text string, color core.Color) {
	if y < area.Y || y >= area.Bottom() {
		return
	}
	x := cx - utf8.RuneCountInString(text)/2
	for _, ch := range text {
		if area.Contains(x, y) {
			dst.SetColored(x, y, ch, color)
		}
		x++
	}
}
