package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/goldrush/internal/assets"
	"github.com/vovakirdan/goldrush/internal/core"
	"github.com/vovakirdan/goldrush/internal/game"
	"github.com/vovakirdan/goldrush/internal/input"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// SpriteSource resolves sprite names to decoded sprites.
type SpriteSource interface {
	Sprite(name string) *assets.Sprite
}

// cellRenderer implements game.Renderer on a Screen. Field units are mapped
// to cells by the configured cell size; the field starts at screen row top.
type cellRenderer struct {
	screen  *core.Screen
	sprites SpriteSource
	cellW   float64
	cellH   float64
	top     int
	cols    int // Field width in cells
	rows    int // Field height in cells
}

func newCellRenderer(screen *core.Screen, sprites SpriteSource, field game.Field, cellW, cellH float64, top int) *cellRenderer {
	return &cellRenderer{
		screen:  screen,
		sprites: sprites,
		cellW:   cellW,
		cellH:   cellH,
		top:     top,
		cols:    int(math.Ceil(field.W / cellW)),
		rows:    int(math.Ceil(field.H / cellH)),
	}
}

// Clear blanks the field area.
func (r *cellRenderer) Clear() {
	r.screen.FillRect(0, r.top, r.cols, r.rows, ' ', core.ColorDefault)
}

// Draw paints the sprite over every cell its box covers. Each cell samples
// the art at its center; a sprite too small to hit any filled art still
// shows its glyph in its center cell.
func (r *cellRenderer) Draw(id game.SpriteID, rect core.Rect) {
	s := r.sprites.Sprite(string(id))
	glyph, color := s.Rune(), s.CoreColor()

	c0 := max(int(math.Floor(rect.X/r.cellW)), 0)
	r0 := max(int(math.Floor(rect.Y/r.cellH)), 0)
	c1 := min(int(math.Ceil(rect.Right()/r.cellW)), r.cols)
	r1 := min(int(math.Ceil(rect.Bottom()/r.cellH)), r.rows)

	drawn := false
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			var filled bool
			if s.Tile {
				filled = s.TileAt(col, row)
			} else {
				u := ((float64(col)+0.5)*r.cellW - rect.X) / rect.W
				v := ((float64(row)+0.5)*r.cellH - rect.Y) / rect.H
				filled = s.At(u, v)
			}
			if filled {
				r.screen.SetCell(col, r.top+row, glyph, color)
				drawn = true
			}
		}
	}

	if !drawn && !s.Tile {
		cx, cy := rect.Center()
		col := core.Clamp(int(cx/r.cellW), 0, r.cols-1)
		row := core.Clamp(int(cy/r.cellH), 0, r.rows-1)
		r.screen.SetCell(col, r.top+row, glyph, color)
	}
}

// pointer converts a mouse position in screen cells to a pointer sample
// aimed at the cell's center.
func (r *cellRenderer) pointer(x, y int) input.Pointer {
	return input.Pointer{
		ClientX: float64(x) + 0.5,
		ClientY: float64(y) + 0.5,
		OriginY: float64(r.top),
		ScaleX:  r.cellW,
		ScaleY:  r.cellH,
	}
}
