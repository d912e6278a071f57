// Package assets loads the named sprites the game draws. Sprites are small
// YAML documents with ASCII art, a terminal glyph and colors; the window
// frontend may also point a sprite at a PNG image.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/goldrush/internal/core"
)

// ErrNotFound is returned (wrapped) when an asset file does not exist.
var ErrNotFound = errors.New("assets: not found")

// Sprite is a decoded sprite asset.
type Sprite struct {
	Name  string   `yaml:"name"`
	Glyph string   `yaml:"glyph"` // Terminal rune painted on filled cells
	Color string   `yaml:"color"` // Terminal color name, see core.ColorByName
	RGB   string   `yaml:"rgb"`   // Window color, "#rrggbb"
	Art   []string `yaml:"art"`   // Rows; '.' and ' ' are transparent
	Tile  bool     `yaml:"tile"`  // Repeat the art instead of stretching it
	Image string   `yaml:"image"` // Optional PNG path, relative to the asset root

	// Raster is the decoded Image, if any.
	Raster image.Image `yaml:"-"`
}

// DecodeSprite parses a sprite document. An empty name in the document is
// filled in from name.
func DecodeSprite(name string, data []byte) (*Sprite, error) {
	var s Sprite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("assets: parse %q: %w", name, err)
	}
	if s.Name == "" {
		s.Name = name
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the sprite can be drawn.
func (s *Sprite) Validate() error {
	if len(s.Art) == 0 && s.Image == "" {
		return fmt.Errorf("assets: sprite %q has neither art nor image", s.Name)
	}
	if s.Glyph != "" && utf8.RuneCountInString(s.Glyph) != 1 {
		return fmt.Errorf("assets: sprite %q glyph %q must be a single rune", s.Name, s.Glyph)
	}
	if _, ok := core.ColorByName(s.Color); !ok {
		return fmt.Errorf("assets: sprite %q has unknown color %q", s.Name, s.Color)
	}
	if s.RGB != "" {
		if _, err := parseHex(s.RGB); err != nil {
			return fmt.Errorf("assets: sprite %q: %w", s.Name, err)
		}
	}
	return nil
}

// Rune returns the glyph drawn in the terminal.
func (s *Sprite) Rune() rune {
	if s.Glyph == "" {
		return '#'
	}
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	return r
}

// CoreColor returns the terminal color.
func (s *Sprite) CoreColor() core.Color {
	c, _ := core.ColorByName(s.Color)
	return c
}

// RGBA returns the window color. Sprites without one are white.
func (s *Sprite) RGBA() color.RGBA {
	c, err := parseHex(s.RGB)
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// Size returns the art dimensions in characters.
func (s *Sprite) Size() (w, h int) {
	for _, row := range s.Art {
		w = max(w, utf8.RuneCountInString(row))
	}
	return w, len(s.Art)
}

// Filled reports whether the art character at (col, row) is opaque.
// Out-of-range positions are transparent.
func (s *Sprite) Filled(col, row int) bool {
	if row < 0 || row >= len(s.Art) || col < 0 {
		return false
	}
	i := 0
	for _, r := range s.Art[row] {
		if i == col {
			return r != '.' && r != ' '
		}
		i++
	}
	return false
}

// At samples the art at normalized coordinates u, v in [0, 1).
func (s *Sprite) At(u, v float64) bool {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return false
	}
	col := int(u * float64(w))
	row := int(v * float64(h))
	return s.Filled(core.Clamp(col, 0, w-1), core.Clamp(row, 0, h-1))
}

// TileAt samples tiled art at absolute grid coordinates.
func (s *Sprite) TileAt(col, row int) bool {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return false
	}
	return s.Filled(mod(col, w), mod(row, h))
}

// Rasterize returns the sprite as an image: the decoded PNG when there is
// one, otherwise the art with one pixel per character.
func (s *Sprite) Rasterize() image.Image {
	if s.Raster != nil {
		return s.Raster
	}

	w, h := s.Size()
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	c := s.RGBA()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if s.Filled(col, row) {
				img.SetRGBA(col, row, c)
			}
		}
	}
	return img
}

// Placeholder returns the sprite drawn in place of one that failed to load.
func Placeholder(name string) *Sprite {
	return &Sprite{
		Name:  name,
		Glyph: "?",
		Color: "bright_magenta",
		RGB:   "#ff00ff",
		Art:   []string{"##", "##"},
	}
}

func parseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid rgb %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid rgb %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
