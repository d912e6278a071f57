package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/goldrush/internal/config"
	"github.com/vovakirdan/goldrush/internal/input"
)

// keyNames maps configuration key names to ebiten keys. Names follow the
// terminal frontend's spelling so one key table serves both.
var keyNames = map[string]ebiten.Key{
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"space": ebiten.KeySpace,
	"enter": ebiten.KeyEnter,
	"a":     ebiten.KeyA,
	"b":     ebiten.KeyB,
	"c":     ebiten.KeyC,
	"d":     ebiten.KeyD,
	"e":     ebiten.KeyE,
	"f":     ebiten.KeyF,
	"g":     ebiten.KeyG,
	"h":     ebiten.KeyH,
	"i":     ebiten.KeyI,
	"j":     ebiten.KeyJ,
	"k":     ebiten.KeyK,
	"l":     ebiten.KeyL,
	"m":     ebiten.KeyM,
	"n":     ebiten.KeyN,
	"o":     ebiten.KeyO,
	"p":     ebiten.KeyP,
	"q":     ebiten.KeyQ,
	"r":     ebiten.KeyR,
	"s":     ebiten.KeyS,
	"t":     ebiten.KeyT,
	"u":     ebiten.KeyU,
	"v":     ebiten.KeyV,
	"w":     ebiten.KeyW,
	"x":     ebiten.KeyX,
	"y":     ebiten.KeyY,
	"z":     ebiten.KeyZ,
}

// bindings holds the ebiten keys of each direction.
type bindings [4][]ebiten.Key

// newBindings resolves the configured key names. Names without an ebiten
// key (such as terminal-only chords) are skipped; a direction left without
// keys falls back to its arrow key.
func newBindings(cfg config.InputConfig) (bindings, error) {
	var b bindings
	for name, keys := range cfg.Keys {
		d, err := input.ParseDirection(name)
		if err != nil {
			return bindings{}, fmt.Errorf("window: key bindings: %w", err)
		}
		for _, k := range keys {
			if key, ok := keyNames[strings.ToLower(k)]; ok {
				b[d] = append(b[d], key)
			}
		}
	}
	for _, d := range input.Directions {
		if len(b[d]) == 0 {
			b[d] = []ebiten.Key{keyNames[d.String()]}
		}
	}
	return b, nil
}

// pressed reports whether any key of the direction is held.
func (b bindings) pressed(d input.Direction) bool {
	for _, k := range b[d] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
