package game

import (
	"math/rand"

	"github.com/vovakirdan/goldrush/internal/config"
)

// Spawner produces random positions and entities inside the field.
type Spawner struct {
	rng   *rand.Rand
	field Field
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(field Field, rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng, field: field}
}

// RandomPosition returns a uniformly random top-left corner for a box of
// size w x h, with x in [0, field.W-w) and y in [0, field.H-h).
// A box that does not fit along an axis is placed at 0 on that axis.
func (s *Spawner) RandomPosition(w, h float64) (x, y float64) {
	if span := s.field.W - w; span > 0 {
		x = s.rng.Float64() * span
	}
	if span := s.field.H - h; span > 0 {
		y = s.rng.Float64() * span
	}
	return x, y
}

// NewItems creates the gold pickups.
func (s *Spawner) NewItems(cfg config.ItemsConfig) []Item {
	items := make([]Item, cfg.Count)
	for i := range items {
		x, y := s.RandomPosition(cfg.Width, cfg.Height)
		items[i] = Item{
			X:    x,
			Y:    y,
			W:    cfg.Width,
			H:    cfg.Height,
			Type: ItemGold,
		}
	}
	return items
}

// Respawn moves an item to a new random position.
func (s *Spawner) Respawn(it *Item) {
	it.X, it.Y = s.RandomPosition(it.W, it.H)
}

// NewSpiders creates the spiders with random wander directions in [-1, 1).
func (s *Spawner) NewSpiders(cfg config.SpidersConfig) []Spider {
	spiders := make([]Spider, cfg.Count)
	for i := range spiders {
		x, y := s.RandomPosition(cfg.Width, cfg.Height)
		spiders[i] = Spider{
			X:     x,
			Y:     y,
			W:     cfg.Width,
			H:     cfg.Height,
			Speed: cfg.Speed,
			DX:    s.rng.Float64()*2 - 1,
			DY:    s.rng.Float64()*2 - 1,
		}
	}
	return spiders
}

// NewPlayer creates the player at the field's center point.
func (s *Spawner) NewPlayer(cfg config.PlayerConfig) Player {
	x, y := s.field.clampInto(s.field.W/2, s.field.H/2, cfg.Width, cfg.Height)
	return Player{
		X:      x,
		Y:      y,
		W:      cfg.Width,
		H:      cfg.Height,
		Speed:  cfg.Speed,
		Health: cfg.Health,
	}
}
