// Package game implements Gold Rush: a player collects gold on a bounded
// field while avoiding spiders. It contains pure logic; drawing, HUD and
// prompts are reached through the Renderer, HUD and Prompter interfaces.
package game

import "github.com/vovakirdan/goldrush/internal/core"

// SpriteID names a drawable sprite. Values match asset names.
type SpriteID string

const (
	SpriteBackground SpriteID = "background"
	SpritePlayer     SpriteID = "player"
	SpriteGold       SpriteID = "gold"
	SpriteSpider     SpriteID = "spider"
)

// RequiredSprites lists the sprites the loop waits for before running.
var RequiredSprites = []SpriteID{SpritePlayer, SpriteGold, SpriteSpider, SpriteBackground}

// Field is the playable rectangle. It is fixed for a session.
type Field struct {
	W, H float64
}

// Bounds returns the field as a rectangle at the origin.
func (f Field) Bounds() core.Rect {
	return core.NewRect(0, 0, f.W, f.H)
}

// clampInto keeps a box of size w x h inside the field.
func (f Field) clampInto(x, y, w, h float64) (float64, float64) {
	return core.ClampF(x, 0, f.W-w), core.ClampF(y, 0, f.H-h)
}

// Player is the user-controlled sprite.
type Player struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Health int
	Gold   int
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// ItemType tags a pickup.
type ItemType string

// ItemGold is the only pickup type.
const ItemGold ItemType = "gold"

// Item is a pickup lying on the field.
type Item struct {
	X, Y float64
	W, H float64
	Type ItemType
}

// Rect returns the item's bounding box.
func (it Item) Rect() core.Rect {
	return core.NewRect(it.X, it.Y, it.W, it.H)
}

// Spider is a hostile sprite that wanders and turns toward a nearby player.
type Spider struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	DX, DY float64 // Direction; not necessarily unit length until it seeks
}

// Rect returns the spider's bounding box.
func (s Spider) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}
