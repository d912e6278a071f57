// Package config provides YAML-based game configuration loading and
// validation for Gold Rush.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// GameConfig contains all tunables of the game.
type GameConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Items   ItemsConfig   `yaml:"items"`
	Spiders SpidersConfig `yaml:"spiders"`
	Rules   RulesConfig   `yaml:"rules"`
	Assets  AssetsConfig  `yaml:"assets"`
	Input   InputConfig   `yaml:"input"`
}

// FieldConfig defines the playable rectangle.
type FieldConfig struct {
	Width      float64 `yaml:"width"`       // 0 = derive from display
	Height     float64 `yaml:"height"`      // 0 = derive from display
	CellWidth  float64 `yaml:"cell_width"`  // Field units per terminal column
	CellHeight float64 `yaml:"cell_height"` // Field units per terminal row
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Health int     `yaml:"health"`
}

// ItemsConfig defines the gold pickups.
type ItemsConfig struct {
	Count  int     `yaml:"count"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpidersConfig defines the hostile sprites and their seek-or-wander behavior.
type SpidersConfig struct {
	Count               int     `yaml:"count"`
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Speed               float64 `yaml:"speed"`
	DetectionRange      float64 `yaml:"detection_range"`
	AdvanceWhileSeeking bool    `yaml:"advance_while_seeking"`
}

// RulesConfig defines terminal conditions.
type RulesConfig struct {
	WinGold int `yaml:"win_gold"`
}

// AssetsConfig defines where sprites come from and how failures are treated.
type AssetsConfig struct {
	Dir           string            `yaml:"dir"`
	CountFailures bool              `yaml:"count_failures"`
	Sprites       map[string]string `yaml:"sprites"` // Asset name -> file path
}

// InputConfig defines keyboard behavior for the terminal frontend.
type InputConfig struct {
	KeyHoldMS int                 `yaml:"key_hold_ms"`
	Keys      map[string][]string `yaml:"keys"` // Direction name -> key names
}

// Resolve returns the field size for a display of cols x rows terminal cells.
// Explicit sizes in the config win over derived ones.
func (f FieldConfig) Resolve(cols, rows int) (w, h float64) {
	w, h = f.Width, f.Height
	if w <= 0 {
		w = float64(cols) * f.CellWidth
	}
	if h <= 0 {
		h = float64(rows) * f.CellHeight
	}
	return w, h
}

// Validate checks that every value is usable by the simulation.
func (c GameConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Field.Width >= 0 && c.Field.Height >= 0, "field size must not be negative"},
		{c.Field.CellWidth > 0 && c.Field.CellHeight > 0, "field cell size must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Player.Speed > 0, "player speed must be positive"},
		{c.Player.Health > 0, "player health must be positive"},
		{c.Items.Count >= 0, "item count must not be negative"},
		{c.Items.Width > 0 && c.Items.Height > 0, "item size must be positive"},
		{c.Spiders.Count >= 0, "spider count must not be negative"},
		{c.Spiders.Width > 0 && c.Spiders.Height > 0, "spider size must be positive"},
		{c.Spiders.Speed >= 0, "spider speed must not be negative"},
		{c.Spiders.DetectionRange >= 0, "spider detection range must not be negative"},
		{c.Rules.WinGold > 0, "win gold must be positive"},
		{c.Input.KeyHoldMS >= 0, "key hold must not be negative"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, check.what)
		}
	}
	return nil
}
