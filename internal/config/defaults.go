package config

import (
	_ "embed"
)

//go:embed defaults/goldrush.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default Gold Rush configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Player: PlayerConfig{
			Width:  40,
			Height: 40,
			Speed:  5,
			Health: 100,
		},
		Items: ItemsConfig{
			Count:  10,
			Width:  20,
			Height: 20,
		},
		Spiders: SpidersConfig{
			Count:          15,
			Width:          30,
			Height:         30,
			Speed:          2,
			DetectionRange: 150,
		},
		Rules: RulesConfig{
			WinGold: 10,
		},
		Assets: AssetsConfig{
			CountFailures: true,
			Sprites: map[string]string{
				"background": "background.yaml",
				"player":     "player.yaml",
				"gold":       "gold.yaml",
				"spider":     "spider.yaml",
			},
		},
		Input: InputConfig{
			KeyHoldMS: 200,
			Keys: map[string][]string{
				"up":    {"up", "w", "k"},
				"down":  {"down", "s", "j"},
				"left":  {"left", "a", "h"},
				"right": {"right", "d", "l"},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
