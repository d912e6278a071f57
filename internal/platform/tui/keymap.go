package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goldrush/internal/config"
	"github.com/vovakirdan/goldrush/internal/input"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Directions [4]key.Binding // Indexed by input.Direction
	Ack        key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Directions[input.DirUp], k.Directions[input.DirDown],
		k.Directions[input.DirLeft], k.Directions[input.DirRight], k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Directions[:],
		{k.Ack, k.Help, k.Quit},
	}
}

// NewKeyMap builds the bindings from the input configuration. Direction
// names are parsed with input.ParseDirection; directions missing from the
// configuration fall back to the arrow key of that name.
func NewKeyMap(cfg config.InputConfig) (KeyMap, error) {
	var bound [4][]string
	for name, keys := range cfg.Keys {
		d, err := input.ParseDirection(name)
		if err != nil {
			return KeyMap{}, fmt.Errorf("tui: key bindings: %w", err)
		}
		bound[d] = append(bound[d], keys...)
	}

	var km KeyMap
	for _, d := range input.Directions {
		keys := bound[d]
		if len(keys) == 0 {
			keys = []string{d.String()}
		}
		km.Directions[d] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), d.String()),
		)
	}

	km.Ack = key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "dismiss message"),
	)
	km.Help = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	)
	km.Quit = key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
	return km, nil
}

// Direction returns the direction bound to msg, if any.
func (k KeyMap) Direction(msg tea.KeyMsg) (input.Direction, bool) {
	for _, d := range input.Directions {
		if key.Matches(msg, k.Directions[d]) {
			return d, true
		}
	}
	return 0, false
}
