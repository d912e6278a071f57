package game

import (
	"github.com/vovakirdan/goldrush/internal/config"
)

// State is everything that changes during a session. It is owned by the
// Loop and handed to the system functions explicitly.
type State struct {
	Field   Field
	Player  Player
	Items   []Item
	Spiders []Spider
	Session string // Session identifier, fresh on every reset
	Frame   uint64 // Frames simulated in this session
}

// NewState builds a fresh session: player at the center, items and spiders
// at random positions.
func NewState(cfg config.GameConfig, sp *Spawner, session string) *State {
	return &State{
		Field:   sp.field,
		Player:  sp.NewPlayer(cfg.Player),
		Items:   sp.NewItems(cfg.Items),
		Spiders: sp.NewSpiders(cfg.Spiders),
		Session: session,
	}
}
