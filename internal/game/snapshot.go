package game

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Frame   uint64
	Session string
	Phase   Phase
	Outcome Outcome
	PlayerX float64
	PlayerY float64
	Health  int
	Gold    int
	Items   int
	Spiders int
}

// Snapshot returns the current game snapshot.
func (l *Loop) Snapshot() Snapshot {
	st := l.state
	return Snapshot{
		Frame:   st.Frame,
		Session: st.Session,
		Phase:   l.phase,
		Outcome: l.pending,
		PlayerX: st.Player.X,
		PlayerY: st.Player.Y,
		Health:  st.Player.Health,
		Gold:    st.Player.Gold,
		Items:   len(st.Items),
		Spiders: len(st.Spiders),
	}
}
