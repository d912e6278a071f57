package game

// CollisionReport summarizes what one collision pass did.
type CollisionReport struct {
	Pickups   int  // Gold items collected this frame
	SpiderHit bool // Whether any spider touched the player
}

// ResolveCollisions applies pickups and spider contact to the state.
// Collected items are respawned in place, so the item count never changes.
// Any spider contact is fatal.
func ResolveCollisions(st *State, sp *Spawner) CollisionReport {
	var report CollisionReport
	player := st.Player.Rect()

	for i := range st.Items {
		it := &st.Items[i]
		if !player.Intersects(it.Rect()) {
			continue
		}
		if it.Type == ItemGold {
			st.Player.Gold++
			report.Pickups++
		}
		sp.Respawn(it)
	}

	for _, s := range st.Spiders {
		if player.Intersects(s.Rect()) {
			st.Player.Health = 0
			report.SpiderHit = true
		}
	}

	return report
}
