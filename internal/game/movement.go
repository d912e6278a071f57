package game

import (
	"math"

	"github.com/vovakirdan/goldrush/internal/input"
)

// SpiderRules parameterizes the seek-or-wander behavior.
type SpiderRules struct {
	DetectionRange      float64
	AdvanceWhileSeeking bool // Seeking spiders also move toward the player
}

// MovePlayer applies the intent to the player and keeps it inside the field.
// Diagonal movement is capped to the player's speed.
func MovePlayer(p *Player, intent input.Intent, field Field) {
	var dx, dy float64

	if intent.Has(input.DirUp) {
		dy -= p.Speed
	}
	if intent.Has(input.DirDown) {
		dy += p.Speed
	}
	if intent.Has(input.DirLeft) {
		dx -= p.Speed
	}
	if intent.Has(input.DirRight) {
		dx += p.Speed
	}

	if length := math.Hypot(dx, dy); length > p.Speed {
		dx = dx / length * p.Speed
		dy = dy / length * p.Speed
	}

	p.X, p.Y = field.clampInto(p.X+dx, p.Y+dy, p.W, p.H)
}

// MoveSpiders steps every spider relative to the target player.
func MoveSpiders(spiders []Spider, target Player, field Field, rules SpiderRules) {
	for i := range spiders {
		MoveSpider(&spiders[i], target, field, rules)
	}
}

// MoveSpider steps a single spider. Within detection range it turns to face
// the player; outside it wanders along its direction and bounces off the
// field edges. The spider is clamped into the field either way.
func MoveSpider(s *Spider, target Player, field Field, rules SpiderRules) {
	toX := target.X - s.X
	toY := target.Y - s.Y
	distance := math.Hypot(toX, toY)

	if distance < rules.DetectionRange {
		// At zero distance there is no heading; keep the previous one.
		if distance > 0 {
			angle := math.Atan2(toY, toX)
			s.DX = math.Cos(angle)
			s.DY = math.Sin(angle)
		}
		if rules.AdvanceWhileSeeking {
			s.X += s.DX * s.Speed
			s.Y += s.DY * s.Speed
		}
	} else {
		s.X += s.DX * s.Speed
		s.Y += s.DY * s.Speed

		if s.X <= 0 || s.X >= field.W-s.W {
			s.DX = -s.DX
		}
		if s.Y <= 0 || s.Y >= field.H-s.H {
			s.DY = -s.DY
		}
	}

	s.X, s.Y = field.clampInto(s.X, s.Y, s.W, s.H)
}
