package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/goldrush/internal/core"
	"github.com/vovakirdan/goldrush/internal/input"
)

// hud implements game.HUD and paints the status line.
type hud struct {
	health  int
	gold    int
	winGold int
}

func (h *hud) SetHealth(health int) { h.health = health }

func (h *hud) SetGold(gold int) { h.gold = gold }

func (h *hud) draw(s *core.Screen, y int, session string) {
	s.FillRect(0, y, s.Width(), 1, ' ', core.ColorDefault)

	healthColor := core.ColorBrightGreen
	if h.health <= 0 {
		healthColor = core.ColorBrightRed
	}
	health := fmt.Sprintf("Health: %d", h.health)
	gold := fmt.Sprintf("Gold: %d/%d", h.gold, h.winGold)

	s.DrawText(1, y, health, healthColor)
	s.DrawText(len(health)+4, y, gold, core.ColorBrightYellow)
	if len(session) >= 8 {
		id := "session " + session[:8]
		s.DrawText(s.Width()-len(id)-1, y, id, core.ColorGray)
	}
}

// overlayPrompter implements game.Prompter as a box drawn over the field.
// The done callback runs when the player dismisses it.
type overlayPrompter struct {
	message string
	done    func()
}

func (p *overlayPrompter) Prompt(message string, done func()) {
	p.message = message
	p.done = done
}

func (p *overlayPrompter) active() bool {
	return p.done != nil
}

// dismiss closes the prompt and runs its callback once.
func (p *overlayPrompter) dismiss() {
	done := p.done
	p.message, p.done = "", nil
	if done != nil {
		done()
	}
}

func (p *overlayPrompter) draw(s *core.Screen, top, rows int) {
	if !p.active() {
		return
	}

	const hint = "press enter or click"
	w := max(len(p.message), len(hint)) + 4
	h := 5
	x := (s.Width() - w) / 2
	y := top + (rows-h)/2

	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, core.ColorBrightWhite)
	s.DrawTextCentered(y+1, p.message, core.ColorBrightWhite)
	s.DrawTextCentered(y+3, hint, core.ColorGray)
}

// keyHold turns terminal key repeats into held keys. Terminals only report
// presses, so a direction counts as released once no repeat has arrived for
// the hold duration.
type keyHold struct {
	hold time.Duration
	last [4]time.Time
	down [4]bool
}

func (k *keyHold) press(d input.Direction, now time.Time) {
	k.last[d] = now
	k.down[d] = true
}

// expire returns the directions whose hold has run out and marks them up.
func (k *keyHold) expire(now time.Time) []input.Direction {
	var released []input.Direction
	for _, d := range input.Directions {
		if k.down[d] && now.Sub(k.last[d]) >= k.hold {
			k.down[d] = false
			released = append(released, d)
		}
	}
	return released
}

func (k *keyHold) releaseAll() {
	k.down = [4]bool{}
}
