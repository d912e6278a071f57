package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goldrush/internal/config"
	"github.com/vovakirdan/goldrush/internal/core"
	"github.com/vovakirdan/goldrush/internal/input"
)

var testField = Field{W: 800, H: 600}

type drawCall struct {
	sprite SpriteID
	rect   core.Rect
}

// recordRenderer keeps the draw calls of the latest frame.
type recordRenderer struct {
	clears int
	calls  []drawCall
}

func (r *recordRenderer) Clear() {
	r.clears++
	r.calls = r.calls[:0]
}

func (r *recordRenderer) Draw(sprite SpriteID, rect core.Rect) {
	r.calls = append(r.calls, drawCall{sprite: sprite, rect: rect})
}

func (r *recordRenderer) count(sprite SpriteID) int {
	n := 0
	for _, c := range r.calls {
		if c.sprite == sprite {
			n++
		}
	}
	return n
}

type recordHUD struct {
	health, gold int
	updates      int
}

func (h *recordHUD) SetHealth(health int) {
	h.health = health
	h.updates++
}

func (h *recordHUD) SetGold(gold int) {
	h.gold = gold
}

// manualPrompter holds the callback until the test acknowledges.
type manualPrompter struct {
	messages []string
	done     func()
}

func (p *manualPrompter) Prompt(message string, done func()) {
	p.messages = append(p.messages, message)
	p.done = done
}

func (p *manualPrompter) ack() {
	if p.done != nil {
		done := p.done
		p.done = nil
		done()
	}
}

// fixedIntent is an IntentSource with a settable intent.
type fixedIntent struct {
	intent input.Intent
}

func (f *fixedIntent) Intent() input.Intent {
	return f.intent
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

type testLoop struct {
	*Loop
	renderer *recordRenderer
	hud      *recordHUD
	prompter *manualPrompter
	input    *fixedIntent
}

// newTestLoop creates a loop on testField that is already running.
func newTestLoop(t *testing.T, cfg config.GameConfig, seed int64) *testLoop {
	t.Helper()

	tl := &testLoop{
		renderer: &recordRenderer{},
		hud:      &recordHUD{},
		prompter: &manualPrompter{},
		input:    &fixedIntent{},
	}
	tl.Loop = NewLoop(Options{
		Config:   cfg,
		Field:    testField,
		Seed:     seed,
		Input:    tl.input,
		Renderer: tl.renderer,
		HUD:      tl.hud,
		Prompter: tl.prompter,
		Logger:   quietLogger(),
	})
	for _, id := range RequiredSprites {
		tl.AssetReported(string(id), nil)
	}
	if tl.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v after loading, expected running", tl.Phase())
	}
	return tl
}

// isolatePlayer moves every item and spider to the top-left corner, far
// from the centered player, so a frame only does what the test sets up.
func (tl *testLoop) isolatePlayer() {
	st := tl.state
	for i := range st.Items {
		st.Items[i].X, st.Items[i].Y = 0, 0
	}
	for i := range st.Spiders {
		st.Spiders[i].X, st.Spiders[i].Y = 0, 0
		st.Spiders[i].DX, st.Spiders[i].DY = 0, 0
	}
}

func newTestSpawner(seed int64) *Spawner {
	return NewSpawner(testField, rand.New(rand.NewSource(seed)))
}

func checkInField(t *testing.T, what string, r core.Rect, field Field) {
	t.Helper()
	if r.X < 0 || r.Y < 0 || r.X > field.W-r.W || r.Y > field.H-r.H {
		t.Errorf("%s at (%v, %v) size %vx%v is outside field %vx%v", what, r.X, r.Y, r.W, r.H, field.W, field.H)
	}
}
