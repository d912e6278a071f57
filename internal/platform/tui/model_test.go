package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goldrush/internal/assets"
	"github.com/vovakirdan/goldrush/internal/config"
	"github.com/vovakirdan/goldrush/internal/core"
	"github.com/vovakirdan/goldrush/internal/game"
	"github.com/vovakirdan/goldrush/internal/input"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := config.DefaultGameConfig()
	loader := assets.NewLoader(assets.Builtin())
	loader.AddAll(cfg.Assets.Sprites)

	m, err := NewModel(context.Background(), Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Assets:  loader,
		Logger:  log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	m.now = func() time.Time { return t0 }
	return m
}

// loadAll feeds every asset report through Update, as the report pump would.
func loadAll(t *testing.T, m Model) Model {
	t.Helper()
	for r := range m.reports {
		next, _ := m.Update(assetReportMsg(r))
		m = next.(Model)
	}
	if m.loop.Phase() != game.PhaseRunning {
		t.Fatalf("Phase() = %v after loading, expected running", m.loop.Phase())
	}
	return m
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewModelDerivesField(t *testing.T) {
	m := newTestModel(t)

	// 80 columns x 22 field rows at 10x20 units per cell.
	if m.field.W != 800 || m.field.H != 440 {
		t.Errorf("field = %vx%v, expected 800x440", m.field.W, m.field.H)
	}
	if m.renderer.cols != 80 || m.renderer.rows != 22 {
		t.Errorf("renderer = %dx%d cells, expected 80x22", m.renderer.cols, m.renderer.rows)
	}
}

func TestLoadingView(t *testing.T) {
	m := newTestModel(t)

	if view := m.View(); !strings.Contains(view, "Loading sprites 0/4") {
		t.Errorf("View() should show loading progress, got:\n%s", view)
	}

	m = loadAll(t, m)
	m = update(m, TickMsg(t0))

	view := m.View()
	if !strings.Contains(view, "Health: ") || !strings.Contains(view, "/10") {
		t.Errorf("View() should show the HUD, got:\n%s", view)
	}
}

func TestKeyHeldUntilRepeatsStop(t *testing.T) {
	m := loadAll(t, newTestModel(t))

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	if !m.ctrl.Intent().Has(input.DirRight) {
		t.Fatal("right should be held after a press")
	}

	m = update(m, TickMsg(t0.Add(100*time.Millisecond)))
	if !m.ctrl.Intent().Has(input.DirRight) {
		t.Error("right should still be held within the hold time")
	}

	m = update(m, TickMsg(t0.Add(200*time.Millisecond)))
	if m.ctrl.Intent().Any() {
		t.Errorf("Intent() = %v, expected released after the hold time", m.ctrl.Intent())
	}
}

func TestConfiguredKeys(t *testing.T) {
	m := loadAll(t, newTestModel(t))

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	intent := m.ctrl.Intent()
	if !intent.Has(input.DirUp) || !intent.Has(input.DirLeft) {
		t.Errorf("Intent() = %v, expected up and left", intent)
	}
}

func TestMouseSteers(t *testing.T) {
	m := loadAll(t, newTestModel(t))

	// Upper right of the field.
	m = update(m, tea.MouseMsg{X: 70, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.ctrl.Touch(); !got.Has(input.DirUp) || got.Has(input.DirDown) {
		t.Errorf("Touch() = %v, expected up", got)
	}

	// Drag to the lower left: up stays, left is added.
	m = update(m, tea.MouseMsg{X: 5, Y: 20, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if got := m.ctrl.Touch(); !got.Has(input.DirUp) || !got.Has(input.DirLeft) {
		t.Errorf("Touch() = %v, expected up and left", got)
	}

	m = update(m, tea.MouseMsg{X: 5, Y: 20, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease})
	if m.ctrl.Touch().Any() {
		t.Errorf("Touch() = %v, expected cleared on release", m.ctrl.Touch())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestOverlayPrompter(t *testing.T) {
	p := &overlayPrompter{}
	calls := 0

	p.Prompt("You won!", func() { calls++ })
	if !p.active() {
		t.Fatal("prompt should be active")
	}

	s := core.NewScreen(40, 10)
	p.draw(s, 1, 8)
	if !strings.Contains(s.String(), "You won!") {
		t.Errorf("overlay should show the message, got:\n%s", s.String())
	}

	p.dismiss()
	p.dismiss()
	if calls != 1 {
		t.Errorf("done called %d times, expected 1", calls)
	}
	if p.active() {
		t.Error("prompt should be inactive after dismissal")
	}
}

func TestKeyHoldExpire(t *testing.T) {
	k := &keyHold{hold: 200 * time.Millisecond}
	k.press(input.DirDown, t0)
	k.press(input.DirLeft, t0.Add(150*time.Millisecond))

	if got := k.expire(t0.Add(199 * time.Millisecond)); len(got) != 0 {
		t.Errorf("expire() = %v, expected nothing yet", got)
	}
	got := k.expire(t0.Add(250 * time.Millisecond))
	if len(got) != 1 || got[0] != input.DirDown {
		t.Errorf("expire() = %v, expected [down]", got)
	}
	if got := k.expire(t0.Add(time.Second)); len(got) != 1 || got[0] != input.DirLeft {
		t.Errorf("expire() = %v, expected [left]", got)
	}
}

func TestNewKeyMap(t *testing.T) {
	km, err := NewKeyMap(config.InputConfig{Keys: map[string][]string{"ArrowUp": {"i"}}})
	if err != nil {
		t.Fatalf("NewKeyMap() error = %v", err)
	}

	tests := []struct {
		msg  tea.KeyMsg
		want input.Direction
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}}, input.DirUp, true},
		{tea.KeyMsg{Type: tea.KeyDown}, input.DirDown, true},
		{tea.KeyMsg{Type: tea.KeyRight}, input.DirRight, true},
		{tea.KeyMsg{Type: tea.KeyUp}, 0, false}, // replaced by "i"
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 0, false},
	}
	for _, tc := range tests {
		d, ok := km.Direction(tc.msg)
		if ok != tc.ok || (ok && d != tc.want) {
			t.Errorf("Direction(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), d, ok, tc.want, tc.ok)
		}
	}

	_, err = NewKeyMap(config.InputConfig{Keys: map[string][]string{"sideways": {"x"}}})
	if !errors.Is(err, input.ErrUnknownDirection) {
		t.Errorf("NewKeyMap() error = %v, expected ErrUnknownDirection", err)
	}
}
