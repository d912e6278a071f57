package game

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/goldrush/internal/config"
	"github.com/vovakirdan/goldrush/internal/core"
	"github.com/vovakirdan/goldrush/internal/input"
)

// Renderer is the drawing surface the loop paints each frame on.
type Renderer interface {
	Clear()
	Draw(sprite SpriteID, r core.Rect)
}

// HUD receives the counters after every frame.
type HUD interface {
	SetHealth(health int)
	SetGold(gold int)
}

// Prompter shows a win or loss message. It must not block: done is called
// once the user has acknowledged the message.
type Prompter interface {
	Prompt(message string, done func())
}

// IntentSource provides the current movement intent.
type IntentSource interface {
	Intent() input.Intent
}

type nopRenderer struct{}

func (nopRenderer) Clear() {}

func (nopRenderer) Draw(SpriteID, core.Rect) {}

// Phase is the loop's state machine position.
type Phase int

const (
	PhaseLoading     Phase = iota // Waiting for assets to report
	PhaseRunning                  // Simulating every frame
	PhaseAwaitingAck              // Session ended, waiting for the prompt
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRunning:
		return "running"
	case PhaseAwaitingAck:
		return "awaiting_ack"
	default:
		return "unknown"
	}
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// LossMessage is shown when a spider catches the player.
const LossMessage = "You lost. A spider caught you."

// WinMessage returns the message shown after collecting enough gold.
func WinMessage(gold int) string {
	return fmt.Sprintf("You won! You collected %d pieces of gold.", gold)
}

// FrameResult is returned by Loop.Frame.
type FrameResult struct {
	Phase      Phase
	Outcome    Outcome // Set on the frame a session ends and while awaiting
	Collisions CollisionReport
}

// Options configures a Loop.
type Options struct {
	Config   config.GameConfig
	Field    Field
	Seed     int64
	Input    IntentSource
	Renderer Renderer    // nil draws nothing
	HUD      HUD
	Prompter Prompter    // nil acknowledges immediately
	Logger   *log.Logger // nil uses the default logger
	Required []SpriteID  // nil uses RequiredSprites
}

// Loop orchestrates frames: it waits for assets, simulates, renders,
// evaluates win/loss and resets sessions after acknowledgment.
type Loop struct {
	cfg      config.GameConfig
	rules    SpiderRules
	rng      *rand.Rand
	spawner  *Spawner
	state    *State
	phase    Phase
	pending  Outcome
	input    IntentSource
	renderer Renderer
	hud      HUD
	prompter Prompter
	logger   *log.Logger

	required map[SpriteID]bool // Sprite -> counted toward readiness
	reported int
	failed   int
}

// NewLoop creates a loop and its first session. The loop starts in
// PhaseLoading unless no sprites are required.
func NewLoop(opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	required := opts.Required
	if required == nil {
		required = RequiredSprites
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = nopRenderer{}
	}

	l := &Loop{
		cfg: opts.Config,
		rules: SpiderRules{
			DetectionRange:      opts.Config.Spiders.DetectionRange,
			AdvanceWhileSeeking: opts.Config.Spiders.AdvanceWhileSeeking,
		},
		rng:      rng,
		spawner:  NewSpawner(opts.Field, rng),
		input:    opts.Input,
		renderer: renderer,
		hud:      opts.HUD,
		prompter: opts.Prompter,
		logger:   logger,
		required: make(map[SpriteID]bool, len(required)),
	}
	for _, id := range required {
		l.required[id] = false
	}
	if len(l.required) == 0 {
		l.phase = PhaseRunning
	}

	l.Reset()
	return l
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Loading returns how many required sprites have been counted so far.
func (l *Loop) Loading() (reported, required int) {
	return l.reported, len(l.required)
}

// AssetReported records that a sprite finished loading, successfully or not.
// Failures are logged; whether they count toward readiness is configurable.
func (l *Loop) AssetReported(name string, err error) {
	id := SpriteID(name)
	counted, ok := l.required[id]
	if !ok {
		l.logger.Debug("ignoring report for unrequired asset", "asset", name)
		return
	}
	if counted {
		l.logger.Warn("asset reported more than once", "asset", name)
		return
	}

	if err != nil {
		l.failed++
		l.logger.Error("failed to load asset", "asset", name, "error", err)
		if !l.cfg.Assets.CountFailures {
			return
		}
	}

	l.required[id] = true
	l.reported++

	if l.phase == PhaseLoading && l.reported == len(l.required) {
		l.phase = PhaseRunning
		l.logger.Info("all assets loaded", "assets", l.reported, "failed", l.failed)
	}
}

// Reset replaces the player, items and spiders with a fresh session.
func (l *Loop) Reset() {
	session, err := uuid.NewRandomFromReader(l.rng)
	if err != nil {
		session = uuid.New()
	}

	l.state = NewState(l.cfg, l.spawner, session.String())
	l.pending = OutcomeNone
	l.logger.Debug("session started", "session", l.state.Session,
		"items", len(l.state.Items), "spiders", len(l.state.Spiders))
}

// Acknowledge completes a pending win/loss prompt: the session is reset and
// the loop resumes. It does nothing unless the loop is awaiting.
func (l *Loop) Acknowledge() {
	if l.phase != PhaseAwaitingAck {
		return
	}
	l.Reset()
	l.phase = PhaseRunning
}

// Frame runs one frame. While loading nothing happens; while awaiting an
// acknowledgment the frozen state is redrawn without simulating.
func (l *Loop) Frame() FrameResult {
	switch l.phase {
	case PhaseLoading:
		return FrameResult{Phase: PhaseLoading}
	case PhaseAwaitingAck:
		l.drawAll()
		l.pushHUD()
		return FrameResult{Phase: PhaseAwaitingAck, Outcome: l.pending}
	}

	st := l.state
	st.Frame++

	l.renderer.Clear()
	l.renderer.Draw(SpriteBackground, st.Field.Bounds())
	MovePlayer(&st.Player, l.intent(), st.Field)
	l.drawPlayer()
	l.drawItems()
	l.drawSpiders()
	report := ResolveCollisions(st, l.spawner)
	MoveSpiders(st.Spiders, st.Player, st.Field, l.rules)
	outcome := l.checkStatus()

	return FrameResult{Phase: l.phase, Outcome: outcome, Collisions: report}
}

// checkStatus pushes the counters and ends the session on win or loss.
func (l *Loop) checkStatus() Outcome {
	l.pushHUD()

	p := l.state.Player
	switch {
	case p.Gold >= l.cfg.Rules.WinGold:
		l.finish(OutcomeWin, WinMessage(l.cfg.Rules.WinGold))
		return OutcomeWin
	case p.Health <= 0:
		l.finish(OutcomeLoss, LossMessage)
		return OutcomeLoss
	}
	return OutcomeNone
}

// finish enters PhaseAwaitingAck and asks for acknowledgment.
func (l *Loop) finish(outcome Outcome, message string) {
	l.phase = PhaseAwaitingAck
	l.pending = outcome
	l.logger.Info("session ended", "session", l.state.Session, "outcome", outcome,
		"gold", l.state.Player.Gold, "frames", l.state.Frame)

	if l.prompter == nil {
		l.Acknowledge()
		return
	}
	l.prompter.Prompt(message, l.Acknowledge)
}

func (l *Loop) intent() input.Intent {
	if l.input == nil {
		return input.Intent{}
	}
	return l.input.Intent()
}

func (l *Loop) pushHUD() {
	if l.hud == nil {
		return
	}
	l.hud.SetHealth(l.state.Player.Health)
	l.hud.SetGold(l.state.Player.Gold)
}

func (l *Loop) drawAll() {
	l.renderer.Clear()
	l.renderer.Draw(SpriteBackground, l.state.Field.Bounds())
	l.drawPlayer()
	l.drawItems()
	l.drawSpiders()
}

func (l *Loop) drawPlayer() {
	l.renderer.Draw(SpritePlayer, l.state.Player.Rect())
}

func (l *Loop) drawItems() {
	for _, it := range l.state.Items {
		l.renderer.Draw(SpriteGold, it.Rect())
	}
}

func (l *Loop) drawSpiders() {
	for _, s := range l.state.Spiders {
		l.renderer.Draw(SpriteSpider, s.Rect())
	}
}
