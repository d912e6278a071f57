package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goldrush/internal/assets"
	"github.com/vovakirdan/goldrush/internal/config"
	"github.com/vovakirdan/goldrush/internal/core"
	"github.com/vovakirdan/goldrush/internal/game"
	"github.com/vovakirdan/goldrush/internal/input"
)

// Screen rows outside the field: the HUD line above and the help line below.
const (
	hudRow     = 0
	fieldTop   = 1
	chromeRows = 2
)

// Options configures the terminal frontend.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig // ScreenW/ScreenH are the terminal size in cells
	Assets  *assets.Loader
	Logger  *log.Logger
}

// Model is the Bubble Tea model running one game of Gold Rush.
type Model struct {
	loop     *game.Loop
	ctrl     *input.Controller
	keys     KeyMap
	help     help.Model
	hold     *keyHold
	screen   *core.Screen
	renderer *cellRenderer
	hud      *hud
	prompt   *overlayPrompter
	reports  <-chan assets.Report
	config   core.RuntimeConfig
	field    game.Field
	logger   *log.Logger
	now      func() time.Time
	quitting bool
}

// NewModel creates the model and starts loading the sprites. Loading stops
// when ctx is canceled.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	keys, err := NewKeyMap(opts.Config.Input)
	if err != nil {
		return Model{}, err
	}

	loader := opts.Assets
	if loader == nil {
		loader = assets.NewLoader(assets.Open(opts.Config.Assets.Dir))
		loader.AddAll(opts.Config.Assets.Sprites)
	}

	fc := opts.Config.Field
	w, h := fc.Resolve(cfg.ScreenW, max(cfg.ScreenH-chromeRows, 1))
	field := game.Field{W: w, H: h}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, fieldTop+1))
	ctrl := input.NewController(field.W, field.H)
	hd := &hud{winGold: opts.Config.Rules.WinGold}
	prompt := &overlayPrompter{}
	renderer := newCellRenderer(screen, loader, field, fc.CellWidth, fc.CellHeight, fieldTop)

	loop := game.NewLoop(game.Options{
		Config:   opts.Config,
		Field:    field,
		Seed:     cfg.Seed,
		Input:    ctrl,
		Renderer: renderer,
		HUD:      hd,
		Prompter: prompt,
		Logger:   logger,
	})

	logger.Info("terminal frontend started",
		"cols", cfg.ScreenW, "rows", cfg.ScreenH,
		"field_w", field.W, "field_h", field.H,
		"seed", cfg.Seed, "fps", cfg.TickRate)

	return Model{
		loop:     loop,
		ctrl:     ctrl,
		keys:     keys,
		help:     help.New(),
		hold:     &keyHold{hold: time.Duration(opts.Config.Input.KeyHoldMS) * time.Millisecond},
		screen:   screen,
		renderer: renderer,
		hud:      hd,
		prompt:   prompt,
		reports:  loader.Load(ctx),
		config:   cfg,
		field:    field,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Init starts the tick loop and the asset report pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForReport(m.reports))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, fieldTop+1))
		m.help.Width = msg.Width
		return m, nil

	case assetReportMsg:
		m.loop.AssetReported(msg.Name, msg.Err)
		return m, waitForReport(m.reports)

	case assetsDoneMsg:
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Ack):
		if m.prompt.active() {
			m.acknowledge()
		}
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.ctrl.KeyDown(d)
		m.hold.press(d, m.now())
	}
	return m, nil
}

// handleMouse treats the left button as the single pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if m.prompt.active() {
			m.acknowledge()
			return m, nil
		}
		m.ctrl.PointerDown(m.renderer.pointer(msg.X, msg.Y))
	case tea.MouseActionMotion:
		m.ctrl.PointerMove(m.renderer.pointer(msg.X, msg.Y))
	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
	return m, nil
}

// acknowledge dismisses the prompt, which resets the session, and drops any
// input still held from the finished session.
func (m Model) acknowledge() {
	m.prompt.dismiss()
	m.ctrl.Reset()
	m.hold.releaseAll()
}

// handleTick releases expired keys and runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, d := range m.hold.expire(now) {
		m.ctrl.KeyUp(d)
	}

	res := m.loop.Frame()
	if res.Collisions.Pickups > 0 {
		m.logger.Debug("gold collected", "pickups", res.Collisions.Pickups, "gold", m.hud.gold)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := m.renderer.rows
	if m.loop.Phase() == game.PhaseLoading {
		m.renderer.Clear()
		reported, required := m.loop.Loading()
		m.screen.DrawTextCentered(fieldTop+rows/2, fmt.Sprintf("Loading sprites %d/%d", reported, required), core.ColorGray)
	}

	m.hud.draw(m.screen, hudRow, m.loop.Snapshot().Session)
	m.prompt.draw(m.screen, fieldTop, rows)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given options.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model, err := NewModel(ctx, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer steering
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	return err
}
