// Package window provides the Ebitengine frontend for Gold Rush: sprites are
// real images, and touch or the left mouse button act as the pointer.
package window

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/goldrush/internal/assets"
	"github.com/vovakirdan/goldrush/internal/config"
	"github.com/vovakirdan/goldrush/internal/core"
	"github.com/vovakirdan/goldrush/internal/game"
	"github.com/vovakirdan/goldrush/internal/input"
)

// Default field size when the configuration derives it from the display.
const (
	defaultWidth  = 800
	defaultHeight = 600
)

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("window: quit")

// Options configures the window frontend.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig // ScreenW/ScreenH are the window size in pixels
	Assets  *assets.Loader
	Logger  *log.Logger
}

// Game implements ebiten.Game.
type Game struct {
	loop    *game.Loop
	ctrl    *input.Controller
	keys    bindings
	list    *displayList
	images  *imageCache
	hud     *hud
	prompt  *prompter
	reports <-chan assets.Report
	field   game.Field
	logger  *log.Logger

	touchIDs []ebiten.TouchID
	touch    ebiten.TouchID
	touching bool
	mouse    bool
}

// New creates the game and starts loading the sprites.
func New(ctx context.Context, opts Options) (*Game, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	keys, err := newBindings(opts.Config.Input)
	if err != nil {
		return nil, err
	}

	loader := opts.Assets
	if loader == nil {
		loader = assets.NewLoader(assets.Open(opts.Config.Assets.Dir))
		loader.AddAll(opts.Config.Assets.Sprites)
	}

	field := game.Field{W: opts.Config.Field.Width, H: opts.Config.Field.Height}
	if field.W <= 0 {
		field.W = defaultWidth
	}
	if field.H <= 0 {
		field.H = defaultHeight
	}

	g := &Game{
		ctrl:    input.NewController(field.W, field.H),
		keys:    keys,
		list:    &displayList{},
		images:  newImageCache(loader),
		hud:     &hud{winGold: opts.Config.Rules.WinGold},
		prompt:  &prompter{},
		reports: loader.Load(ctx),
		field:   field,
		logger:  logger,
	}
	g.loop = game.NewLoop(game.Options{
		Config:   opts.Config,
		Field:    field,
		Seed:     rt.Seed,
		Input:    g.ctrl,
		Renderer: g.list,
		HUD:      g.hud,
		Prompter: g.prompt,
		Logger:   logger,
	})

	logger.Info("window frontend started", "field_w", field.W, "field_h", field.H, "seed", rt.Seed)
	return g, nil
}

// Update polls input and runs one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}

	g.drainReports()

	if g.prompt.active() {
		if g.ackPressed() {
			g.prompt.dismiss()
			g.ctrl.Reset()
			g.touching, g.mouse = false, false
		}
	} else {
		g.pollKeys()
		g.pollTouch()
		g.pollMouse()
	}

	g.loop.Frame()
	return nil
}

// drainReports forwards every asset report that is ready without blocking.
func (g *Game) drainReports() {
	for g.reports != nil {
		select {
		case r, ok := <-g.reports:
			if !ok {
				g.reports = nil
				g.logger.Debug("asset loading finished")
				return
			}
			g.images.invalidate(r.Name)
			g.loop.AssetReported(r.Name, r.Err)
		default:
			return
		}
	}
}

func (g *Game) ackPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	return len(g.touchIDs) > 0
}

func (g *Game) pollKeys() {
	for _, d := range input.Directions {
		if g.keys.pressed(d) {
			g.ctrl.KeyDown(d)
		} else {
			g.ctrl.KeyUp(d)
		}
	}
}

// pollTouch follows the first finger down until it lifts.
func (g *Game) pollTouch() {
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touch) {
			g.touching = false
			g.ctrl.PointerUp()
			return
		}
		x, y := ebiten.TouchPosition(g.touch)
		g.ctrl.PointerMove(pointerAt(x, y))
		return
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) == 0 {
		return
	}
	g.touch, g.touching = g.touchIDs[0], true
	x, y := ebiten.TouchPosition(g.touch)
	g.ctrl.PointerDown(pointerAt(x, y))
}

// pollMouse treats the left button as a pointer while no finger is down.
func (g *Game) pollMouse() {
	if g.touching {
		return
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouse = true
		g.ctrl.PointerDown(pointerAt(ebiten.CursorPosition()))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouse = false
		g.ctrl.PointerUp()
	case g.mouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctrl.PointerMove(pointerAt(ebiten.CursorPosition()))
	}
}

// pointerAt builds a pointer sample. Layout makes the screen exactly the
// field, so positions are already in field units.
func pointerAt(x, y int) input.Pointer {
	return input.Pointer{ClientX: float64(x), ClientY: float64(y), ScaleX: 1, ScaleY: 1}
}

// Draw replays the latest frame and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.list.replay(screen, g.images)
	if g.loop.Phase() == game.PhaseLoading {
		reported, required := g.loop.Loading()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Loading sprites %d/%d", reported, required), 8, 8)
		return
	}
	g.hud.draw(screen)
	g.prompt.draw(screen)
}

// Layout fixes the logical screen to the field size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.field.W), int(g.field.H)
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, err := New(ctx, opts)
	if err != nil {
		return err
	}

	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	if w <= 0 || h <= 0 {
		w, h = int(g.field.W), int(g.field.H)
	}
	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Gold Rush")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
