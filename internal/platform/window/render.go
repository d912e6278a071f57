package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/goldrush/internal/assets"
	"github.com/vovakirdan/goldrush/internal/core"
	"github.com/vovakirdan/goldrush/internal/game"
)

// tileScale is the size in pixels of one art character in tiled sprites.
const tileScale = 4

var (
	fieldColor  = color.RGBA{R: 0x14, G: 0x1a, B: 0x12, A: 0xff}
	panelColor  = color.RGBA{A: 0xc0}
	borderColor = color.RGBA{R: 0xf5, G: 0xc5, B: 0x42, A: 0xff}
)

type drawOp struct {
	sprite game.SpriteID
	rect   core.Rect
}

// displayList implements game.Renderer. Ebiten separates Update from Draw,
// so frames record their draw calls and Draw replays the latest frame.
type displayList struct {
	ops []drawOp
}

func (d *displayList) Clear() {
	d.ops = d.ops[:0]
}

func (d *displayList) Draw(sprite game.SpriteID, r core.Rect) {
	d.ops = append(d.ops, drawOp{sprite: sprite, rect: r})
}

// imageCache turns loaded sprites into ebiten images on first use.
type imageCache struct {
	sprites *assets.Loader
	images  map[string]*ebiten.Image
}

func newImageCache(sprites *assets.Loader) *imageCache {
	return &imageCache{sprites: sprites, images: make(map[string]*ebiten.Image)}
}

// invalidate drops a cached image after its asset reloads.
func (c *imageCache) invalidate(name string) {
	if img, ok := c.images[name]; ok {
		img.Deallocate()
		delete(c.images, name)
	}
}

func (c *imageCache) get(name string) (*assets.Sprite, *ebiten.Image) {
	s := c.sprites.Sprite(name)
	img, ok := c.images[name]
	if !ok {
		img = ebiten.NewImageFromImage(s.Rasterize())
		c.images[name] = img
	}
	return s, img
}

// replay draws the recorded frame.
func (d *displayList) replay(screen *ebiten.Image, images *imageCache) {
	screen.Fill(fieldColor)

	for _, op := range d.ops {
		s, img := images.get(string(op.sprite))
		if s.Tile {
			drawTiled(screen, img, op.rect)
			continue
		}
		drawStretched(screen, img, op.rect)
	}
}

func drawStretched(screen, img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}

func drawTiled(screen, img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	tw, th := float64(b.Dx()*tileScale), float64(b.Dy()*tileScale)
	for y := r.Y; y < r.Bottom(); y += th {
		for x := r.X; x < r.Right(); x += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(tileScale, tileScale)
			op.GeoM.Translate(x, y)
			screen.DrawImage(img, op)
		}
	}
}

// hud implements game.HUD.
type hud struct {
	health  int
	gold    int
	winGold int
}

func (h *hud) SetHealth(health int) { h.health = health }

func (h *hud) SetGold(gold int) { h.gold = gold }

func (h *hud) draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, 220, 24, panelColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Health: %d  Gold: %d/%d", h.health, h.gold, h.winGold), 8, 4)
}

// prompter implements game.Prompter as a dismissable panel.
type prompter struct {
	message string
	done    func()
}

func (p *prompter) Prompt(message string, done func()) {
	p.message = message
	p.done = done
}

func (p *prompter) active() bool {
	return p.done != nil
}

func (p *prompter) dismiss() {
	done := p.done
	p.message, p.done = "", nil
	if done != nil {
		done()
	}
}

// debugCharW and debugCharH are the glyph size of ebitenutil.DebugPrint.
const (
	debugCharW = 6
	debugCharH = 16
)

func (p *prompter) draw(screen *ebiten.Image) {
	if !p.active() {
		return
	}

	const hint = "press enter or click"
	b := screen.Bounds()
	w := float32(max(len(p.message), len(hint))*debugCharW + 32)
	h := float32(debugCharH*3 + 24)
	x := (float32(b.Dx()) - w) / 2
	y := (float32(b.Dy()) - h) / 2

	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)
	ebitenutil.DebugPrintAt(screen, p.message, int(x)+16, int(y)+12)
	ebitenutil.DebugPrintAt(screen, hint, int(x)+16, int(y)+12+debugCharH*2)
}
