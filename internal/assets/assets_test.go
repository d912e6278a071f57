package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/goldrush/internal/core"
)

const coinYAML = `
name: gold
glyph: "$"
color: bright_yellow
rgb: "#f5c542"
art:
  - ".##."
  - "####"
`

func TestDecodeSprite(t *testing.T) {
	s, err := DecodeSprite("gold", []byte(coinYAML))
	if err != nil {
		t.Fatalf("DecodeSprite() error = %v", err)
	}

	if s.Rune() != '$' {
		t.Errorf("Rune() = %q, expected '$'", s.Rune())
	}
	if s.CoreColor() != core.ColorBrightYellow {
		t.Errorf("CoreColor() = %v, expected bright yellow", s.CoreColor())
	}
	if got, want := s.RGBA(), (color.RGBA{R: 0xf5, G: 0xc5, B: 0x42, A: 0xff}); got != want {
		t.Errorf("RGBA() = %v, expected %v", got, want)
	}
	if w, h := s.Size(); w != 4 || h != 2 {
		t.Errorf("Size() = (%d, %d), expected (4, 2)", w, h)
	}
}

func TestDecodeSpriteDefaultsName(t *testing.T) {
	s, err := DecodeSprite("coin", []byte("art: [\"#\"]\n"))
	if err != nil {
		t.Fatalf("DecodeSprite() error = %v", err)
	}
	if s.Name != "coin" {
		t.Errorf("Name = %q, expected %q", s.Name, "coin")
	}
	if s.Rune() != '#' {
		t.Errorf("Rune() = %q, expected default '#'", s.Rune())
	}
}

func TestDecodeSpriteInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "art: [unterminated"},
		{"no art or image", "name: x\n"},
		{"long glyph", "glyph: ab\nart: [\"#\"]\n"},
		{"unknown color", "color: chartreuse\nart: [\"#\"]\n"},
		{"bad rgb", "rgb: \"#12\"\nart: [\"#\"]\n"},
		{"non-hex rgb", "rgb: \"#zzzzzz\"\nart: [\"#\"]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSprite("x", []byte(tc.data)); err == nil {
				t.Error("DecodeSprite() should fail")
			}
		})
	}
}

func TestSpriteSampling(t *testing.T) {
	s := &Sprite{Art: []string{
		"#.",
		".#",
	}}

	tests := []struct {
		u, v float64
		want bool
	}{
		{0, 0, true},
		{0.75, 0, false},
		{0.25, 0.75, false},
		{0.99, 0.99, true},
		{1.5, 1.5, true}, // clamped to the last cell
	}
	for _, tc := range tests {
		if got := s.At(tc.u, tc.v); got != tc.want {
			t.Errorf("At(%v, %v) = %v, expected %v", tc.u, tc.v, got, tc.want)
		}
	}

	if !s.TileAt(2, 2) || s.TileAt(3, 2) || !s.TileAt(-1, -1) {
		t.Error("TileAt() should repeat the art in both directions")
	}
	if s.Filled(5, 0) || s.Filled(0, -1) {
		t.Error("Filled() should be false outside the art")
	}
}

func TestRasterize(t *testing.T) {
	s := &Sprite{RGB: "#ff0000", Art: []string{"#.", ".#"}}

	img := s.Rasterize()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, expected 2x2", b)
	}
	if _, _, _, a := img.At(1, 0).RGBA(); a != 0 {
		t.Error("transparent art should rasterize transparent")
	}
	if r, _, _, a := img.At(1, 1).RGBA(); r != 0xffff || a != 0xffff {
		t.Error("filled art should rasterize in the sprite color")
	}
}

func TestBuiltinSpritesDecode(t *testing.T) {
	for _, name := range []string{"background", "player", "gold", "spider"} {
		data, err := fs.ReadFile(Builtin(), name+".yaml")
		if err != nil {
			t.Fatalf("builtin %s missing: %v", name, err)
		}
		s, err := DecodeSprite(name, data)
		if err != nil {
			t.Errorf("builtin %s: %v", name, err)
			continue
		}
		if s.Name != name {
			t.Errorf("builtin %s has name %q", name, s.Name)
		}
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.Set(1, 1, color.RGBA{G: 0xff, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoaderReportsEveryAsset(t *testing.T) {
	fsys := fstest.MapFS{
		"gold.yaml":       {Data: []byte(coinYAML)},
		"broken.yaml":     {Data: []byte("art: [oops")},
		"img/player.yaml": {Data: []byte("name: player\nimage: player.png\n")},
		"img/player.png":  {Data: pngBytes(t)},
	}

	l := NewLoader(fsys)
	l.Add("gold", "gold.yaml")
	l.Add("broken", "broken.yaml")
	l.Add("missing", "missing.yaml")
	l.Add("player", "img/player.yaml")

	if l.Pending() != 4 || l.AllReported() {
		t.Fatalf("Pending() = %d before loading, expected 4", l.Pending())
	}

	got := make(map[string]error)
	for r := range l.Load(context.Background()) {
		if _, dup := got[r.Name]; dup {
			t.Errorf("asset %s reported twice", r.Name)
		}
		got[r.Name] = r.Err
	}

	if len(got) != 4 {
		t.Fatalf("got %d reports, expected 4", len(got))
	}
	if got["gold"] != nil || got["player"] != nil {
		t.Errorf("unexpected errors: gold=%v player=%v", got["gold"], got["player"])
	}
	if got["broken"] == nil {
		t.Error("broken asset should report an error")
	}
	if !errors.Is(got["missing"], ErrNotFound) || !errors.Is(got["missing"], fs.ErrNotExist) {
		t.Errorf("missing asset error = %v, expected ErrNotFound", got["missing"])
	}
	if !l.AllReported() {
		t.Error("AllReported() should be true after the channel closes")
	}

	if s := l.Sprite("broken"); s.Rune() != '?' {
		t.Errorf("failed asset should use the placeholder, got %q", s.Rune())
	}
	if s := l.Sprite("player"); s.Raster == nil || s.Raster.Bounds().Dx() != 3 {
		t.Error("player should carry its decoded PNG")
	}
	if s := l.Sprite("gold"); s.Rune() != '$' {
		t.Errorf("Sprite(gold).Rune() = %q, expected '$'", s.Rune())
	}
}

func TestLoaderCanceled(t *testing.T) {
	l := NewLoader(fstest.MapFS{"gold.yaml": {Data: []byte(coinYAML)}})
	l.Add("gold", "gold.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports := l.LoadAll(ctx)
	if len(reports) != 1 || !errors.Is(reports[0].Err, context.Canceled) {
		t.Errorf("LoadAll() = %v, expected one canceled report", reports)
	}
}

func TestLoaderAddReplacesAndOrders(t *testing.T) {
	l := NewLoader(Builtin())
	l.AddAll(map[string]string{"spider": "spider.yaml", "gold": "gold.yaml"})
	l.Add("gold", "player.yaml")

	names := l.Names()
	if len(names) != 2 || names[0] != "gold" || names[1] != "spider" {
		t.Errorf("Names() = %v, expected [gold spider]", names)
	}

	l.LoadAll(context.Background())
	if s := l.Sprite("gold"); s.Name != "player" {
		t.Errorf("re-added path should win, got sprite %q", s.Name)
	}
}

func TestOpenOverlaysBuiltin(t *testing.T) {
	dir := t.TempDir()
	custom := "name: gold\nglyph: \"o\"\nart: [\"#\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "gold.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(Open(dir))
	l.Add("gold", "gold.yaml")
	l.Add("spider", "spider.yaml")

	for _, r := range l.LoadAll(context.Background()) {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Name, r.Err)
		}
	}
	if l.Sprite("gold").Rune() != 'o' {
		t.Error("custom directory should override the builtin sprite")
	}
	if l.Sprite("spider").Rune() != '*' {
		t.Error("missing custom sprite should fall back to the builtin one")
	}
}
