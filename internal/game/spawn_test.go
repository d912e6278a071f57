package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/goldrush/internal/config"
)

func TestRandomPositionWithinBounds(t *testing.T) {
	sp := newTestSpawner(1)

	for i := 0; i < 1000; i++ {
		x, y := sp.RandomPosition(30, 30)
		if x < 0 || x >= testField.W-30 {
			t.Fatalf("x = %v, expected in [0, %v)", x, testField.W-30)
		}
		if y < 0 || y >= testField.H-30 {
			t.Fatalf("y = %v, expected in [0, %v)", y, testField.H-30)
		}
	}
}

func TestRandomPositionTooLarge(t *testing.T) {
	sp := NewSpawner(Field{W: 25, H: 100}, rand.New(rand.NewSource(2)))

	for i := 0; i < 100; i++ {
		x, y := sp.RandomPosition(40, 40)
		if x != 0 {
			t.Fatalf("x = %v, expected 0 when the box is wider than the field", x)
		}
		if y < 0 || y >= 60 {
			t.Fatalf("y = %v, expected in [0, 60)", y)
		}
	}
}

func TestNewItemsAndSpiders(t *testing.T) {
	cfg := config.DefaultGameConfig()
	sp := newTestSpawner(3)

	items := sp.NewItems(cfg.Items)
	if len(items) != 10 {
		t.Fatalf("len(items) = %d, expected 10", len(items))
	}
	for _, it := range items {
		if it.Type != ItemGold || it.W != 20 || it.H != 20 {
			t.Errorf("item = %+v, expected 20x20 gold", it)
		}
		checkInField(t, "item", it.Rect(), testField)
	}

	spiders := sp.NewSpiders(cfg.Spiders)
	if len(spiders) != 15 {
		t.Fatalf("len(spiders) = %d, expected 15", len(spiders))
	}
	for _, s := range spiders {
		if s.W != 30 || s.Speed != 2 {
			t.Errorf("spider = %+v, expected 30x30 with speed 2", s)
		}
		if s.DX < -1 || s.DX >= 1 || s.DY < -1 || s.DY >= 1 {
			t.Errorf("spider direction (%v, %v) outside [-1, 1)", s.DX, s.DY)
		}
		checkInField(t, "spider", s.Rect(), testField)
	}
}

func TestNewPlayerAtCenter(t *testing.T) {
	cfg := config.DefaultGameConfig()

	p := newTestSpawner(4).NewPlayer(cfg.Player)
	if p.X != 400 || p.Y != 300 {
		t.Errorf("player at (%v, %v), expected (400, 300)", p.X, p.Y)
	}
	if p.Health != 100 || p.Gold != 0 || p.Speed != 5 {
		t.Errorf("player = %+v, expected health 100, gold 0, speed 5", p)
	}

	// A narrow field pushes the center point back inside.
	small := NewSpawner(Field{W: 60, H: 60}, rand.New(rand.NewSource(5)))
	p = small.NewPlayer(cfg.Player)
	if p.X != 20 || p.Y != 20 {
		t.Errorf("player at (%v, %v), expected clamped to (20, 20)", p.X, p.Y)
	}
}
