package render

import (
	"image/color"
	"testing"

	"fade-life/internal/core"
	"fade-life/internal/rle"
	"fade-life/internal/sims/life"
)

func TestCanvasDrawCell(t *testing.T) {
	pal := DefaultPalette()
	c := NewCanvas(3, 2, pal)
	c.DrawCell(core.CellEvent{X: 1, Y: 1, Kind: core.EventBorn})
	if got := c.At(1, 1); got != toRGBA(pal.Alive) {
		t.Fatalf("born pixel = %v", got)
	}
	c.DrawCell(core.CellEvent{X: 1, Y: 1, Kind: core.EventDying, Progress: 1})
	if got := c.At(1, 1); got != toRGBA(pal.Dead) {
		t.Fatalf("fully faded pixel = %v", got)
	}
	c.DrawCell(core.CellEvent{X: 5, Y: 0, Kind: core.EventBorn})
}

func TestDyingColorMovesTowardDead(t *testing.T) {
	pal := Palette{Alive: color.White, Dead: color.Black}
	prev := 256
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		col := pal.dyingColor(p)
		if int(col.R) >= prev {
			t.Fatalf("red channel did not decrease at progress %f: %d", p, col.R)
		}
		prev = int(col.R)
	}
	if prev != 0 {
		t.Fatalf("final color red = %d, want 0", prev)
	}
}

// An incrementally painted canvas must match the engine's live cells once
// every fade has finished.
func TestCanvasFollowsEngineEvents(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Interval = 3
	cfg.FadeFrames = 2
	cfg.Wrap = true
	p := rle.Parse("x = 12, y = 12\n$2bo$3bo$b3o5$7b3o!")
	eng := life.NewFromPattern(p, cfg)

	pal := DefaultPalette()
	canvas := NewCanvas(12, 12, pal)
	for frame := 0; frame < 200; frame++ {
		eng.Step()
		eng.Draw(canvas)
	}
	for i := 0; eng.Fading() > 0; i++ {
		if i > 10 {
			t.Fatal("fades never finished")
		}
		eng.Step()
		eng.Draw(canvas)
	}
	alive, dead := toRGBA(pal.Alive), toRGBA(pal.Dead)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			want := dead
			if eng.Alive(x, y) {
				want = alive
			}
			if got := canvas.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRepaintFromDisplay(t *testing.T) {
	pal := DefaultPalette()
	c := NewCanvas(3, 1, pal)
	c.Repaint([]uint8{life.DisplayAlive, life.FadeLevel(0.5), 0}, life.DisplayFadeMax)
	if c.At(0, 0) != toRGBA(pal.Alive) || c.At(2, 0) != toRGBA(pal.Dead) {
		t.Fatal("alive/dead pixels wrong after repaint")
	}
	mid := c.At(1, 0)
	if mid == toRGBA(pal.Alive) || mid == toRGBA(pal.Dead) {
		t.Fatalf("fading pixel = %v, want a blend", mid)
	}
	if !c.takeChanged() || c.takeChanged() {
		t.Fatal("changed flag not tracked")
	}
}
