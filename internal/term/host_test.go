package term

import (
	"context"
	"testing"
	"time"

	"fade-life/internal/rle"
	"fade-life/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

func blinkerHost(t *testing.T) (*Host, tcell.SimulationScreen, *life.Life) {
	t.Helper()
	s := newScreen(t)
	cfg := life.DefaultConfig()
	cfg.Wrap = false
	cfg.Interval = 1
	cfg.FadeFrames = 1
	sim := life.NewFromPattern(rle.Parse("x = 5, y = 5\n5b$2bo$2bo$2bo!"), cfg)
	return NewHost(s, sim, 60, 1, life.DisplayFadeMax), s, sim
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHostTickDrawsGeneration(t *testing.T) {
	h, s, sim := blinkerHost(t)
	h.Tick()

	if sim.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", sim.Generation())
	}
	for x := 1; x <= 3; x++ {
		if ch, _, _, _ := s.GetContent(2*x, 2+statusHeight); ch != '█' {
			t.Fatalf("cell (%d,2) = %q, want live block", x, ch)
		}
	}
	if ch, _, _, _ := s.GetContent(4, 1+statusHeight); ch != ' ' {
		t.Fatalf("cell (2,1) = %q, want cleared", ch)
	}
}

func TestHostPauseAndSingleStep(t *testing.T) {
	h, _, _ := blinkerHost(t)

	h.HandleKey(runeKey(' '))
	if !h.Paused() {
		t.Fatal("space should pause")
	}
	h.Tick()
	if h.Ticks() != 0 {
		t.Fatalf("paused host stepped %d times", h.Ticks())
	}
	h.HandleKey(runeKey('n'))
	h.Tick()
	h.Tick()
	if h.Ticks() != 1 {
		t.Fatalf("single step ran %d frames, want 1", h.Ticks())
	}
}

func TestHostResetWhilePausedRepaints(t *testing.T) {
	h, s, _ := blinkerHost(t)
	h.Tick()
	h.HandleKey(runeKey(' '))
	h.HandleKey(runeKey('r'))

	for y := 1; y <= 3; y++ {
		if ch, _, _, _ := s.GetContent(4, y+statusHeight); ch != '█' {
			t.Fatalf("cell (2,%d) = %q, want live block right after reset", y, ch)
		}
	}
	if ch, _, _, _ := s.GetContent(2, 2+statusHeight); ch != ' ' {
		t.Fatalf("cell (1,2) = %q, want cleared", ch)
	}
	if h.Ticks() != 1 {
		t.Fatalf("reset stepped the paused host: ticks = %d", h.Ticks())
	}
}

func TestHostKeys(t *testing.T) {
	h, _, sim := blinkerHost(t)

	if !h.HandleKey(runeKey('q')) {
		t.Fatal("q should quit")
	}
	if !h.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
	h.HandleKey(runeKey(']'))
	h.HandleKey(runeKey(']'))
	if got := sim.Config().Interval; got != 3 {
		t.Fatalf("interval = %d, want 3", got)
	}
	h.HandleKey(runeKey('='))
	if got := sim.Config().FadeFrames; got != 2 {
		t.Fatalf("fade = %d, want 2", got)
	}
}

func TestHostRunStopsOnContext(t *testing.T) {
	h, _, _ := blinkerHost(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := h.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Run returned %v, want deadline exceeded", err)
	}
	if h.Ticks() == 0 {
		t.Fatal("expected the host to tick while running")
	}
}
