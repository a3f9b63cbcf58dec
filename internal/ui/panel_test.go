package ui

import (
	"strings"
	"testing"

	"fade-life/internal/core"
	"fade-life/internal/sims/life"
)

func newLife(interval int) *life.Life {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Interval = interval
	return life.New(cfg)
}

func TestPanelAdjustInterval(t *testing.T) {
	sim := newLife(4)
	p := NewPanel(sim)

	if got, ok := p.Value("interval"); !ok || got != 4 {
		t.Fatalf("interval = %d (ok=%v), want 4", got, ok)
	}
	if !p.Adjust("interval", 1) {
		t.Fatal("expected interval increase to be accepted")
	}
	if got := sim.Config().Interval; got != 5 {
		t.Fatalf("sim interval = %d, want 5", got)
	}
	if !p.Adjust("interval", -1) || !p.Adjust("interval", -1) {
		t.Fatal("expected interval decreases to be accepted")
	}
	if got, _ := p.Value("interval"); got != 3 {
		t.Fatalf("panel interval = %d, want 3", got)
	}
}

func TestPanelClampsAtBounds(t *testing.T) {
	sim := newLife(1)
	p := NewPanel(sim)

	if p.CanAdjust("interval", -1) {
		t.Fatal("interval already at minimum should not decrease")
	}
	if p.Adjust("interval", -1) {
		t.Fatal("adjust below minimum reported a change")
	}
	if p.Adjust("missing", 1) {
		t.Fatal("unknown control reported a change")
	}
}

func TestPanelLinesAndTitle(t *testing.T) {
	p := NewPanel(newLife(2))
	if p.Title() != "Life Controls" {
		t.Fatalf("title = %q", p.Title())
	}
	joined := strings.Join(p.Lines(), "\n")
	for _, want := range []string{"[Timing]", "Frames per generation: 2", "Rule: B3/S23"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("lines missing %q:\n%s", want, joined)
		}
	}
}

type bareSim struct{}

func (bareSim) Name() string           { return "" }
func (bareSim) Size() core.Size        { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64)            {}
func (bareSim) Step()                  {}
func (bareSim) Draw(core.CellRenderer) {}
func (bareSim) Cells() []uint8         { return []uint8{0} }

func TestPanelWithoutParameters(t *testing.T) {
	p := NewPanel(bareSim{})
	if p.Title() != "Controls" {
		t.Fatalf("title = %q", p.Title())
	}
	if len(p.Controls()) != 0 || len(p.Lines()) != 0 {
		t.Fatal("expected an empty panel")
	}
}
