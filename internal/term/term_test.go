package term

import (
	"testing"

	"fade-life/internal/core"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	return s
}

func TestDrawCellUsesTwoColumns(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s, 1)
	r.DrawCell(core.CellEvent{X: 3, Y: 2, Kind: core.EventBorn})
	for _, x := range []int{6, 7} {
		if ch, _, _, _ := s.GetContent(x, 3); ch != '█' {
			t.Fatalf("column %d = %q, want full block", x, ch)
		}
	}
	r.DrawCell(core.CellEvent{X: 3, Y: 2, Kind: core.EventDying, Progress: 1})
	if ch, _, _, _ := s.GetContent(6, 3); ch != ' ' {
		t.Fatalf("faded cell = %q, want blank", ch)
	}
}

func TestFadeRuneLightens(t *testing.T) {
	if FadeRune(0) != '▓' || FadeRune(0.99) != '░' {
		t.Fatalf("FadeRune(0)=%q FadeRune(0.99)=%q", FadeRune(0), FadeRune(0.99))
	}
}

func TestStatusPadsLine(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s, 1)
	r.Status(10, "gen %d", 7)
	if ch, _, _, _ := s.GetContent(4, 0); ch != '7' {
		t.Fatalf("status char = %q", ch)
	}
	if ch, _, _, _ := s.GetContent(9, 0); ch != ' ' {
		t.Fatalf("padding char = %q", ch)
	}
}
