package core

import (
	"slices"
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)
	want := []uint8{0, 0, 0, 0, 0, 7}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want)
	}
	if g.Contains(3, 0) || g.Contains(0, -1) || !g.Contains(2, 1) {
		t.Fatal("Contains disagrees with the grid bounds")
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("dims = %dx%d, want 1x1", g.W, g.H)
	}
}

func TestWrapCoord(t *testing.T) {
	cases := []struct{ v, n, want int }{
		{-1, 4, 3},
		{4, 4, 0},
		{9, 4, 1},
		{-7, 3, 2},
		{2, 3, 2},
	}
	for _, c := range cases {
		if got := WrapCoord(c.v, c.n); got != c.want {
			t.Fatalf("WrapCoord(%d, %d) = %d, want %d", c.v, c.n, got, c.want)
		}
	}
}

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, expected no step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, expected no step")
	}
	clock = clock.Add(250 * time.Millisecond)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 3 {
		t.Fatalf("caught up %d ticks, want 3", steps)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, want 1/60s", fs.Interval())
	}
	fs.SetTPS(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", fs.Interval())
	}
}

type namedSim struct {
	Sim
	name string
}

func TestRegistryNamesSorted(t *testing.T) {
	saved := sims
	t.Cleanup(func() { sims = saved })
	sims = map[string]Factory{}

	for _, n := range []string{"zeta", "alpha", "mid"} {
		Register(n, func(map[string]string) Sim { return namedSim{name: n} })
	}
	Register("", func(map[string]string) Sim { return nil })
	Register("nil", nil)

	if got := Names(); !slices.Equal(got, []string{"alpha", "mid", "zeta"}) {
		t.Fatalf("Names() = %v", got)
	}
	if s := Sims()["mid"](nil).(namedSim); s.name != "mid" {
		t.Fatalf("factory returned %q", s.name)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := s.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}

func TestEventKindString(t *testing.T) {
	if EventBorn.String() != "born" || EventDying.String() != "dying" {
		t.Fatalf("got %q and %q", EventBorn, EventDying)
	}
}
