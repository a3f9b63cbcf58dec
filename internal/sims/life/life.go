// Package life implements a Life-like cellular automaton whose generations
// are computed a slice at a time across frames, with fading afterimages for
// cells that die.
package life

import (
	"fade-life/internal/core"
	"fade-life/internal/rle"
	"fade-life/internal/rule"
	rngcore "fade-life/pkg/core"
)

// Life is the engine. It is driven by a host that calls Step then Draw once
// per frame and is not safe for concurrent use.
type Life struct {
	cfg     Config
	pattern *rle.Pattern

	grid    *Grid
	sched   scheduler
	events  Events
	display *core.ByteGrid

	// seeded holds the initial live cells, announced as births on the
	// first frame after construction.
	seeded     []*Cell
	population int
	frame      int
}

// New returns an engine seeded with a random soup drawn from cfg.Seed and
// cfg.Density.
func New(cfg Config) *Life {
	l := &Life{cfg: cfg}
	l.rebuild(cfg.Seed)
	return l
}

// NewFromPattern returns an engine sized and ruled by p. Timing, margin and
// wrap come from cfg.
func NewFromPattern(p rle.Pattern, cfg Config) *Life {
	l := &Life{cfg: cfg}
	l.Load(p)
	return l
}

// Load replaces the grid with one built from p. Any partially evaluated
// generation is discarded.
func (l *Life) Load(p rle.Pattern) {
	l.pattern = &p
	l.cfg.Width = p.Width
	l.cfg.Height = p.Height
	l.cfg.Rule = p.Rule
	if p.Name != "" {
		l.cfg.Name = p.Name
	}
	l.rebuild(l.cfg.Seed)
}

func (l *Life) rebuild(seed int64) {
	l.grid = NewGrid(l.cfg.Width, l.cfg.Height, l.cfg.Margin, l.cfg.Wrap)
	if l.sched.interval == 0 {
		l.sched = newScheduler(l.cfg.Interval)
	}
	l.sched.reset()
	l.events.reset()
	l.display = core.NewByteGrid(l.cfg.Width, l.cfg.Height)
	l.seeded = l.seeded[:0]
	l.population = 0
	l.frame = 0

	if l.pattern != nil {
		for _, pt := range l.pattern.Cells {
			l.seed(pt.X, pt.Y)
		}
		return
	}
	rng := rngcore.NewRNG(seed)
	for _, c := range l.grid.order {
		if rng.Chance(l.cfg.Density) {
			l.seed(c.x, c.y)
		}
	}
}

func (l *Life) seed(x, y int) {
	if x < 0 || y < 0 || x >= l.cfg.Width || y >= l.cfg.Height {
		return
	}
	c := l.grid.Get(x, y)
	if c.alive {
		return
	}
	c.setAlive(true)
	l.display.Set(x, y, DisplayAlive)
	l.seeded = append(l.seeded, c)
	l.population++
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.cfg.Name }

// Size returns the visible grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Cells exposes the display buffer: DisplayAlive for live cells, a value
// between DisplayFadeMax and 0 for fading cells, 0 otherwise.
func (l *Life) Cells() []uint8 { return l.display.Cells() }

// Reset rebuilds the grid. A loaded pattern is placed again; otherwise a
// fresh soup is drawn from seed, or from the configured seed when seed is 0.
// Cells reflects the new live cells immediately; their birth events follow
// on the next Step.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.rebuild(seed)
}

// Step advances one frame: it evaluates the next slice of the current
// generation, commits the generation when the pass is complete, advances
// death fades and refreshes the display buffer. Events from the previous
// frame that were not drained are dropped.
func (l *Life) Step() {
	l.events.clear()
	l.frame++
	if len(l.seeded) > 0 {
		for _, c := range l.seeded {
			l.events.emitBorn(c)
		}
		l.seeded = l.seeded[:0]
	}
	if done, delta := l.sched.advance(l.grid, l.cfg.Rule, l.cfg.fadeFrames(), &l.events); done {
		l.population += delta
	}
	l.events.tickFades()
	l.updateDisplay()
}

// Draw hands this frame's births and fade updates to r, then clears them.
func (l *Life) Draw(r core.CellRenderer) {
	l.events.Drain(r)
}

// Events exposes the frame's diff for callers that read it directly.
func (l *Life) Events() *Events { return &l.events }

// Grid exposes the topology.
func (l *Life) Grid() *Grid { return l.grid }

// Rule returns the active rule.
func (l *Life) Rule() rule.Rule { return l.cfg.Rule }

// Config returns the active configuration.
func (l *Life) Config() Config { return l.cfg }

// Generation returns the number of committed generations.
func (l *Life) Generation() int { return l.sched.generation }

// Frame returns the number of Step calls since the last rebuild.
func (l *Life) Frame() int { return l.frame }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.population }

// PassProgress returns the evaluated fraction of the pending generation.
func (l *Life) PassProgress() float64 { return l.sched.progress(l.grid.Len()) }

// Fading returns the number of cells whose death fade is running.
func (l *Life) Fading() int { return l.events.active() }

// Alive reports whether the cell at (x, y) is alive.
func (l *Life) Alive(x, y int) bool { return l.grid.Get(x, y).alive }

// NeighborCount returns the number of live neighbors of (x, y).
func (l *Life) NeighborCount(x, y int) int { return countAliveNeighbors(l.grid.Get(x, y)) }

// AliveCells lists live cells in row-major order.
func (l *Life) AliveCells() []rle.Point {
	var out []rle.Point
	for _, c := range l.grid.order {
		if c.alive {
			out = append(out, rle.Point{X: c.x, Y: c.y})
		}
	}
	return out
}

// Snapshot captures the committed state as a pattern.
func (l *Life) Snapshot() rle.Pattern {
	p := rle.Pattern{
		Width:  l.cfg.Width,
		Height: l.cfg.Height,
		Rule:   l.cfg.Rule,
		Cells:  l.AliveCells(),
	}
	if l.pattern != nil {
		p.Name = l.pattern.Name
	}
	return p
}

func init() {
	for _, name := range rule.PresetNames() {
		preset, _ := rule.Preset(name)
		core.Register(name, func(cfg map[string]string) core.Sim {
			c := FromMap(cfg)
			c.Name = name
			if _, ok := cfg["rule"]; !ok {
				c.Rule = preset
			}
			return New(c)
		})
	}
}
