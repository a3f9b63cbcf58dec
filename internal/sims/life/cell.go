package life

import "fade-life/internal/rule"

// Cell is one grid position. alive is the committed state that neighbor
// counting reads; pendingAlive is written during evaluation and only becomes
// visible at commit.
type Cell struct {
	alive        bool
	pendingAlive bool

	x, y      int
	neighbors [8]*Cell

	deathProgress float64
	fadeRemaining int
	fadeTotal     int

	queued   bool
	fading   bool
	sentinel bool
}

// sentinel stands in for every out-of-bounds neighbor of a bounded grid. It
// is always dead and its own neighbors are itself.
var sentinel = newSentinel()

func newSentinel() *Cell {
	c := &Cell{sentinel: true}
	for i := range c.neighbors {
		c.neighbors[i] = c
	}
	return c
}

// Alive reports the committed state.
func (c *Cell) Alive() bool { return c.alive }

// Pos returns the cell's pattern coordinates.
func (c *Cell) Pos() (int, int) { return c.x, c.y }

// DeathProgress is 0 for live cells and rises to 1 while a dead cell fades.
func (c *Cell) DeathProgress() float64 { return c.deathProgress }

// Fading reports whether the cell's death timer is still running.
func (c *Cell) Fading() bool { return c.fading }

func (c *Cell) setAlive(v bool) {
	if c.sentinel {
		return
	}
	c.alive = v
	c.pendingAlive = v
}

func countAliveNeighbors(c *Cell) int {
	n := 0
	for _, nb := range c.neighbors {
		if nb.alive {
			n++
		}
	}
	return n
}

// evaluate computes the pending state of c and queues it when it differs
// from the committed one. A cell is queued at most once per pass.
func evaluate(c *Cell, r rule.Rule, changes *changeSet) {
	if c.sentinel {
		return
	}
	c.pendingAlive = r.Next(c.alive, countAliveNeighbors(c))
	if c.pendingAlive != c.alive && !c.queued {
		c.queued = true
		changes.add(c)
	}
}

// commit applies the pending state and reports the population delta.
func commit(c *Cell, fadeFrames int, ev *Events) int {
	c.queued = false
	if c.sentinel || c.pendingAlive == c.alive {
		return 0
	}
	c.alive = c.pendingAlive
	c.deathProgress = 0
	if c.alive {
		c.fadeRemaining = 0
		c.fadeTotal = 0
		ev.emitBorn(c)
		return 1
	}
	c.fadeRemaining = fadeFrames
	c.fadeTotal = fadeFrames
	ev.startFade(c)
	return -1
}

// changeSet collects the cells whose state changes at the end of a pass.
// It is owned by the scheduler and reused across passes.
type changeSet struct {
	cells []*Cell
}

func (s *changeSet) add(c *Cell) { s.cells = append(s.cells, c) }

func (s *changeSet) len() int { return len(s.cells) }

func (s *changeSet) clear() {
	for i := range s.cells {
		s.cells[i] = nil
	}
	s.cells = s.cells[:0]
}
