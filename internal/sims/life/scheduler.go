package life

import "fade-life/internal/rule"

// scheduler spreads the evaluation of one generation over several frames.
// Cells are visited in grid construction order, a fixed-size slice per
// frame. Nothing visible changes until the whole pass has been evaluated,
// so the slicing affects timing only.
type scheduler struct {
	interval int
	// requested holds an interval change until the next pass starts.
	requested int

	cursor     int
	changes    changeSet
	generation int
}

func newScheduler(interval int) scheduler {
	if interval < 1 {
		interval = 1
	}
	return scheduler{interval: interval}
}

// sliceSize is ceil(total / interval).
func (s *scheduler) sliceSize(total int) int {
	return (total + s.interval - 1) / s.interval
}

// setInterval schedules an interval change for the next pass boundary.
func (s *scheduler) setInterval(n int) {
	if n < 1 {
		n = 1
	}
	if s.cursor == 0 {
		s.interval = n
		s.requested = 0
		return
	}
	s.requested = n
}

// effectiveInterval returns the interval the next pass will use.
func (s *scheduler) effectiveInterval() int {
	if s.requested > 0 {
		return s.requested
	}
	return s.interval
}

// advance evaluates the next slice of cells. When the slice completes the
// pass, every queued cell is committed at once and done is true; delta is
// the resulting population change.
func (s *scheduler) advance(g *Grid, r rule.Rule, fadeFrames int, ev *Events) (done bool, delta int) {
	if s.cursor == 0 && s.requested > 0 {
		s.interval = s.requested
		s.requested = 0
	}
	total := len(g.order)
	end := min(s.cursor+s.sliceSize(total), total)
	for _, c := range g.order[s.cursor:end] {
		evaluate(c, r, &s.changes)
	}
	s.cursor = end
	if s.cursor < total {
		return false, 0
	}
	for _, c := range s.changes.cells {
		delta += commit(c, fadeFrames, ev)
	}
	s.changes.clear()
	s.cursor = 0
	s.generation++
	return true, delta
}

// progress is the evaluated fraction of the current pass.
func (s *scheduler) progress(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(s.cursor) / float64(total)
}

// reset drops any in-flight pass. Queued cells belong to a discarded grid,
// so their flags are not restored.
func (s *scheduler) reset() {
	s.cursor = 0
	s.changes.clear()
	s.generation = 0
	if s.requested > 0 {
		s.interval = s.requested
		s.requested = 0
	}
}
