package life

import "fade-life/internal/core"

// Events is the per-frame diff handed to renderers: cells born this frame
// and cells whose death fade advanced this frame. Both lists are valid until
// the next Step or Drain. Drain delivers and clears them, so each entry is
// seen at most once.
type Events struct {
	born  []core.CellEvent
	dying []core.CellEvent

	// fading holds dead cells whose timers are still running.
	fading []*Cell
}

// Born returns this frame's births. Callers must not retain the slice.
func (e *Events) Born() []core.CellEvent { return e.born }

// Dying returns this frame's fade updates. Callers must not retain the slice.
func (e *Events) Dying() []core.CellEvent { return e.dying }

// Drain passes births then fade updates to r and clears both lists.
func (e *Events) Drain(r core.CellRenderer) {
	if r != nil {
		for _, ev := range e.born {
			r.DrawCell(ev)
		}
		for _, ev := range e.dying {
			r.DrawCell(ev)
		}
	}
	e.clear()
}

func (e *Events) clear() {
	e.born = e.born[:0]
	e.dying = e.dying[:0]
}

// reset forgets everything, including running fades.
func (e *Events) reset() {
	e.clear()
	for i := range e.fading {
		e.fading[i] = nil
	}
	e.fading = e.fading[:0]
}

func (e *Events) emitBorn(c *Cell) {
	e.born = append(e.born, core.CellEvent{X: c.x, Y: c.y, Kind: core.EventBorn})
}

func (e *Events) startFade(c *Cell) {
	if c.fading {
		return
	}
	c.fading = true
	e.fading = append(e.fading, c)
}

// tickFades advances every running death timer by one frame and emits a
// dying event for each. A timer that reaches zero emits progress 1 and
// leaves the fading set. Cells reborn since their death are dropped silently.
func (e *Events) tickFades() {
	kept := e.fading[:0]
	for _, c := range e.fading {
		if c.alive || c.fadeRemaining <= 0 {
			c.fading = false
			continue
		}
		c.fadeRemaining--
		c.deathProgress = float64(c.fadeTotal-c.fadeRemaining) / float64(c.fadeTotal)
		e.dying = append(e.dying, core.CellEvent{X: c.x, Y: c.y, Kind: core.EventDying, Progress: c.deathProgress})
		if c.fadeRemaining == 0 {
			c.fading = false
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(e.fading); i++ {
		e.fading[i] = nil
	}
	e.fading = kept
}

// active returns the number of running fades.
func (e *Events) active() int { return len(e.fading) }
