package life

import "fade-life/internal/core"

const (
	// DisplayAlive is the display value of a live cell.
	DisplayAlive uint8 = 255
	// DisplayFadeMax is the display value of a cell that has just died.
	// Fading cells ramp down from here to 0.
	DisplayFadeMax uint8 = 127
)

// FadeLevel maps a death progress in [0, 1] to a display value.
func FadeLevel(progress float64) uint8 {
	if progress <= 0 {
		return DisplayFadeMax
	}
	if progress >= 1 {
		return 0
	}
	return uint8(float64(DisplayFadeMax)*(1-progress) + 0.5)
}

// displayWriter keeps the display buffer in step with the frame's events.
type displayWriter struct {
	buf *core.ByteGrid
}

func (d displayWriter) DrawCell(ev core.CellEvent) {
	switch ev.Kind {
	case core.EventBorn:
		d.buf.Set(ev.X, ev.Y, DisplayAlive)
	case core.EventDying:
		d.buf.Set(ev.X, ev.Y, FadeLevel(ev.Progress))
	}
}

func (l *Life) updateDisplay() {
	w := displayWriter{buf: l.display}
	for _, ev := range l.events.born {
		w.DrawCell(ev)
	}
	for _, ev := range l.events.dying {
		w.DrawCell(ev)
	}
}
