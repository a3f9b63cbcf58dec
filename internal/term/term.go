// Package term draws cell events onto a tcell screen, two columns per cell.
package term

import (
	"fmt"

	"fade-life/internal/core"

	"github.com/gdamore/tcell/v2"
)

var fadeRunes = []rune{'█', '▓', '▒', '░'}

// Renderer paints cells at an offset on a tcell screen. The screen keeps its
// contents between frames, so only changed cells are drawn.
type Renderer struct {
	screen  tcell.Screen
	originY int
	alive   tcell.Style
	fade    tcell.Style
	dead    tcell.Style
}

// NewRenderer returns a renderer drawing below a status line of height
// originY.
func NewRenderer(screen tcell.Screen, originY int) *Renderer {
	return &Renderer{
		screen:  screen,
		originY: originY,
		alive:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		fade:    tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Background(tcell.ColorBlack),
		dead:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack),
	}
}

// DrawCell paints one event.
func (r *Renderer) DrawCell(ev core.CellEvent) {
	switch ev.Kind {
	case core.EventBorn:
		r.put(ev.X, ev.Y, fadeRunes[0], r.alive)
	case core.EventDying:
		if ev.Progress >= 1 {
			r.put(ev.X, ev.Y, ' ', r.dead)
			return
		}
		r.put(ev.X, ev.Y, FadeRune(ev.Progress), r.fade)
	}
}

// FadeRune picks a lighter shade as progress approaches 1.
func FadeRune(progress float64) rune {
	if progress < 0 {
		progress = 0
	}
	i := 1 + int(progress*float64(len(fadeRunes)-1))
	if i >= len(fadeRunes) {
		i = len(fadeRunes) - 1
	}
	return fadeRunes[i]
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	sx, sy := 2*x, y+r.originY
	r.screen.SetContent(sx, sy, ch, nil, style)
	r.screen.SetContent(sx+1, sy, ch, nil, style)
}

// Repaint redraws a whole display buffer, used after a reset.
func (r *Renderer) Repaint(size core.Size, cells []uint8, fadeMax uint8) {
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := cells[y*size.W+x]
			switch {
			case v > fadeMax:
				r.put(x, y, fadeRunes[0], r.alive)
			case v == 0:
				r.put(x, y, ' ', r.dead)
			default:
				r.put(x, y, FadeRune(1-float64(v)/float64(fadeMax)), r.fade)
			}
		}
	}
}

// Status writes a line of text at the top of the screen, padded to width.
func (r *Renderer) Status(width int, format string, args ...any) {
	line := []rune(fmt.Sprintf(format, args...))
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(line) {
			ch = line[x]
		}
		r.screen.SetContent(x, 0, ch, nil, style)
	}
}
