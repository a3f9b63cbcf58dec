package term

import (
	"context"
	"time"

	"fade-life/internal/core"
	"fade-life/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const statusHeight = 1

// Host drives a simulation on a tcell screen at a fixed tick rate.
type Host struct {
	screen   tcell.Screen
	sim      core.Sim
	renderer *Renderer
	panel    *ui.Panel
	clock    *core.FixedStep
	fadeMax  uint8

	seed     int64
	paused   bool
	tickOnce bool
	ticks    int
}

// NewHost wires sim to screen. fadeMax is the brightest display value a
// fading cell can have, used when repainting from the display buffer.
func NewHost(screen tcell.Screen, sim core.Sim, tps int, seed int64, fadeMax uint8) *Host {
	return &Host{
		screen:   screen,
		sim:      sim,
		renderer: NewRenderer(screen, statusHeight),
		panel:    ui.NewPanel(sim),
		clock:    core.NewFixedStep(tps),
		fadeMax:  fadeMax,
		seed:     seed,
	}
}

// Paused reports whether stepping is suspended.
func (h *Host) Paused() bool { return h.paused }

// Ticks returns how many frames the host has stepped.
func (h *Host) Ticks() int { return h.ticks }

// HandleKey applies a key press and reports whether the host should quit.
func (h *Host) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		h.paused = !h.paused
	case 'n':
		h.tickOnce = true
	case 'r':
		h.reset(h.seed)
	case 's':
		h.reset(time.Now().UnixNano())
	case '[':
		h.panel.Adjust("interval", -1)
	case ']':
		h.panel.Adjust("interval", 1)
	case '-':
		h.panel.Adjust("fade", -1)
	case '=', '+':
		h.panel.Adjust("fade", 1)
	}
	return false
}

func (h *Host) reset(seed int64) {
	h.seed = seed
	h.sim.Reset(seed)
	h.Repaint()
}

// Tick advances the simulation one frame unless paused, then draws the
// frame's events and the status line.
func (h *Host) Tick() {
	if !h.paused || h.tickOnce {
		h.sim.Step()
		h.sim.Draw(h.renderer)
		h.tickOnce = false
		h.ticks++
	}
	h.drawStatus()
	h.screen.Show()
}

// Repaint redraws the whole grid from the display buffer, used after a
// reset and when the terminal is resized.
func (h *Host) Repaint() {
	h.screen.Clear()
	h.renderer.Repaint(h.sim.Size(), h.sim.Cells(), h.fadeMax)
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawStatus() {
	w, _ := h.screen.Size()
	h.panel.Refresh()
	interval, _ := h.panel.Value("interval")
	fade, _ := h.panel.Value("fade")
	state := "running"
	if h.paused {
		state = "paused"
	}
	h.renderer.Status(w, "%s  %s  frame %d  interval %d  fade %d  [q]uit [space] [n]ext [r]eset [ ] - =",
		h.sim.Name(), state, h.ticks, interval, fade)
}

// Run processes terminal events and ticks until the user quits or ctx is
// cancelled. The caller owns the screen's Init and Fini.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(max(h.clock.Interval()/2, time.Millisecond))
	defer ticker.Stop()

	h.Repaint()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if h.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				h.screen.Sync()
				h.Repaint()
			}
		case <-ticker.C:
			if h.clock.ShouldStep() {
				h.Tick()
			}
		}
	}
}
