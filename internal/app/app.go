//go:build ebiten

package app

import (
	"time"

	"fade-life/internal/core"
	"fade-life/internal/render"
	"fade-life/internal/sims/life"
	"fade-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(sim, scale),
		scale:   scale,
		seed:    seed,
	}
	g.painter.Repaint(sim.Cells(), life.DisplayFadeMax)
	return g
}

// Reset reinitializes the simulation state with the provided seed and
// repaints the grid from the display buffer, so a paused game shows the new
// cells right away.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.painter.Repaint(g.sim.Cells(), life.DisplayFadeMax)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation. The frame's
// cell events are drained into the painter right away: ebiten may skip Draw
// calls, and undrained events would be lost on the next Step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update(g.sim.Size().W * g.scale)
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.sim.Draw(g.painter)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused (N steps one frame)", 4, 4)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
