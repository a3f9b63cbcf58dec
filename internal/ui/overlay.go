//go:build ebiten

package ui

import (
	"image/color"

	"fade-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type passProgressProvider interface {
	PassProgress() float64
}

type fadingProvider interface {
	Fading() int
}

const barHeight = 3

// Overlay draws optional debugging visuals on top of the grid. Key 1 toggles
// a bar tracking the in-flight generation pass; it turns blue while cells
// are still fading.
type Overlay struct {
	sim      core.Sim
	scale    int
	showPass bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1), showPass: true}
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPass = !o.showPass
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	w := float32(size.W * o.scale)
	h := float32(size.H * o.scale)
	if w <= 0 || h <= 0 {
		return
	}

	if !o.showPass {
		return
	}
	p, ok := o.sim.(passProgressProvider)
	if !ok {
		return
	}
	col := color.RGBA{R: 90, G: 200, B: 120, A: 200}
	if f, ok := o.sim.(fadingProvider); ok && f.Fading() > 0 {
		col = color.RGBA{R: 110, G: 150, B: 230, A: 200}
	}
	vector.DrawFilledRect(screen, 0, h-barHeight, w*float32(p.PassProgress()), barHeight, col, false)
}
