//go:build ebiten

package render

import (
	"fade-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an ebiten image in sync with a Canvas and draws it
// scaled onto the screen.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, pal Palette) *GridPainter {
	return &GridPainter{canvas: NewCanvas(w, h, pal), img: ebiten.NewImage(w, h)}
}

// DrawCell records a cell event; the image is uploaded on the next Blit.
func (gp *GridPainter) DrawCell(ev core.CellEvent) { gp.canvas.DrawCell(ev) }

// Repaint redraws everything from a display buffer.
func (gp *GridPainter) Repaint(cells []uint8, fadeMax uint8) { gp.canvas.Repaint(cells, fadeMax) }

// Blit uploads changed pixels and draws the grid at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if gp.canvas.takeChanged() {
		gp.img.WritePixels(gp.canvas.Pix())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
