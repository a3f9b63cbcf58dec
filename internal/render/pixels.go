package render

import (
	"image/color"

	"fade-life/internal/core"
)

// Palette holds the colors used for live and dead cells. Fading cells are
// blended between the two.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	// Fade is the color a cell takes right after dying. Nil means a 50%
	// blend of Alive and Dead.
	Fade color.Color
}

// DefaultPalette is white on black with a blue afterimage.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.White,
		Dead:  color.Black,
		Fade:  color.RGBA{R: 60, G: 110, B: 220, A: 255},
	}
}

func (p Palette) fadeStart() color.RGBA {
	if p.Fade != nil {
		return toRGBA(p.Fade)
	}
	return blend(toRGBA(p.Alive), toRGBA(p.Dead), 0.5)
}

// dyingColor is the color of a cell at the given death progress.
func (p Palette) dyingColor(progress float64) color.RGBA {
	return blend(p.fadeStart(), toRGBA(p.Dead), progress)
}

// Canvas is an RGBA pixel buffer with one pixel per cell, updated
// incrementally from cell events.
type Canvas struct {
	w, h    int
	pal     Palette
	buf     []byte
	alive   color.RGBA
	dead    color.RGBA
	changed bool
}

// NewCanvas allocates a canvas cleared to the dead color.
func NewCanvas(w, h int, pal Palette) *Canvas {
	c := &Canvas{w: w, h: h, pal: pal, buf: make([]byte, 4*w*h)}
	c.alive = toRGBA(pal.Alive)
	c.dead = toRGBA(pal.Dead)
	c.Clear()
	return c
}

// Pix exposes the RGBA bytes in row-major order.
func (c *Canvas) Pix() []byte { return c.buf }

// Clear paints every cell dead.
func (c *Canvas) Clear() {
	for i := 0; i < c.w*c.h; i++ {
		setPixel(c.buf, i, c.dead)
	}
	c.changed = true
}

// DrawCell paints a single cell event.
func (c *Canvas) DrawCell(ev core.CellEvent) {
	if ev.X < 0 || ev.Y < 0 || ev.X >= c.w || ev.Y >= c.h {
		return
	}
	idx := ev.Y*c.w + ev.X
	switch ev.Kind {
	case core.EventBorn:
		setPixel(c.buf, idx, c.alive)
	case core.EventDying:
		setPixel(c.buf, idx, c.pal.dyingColor(ev.Progress))
	default:
		return
	}
	c.changed = true
}

// Repaint redraws the canvas from a display buffer where 255 is alive and
// lower values are fading cells.
func (c *Canvas) Repaint(cells []uint8, fadeMax uint8) {
	if len(cells) != c.w*c.h {
		return
	}
	fillDisplayRGBA(c.buf, cells, c.pal, fadeMax)
	c.changed = true
}

// At returns the color of the cell at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	base := 4 * (y*c.w + x)
	return color.RGBA{R: c.buf[base], G: c.buf[base+1], B: c.buf[base+2], A: c.buf[base+3]}
}

// takeChanged reports whether pixels changed since the last call.
func (c *Canvas) takeChanged() bool {
	ch := c.changed
	c.changed = false
	return ch
}

// fillDisplayRGBA converts display values into RGBA pixels in buf. Values
// above fadeMax are alive, 0 is dead, anything between is a fading cell.
func fillDisplayRGBA(buf []byte, cells []uint8, pal Palette, fadeMax uint8) {
	alive := toRGBA(pal.Alive)
	dead := toRGBA(pal.Dead)
	for i, v := range cells {
		switch {
		case v > fadeMax:
			setPixel(buf, i, alive)
		case v == 0 || fadeMax == 0:
			setPixel(buf, i, dead)
		default:
			setPixel(buf, i, pal.dyingColor(1-float64(v)/float64(fadeMax)))
		}
	}
}

func setPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 255}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func blend(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*inv + float64(b)*w + 0.5) }
	return color.RGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}
