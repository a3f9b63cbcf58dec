//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"fade-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	panel  *Panel
	width  int
	rows   []hudRow
	offset int
}

type hudRow struct {
	key       string
	label     string
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// keyboard shortcuts for the timing controls
var hudKeys = []struct {
	key       ebiten.Key
	control   string
	direction int
}{
	{ebiten.KeyBracketLeft, "interval", -1},
	{ebiten.KeyBracketRight, "interval", 1},
	{ebiten.KeyMinus, "fade", -1},
	{ebiten.KeyEqual, "fade", 1},
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{panel: NewPanel(sim), width: max(width, 0)}
	for i, ctrl := range h.panel.Controls() {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.rows = append(h.rows, hudRow{key: ctrl.Key, label: ctrl.Label, top: top, minusRect: minus, plusRect: plus})
	}
	return h
}

// Update refreshes the parameter snapshot and handles keyboard and mouse input.
// offsetX is the screen x coordinate of the panel's left edge.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offset = offsetX
	h.panel.Refresh()
	for _, k := range hudKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			h.panel.Adjust(k.control, k.direction)
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offset
	for _, row := range h.rows {
		switch {
		case image.Pt(px, my).In(row.minusRect):
			h.panel.Adjust(row.key, -1)
			return
		case image.Pt(px, my).In(row.plusRect):
			h.panel.Adjust(row.key, 1)
			return
		}
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	x0 := float32(h.offset)
	vector.DrawFilledRect(screen, x0, 0, float32(h.width), float32(screen.Bounds().Dy()), panelColor, false)

	face := basicfont.Face7x13
	text.Draw(screen, h.panel.Title(), face, h.offset+panelPadding, panelPadding+headerBaseline, titleColor)

	for _, row := range h.rows {
		y := row.top + labelBaseline
		text.Draw(screen, row.label, face, h.offset+panelPadding, y, labelColor)
		value := "--"
		if v, ok := h.panel.Value(row.key); ok {
			value = strconv.Itoa(v)
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(screen, value, face, h.offset+row.minusRect.Min.X-buttonGap-w, y, labelColor)
		h.drawButton(screen, row.minusRect, "-", h.panel.CanAdjust(row.key, -1))
		h.drawButton(screen, row.plusRect, "+", h.panel.CanAdjust(row.key, 1))
	}

	y := controlsTop + len(h.rows)*lineHeight + infoSpacing
	for _, line := range h.panel.Lines() {
		text.Draw(screen, line, face, h.offset+panelPadding, y, infoColor)
		y += infoLineHeight
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	r := rect.Add(image.Pt(h.offset, 0))
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	infoColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 12
	infoLineHeight = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
