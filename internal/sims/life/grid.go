package life

import (
	"fmt"

	"fade-life/internal/core"
)

// mooreOffsets lists the eight neighbor directions in link order.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid owns every cell and their precomputed neighbor links. Its size never
// changes; a new pattern needs a new Grid.
type Grid struct {
	width, height int
	margin        int
	wrap          bool

	cols, rows int
	cells      []Cell

	// order is the evaluation order: construction order without margin cells.
	order []*Cell
}

// NewGrid allocates a width x height grid surrounded by margin dead cells on
// every side. With wrap set, neighbor links wrap around the full extended
// grid; otherwise links that leave it point at the shared sentinel.
func NewGrid(width, height, margin int, wrap bool) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: grid dimensions must be positive, got %dx%d", width, height))
	}
	if margin < 0 {
		panic(fmt.Sprintf("life: negative margin %d", margin))
	}
	g := &Grid{
		width:  width,
		height: height,
		margin: margin,
		wrap:   wrap,
		cols:   width + 2*margin,
		rows:   height + 2*margin,
	}
	g.cells = make([]Cell, g.cols*g.rows)
	g.order = make([]*Cell, 0, width*height)
	for ey := 0; ey < g.rows; ey++ {
		for ex := 0; ex < g.cols; ex++ {
			c := &g.cells[ey*g.cols+ex]
			c.x, c.y = ex-margin, ey-margin
			if !g.inMargin(ex, ey) {
				g.order = append(g.order, c)
			}
		}
	}
	g.link()
	return g
}

func (g *Grid) inMargin(ex, ey int) bool {
	m := g.margin
	return ex < m || ey < m || ex >= g.cols-m || ey >= g.rows-m
}

func (g *Grid) link() {
	for ey := 0; ey < g.rows; ey++ {
		for ex := 0; ex < g.cols; ex++ {
			c := &g.cells[ey*g.cols+ex]
			for i, off := range mooreOffsets {
				c.neighbors[i] = g.neighbor(ex+off[0], ey+off[1])
			}
		}
	}
}

func (g *Grid) neighbor(ex, ey int) *Cell {
	if g.wrap {
		ex, ey = core.WrapCoord(ex, g.cols), core.WrapCoord(ey, g.rows)
		return &g.cells[ey*g.cols+ex]
	}
	if ex < 0 || ey < 0 || ex >= g.cols || ey >= g.rows {
		return sentinel
	}
	return &g.cells[ey*g.cols+ex]
}

// Width returns the pattern area width, excluding the margin.
func (g *Grid) Width() int { return g.width }

// Height returns the pattern area height, excluding the margin.
func (g *Grid) Height() int { return g.height }

// Margin returns the dead border thickness.
func (g *Grid) Margin() int { return g.margin }

// Wrap reports whether the grid is toroidal.
func (g *Grid) Wrap() bool { return g.wrap }

// Len returns the number of cells that are evaluated each pass.
func (g *Grid) Len() int { return len(g.order) }

// Get returns the cell at pattern coordinates (x, y). Coordinates inside the
// margin are valid; anything beyond it resolves to the sentinel.
func (g *Grid) Get(x, y int) *Cell {
	ex, ey := x+g.margin, y+g.margin
	if ex < 0 || ey < 0 || ex >= g.cols || ey >= g.rows {
		return sentinel
	}
	return &g.cells[ey*g.cols+ex]
}

// IndexOf returns the pattern coordinates of c.
func (g *Grid) IndexOf(c *Cell) (int, int) { return c.x, c.y }

// IsSentinel reports whether c is the shared out-of-bounds cell.
func IsSentinel(c *Cell) bool { return c.sentinel }

// Neighbors returns the eight cells linked to c.
func (g *Grid) Neighbors(c *Cell) [8]*Cell { return c.neighbors }
