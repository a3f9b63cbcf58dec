package rle

import (
	"sort"
	"strconv"
	"strings"
)

const lineLimit = 70

// Encode writes p in RLE form. Cells outside the declared size are still
// written; the header then understates the extent, as with hand-edited files.
func Encode(p Pattern) string {
	var b strings.Builder
	if p.Name != "" {
		b.WriteString("#N " + p.Name + "\n")
	}
	for _, c := range p.Comments {
		b.WriteString("#C " + c + "\n")
	}
	w, h := p.Width, p.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	b.WriteString("x = " + strconv.Itoa(w) + ", y = " + strconv.Itoa(h) + ", rule = " + p.Rule.String() + "\n")

	lw := &lineWriter{b: &b}
	for _, tok := range bodyTokens(p.Cells) {
		lw.write(tok)
	}
	lw.write("!")
	b.WriteByte('\n')
	return b.String()
}

// bodyTokens turns cells into run tokens, row by row. Trailing dead runs are
// dropped and consecutive row breaks are merged into one counted '$'.
func bodyTokens(cells []Point) []string {
	if len(cells) == 0 {
		return nil
	}
	sorted := append([]Point(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var toks []string
	y, x := 0, 0
	for i := 0; i < len(sorted); {
		c := sorted[i]
		if c.Y > y {
			toks = append(toks, runToken(c.Y-y, '$'))
			y, x = c.Y, 0
		}
		if c.X > x {
			toks = append(toks, runToken(c.X-x, 'b'))
			x = c.X
		}
		n := 0
		for i < len(sorted) && sorted[i].Y == y && sorted[i].X == x+n {
			n++
			i++
		}
		// duplicates of the last cell
		for i < len(sorted) && sorted[i].Y == y && sorted[i].X < x+n {
			i++
		}
		toks = append(toks, runToken(n, 'o'))
		x += n
	}
	return toks
}

func runToken(n int, cmd byte) string {
	if n == 1 {
		return string(cmd)
	}
	return strconv.Itoa(n) + string(cmd)
}

type lineWriter struct {
	b   *strings.Builder
	col int
}

func (w *lineWriter) write(tok string) {
	if w.col > 0 && w.col+len(tok) > lineLimit {
		w.b.WriteByte('\n')
		w.col = 0
	}
	w.b.WriteString(tok)
	w.col += len(tok)
}
