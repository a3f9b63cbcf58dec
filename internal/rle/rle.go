// Package rle reads and writes run-length encoded Life patterns.
//
// The reader is lenient: malformed or missing header fields fall back to
// defaults and unknown body characters are skipped. ParseStrict reports those
// cases as errors instead.
package rle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fade-life/internal/rule"
)

const (
	// DefaultWidth is used when a pattern has no usable "x =" field.
	DefaultWidth = 100
	// DefaultHeight is used when a pattern has no usable "y =" field.
	DefaultHeight = 100

	commentMarker = '#'
)

// Point is an alive cell coordinate relative to the pattern origin.
type Point struct {
	X, Y int
}

// Header carries the fields found on a pattern's header line.
type Header struct {
	Width  int
	Height int
	Rule   rule.Rule

	// HasSize and HasRule record whether the fields were present rather
	// than defaulted.
	HasSize bool
	HasRule bool
}

// Pattern is a decoded RLE file.
type Pattern struct {
	Name     string
	Comments []string
	Width    int
	Height   int
	Rule     rule.Rule
	Cells    []Point
}

var (
	widthRe  = regexp.MustCompile(`(?i)\bx\s*=\s*(\d+)`)
	heightRe = regexp.MustCompile(`(?i)\by\s*=\s*(\d+)`)
	ruleRe   = regexp.MustCompile(`(?i)\brule\s*=\s*([a-z0-9/ \t]*[a-z0-9/])`)
)

// ParseHeader scans header lines for width, height and rule. Comment lines
// are skipped. It never fails: anything it cannot read keeps its default.
func ParseHeader(lines []string) Header {
	h := Header{Width: DefaultWidth, Height: DefaultHeight, Rule: rule.Conway()}
	var w, hh bool
	for _, line := range lines {
		if isComment(line) {
			continue
		}
		if m := widthRe.FindStringSubmatch(line); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v > 0 {
				h.Width = v
				w = true
			}
		}
		if m := heightRe.FindStringSubmatch(line); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v > 0 {
				h.Height = v
				hh = true
			}
		}
		if m := ruleRe.FindStringSubmatch(line); m != nil {
			if r, ok := rule.Parse(m[1]); ok {
				h.Rule = r
				h.HasRule = true
			}
		}
	}
	h.HasSize = w && hh
	return h
}

// ParseBody decodes the run-length body into alive cell coordinates.
func ParseBody(text string) []Point {
	cells, _ := scanBody(text, false)
	return cells
}

// Parse decodes a complete RLE document.
func Parse(text string) Pattern {
	sec := split(text)
	h := ParseHeader(sec.header)
	return Pattern{
		Name:     sec.name,
		Comments: sec.comments,
		Width:    h.Width,
		Height:   h.Height,
		Rule:     h.Rule,
		Cells:    ParseBody(sec.body),
	}
}

type sections struct {
	name     string
	comments []string
	header   []string
	body     string
}

// split sorts lines into comments, header lines and body. Header lines are
// the lines holding an '=' that appear before the first body line.
func split(text string) sections {
	var sec sections
	var body strings.Builder
	inBody := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isComment(trimmed) {
			sec.addComment(trimmed)
			continue
		}
		if !inBody && strings.Contains(trimmed, "=") {
			sec.header = append(sec.header, trimmed)
			continue
		}
		inBody = true
		body.WriteString(trimmed)
	}
	sec.body = body.String()
	return sec
}

func (s *sections) addComment(line string) {
	text := strings.TrimSpace(line[1:])
	if len(text) > 0 && (text[0] == 'N' || text[0] == 'n') && (len(text) == 1 || text[1] == ' ') {
		s.name = strings.TrimSpace(text[1:])
		return
	}
	if len(text) > 1 && text[1] == ' ' {
		text = strings.TrimSpace(text[2:])
	}
	s.comments = append(s.comments, text)
}

func isComment(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) > 0 && line[0] == commentMarker
}

const (
	// MaxRun is the longest run length the reader honours. Longer counts
	// are clamped to it; ParseStrict rejects them.
	MaxRun = 1 << 16
	// MaxCells bounds the number of alive cells a body may produce. The
	// lenient reader stops emitting at the limit; ParseStrict rejects it.
	MaxCells = 1 << 22
)

// bodyError describes why a strict scan rejected the body.
type bodyError struct {
	offset int
	msg    string
}

// scanBody walks the token stream. Run counts saturate at MaxRun and the
// cell list stops growing at MaxCells. In strict mode the first unknown
// character or exceeded limit stops the scan and is reported.
func scanBody(text string, strict bool) ([]Point, *bodyError) {
	var (
		cells []Point
		x, y  int
		count int
		long  bool
	)
	run := func() int {
		n := count
		count = 0
		if n == 0 {
			return 1
		}
		return n
	}
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if long && (c < '0' || c > '9') {
			long = false
			if strict {
				return cells, &bodyError{offset: i, msg: fmt.Sprintf("run length exceeds %d", MaxRun)}
			}
		}
		switch {
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
			if count > MaxRun {
				count = MaxRun
				long = true
			}
		case c == 'o':
			n := run()
			if len(cells)+n > MaxCells {
				if strict {
					return cells, &bodyError{offset: i, msg: fmt.Sprintf("more than %d alive cells", MaxCells)}
				}
				n = MaxCells - len(cells)
			}
			for k := 0; k < n; k++ {
				cells = append(cells, Point{X: x, Y: y})
				x++
			}
		case c == 'b':
			x += run()
		case c == '$':
			y += run()
			x = 0
		case c == '!':
			return cells, nil
		case c == 'x' || c == 'y' || c == commentMarker:
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			count = 0
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		default:
			if strict {
				return cells, &bodyError{offset: i, msg: fmt.Sprintf("unexpected %q", c)}
			}
		}
	}
	return cells, nil
}
