// Package rule implements Life-like birth/survival rules.
package rule

import (
	"fmt"
	"sort"
	"strings"
)

// MaxNeighbors is the size of a Moore neighborhood.
const MaxNeighbors = 8

// Rule holds the birth and survival tables indexed by alive neighbor count.
type Rule struct {
	Birth    [MaxNeighbors + 1]bool
	Survival [MaxNeighbors + 1]bool
}

// Conway returns B3/S23, the rule used when nothing else is specified.
func Conway() Rule {
	return FromCounts([]int{3}, []int{2, 3})
}

// FromCounts builds a rule from neighbor counts. A count outside 0..8 is a
// programming error and panics.
func FromCounts(birth, survival []int) Rule {
	var r Rule
	for _, n := range birth {
		mustCount(n)
		r.Birth[n] = true
	}
	for _, n := range survival {
		mustCount(n)
		r.Survival[n] = true
	}
	return r
}

func mustCount(n int) {
	if n < 0 || n > MaxNeighbors {
		panic(fmt.Sprintf("rule: neighbor count %d out of range 0..%d", n, MaxNeighbors))
	}
}

// Next returns the state a cell takes in the next generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survival[neighbors]
	}
	return r.Birth[neighbors]
}

// BirthCounts lists the neighbor counts that cause a birth.
func (r Rule) BirthCounts() []int { return counts(r.Birth) }

// SurvivalCounts lists the neighbor counts that keep a cell alive.
func (r Rule) SurvivalCounts() []int { return counts(r.Survival) }

func counts(table [MaxNeighbors + 1]bool) []int {
	var out []int
	for n, ok := range table {
		if ok {
			out = append(out, n)
		}
	}
	return out
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range r.BirthCounts() {
		b.WriteByte(byte('0' + n))
	}
	b.WriteString("/S")
	for _, n := range r.SurvivalCounts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// Parse reads a rule in B/S notation. Tokens may appear in either order and
// in any case ("s23/b3"), with spaces around the slash. The older "23/3"
// survival/birth form is accepted too. Digits above 8 are ignored. ok is
// false when s holds neither a birth nor a survival token, or when any token
// is something other than B or S followed by digits.
func Parse(s string) (Rule, bool) {
	var r Rule
	s = strings.TrimSpace(s)
	if s == "" {
		return r, false
	}
	parts := strings.Split(s, "/")
	if len(parts) == 2 && isDigits(parts[0]) && isDigits(parts[1]) {
		setDigits(&r.Survival, parts[0])
		setDigits(&r.Birth, parts[1])
		return r, true
	}
	found := false
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		digits := strings.TrimSpace(part[1:])
		if !isDigits(digits) {
			return Rule{}, false
		}
		switch part[0] {
		case 'B', 'b':
			setDigits(&r.Birth, digits)
		case 'S', 's':
			setDigits(&r.Survival, digits)
		default:
			return Rule{}, false
		}
		found = true
	}
	return r, found
}

// MustParse is Parse for rule literals known to be valid.
func MustParse(s string) Rule {
	r, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("rule: cannot parse %q", s))
	}
	return r
}

func setDigits(table *[MaxNeighbors + 1]bool, digits string) {
	for _, c := range digits {
		if c >= '0' && c <= '0'+MaxNeighbors {
			table[c-'0'] = true
		}
	}
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

var presets = map[string]string{
	"life":       "B3/S23",
	"highlife":   "B36/S23",
	"seeds":      "B2/S",
	"daynight":   "B3678/S34678",
	"maze":       "B3/S12345",
	"replicator": "B1357/S1357",
}

// Preset returns a well-known rule by name.
func Preset(name string) (Rule, bool) {
	notation, ok := presets[strings.ToLower(name)]
	if !ok {
		return Rule{}, false
	}
	return MustParse(notation), true
}

// PresetNames lists the known preset names in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves either a preset name or B/S notation.
func Lookup(s string) (Rule, bool) {
	if r, ok := Preset(s); ok {
		return r, true
	}
	return Parse(s)
}
