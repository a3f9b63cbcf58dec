package rle

import (
	"os"

	"github.com/pkg/errors"
)

// ParseStrict decodes text like Parse but rejects input the lenient reader
// would silently repair: a missing size header, an unreadable rule, unknown
// body characters, run lengths above MaxRun, more than MaxCells alive cells,
// and cells outside the declared bounds.
func ParseStrict(text string) (Pattern, error) {
	sec := split(text)
	h := ParseHeader(sec.header)
	if !h.HasSize {
		return Pattern{}, errors.New("[ParseStrict] missing or invalid x/y header")
	}
	for _, line := range sec.header {
		if m := ruleRe.FindStringSubmatch(line); m != nil && !h.HasRule {
			return Pattern{}, errors.Errorf("[ParseStrict] unreadable rule %q", m[1])
		}
	}
	cells, bad := scanBody(sec.body, true)
	if bad != nil {
		return Pattern{}, errors.Errorf("[ParseStrict] %s at body offset %d", bad.msg, bad.offset)
	}
	for _, c := range cells {
		if c.X >= h.Width || c.Y >= h.Height {
			return Pattern{}, errors.Errorf("[ParseStrict] cell (%d,%d) outside declared %dx%d", c.X, c.Y, h.Width, h.Height)
		}
	}
	return Pattern{
		Name:     sec.name,
		Comments: sec.comments,
		Width:    h.Width,
		Height:   h.Height,
		Rule:     h.Rule,
		Cells:    cells,
	}, nil
}

// Load reads and decodes a pattern file. With strict set the file must pass
// ParseStrict.
func Load(path string, strict bool) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[Load] failed to read file: %s", path)
	}
	if !strict {
		return Parse(string(data)), nil
	}
	p, err := ParseStrict(string(data))
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[Load] failed to parse file: %s", path)
	}
	return p, nil
}
