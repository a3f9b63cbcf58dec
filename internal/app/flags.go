package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"fade-life/internal/core"
	"fade-life/internal/rle"
	"fade-life/internal/rule"
	"fade-life/internal/sims/life"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim      string  `json:"sim"`
	Pattern  string  `json:"pattern"`
	Strict   bool    `json:"strict"`
	Rule     string  `json:"rule"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Margin   int     `json:"margin"`
	Wrap     bool    `json:"wrap"`
	Fade     int     `json:"fade_frames"`
	Interval int     `json:"interval_frames"`
	Density  float64 `json:"density"`
	Scale    int     `json:"scale"`
	TPS      int     `json:"tps"`
	Seed     int64   `json:"seed"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Sim:      "life",
		Width:    160,
		Height:   120,
		Margin:   d.Margin,
		Wrap:     d.Wrap,
		Fade:     d.FadeFrames,
		Interval: d.Interval,
		Density:  d.Density,
		Scale:    4,
		TPS:      60,
		Seed:     d.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "rule preset to run when no pattern is given")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "RLE pattern file to load")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "reject malformed pattern files")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule override, preset name or B/S notation")
	fs.IntVar(&c.Width, "w", c.Width, "grid width for random soups")
	fs.IntVar(&c.Height, "h", c.Height, "grid height for random soups")
	fs.IntVar(&c.Margin, "margin", c.Margin, "dead border thickness in cells")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap grid edges (torus)")
	fs.IntVar(&c.Fade, "fade", c.Fade, "frames a dead cell takes to fade out")
	fs.IntVar(&c.Interval, "interval", c.Interval, "frames per generation")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density for random soups")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with defaults; flags given explicitly win")
}

// Parse binds a fresh Config to fs and parses args. When -config names a
// file its values are loaded and args are parsed again on top of them.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigFile == "" {
		return c, nil
	}
	if err := c.LoadFile(c.ConfigFile); err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays values from a JSON file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", path)
	}
	return nil
}

// SimOptions renders the engine settings as a factory option map.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"margin":   strconv.Itoa(c.Margin),
		"wrap":     strconv.FormatBool(c.Wrap),
		"fade":     strconv.Itoa(c.Fade),
		"interval": strconv.Itoa(c.Interval),
		"density":  strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":     strconv.FormatInt(c.Seed, 10),
	}
	if c.Rule != "" {
		opts["rule"] = c.Rule
	}
	return opts
}

// BuildSim constructs the simulation the configuration asks for: the
// pattern file when one is given, otherwise a random soup from the named
// preset. A -rule override replaces the rule from either source.
func BuildSim(c *Config) (core.Sim, error) {
	if c.Rule != "" {
		if _, ok := rule.Lookup(c.Rule); !ok {
			return nil, errors.Errorf("[BuildSim] unreadable rule %q", c.Rule)
		}
	}
	opts := c.SimOptions()
	if c.Pattern == "" {
		factory, ok := core.Sims()[c.Sim]
		if !ok {
			return nil, errors.Errorf("[BuildSim] unknown sim %q (have %v)", c.Sim, core.Names())
		}
		return factory(opts), nil
	}
	p, err := rle.Load(c.Pattern, c.Strict)
	if err != nil {
		return nil, errors.Wrap(err, "[BuildSim] loading pattern")
	}
	cfg := life.FromMap(opts)
	if c.Rule != "" {
		p.Rule = cfg.Rule
	}
	return life.NewFromPattern(p, cfg), nil
}
