package life

import (
	"strconv"

	"fade-life/internal/rule"
)

// Config controls grid construction and timing of the Life engine.
type Config struct {
	Name string

	Width  int
	Height int
	Margin int
	Wrap   bool

	Rule rule.Rule

	// FadeFrames is how many frames a dead cell keeps being reported as
	// dying. Values below 1 are treated as 1.
	FadeFrames int
	// Interval is the number of frames one generation pass is spread over.
	Interval int

	// Density and Seed drive the random soup used when no pattern is loaded.
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Name:       "life",
		Width:      100,
		Height:     100,
		Margin:     0,
		Wrap:       true,
		Rule:       rule.Conway(),
		FadeFrames: 12,
		Interval:   4,
		Density:    0.25,
		Seed:       42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unreadable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, ok := rule.Lookup(v); ok {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["fade"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FadeFrames = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func (c Config) fadeFrames() int {
	if c.FadeFrames < 1 {
		return 1
	}
	return c.FadeFrames
}
