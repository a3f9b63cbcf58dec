package life

import (
	"strconv"

	"fade-life/internal/core"
)

const (
	maxInterval   = 240
	maxFadeFrames = 600
)

// Parameters reports the engine configuration and counters for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				intParam("margin", "Margin", l.cfg.Margin),
				boolParam("wrap", "Wrap", l.cfg.Wrap),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: l.cfg.Rule.String()},
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam("interval", "Frames per generation", l.sched.effectiveInterval()),
				intParam("fade", "Fade frames", l.cfg.fadeFrames()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.Generation()),
				intParam("population", "Population", l.population),
				intParam("fading", "Fading", l.events.active()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust while running.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "interval", Label: "Frames per generation", Step: 1, Min: 1, Max: maxInterval},
		{Key: "fade", Label: "Fade frames", Step: 1, Min: 1, Max: maxFadeFrames},
	}
}

// SetIntParameter adjusts a timing parameter. An interval change waits for
// the current pass to finish; a fade change applies to cells that die later.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "interval":
		value = clampInt(value, 1, maxInterval)
		l.cfg.Interval = value
		l.sched.setInterval(value)
		return true
	case "fade":
		l.cfg.FadeFrames = clampInt(value, 1, maxFadeFrames)
		return true
	}
	return false
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
