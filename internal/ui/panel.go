package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fade-life/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool
}

// Panel tracks a simulation's parameters and adjustable controls without
// depending on a drawing backend. The HUD renders it; tests drive it directly.
type Panel struct {
	sim      core.Sim
	title    string
	snapshot core.ParameterSnapshot
	controls []controlState
	setter   core.IntParameterSetter
}

// NewPanel builds a panel for sim. Simulations that do not expose parameter
// controls produce a panel with no controls.
func NewPanel(sim core.Sim) *Panel {
	p := &Panel{sim: sim, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.setter = setter
	}
	p.Refresh()
	return p
}

// Title returns the panel heading.
func (p *Panel) Title() string { return p.title }

// Controls returns the adjustable controls in display order.
func (p *Panel) Controls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(p.controls))
	for i, s := range p.controls {
		out[i] = s.control
	}
	return out
}

// Refresh pulls a fresh parameter snapshot from the simulation.
func (p *Panel) Refresh() {
	provider, ok := p.sim.(parameterProvider)
	if !ok {
		p.snapshot = core.ParameterSnapshot{}
		for i := range p.controls {
			p.controls[i].hasValue = false
		}
		return
	}
	p.snapshot = provider.Parameters()
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		param, ok := p.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value = v
		state.hasValue = true
	}
}

// Value reports the last observed value of the control with the given key.
func (p *Panel) Value(key string) (int, bool) {
	for _, s := range p.controls {
		if s.control.Key == key {
			return s.value, s.hasValue
		}
	}
	return 0, false
}

// CanAdjust reports whether stepping the control in direction would change it.
func (p *Panel) CanAdjust(key string, direction int) bool {
	state := p.find(key)
	if state == nil || !state.hasValue || p.setter == nil || direction == 0 {
		return false
	}
	return p.target(state, direction) != state.value
}

// Adjust steps the control one increment in direction (negative or positive),
// clamped to its range. It reports whether the simulation accepted a change.
func (p *Panel) Adjust(key string, direction int) bool {
	if !p.CanAdjust(key, direction) {
		return false
	}
	state := p.find(key)
	target := p.target(state, direction)
	if !p.setter.SetIntParameter(key, target) {
		return false
	}
	state.value = target
	return true
}

// Lines formats the current snapshot as grouped "label: value" rows.
func (p *Panel) Lines() []string {
	var lines []string
	for _, g := range p.snapshot.Groups {
		if len(g.Params) == 0 {
			continue
		}
		lines = append(lines, "["+g.Name+"]")
		for _, param := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", param.Label, param.Value))
		}
	}
	return lines
}

func (p *Panel) find(key string) *controlState {
	for i := range p.controls {
		if p.controls[i].control.Key == key {
			return &p.controls[i]
		}
	}
	return nil
}

func (p *Panel) target(state *controlState, direction int) int {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	if direction < 0 {
		step = -step
	}
	return max(state.control.Min, min(state.value+step, state.control.Max))
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}
