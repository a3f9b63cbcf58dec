package core

import "sort"

// Size describes the visible dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// EventKind tells a renderer which transition a cell went through.
type EventKind uint8

const (
	// EventBorn marks a dead to alive transition.
	EventBorn EventKind = iota
	// EventDying marks one frame of a death fade.
	EventDying
)

func (k EventKind) String() string {
	switch k {
	case EventBorn:
		return "born"
	case EventDying:
		return "dying"
	default:
		return "unknown"
	}
}

// CellEvent is a single cell change handed to a renderer. Progress is only
// meaningful for EventDying and runs from just above 0 up to 1, where 1 means
// the cell has faded out completely.
type CellEvent struct {
	X, Y     int
	Kind     EventKind
	Progress float64
}

// CellRenderer is the drawing capability a simulation needs from its host.
type CellRenderer interface {
	DrawCell(ev CellEvent)
}

// Sim defines the contract between a frame-driven host and an automaton.
// Hosts call Step then Draw once per tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Draw(r CellRenderer)
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in lexical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
