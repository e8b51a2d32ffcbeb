package domain

// PersonState is a read-only copy of one person at the end of a tick.
type PersonState struct {
	Name        string
	Position    Point
	Destination Point
	Arrived     bool
	Onboard     bool
}

// Snapshot is the state exported after each tick. It holds copies only, so a
// consumer cannot reach back into the simulation.
type Snapshot struct {
	Tick       int
	Dispatcher Point
	Persons    []PersonState
	// Names of persons dropped off during this tick.
	Arrivals []string
	Finished bool
}

// Waiting returns persons still waiting for pickup.
func (s Snapshot) Waiting() []PersonState {
	out := make([]PersonState, 0, len(s.Persons))
	for _, p := range s.Persons {
		if !p.Arrived && !p.Onboard {
			out = append(out, p)
		}
	}
	return out
}

// Riding returns persons currently onboard.
func (s Snapshot) Riding() []PersonState {
	out := make([]PersonState, 0, len(s.Persons))
	for _, p := range s.Persons {
		if p.Onboard {
			out = append(out, p)
		}
	}
	return out
}

// RunResult summarizes a completed simulation.
type RunResult struct {
	Ticks   int
	Path    []Point
	Final   Snapshot
	Arrived int
}
