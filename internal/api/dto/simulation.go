package dto

import "elevator-dispatch-service/internal/adapters/sinks"

type PersonRequest struct {
	Name        string `json:"name"`
	Current     []int  `json:"current"`
	Destination []int  `json:"destination"`
}

type RandomRequest struct {
	Seed  uint64   `json:"seed"`
	Names []string `json:"names"`
}

// SimulationRequest selects requests from, in order: Persons, Random, the store.
type SimulationRequest struct {
	Bound        []int           `json:"bound"`
	Persons      []PersonRequest `json:"persons"`
	Random       *RandomRequest  `json:"random"`
	MaxTicks     int             `json:"max_ticks"`
	IncludeTrace bool            `json:"include_trace"`
}

type SimulationResponse struct {
	Ticks   int                     `json:"ticks"`
	Path    [][3]int                `json:"path"`
	Persons []sinks.PersonMessage   `json:"persons"`
	Trace   []sinks.SnapshotMessage `json:"trace,omitempty"`
}
