package sinks

import "elevator-dispatch-service/internal/domain"

// Wire format shared by the Redis sink and the HTTP trace.
type PersonMessage struct {
	Name        string `json:"name"`
	Position    [3]int `json:"position"`
	Destination [3]int `json:"destination"`
	Arrived     bool   `json:"arrived"`
	Onboard     bool   `json:"onboard"`
}

type SnapshotMessage struct {
	Tick       int             `json:"tick"`
	Dispatcher [3]int          `json:"dispatcher"`
	Persons    []PersonMessage `json:"persons"`
	Arrivals   []string        `json:"arrivals"`
	Finished   bool            `json:"finished"`
}

func NewSnapshotMessage(snap domain.Snapshot) SnapshotMessage {
	persons := make([]PersonMessage, 0, len(snap.Persons))
	for _, p := range snap.Persons {
		persons = append(persons, PersonMessage{
			Name:        p.Name,
			Position:    p.Position.Array(),
			Destination: p.Destination.Array(),
			Arrived:     p.Arrived,
			Onboard:     p.Onboard,
		})
	}

	arrivals := snap.Arrivals
	if arrivals == nil {
		arrivals = []string{}
	}

	return SnapshotMessage{
		Tick:       snap.Tick,
		Dispatcher: snap.Dispatcher.Array(),
		Persons:    persons,
		Arrivals:   arrivals,
		Finished:   snap.Finished,
	}
}
