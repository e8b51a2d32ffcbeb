package services

import (
	"context"
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/ports"
	"fmt"
)

type RunSimulationRequest struct {
	Bound domain.Point
	// Persons, when non-empty, are used as given.
	Persons []*domain.Person
	// Source generates requests for Names when Persons is empty.
	Source   ports.PositionSource
	Names    []string
	MaxTicks int
	// MaxPersons rejects larger request lists; zero means no limit.
	MaxPersons int
}

// RunSimulation resolves the request list, builds a simulation and runs it to
// completion. Requests come from the caller, then the position source, then
// the repository, in that order of preference.
func RunSimulation(
	ctx context.Context,
	req RunSimulationRequest,
	repo ports.RequestRepository,
	sink ports.SnapshotSink,
) (domain.RunResult, error) {
	persons := req.Persons

	switch {
	case len(persons) > 0:
	case req.Source != nil:
		names := req.Names
		if len(names) == 0 {
			names = DefaultNames
		}

		generated, err := GenerateRequests(names, req.Bound, req.Source)
		if err != nil {
			return domain.RunResult{}, fmt.Errorf("run simulation request: %w", err)
		}
		persons = generated
	case repo != nil:
		stored, err := repo.ListRequests(ctx)
		if err != nil {
			return domain.RunResult{}, fmt.Errorf("run simulation request: list requests: %w", err)
		}
		persons = stored
	}

	if req.MaxPersons > 0 && len(persons) > req.MaxPersons {
		return domain.RunResult{}, fmt.Errorf("run simulation request: %d persons exceeds limit %d: %w", len(persons), req.MaxPersons, domain.ErrInvalidRequest)
	}

	sim, err := NewSimulation(SimulationConfig{
		Bound:    req.Bound,
		Persons:  persons,
		MaxTicks: req.MaxTicks,
		Sink:     sink,
	})
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("run simulation request: %w", err)
	}

	result, err := sim.Run(ctx)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("run simulation request: %w", err)
	}
	return result, nil
}
