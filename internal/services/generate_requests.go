package services

import (
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/ports"
	"errors"
	"fmt"
)

// DefaultNames is the roster used when no requests are supplied.
var DefaultNames = []string{"Candice", "Arnav", "Belle", "Cecily", "Faizah", "Nabila", "Tariq", "Benn"}

// DefaultBound is the grid used when none is configured.
var DefaultBound = domain.Point{X: 5, Y: 5, Z: 5}

const maxDestinationDraws = 64

// GenerateRequests draws a pickup and a destination for every name.
//
// Cells are drawn from [0, bound-1] on each axis, so requests never start or
// end on the upper faces of the grid. A destination equal to its pickup is
// redrawn.
func GenerateRequests(names []string, bound domain.Point, src ports.PositionSource) ([]*domain.Person, error) {
	if src == nil {
		return nil, errors.New("generate requests: position source must be non-nil")
	}

	lo := domain.Point{}
	hi := domain.Point{X: max(bound.X-1, 0), Y: max(bound.Y-1, 0), Z: max(bound.Z-1, 0)}
	if hi == lo {
		return nil, fmt.Errorf("generate requests: bound %s leaves a single cell to draw from: %w", bound, domain.ErrInvalidRequest)
	}

	persons := make([]*domain.Person, 0, len(names))
	for _, name := range names {
		cur, err := src.NextPosition(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("generate requests: current for %q: %w", name, err)
		}

		dst := cur
		for i := 0; dst == cur; i++ {
			if i == maxDestinationDraws {
				return nil, fmt.Errorf("generate requests: no destination distinct from %s for %q after %d draws", cur, name, maxDestinationDraws)
			}
			dst, err = src.NextPosition(lo, hi)
			if err != nil {
				return nil, fmt.Errorf("generate requests: destination for %q: %w", name, err)
			}
		}

		persons = append(persons, domain.NewPerson(name, cur, dst))
	}

	return persons, nil
}
