package services

import (
	"context"
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/platform/obs"
	"elevator-dispatch-service/internal/ports"
	"fmt"
	"log"
)

type SimulationConfig struct {
	Bound   domain.Point
	Persons []*domain.Person
	// MaxTicks caps the run; zero selects DefaultMaxTicks.
	MaxTicks int
	// Sink receives a snapshot after every tick. Optional.
	Sink ports.SnapshotSink
}

// Simulation owns the passengers and the dispatcher and drives them tick by tick.
// It is not safe for concurrent use.
type Simulation struct {
	bound      domain.Point
	persons    []*domain.Person
	dispatcher *Dispatcher
	sink       ports.SnapshotSink
	maxTicks   int
	tick       int
	path       []domain.Point
}

// DefaultMaxTicks is a generous cap derived from grid extent and passenger
// count: two legs per rider, each allowed the sum of the axis sizes. It is not
// a proven bound, since the riding target can change as new riders board; a
// run that hits it stops with ErrTickLimitExceeded.
func DefaultMaxTicks(bound domain.Point, passengers int) int {
	return (bound.X+bound.Y+bound.Z+1)*2*passengers + 2
}

func NewSimulation(cfg SimulationConfig) (*Simulation, error) {
	bound := cfg.Bound
	if bound.X < 0 || bound.Y < 0 || bound.Z < 0 {
		return nil, fmt.Errorf("new simulation: bound %s must be non-negative: %w", bound, domain.ErrInvalidRequest)
	}

	seen := make(map[string]struct{}, len(cfg.Persons))
	for i, p := range cfg.Persons {
		if p == nil {
			return nil, fmt.Errorf("new simulation: person at index %d is nil: %w", i, domain.ErrInvalidRequest)
		}
		if err := p.Validate(bound); err != nil {
			return nil, fmt.Errorf("new simulation: %w", err)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("new simulation: duplicate person name %q: %w", p.Name, domain.ErrInvalidRequest)
		}
		seen[p.Name] = struct{}{}
	}

	maxTicks := cfg.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks(bound, len(cfg.Persons))
	}

	d := NewDispatcher(bound)
	return &Simulation{
		bound:      bound,
		persons:    cfg.Persons,
		dispatcher: d,
		sink:       cfg.Sink,
		maxTicks:   maxTicks,
		path:       []domain.Point{d.Position()},
	}, nil
}

// Finished reports whether every person has arrived.
func (s *Simulation) Finished() bool {
	for _, p := range s.persons {
		if !p.Arrived {
			return false
		}
	}
	return true
}

func (s *Simulation) Ticks() int { return s.tick }

func (s *Simulation) Dispatcher() domain.Point { return s.dispatcher.Position() }

func (s *Simulation) Bound() domain.Point { return s.bound }

// Tick runs one step: all drop-offs, then all pickups, then a single move
// unless everyone has arrived. The snapshot is published last.
// Calling Tick on a finished simulation returns the final snapshot unchanged.
func (s *Simulation) Tick(ctx context.Context) (domain.Snapshot, error) {
	if s.Finished() {
		return s.Snapshot(), nil
	}
	if s.tick >= s.maxTicks {
		return domain.Snapshot{}, fmt.Errorf("tick: %d ticks without finishing, dispatcher at %s: %w", s.tick, s.dispatcher.Position(), domain.ErrTickLimitExceeded)
	}
	s.tick++

	pos := s.dispatcher.Position()

	var arrivals []string
	for _, p := range s.persons {
		if !s.dispatcher.IsOnboard(p) || p.Destination != pos {
			continue
		}
		if err := s.dispatcher.Disembark(p); err != nil {
			return domain.Snapshot{}, fmt.Errorf("tick %d: %w", s.tick, err)
		}
		arrivals = append(arrivals, p.Name)
		log.Printf("event=arrived tick=%d person=%q pos=%s", s.tick, p.Name, p.Current)
	}

	for _, p := range s.persons {
		if p.Arrived || s.dispatcher.IsOnboard(p) || p.Current != pos {
			continue
		}
		if err := s.dispatcher.Board(p); err != nil {
			return domain.Snapshot{}, fmt.Errorf("tick %d: %w", s.tick, err)
		}
		log.Printf("event=boarded tick=%d person=%q pos=%s dst=%s", s.tick, p.Name, pos, p.Destination)
	}

	if !s.Finished() {
		if err := s.dispatcher.Move(s.persons); err != nil {
			return domain.Snapshot{}, fmt.Errorf("tick %d: %w", s.tick, err)
		}
	}
	s.path = append(s.path, s.dispatcher.Position())

	snap := s.Snapshot()
	snap.Arrivals = arrivals

	if s.sink != nil {
		if err := s.sink.Publish(ctx, snap); err != nil {
			log.Printf("event=sink_failed tick=%d err=%v", s.tick, err)
		}
	}

	return snap, nil
}

// Snapshot copies the current state. Onboard persons are reported at the
// dispatcher's position.
func (s *Simulation) Snapshot() domain.Snapshot {
	pos := s.dispatcher.Position()

	states := make([]domain.PersonState, 0, len(s.persons))
	for _, p := range s.persons {
		st := domain.PersonState{
			Name:        p.Name,
			Position:    p.Current,
			Destination: p.Destination,
			Arrived:     p.Arrived,
			Onboard:     s.dispatcher.IsOnboard(p),
		}
		if st.Onboard {
			st.Position = pos
		}
		states = append(states, st)
	}

	return domain.Snapshot{
		Tick:       s.tick,
		Dispatcher: pos,
		Persons:    states,
		Finished:   s.Finished(),
	}
}

// Run ticks until every person has arrived. It stops at the first contract
// violation, at the tick limit, or when ctx is done.
func (s *Simulation) Run(ctx context.Context) (_ domain.RunResult, err error) {
	defer obs.Time(ctx, "simulation.Run")(&err)

	for !s.Finished() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.RunResult{}, fmt.Errorf("run simulation: after %d ticks: %w", s.tick, ctxErr)
		}
		if _, err := s.Tick(ctx); err != nil {
			return domain.RunResult{}, fmt.Errorf("run simulation: %w", err)
		}
	}

	final := s.Snapshot()
	path := make([]domain.Point, len(s.path))
	copy(path, s.path)

	return domain.RunResult{
		Ticks:   s.tick,
		Path:    path,
		Final:   final,
		Arrived: len(s.persons),
	}, nil
}
