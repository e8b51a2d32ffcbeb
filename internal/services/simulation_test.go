package services

import (
	"context"
	"elevator-dispatch-service/internal/adapters/positions"
	"elevator-dispatch-service/internal/adapters/sinks"
	"elevator-dispatch-service/internal/domain"
	"errors"
	"testing"
)

func newSim(t *testing.T, bound domain.Point, persons []*domain.Person, sink *sinks.MemorySink) *Simulation {
	t.Helper()

	cfg := SimulationConfig{Bound: bound, Persons: persons}
	if sink != nil {
		cfg.Sink = sink
	}
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	return sim
}

func TestSimulationSingleRider(t *testing.T) {
	p := domain.NewPerson("Candice", pt(0, 0, 0), pt(2, 2, 2))
	sink := sinks.NewMemorySink()
	sim := newSim(t, pt(2, 2, 2), []*domain.Person{p}, sink)
	ctx := context.Background()

	snap, err := sim.Tick(ctx)
	if err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	if snap.Dispatcher != pt(1, 1, 1) || !snap.Persons[0].Onboard {
		t.Fatalf("tick 1: dispatcher %s onboard=%v", snap.Dispatcher, snap.Persons[0].Onboard)
	}

	snap, err = sim.Tick(ctx)
	if err != nil {
		t.Fatalf("tick 2: %v", err)
	}
	if snap.Dispatcher != pt(2, 2, 2) || sim.Finished() {
		t.Fatalf("tick 2: dispatcher %s finished=%v", snap.Dispatcher, sim.Finished())
	}

	// The drop-off happens at the start of the tick after reaching the cell.
	snap, err = sim.Tick(ctx)
	if err != nil {
		t.Fatalf("tick 3: %v", err)
	}
	if !sim.Finished() || !snap.Finished {
		t.Fatal("expected simulation to be finished")
	}
	if !p.Arrived || p.Current != pt(2, 2, 2) {
		t.Fatalf("person not delivered: %s", p)
	}
	if snap.Dispatcher != pt(2, 2, 2) {
		t.Fatalf("dispatcher moved after finishing: %s", snap.Dispatcher)
	}
	if len(snap.Arrivals) != 1 || snap.Arrivals[0] != "Candice" {
		t.Fatalf("arrivals = %v", snap.Arrivals)
	}
	if sim.Ticks() != 3 {
		t.Fatalf("ticks = %d, want 3", sim.Ticks())
	}

	// Ticking a finished simulation changes nothing.
	again, err := sim.Tick(ctx)
	if err != nil || again.Tick != 3 || again.Dispatcher != pt(2, 2, 2) {
		t.Fatalf("tick after finish: %+v, %v", again, err)
	}
	if got := len(sink.Snapshots()); got != 3 {
		t.Fatalf("sink received %d snapshots, want 3", got)
	}
}

func TestSimulationDropOffBeforePickup(t *testing.T) {
	a := domain.NewPerson("a", pt(0, 0, 0), pt(1, 0, 0))
	b := domain.NewPerson("b", pt(1, 0, 0), pt(2, 0, 0))
	sim := newSim(t, pt(2, 0, 0), []*domain.Person{a, b}, nil)

	result, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Point{pt(0, 0, 0), pt(1, 0, 0), pt(2, 0, 0), pt(2, 0, 0)}
	if len(result.Path) != len(want) {
		t.Fatalf("path = %v, want %v", result.Path, want)
	}
	for i := range want {
		if result.Path[i] != want[i] {
			t.Fatalf("path[%d] = %s, want %s", i, result.Path[i], want[i])
		}
	}
	if result.Ticks != 3 || !a.Arrived || !b.Arrived {
		t.Fatalf("ticks=%d a=%v b=%v", result.Ticks, a.Arrived, b.Arrived)
	}
}

func TestSimulationServesCloserPickupFirst(t *testing.T) {
	far := domain.NewPerson("far", pt(3, 0, 0), pt(3, 3, 0))
	near := domain.NewPerson("near", pt(0, 1, 0), pt(0, 2, 0))
	sink := sinks.NewMemorySink()
	sim := newSim(t, pt(3, 3, 3), []*domain.Person{far, near}, sink)

	if _, err := sim.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var nearDone, farDone int
	for _, snap := range sink.Snapshots() {
		for _, name := range snap.Arrivals {
			switch name {
			case "near":
				nearDone = snap.Tick
			case "far":
				farDone = snap.Tick
			}
		}
	}
	if nearDone == 0 || farDone == 0 || nearDone > farDone {
		t.Fatalf("near arrived at tick %d, far at tick %d; want near first", nearDone, farDone)
	}
}

func TestSimulationRandomRunInvariants(t *testing.T) {
	bound := pt(5, 5, 5)

	run := func() (domain.RunResult, []domain.Snapshot) {
		persons, err := GenerateRequests(DefaultNames, bound, positions.NewRandomSource(7))
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		sink := sinks.NewMemorySink()
		sim := newSim(t, bound, persons, sink)
		result, err := sim.Run(context.Background())
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		return result, sink.Snapshots()
	}

	first, snaps := run()
	second, _ := run()

	if first.Ticks != second.Ticks || len(first.Path) != len(second.Path) {
		t.Fatalf("runs diverged: %d vs %d ticks", first.Ticks, second.Ticks)
	}
	for i := range first.Path {
		if first.Path[i] != second.Path[i] {
			t.Fatalf("path[%d] diverged: %s vs %s", i, first.Path[i], second.Path[i])
		}
	}

	if limit := DefaultMaxTicks(bound, len(DefaultNames)); first.Ticks > limit {
		t.Fatalf("ticks = %d exceeds termination bound %d", first.Ticks, limit)
	}
	if !first.Final.Finished || first.Arrived != len(DefaultNames) {
		t.Fatalf("final snapshot not finished: %+v", first.Final)
	}

	for _, snap := range snaps {
		if !snap.Dispatcher.Within(bound) {
			t.Fatalf("tick %d: dispatcher %s outside bound", snap.Tick, snap.Dispatcher)
		}
		for _, p := range snap.Persons {
			if p.Arrived && p.Position != p.Destination {
				t.Fatalf("tick %d: %s arrived at %s, destination %s", snap.Tick, p.Name, p.Position, p.Destination)
			}
			if p.Arrived && p.Onboard {
				t.Fatalf("tick %d: %s both arrived and onboard", snap.Tick, p.Name)
			}
		}
	}
}

func TestSimulationTickLimit(t *testing.T) {
	p := domain.NewPerson("a", pt(0, 0, 0), pt(2, 2, 2))
	sim, err := NewSimulation(SimulationConfig{Bound: pt(2, 2, 2), Persons: []*domain.Person{p}, MaxTicks: 1})
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	_, err = sim.Run(context.Background())
	if !errors.Is(err, domain.ErrTickLimitExceeded) {
		t.Fatalf("err = %v, want ErrTickLimitExceeded", err)
	}
	if sim.Ticks() != 1 {
		t.Fatalf("ticks = %d, want 1", sim.Ticks())
	}
}

func TestSimulationStopsOnCancel(t *testing.T) {
	p := domain.NewPerson("a", pt(0, 0, 0), pt(2, 2, 2))
	sim := newSim(t, pt(2, 2, 2), []*domain.Person{p}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sim.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if sim.Ticks() != 0 {
		t.Fatalf("ticks = %d, want 0", sim.Ticks())
	}
}

type brokenSink struct{}

func (brokenSink) Publish(ctx context.Context, snap domain.Snapshot) error {
	return errors.New("renderer gone")
}

func TestSimulationIgnoresSinkFailure(t *testing.T) {
	p := domain.NewPerson("a", pt(1, 0, 0), pt(0, 0, 0))
	sim, err := NewSimulation(SimulationConfig{Bound: pt(1, 1, 1), Persons: []*domain.Person{p}, Sink: brokenSink{}})
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	result, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Arrived || result.Ticks != 3 {
		t.Fatalf("arrived=%v ticks=%d", p.Arrived, result.Ticks)
	}
}

func TestSimulationEmpty(t *testing.T) {
	sim := newSim(t, pt(1, 1, 1), nil, nil)
	if !sim.Finished() {
		t.Fatal("empty simulation should be finished")
	}

	result, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Ticks != 0 || len(result.Path) != 1 {
		t.Fatalf("ticks=%d path=%v", result.Ticks, result.Path)
	}
}

func TestNewSimulationValidation(t *testing.T) {
	bound := pt(2, 2, 2)

	cases := []struct {
		name    string
		bound   domain.Point
		persons []*domain.Person
	}{
		{"negative bound", pt(-1, 2, 2), nil},
		{"outside bound", bound, []*domain.Person{domain.NewPerson("a", pt(3, 0, 0), pt(0, 0, 0))}},
		{"duplicate name", bound, []*domain.Person{
			domain.NewPerson("a", pt(0, 0, 0), pt(1, 0, 0)),
			domain.NewPerson("a", pt(1, 1, 0), pt(0, 0, 1)),
		}},
		{"nil person", bound, []*domain.Person{nil}},
		{"pickup is destination", bound, []*domain.Person{domain.NewPerson("a", pt(1, 1, 1), pt(1, 1, 1))}},
	}

	for _, c := range cases {
		_, err := NewSimulation(SimulationConfig{Bound: c.bound, Persons: c.persons})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("%s: err = %v, want ErrInvalidRequest", c.name, err)
		}
	}
}

func TestSimulationRiderTieFollowsBoardingOrder(t *testing.T) {
	a := domain.NewPerson("A", pt(2, 0, 0), pt(2, 1, 0))
	b := domain.NewPerson("B", pt(1, 0, 0), pt(3, 0, 0))
	sink := sinks.NewMemorySink()
	sim := newSim(t, pt(3, 3, 3), []*domain.Person{a, b}, sink)

	result, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// B boards at tick 2, A at tick 3; at <2, 0, 0> both destinations are one
	// step away and B, the earlier rider, is served first.
	want := []domain.Point{pt(0, 0, 0), pt(1, 0, 0), pt(2, 0, 0), pt(3, 0, 0), pt(2, 1, 0), pt(2, 1, 0)}
	if len(result.Path) != len(want) {
		t.Fatalf("path = %v, want %v", result.Path, want)
	}
	for i := range want {
		if result.Path[i] != want[i] {
			t.Fatalf("path[%d] = %s, want %s", i, result.Path[i], want[i])
		}
	}

	arrivedAt := map[string]int{}
	for _, snap := range sink.Snapshots() {
		for _, name := range snap.Arrivals {
			arrivedAt[name] = snap.Tick
		}
	}
	if arrivedAt["B"] != 4 || arrivedAt["A"] != 5 {
		t.Fatalf("arrivals = %v, want B at tick 4 and A at tick 5", arrivedAt)
	}
}
