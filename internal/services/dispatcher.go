package services

import (
	"elevator-dispatch-service/internal/domain"
	"fmt"
	"math"
)

// Onboard holds the riders in the order they boarded. The index answers
// membership; the order decides ties between equally close destinations.
type Onboard struct {
	order []string
	index map[string]struct{}
}

func NewOnboard(names ...string) *Onboard {
	o := &Onboard{index: make(map[string]struct{}, len(names))}
	for _, name := range names {
		o.add(name)
	}
	return o
}

func (o *Onboard) Has(name string) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[name]
	return ok
}

func (o *Onboard) Len() int {
	if o == nil {
		return 0
	}
	return len(o.order)
}

// Names returns the riders in boarding order.
func (o *Onboard) Names() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}

func (o *Onboard) add(name string) {
	if _, ok := o.index[name]; ok {
		return
	}
	o.index[name] = struct{}{}
	o.order = append(o.order, name)
}

func (o *Onboard) remove(name string) {
	if _, ok := o.index[name]; !ok {
		return
	}
	delete(o.index, name)
	for i, n := range o.order {
		if n == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// Dispatcher is the single elevator: a position inside the grid and the
// riders it carries. It never mutates a person except through Disembark.
type Dispatcher struct {
	pos     domain.Point
	bound   domain.Point
	onboard *Onboard
}

// NewDispatcher returns an empty dispatcher parked at the origin.
func NewDispatcher(bound domain.Point) *Dispatcher {
	return &Dispatcher{
		bound:   bound,
		onboard: NewOnboard(),
	}
}

func (d *Dispatcher) Position() domain.Point { return d.pos }

func (d *Dispatcher) IsOnboard(p *domain.Person) bool { return d.onboard.Has(p.Name) }

func (d *Dispatcher) OnboardCount() int { return d.onboard.Len() }

// Riders returns the onboard names in boarding order.
func (d *Dispatcher) Riders() []string { return d.onboard.Names() }

// Choose the next step using a greedy nearest-neighbor rule.
//
// With nobody onboard the target is the closest waiting pickup, scanned in
// passenger order. Otherwise it is the closest rider destination, scanned in
// boarding order. Only a strictly smaller distance replaces the current best,
// so the first of several equally close candidates wins. The second return
// value is false when there is no candidate at all.
func SelectDirection(pos domain.Point, persons []*domain.Person, onboard *Onboard) (domain.Point, bool) {
	var (
		found  bool
		target domain.Point
	)
	closest := math.Inf(1)

	consider := func(candidate domain.Point) {
		if dist := pos.Distance(candidate); dist < closest {
			closest = dist
			target = candidate
			found = true
		}
	}

	if onboard.Len() > 0 {
		byName := make(map[string]*domain.Person, len(persons))
		for _, p := range persons {
			byName[p.Name] = p
		}
		for _, name := range onboard.order {
			if p, ok := byName[name]; ok {
				consider(p.Destination)
			}
		}
	} else {
		for _, p := range persons {
			if p.Arrived || onboard.Has(p.Name) {
				continue
			}
			consider(p.Current)
		}
	}

	if !found {
		return domain.Point{}, false
	}
	return domain.Direction(pos, target), true
}

// ValidateStep checks a commanded step and returns the resulting position.
// The step must be a non-zero unit vector that keeps pos inside bound.
func ValidateStep(pos, step, bound domain.Point) (domain.Point, error) {
	if !step.IsUnit() {
		return pos, fmt.Errorf("validate step: component outside {-1, 0, 1} in %s: %w", step, domain.ErrInvalidDirection)
	}
	if step.IsZero() {
		return pos, fmt.Errorf("validate step: zero step at %s: %w", pos, domain.ErrInvalidDirection)
	}

	next := pos.Add(step)
	if !next.Within(bound) {
		return pos, fmt.Errorf("validate step: %s + %s = %s leaves bound %s: %w", pos, step, next, bound, domain.ErrOutOfBounds)
	}
	return next, nil
}

// Move advances the dispatcher one step toward its current target.
func (d *Dispatcher) Move(persons []*domain.Person) error {
	step, ok := SelectDirection(d.pos, persons, d.onboard)
	if !ok {
		return fmt.Errorf("move dispatcher: no candidate to move toward from %s (onboard=%d): %w", d.pos, d.onboard.Len(), domain.ErrInvalidDirection)
	}

	next, err := ValidateStep(d.pos, step, d.bound)
	if err != nil {
		return fmt.Errorf("move dispatcher: %w", err)
	}

	d.pos = next
	return nil
}

// Board takes a waiting person onboard.
func (d *Dispatcher) Board(p *domain.Person) error {
	if p.Arrived {
		return fmt.Errorf("board: person %q has already arrived: %w", p.Name, domain.ErrInvalidBoarding)
	}
	if d.onboard.Has(p.Name) {
		return fmt.Errorf("board: person %q is already onboard: %w", p.Name, domain.ErrInvalidBoarding)
	}

	d.onboard.add(p.Name)
	return nil
}

// Disembark drops a rider off at the current position, which must be the
// rider's destination. Nothing changes when the check fails.
func (d *Dispatcher) Disembark(p *domain.Person) error {
	if !d.onboard.Has(p.Name) {
		return fmt.Errorf("disembark: person %q is not onboard: %w", p.Name, domain.ErrInvalidDisembark)
	}
	if d.pos != p.Destination {
		return fmt.Errorf("disembark: person %q: dispatcher at %s, destination %s: %w", p.Name, d.pos, p.Destination, domain.ErrInvalidDisembark)
	}

	if err := p.Arrive(d.pos); err != nil {
		return fmt.Errorf("disembark: %w", err)
	}
	d.onboard.remove(p.Name)
	return nil
}
