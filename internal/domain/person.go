package domain

import (
	"fmt"
	"strings"
)

// Person is a single transport request. Name doubles as its identity.
//
// A person moves through WAITING -> ONBOARD -> ARRIVED and never back.
// Onboard membership is held by the dispatcher; Arrived is terminal.
type Person struct {
	Name        string
	Current     Point
	Destination Point
	Arrived     bool
}

func NewPerson(name string, current, destination Point) *Person {
	return &Person{Name: name, Current: current, Destination: destination}
}

// Arrive marks the person as delivered at pos, which must be their destination.
func (p *Person) Arrive(pos Point) error {
	if pos != p.Destination {
		return fmt.Errorf("arrive: person %q at %s, destination is %s: %w", p.Name, pos, p.Destination, ErrInvalidDisembark)
	}

	p.Current = pos
	p.Arrived = true
	return nil
}

// Validate checks a request against the grid bound before a simulation starts.
func (p *Person) Validate(bound Point) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("validate person: name must not be empty: %w", ErrInvalidRequest)
	}
	if !p.Current.Within(bound) {
		return fmt.Errorf("validate person %q: current %s outside bound %s: %w", p.Name, p.Current, bound, ErrInvalidRequest)
	}
	if !p.Destination.Within(bound) {
		return fmt.Errorf("validate person %q: destination %s outside bound %s: %w", p.Name, p.Destination, bound, ErrInvalidRequest)
	}
	// A rider whose pickup is the drop-off would board with nowhere to go and
	// stall the dispatcher on a zero step.
	if p.Current == p.Destination && !p.Arrived {
		return fmt.Errorf("validate person %q: current equals destination %s: %w", p.Name, p.Destination, ErrInvalidRequest)
	}
	return nil
}

func (p *Person) String() string {
	return fmt.Sprintf("Name:%s; cur: %s; dst:%s", p.Name, p.Current, p.Destination)
}
