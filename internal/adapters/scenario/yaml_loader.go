package scenario

import (
	"elevator-dispatch-service/internal/domain"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a fixed set of requests on a fixed grid, loaded from a file so
// runs can be replayed exactly.
type Scenario struct {
	Bound    domain.Point
	MaxTicks int
	Persons  []*domain.Person
}

type scenarioFile struct {
	Bound    []int        `yaml:"bound"`
	MaxTicks int          `yaml:"max_ticks"`
	Persons  []personFile `yaml:"persons"`
}

type personFile struct {
	Name        string `yaml:"name"`
	Current     []int  `yaml:"current"`
	Destination []int  `yaml:"destination"`
}

// Load reads a YAML scenario:
//
//	bound: [5, 5, 5]
//	persons:
//	  - name: Candice
//	    current: [0, 0, 0]
//	    destination: [2, 2, 2]
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: read %q: %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	bound, err := toPoint(f.Bound)
	if err != nil {
		return nil, fmt.Errorf("parse scenario: bound: %w", err)
	}

	persons := make([]*domain.Person, 0, len(f.Persons))
	for i, p := range f.Persons {
		cur, err := toPoint(p.Current)
		if err != nil {
			return nil, fmt.Errorf("parse scenario: person #%d (%q) current: %w", i+1, p.Name, err)
		}
		dst, err := toPoint(p.Destination)
		if err != nil {
			return nil, fmt.Errorf("parse scenario: person #%d (%q) destination: %w", i+1, p.Name, err)
		}
		persons = append(persons, domain.NewPerson(p.Name, cur, dst))
	}

	return &Scenario{Bound: bound, MaxTicks: f.MaxTicks, Persons: persons}, nil
}

func toPoint(v []int) (domain.Point, error) {
	if len(v) != 3 {
		return domain.Point{}, fmt.Errorf("want [x, y, z], got %d values", len(v))
	}
	return domain.Point{X: v[0], Y: v[1], Z: v[2]}, nil
}
