package positions

import (
	"elevator-dispatch-service/internal/domain"
	"errors"
	"fmt"
)

var ErrExhausted = errors.New("position sequence exhausted")

// SequenceSource replays a fixed list of cells, for deterministic fixtures.
type SequenceSource struct {
	points []domain.Point
	next   int
}

func NewSequenceSource(points ...domain.Point) *SequenceSource {
	return &SequenceSource{points: points}
}

func (s *SequenceSource) NextPosition(lo, hi domain.Point) (domain.Point, error) {
	if s.next >= len(s.points) {
		return domain.Point{}, ErrExhausted
	}

	p := s.points[s.next]
	s.next++

	if p.X < lo.X || p.Y < lo.Y || p.Z < lo.Z || p.X > hi.X || p.Y > hi.Y || p.Z > hi.Z {
		return domain.Point{}, fmt.Errorf("sequence position %d: %s outside %s..%s", s.next, p, lo, hi)
	}
	return p, nil
}
