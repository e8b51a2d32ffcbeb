package positions

import (
	"elevator-dispatch-service/internal/domain"
	"fmt"
	"math/rand/v2"
)

// RandomSource draws cells uniformly. A fixed seed gives a repeatable sequence.
type RandomSource struct {
	rng *rand.Rand
}

func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandomSource) NextPosition(lo, hi domain.Point) (domain.Point, error) {
	if hi.X < lo.X || hi.Y < lo.Y || hi.Z < lo.Z {
		return domain.Point{}, fmt.Errorf("random position: empty range %s..%s", lo, hi)
	}

	return domain.Point{
		X: lo.X + s.rng.IntN(hi.X-lo.X+1),
		Y: lo.Y + s.rng.IntN(hi.Y-lo.Y+1),
		Z: lo.Z + s.rng.IntN(hi.Z-lo.Z+1),
	}, nil
}
