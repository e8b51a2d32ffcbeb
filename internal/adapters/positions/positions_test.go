package positions

import (
	"elevator-dispatch-service/internal/domain"
	"errors"
	"testing"
)

func TestRandomSourceStaysInRangeAndRepeats(t *testing.T) {
	lo := domain.Point{X: 1, Y: 0, Z: 2}
	hi := domain.Point{X: 3, Y: 0, Z: 4}

	a := NewRandomSource(42)
	b := NewRandomSource(42)
	for i := 0; i < 200; i++ {
		pa, err := a.NextPosition(lo, hi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pb, _ := b.NextPosition(lo, hi)
		if pa != pb {
			t.Fatalf("draw %d: same seed diverged: %s vs %s", i, pa, pb)
		}
		if pa.X < 1 || pa.X > 3 || pa.Y != 0 || pa.Z < 2 || pa.Z > 4 {
			t.Fatalf("draw %d: %s outside range", i, pa)
		}
	}
}

func TestRandomSourceRejectsEmptyRange(t *testing.T) {
	_, err := NewRandomSource(1).NextPosition(domain.Point{X: 2}, domain.Point{X: 1})
	if err == nil {
		t.Fatal("expected error for empty range")
	}
}

func TestSequenceSource(t *testing.T) {
	hi := domain.Point{X: 4, Y: 4, Z: 4}
	src := NewSequenceSource(domain.Point{X: 1}, domain.Point{Z: 3})

	p, err := src.NextPosition(domain.Point{}, hi)
	if err != nil || p != (domain.Point{X: 1}) {
		t.Fatalf("first = %s, %v", p, err)
	}
	p, err = src.NextPosition(domain.Point{}, hi)
	if err != nil || p != (domain.Point{Z: 3}) {
		t.Fatalf("second = %s, %v", p, err)
	}
	if _, err := src.NextPosition(domain.Point{}, hi); !errors.Is(err, ErrExhausted) {
		t.Fatalf("third err = %v, want ErrExhausted", err)
	}
}
