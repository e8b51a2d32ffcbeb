package ports

import "elevator-dispatch-service/internal/domain"

// Contract for drawing grid cells when generating transport requests.
type PositionSource interface {
	// Return a cell with every coordinate in [lo, hi] on its axis.
	NextPosition(lo, hi domain.Point) (domain.Point, error)
}
