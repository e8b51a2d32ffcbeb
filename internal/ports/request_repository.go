package ports

import (
	"context"
	"elevator-dispatch-service/internal/domain"
)

// Port: a boundary for loading transport requests from a data source.
type RequestRepository interface {
	// Retrieve all stored requests in their fixed passenger order.
	ListRequests(ctx context.Context) ([]*domain.Person, error)
}
