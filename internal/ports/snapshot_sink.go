package ports

import (
	"context"
	"elevator-dispatch-service/internal/domain"
)

// Port: a one-way consumer of tick snapshots (renderers, reporters, recorders).
// Sinks receive copies and have no channel back into the simulation; an error
// from a sink is reported but never changes simulation state.
type SnapshotSink interface {
	Publish(ctx context.Context, snap domain.Snapshot) error
}
