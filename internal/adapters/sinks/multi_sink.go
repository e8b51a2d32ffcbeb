package sinks

import (
	"context"
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/ports"
	"errors"
)

// MultiSink fans a snapshot out to every sink. All sinks are tried; their
// errors are joined.
type MultiSink []ports.SnapshotSink

func (m MultiSink) Publish(ctx context.Context, snap domain.Snapshot) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Publish(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
