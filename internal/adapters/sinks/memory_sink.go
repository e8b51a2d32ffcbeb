package sinks

import (
	"context"
	"elevator-dispatch-service/internal/domain"
	"sync"
)

// MemorySink keeps every snapshot it receives.
type MemorySink struct {
	mu        sync.Mutex
	snapshots []domain.Snapshot
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (m *MemorySink) Publish(ctx context.Context, snap domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots = append(m.snapshots, snap)
	return nil
}

func (m *MemorySink) Snapshots() []domain.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Snapshot, len(m.snapshots))
	copy(out, m.snapshots)
	return out
}
