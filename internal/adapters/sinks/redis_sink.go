package sinks

import (
	"context"
	"elevator-dispatch-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSink hands snapshots to out-of-process viewers. The latest snapshot is
// stored under Key and every snapshot is published on Channel. Nothing is read
// back.
type RedisSink struct {
	Client  *redis.Client
	Channel string
	Key     string
}

func NewRedisSink(client *redis.Client, channel string) *RedisSink {
	return &RedisSink{
		Client:  client,
		Channel: channel,
		Key:     channel + ":latest",
	}
}

func (r *RedisSink) Publish(ctx context.Context, snap domain.Snapshot) error {
	if r.Client == nil {
		return errors.New("redis sink: client is nil")
	}

	payload, err := json.Marshal(NewSnapshotMessage(snap))
	if err != nil {
		return fmt.Errorf("redis sink: encode tick %d: %w", snap.Tick, err)
	}

	pipe := r.Client.Pipeline()
	pipe.Set(ctx, r.Key, payload, 0)
	pipe.Publish(ctx, r.Channel, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis sink: publish tick %d on %q: %w", snap.Tick, r.Channel, err)
	}

	return nil
}
