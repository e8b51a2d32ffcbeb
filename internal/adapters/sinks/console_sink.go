package sinks

import (
	"context"
	"elevator-dispatch-service/internal/domain"
	"fmt"
	"io"
	"strings"
	"time"
)

// ConsoleSink renders each tick as text: waiting pickups, rider destinations,
// and the dispatcher itself, followed by one line per arrival.
type ConsoleSink struct {
	Out   io.Writer
	Delay time.Duration
}

func NewConsoleSink(out io.Writer, delay time.Duration) *ConsoleSink {
	return &ConsoleSink{Out: out, Delay: delay}
}

func (c *ConsoleSink) Publish(ctx context.Context, snap domain.Snapshot) error {
	waiting := snap.Waiting()
	riding := snap.Riding()

	pickups := make([]string, 0, len(waiting))
	for _, p := range waiting {
		pickups = append(pickups, p.Position.String())
	}
	dropoffs := make([]string, 0, len(riding))
	for _, p := range riding {
		dropoffs = append(dropoffs, p.Destination.String())
	}

	if _, err := fmt.Fprintf(
		c.Out,
		"tick=%d elevator=%s waiting=[%s] riding=[%s]\n",
		snap.Tick, snap.Dispatcher, strings.Join(pickups, " "), strings.Join(dropoffs, " "),
	); err != nil {
		return fmt.Errorf("console sink: write tick %d: %w", snap.Tick, err)
	}

	for _, name := range snap.Arrivals {
		for _, p := range snap.Persons {
			if p.Name != name {
				continue
			}
			if _, err := fmt.Fprintf(c.Out, "Name:%s; cur: %s; dst:%s\n", p.Name, p.Position, p.Destination); err != nil {
				return fmt.Errorf("console sink: write arrival %q: %w", name, err)
			}
		}
	}

	if c.Delay > 0 {
		select {
		case <-time.After(c.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
