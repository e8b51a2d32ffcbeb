package sinks

import (
	"context"
	"database/sql"
	"elevator-dispatch-service/internal/domain"
	"errors"
	"fmt"
	"strings"
)

// SqliteTraceSink appends one tick_trace row per snapshot, keyed by run id.
// The table is a report of a single run; nothing reads it back into a
// simulation.
type SqliteTraceSink struct {
	DB    *sql.DB
	RunID string
}

func NewSqliteTraceSink(db *sql.DB, runID string) *SqliteTraceSink {
	return &SqliteTraceSink{DB: db, RunID: runID}
}

func (s *SqliteTraceSink) Publish(ctx context.Context, snap domain.Snapshot) error {
	if s.DB == nil {
		return errors.New("trace sink: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO tick_trace (
		run_id, tick, pos_x, pos_y, pos_z, waiting, riding, arrivals, finished
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	p := snap.Dispatcher
	_, err := s.DB.ExecContext(
		ctx, q,
		s.RunID, snap.Tick, p.X, p.Y, p.Z,
		len(snap.Waiting()), len(snap.Riding()),
		strings.Join(snap.Arrivals, ","), snap.Finished,
	)
	if err != nil {
		return fmt.Errorf("trace sink: insert run_id=%q tick=%d: %w", s.RunID, snap.Tick, err)
	}
	return nil
}

// TraceRow is one stored tick.
type TraceRow struct {
	Tick     int
	Position domain.Point
	Waiting  int
	Riding   int
	Arrivals string
	Finished bool
}

// Return the stored ticks for a run in tick order.
func (s *SqliteTraceSink) Rows(ctx context.Context) ([]TraceRow, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT tick, pos_x, pos_y, pos_z, waiting, riding, arrivals, finished
	FROM tick_trace
	WHERE run_id = ?
	ORDER BY tick;
	`, s.RunID)
	if err != nil {
		return nil, fmt.Errorf("trace rows: query tick_trace table: %w", err)
	}
	defer rows.Close()

	var out []TraceRow
	for rows.Next() {
		var r TraceRow
		if err := rows.Scan(&r.Tick, &r.Position.X, &r.Position.Y, &r.Position.Z, &r.Waiting, &r.Riding, &r.Arrivals, &r.Finished); err != nil {
			return nil, fmt.Errorf("trace rows: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trace rows: row iteration: %w", err)
	}
	return out, nil
}
