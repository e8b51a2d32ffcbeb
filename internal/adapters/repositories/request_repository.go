package repositories

import (
	"context"
	"database/sql"
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/platform/obs"
	"errors"
	"fmt"
)

const listRequestsQuery = `
	SELECT
		name,
		cur_x, cur_y, cur_z,
		dst_x, dst_y, dst_z
	FROM transport_requests
	ORDER BY seq;
	`

// SQL-backed implementation of the RequestRepository port. The query is
// placeholder free, so one type serves both the sqlite and pgx drivers.
type SQLRequestRepository struct{ DB *sql.DB }

func NewSQLRequestRepository(db *sql.DB) *SQLRequestRepository {
	return &SQLRequestRepository{DB: db}
}

// Return all stored requests ordered by seq, which fixes the passenger order.
func (s *SQLRequestRepository) ListRequests(ctx context.Context) (_ []*domain.Person, err error) {
	defer obs.Time(ctx, "requests.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql request repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, listRequestsQuery)
	if err != nil {
		return nil, fmt.Errorf("list requests: query transport_requests table: %w", err)
	}
	defer rows.Close()

	persons := make([]*domain.Person, 0, 16)
	for rows.Next() {
		var (
			name     string
			cur, dst domain.Point
		)
		if err := rows.Scan(&name, &cur.X, &cur.Y, &cur.Z, &dst.X, &dst.Y, &dst.Z); err != nil {
			return nil, fmt.Errorf("list requests: scan row: %w", err)
		}
		persons = append(persons, domain.NewPerson(name, cur, dst))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list requests: row iteration: %w", err)
	}

	return persons, nil
}
