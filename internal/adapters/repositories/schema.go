package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Dialect selects SQL placeholder and upsert syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Initialize the database schema. The DDL is shared by SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRequestsQuery := `
	CREATE TABLE IF NOT EXISTS transport_requests (
		seq INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		cur_x INTEGER NOT NULL,
		cur_y INTEGER NOT NULL,
		cur_z INTEGER NOT NULL,
		dst_x INTEGER NOT NULL,
		dst_y INTEGER NOT NULL,
		dst_z INTEGER NOT NULL
	);
	`

	createTraceQuery := `
	CREATE TABLE IF NOT EXISTS tick_trace (
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		pos_x INTEGER NOT NULL,
		pos_y INTEGER NOT NULL,
		pos_z INTEGER NOT NULL,
		waiting INTEGER NOT NULL,
		riding INTEGER NOT NULL,
		arrivals TEXT NOT NULL,
		finished INTEGER NOT NULL,
		PRIMARY KEY (run_id, tick)
	);
	`

	statements := []string{
		createRequestsQuery,
		createTraceQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type RequestSeed struct {
	Seq         int    `json:"seq"`
	Name        string `json:"name"`
	Current     [3]int `json:"current"`
	Destination [3]int `json:"destination"`
}

// Populate the database with transport requests from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string, dialect Dialect) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed requests: read %q: %w", jsonPath, err)
	}

	var data []RequestSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed requests: parse json: %w", err)
	}

	rows := make([]RequestSeed, 0, len(data))
	for i, item := range data {
		if item.Seq <= 0 {
			return fmt.Errorf("seed requests: invalid seq at index %d: %d", i+1, item.Seq)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed requests: item at index %d: name cannot be empty", i+1)
		}
		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed requests: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO transport_requests (seq, name, cur_x, cur_y, cur_z, dst_x, dst_y, dst_z)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	if dialect == Postgres {
		query = `
		INSERT INTO transport_requests (seq, name, cur_x, cur_y, cur_z, dst_x, dst_y, dst_z)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (seq) DO UPDATE
		SET name = EXCLUDED.name,
			cur_x = EXCLUDED.cur_x, cur_y = EXCLUDED.cur_y, cur_z = EXCLUDED.cur_z,
			dst_x = EXCLUDED.dst_x, dst_y = EXCLUDED.dst_y, dst_z = EXCLUDED.dst_z;
		`
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed requests: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		c, d := r.Current, r.Destination
		if _, err := stmt.Exec(r.Seq, r.Name, c[0], c[1], c[2], d[0], d[1], d[2]); err != nil {
			return fmt.Errorf("seed requests: insert seq=%d name=%q: %w", r.Seq, r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed requests: commit tx: %w", err)
	}

	return nil
}
