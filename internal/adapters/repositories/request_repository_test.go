package repositories

import (
	"context"
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/platform/db"
	"os"
	"path/filepath"
	"testing"
)

func TestSeedAndListRequests(t *testing.T) {
	conn, err := db.OpenSqlite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := InitSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	seed := `[
		{"seq": 2, "name": "Arnav", "current": [1, 1, 1], "destination": [0, 0, 0]},
		{"seq": 1, "name": " Candice ", "current": [0, 0, 0], "destination": [2, 2, 2]}
	]`
	path := filepath.Join(t.TempDir(), "requests.json")
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if err := SeedFromJSON(conn, path, SQLite); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Seeding twice replaces rows rather than failing.
	if err := SeedFromJSON(conn, path, SQLite); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	persons, err := NewSQLRequestRepository(conn).ListRequests(context.Background())
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}

	if len(persons) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(persons))
	}
	if persons[0].Name != "Candice" || persons[1].Name != "Arnav" {
		t.Fatalf("order = %q, %q; want Candice, Arnav", persons[0].Name, persons[1].Name)
	}
	if persons[0].Destination != (domain.Point{X: 2, Y: 2, Z: 2}) {
		t.Fatalf("destination = %s", persons[0].Destination)
	}
	if persons[1].Current != (domain.Point{X: 1, Y: 1, Z: 1}) || persons[1].Arrived {
		t.Fatalf("unexpected second request: %s arrived=%v", persons[1], persons[1].Arrived)
	}
}

func TestSeedRejectsBlankName(t *testing.T) {
	conn, err := db.OpenSqlite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := InitSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`[{"seq": 1, "name": "  "}]`), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := SeedFromJSON(conn, path, SQLite); err == nil {
		t.Fatal("expected error for blank name")
	}
}
