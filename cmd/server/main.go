package main

import (
	"database/sql"
	"elevator-dispatch-service/internal/adapters/repositories"
	"elevator-dispatch-service/internal/adapters/sinks"
	"elevator-dispatch-service/internal/api"
	"elevator-dispatch-service/internal/config"
	"elevator-dispatch-service/internal/platform/db"
	"elevator-dispatch-service/internal/ports"
	"elevator-dispatch-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	config.Load()

	dbPath := config.Get("DB_PATH", "data/app.db")
	databaseURL := config.Get("DATABASE_URL", "")
	seedPath := config.Get("SEED_PATH", "data/seeds/requests.json")
	bound := config.GetPoint("GRID_BOUND", services.DefaultBound)
	port := config.Get("PORT", "8080")

	conn, err := openStore(databaseURL, dbPath, seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	repo := repositories.NewSQLRequestRepository(conn)

	var sink ports.SnapshotSink
	if addr := strings.TrimSpace(config.Get("REDIS_ADDR", "")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		sink = sinks.NewRedisSink(client, config.Get("SNAPSHOT_CHANNEL", "dispatch:snapshots"))
		log.Printf("Publishing snapshots redis=%s", addr)
	}

	router := api.NewRouter(repo, sink, bound)

	log.Printf("Server listening addr=:%s bound=%s", port, bound)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStore prefers Postgres when DATABASE_URL is set (schema managed by
// dbtool); otherwise it opens a local SQLite file and seeds it for local runs.
func openStore(databaseURL, dbPath, seedPath string) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) != "" {
		return db.Open(databaseURL)
	}

	conn, err := db.OpenSqlite(dbPath)
	if err != nil {
		return nil, err
	}

	if err := initAndSeed(conn, seedPath); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, seedPath, repositories.SQLite); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
