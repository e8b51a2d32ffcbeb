package main

import (
	"context"
	"elevator-dispatch-service/internal/adapters/positions"
	"elevator-dispatch-service/internal/adapters/repositories"
	"elevator-dispatch-service/internal/adapters/scenario"
	"elevator-dispatch-service/internal/adapters/sinks"
	"elevator-dispatch-service/internal/config"
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/platform/db"
	"elevator-dispatch-service/internal/ports"
	"elevator-dispatch-service/internal/services"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// simulate runs one dispatch simulation and prints its progress.
//
// Requests come from -scenario (YAML), else -db (stored requests), else are
// drawn at random from -seed for the default roster.
func main() {
	config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	boundFlag := fs.String("bound", config.Get("GRID_BOUND", "5,5,5"), "grid bound as x,y,z")
	seed := fs.Uint64("seed", uint64(config.GetInt("RANDOM_SEED", int(time.Now().UnixNano()&0x7fffffff))), "seed for random requests")
	scenarioPath := fs.String("scenario", "", "YAML scenario file")
	dbPath := fs.String("db", "", "SQLite database with stored requests; also records the tick trace")
	delay := fs.Duration("delay", 0, "pause between ticks, e.g. 500ms")
	redisAddr := fs.String("redis", config.Get("REDIS_ADDR", ""), "Redis address to publish snapshots to")
	maxTicks := fs.Int("max-ticks", config.GetInt("MAX_TICKS", 0), "tick limit (0 derives one from the grid)")
	quiet := fs.Bool("quiet", false, "print only the summary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bound, err := domain.ParsePoint(*boundFlag)
	if err != nil {
		return fmt.Errorf("simulate: -bound: %w", err)
	}

	req := services.RunSimulationRequest{Bound: bound, MaxTicks: *maxTicks}
	var (
		repo ports.RequestRepository
		sink sinks.MultiSink
	)

	if !*quiet {
		sink = append(sink, sinks.NewConsoleSink(out, *delay))
	}

	switch {
	case *scenarioPath != "":
		sc, err := scenario.Load(*scenarioPath)
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		req.Bound = sc.Bound
		req.Persons = sc.Persons
		if req.MaxTicks == 0 {
			req.MaxTicks = sc.MaxTicks
		}
	case *dbPath == "":
		req.Source = positions.NewRandomSource(*seed)
		req.Names = services.DefaultNames
		log.Printf("Generating requests seed=%d bound=%s", *seed, bound)
	}

	if *dbPath != "" {
		conn, err := db.OpenSqlite(*dbPath)
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(conn); err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		repo = repositories.NewSQLRequestRepository(conn)

		runID := time.Now().UTC().Format("20060102T150405.000Z")
		sink = append(sink, sinks.NewSqliteTraceSink(conn, runID))
		log.Printf("Recording trace run_id=%s db=%s", runID, *dbPath)
	}

	if addr := strings.TrimSpace(*redisAddr); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		sink = append(sink, sinks.NewRedisSink(client, config.Get("SNAPSHOT_CHANNEL", "dispatch:snapshots")))
	}

	result, err := services.RunSimulation(ctx, req, repo, sink)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	fmt.Fprintf(out, "Everyone has arrived. ticks=%d persons=%d\n", result.Ticks, result.Arrived)
	return nil
}
