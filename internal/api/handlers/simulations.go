package handlers

import (
	"elevator-dispatch-service/internal/adapters/positions"
	"elevator-dispatch-service/internal/adapters/sinks"
	"elevator-dispatch-service/internal/api/dto"
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/ports"
	"elevator-dispatch-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const (
	maxBoundAxis = 100
	maxPersons   = 200
)

type SimulationHandler struct {
	Repo         ports.RequestRepository
	DefaultBound domain.Point
	// Sink, when set, also receives every snapshot (e.g. a Redis fan-out).
	Sink ports.SnapshotSink
}

// Run builds a simulation from the request body and runs it to completion.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SimulationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	bound := h.DefaultBound
	if req.Bound != nil {
		b, err := toPoint(req.Bound)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "bound: "+err.Error())
			return
		}
		bound = b
	}
	if bound.X > maxBoundAxis || bound.Y > maxBoundAxis || bound.Z > maxBoundAxis {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("bound must not exceed %d on any axis", maxBoundAxis))
		return
	}

	if req.MaxTicks < 0 {
		writeError(w, r, http.StatusBadRequest, "max_ticks must not be negative")
		return
	}

	if len(req.Persons) > maxPersons || (req.Random != nil && len(req.Random.Names) > maxPersons) {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d persons per simulation", maxPersons))
		return
	}

	svcReq := services.RunSimulationRequest{
		Bound:      bound,
		MaxTicks:   req.MaxTicks,
		MaxPersons: maxPersons,
	}

	for i, p := range req.Persons {
		cur, err := toPoint(p.Current)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("persons[%d].current: %v", i, err))
			return
		}
		dst, err := toPoint(p.Destination)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("persons[%d].destination: %v", i, err))
			return
		}
		svcReq.Persons = append(svcReq.Persons, domain.NewPerson(strings.TrimSpace(p.Name), cur, dst))
	}

	if req.Random != nil {
		svcReq.Source = positions.NewRandomSource(req.Random.Seed)
		svcReq.Names = req.Random.Names
	}

	// Snapshots are only retained when the caller asks for the trace.
	var (
		trace *sinks.MemorySink
		sink  sinks.MultiSink
	)
	if req.IncludeTrace {
		trace = sinks.NewMemorySink()
		sink = append(sink, trace)
	}
	if h.Sink != nil {
		sink = append(sink, h.Sink)
	}

	result, err := services.RunSimulation(r.Context(), svcReq, h.Repo, sink)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("run simulation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	final := sinks.NewSnapshotMessage(result.Final)
	res := dto.SimulationResponse{
		Ticks:   result.Ticks,
		Path:    make([][3]int, 0, len(result.Path)),
		Persons: final.Persons,
	}
	for _, p := range result.Path {
		res.Path = append(res.Path, p.Array())
	}
	if trace != nil {
		for _, snap := range trace.Snapshots() {
			res.Trace = append(res.Trace, sinks.NewSnapshotMessage(snap))
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toPoint(v []int) (domain.Point, error) {
	if len(v) != 3 {
		return domain.Point{}, fmt.Errorf("want [x, y, z], got %d values", len(v))
	}
	return domain.Point{X: v[0], Y: v[1], Z: v[2]}, nil
}
