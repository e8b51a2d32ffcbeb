package handlers

import (
	"elevator-dispatch-service/internal/api/dto"
	"elevator-dispatch-service/internal/ports"
	"log"
	"net/http"
)

// RequestHandler exposes read-only access to stored transport requests.
type RequestHandler struct {
	Repo ports.RequestRepository
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	persons, err := h.Repo.ListRequests(r.Context())
	if err != nil {
		log.Printf("list requests failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRequestsResponse{
		Requests: make([]dto.RequestResponse, 0, len(persons)),
	}
	for _, p := range persons {
		res.Requests = append(res.Requests, dto.RequestResponse{
			Name:        p.Name,
			Current:     p.Current.Array(),
			Destination: p.Destination.Array(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
