// Package server exposes the aggregation engine to the rendering front end
// over HTTP. The engine stays pure; this layer owns decoding, error
// translation, and response shaping.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/finmap-dev/finmap/internal/engine"
	"github.com/finmap-dev/finmap/internal/graph"
	"github.com/finmap-dev/finmap/internal/hierarchy"
)

// Server serves the mind-map graph and recompute endpoints for one
// immutable hierarchy. Handlers are safe for concurrent requests: every
// recompute works on its own snapshot.
type Server struct {
	hierarchy *hierarchy.Hierarchy
}

// NewHandler creates the HTTP handler for a hierarchy.
func NewHandler(h *hierarchy.Hierarchy) http.Handler {
	s := &Server{hierarchy: h}
	r := chi.NewRouter()
	r.Get("/api/graph", s.handleGraph)
	r.Post("/api/recompute", s.handleRecompute)
	return r
}

// GraphResponse is the static structure of the mind map.
type GraphResponse struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// RecomputeResponse carries everything the front end needs after a leaf
// change: derived values, normalized weights, and ready-to-use pixel sizes.
type RecomputeResponse struct {
	Values  map[string]decimal.Decimal `json:"values"`
	Weights map[string]decimal.Decimal `json:"weights"`
	Sizes   map[string]int             `json:"sizes"`
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	nodes, edges := graph.Elements(s.hierarchy)
	writeJSON(w, GraphResponse{Nodes: nodes, Edges: edges})
}

func (s *Server) handleRecompute(w http.ResponseWriter, r *http.Request) {
	var leaves engine.Values
	if err := json.NewDecoder(r.Body).Decode(&leaves); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	values, weights, err := engine.Recompute(s.hierarchy, leaves)
	if err != nil {
		var missing engine.MissingLeafValueError
		var unknown hierarchy.UnknownAccountError
		if errors.As(err, &missing) || errors.As(err, &unknown) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, RecomputeResponse{
		Values:  values,
		Weights: weights,
		Sizes:   graph.Sizes(weights),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
