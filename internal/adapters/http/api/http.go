// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/podium-rank/podium/internal/adapters/repository"
	service "github.com/podium-rank/podium/internal/app"
	"github.com/podium-rank/podium/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// RegisterTournament stores one uploaded tournament.
	RegisterTournament(ctx context.Context, name string, levelWeight float64, tables []model.Table, digest string) (repository.Record, error)

	// Tournaments lists stored tournaments in arrival order.
	Tournaments(ctx context.Context) []repository.Record

	// Process runs one synchronous aggregation pass.
	Process(ctx context.Context, set service.Settings) (service.Results, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	tournamentsHandler *TournamentsHandler
	rankingsHandler    *RankingsHandler
	skipsHandler       *SkipsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxBoardLimit int, maxUploadBytes int64) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		tournamentsHandler: NewTournamentsHandler(deps, maxUploadBytes),
		rankingsHandler:    NewRankingsHandler(deps, maxBoardLimit),
		skipsHandler:       NewSkipsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/tournaments", MetricsMiddleware(s.tournamentsHandler.Handle, "tournaments"))
	mux.HandleFunc("/rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("/skips", MetricsMiddleware(s.skipsHandler.HandleGetSkips, "skips"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
