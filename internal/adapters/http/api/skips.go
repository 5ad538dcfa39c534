// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	service "github.com/podium-rank/podium/internal/app"
	"github.com/podium-rank/podium/internal/domain/model"
)

// SkipsHandler reports the skip list of the latest aggregation pass.
type SkipsHandler struct {
	deps Dependencies
}

// NewSkipsHandler creates a new skips handler.
func NewSkipsHandler(deps Dependencies) *SkipsHandler {
	return &SkipsHandler{deps: deps}
}

type skipsResponse struct {
	Skips []model.SkipReport `json:"skips"`
}

// HandleGetSkips handles GET /skips requests. The skip list is
// informational: it names tables that could not be normalized without
// aborting processing.
func (h *SkipsHandler) HandleGetSkips(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_skips"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	results, err := h.deps.Process(r.Context(), service.Settings{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, skipsResponse{Skips: results.Skips})
}
