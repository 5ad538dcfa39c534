// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"

	service "github.com/podium-rank/podium/internal/app"
	"github.com/podium-rank/podium/internal/domain/rank"
	"github.com/podium-rank/podium/internal/domain/types"
)

// RankingsHandler handles leaderboard queries.
type RankingsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps Dependencies, maxLimit int) *RankingsHandler {
	return &RankingsHandler{deps: deps, maxLimit: maxLimit}
}

type rankingsResponse struct {
	Scope      string               `json:"scope"`
	Tournament string               `json:"tournament,omitempty"`
	Kind       string               `json:"kind"`
	Teams      []types.TeamEntry    `json:"teams,omitempty"`
	Duos       []types.DuoEntry     `json:"duos,omitempty"`
	Speakers   []types.SpeakerEntry `json:"speakers,omitempty"`
	Skips      int                  `json:"skips"`
}

// HandleGetRankings handles GET /rankings requests.
//
// Query parameters: scope (global|tournament), name (tournament scope),
// kind (teams|duos|speakers), recent, mode (pooled|per_tournament),
// schools (comma-separated allow-set), limit.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_rankings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()

	scope := q.Get("scope")
	if scope == "" {
		scope = "global"
	}
	if scope != "global" && scope != "tournament" {
		writeError(w, http.StatusBadRequest, "bad_scope", NewKind(op, ErrBadRequest))
		return
	}

	kind := q.Get("kind")
	if kind == "" {
		kind = "speakers"
	}
	if kind != "teams" && kind != "duos" && kind != "speakers" {
		writeError(w, http.StatusBadRequest, "bad_kind", NewKind(op, ErrBadRequest))
		return
	}

	limit := h.maxLimit
	if ls := q.Get("limit"); ls != "" {
		n, err := strconv.Atoi(ls)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}

	set := service.Settings{}
	if rs := q.Get("recent"); rs != "" {
		n, err := strconv.Atoi(rs)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_recent", NewKind(op, ErrBadRequest))
			return
		}
		set.RecentCount = n
	}
	switch q.Get("mode") {
	case "":
	case "pooled":
		set.Mode = rank.ModePooled
	case "per_tournament":
		set.Mode = rank.ModePerTournament
	default:
		writeError(w, http.StatusBadRequest, "bad_mode", NewKind(op, ErrBadRequest))
		return
	}
	if schools := q.Get("schools"); schools != "" {
		set.Schools = strings.Split(schools, ",")
	}

	results, err := h.deps.Process(r.Context(), set)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	boards := results.Global
	resp := rankingsResponse{Scope: scope, Kind: kind, Skips: len(results.Skips)}
	if scope == "tournament" {
		name := q.Get("name")
		found := false
		for _, tb := range results.PerTournament {
			if tb.Name == name {
				boards = tb.Boards
				resp.Tournament = name
				found = true
				break
			}
		}
		if !found {
			writeError(w, http.StatusNotFound, "unknown_tournament", NewKind(op, ErrNotFound))
			return
		}
	}

	switch kind {
	case "teams":
		resp.Teams = boards.Teams
		if len(resp.Teams) > limit {
			resp.Teams = resp.Teams[:limit]
		}
	case "duos":
		resp.Duos = boards.Duos
		if len(resp.Duos) > limit {
			resp.Duos = resp.Duos[:limit]
		}
	case "speakers":
		resp.Speakers = boards.Speakers
		if len(resp.Speakers) > limit {
			resp.Speakers = resp.Speakers[:limit]
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
