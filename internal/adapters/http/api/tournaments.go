// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/podium-rank/podium/internal/adapters/ingest"
	"github.com/podium-rank/podium/internal/adapters/repository"
)

// TournamentsHandler handles tournament registration and listing.
type TournamentsHandler struct {
	deps           Dependencies
	maxUploadBytes int64
}

// NewTournamentsHandler creates a new tournaments handler.
func NewTournamentsHandler(deps Dependencies, maxUploadBytes int64) *TournamentsHandler {
	return &TournamentsHandler{deps: deps, maxUploadBytes: maxUploadBytes}
}

// Handle dispatches /tournaments by method.
func (h *TournamentsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleUpload(w, r)
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Tournaments(r.Context()))
	default:
		http.NotFound(w, r)
	}
}

type uploadResponse struct {
	repository.Record
	Status string `json:"status"`
}

// handleUpload handles POST /tournaments. The body is one CSV or XLSX file;
// ?filename= picks the reader and the default tournament name, ?name= and
// ?level_weight= override registration metadata.
func (h *TournamentsHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_tournament"

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrUploadTooLarge, err))
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	filename := r.URL.Query().Get("filename")
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		name = ingest.TournamentName(filename)
	}
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing_name", NewKind(op, ErrBadRequest))
		return
	}

	levelWeight := 0.0
	if lw := r.URL.Query().Get("level_weight"); lw != "" {
		levelWeight, err = strconv.ParseFloat(lw, 64)
		if err != nil || levelWeight <= 0 {
			writeError(w, http.StatusBadRequest, "bad_level_weight", NewKind(op, ErrBadRequest))
			return
		}
	}

	tables, err := ingest.File(filename, bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable_file", WrapKind(op, ErrBadRequest, err))
		return
	}

	digest := sha256.Sum256(body)
	rec, err := h.deps.RegisterTournament(r.Context(), name, levelWeight, tables, hex.EncodeToString(digest[:]))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUpload) {
			writeError(w, http.StatusConflict, "duplicate_upload", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{Record: rec, Status: "registered"})
}
