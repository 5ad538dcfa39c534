// Package repository keeps the session's uploaded tournaments in arrival
// order. Arrival order is the engine's recency order: most recent last.
package repository

import (
	"context"

	"github.com/podium-rank/podium/internal/domain/model"
)

// Record describes one stored tournament.
type Record struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	LevelWeight float64 `json:"level_weight"`
	Tables      int     `json:"tables"`
	Rows        int     `json:"rows"`
}

// Store provides access to the session's tournament collection.
type Store interface {
	// Add registers a tournament at the end of the collection. digest is a
	// caller-computed content digest; re-uploading identical content returns
	// ErrDuplicateUpload.
	Add(ctx context.Context, name string, levelWeight float64, tables []model.Table, digest string) (Record, error)

	// List returns the stored records in arrival order.
	List(ctx context.Context) []Record

	// Snapshot returns a stable copy of the tournaments for one aggregation
	// pass. Mutations after the call do not affect the returned slice.
	Snapshot(ctx context.Context) []model.Tournament

	// Count returns the number of stored tournaments.
	Count(ctx context.Context) int
}
