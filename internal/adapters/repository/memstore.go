package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/podium-rank/podium/internal/domain/model"
)

// Default bound on the session store. Old tournaments are evicted oldest
// first once the bound is hit, which matches the recency-window semantics
// of the cross-tournament aggregator.
const defaultMaxTournaments = 64

// MemoryStore implements Store with an RWMutex-guarded in-memory slice.
type MemoryStore struct {
	mu             sync.RWMutex
	tournaments    []model.Tournament
	seen           map[string]struct{} // upload content digests
	maxTournaments int
}

// NewMemoryStore creates a new in-memory store with configuration options.
func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{
		seen:           make(map[string]struct{}),
		maxTournaments: defaultMaxTournaments,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a tournament at the end of the collection.
func (s *MemoryStore) Add(_ context.Context, name string, levelWeight float64, tables []model.Table, digest string) (Record, error) {
	if len(tables) == 0 {
		return Record{}, ErrEmptyUpload
	}
	if levelWeight <= 0 {
		levelWeight = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if digest != "" {
		if _, dup := s.seen[digest]; dup {
			return Record{}, ErrDuplicateUpload
		}
		s.seen[digest] = struct{}{}
	}

	t := model.Tournament{
		ID:          uuid.NewString(),
		Name:        name,
		LevelWeight: levelWeight,
		Tables:      tables,
	}
	s.tournaments = append(s.tournaments, t)
	if len(s.tournaments) > s.maxTournaments {
		s.tournaments = s.tournaments[len(s.tournaments)-s.maxTournaments:]
	}
	return record(t), nil
}

// List returns the stored records in arrival order.
func (s *MemoryStore) List(_ context.Context) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.tournaments))
	for _, t := range s.tournaments {
		out = append(out, record(t))
	}
	return out
}

// Snapshot returns a stable copy of the tournament collection. Tables and
// rows are caller-owned and read-only by contract, so the copy is shallow
// below the tournament slice itself.
func (s *MemoryStore) Snapshot(_ context.Context) []model.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Tournament, len(s.tournaments))
	copy(out, s.tournaments)
	return out
}

// Count returns the number of stored tournaments.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tournaments)
}

func record(t model.Tournament) Record {
	rows := 0
	for _, table := range t.Tables {
		rows += len(table.Rows)
	}
	return Record{
		ID:          t.ID,
		Name:        t.Name,
		LevelWeight: t.LevelWeight,
		Tables:      len(t.Tables),
		Rows:        rows,
	}
}
