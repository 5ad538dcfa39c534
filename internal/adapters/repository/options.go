package repository

// StoreOption applies a configuration option to the MemoryStore.
type StoreOption func(*MemoryStore)

// WithMaxTournaments bounds the session store; the oldest tournaments are
// evicted first beyond the bound.
func WithMaxTournaments(n int) StoreOption {
	return func(s *MemoryStore) {
		if n > 0 {
			s.maxTournaments = n
		}
	}
}
