// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RecentTournaments sets how many most-recent tournaments the
	// cross-tournament aggregation includes by default.
	RecentTournaments int `koanf:"recent_tournaments"`

	// DefaultLevelWeight applies to tournaments registered without an
	// explicit competition-level weight.
	DefaultLevelWeight float64 `koanf:"default_level_weight"`

	// RankMode selects the default speaker ranking: "pooled" or
	// "per_tournament".
	RankMode string `koanf:"rank_mode"`

	// SchoolFilter optionally restricts global speaker boards to these
	// team/school labels.
	SchoolFilter []string `koanf:"school_filter"`

	// MaxBoardLimit caps GET /rankings?limit.
	MaxBoardLimit int `koanf:"max_board_limit"`

	// MaxUploadBytes bounds one uploaded file body.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// MaxTournaments bounds the session store; oldest evicted first.
	MaxTournaments int `koanf:"max_tournaments"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		RecentTournaments:  2,
		DefaultLevelWeight: 1.0,
		RankMode:           "pooled",
		MaxBoardLimit:      500,
		MaxUploadBytes:     8 << 20,
		MaxTournaments:     64,
	}
}
