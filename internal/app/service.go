// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/podium-rank/podium/internal/adapters/repository"
	"github.com/podium-rank/podium/internal/domain/model"
	"github.com/podium-rank/podium/internal/domain/normalize"
	"github.com/podium-rank/podium/internal/domain/rank"
	"github.com/podium-rank/podium/pkg/logger"
	"github.com/podium-rank/podium/pkg/metrics"
)

// Service owns the session store and runs aggregation passes over it.
type Service struct {
	store  repository.Store
	logger logger.Logger

	recentCount        int
	defaultLevelWeight float64
	rankMode           rank.Mode
	schoolFilter       []string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the tournament session store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecentCount sets how many most-recent tournaments global boards cover.
func WithRecentCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.recentCount = n
		}
	}
}

// WithDefaultLevelWeight sets the level weight applied when a tournament is
// registered without one.
func WithDefaultLevelWeight(w float64) Option {
	return func(s *Service) {
		if w > 0 {
			s.defaultLevelWeight = w
		}
	}
}

// WithRankMode sets the default speaker ranking mode.
func WithRankMode(mode rank.Mode) Option {
	return func(s *Service) {
		if mode == rank.ModePooled || mode == rank.ModePerTournament {
			s.rankMode = mode
		}
	}
}

// WithSchoolFilter sets the default school allow-set for global speaker boards.
func WithSchoolFilter(schools []string) Option {
	return func(s *Service) { s.schoolFilter = schools }
}

// New creates a new service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		store:              repository.NewMemoryStore(),
		recentCount:        2,
		defaultLevelWeight: 1.0,
		rankMode:           rank.ModePooled,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		_ = logger.Init()
		s.logger = logger.Get()
	}
	return s
}

// RegisterTournament stores one uploaded tournament at the end of the
// session collection.
func (s *Service) RegisterTournament(ctx context.Context, name string, levelWeight float64, tables []model.Table, digest string) (repository.Record, error) {
	if levelWeight <= 0 {
		levelWeight = s.defaultLevelWeight
	}
	rec, err := s.store.Add(ctx, name, levelWeight, tables, digest)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUpload) {
			metrics.RecordDuplicateUpload()
		}
		return repository.Record{}, err
	}
	metrics.RecordTournamentIngested()
	metrics.SetStoreTournaments(s.store.Count(ctx))
	s.logger.Info(ctx, "tournament registered",
		logger.String("name", rec.Name),
		logger.Int("rows", rec.Rows),
		logger.Float64("level_weight", rec.LevelWeight))
	return rec, nil
}

// Tournaments lists the stored tournaments in arrival order.
func (s *Service) Tournaments(ctx context.Context) []repository.Record {
	return s.store.List(ctx)
}

// Settings parameterizes one aggregation pass. Zero values fall back to the
// service defaults.
type Settings struct {
	RecentCount int
	Mode        rank.Mode
	Schools     []string
}

// TournamentBoards pairs one tournament's name with its leaderboards.
type TournamentBoards struct {
	Name   string      `json:"name"`
	Boards rank.Boards `json:"boards"`
}

// Results is the complete output of one aggregation pass.
type Results struct {
	PerTournament []TournamentBoards `json:"per_tournament"`
	Global        rank.Boards        `json:"global"`
	Skips         []model.SkipReport `json:"skips"`
}

// Process runs one synchronous aggregation pass over the current store
// snapshot: normalize every table, build per-tournament boards, then the
// pooled cross-tournament boards. Nothing is cached between calls.
func (s *Service) Process(ctx context.Context, set Settings) (Results, error) {
	start := time.Now()
	s.applyDefaults(&set)

	snapshot := s.store.Snapshot(ctx)

	var res Results
	pooled := make([]rank.TournamentRounds, 0, len(snapshot))
	totalRounds := 0
	for _, t := range snapshot {
		rounds, skips := normalize.Tournament(t)
		res.Skips = append(res.Skips, skips...)
		totalRounds += len(rounds)
		pooled = append(pooled, rank.TournamentRounds{
			Name:        t.Name,
			LevelWeight: t.LevelWeight,
			Rounds:      rounds,
		})
		res.PerTournament = append(res.PerTournament, TournamentBoards{
			Name:   t.Name,
			Boards: rank.Tournament(rounds),
		})
	}

	res.Global = rank.Cross(pooled,
		rank.WithRecentCount(set.RecentCount),
		rank.WithMode(set.Mode),
		rank.WithSchoolFilter(set.Schools),
	)

	durationMs := float64(time.Since(start).Microseconds()) / 1000
	metrics.RecordProcessPass(durationMs)
	metrics.AddRoundsExtracted(totalRounds)
	metrics.AddTablesSkipped(len(res.Skips))
	s.logger.Debug(ctx, "aggregation pass complete",
		logger.Int("tournaments", len(snapshot)),
		logger.Int("rounds", totalRounds),
		logger.Int("skips", len(res.Skips)))
	return res, nil
}

func (s *Service) applyDefaults(set *Settings) {
	if set.RecentCount <= 0 {
		set.RecentCount = s.recentCount
	}
	if set.Mode != rank.ModePooled && set.Mode != rank.ModePerTournament {
		set.Mode = s.rankMode
	}
	if set.Schools == nil {
		set.Schools = s.schoolFilter
	}
}

// GetStats exposes coarse service statistics for the /stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	records := s.store.List(ctx)
	rows := 0
	for _, r := range records {
		rows += r.Rows
	}
	return map[string]interface{}{
		"tournaments":  len(records),
		"rows":         rows,
		"recent_count": s.recentCount,
		"rank_mode":    string(s.rankMode),
	}
}
