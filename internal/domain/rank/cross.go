package rank

import (
	"strings"

	"github.com/podium-rank/podium/internal/domain/model"
	"github.com/podium-rank/podium/internal/domain/types"
)

// Recency decay per step away from the most recent tournament.
const recencyDecayStep = 0.2

// TournamentRounds pairs one tournament's normalized rounds with its level
// weight. Callers supply these oldest first; position is recency.
type TournamentRounds struct {
	Name        string
	LevelWeight float64
	Rounds      []model.RoundResult
}

// CrossOption applies a configuration option to a Cross aggregation.
type CrossOption func(*crossSettings)

type crossSettings struct {
	recentCount  int
	mode         Mode
	schoolFilter []string
}

// WithRecentCount limits aggregation to the last n tournaments. Zero or
// negative means all; n beyond the available count is never an error.
func WithRecentCount(n int) CrossOption {
	return func(c *crossSettings) { c.recentCount = n }
}

// WithMode selects the speaker ranking mode.
func WithMode(m Mode) CrossOption {
	return func(c *crossSettings) {
		if m == ModePerTournament {
			c.mode = ModePerTournament
		} else {
			c.mode = ModePooled
		}
	}
}

// WithSchoolFilter restricts the speaker board to participants whose most
// recently seen team label is in the allow-set. Filtering happens after
// aggregation so win rates reflect the true population.
func WithSchoolFilter(schools []string) CrossOption {
	return func(c *crossSettings) { c.schoolFilter = schools }
}

// Cross aggregates the pooled rounds of the most recent tournaments into
// global leaderboards. The accumulation re-runs over individual rounds so
// pooled win rates and point averages are true means, never averages of
// per-tournament averages.
func Cross(tournaments []TournamentRounds, opts ...CrossOption) Boards {
	cfg := crossSettings{mode: ModePooled}
	for _, opt := range opts {
		opt(&cfg)
	}

	selected := selectRecent(tournaments, cfg.recentCount)

	acc := newAccumulator(true)
	for idx, t := range selected {
		w := Weights{
			Recency: RecencyWeight(len(selected) - 1 - idx),
			Level:   t.LevelWeight,
		}
		if w.Level <= 0 {
			w.Level = 1
		}
		for _, r := range t.Rounds {
			acc.add(r, w)
		}
	}

	boards := acc.boards(cfg.mode)
	if len(cfg.schoolFilter) > 0 {
		boards.Speakers = filterBySchool(boards.Speakers, cfg.schoolFilter)
		sortSpeakers(boards.Speakers, cfg.mode)
	}
	return boards
}

// RecencyWeight returns the decayed multiplier for the i-th most recent
// included tournament, 0-indexed from the most recent: 1.0, 0.8, 0.6, ...
// with a floor at 0.
func RecencyWeight(i int) float64 {
	w := 1.0 - recencyDecayStep*float64(i)
	if w < 0 {
		return 0
	}
	return w
}

// selectRecent takes the last n tournaments, fewer if fewer exist.
func selectRecent(tournaments []TournamentRounds, n int) []TournamentRounds {
	if n <= 0 || n >= len(tournaments) {
		return tournaments
	}
	return tournaments[len(tournaments)-n:]
}

func filterBySchool(speakers []types.SpeakerEntry, schools []string) []types.SpeakerEntry {
	allow := make(map[string]struct{}, len(schools))
	for _, s := range schools {
		allow[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	out := speakers[:0:0]
	for _, e := range speakers {
		if _, ok := allow[strings.ToLower(strings.TrimSpace(e.School))]; ok {
			out = append(out, e)
		}
	}
	return out
}
