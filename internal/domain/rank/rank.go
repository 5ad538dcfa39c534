// Package rank folds normalized round results into ordered leaderboards.
//
// All accumulation state lives inside a single call: boards are rebuilt from
// scratch on every pass and identical input yields identical output. Sorts
// are stable, so entities tied on every key keep their first-encountered
// relative order.
package rank

import (
	"sort"

	"github.com/podium-rank/podium/internal/domain/model"
	"github.com/podium-rank/podium/internal/domain/types"
)

// Weights scales one round's contribution to weighted speaker scores.
type Weights struct {
	Recency float64
	Level   float64
}

// Boards bundles the three leaderboards produced by one aggregation pass.
type Boards struct {
	Teams    []types.TeamEntry    `json:"teams"`
	Duos     []types.DuoEntry     `json:"duos"`
	Speakers []types.SpeakerEntry `json:"speakers"`
}

// Mode selects how individual leaderboards are ranked.
type Mode string

const (
	// ModePooled ranks speakers on their pooled weighted score ("best overall").
	ModePooled Mode = "pooled"
	// ModePerTournament ranks speakers on their average per-tournament total
	// ("best on a normal day").
	ModePerTournament Mode = "per_tournament"
)

// DuoKey canonicalizes an unordered participant pair so (A,B) and (B,A)
// collide on one accumulator.
func DuoKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x1f" + b
}

// Tournament aggregates one tournament's rounds into ranked team, duo and
// speaker boards. Without WithWeights the speaker skill score is the
// unweighted avgPoints x winRate.
func Tournament(rounds []model.RoundResult, opts ...Option) Boards {
	cfg := settings{weights: Weights{Recency: 1, Level: 1}}
	for _, opt := range opts {
		opt(&cfg)
	}

	acc := newAccumulator(cfg.weighted)
	for _, r := range rounds {
		acc.add(r, cfg.weights)
	}
	return acc.boards(ModePooled)
}

type settings struct {
	weighted bool
	weights  Weights
}

// Option applies a configuration option to a Tournament aggregation.
type Option func(*settings)

// WithWeights switches the speaker skill score to the weighted sum of
// score x win x level x recency for every round.
func WithWeights(recency, level float64) Option {
	return func(c *settings) {
		c.weighted = true
		if recency > 0 {
			c.weights.Recency = recency
		}
		if level > 0 {
			c.weights.Level = level
		}
	}
}

type teamAcc struct {
	label       string
	wins        int
	rounds      int
	total       float64
	tournaments map[string]struct{}
}

type duoAcc struct {
	member1  string
	member2  string
	wins     int
	rounds   int
	totalSum float64 // sum of side totals across co-appearances
}

type speakerAcc struct {
	name            string
	school          string
	wins            int
	rounds          int
	pointSum        float64
	weightedSum     float64
	perTournament   map[string]float64
	tournamentOrder []string
}

// accumulator holds per-call running totals keyed by entity identity.
// Insertion order is tracked so stable sorts have a deterministic base.
type accumulator struct {
	weighted bool

	teams     map[string]*teamAcc
	teamOrder []string

	duos     map[string]*duoAcc
	duoOrder []string

	speakers     map[string]*speakerAcc
	speakerOrder []string
}

func newAccumulator(weighted bool) *accumulator {
	return &accumulator{
		weighted: weighted,
		teams:    make(map[string]*teamAcc),
		duos:     make(map[string]*duoAcc),
		speakers: make(map[string]*speakerAcc),
	}
}

func (a *accumulator) add(r model.RoundResult, w Weights) {
	a.addSide(r, r.Affirmative, w)
	a.addSide(r, r.Negative, w)
}

func (a *accumulator) addSide(r model.RoundResult, side model.SideResult, w Weights) {
	winBit := 0.0
	if side.Won {
		winBit = 1
	}

	team := a.team(side.TeamLabel)
	team.rounds++
	team.wins += int(winBit)
	team.total += side.TotalScore()
	team.tournaments[r.Tournament] = struct{}{}

	for _, p := range side.Participants {
		sp := a.speaker(p.Name)
		sp.rounds++
		sp.wins += int(winBit)
		sp.pointSum += p.Score
		sp.weightedSum += p.Score * winBit * w.Level * w.Recency
		sp.school = side.TeamLabel
		if _, seen := sp.perTournament[r.Tournament]; !seen {
			sp.tournamentOrder = append(sp.tournamentOrder, r.Tournament)
		}
		sp.perTournament[r.Tournament] += p.Score
	}

	// Every unordered pair of co-appearing participants is one duo
	// co-occurrence; sides with more than two speakers expand pairwise.
	for i := 0; i < len(side.Participants); i++ {
		for j := i + 1; j < len(side.Participants); j++ {
			d := a.duo(side.Participants[i].Name, side.Participants[j].Name)
			d.rounds++
			d.wins += int(winBit)
			d.totalSum += side.TotalScore()
		}
	}
}

func (a *accumulator) team(label string) *teamAcc {
	t, ok := a.teams[label]
	if !ok {
		t = &teamAcc{label: label, tournaments: make(map[string]struct{})}
		a.teams[label] = t
		a.teamOrder = append(a.teamOrder, label)
	}
	return t
}

func (a *accumulator) speaker(name string) *speakerAcc {
	s, ok := a.speakers[name]
	if !ok {
		s = &speakerAcc{
			name:          name,
			perTournament: make(map[string]float64),
		}
		a.speakers[name] = s
		a.speakerOrder = append(a.speakerOrder, name)
	}
	return s
}

func (a *accumulator) duo(n1, n2 string) *duoAcc {
	key := DuoKey(n1, n2)
	d, ok := a.duos[key]
	if !ok {
		if n2 < n1 {
			n1, n2 = n2, n1
		}
		d = &duoAcc{member1: n1, member2: n2}
		a.duos[key] = d
		a.duoOrder = append(a.duoOrder, key)
	}
	return d
}

// boards materializes and sorts the three leaderboards.
func (a *accumulator) boards(mode Mode) Boards {
	teams := make([]types.TeamEntry, 0, len(a.teamOrder))
	for _, label := range a.teamOrder {
		t := a.teams[label]
		teams = append(teams, types.TeamEntry{
			Team:        t.label,
			Wins:        t.wins,
			Rounds:      t.rounds,
			WinRate:     ratio(t.wins, t.rounds),
			TotalScore:  t.total,
			Tournaments: len(t.tournaments),
		})
	}
	sort.SliceStable(teams, func(i, j int) bool {
		x, y := teams[i], teams[j]
		if x.WinRate != y.WinRate {
			return x.WinRate > y.WinRate
		}
		return x.TotalScore > y.TotalScore
	})
	applyTeamRanks(teams)

	duos := make([]types.DuoEntry, 0, len(a.duoOrder))
	for _, key := range a.duoOrder {
		d := a.duos[key]
		avg := 0.0
		if d.rounds > 0 {
			avg = d.totalSum / float64(d.rounds)
		}
		winRate := ratio(d.wins, d.rounds)
		duos = append(duos, types.DuoEntry{
			Member1:    d.member1,
			Member2:    d.member2,
			Wins:       d.wins,
			Rounds:     d.rounds,
			WinRate:    winRate,
			AvgScore:   avg,
			SkillScore: avg * winRate,
		})
	}
	sort.SliceStable(duos, func(i, j int) bool {
		x, y := duos[i], duos[j]
		if x.SkillScore != y.SkillScore {
			return x.SkillScore > y.SkillScore
		}
		if x.Wins != y.Wins {
			return x.Wins > y.Wins
		}
		return x.WinRate > y.WinRate
	})
	for i := range duos {
		duos[i].Rank = i + 1
	}

	speakers := make([]types.SpeakerEntry, 0, len(a.speakerOrder))
	for _, name := range a.speakerOrder {
		s := a.speakers[name]
		avgPoints := 0.0
		if s.rounds > 0 {
			avgPoints = s.pointSum / float64(s.rounds)
		}
		winRate := ratio(s.wins, s.rounds)
		skill := avgPoints * winRate
		if a.weighted {
			skill = s.weightedSum
		}
		var perTournamentSum float64
		for _, name := range s.tournamentOrder {
			perTournamentSum += s.perTournament[name]
		}
		avgPerTournament := 0.0
		if len(s.tournamentOrder) > 0 {
			avgPerTournament = perTournamentSum / float64(len(s.tournamentOrder))
		}
		speakers = append(speakers, types.SpeakerEntry{
			Name:             s.name,
			School:           s.school,
			Wins:             s.wins,
			Rounds:           s.rounds,
			WinRate:          winRate,
			AvgPoints:        avgPoints,
			SkillScore:       skill,
			Tournaments:      len(s.tournamentOrder),
			AvgPerTournament: avgPerTournament,
		})
	}
	sortSpeakers(speakers, mode)

	return Boards{Teams: teams, Duos: duos, Speakers: speakers}
}

// sortSpeakers orders speakers by the mode's primary key and re-ranks.
func sortSpeakers(speakers []types.SpeakerEntry, mode Mode) {
	primary := func(e types.SpeakerEntry) float64 { return e.SkillScore }
	if mode == ModePerTournament {
		primary = func(e types.SpeakerEntry) float64 { return e.AvgPerTournament }
	}
	sort.SliceStable(speakers, func(i, j int) bool {
		x, y := speakers[i], speakers[j]
		if primary(x) != primary(y) {
			return primary(x) > primary(y)
		}
		if x.Wins != y.Wins {
			return x.Wins > y.Wins
		}
		if x.WinRate != y.WinRate {
			return x.WinRate > y.WinRate
		}
		return x.AvgPoints > y.AvgPoints
	})
	for i := range speakers {
		speakers[i].Rank = i + 1
	}
}

func applyTeamRanks(teams []types.TeamEntry) {
	for i := range teams {
		teams[i].Rank = i + 1
	}
}

// ratio is wins over rounds, defined as 0 for zero rounds.
func ratio(wins, rounds int) float64 {
	if rounds == 0 {
		return 0
	}
	return float64(wins) / float64(rounds)
}
