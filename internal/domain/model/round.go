// Package model contains domain models passed between layers.
package model

// RawRow is one row of a source table: column label -> raw cell value.
// Rows are owned by the caller and never mutated by the engine.
type RawRow map[string]any

// Table is an ordered group of rows sharing one header shape. Column roles
// are resolved once per table and apply to every row in it.
type Table struct {
	Labels []string
	Rows   []RawRow
}

// Tournament is one registered competition. Recency is positional: the
// session store keeps tournaments in arrival order, most recent last.
type Tournament struct {
	ID          string
	Name        string
	LevelWeight float64
	Tables      []Table
}

// ParticipantScore pairs a speaker name with their points for one round.
// Name may be a synthesized placeholder (e.g. "Aff Speaker 1") when the
// source cell held numbers without names; that is degraded, not invalid.
type ParticipantScore struct {
	Name  string
	Score float64
}

// SideResult is one side of a judged round.
type SideResult struct {
	TeamLabel    string
	Won          bool
	Participants []ParticipantScore
}

// TotalScore sums the side's participant scores.
func (s SideResult) TotalScore() float64 {
	var total float64
	for _, p := range s.Participants {
		total += p.Score
	}
	return total
}

// RoundResult is one normalized judged round. At most one side has Won set;
// both false means the winner cell was missing or unparseable.
type RoundResult struct {
	Tournament  string
	Affirmative SideResult
	Negative    SideResult
}

// SkipReport names a table that could not be normalized and why. Skips are
// informational: the rest of the tournament keeps processing.
type SkipReport struct {
	Tournament string
	Reason     string
}
