// Package types contains common types used across the application
package types

// TeamEntry is one row of a team leaderboard.
type TeamEntry struct {
	Rank        int     `json:"rank"`
	Team        string  `json:"team"`
	Wins        int     `json:"wins"`
	Rounds      int     `json:"rounds"`
	WinRate     float64 `json:"win_rate"`
	TotalScore  float64 `json:"total_score"`
	Tournaments int     `json:"tournaments"`
}

// DuoEntry is one row of a duo leaderboard. Members are stored in
// lexicographic order so the pair's identity never depends on source order.
type DuoEntry struct {
	Rank       int     `json:"rank"`
	Member1    string  `json:"member1"`
	Member2    string  `json:"member2"`
	Wins       int     `json:"wins"`
	Rounds     int     `json:"rounds"`
	WinRate    float64 `json:"win_rate"`
	AvgScore   float64 `json:"avg_score"`
	SkillScore float64 `json:"skill_score"`
}

// SpeakerEntry is one row of an individual leaderboard. School is the
// team label the speaker was most recently seen under.
type SpeakerEntry struct {
	Rank             int     `json:"rank"`
	Name             string  `json:"name"`
	School           string  `json:"school"`
	Wins             int     `json:"wins"`
	Rounds           int     `json:"rounds"`
	WinRate          float64 `json:"win_rate"`
	AvgPoints        float64 `json:"avg_points"`
	SkillScore       float64 `json:"skill_score"`
	Tournaments      int     `json:"tournaments"`
	AvgPerTournament float64 `json:"avg_per_tournament"`
}
