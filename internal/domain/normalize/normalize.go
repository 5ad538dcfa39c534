// Package normalize converts raw table rows into side/result round records.
// It performs no aggregation: every row is handled independently, and
// malformed input degrades per the engine's taxonomy instead of erroring.
package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/podium-rank/podium/internal/domain/columns"
	"github.com/podium-rank/podium/internal/domain/extract"
	"github.com/podium-rank/podium/internal/domain/model"
)

// Placeholder prefixes for synthesized participants.
const (
	affPrefix = "Aff"
	negPrefix = "Neg"
)

// Row converts one raw row into a RoundResult using pre-resolved roles.
// The winner cell decides at most one side's Won flag; an unparseable or
// missing winner leaves both false rather than inventing one.
func Row(row model.RawRow, roles columns.RoleMap, tournament string) model.RoundResult {
	aff := model.SideResult{TeamLabel: teamLabel(row, roles, columns.AffTeam)}
	neg := model.SideResult{TeamLabel: teamLabel(row, roles, columns.NegTeam)}

	if label, ok := roles[columns.Winner]; ok {
		switch classifyWinner(row[label]) {
		case affPrefix:
			aff.Won = true
		case negPrefix:
			neg.Won = true
		}
	}

	if label, ok := roles[columns.AffPoints]; ok {
		aff.Participants = extract.Scores(row[label], affPrefix)
	}
	if label, ok := roles[columns.NegPoints]; ok {
		neg.Participants = extract.Scores(row[label], negPrefix)
	}

	return model.RoundResult{Tournament: tournament, Affirmative: aff, Negative: neg}
}

// Table resolves column roles once for the table and normalizes every row.
// A table whose side-identifier columns cannot be resolved is skipped whole,
// reported, and contributes nothing.
func Table(t model.Table, tournament string) ([]model.RoundResult, *model.SkipReport) {
	labels := t.Labels
	if len(labels) == 0 {
		labels = labelsFromRows(t.Rows)
	}
	roles := columns.Resolve(labels)
	if !roles.Usable() {
		return nil, &model.SkipReport{
			Tournament: tournament,
			Reason:     fmt.Sprintf("unresolved columns: %s", joinRoles(roles.Missing())),
		}
	}

	rounds := make([]model.RoundResult, 0, len(t.Rows))
	for _, row := range t.Rows {
		rounds = append(rounds, Row(row, roles, tournament))
	}
	return rounds, nil
}

// Tournament normalizes all tables of a tournament, collecting skip reports
// for the unusable ones. Order of rounds follows table then row order.
func Tournament(t model.Tournament) ([]model.RoundResult, []model.SkipReport) {
	var rounds []model.RoundResult
	var skips []model.SkipReport
	for _, table := range t.Tables {
		r, skip := Table(table, t.Name)
		if skip != nil {
			skips = append(skips, *skip)
			continue
		}
		rounds = append(rounds, r...)
	}
	return rounds, skips
}

func teamLabel(row model.RawRow, roles columns.RoleMap, role columns.Role) string {
	label, ok := roles[role]
	if !ok {
		return ""
	}
	return strings.TrimSpace(cellString(row[label]))
}

// classifyWinner returns affPrefix, negPrefix or "" for undetermined.
func classifyWinner(cell any) string {
	v := strings.ToLower(strings.TrimSpace(cellString(cell)))
	switch {
	case strings.HasPrefix(v, "aff"):
		return affPrefix
	case strings.HasPrefix(v, "neg"):
		return negPrefix
	default:
		return ""
	}
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// labelsFromRows recovers a deterministic label set when the table reader
// did not preserve header order.
func labelsFromRows(rows []model.RawRow) []string {
	if len(rows) == 0 {
		return nil
	}
	labels := make([]string, 0, len(rows[0]))
	for l := range rows[0] {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func joinRoles(roles []columns.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
