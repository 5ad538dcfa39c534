// Package columns resolves semantic roles from the free-form header labels
// of a round table. Labels from real exports vary in casing, carry tab runs
// and stray quotes, so matching happens on a normalized form.
package columns

import (
	"regexp"
	"strings"
)

// Role identifies what a resolved column holds.
type Role string

const (
	// AffTeam and NegTeam identify the side columns. Both are required for
	// a table to be usable.
	AffTeam Role = "aff_team"
	NegTeam Role = "neg_team"

	// Winner marks the win-indicator column. Optional: without it every
	// round in the table is undetermined.
	Winner Role = "winner"

	// AffPoints and NegPoints mark the score blob columns. Optional: without
	// them sides score zero.
	AffPoints Role = "aff_points"
	NegPoints Role = "neg_points"
)

// allRoles is the deterministic reporting order for Missing.
var allRoles = []Role{AffTeam, NegTeam, Winner, AffPoints, NegPoints}

// pointsTokens mark a score blob column when combined with a side token.
var pointsTokens = []string{"point", "pts", "score"}

var (
	spaceRun   = regexp.MustCompile(`\s+`)
	quoteChars = strings.NewReplacer(`"`, "", "'", "", "“", "", "”", "", "‘", "", "’", "", "`", "")
)

// RoleMap maps resolved roles to the concrete source label they came from.
// A partial map is valid; absent roles degrade per role, they do not fail.
type RoleMap map[Role]string

// Missing lists unresolved roles in a fixed order.
func (m RoleMap) Missing() []Role {
	var missing []Role
	for _, r := range allRoles {
		if _, ok := m[r]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

// Usable reports whether both side-identifier columns resolved. Tables
// without them cannot produce round results.
func (m RoleMap) Usable() bool {
	_, aff := m[AffTeam]
	_, neg := m[NegTeam]
	return aff && neg
}

// Normalize canonicalizes one header label: trim, collapse internal
// whitespace runs (tabs included) to a single space, strip quote characters.
func Normalize(label string) string {
	label = quoteChars.Replace(label)
	label = spaceRun.ReplaceAllString(label, " ")
	return strings.TrimSpace(label)
}

// Resolve identifies role columns among the given labels. Per role the first
// matching label wins, scanning labels in their source order; keyword
// containment is tried before the prefix fallback for the team roles.
func Resolve(labels []string) RoleMap {
	norm := make([]string, len(labels))
	for i, l := range labels {
		norm[i] = strings.ToLower(Normalize(l))
	}

	m := RoleMap{}
	assign := func(role Role, match func(string) bool) {
		if _, done := m[role]; done {
			return
		}
		for i, n := range norm {
			if n != "" && match(n) {
				m[role] = labels[i]
				return
			}
		}
	}

	assign(Winner, func(n string) bool { return strings.Contains(n, "win") })
	assign(AffPoints, func(n string) bool { return strings.Contains(n, "aff") && hasPointsToken(n) })
	assign(NegPoints, func(n string) bool { return strings.Contains(n, "neg") && hasPointsToken(n) })

	// Team identifiers: containment first, excluding columns already claimed
	// by score or winner semantics, then a bare prefix fallback.
	assign(AffTeam, func(n string) bool {
		return strings.Contains(n, "aff") && !hasPointsToken(n) && !strings.Contains(n, "win")
	})
	assign(AffTeam, func(n string) bool { return strings.HasPrefix(n, "aff") })
	assign(NegTeam, func(n string) bool {
		return strings.Contains(n, "neg") && !hasPointsToken(n) && !strings.Contains(n, "win")
	})
	assign(NegTeam, func(n string) bool { return strings.HasPrefix(n, "neg") })

	return m
}

func hasPointsToken(n string) bool {
	for _, t := range pointsTokens {
		if strings.Contains(n, t) {
			return true
		}
	}
	return false
}
