// Package extract recovers structured participant scores from the free-text
// point cells found in tournament exports.
//
// Extraction degrades in a fixed order and never fails: named (name, score)
// pairs first, then an anonymous half-split of whatever numbers the cell
// holds, then an empty result worth zero points.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/podium-rank/podium/internal/domain/model"
)

// Name runs are letters, apostrophes, hyphens and internal spaces, at least
// two characters, starting with a letter and containing no digits. The lazy
// quantifier keeps a trailing number out of the name capture.
var (
	pairPattern   = regexp.MustCompile(`(\p{L}[\p{L}'’\- ]+?)\s+(\d+(?:\.\d+)?)`)
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
	spaceRun      = regexp.MustCompile(`\s+`)
)

// Scores extracts participant scores from one raw cell value. The cell may
// be text or numeric; anything else is stringified before scanning.
// placeholderPrefix names the side for synthesized participants, e.g. "Aff"
// yields "Aff Speaker 1" and "Aff Speaker 2".
func Scores(cell any, placeholderPrefix string) []model.ParticipantScore {
	text := cellText(cell)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if pairs := namedPairs(text); len(pairs) > 0 {
		return pairs
	}

	nums := numberPattern.FindAllString(text, -1)
	if len(nums) == 0 {
		return nil
	}

	// Numbers without names usually mean the export collapsed a two-person
	// team into one aggregate total. Split the mean evenly across two
	// synthesized speakers so the side still totals something sensible.
	var sum float64
	for _, n := range nums {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			continue
		}
		sum += v
	}
	half := sum / float64(len(nums)) / 2
	return []model.ParticipantScore{
		{Name: placeholderPrefix + " Speaker 1", Score: half},
		{Name: placeholderPrefix + " Speaker 2", Score: half},
	}
}

// namedPairs scans text left to right for non-overlapping name/score pairs.
func namedPairs(text string) []model.ParticipantScore {
	matches := pairPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]model.ParticipantScore, 0, len(matches))
	for _, m := range matches {
		name := collapseSpaces(strings.TrimSpace(m[1]))
		if len([]rune(name)) < 2 {
			continue
		}
		score, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		out = append(out, model.ParticipantScore{Name: name, Score: score})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func collapseSpaces(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

// cellText normalizes a raw cell value to text for scanning. Table readers
// hand over strings, but JSON or spreadsheet cells may arrive numeric.
func cellText(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
