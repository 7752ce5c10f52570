// Package classify implements the dictionary-based classification engine.
// A statement matches a keyword when the lower-cased keyword occurs as a
// contiguous substring of the lower-cased statement; there is no token or
// word-boundary handling, so "art" matches inside "start".
package classify

import (
	"strings"

	"tacticlens/internal/models"
)

// Text classifies one statement against a tactic snapshot. Tactics are
// evaluated independently; a statement may match zero, some, or all of
// them. Matches lists the distinct matching keywords in dictionary order
// (not order of appearance in the text), and Count is the number of
// distinct matching keywords, not an occurrence count.
func Text(text string, tactics []models.Tactic) []models.TacticResult {
	lower := strings.ToLower(text)

	results := make([]models.TacticResult, len(tactics))
	for i, tactic := range tactics {
		var matches []string
		for _, kw := range tactic.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matches = append(matches, kw)
			}
		}
		results[i] = models.TacticResult{
			Tactic:  tactic.Name,
			Present: len(matches) > 0,
			Count:   len(matches),
			Matches: matches,
		}
	}
	return results
}
