package main

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

// maxTypoDistance bounds the edit distance of a "did you mean" candidate.
const maxTypoDistance = 3

// suggest returns the candidate closest to input, or "" when nothing is
// close enough. Fuzzy subsequence matches win over typo distance.
func suggest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(candidates) == 0 {
		return ""
	}
	if matches := fuzzy.Find(input, candidates); len(matches) > 0 {
		return matches[0].Str
	}

	best, bestDist := "", maxTypoDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(input, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// unknownError builds an "unknown X" error with a suggestion when one exists.
func unknownError(what, input string, candidates []string) error {
	if s := suggest(input, candidates); s != "" {
		return fmt.Errorf("unknown %s %q (did you mean %q?)", what, input, s)
	}
	return fmt.Errorf("unknown %s %q: use one of %s", what, input, strings.Join(candidates, ", "))
}
