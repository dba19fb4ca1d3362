// Package fuzzy scores and ranks candidate strings against user input.
//
// It backs the reverse history search of the line editor and the keyword
// completer of the readline package.
package fuzzy

import (
	"sort"
	"strings"
)

// Score calculates a fuzzy matching score between input and candidate.
// Returns 0 if no match, higher scores for better matches:
//   - Exact match: 1000
//   - Prefix match: 800 + 10 per input rune
//   - Substring match: 500 + 5 per input rune
//   - Ordered subsequence: 10 per matched rune
//
// An empty input matches everything with a score of 1.
func Score(input, candidate string, ignoreCase bool) int {
	if input == "" {
		return 1
	}
	if candidate == "" {
		return 0
	}

	if ignoreCase {
		input = strings.ToLower(input)
		candidate = strings.ToLower(candidate)
	}

	n := len([]rune(input))
	if input == candidate {
		return 1000
	}
	if strings.HasPrefix(candidate, input) {
		return 800 + n*10
	}
	if strings.Contains(candidate, input) {
		return 500 + n*5
	}

	// Character-by-character matching, candidate runes consumed in order.
	cand := []rune(candidate)
	score := 0
	idx := 0
	for _, want := range input {
		matched := false
		for idx < len(cand) {
			got := cand[idx]
			idx++
			if got == want {
				matched = true
				break
			}
		}
		if !matched {
			break
		}
		score += 10
	}
	return score
}

// Match is a scored candidate.
type Match struct {
	Text  string
	Score int
}

// Rank returns the candidates matching input ordered by descending score.
// Candidates with equal scores keep their original relative order. An empty
// input returns every candidate in its original order.
func Rank(input string, candidates []string, ignoreCase bool) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if s := Score(input, c, ignoreCase); s > 0 {
			matches = append(matches, Match{Text: c, Score: s})
		}
	}
	if input == "" {
		return matches
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
