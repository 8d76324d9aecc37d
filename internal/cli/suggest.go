// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - "did you mean" hints for mistyped names.
package cli

import (
	"sort"
	"strings"
)

// commandList returns the top-level command names in a stable order.
func commandList() []string {
	names := make([]string, 0, len(commandNames))
	for name := range commandNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var configSubcommands = []string{"show", "path", "get", "keys"}

// Suggest returns the candidate closest to input, or "" when nothing is
// close enough to be a plausible typo. Ties go to the earlier candidate.
func Suggest(input string, candidates []string) string {
	input = strings.ToLower(input)
	if len(input) < 2 {
		return ""
	}

	maxDistance := 1
	switch n := len([]rune(input)); {
	case n > 8:
		maxDistance = 3
	case n >= 4:
		maxDistance = 2
	}

	best, bestDistance := "", maxDistance+1
	for _, c := range candidates {
		d := editDistance(input, strings.ToLower(c))
		if d == 0 {
			return ""
		}
		if d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}

// suggestExample turns a suggestion into a UsageError example, falling back
// to the given default.
func suggestExample(prefix, suggestion, fallback string) string {
	if suggestion == "" {
		return fallback
	}
	return prefix + suggestion
}

// editDistance is the Levenshtein distance between a and b, by rune.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
