// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	maxSuggestions    = 3
	maxEditDistance   = 2
	minSubsequenceLen = 2
)

// suggest returns up to maxSuggestions registered aliases close to name:
// aliases within a small edit distance, and aliases that contain name as a
// subsequence (so "dep" finds "deploy"). Closest first.
func suggest(name string, aliases []string) []string {
	type candidate struct {
		alias    string
		distance int
	}

	seen := make(map[string]bool)
	var cands []candidate
	add := func(alias string, distance int) {
		if seen[alias] {
			return
		}
		seen[alias] = true
		cands = append(cands, candidate{alias: alias, distance: distance})
	}

	if len(name) > maxEditDistance {
		for _, alias := range aliases {
			if d := fuzzy.LevenshteinDistance(name, alias); d <= maxEditDistance {
				add(alias, d)
			}
		}
	}
	if len(name) >= minSubsequenceLen {
		for _, rank := range fuzzy.RankFindFold(name, aliases) {
			add(rank.Target, rank.Distance)
		}
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		if a.alias < b.alias {
			return -1
		}
		if a.alias > b.alias {
			return 1
		}
		return 0
	})

	out := make([]string, 0, maxSuggestions)
	for _, c := range cands {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.alias)
	}
	return out
}
