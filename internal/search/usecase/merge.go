package usecase

import (
	"sort"

	"search-srv/internal/search"
)

// mergeResults concatenates per-type lists in fan-out order and sorts by score, highest first.
// The sort is stable: equal scores keep their fan-out order.
func mergeResults(lists [][]search.SearchResult) []search.SearchResult {
	n := 0
	for _, l := range lists {
		n += len(l)
	}

	merged := make([]search.SearchResult, 0, n)
	for _, l := range lists {
		merged = append(merged, l...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RelevanceScore > merged[j].RelevanceScore
	})
	return merged
}
