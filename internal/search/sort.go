package search

import "sort"

// SortResults sorts results by score (descending). Ties keep their input order.
func SortResults(results []ScoredResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
}
