package search

import (
	"slices"
	"sort"
	"strings"
)

// KeywordSearch matches items by case-insensitive substring over id, title,
// description and keywords. All query tokens must match (AND semantics).
// Every hit scores 1 and results are ordered by ID.
func KeywordSearch(items []SearchableItem, query string, limit int) []ScoredResult {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []ScoredResult{}
	}

	out := []ScoredResult{}
	for _, it := range items {
		fields := append([]string{it.ID, it.Title, it.Description}, it.Keywords...)
		blob := Normalize(strings.Join(fields, "\n"))
		ok := true
		for _, tok := range tokens {
			if !strings.Contains(blob, tok) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		r := ScoredResult{SearchableItem: it, RelevanceScore: 1}
		r.Keywords = slices.Clone(it.Keywords)
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
