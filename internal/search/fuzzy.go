package search

import "slices"

// Field weights applied to per-field similarity.
const (
	titleWeight       = 1.0
	keywordWeight     = 0.9
	descriptionWeight = 0.8

	// exactFieldScore is the floor for items with an exactly matching field.
	exactFieldScore = 0.95
)

// FuzzySearch ranks items against query. Only items scoring at least the
// threshold are returned, sorted by score descending. Items with equal scores
// keep their corpus order.
func FuzzySearch(query string, items []SearchableItem, opts Options) []ScoredResult {
	out := []ScoredResult{}
	q := Normalize(query)
	if q == "" {
		return out
	}
	threshold := opts.threshold()

	for _, it := range items {
		score := scoreItem(q, it)
		if score < threshold {
			continue
		}
		r := ScoredResult{SearchableItem: it, RelevanceScore: score}
		r.Keywords = slices.Clone(it.Keywords)
		out = append(out, r)
	}

	SortResults(out)
	return out
}

// scoreItem combines field scores: the best weighted field wins, and any exact
// field match lifts the item to exactFieldScore.
func scoreItem(q string, it SearchableItem) float64 {
	exact := false
	field := func(text string, weight float64) float64 {
		s := similarity(q, Normalize(text))
		if s == 1 {
			exact = true
		}
		return s * weight
	}

	best := field(it.Title, titleWeight)
	for _, kw := range it.Keywords {
		best = max(best, field(kw, keywordWeight))
	}
	best = max(best, field(it.Description, descriptionWeight))

	if exact {
		best = max(best, exactFieldScore)
	}
	return clamp01(best)
}
