package search

import (
	"strings"

	sfuzzy "github.com/sahilm/fuzzy"
)

// suggestionPrefixLen is how many leading query characters must prefix a
// candidate (or one of its words) for it to count as an abbreviation match.
const suggestionPrefixLen = 3

// GenerateSearchSuggestions returns up to maxCount distinct completions for
// query, drawn from the titles and keywords of the best matching items.
// Candidates containing every query character in order come first.
func GenerateSearchSuggestions(query string, items []SearchableItem, maxCount int) []string {
	q := Normalize(query)
	if q == "" || maxCount <= 0 {
		return []string{}
	}

	var (
		candidates []string
		lowered    []string
	)
	seen := make(map[string]struct{})
	consider := func(s string) {
		s = strings.TrimSpace(s)
		key := Normalize(s)
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		if !relevantSuggestion(q, key) {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, s)
		lowered = append(lowered, key)
	}

	for _, r := range FuzzySearch(q, items, Options{}) {
		consider(r.Title)
		for _, kw := range r.Keywords {
			consider(kw)
		}
	}

	out := make([]string, 0, min(maxCount, len(candidates)))
	used := make([]bool, len(candidates))
	for _, m := range sfuzzy.Find(q, lowered) {
		if len(out) == maxCount {
			return out
		}
		out = append(out, candidates[m.Index])
		used[m.Index] = true
	}
	for i, c := range candidates {
		if len(out) == maxCount {
			break
		}
		if !used[i] {
			out = append(out, c)
		}
	}
	return out
}

// relevantSuggestion reports whether candidate contains q or starts (at the
// string or at a word) with q's leading characters. Both must be normalized.
func relevantSuggestion(q, candidate string) bool {
	if strings.Contains(candidate, q) {
		return true
	}
	prefix := truncateRunes(q, suggestionPrefixLen)
	if strings.HasPrefix(candidate, prefix) {
		return true
	}
	for _, w := range Tokenize(candidate) {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}
