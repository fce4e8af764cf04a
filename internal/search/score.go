package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// maxScoredRunes bounds the inputs of the quadratic signals.
	maxScoredRunes = 256
	maxScoredWords = 64

	// editFloor is the minimum edit similarity that counts as related.
	editFloor = 0.5
)

// Similarity scores how well query matches candidate. Returns 0..1, where 1
// is a case-insensitive exact match and 0 means no detected relationship.
func Similarity(query, candidate string) float64 {
	return similarity(Normalize(query), Normalize(candidate))
}

// similarity expects both arguments already normalized.
func similarity(q, c string) float64 {
	if q == "" || c == "" {
		return 0
	}
	if q == c {
		return 1
	}

	score := 0.0

	// Prefix match: candidate starts with query
	if strings.HasPrefix(c, q) {
		score = max(score, 0.85+0.1*ratio(q, c))
	}

	words := Tokenize(c)
	if len(words) > maxScoredWords {
		words = words[:maxScoredWords]
	}

	// Word-start match
	for _, w := range words {
		if strings.HasPrefix(w, q) {
			score = max(score, 0.8)
			break
		}
	}

	// Substring match, shorter candidates are more specific
	switch {
	case strings.Contains(c, q):
		score = max(score, 0.6+0.25*ratio(q, c))
	case strings.Contains(q, c):
		score = max(score, 0.4+0.2*ratio(c, q))
	}

	qs := truncateRunes(q, maxScoredRunes)
	cs := truncateRunes(c, maxScoredRunes)

	// All query characters appear in order
	if fuzzy.Match(qs, cs) {
		score = max(score, 0.3+0.3*ratio(qs, cs))
	}

	score = max(score, editSimilarity(qs, cs)*0.5)
	for _, w := range words {
		score = max(score, editSimilarity(qs, truncateRunes(w, maxScoredRunes))*0.7)
	}

	score = max(score, bigramCosine(qs, cs)*0.5)

	return clamp01(score)
}

// editSimilarity is 1 - levenshtein/maxLen, or 0 when less than half agrees.
func editSimilarity(a, b string) float64 {
	n := max(runeLen(a), runeLen(b))
	if n == 0 {
		return 0
	}
	sim := 1 - float64(fuzzy.LevenshteinDistance(a, b))/float64(n)
	if sim < editFloor {
		return 0
	}
	return sim
}

// ratio returns len(short)/len(long) in runes, capped at 1.
func ratio(short, long string) float64 {
	l := runeLen(long)
	if l == 0 {
		return 0
	}
	return clamp01(float64(runeLen(short)) / float64(l))
}
