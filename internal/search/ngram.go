package search

import "math"

// bigramCosine computes cosine similarity between the character-bigram
// frequency vectors of a and b. Single-rune strings count as one unigram.
func bigramCosine(a, b string) float64 {
	va := bigrams(a)
	vb := bigrams(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0
	}
	var dot, na, nb float64
	for k, x := range va {
		na += float64(x * x)
		if y, ok := vb[k]; ok {
			dot += float64(x * y)
		}
	}
	for _, y := range vb {
		nb += float64(y * y)
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0
	}
	return clamp01(dot / den)
}

func bigrams(s string) map[string]int {
	runes := []rune(s)
	out := make(map[string]int, len(runes))
	if len(runes) == 1 {
		out[s]++
		return out
	}
	for i := 0; i+1 < len(runes); i++ {
		out[string(runes[i:i+2])]++
	}
	return out
}
