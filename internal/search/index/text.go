package index

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ppmportal/navsearch/internal/search"
)

// CanonicalText returns the canonical text identifying an item's content.
func CanonicalText(it search.SearchableItem) string {
	parts := []string{
		"id: " + strings.TrimSpace(it.ID),
		"title: " + strings.TrimSpace(it.Title),
		"description: " + strings.TrimSpace(it.Description),
		"href: " + strings.TrimSpace(it.Href),
		"category: " + string(it.Category),
	}
	if len(it.Keywords) > 0 {
		parts = append(parts, "keywords: "+strings.Join(it.Keywords, ", "))
	}
	return strings.Join(parts, "\n")
}

// TextHash returns a sha256 hash (hex) of the canonical text.
func TextHash(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// CatalogHash identifies an ordered catalog. Any item change, addition,
// removal or reordering produces a different hash.
func CatalogHash(items []search.SearchableItem) string {
	h := sha256.New()
	for _, it := range items {
		h.Write([]byte(TextHash(CanonicalText(it))))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
