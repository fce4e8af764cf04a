package search

import (
	"fmt"
	"strings"
)

// Category classifies a searchable item for grouping in the search bar.
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategoryFeature    Category = "feature"
	CategoryContent    Category = "content"
	CategoryHelp       Category = "help"
)

// ParseCategory parses s case-insensitively. An empty string yields CategoryContent.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CategoryContent, nil
	case CategoryNavigation, CategoryFeature, CategoryContent, CategoryHelp:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// SearchableItem is one entry of the search corpus.
type SearchableItem struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Href        string   `json:"href" yaml:"href"`
	Category    Category `json:"category" yaml:"category"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// ScoredResult represents one matched item.
type ScoredResult struct {
	SearchableItem
	RelevanceScore float64 `json:"relevanceScore"`
}

// DefaultThreshold is used when Options.Threshold is zero.
const DefaultThreshold = 0.2

// Options tunes FuzzySearch.
type Options struct {
	Threshold float64
}

func (o Options) threshold() float64 {
	t := o.Threshold
	if t == 0 {
		return DefaultThreshold
	}
	return clamp01(t)
}
