package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog (YAML or JSON).
type catalogFile struct {
	Items []SearchableItem `json:"items" yaml:"items"`
}

// LoadCatalogFile reads a catalog from a .yaml/.yml or .json file, cleans up
// every item and validates the result.
func LoadCatalogFile(path string) ([]SearchableItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog %s: %w", path, err)
	}

	var cf catalogFile
	if isJSON(path) {
		err = json.Unmarshal(b, &cf)
	} else {
		err = yaml.Unmarshal(b, &cf)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	items := make([]SearchableItem, 0, len(cf.Items))
	for i, it := range cf.Items {
		clean, err := CleanItem(it)
		if err != nil {
			return nil, fmt.Errorf("catalog %s item %d: %w", path, i, err)
		}
		items = append(items, clean)
	}
	if errs := ValidateItems(items); len(errs) > 0 {
		return nil, fmt.Errorf("catalog %s: %w", path, errors.Join(errs...))
	}
	return items, nil
}

// SaveCatalogFile writes items to path, choosing JSON or YAML by extension.
func SaveCatalogFile(path string, items []SearchableItem) error {
	cf := catalogFile{Items: items}
	if cf.Items == nil {
		cf.Items = []SearchableItem{}
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(cf, "", "  ")
	} else {
		data, err = yaml.Marshal(cf)
	}
	if err != nil {
		return fmt.Errorf("cannot marshal catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create catalog dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write catalog %s: %w", path, err)
	}
	return nil
}

// CleanItem trims every text field, drops empty keywords and canonicalizes
// the category.
func CleanItem(it SearchableItem) (SearchableItem, error) {
	category, err := ParseCategory(string(it.Category))
	if err != nil {
		return SearchableItem{}, err
	}
	out := SearchableItem{
		ID:          strings.TrimSpace(it.ID),
		Title:       strings.TrimSpace(it.Title),
		Description: strings.TrimSpace(it.Description),
		Href:        strings.TrimSpace(it.Href),
		Category:    category,
	}
	for _, kw := range it.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			out.Keywords = append(out.Keywords, kw)
		}
	}
	return out, nil
}

// ValidateItems reports every problem in items: empty IDs or titles,
// duplicate IDs and unknown categories.
func ValidateItems(items []SearchableItem) []error {
	var errs []error
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			errs = append(errs, fmt.Errorf("item %d: %w: id", i, ErrMissingField))
		} else if prev, ok := seen[it.ID]; ok {
			errs = append(errs, fmt.Errorf("item %d: %w %q (first at item %d)", i, ErrDuplicateID, it.ID, prev))
		} else {
			seen[it.ID] = i
		}
		if it.Title == "" {
			errs = append(errs, fmt.Errorf("item %d (%s): %w: title", i, it.ID, ErrMissingField))
		}
		if _, err := ParseCategory(string(it.Category)); err != nil {
			errs = append(errs, fmt.Errorf("item %d (%s): %w", i, it.ID, err))
		}
	}
	return errs
}

// MergeItems returns primary followed by the secondary items whose IDs are
// not already present. primary wins on conflicts.
func MergeItems(primary, secondary []SearchableItem) []SearchableItem {
	out := make([]SearchableItem, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary))
	for _, it := range primary {
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	for _, it := range secondary {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
