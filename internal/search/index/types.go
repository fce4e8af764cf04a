package index

import "github.com/ppmportal/navsearch/internal/search"

// Manifest describes a catalog snapshot and how to interpret it.
type Manifest struct {
	IndexVersion int    `json:"index_version"`
	CreatedAt    string `json:"created_at"`
	ItemCount    int    `json:"item_count"`
	CatalogHash  string `json:"catalog_hash"`
	ItemsFile    string `json:"items_file"`
}

// ItemEntry represents one item row in items.jsonl.
type ItemEntry struct {
	search.SearchableItem
	TextHash  string `json:"text_hash"`
	UpdatedAt string `json:"updated_at"`
}

// Index is a loaded catalog snapshot.
type Index struct {
	Manifest Manifest
	Entries  []ItemEntry
}

// Items returns the indexed items in snapshot order.
func (idx *Index) Items() []search.SearchableItem {
	out := make([]search.SearchableItem, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		out = append(out, e.SearchableItem)
	}
	return out
}

const (
	currentVersion   = 1
	manifestFile     = "index_manifest.json"
	defaultItemsFile = "items.jsonl"
)
