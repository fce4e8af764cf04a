package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ppmportal/navsearch/internal/config"
	"github.com/ppmportal/navsearch/internal/search"
	searchindex "github.com/ppmportal/navsearch/internal/search/index"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'navsearch init' first.", err)
	}
	return cfg, nil
}

// loadSources reads the catalog file and the pages tree and merges them.
// Catalog file entries win over pages with the same ID.
func loadSources(cfg *config.Config) ([]search.SearchableItem, error) {
	fileItems, err := search.LoadCatalogFile(cfg.CatalogPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.WithField("path", cfg.CatalogPath).Debug("catalog file not found")
	}
	var pageItems []search.SearchableItem
	if cfg.PagesDir != "" {
		pageItems, err = search.DiscoverItems(cfg.PagesDir)
		if err != nil {
			return nil, err
		}
	}
	items := search.MergeItems(fileItems, pageItems)
	log.WithField("file_items", len(fileItems)).WithField("page_items", len(pageItems)).Debug("catalog sources loaded")
	return items, nil
}

// loadCatalog prefers the index snapshot and falls back to the sources when
// the snapshot is missing, broken or disabled with --no-index.
func loadCatalog(cfg *config.Config) ([]search.SearchableItem, error) {
	if !flagNoIndex {
		idx, err := searchindex.Load(cfg.IndexDir)
		if err == nil {
			log.WithField("dir", cfg.IndexDir).WithField("items", len(idx.Entries)).Debug("using index snapshot")
			return idx.Items(), nil
		}
		log.WithError(err).Debug("index snapshot unavailable, reading sources")
	}
	return loadSources(cfg)
}
