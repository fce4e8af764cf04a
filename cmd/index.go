package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	searchindex "github.com/ppmportal/navsearch/internal/search/index"
)

var flagIndexForce bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build or update the catalog snapshot (~/.navsearch/index)",
	Long: `Snapshot the catalog file and the pages tree into the index directory.
Search and suggest read the snapshot when it exists; run this after editing
the catalog, or pass --no-index to read the sources directly.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&flagIndexForce, "force", false, "Rewrite every entry even if unchanged")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	items, err := loadSources(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	printInfo("", fmt.Sprintf("indexing %d item(s)", len(items)))
	idx, stats, err := searchindex.Build(ctx, searchindex.BuildOptions{
		Items:  items,
		OutDir: cfg.IndexDir,
		Force:  flagIndexForce,
	})
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}
	log.WithField("catalog_hash", idx.Manifest.CatalogHash).Debug("index written")

	if !stats.Changed() {
		printOK("", fmt.Sprintf("index up to date: %s (%d unchanged)", cfg.IndexDir, stats.Unchanged))
		return nil
	}
	printOK("", fmt.Sprintf("index written: %s", cfg.IndexDir))
	printInfo("", fmt.Sprintf("added %d, updated %d, removed %d, unchanged %d",
		stats.Added, stats.Updated, stats.Removed, stats.Unchanged))
	return nil
}
