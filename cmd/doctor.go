package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppmportal/navsearch/internal/config"
	"github.com/ppmportal/navsearch/internal/search"
	searchindex "github.com/ppmportal/navsearch/internal/search/index"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the configuration, catalog sources and index",
	Long: `Check that navsearch's configuration parses, that every catalog item is valid
(unique IDs, titles, known categories) and that the index snapshot matches
the sources. Run this after editing the catalog by hand.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	failures := 0
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		failures++
	}

	printSection("navsearch doctor")
	fmt.Println()

	// ── Check 1: config ───────────────────────────────────────────────────────
	fmt.Println("[ navsearch.yaml ]")
	cfg, err := config.Load()
	if err != nil {
		failD("%v", err)
		fmt.Println()
		return fmt.Errorf("configuration is not usable — run 'navsearch init'")
	}
	printOK("", fmt.Sprintf("threshold %.2f, limit %d, max suggestions %d", cfg.Threshold, cfg.Limit, cfg.MaxSuggestions))
	fmt.Println()

	// ── Check 2: catalog file ─────────────────────────────────────────────────
	fmt.Println("[ catalog file ]")
	fileItems, err := search.LoadCatalogFile(cfg.CatalogPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		printMiss("", fmt.Sprintf("%s not found", cfg.CatalogPath))
	case err != nil:
		failD("%v", err)
	default:
		printOK("", fmt.Sprintf("%d item(s) in %s", len(fileItems), cfg.CatalogPath))
	}
	fmt.Println()

	// ── Check 3: pages ────────────────────────────────────────────────────────
	fmt.Println("[ pages ]")
	pageItems, err := search.DiscoverItems(cfg.PagesDir)
	if err != nil {
		failD("%v", err)
	} else {
		printOK("", fmt.Sprintf("%d page(s) under %s", len(pageItems), cfg.PagesDir))
	}
	fmt.Println()

	// ── Check 4: merged catalog ───────────────────────────────────────────────
	fmt.Println("[ catalog ]")
	items := search.MergeItems(fileItems, pageItems)
	if problems := search.ValidateItems(items); len(problems) > 0 {
		for _, p := range problems {
			failD("%v", p)
		}
	} else if len(items) == 0 {
		printWarn("", "catalog is empty — every search will return no results")
	} else {
		printOK("", fmt.Sprintf("%d searchable item(s)", len(items)))
	}
	shadowed := len(fileItems) + len(pageItems) - len(items)
	if shadowed > 0 {
		printInfo("", fmt.Sprintf("%d page(s) shadowed by catalog entries with the same ID", shadowed))
	}
	fmt.Println()

	// ── Check 5: index snapshot ───────────────────────────────────────────────
	fmt.Println("[ index ]")
	idx, err := searchindex.Load(cfg.IndexDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		printMiss("", "no snapshot — searches read the sources directly (run 'navsearch index')")
	case err != nil:
		failD("cannot load index: %v", err)
	case !searchindex.IsFresh(idx, items):
		printWarn("", fmt.Sprintf("snapshot from %s is stale — run 'navsearch index'", idx.Manifest.CreatedAt))
	default:
		printOK("", fmt.Sprintf("snapshot up to date (%d items, built %s)", idx.Manifest.ItemCount, idx.Manifest.CreatedAt))
	}
	fmt.Println()

	if failures > 0 {
		return fmt.Errorf("%d problem(s) found", failures)
	}
	printOK("", "all checks passed")
	return nil
}
