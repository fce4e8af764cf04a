package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppmportal/navsearch/internal/importer"
)

var (
	flagImportSource    string
	flagImportOverwrite bool
)

var importCmd = &cobra.Command{
	Use:   "import <catalog-file>",
	Short: "Merge another catalog (YAML or JSON) into the local catalog",
	Long: `Merge items from another catalog file into ~/.navsearch/catalog.yaml by ID.

  identical item   → skipped
  new item         → appended
  different item   → reported as a conflict; kept unless --overwrite

Items whose ID matches an 'excludes' pattern in navsearch.yaml are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportSource, "source", "", "Name recorded for conflicts (default: file name)")
	importCmd.Flags().BoolVar(&flagImportOverwrite, "overwrite", false, "Replace conflicting local items")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	printSection("Import")
	r, err := importer.ImportFile(cfg.CatalogPath, args[0], flagImportSource, importer.Options{
		Excludes:  cfg.Excludes,
		Overwrite: flagImportOverwrite,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	for _, c := range r.Conflicts {
		if flagImportOverwrite {
			printWarn(c.ID, fmt.Sprintf("replaced with version from %s", c.Source))
		} else {
			printWarn(c.ID, fmt.Sprintf("differs in %s — kept local version (use --overwrite to replace)", c.Source))
		}
	}
	printOK("", fmt.Sprintf("%d imported, %d replaced, %d identical, %d excluded",
		r.Imported, r.Replaced, r.Skipped, r.Excluded))
	if r.Imported+r.Replaced > 0 {
		printInfo("", "run 'navsearch index' to refresh the snapshot")
	}
	return nil
}
