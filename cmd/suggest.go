package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppmportal/navsearch/internal/search"
)

var flagSuggestMax int

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Show completion suggestions for a partial query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&flagSuggestMax, "max", 0, "Maximum number of suggestions (default from config)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	items, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	maxCount := cfg.MaxSuggestions
	if cmd.Flags().Changed("max") {
		maxCount = flagSuggestMax
	}
	query := strings.Join(args, " ")
	suggestions := search.GenerateSearchSuggestions(query, items, maxCount)
	if len(suggestions) == 0 {
		printMiss("", fmt.Sprintf("no suggestions for %q", query))
		return nil
	}
	h := highlighter()
	for _, s := range suggestions {
		fmt.Printf("  %s\n", h.Highlight(s, query))
	}
	return nil
}
