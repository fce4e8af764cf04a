package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppmportal/navsearch/internal/search"
)

var (
	flagSearchThreshold float64
	flagSearchLimit     int
	flagSearchExact     bool
	flagSearchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank catalog items against a query",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().Float64Var(&flagSearchThreshold, "threshold", 0, "Minimum relevance score in [0,1] (default from config)")
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 0, "Number of results to show (default from config, 0 = config)")
	searchCmd.Flags().BoolVar(&flagSearchExact, "exact", false, "Require every query word as a substring instead of fuzzy ranking")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	items, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	limit := cfg.Limit
	if cmd.Flags().Changed("limit") && flagSearchLimit > 0 {
		limit = flagSearchLimit
	}
	threshold := cfg.Threshold
	if cmd.Flags().Changed("threshold") {
		if flagSearchThreshold < 0 || flagSearchThreshold > 1 {
			return fmt.Errorf("--threshold must be within [0,1], got %v", flagSearchThreshold)
		}
		threshold = flagSearchThreshold
	}

	var results []search.ScoredResult
	if flagSearchExact {
		results = search.KeywordSearch(items, query, limit)
	} else {
		results = search.FuzzySearch(query, items, search.Options{Threshold: threshold})
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}
	}
	log.WithField("query", query).WithField("candidates", len(items)).WithField("results", len(results)).Debug("search done")

	if flagSearchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	printSearchResults(query, results)
	return nil
}

func printSearchResults(query string, results []search.ScoredResult) {
	fmt.Printf("\nnavsearch search %q\n\n", query)
	fmt.Printf("Results (%d found):\n", len(results))
	if len(results) == 0 {
		return
	}

	h := highlighter()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, r := range results {
		fmt.Fprintf(w, "  %d.\t[%.3f]\t%s\t%s\t%s\n", i+1, r.RelevanceScore, r.Category, r.Href, h.Highlight(r.Title, query))
		if d := strings.TrimSpace(r.Description); d != "" {
			fmt.Fprintf(w, "  \t\t\t\t- %s\n", h.Highlight(d, query))
		}
	}
	_ = w.Flush()
}
