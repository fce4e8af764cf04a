package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppmportal/navsearch/internal/search"
)

var flagHighlightRanges bool

var highlightCmd = &cobra.Command{
	Use:   "highlight <text> <query>",
	Short: "Mark the occurrences of query in text",
	Long: `Wrap every case-insensitive occurrence of query in <mark></mark>, exactly as
the web search bar renders it. The query is matched literally.`,
	Args: cobra.ExactArgs(2),
	RunE: runHighlight,
}

func init() {
	highlightCmd.Flags().BoolVar(&flagHighlightRanges, "ranges", false, "Print byte ranges instead of marked text")
	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(_ *cobra.Command, args []string) error {
	text, query := args[0], args[1]
	if flagHighlightRanges {
		for _, r := range search.MatchRanges(text, query) {
			fmt.Printf("%d\t%d\t%s\n", r[0], r[1], text[r[0]:r[1]])
		}
		return nil
	}
	fmt.Println(search.HighlightMatch(text, query))
	return nil
}
