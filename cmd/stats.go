package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/library"
)

var (
	statsInput   string
	statsProfile string
	statsTop     int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print library statistics and the top authors",
	Long: `Print summary statistics for a Goodreads export: record, author,
and attribution totals, plus the top authors by book count.

Examples:
  shelfwarmer stats -i export.csv
  shelfwarmer stats -i export.csv --top 25`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "Input file (default: stdin)")
	statsCmd.Flags().StringVarP(&statsProfile, "profile", "p", "", "Column mapping profile name")
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "How many top authors to list")
}

func runStats(cmd *cobra.Command, args []string) (err error) {
	input, inputName, cleanup, err := openInput(statsInput)
	if err != nil {
		return err
	}
	defer cleanup(&err)

	parser, err := format.GetParser("goodreads")
	if err != nil {
		return err
	}

	profile, err := resolveProfile(statsProfile, "", parser.Name())
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	parseOpts := format.NewParseOptions()
	parseOpts.Profile = profile
	parseOpts.SourceName = inputName

	records, err := parser.Parse(input, parseOpts)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	index := library.Aggregate(records, profile.ExtraSkipNames()...)

	fmt.Printf("Records:          %d\n", index.Rows())
	fmt.Printf("Distinct authors: %d\n", index.Len())
	fmt.Printf("Attributions:     %d\n", index.TotalAttributions())

	ranked := index.Ranked()
	top := statsTop
	if top > len(ranked) {
		top = len(ranked)
	}
	if top <= 0 {
		return nil
	}

	fmt.Printf("\nTop %d authors by book count:\n", top)
	for i, ra := range ranked[:top] {
		fmt.Printf("  %2d. %s (%d books)\n", i+1, ra.Name, ra.Entry.TotalBooks)
	}

	return nil
}
