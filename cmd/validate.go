package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/library"
)

var (
	validateInput   string
	validateProfile string
	validateVerbose bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [format]",
	Short: "Validate an export without converting",
	Long: `Validate an export by parsing and aggregating it without producing
output. Useful for checking an export before a cache-warming run.

When the format argument is omitted, it is detected from the content.

Examples:
  shelfwarmer validate goodreads -i export.csv
  shelfwarmer validate -i export.csv --verbose
  cat export.csv | shelfwarmer validate goodreads`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input file (default: stdin)")
	validateCmd.Flags().StringVarP(&validateProfile, "profile", "p", "", "Column mapping profile name")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show per-author counts")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	input, inputName, cleanup, err := openInput(validateInput)
	if err != nil {
		return err
	}
	defer cleanup(&err)

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var parser format.Parser
	if len(args) == 1 {
		parser, err = format.GetParser(args[0])
		if err != nil {
			return fmt.Errorf("unknown format %q: %w", args[0], err)
		}
	} else {
		parser, err = format.DetectFromContent(data)
		if err != nil {
			return fmt.Errorf("detecting format: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Detected format: %s\n", parser.Name())
	}

	profile, err := resolveProfile(validateProfile, "", parser.Name())
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	parseOpts := format.NewParseOptions()
	parseOpts.Profile = profile
	parseOpts.SourceName = inputName

	records, err := parser.Parse(bytes.NewReader(data), parseOpts)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	index := library.Aggregate(records, profile.ExtraSkipNames()...)

	fmt.Printf("✓ Valid: %d records, %d distinct authors, %d attributions from %s\n",
		index.Rows(), index.Len(), index.TotalAttributions(), inputName)

	if validateVerbose {
		for _, ra := range index.Ranked() {
			fmt.Printf("  %s: %d\n", ra.Name, ra.Entry.TotalBooks)
		}
	}

	return nil
}
