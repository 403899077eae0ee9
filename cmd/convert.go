package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/library"
	"github.com/jukasdrj/shelfwarmer/mapping"

	// Register all format plugins
	_ "github.com/jukasdrj/shelfwarmer/format/booklist"
	_ "github.com/jukasdrj/shelfwarmer/format/cachecsv"
	_ "github.com/jukasdrj/shelfwarmer/format/detailed"
	_ "github.com/jukasdrj/shelfwarmer/format/goodreads"
	_ "github.com/jukasdrj/shelfwarmer/format/simple"
)

var (
	inputFile   string
	outputFile  string
	profileName string
	profileFile string
	pretty      bool
	exportDate  string
	bookLimit   int
	sourceTag   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to>",
	Short: "Convert a book export into a cache-warmer view",
	Long: `Convert a book-tracking export into one of the cache-warmer views.

Arguments:
  from    Source format (goodreads)
  to      Target format (detailed, simple, cache-csv)

Input defaults to stdin, output defaults to stdout.

Examples:
  # Detailed JSON document (stdin to stdout)
  cat export.csv | shelfwarmer convert goodreads detailed

  # Explicit input file, pretty-printed
  shelfwarmer convert goodreads detailed -i export.csv --pretty

  # Upload table for the cache warmer
  shelfwarmer convert goodreads cache-csv -i export.csv -o upload.csv

  # Custom column names via a profile file
  shelfwarmer convert goodreads simple -i export.csv --profile-file storygraph.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().StringVarP(&profileName, "profile", "p", "", "Column mapping profile name (e.g., goodreads)")
	convertCmd.Flags().StringVar(&profileFile, "profile-file", "", "Custom profile YAML file")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	convertCmd.Flags().StringVar(&exportDate, "export-date", "", "Export date to write into metadata (default: today)")
	convertCmd.Flags().IntVar(&bookLimit, "limit", 0, "Max books listed per author in the detailed view (default: 10)")
	convertCmd.Flags().StringVar(&sourceTag, "source-tag", "", "Metadata source tag (default: from profile)")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	fromFormat := args[0]
	toFormat := args[1]

	input, inputName, cleanup, err := openInput(inputFile)
	if err != nil {
		return err
	}
	defer cleanup(&err)

	var output io.Writer
	if outputFile != "" {
		f, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	parser, err := format.GetParser(fromFormat)
	if err != nil {
		return fmt.Errorf("unknown source format %q: %w", fromFormat, err)
	}

	serializer, err := format.GetSerializer(toFormat)
	if err != nil {
		return fmt.Errorf("unknown target format %q: %w", toFormat, err)
	}

	profile, err := resolveProfile(profileName, profileFile, fromFormat)
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

	fmt.Fprintf(os.Stderr, "Parsed %d records, %d distinct authors\n", index.Rows(), index.Len())

	serializeOpts := format.NewSerializeOptions()
	serializeOpts.Pretty = pretty
	serializeOpts.ExportDate = exportDate
	if profile != nil {
		if profile.Options.SourceTag != "" {
			serializeOpts.SourceTag = profile.Options.SourceTag
		}
		if profile.Options.MaxBooksPerAuthor > 0 {
			serializeOpts.MaxBooksPerAuthor = profile.Options.MaxBooksPerAuthor
		}
	}
	if sourceTag != "" {
		serializeOpts.SourceTag = sourceTag
	}
	if bookLimit > 0 {
		serializeOpts.MaxBooksPerAuthor = bookLimit
	}

	if err := serializer.Serialize(output, index, serializeOpts); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}

	return nil
}

// openInput opens the named file, or falls back to stdin. The returned
// cleanup closes the file and surfaces the close error when the caller
// has none of its own.
func openInput(path string) (io.Reader, string, func(*error), error) {
	if path == "" {
		return os.Stdin, "stdin", func(*error) {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening input file: %w", err)
	}

	cleanup := func(errp *error) {
		if cerr := f.Close(); cerr != nil && *errp == nil {
			*errp = fmt.Errorf("closing input file: %w", cerr)
		}
	}
	return f, path, cleanup, nil
}

// resolveProfile resolves the column-mapping profile: an explicit file
// wins, then a named embedded profile, then the embedded profile that
// matches the source format. A nil profile means built-in defaults.
func resolveProfile(name, file, fromFormat string) (*mapping.Profile, error) {
	if file != "" {
		return mapping.LoadProfile(file)
	}

	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return nil, err
	}

	if name != "" {
		p, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown profile: %s (have %v)", name, registry.List())
		}
		return p, nil
	}

	if p, ok := registry.Get(fromFormat); ok {
		return p, nil
	}
	return nil, nil
}
