package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jukasdrj/shelfwarmer/format/booklist"
	"github.com/jukasdrj/shelfwarmer/library"
)

var combineOutput string

var combineCmd = &cobra.Command{
	Use:   "combine <file>...",
	Short: "Combine flat book-list CSVs into one deduplicated file",
	Long: `Combine multiple flat book-list CSVs (Title,Author,ISBN-13 or
year,title,author,isbn13 layouts) into a single deduplicated
Title,Author,ISBN-13 file for the cache warmer.

Duplicates are detected by normalized ISBN, falling back to the
lowercased title+author pair for books without one.

Examples:
  shelfwarmer combine 2023.csv 2024.csv -o combined.csv
  shelfwarmer combine exports/*.csv > combined.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCombine,
}

func init() {
	combineCmd.Flags().StringVarP(&combineOutput, "output", "o", "", "Output file (default: stdout)")
}

func runCombine(cmd *cobra.Command, args []string) (err error) {
	deduper := library.NewDeduper()
	var combined []library.Book
	rawRecords := 0

	for _, path := range args {
		books, err := readBookList(path)
		if err != nil {
			return err
		}
		rawRecords += len(books)

		kept := 0
		for _, book := range books {
			if deduper.Keep(book) {
				combined = append(combined, book)
				kept++
			}
		}
		fmt.Fprintf(os.Stderr, "%s: %d records, %d new\n", path, len(books), kept)
	}

	var output io.Writer
	if combineOutput != "" {
		f, createErr := os.Create(combineOutput)
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

	if err := booklist.WriteBooks(output, combined); err != nil {
		return fmt.Errorf("writing combined list: %w", err)
	}

	printCombineStats(len(args), rawRecords, deduper.Dropped(), combined)

	return nil
}

func readBookList(path string) ([]library.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return booklist.ParseBooks(f, path)
}

func printCombineStats(files, rawRecords, duplicates int, combined []library.Book) {
	authors := make(map[string]struct{})
	withISBN := 0
	for _, book := range combined {
		authors[strings.ToLower(book.Author)] = struct{}{}
		if len(book.ISBN) >= 10 {
			withISBN++
		}
	}

	coverage := 0.0
	if len(combined) > 0 {
		coverage = float64(withISBN) / float64(len(combined)) * 100
	}

	fmt.Fprintf(os.Stderr, "\nFiles processed:    %d\n", files)
	fmt.Fprintf(os.Stderr, "Total raw records:  %d\n", rawRecords)
	fmt.Fprintf(os.Stderr, "Duplicates removed: %d\n", duplicates)
	fmt.Fprintf(os.Stderr, "Unique books:       %d\n", len(combined))
	fmt.Fprintf(os.Stderr, "Unique authors:     %d\n", len(authors))
	fmt.Fprintf(os.Stderr, "ISBN coverage:      %.1f%%\n", coverage)
}
