package booklist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jukasdrj/shelfwarmer/library"
)

// ParseBooks reads a flat book-list CSV, detecting the column layout
// from the header. Rows with fewer than three fields or without both a
// title and an author are skipped, matching the tolerant behavior the
// combine pipeline needs when stitching together files from different
// sources.
func ParseBooks(r io.Reader, sourceName string) ([]library.Book, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", sourceName, err)
	}

	l := detectLayout(strings.Join(header, ","))
	if l == layoutUnknown {
		return nil, fmt.Errorf("%s: unrecognized book list header %v", sourceName, header)
	}

	var books []library.Book
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", sourceName, err)
		}
		if len(row) < 3 {
			continue
		}

		var book library.Book
		switch l {
		case layoutYearFirst:
			if len(row) < 4 {
				continue
			}
			book = library.NewBook(row[1], row[2], row[3], row[0])
		default:
			book = library.NewBook(row[0], row[1], row[2], "")
		}

		if book.Title == "" || book.Author == "" {
			continue
		}
		books = append(books, book)
	}

	return books, nil
}
