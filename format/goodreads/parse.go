package goodreads

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/library"
)

// column indexes into a data row; -1 means the column is absent and the
// field degrades to its default.
type columns struct {
	title      int
	author     int
	additional int
	isbn       int
	rating     int
	shelf      int
}

// Parse reads a Goodreads export and returns one record per data row,
// preserving input order. Column names are matched exactly and
// case-sensitively against the header; a missing column yields the
// field's default rather than an error. A malformed row (wrong field
// count, bad quoting) fails the whole parse.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*library.Record, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	reader := csv.NewReader(r)
	// Goodreads guards ISBN cells as ="...", which puts bare quotes in
	// unquoted fields.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", opts.SourceName, err)
	}

	cols := mapColumns(header, opts)

	var records []*library.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", opts.SourceName, err)
		}
		records = append(records, rowToRecord(row, cols))
	}

	return records, nil
}

func mapColumns(header []string, opts *format.ParseOptions) columns {
	p := opts.Profile
	cols := columns{title: -1, author: -1, additional: -1, isbn: -1, rating: -1, shelf: -1}

	want := make(map[string]*int, 6)
	want[p.Column("title", "Title")] = &cols.title
	want[p.Column("author", "Author")] = &cols.author
	want[p.Column("additional_authors", "Additional Authors")] = &cols.additional
	want[p.Column("isbn", "ISBN13")] = &cols.isbn
	want[p.Column("rating", "My Rating")] = &cols.rating
	want[p.Column("shelf", "Exclusive Shelf")] = &cols.shelf

	for i, col := range header {
		if target, ok := want[col]; ok && *target < 0 {
			*target = i
		}
	}

	return cols
}

func rowToRecord(row []string, cols columns) *library.Record {
	rec := &library.Record{
		Title:             field(row, cols.title),
		Author:            field(row, cols.author),
		AdditionalAuthors: field(row, cols.additional),
		ISBN:              field(row, cols.isbn),
		Rating:            field(row, cols.rating),
		Shelf:             field(row, cols.shelf),
	}

	// Missing-field defaults are applied here, at parse time.
	if rec.Rating == "" {
		rec.Rating = "0"
	}
	if rec.Shelf == "" {
		rec.Shelf = "unknown"
	}

	return rec
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
