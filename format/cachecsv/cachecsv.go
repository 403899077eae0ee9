// Package cachecsv provides the cache-warmer upload format: a two
// column author,book_count CSV ranked by attribution count.
package cachecsv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/library"
)

// Header is the column header row of the cache-warmer CSV.
var Header = []string{"author", "book_count"}

// Format implements the cache-warmer CSV output format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "cache-csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Cache-warmer upload table (author,book_count CSV)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv"}
}

// CanParse returns false; this format is output-only.
func (f *Format) CanParse(peek []byte) bool {
	return false
}

// Serialize writes one row per author, ranked, with no truncation.
func (f *Format) Serialize(w io.Writer, index *library.AuthorIndex, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if opts.IncludeHeader {
		if err := writer.Write(Header); err != nil {
			return err
		}
	}

	for _, ra := range index.Ranked() {
		if err := writer.Write([]string{ra.Name, strconv.Itoa(ra.Entry.TotalBooks)}); err != nil {
			return err
		}
	}

	return writer.Error()
}

func init() {
	format.Register(&Format{})
}
