// Package booklist reads and writes the flat book-list CSVs used by the
// combine pipeline. Two header layouts are recognized:
//
//	Title,Author,ISBN-13
//	year,title,author,isbn13
//
// Columns are positional within each layout, matching how the source
// files are produced.
package booklist

import (
	"bytes"
	"strings"

	"github.com/jukasdrj/shelfwarmer/format"
)

// Format implements the flat book-list format. It registers as a plain
// format (no author-index parsing or serialization); the combine
// pipeline uses ParseBooks and WriteBooks directly.
type Format struct{}

var _ format.Format = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "booklist"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Flat book list (Title,Author,ISBN-13 CSV) for combine"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv"}
}

// CanParse returns true if the input starts with one of the recognized
// book-list headers.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}

	header := peek
	if idx := bytes.IndexByte(peek, '\n'); idx >= 0 {
		header = peek[:idx]
	}

	return detectLayout(string(header)) != layoutUnknown
}

type layout int

const (
	layoutUnknown layout = iota
	// Title,Author,ISBN-13
	layoutTitleFirst
	// year,title,author,isbn13
	layoutYearFirst
)

func detectLayout(header string) layout {
	h := strings.ToLower(header)
	switch {
	case strings.Contains(h, "year") && strings.Contains(h, "title"):
		return layoutYearFirst
	case strings.Contains(h, "title") && strings.Contains(h, "author"):
		return layoutTitleFirst
	default:
		return layoutUnknown
	}
}

func init() {
	format.Register(&Format{})
}
