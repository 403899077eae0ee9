// Package goodreads provides a format plugin for Goodreads library
// export CSVs.
package goodreads

import (
	"bytes"

	"github.com/jukasdrj/shelfwarmer/format"
)

// Format implements the Goodreads export format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format = (*Format)(nil)
	_ format.Parser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "goodreads"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Goodreads library export (CSV)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv"}
}

// CanParse returns true if the input looks like a Goodreads export:
// a CSV header row carrying the Title and Author columns.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}
	if peek[0] == '{' || peek[0] == '[' || peek[0] == '<' {
		return false
	}

	header := peek
	if idx := bytes.IndexByte(peek, '\n'); idx >= 0 {
		header = peek[:idx]
	}

	return bytes.Contains(header, []byte("Title")) &&
		bytes.Contains(header, []byte("Author")) &&
		bytes.Contains(header, []byte(","))
}

func init() {
	format.Register(&Format{})
}
