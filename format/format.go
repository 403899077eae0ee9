// Package format defines the interface for export/output format plugins.
package format

import (
	"io"
	"time"

	"github.com/jukasdrj/shelfwarmer/library"
	"github.com/jukasdrj/shelfwarmer/mapping"
)

// DefaultSourceTag is written into detailed output metadata when no
// profile or flag overrides it.
const DefaultSourceTag = "goodreads_export"

// DefaultMaxBooksPerAuthor caps the books listed per author in the
// detailed view.
const DefaultMaxBooksPerAuthor = 10

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "goodreads", "detailed")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a format that can parse input into export records.
type Parser interface {
	Format

	// Parse reads input and returns one record per data row, in input
	// order.
	Parse(r io.Reader, opts *ParseOptions) ([]*library.Record, error)
}

// Serializer is a format that can write an author index to output.
type Serializer interface {
	Format

	// Serialize writes one ranked view of the author index.
	Serialize(w io.Writer, index *library.AuthorIndex, opts *SerializeOptions) error
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// Profile overrides the export's column names
	Profile *mapping.Profile

	// SourceName is an identifier for the source (for error messages)
	SourceName string
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Pretty enables pretty-printing (for JSON formats)
	Pretty bool

	// SourceTag is the metadata source identifier for the detailed view
	SourceTag string

	// ExportDate is the metadata export date for the detailed view;
	// empty means today.
	ExportDate string

	// MaxBooksPerAuthor caps the books listed per author in the
	// detailed view; zero or negative means the default.
	MaxBooksPerAuthor int

	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{SourceName: "input"}
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		SourceTag:         DefaultSourceTag,
		MaxBooksPerAuthor: DefaultMaxBooksPerAuthor,
		IncludeHeader:     true,
	}
}

// ResolvedExportDate returns the export date to write, defaulting to
// today's date in YYYY-MM-DD form.
func (o *SerializeOptions) ResolvedExportDate() string {
	if o != nil && o.ExportDate != "" {
		return o.ExportDate
	}
	return time.Now().Format("2006-01-02")
}

// ResolvedSourceTag returns the source tag to write.
func (o *SerializeOptions) ResolvedSourceTag() string {
	if o != nil && o.SourceTag != "" {
		return o.SourceTag
	}
	return DefaultSourceTag
}

// ResolvedMaxBooks returns the per-author book cap to apply.
func (o *SerializeOptions) ResolvedMaxBooks() int {
	if o != nil && o.MaxBooksPerAuthor > 0 {
		return o.MaxBooksPerAuthor
	}
	return DefaultMaxBooksPerAuthor
}
