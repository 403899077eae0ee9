package detailed

import (
	"encoding/json"
	"io"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/library"
)

// Document is the detailed output: metadata plus authors ranked by
// total book attributions, descending.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Authors  []Author `json:"authors"`
}

// Metadata describes the document as a whole.
type Metadata struct {
	Source        string `json:"source"`
	TotalAuthors  int    `json:"total_authors"`
	TotalBooks    int    `json:"total_books"`
	ExportDate    string `json:"export_date"`
	FormatVersion string `json:"format_version"`
}

// Author is one ranked author with a capped book list. BookCount is the
// full attribution count even when Books is truncated.
type Author struct {
	Name      string                  `json:"name"`
	BookCount int                     `json:"book_count"`
	Books     []library.BookReference `json:"books"`
}

// Serialize writes the detailed JSON document.
func (f *Format) Serialize(w io.Writer, index *library.AuthorIndex, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(BuildDocument(index, opts))
}

// BuildDocument assembles the detailed document from an author index.
func BuildDocument(index *library.AuthorIndex, opts *format.SerializeOptions) *Document {
	limit := opts.ResolvedMaxBooks()
	ranked := index.Ranked()

	doc := &Document{
		Metadata: Metadata{
			Source:        opts.ResolvedSourceTag(),
			TotalAuthors:  index.Len(),
			TotalBooks:    index.TotalAttributions(),
			ExportDate:    opts.ResolvedExportDate(),
			FormatVersion: FormatVersion,
		},
		Authors: make([]Author, 0, len(ranked)),
	}

	for _, ra := range ranked {
		books := ra.Entry.Books
		if len(books) > limit {
			books = books[:limit]
		}
		doc.Authors = append(doc.Authors, Author{
			Name:      ra.Name,
			BookCount: ra.Entry.TotalBooks,
			Books:     books,
		})
	}

	return doc
}
