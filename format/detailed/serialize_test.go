package detailed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/library"
)

func indexWithBooks(author string, n int) *library.AuthorIndex {
	ix := library.NewAuthorIndex()
	for i := 0; i < n; i++ {
		ix.Add(&library.Record{
			Title:  fmt.Sprintf("Book %02d", i),
			Author: author,
			Rating: "0",
			Shelf:  "read",
		})
	}
	return ix
}

func TestSerializeTruncatesBooksNotCount(t *testing.T) {
	ix := indexWithBooks("Prolific Author", 15)

	opts := format.NewSerializeOptions()
	opts.ExportDate = "2025-09-27"

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, ix, opts); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Authors) != 1 {
		t.Fatalf("authors = %d, want 1", len(doc.Authors))
	}
	author := doc.Authors[0]
	if author.BookCount != 15 {
		t.Errorf("book_count = %d, want full count 15", author.BookCount)
	}
	if len(author.Books) != 10 {
		t.Fatalf("books = %d, want truncated to 10", len(author.Books))
	}
	// Truncation keeps the original append order.
	for i, book := range author.Books {
		want := fmt.Sprintf("Book %02d", i)
		if book.Title != want {
			t.Errorf("books[%d].title = %q, want %q", i, book.Title, want)
		}
	}
}

func TestSerializeMetadata(t *testing.T) {
	ix := library.NewAuthorIndex()
	ix.Add(&library.Record{Title: "A", Author: "Jane Doe", AdditionalAuthors: "John Roe", Rating: "0", Shelf: "read"})
	ix.Add(&library.Record{Title: "B", Author: "Jane Doe", Rating: "0", Shelf: "read"})

	opts := format.NewSerializeOptions()
	opts.ExportDate = "2025-09-27"

	doc := BuildDocument(ix, opts)

	if doc.Metadata.Source != "goodreads_export" {
		t.Errorf("source = %q", doc.Metadata.Source)
	}
	if doc.Metadata.TotalAuthors != 2 {
		t.Errorf("total_authors = %d, want 2", doc.Metadata.TotalAuthors)
	}
	if doc.Metadata.TotalBooks != 3 {
		t.Errorf("total_books = %d, want 3 attributions", doc.Metadata.TotalBooks)
	}
	if doc.Metadata.ExportDate != "2025-09-27" {
		t.Errorf("export_date = %q", doc.Metadata.ExportDate)
	}
	if doc.Metadata.FormatVersion != FormatVersion {
		t.Errorf("format_version = %q", doc.Metadata.FormatVersion)
	}
}

func TestSerializeRoleTag(t *testing.T) {
	ix := library.NewAuthorIndex()
	ix.Add(&library.Record{Title: "A", Author: "Jane Doe", AdditionalAuthors: "John Roe", Rating: "0", Shelf: "read"})

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, ix, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// The role key must be present for additional authors and omitted
	// for primary attributions.
	var raw struct {
		Authors []struct {
			Name  string                       `json:"name"`
			Books []map[string]json.RawMessage `json:"books"`
		} `json:"authors"`
	}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, author := range raw.Authors {
		_, hasRole := author.Books[0]["role"]
		switch author.Name {
		case "Jane Doe":
			if hasRole {
				t.Error("primary attribution carries a role key")
			}
		case "John Roe":
			if !hasRole {
				t.Error("additional attribution is missing the role key")
			}
		default:
			t.Errorf("unexpected author %q", author.Name)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	ix := library.NewAuthorIndex()
	ix.Add(&library.Record{Title: "A", Author: "Jane Doe", Rating: "0", Shelf: "read"})
	ix.Add(&library.Record{Title: "B", Author: "Jane Doe", Rating: "0", Shelf: "read"})
	ix.Add(&library.Record{Title: "C", Author: "John Roe", Rating: "0", Shelf: "read"})

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, ix, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []struct {
		name  string
		count int
	}{
		{"Jane Doe", 2},
		{"John Roe", 1},
	}
	if len(doc.Authors) != len(want) {
		t.Fatalf("authors = %d, want %d", len(doc.Authors), len(want))
	}
	for i, w := range want {
		if doc.Authors[i].Name != w.name || doc.Authors[i].BookCount != w.count {
			t.Errorf("authors[%d] = %s/%d, want %s/%d",
				i, doc.Authors[i].Name, doc.Authors[i].BookCount, w.name, w.count)
		}
	}
}
