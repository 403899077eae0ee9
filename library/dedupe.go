package library

import (
	"strings"

	"github.com/jukasdrj/shelfwarmer/helpers"
)

// Book is a normalized row from a flat book-list CSV, used when
// combining multiple exports into one library file.
type Book struct {
	Title  string
	Author string
	ISBN   string
	Year   string
}

// NewBook normalizes raw CSV fields into a Book: quote-stripped,
// whitespace-collapsed text and a digits-only ISBN.
func NewBook(title, author, isbn, year string) Book {
	return Book{
		Title:  helpers.CollapseSpaces(title),
		Author: helpers.CollapseSpaces(author),
		ISBN:   helpers.NormalizeISBN(isbn),
		Year:   strings.TrimSpace(year),
	}
}

// DedupeKey identifies a book for duplicate removal. Books with a
// plausible ISBN (10+ characters) key on it; the rest fall back to the
// lowercased title+author pair.
func (b Book) DedupeKey() string {
	if len(b.ISBN) >= 10 {
		return "isbn:" + b.ISBN
	}
	return "title_author:" + strings.ToLower(b.Title) + ":" + strings.ToLower(b.Author)
}

// Deduper tracks seen dedupe keys across a combine run.
type Deduper struct {
	seen    map[string]struct{}
	dropped int
}

// NewDeduper creates an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// Keep reports whether the book is new. The first book with a given key
// is kept; later ones are counted as dropped.
func (d *Deduper) Keep(b Book) bool {
	key := b.DedupeKey()
	if _, ok := d.seen[key]; ok {
		d.dropped++
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

// Dropped returns how many duplicates Keep has rejected.
func (d *Deduper) Dropped() int {
	return d.dropped
}
