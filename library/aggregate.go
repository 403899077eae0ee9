package library

import (
	"sort"
	"strings"

	"github.com/jukasdrj/shelfwarmer/helpers"
)

// AuthorIndex maps canonical author names to their accumulated book
// attributions. Keys are case-sensitive exact names as returned by
// helpers.CleanAuthorName. Insertion order is tracked so ranking ties
// can fall back to first-seen order.
type AuthorIndex struct {
	entries map[string]*AuthorEntry
	order   []string
	skip    map[string]struct{}
	rows    int
}

// NewAuthorIndex creates an empty index. extraSkip lists additional
// placeholder names (beyond the built-in skip list) to exclude,
// matched case-insensitively against the whole cleaned name.
func NewAuthorIndex(extraSkip ...string) *AuthorIndex {
	skip := make(map[string]struct{}, len(extraSkip))
	for _, name := range extraSkip {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			skip[name] = struct{}{}
		}
	}
	return &AuthorIndex{
		entries: make(map[string]*AuthorEntry),
		skip:    skip,
	}
}

// Aggregate builds an AuthorIndex from records in a single pass.
func Aggregate(records []*Record, extraSkip ...string) *AuthorIndex {
	ix := NewAuthorIndex(extraSkip...)
	for _, rec := range records {
		ix.Add(rec)
	}
	return ix
}

// Add processes one record. The primary author and each comma-separated
// additional author contribute one attribution each, so a single record
// can touch several entries. Invalid names contribute nothing.
func (ix *AuthorIndex) Add(rec *Record) {
	ix.rows++

	isbn := helpers.CleanISBN(rec.ISBN)

	if name, ok := ix.cleanName(rec.Author); ok {
		ix.append(name, BookReference{
			Title:  rec.Title,
			ISBN:   isbn,
			Rating: rec.Rating,
			Shelf:  rec.Shelf,
		})
	}

	for _, part := range strings.Split(rec.AdditionalAuthors, ",") {
		name, ok := ix.cleanName(part)
		if !ok {
			continue
		}
		ix.append(name, BookReference{
			Title:  rec.Title,
			ISBN:   isbn,
			Rating: rec.Rating,
			Shelf:  rec.Shelf,
			Role:   RoleAdditionalAuthor,
		})
	}
}

func (ix *AuthorIndex) cleanName(raw string) (string, bool) {
	name, ok := helpers.CleanAuthorName(raw)
	if !ok {
		return "", false
	}
	if _, skip := ix.skip[strings.ToLower(name)]; skip {
		return "", false
	}
	return name, true
}

func (ix *AuthorIndex) append(name string, ref BookReference) {
	entry, ok := ix.entries[name]
	if !ok {
		entry = &AuthorEntry{}
		ix.entries[name] = entry
		ix.order = append(ix.order, name)
	}
	entry.Books = append(entry.Books, ref)
	entry.TotalBooks++
}

// Entry returns the aggregate for one author name.
func (ix *AuthorIndex) Entry(name string) (*AuthorEntry, bool) {
	entry, ok := ix.entries[name]
	return entry, ok
}

// Len returns the number of distinct authors.
func (ix *AuthorIndex) Len() int {
	return len(ix.entries)
}

// Rows returns the number of records processed through Add.
func (ix *AuthorIndex) Rows() int {
	return ix.rows
}

// TotalAttributions sums TotalBooks across all authors.
func (ix *AuthorIndex) TotalAttributions() int {
	total := 0
	for _, entry := range ix.entries {
		total += entry.TotalBooks
	}
	return total
}

// RankedAuthor pairs an author name with its aggregate for ordered
// output.
type RankedAuthor struct {
	Name  string
	Entry *AuthorEntry
}

// Ranked returns all authors ordered by TotalBooks descending. The sort
// is stable over insertion order, so authors with equal counts keep
// their first-seen order. Every output view ranks through this method,
// which keeps the views ordering-consistent with each other.
func (ix *AuthorIndex) Ranked() []RankedAuthor {
	ranked := make([]RankedAuthor, 0, len(ix.order))
	for _, name := range ix.order {
		ranked = append(ranked, RankedAuthor{Name: name, Entry: ix.entries[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Entry.TotalBooks > ranked[j].Entry.TotalBooks
	})
	return ranked
}
