// Package library defines the intermediate representation shared by all
// format plugins: raw export rows, per-author aggregates, and the book
// records used when combining library exports.
package library

// Record is one row of a book-tracking export. All fields are strings;
// Rating and Shelf carry their parse-time defaults ("0" and "unknown"),
// ISBN keeps any spreadsheet guard characters until aggregation.
type Record struct {
	Title             string
	Author            string
	AdditionalAuthors string
	ISBN              string
	Rating            string
	Shelf             string
}

// RoleAdditionalAuthor tags a book attribution that came through the
// additional-authors field rather than the primary author column.
const RoleAdditionalAuthor = "additional_author"

// BookReference is one attribution of a book to an author. Role is
// empty for primary-author attributions and omitted from JSON output.
type BookReference struct {
	Title  string `json:"title"`
	ISBN   string `json:"isbn"`
	Rating string `json:"rating"`
	Shelf  string `json:"shelf"`
	Role   string `json:"role,omitempty"`
}

// AuthorEntry accumulates the books attributed to one author.
// TotalBooks always equals len(Books); the two are updated together.
type AuthorEntry struct {
	Books      []BookReference
	TotalBooks int
}
