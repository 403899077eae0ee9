// Package mapping provides column-mapping profiles for book-list
// exports. A profile names the header columns an export uses, extends
// the author skip list, and carries output options.
package mapping

// Profile describes how to read one export layout.
type Profile struct {
	// Name is the profile identifier
	Name string `yaml:"name" json:"name"`

	// Format is the source format the profile applies to (e.g., "goodreads")
	Format string `yaml:"format" json:"format"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Columns maps logical field names (title, author, additional_authors,
	// isbn, rating, shelf) to the export's header column names.
	Columns map[string]string `yaml:"columns,omitempty" json:"columns,omitempty"`

	// SkipNames lists extra placeholder author names to exclude, on top
	// of the built-in skip list. Matched case-insensitively.
	SkipNames []string `yaml:"skip_names,omitempty" json:"skip_names,omitempty"`

	// Options contains output options
	Options ProfileOptions `yaml:"options,omitempty" json:"options,omitempty"`
}

// ProfileOptions contains output configuration.
type ProfileOptions struct {
	// SourceTag is written into the detailed document's metadata
	SourceTag string `yaml:"source_tag,omitempty" json:"source_tag,omitempty"`

	// MaxBooksPerAuthor caps the books listed per author in the
	// detailed view. Zero means the default (10).
	MaxBooksPerAuthor int `yaml:"max_books_per_author,omitempty" json:"max_books_per_author,omitempty"`
}

// Column returns the header column name for a logical field, falling
// back to the given default when the profile does not override it.
// Safe to call on a nil profile.
func (p *Profile) Column(field, fallback string) string {
	if p == nil {
		return fallback
	}
	if col, ok := p.Columns[field]; ok && col != "" {
		return col
	}
	return fallback
}

// ExtraSkipNames returns the profile's additional skip-list entries.
// Safe to call on a nil profile.
func (p *Profile) ExtraSkipNames() []string {
	if p == nil {
		return nil
	}
	return p.SkipNames
}
