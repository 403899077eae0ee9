// Package detailed provides the detailed JSON output format: document
// metadata plus a ranked author sequence with per-author book lists.
package detailed

import "github.com/jukasdrj/shelfwarmer/format"

// FormatVersion is the document format version tag.
const FormatVersion = "1.0"

// Format implements the detailed JSON output format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "detailed"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Detailed author document (JSON) with metadata and per-author book lists"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// CanParse returns false; this format is output-only.
func (f *Format) CanParse(peek []byte) bool {
	return false
}

func init() {
	format.Register(&Format{})
}
