// Package simple provides the simple output format: a ranked JSON list
// of author names.
package simple

import (
	"encoding/json"
	"io"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/library"
)

// Format implements the simple author-list output format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "simple"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Ranked author name list (JSON)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// CanParse returns false; this format is output-only.
func (f *Format) CanParse(peek []byte) bool {
	return false
}

// Serialize writes the ranked author names as a JSON array. No
// truncation: every author appears.
func (f *Format) Serialize(w io.Writer, index *library.AuthorIndex, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	ranked := index.Ranked()
	names := make([]string, 0, len(ranked))
	for _, ra := range ranked {
		names = append(names, ra.Name)
	}

	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(names)
}

func init() {
	format.Register(&Format{})
}
