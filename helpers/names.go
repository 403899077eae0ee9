// Package helpers provides string cleaning utilities shared by the
// format plugins and the library aggregation code.
package helpers

import "strings"

// skipNames are generic placeholder entries that must never become
// author keys. Matched case-insensitively against the whole name.
var skipNames = map[string]struct{}{
	"various":    {},
	"unknown":    {},
	"anonymous":  {},
	"editor":     {},
	"translator": {},
}

// CleanAuthorName normalizes a raw author field value into a canonical
// author key. It trims whitespace, removes one layer of surrounding
// double quotes, and trims again. The second return value is false when
// no valid name remains: empty input, whitespace-only input, or one of
// the generic placeholder names.
//
// Beyond the trimming above, the name is returned verbatim. Keys are
// case-sensitive: "jane doe" and "Jane Doe" are distinct authors.
func CleanAuthorName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, `"`)
	name = strings.TrimSuffix(name, `"`)
	name = strings.TrimSpace(name)

	if name == "" {
		return "", false
	}
	if _, ok := skipNames[strings.ToLower(name)]; ok {
		return "", false
	}

	return name, true
}
