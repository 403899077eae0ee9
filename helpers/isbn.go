package helpers

import "strings"

// CleanISBN strips the spreadsheet guard characters Goodreads wraps
// ISBN cells in, e.g. `="9780156028358"` becomes 9780156028358.
func CleanISBN(isbn string) string {
	isbn = strings.TrimSpace(isbn)
	isbn = strings.TrimPrefix(isbn, "=")
	isbn = strings.Trim(isbn, `"`)
	return strings.TrimSpace(isbn)
}

// NormalizeISBN reduces an ISBN to its digits (plus a trailing X for
// ISBN-10), upper-cased. Bare ISBN-10s are moved into the 978 ISBN-13
// range by prefix; no check digit is recomputed, so the result is a
// dedupe key rather than a valid ISBN-13.
func NormalizeISBN(isbn string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(isbn)) {
		if (r >= '0' && r <= '9') || r == 'X' {
			b.WriteRune(r)
		}
	}

	clean := b.String()
	if len(clean) == 10 && !strings.HasSuffix(clean, "X") {
		clean = "978" + clean[:9]
	}

	return clean
}

// CollapseSpaces trims surrounding quotes and squeezes interior runs of
// whitespace down to single spaces.
func CollapseSpaces(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.Join(strings.Fields(s), " ")
}
