package booklist

import (
	"encoding/csv"
	"io"

	"github.com/jukasdrj/shelfwarmer/library"
)

// WriteBooks writes books as the combined Title,Author,ISBN-13 CSV the
// cache warmer ingests. Year is a dedupe aid only and is not written.
func WriteBooks(w io.Writer, books []library.Book) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Title", "Author", "ISBN-13"}); err != nil {
		return err
	}

	for _, book := range books {
		if err := writer.Write([]string{book.Title, book.Author, book.ISBN}); err != nil {
			return err
		}
	}

	return writer.Error()
}
