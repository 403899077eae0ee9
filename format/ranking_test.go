package format_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/format/cachecsv"
	"github.com/jukasdrj/shelfwarmer/format/detailed"
	"github.com/jukasdrj/shelfwarmer/format/simple"
	"github.com/jukasdrj/shelfwarmer/library"
)

// TestViewsAgreeOnRanking checks that the detailed, simple, and
// cache-csv views all order authors identically, including ties.
func TestViewsAgreeOnRanking(t *testing.T) {
	ix := library.NewAuthorIndex()
	add := func(title, author string) {
		ix.Add(&library.Record{Title: title, Author: author, Rating: "0", Shelf: "read"})
	}
	// Mid ties with Late on count; Mid was seen first.
	add("A1", "Top Author")
	add("A2", "Top Author")
	add("A3", "Top Author")
	add("B1", "Mid Author")
	add("B2", "Mid Author")
	add("C1", "Late Author")
	add("C2", "Late Author")
	add("D1", "Solo Author")

	opts := format.NewSerializeOptions()
	opts.ExportDate = "2025-09-27"

	var detailedBuf, simpleBuf, csvBuf bytes.Buffer
	if err := (&detailed.Format{}).Serialize(&detailedBuf, ix, opts); err != nil {
		t.Fatalf("detailed: %v", err)
	}
	if err := (&simple.Format{}).Serialize(&simpleBuf, ix, opts); err != nil {
		t.Fatalf("simple: %v", err)
	}
	if err := (&cachecsv.Format{}).Serialize(&csvBuf, ix, opts); err != nil {
		t.Fatalf("cache-csv: %v", err)
	}

	var doc detailed.Document
	if err := json.Unmarshal(detailedBuf.Bytes(), &doc); err != nil {
		t.Fatalf("detailed unmarshal: %v", err)
	}
	detailedNames := make([]string, 0, len(doc.Authors))
	for _, a := range doc.Authors {
		detailedNames = append(detailedNames, a.Name)
	}

	var simpleNames []string
	if err := json.Unmarshal(simpleBuf.Bytes(), &simpleNames); err != nil {
		t.Fatalf("simple unmarshal: %v", err)
	}

	rows, err := csv.NewReader(&csvBuf).ReadAll()
	if err != nil {
		t.Fatalf("cache-csv parse: %v", err)
	}
	csvNames := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		csvNames = append(csvNames, row[0])
	}

	want := []string{"Top Author", "Mid Author", "Late Author", "Solo Author"}
	for _, got := range [][]string{detailedNames, simpleNames, csvNames} {
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("view ranking = %v, want %v", got, want)
		}
	}

	// Counts agree between the detailed and tabular views.
	for i, a := range doc.Authors {
		if rows[i+1][1] != fmt.Sprint(a.BookCount) {
			t.Errorf("%s: cache-csv count %s != detailed count %d", a.Name, rows[i+1][1], a.BookCount)
		}
	}
}
