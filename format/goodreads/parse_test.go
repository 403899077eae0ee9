package goodreads

import (
	"strings"
	"testing"

	"github.com/jukasdrj/shelfwarmer/format"
	"github.com/jukasdrj/shelfwarmer/mapping"
)

const sampleExport = `Book Id,Title,Author,Additional Authors,ISBN13,My Rating,Exclusive Shelf
1,The Left Hand of Darkness,Ursula K. Le Guin,,="9780441478125",5,read
2,Good Omens,Terry Pratchett,Neil Gaiman,="9780060853983",4,read
3,The Dispossessed,Ursula K. Le Guin,,,0,to-read
`

func TestParse(t *testing.T) {
	f := &Format{}
	records, err := f.Parse(strings.NewReader(sampleExport), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("parsed %d records, want 3", len(records))
	}

	first := records[0]
	if first.Title != "The Left Hand of Darkness" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Author != "Ursula K. Le Guin" {
		t.Errorf("Author = %q", first.Author)
	}
	if first.ISBN != `="9780441478125"` {
		t.Errorf("ISBN = %q, want raw guarded value at parse stage", first.ISBN)
	}
	if first.Rating != "5" || first.Shelf != "read" {
		t.Errorf("rating/shelf = %q/%q", first.Rating, first.Shelf)
	}

	if records[1].AdditionalAuthors != "Neil Gaiman" {
		t.Errorf("AdditionalAuthors = %q", records[1].AdditionalAuthors)
	}

	// Input order preserved.
	if records[2].Title != "The Dispossessed" {
		t.Errorf("records[2].Title = %q", records[2].Title)
	}
}

func TestParseColumnOrderIrrelevant(t *testing.T) {
	input := `Exclusive Shelf,Author,Title
read,Jane Doe,Some Book
`
	f := &Format{}
	records, err := f.Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("parsed %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.Title != "Some Book" || rec.Author != "Jane Doe" || rec.Shelf != "read" {
		t.Errorf("record = %+v", rec)
	}
	// Absent columns degrade to defaults.
	if rec.ISBN != "" {
		t.Errorf("ISBN = %q, want empty", rec.ISBN)
	}
	if rec.Rating != "0" {
		t.Errorf("Rating = %q, want default 0", rec.Rating)
	}
}

func TestParseColumnNamesAreCaseSensitive(t *testing.T) {
	input := `title,author
Some Book,Jane Doe
`
	f := &Format{}
	records, err := f.Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if records[0].Title != "" || records[0].Author != "" {
		t.Errorf("lowercase headers must not match: %+v", records[0])
	}
}

func TestParseEmptyFieldDefaults(t *testing.T) {
	input := `Title,Author,My Rating,Exclusive Shelf
Some Book,Jane Doe,,
`
	f := &Format{}
	records, err := f.Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if records[0].Rating != "0" {
		t.Errorf("Rating = %q, want 0", records[0].Rating)
	}
	if records[0].Shelf != "unknown" {
		t.Errorf("Shelf = %q, want unknown", records[0].Shelf)
	}
}

func TestParseMalformedRowFailsRun(t *testing.T) {
	input := `Title,Author,My Rating
Some Book,Jane Doe
`
	f := &Format{}
	if _, err := f.Parse(strings.NewReader(input), nil); err == nil {
		t.Fatal("Parse succeeded on a row with the wrong field count, want error")
	}
}

func TestParseEmptyInput(t *testing.T) {
	f := &Format{}
	records, err := f.Parse(strings.NewReader(""), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("parsed %d records, want 0", len(records))
	}
}

func TestParseWithProfileColumnOverride(t *testing.T) {
	input := `Title,Author,ISBN/UID
Some Book,Jane Doe,9780441478125
`
	opts := format.NewParseOptions()
	opts.Profile = &mapping.Profile{
		Columns: map[string]string{"isbn": "ISBN/UID"},
	}

	f := &Format{}
	records, err := f.Parse(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if records[0].ISBN != "9780441478125" {
		t.Errorf("ISBN = %q, want profile-mapped column value", records[0].ISBN)
	}
}

func TestCanParse(t *testing.T) {
	f := &Format{}
	if !f.CanParse([]byte(sampleExport)) {
		t.Error("CanParse rejected a Goodreads export")
	}
	if f.CanParse([]byte(`{"authors": []}`)) {
		t.Error("CanParse accepted JSON")
	}
	if f.CanParse([]byte("")) {
		t.Error("CanParse accepted empty input")
	}
}
