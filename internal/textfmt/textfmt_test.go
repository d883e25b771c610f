package textfmt

import (
	"strings"
	"testing"
)

const sampleV1 = `<ACROSS PUZZLE>
<TITLE>
 Tiny Test
<AUTHOR>
 A. Compiler
<COPYRIGHT>
 (c) 2026
<SIZE>
 3x3
<GRID>
 CAT
 .AR
 SON
<ACROSS>
 Feline
 Argon, e.g.
 Crime
<DOWN>
 Palindrome start
 Inert trio
<NOTEPAD>
line one
line two
`

func TestParseV1(t *testing.T) {
	f, err := Parse([]byte(sampleV1))
	if err != nil {
		t.Fatal(err)
	}
	if f.V2 {
		t.Fatalf("v1 file parsed as v2")
	}
	if f.Title != "Tiny Test" || f.Author != "A. Compiler" || f.Copyright != "(c) 2026" {
		t.Fatalf("metadata: %+v", f)
	}
	if f.Width != 3 || f.Height != 3 {
		t.Fatalf("size: %dx%d", f.Width, f.Height)
	}
	if len(f.Grid) != 3 || f.Grid[1] != ".AR" {
		t.Fatalf("grid: %v", f.Grid)
	}
	if len(f.Across) != 3 || len(f.Down) != 2 {
		t.Fatalf("clues: %d across, %d down", len(f.Across), len(f.Down))
	}
	if f.Notepad != "line one\nline two" {
		t.Fatalf("notepad: %q", f.Notepad)
	}
}

func TestParseV2Rebus(t *testing.T) {
	src := strings.Join([]string{
		"<ACROSS PUZZLE V2>",
		"<TITLE>", " R",
		"<AUTHOR>", " ",
		"<COPYRIGHT>", " ",
		"<SIZE>", " 2x2",
		"<GRID>", " 1B", " Cd",
		"<REBUS>",
		" MARK;",
		" 1:HEART:H",
		"<ACROSS>", " one", " two",
		"<DOWN>", " three", " four",
	}, "\r\n")
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if !f.V2 || !f.Mark {
		t.Fatalf("v2/mark flags: %+v", f)
	}
	if len(f.Rebus) != 1 {
		t.Fatalf("rebus entries: %+v", f.Rebus)
	}
	r := f.Rebus[0]
	if r.Marker != '1' || r.Solution != "HEART" || r.Short != 'H' {
		t.Fatalf("rebus entry: %+v", r)
	}
}

func TestParseRejectsMissingHeader(t *testing.T) {
	if _, err := Parse([]byte("<TITLE>\n x\n")); err == nil {
		t.Fatalf("missing header must fail")
	}
}

func TestEmitParseRoundTrip(t *testing.T) {
	f := &File{
		V2:      true,
		Title:   "Round Trip",
		Author:  "Tester",
		Width:   3,
		Height:  3,
		Grid:    []string{"CAT", ".AR", "SON"},
		Mark:    true,
		Rebus:   []RebusEntry{{Key: 1, Marker: '1', Solution: "HEART", Short: 'H'}},
		Across:  []string{"a1", "a2", "a3"},
		Down:    []string{"d1", "d2"},
		Notepad: "note",
	}
	out := Emit(f)
	got, err := Parse(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != f.Title || got.Width != 3 || len(got.Grid) != 3 ||
		!got.Mark || len(got.Rebus) != 1 || got.Notepad != "note" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Rebus[0] != f.Rebus[0] {
		t.Fatalf("rebus round trip: %+v", got.Rebus[0])
	}
	if len(got.Across) != 3 || got.Down[1] != "d2" {
		t.Fatalf("clue round trip: %+v", got)
	}
}
