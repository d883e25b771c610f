package puz

import (
	"errors"
	"fmt"

	"github.com/crosswordnexus/puzkit/internal/format"
	"github.com/crosswordnexus/puzkit/internal/textfmt"
	"github.com/crosswordnexus/puzkit/pkg/grid"
)

// ErrText is returned when a text-format puzzle is structurally invalid.
var ErrText = errors.New("puz: malformed text puzzle")

// rebusMarkers is the alphabet of grid marker characters assigned to rebus
// entries when emitting the text format.
const rebusMarkers = "123456789"

// ParseText loads a plain-text AcrossLite puzzle into a Document. The flat
// clue list is assembled from the across and down sections using the same
// grid-topology numbering as the binary format.
func ParseText(data []byte) (*Document, error) {
	f, err := textfmt.Parse(data)
	if err != nil {
		return nil, err
	}
	if len(f.Grid) != f.Height {
		return nil, fmt.Errorf("%w: %d grid rows for height %d", ErrText, len(f.Grid), f.Height)
	}

	d := NewDocument()
	d.Width = f.Width
	d.Height = f.Height
	d.Title = f.Title
	d.Author = f.Author
	d.Copyright = f.Copyright
	d.Notes = f.Notepad

	rebusByMarker := make(map[byte]textfmt.RebusEntry, len(f.Rebus))
	for _, r := range f.Rebus {
		rebusByMarker[r.Marker] = r
	}

	cells := d.Width * d.Height
	solution := make([]byte, 0, cells)
	fill := make([]byte, 0, cells)
	rebus := Rebus{Grid: make([]byte, cells), Solutions: make(map[int]string)}
	markup := Markup{Grid: make([]byte, cells)}
	rebusKeys := make(map[string]int)

	for y, row := range f.Grid {
		if len(row) != f.Width {
			return nil, fmt.Errorf("%w: row %d is %d cells, want %d", ErrText, y, len(row), f.Width)
		}
		for x := 0; x < len(row); x++ {
			ch := row[x]
			i := y*d.Width + x
			entry, isRebus := rebusByMarker[ch]
			switch {
			case ch == format.BlockMarker || ch == format.VoidMarker:
				solution = append(solution, ch)
				fill = append(fill, ch)
				continue
			case f.V2 && isRebus:
				key, ok := rebusKeys[entry.Solution]
				if !ok {
					key = len(rebusKeys)
					rebusKeys[entry.Solution] = key
					rebus.Solutions[key] = entry.Solution
				}
				rebus.Grid[i] = byte(key + 1)
				solution = append(solution, upper(entry.Short))
			case f.Mark && ch >= 'a' && ch <= 'z':
				markup.SetFlag(i, MarkupCircled, true)
				solution = append(solution, upper(ch))
			default:
				solution = append(solution, ch)
			}
			fill = append(fill, format.EmptyMarker)
		}
	}
	d.Solution = string(solution)
	d.Fill = string(fill)
	if err := d.SetRebus(rebus); err != nil {
		return nil, err
	}
	d.SetMarkup(markup)

	res := grid.Number(topologyCells(d), d.Width, d.Height)
	d.Clues = interleaveClues(res, f.Across, f.Down)
	return d, nil
}

// SaveText serializes the document into the plain-text format. Circled
// cells become lowercase letters under the MARK; convention and rebus cells
// become numbered substitution markers; both force the V2 header.
func (d *Document) SaveText() ([]byte, error) {
	rebus, err := d.Rebus()
	if err != nil {
		return nil, err
	}
	markup := d.Markup()

	f := &textfmt.File{
		Title:     d.Title,
		Author:    d.Author,
		Copyright: d.Copyright,
		Width:     d.Width,
		Height:    d.Height,
		Notepad:   d.Notes,
	}

	markers := make(map[int]byte) // rebus dictionary key -> grid marker
	rows := make([]byte, 0, d.Width)
	for y := 0; y < d.Height; y++ {
		rows = rows[:0]
		for x := 0; x < d.Width; x++ {
			i := y*d.Width + x
			if i >= len(d.Solution) {
				break
			}
			ch := d.Solution[i]
			switch {
			case format.IsMarker(ch):
			case rebus.Grid[i] != 0:
				key := int(rebus.Grid[i]) - 1
				m, ok := markers[key]
				if !ok && len(markers) < len(rebusMarkers) {
					m = rebusMarkers[len(markers)]
					markers[key] = m
					ok = true
				}
				if ok {
					ch = m
				}
			case markup.Has(i, MarkupCircled):
				ch = lower(ch)
				f.Mark = true
			}
			rows = append(rows, ch)
		}
		f.Grid = append(f.Grid, string(rows))
	}

	for key, m := range markers {
		short := byte('X')
		if s := rebus.Solutions[key]; s != "" {
			short = upper(s[0])
		}
		f.Rebus = append(f.Rebus, textfmt.RebusEntry{
			Key:      key,
			Marker:   m,
			Solution: rebus.Solutions[key],
			Short:    short,
		})
	}
	sortRebusEntries(f.Rebus)
	f.V2 = f.Mark || len(f.Rebus) > 0

	res := grid.Number(topologyCells(d), d.Width, d.Height)
	f.Across, f.Down = splitClues(d.Clues, res)
	return textfmt.Emit(f), nil
}

// interleaveClues merges separate across/down clue lists into the flat
// file-order list (ascending number, across before down).
func interleaveClues(res grid.Result, across, down []string) []string {
	var flat []string
	ai, di := 0, 0
	for n := 1; n <= lastEntryNumber(res); n++ {
		if _, ok := res.Across[n]; ok {
			if ai < len(across) {
				flat = append(flat, across[ai])
			} else {
				flat = append(flat, "")
			}
			ai++
		}
		if _, ok := res.Down[n]; ok {
			if di < len(down) {
				flat = append(flat, down[di])
			} else {
				flat = append(flat, "")
			}
			di++
		}
	}
	return flat
}

func sortRebusEntries(entries []textfmt.RebusEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Marker < entries[j-1].Marker; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
