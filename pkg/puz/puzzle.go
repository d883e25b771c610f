package puz

import (
	"github.com/crosswordnexus/puzkit/internal/format"
	"github.com/crosswordnexus/puzkit/pkg/grid"
	"github.com/crosswordnexus/puzkit/pkg/xword"
)

// Puzzle maps the document onto the normalized crossword model. Rebus
// solutions replace single-letter cells, the circled markup bit carries
// over, and the flat clue list is split into across and down lists by entry
// numbering (across before down when one number anchors both).
func (d *Document) Puzzle() (*xword.Puzzle, error) {
	rebus, err := d.Rebus()
	if err != nil {
		return nil, err
	}
	markup := d.Markup()

	p := &xword.Puzzle{
		Width:     d.Width,
		Height:    d.Height,
		Title:     d.Title,
		Author:    d.Author,
		Copyright: d.Copyright,
		Notes:     d.Notes,
	}
	for i := 0; i < d.Width*d.Height && i < len(d.Solution); i++ {
		c := xword.Cell{
			X:       i % d.Width,
			Y:       i / d.Width,
			Circled: markup.Has(i, MarkupCircled),
		}
		switch d.Solution[i] {
		case format.BlockMarker:
			c.Type = grid.Block
		case format.VoidMarker:
			c.Type = grid.Void
		default:
			c.Solution = string(d.Solution[i])
			if s, ok := rebus.Solution(i); ok {
				c.Solution = s
			}
			if i < len(d.Fill) && d.Fill[i] != format.EmptyMarker {
				c.Value = string(d.Fill[i])
				if f, ok := rebus.UserFill(i); ok {
					c.Value = f
				}
			}
		}
		p.Cells = append(p.Cells, c)
	}

	across, down := splitClues(d.Clues, grid.Number(topologyCells(d), d.Width, d.Height))
	p.AttachClues(across, down)
	return p, nil
}

// FromPuzzle builds a .puz document from the normalized model: grids from
// the cells, a rebus extension for multi-character solutions, a markup
// extension for circles, and the clue lists flattened into the file's
// across-before-down order.
func FromPuzzle(p *xword.Puzzle) (*Document, error) {
	d := NewDocument()
	d.Width = p.Width
	d.Height = p.Height
	d.Title = p.Title
	d.Author = p.Author
	d.Copyright = p.Copyright
	d.Notes = p.Notes

	cells := p.Width * p.Height
	solution := bytesFilled(cells, format.BlockMarker)
	fill := bytesFilled(cells, format.BlockMarker)
	rebus := Rebus{Grid: make([]byte, cells), Solutions: make(map[int]string)}
	markup := Markup{Grid: make([]byte, cells)}
	rebusKeys := make(map[string]int)

	for _, c := range p.Cells {
		if c.X < 0 || c.X >= p.Width || c.Y < 0 || c.Y >= p.Height {
			continue
		}
		i := c.Y*p.Width + c.X
		switch c.Type {
		case grid.Block:
			solution[i] = format.BlockMarker
			fill[i] = format.BlockMarker
		case grid.Void:
			solution[i] = format.VoidMarker
			fill[i] = format.VoidMarker
		default:
			solution[i] = format.EmptyMarker
			if c.Solution != "" {
				solution[i] = c.Solution[0]
			}
			fill[i] = format.EmptyMarker
			if c.Value != "" {
				fill[i] = c.Value[0]
			}
			if len(c.Solution) > 1 {
				key, ok := rebusKeys[c.Solution]
				if !ok {
					key = len(rebusKeys)
					rebusKeys[c.Solution] = key
					rebus.Solutions[key] = c.Solution
				}
				rebus.Grid[i] = byte(key + 1)
			}
			if c.Circled {
				markup.SetFlag(i, MarkupCircled, true)
			}
		}
	}
	d.Solution = string(solution)
	d.Fill = string(fill)
	if err := d.SetRebus(rebus); err != nil {
		return nil, err
	}
	d.SetMarkup(markup)

	res := grid.Number(topologyCells(d), d.Width, d.Height)
	d.Clues = flattenClues(p, res)
	return d, nil
}

// topologyCells projects the document's solution grid into topology input.
func topologyCells(d *Document) []grid.Cell {
	cells := make([]grid.Cell, 0, d.Width*d.Height)
	for i := 0; i < d.Width*d.Height && i < len(d.Solution); i++ {
		c := grid.Cell{X: i % d.Width, Y: i / d.Width}
		switch d.Solution[i] {
		case format.BlockMarker:
			c.Type = grid.Block
		case format.VoidMarker:
			c.Type = grid.Void
		default:
			c.Solution = string(d.Solution[i])
		}
		cells = append(cells, c)
	}
	return cells
}

// splitClues distributes the flat clue list across the numbered entries.
// Numbers are visited in ascending order; when one number anchors both an
// across and a down entry, the across clue comes first.
func splitClues(clues []string, res grid.Result) (across, down []string) {
	next := 0
	take := func() string {
		if next >= len(clues) {
			return ""
		}
		s := clues[next]
		next++
		return s
	}
	for n := 1; n <= lastEntryNumber(res); n++ {
		if _, ok := res.Across[n]; ok {
			across = append(across, take())
		}
		if _, ok := res.Down[n]; ok {
			down = append(down, take())
		}
	}
	return across, down
}

// flattenClues is the inverse of splitClues.
func flattenClues(p *xword.Puzzle, res grid.Result) []string {
	byNumber := func(clues []xword.Clue) map[int]string {
		m := make(map[int]string, len(clues))
		for _, c := range clues {
			m[c.Number] = c.Text
		}
		return m
	}
	across := byNumber(p.Across)
	down := byNumber(p.Down)

	var flat []string
	for n := 1; n <= lastEntryNumber(res); n++ {
		if _, ok := res.Across[n]; ok {
			flat = append(flat, across[n])
		}
		if _, ok := res.Down[n]; ok {
			flat = append(flat, down[n])
		}
	}
	return flat
}

func lastEntryNumber(res grid.Result) int {
	last := 0
	for n := range res.Across {
		if n > last {
			last = n
		}
	}
	for n := range res.Down {
		if n > last {
			last = n
		}
	}
	return last
}

func bytesFilled(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// GridRows returns the solution grid as row strings.
func (d *Document) GridRows() []string {
	rows := make([]string, 0, d.Height)
	for y := 0; y < d.Height; y++ {
		start := y * d.Width
		end := start + d.Width
		if start > len(d.Solution) {
			break
		}
		if end > len(d.Solution) {
			end = len(d.Solution)
		}
		rows = append(rows, d.Solution[start:end])
	}
	return rows
}
