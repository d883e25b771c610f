// Package xword is the normalized in-memory crossword model that every
// format adapter produces. It carries metadata, the cell matrix, and the
// across/down clue lists; entry numbering is always derived from the cells
// through the grid topology engine rather than trusted from source files.
package xword

import (
	"sort"

	"github.com/crosswordnexus/puzkit/pkg/grid"
)

// Cell is one square of the normalized grid. Solution may hold more than one
// character for rebus cells; Value is the solver's current fill.
type Cell struct {
	X, Y                                 int
	Type                                 grid.CellType
	Solution                             string
	Value                                string
	Number                               int
	Circled                              bool
	BarTop, BarBottom, BarLeft, BarRight bool
}

// Clue pairs a clue text with the entry it belongs to.
type Clue struct {
	Number int
	Text   string
	Word   string
	Cells  []grid.Coord
}

// Puzzle is the normalized document model.
type Puzzle struct {
	Width, Height int
	Title         string
	Author        string
	Copyright     string
	Notes         string
	Cells         []Cell
	Across        []Clue
	Down          []Clue
}

// CellAt returns the cell at (x, y), or nil when absent.
func (p *Puzzle) CellAt(x, y int) *Cell {
	for i := range p.Cells {
		if p.Cells[i].X == x && p.Cells[i].Y == y {
			return &p.Cells[i]
		}
	}
	return nil
}

// topologyCells projects the model cells into the topology input form.
func (p *Puzzle) topologyCells() []grid.Cell {
	cells := make([]grid.Cell, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = grid.Cell{
			X: c.X, Y: c.Y,
			Type:      c.Type,
			Solution:  c.Solution,
			BarTop:    c.BarTop,
			BarBottom: c.BarBottom,
			BarLeft:   c.BarLeft,
			BarRight:  c.BarRight,
		}
	}
	return cells
}

// Renumber recomputes entry numbering from the current cells, stamps each
// cell's Number, and refreshes the Word and Cells fields of existing clues.
// Clue texts are matched to entries by number and direction.
func (p *Puzzle) Renumber() grid.Result {
	res := grid.Number(p.topologyCells(), p.Width, p.Height)
	for i := range p.Cells {
		c := &p.Cells[i]
		if c.Y >= 0 && c.Y < p.Height && c.X >= 0 && c.X < p.Width {
			c.Number = res.Numbers[c.Y][c.X]
		}
	}
	p.Across = refreshClues(p.Across, res.Across)
	p.Down = refreshClues(p.Down, res.Down)
	return res
}

// AttachClues pairs flat across/down clue text lists with the numbered
// entries, in ascending entry order.
func (p *Puzzle) AttachClues(across, down []string) {
	res := p.Renumber()
	p.Across = cluesFromTexts(res.Across, across)
	p.Down = cluesFromTexts(res.Down, down)
}

func refreshClues(clues []Clue, entries map[int]grid.Entry) []Clue {
	out := clues[:0]
	for _, c := range clues {
		e, ok := entries[c.Number]
		if !ok {
			continue
		}
		c.Word = e.Word
		c.Cells = e.Cells
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func cluesFromTexts(entries map[int]grid.Entry, texts []string) []Clue {
	nums := sortedKeys(entries)
	clues := make([]Clue, 0, len(nums))
	for i, n := range nums {
		c := Clue{Number: n, Word: entries[n].Word, Cells: entries[n].Cells}
		if i < len(texts) {
			c.Text = texts[i]
		}
		clues = append(clues, c)
	}
	return clues
}

func sortedKeys(m map[int]grid.Entry) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
