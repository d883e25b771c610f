package xword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosswordnexus/puzkit/pkg/grid"
	"github.com/crosswordnexus/puzkit/pkg/xword"
)

// twoByTwo is the smallest grid where one number anchors both directions:
//
//	A B
//	C D
func twoByTwo() *xword.Puzzle {
	p := &xword.Puzzle{Width: 2, Height: 2}
	for i, s := range []string{"A", "B", "C", "D"} {
		p.Cells = append(p.Cells, xword.Cell{
			X: i % 2, Y: i / 2, Solution: s,
		})
	}
	return p
}

func TestRenumberStampsCells(t *testing.T) {
	p := twoByTwo()
	p.Renumber()

	a := p.CellAt(0, 0)
	require.NotNil(t, a)
	assert.Equal(t, 1, a.Number)
	b := p.CellAt(1, 0)
	require.NotNil(t, b)
	assert.Equal(t, 2, b.Number)
	c := p.CellAt(0, 1)
	require.NotNil(t, c)
	assert.Equal(t, 3, c.Number)
	d := p.CellAt(1, 1)
	require.NotNil(t, d)
	assert.Equal(t, 0, d.Number)
}

func TestAttachClues(t *testing.T) {
	p := twoByTwo()
	p.AttachClues(
		[]string{"First row", "Second row"},
		[]string{"First column", "Second column"},
	)

	require.Len(t, p.Across, 2)
	require.Len(t, p.Down, 2)
	assert.Equal(t, 1, p.Across[0].Number)
	assert.Equal(t, "First row", p.Across[0].Text)
	assert.Equal(t, "AB", p.Across[0].Word)
	assert.Equal(t, 3, p.Across[1].Number)
	assert.Equal(t, "CD", p.Across[1].Word)
	assert.Equal(t, 1, p.Down[0].Number)
	assert.Equal(t, "AC", p.Down[0].Word)
	assert.Equal(t, 2, p.Down[1].Number)
	assert.Equal(t, "Second column", p.Down[1].Text)
}

func TestRenumberRefreshesExistingClues(t *testing.T) {
	p := twoByTwo()
	p.AttachClues([]string{"a", "b"}, []string{"c", "d"})

	// Blocking the last cell leaves a single across and a single down
	// entry; clue texts survive by number where the entry still exists.
	last := p.CellAt(1, 1)
	require.NotNil(t, last)
	last.Type = grid.Block
	last.Solution = ""
	p.Renumber()

	require.Len(t, p.Across, 1)
	assert.Equal(t, "a", p.Across[0].Text)
	assert.Equal(t, "AB", p.Across[0].Word)
	require.Len(t, p.Down, 1)
	assert.Equal(t, "c", p.Down[0].Text)
	assert.Equal(t, "AC", p.Down[0].Word)
}
