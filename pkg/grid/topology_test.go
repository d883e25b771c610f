package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosswordnexus/puzkit/pkg/grid"
)

// cellsFromRows builds a cell list from row strings where '.' is a block and
// ':' is a void.
func cellsFromRows(rows ...string) []grid.Cell {
	var cells []grid.Cell
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			c := grid.Cell{X: x, Y: y}
			switch row[x] {
			case '.':
				c.Type = grid.Block
			case ':':
				c.Type = grid.Void
			default:
				c.Solution = string(row[x])
			}
			cells = append(cells, c)
		}
	}
	return cells
}

func TestNumberReferenceGrid(t *testing.T) {
	res := grid.Number(cellsFromRows(
		"CAT",
		".AR",
		"SON",
	), 3, 3)

	want := [][]int{
		{1, 2, 3},
		{0, 4, 0},
		{5, 0, 0},
	}
	require.Equal(t, want, res.Numbers)

	require.Len(t, res.Across, 3)
	assert.Equal(t, "CAT", res.Across[1].Word)
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, res.Across[1].Cells)
	assert.Equal(t, "AR", res.Across[4].Word)
	assert.Equal(t, "SON", res.Across[5].Word)

	require.Len(t, res.Down, 2)
	assert.Equal(t, "AAO", res.Down[2].Word)
	assert.Equal(t, "TRN", res.Down[3].Word)
	assert.Equal(t, []grid.Coord{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, res.Down[3].Cells)
}

func TestNumberSharedAnchor(t *testing.T) {
	// Open 2x2 grid: (0,0) anchors both an across and a down entry under
	// one number.
	res := grid.Number(cellsFromRows("AB", "CD"), 2, 2)
	require.Equal(t, [][]int{{1, 2}, {3, 0}}, res.Numbers)
	assert.Equal(t, "AB", res.Across[1].Word)
	assert.Equal(t, "AC", res.Down[1].Word)
	assert.Equal(t, "BD", res.Down[2].Word)
	assert.Equal(t, "CD", res.Across[3].Word)
}

func TestNumberBarsActAsWalls(t *testing.T) {
	cells := cellsFromRows("ABCD")
	cells[1].BarRight = true
	res := grid.Number(cells, 4, 1)

	require.Len(t, res.Across, 2)
	assert.Equal(t, "AB", res.Across[1].Word)
	assert.Equal(t, "CD", res.Across[2].Word)
	assert.Empty(t, res.Down)

	// The same wall declared from the far side splits identically.
	cells = cellsFromRows("ABCD")
	cells[2].BarLeft = true
	res = grid.Number(cells, 4, 1)
	require.Len(t, res.Across, 2)
	assert.Equal(t, "AB", res.Across[1].Word)
	assert.Equal(t, "CD", res.Across[2].Word)
}

func TestNumberVoidsBehaveLikeEdges(t *testing.T) {
	res := grid.Number(cellsFromRows(
		"::A",
		"BCD",
	), 3, 2)
	// (2,0) 'A' has a void to its left and the edge to its right: no across
	// start, but it anchors the down pair with (2,1).
	require.Empty(t, res.Across[res.Numbers[0][2]].Cells)
	assert.Equal(t, "AD", res.Down[1].Word)
	assert.Equal(t, "BCD", res.Across[2].Word)
}

func TestNumberMissingCellsYieldNoEntries(t *testing.T) {
	// A cell list that does not cover the area produces voids, not errors.
	cells := []grid.Cell{{X: 0, Y: 0, Solution: "A"}, {X: 1, Y: 0, Solution: "B"}}
	res := grid.Number(cells, 3, 3)
	require.Len(t, res.Across, 1)
	assert.Equal(t, "AB", res.Across[1].Word)
	assert.Empty(t, res.Down)

	// Out-of-range coordinates are ignored entirely.
	res = grid.Number([]grid.Cell{{X: 9, Y: 9, Solution: "Z"}}, 2, 2)
	assert.Empty(t, res.Across)
	assert.Empty(t, res.Down)
}

func TestNumberDiagramlessStyleAllOpenRow(t *testing.T) {
	res := grid.Number(cellsFromRows("HELLO"), 5, 1)
	require.Len(t, res.Across, 1)
	assert.Equal(t, "HELLO", res.Across[1].Word)
	assert.Len(t, res.Across[1].Cells, 5)
}
