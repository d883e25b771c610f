// Package grid derives crossword entry structure from a raw cell matrix.
// Given cells with block/void flags, optional boundary bars, and solution
// letters, it assigns entry numbers in raster order and collects the across
// and down word spans. The algorithm is pure: it holds no state between
// calls and never fails, so format adapters can rebuild word structure their
// container formats do not state explicitly.
package grid

// CellType classifies a cell's basic role in the grid.
type CellType uint8

const (
	// Normal is a playable letter cell.
	Normal CellType = iota
	// Block is an intentional non-playable square within the grid.
	Block
	// Void is a square entirely outside the puzzle's playable shape.
	Void
)

// Coord is an (x, y) cell position, x growing rightward and y downward.
type Coord struct {
	X, Y int
}

// Cell is one square of the input matrix. The four bar flags act as virtual
// walls on the named side, blocking word continuity independent of blocks
// and voids. Cells are owned by the caller; a cell list must not be mutated
// while numbering is in progress.
type Cell struct {
	X, Y                                 int
	Type                                 CellType
	Solution                             string
	BarTop, BarBottom, BarLeft, BarRight bool
}

// Entry is a maximal run of playable cells in one direction: the ordered
// member coordinates and the concatenation of their solution letters.
type Entry struct {
	Cells []Coord
	Word  string
}

// Result holds the numbering matrix and the two entry maps, both keyed by
// the assigned entry number.
type Result struct {
	// Numbers is indexed [y][x]; zero means unnumbered.
	Numbers [][]int
	Across  map[int]Entry
	Down    map[int]Entry
}

// Number derives per-cell numbering and the across/down entries for a cell
// list covering a width x height area. Cells missing from the list are
// treated as voids, so a malformed list yields incomplete entries rather
// than an error. Numbering proceeds in row-major raster order; a cell gets
// the next sequential number the first time it starts either an across or a
// down entry, and one number may anchor both.
func Number(cells []Cell, width, height int) Result {
	m := newMatrix(cells, width, height)
	res := Result{
		Numbers: make([][]int, height),
		Across:  make(map[int]Entry),
		Down:    make(map[int]Entry),
	}
	for y := range res.Numbers {
		res.Numbers[y] = make([]int, width)
	}

	next := 1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			across := m.startsAcross(x, y)
			down := m.startsDown(x, y)
			if !across && !down {
				continue
			}
			res.Numbers[y][x] = next
			if across {
				res.Across[next] = m.walk(x, y, 1, 0)
			}
			if down {
				res.Down[next] = m.walk(x, y, 0, 1)
			}
			next++
		}
	}
	return res
}

type matrix struct {
	cells  []*Cell
	width  int
	height int
}

func newMatrix(cells []Cell, width, height int) *matrix {
	m := &matrix{
		cells:  make([]*Cell, width*height),
		width:  width,
		height: height,
	}
	for i := range cells {
		c := &cells[i]
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			continue
		}
		m.cells[c.Y*width+c.X] = c
	}
	return m
}

func (m *matrix) at(x, y int) *Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return nil
	}
	return m.cells[y*m.width+x]
}

func (m *matrix) playable(x, y int) bool {
	c := m.at(x, y)
	return c != nil && c.Type == Normal
}

// boundary reports whether (x, y) has a wall in the direction (dx, dy): the
// grid edge, a block or void neighbor, or a bar declared on either side of
// the shared edge.
func (m *matrix) boundary(x, y, dx, dy int) bool {
	c := m.at(x, y)
	n := m.at(x+dx, y+dy)
	if n == nil || n.Type != Normal {
		return true
	}
	if c != nil {
		switch {
		case dx == -1 && c.BarLeft, dx == 1 && c.BarRight,
			dy == -1 && c.BarTop, dy == 1 && c.BarBottom:
			return true
		}
	}
	switch {
	case dx == -1 && n.BarRight, dx == 1 && n.BarLeft,
		dy == -1 && n.BarBottom, dy == 1 && n.BarTop:
		return true
	}
	return false
}

func (m *matrix) startsAcross(x, y int) bool {
	return m.playable(x, y) &&
		m.boundary(x, y, -1, 0) &&
		x != m.width-1 &&
		!m.boundary(x, y, 1, 0)
}

func (m *matrix) startsDown(x, y int) bool {
	return m.playable(x, y) &&
		m.boundary(x, y, 0, -1) &&
		y != m.height-1 &&
		!m.boundary(x, y, 0, 1)
}

// walk accumulates an entry from its start cell forward until a boundary
// closes it in the running direction.
func (m *matrix) walk(x, y, dx, dy int) Entry {
	var e Entry
	for {
		c := m.at(x, y)
		if c == nil {
			break
		}
		e.Cells = append(e.Cells, Coord{X: x, Y: y})
		e.Word += c.Solution
		if m.boundary(x, y, dx, dy) {
			break
		}
		x += dx
		y += dy
	}
	return e
}
