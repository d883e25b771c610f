package ipuz_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosswordnexus/puzkit/pkg/grid"
	"github.com/crosswordnexus/puzkit/pkg/ipuz"
)

const sampleIPUZ = `{
  "version": "http://ipuz.org/v2",
  "kind": ["http://ipuz.org/crossword#1"],
  "title": "Tiny",
  "author": "A. Constructor",
  "copyright": "(c) 2020",
  "notes": "A very small grid.",
  "dimensions": {"width": 3, "height": 3},
  "puzzle": [
    [1, 2, {"cell": 3, "style": {"shapebg": "circle"}}],
    ["#", 0, 4],
    [5, 0, 0]
  ],
  "solution": [
    ["C", "A", "T"],
    ["#", "A", "R"],
    ["S", "O", "N"]
  ],
  "clues": {
    "Across": [
      [1, "Feline"],
      [4, "Pirate chatter"],
      {"number": 5, "clue": "Male child"}
    ],
    "Down": [
      [2, "Exclamations"],
      [3, "Train letters"]
    ]
  }
}`

func TestParse(t *testing.T) {
	p, err := ipuz.Parse([]byte(sampleIPUZ))
	require.NoError(t, err)

	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 3, p.Height)
	assert.Equal(t, "Tiny", p.Title)
	assert.Equal(t, "A very small grid.", p.Notes)

	require.Len(t, p.Across, 3)
	require.Len(t, p.Down, 2)
	assert.Equal(t, "Feline", p.Across[0].Text)
	assert.Equal(t, "CAT", p.Across[0].Word)
	assert.Equal(t, "Male child", p.Across[2].Text)
	assert.Equal(t, "AAO", p.Down[0].Word)

	block := p.CellAt(0, 1)
	require.NotNil(t, block)
	assert.Equal(t, grid.Block, block.Type)

	circled := p.CellAt(2, 0)
	require.NotNil(t, circled)
	assert.True(t, circled.Circled)
}

func TestParseZipWrapped(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("ipuz.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(sampleIPUZ))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	p, err := ipuz.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Tiny", p.Title)
}

func TestParseCallbackWrapper(t *testing.T) {
	wrapped := "ipuz(" + sampleIPUZ + ")"
	p, err := ipuz.Parse([]byte(wrapped))
	require.NoError(t, err)
	assert.Equal(t, "Tiny", p.Title)
}

func TestParseNullIsVoid(t *testing.T) {
	src := `{
	  "kind": ["http://ipuz.org/crossword#1"],
	  "dimensions": {"width": 2, "height": 1},
	  "puzzle": [[1, null]],
	  "solution": [["A", null]],
	  "clues": {"Across": [], "Down": []}
	}`
	p, err := ipuz.Parse([]byte(src))
	require.NoError(t, err)
	v := p.CellAt(1, 0)
	require.NotNil(t, v)
	assert.Equal(t, grid.Void, v.Type)
}

func TestParseRebusSolution(t *testing.T) {
	src := `{
	  "kind": ["http://ipuz.org/crossword#1"],
	  "dimensions": {"width": 3, "height": 1},
	  "puzzle": [[1, 0, 0]],
	  "solution": [[{"value": "TEN"}, "S", "E"]],
	  "clues": {"Across": [[1, "Anxious"]]}
	}`
	p, err := ipuz.Parse([]byte(src))
	require.NoError(t, err)
	c := p.CellAt(0, 0)
	require.NotNil(t, c)
	assert.Equal(t, "TEN", c.Solution)
}

func TestParseNotCrossword(t *testing.T) {
	_, err := ipuz.Parse([]byte(`{"kind": ["http://ipuz.org/sudoku#1"], "puzzle": [[1]]}`))
	assert.ErrorIs(t, err, ipuz.ErrNotCrossword)
}

func TestParseCustomBlock(t *testing.T) {
	src := `{
	  "kind": ["http://ipuz.org/crossword#1"],
	  "block": "X",
	  "dimensions": {"width": 2, "height": 1},
	  "puzzle": [[1, "X"]],
	  "solution": [["A", "X"]],
	  "clues": {"Across": []}
	}`
	p, err := ipuz.Parse([]byte(src))
	require.NoError(t, err)
	b := p.CellAt(1, 0)
	require.NotNil(t, b)
	assert.Equal(t, grid.Block, b.Type)
}
