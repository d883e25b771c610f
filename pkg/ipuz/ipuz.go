// Package ipuz reads ipuz crossword JSON into the normalized model. Only
// the crossword kind is handled; cell and solution matrices may mix bare
// values with styled cell objects, and the block and empty tokens can be
// overridden at the top level.
package ipuz

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/crosswordnexus/puzkit/internal/htmlutil"
	"github.com/crosswordnexus/puzkit/pkg/grid"
	"github.com/crosswordnexus/puzkit/pkg/xword"
)

var (
	// ErrNotCrossword is returned when no crossword kind is declared.
	ErrNotCrossword = errors.New("ipuz: not a crossword puzzle")
	// ErrNoGrid is returned when the puzzle matrix is absent or empty.
	ErrNoGrid = errors.New("ipuz: missing puzzle grid")
)

const defaultBlock = "#"

// file mirrors the top-level ipuz JSON object. Matrices stay raw because a
// cell may be a number, a string, null, or a styled object.
type file struct {
	Version    string            `json:"version"`
	Kind       []string          `json:"kind"`
	Title      string            `json:"title"`
	Author     string            `json:"author"`
	Copyright  string            `json:"copyright"`
	Notes      string            `json:"notes"`
	Intro      string            `json:"intro"`
	Block      string            `json:"block"`
	Empty      json.RawMessage   `json:"empty"`
	Dimensions struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"dimensions"`
	Puzzle   [][]json.RawMessage          `json:"puzzle"`
	Solution [][]json.RawMessage          `json:"solution"`
	Clues    map[string][]json.RawMessage `json:"clues"`
}

// cellObject is the styled form of a puzzle cell.
type cellObject struct {
	Cell  json.RawMessage `json:"cell"`
	Style struct {
		ShapeBG string `json:"shapebg"`
		BarSpec string `json:"barred"`
	} `json:"style"`
	Value string `json:"value"`
}

// Parse reads an ipuz JSON document. A zip wrapper is unwrapped first, and
// some distributors wrap the JSON in an `ipuz(...)` callback; both are
// removed before decoding.
func Parse(data []byte) (*xword.Puzzle, error) {
	if bytes.HasPrefix(data, []byte{'P', 'K', 0x03, 0x04}) {
		inner, err := unwrapZip(data)
		if err != nil {
			return nil, err
		}
		data = inner
	}
	data = stripCallback(data)
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ipuz: decoding JSON: %w", err)
	}
	if !isCrossword(f.Kind) {
		return nil, ErrNotCrossword
	}
	if len(f.Puzzle) == 0 {
		return nil, ErrNoGrid
	}

	// The matrix is authoritative when it disagrees with the declared
	// dimensions.
	height := len(f.Puzzle)
	width := 0
	for _, row := range f.Puzzle {
		if len(row) > width {
			width = len(row)
		}
	}

	block := f.Block
	if block == "" {
		block = defaultBlock
	}

	p := &xword.Puzzle{
		Width:     width,
		Height:    height,
		Title:     htmlutil.StripTags(f.Title),
		Author:    htmlutil.StripTags(f.Author),
		Copyright: htmlutil.StripTags(f.Copyright),
		Notes:     htmlutil.StripTags(notesText(f)),
	}

	for y, row := range f.Puzzle {
		for x, raw := range row {
			c := parseCell(raw, block)
			c.X, c.Y = x, y
			if c.Type == grid.Normal && y < len(f.Solution) && x < len(f.Solution[y]) {
				c.Solution = solutionText(f.Solution[y][x], block)
			}
			p.Cells = append(p.Cells, c)
		}
	}

	across := clueMap(f.Clues, "Across")
	down := clueMap(f.Clues, "Down")
	res := p.Renumber()
	p.Across = numberedClues(res.Across, across)
	p.Down = numberedClues(res.Down, down)
	return p, nil
}

// unwrapZip returns the content of the first .ipuz or .json entry, falling
// back to the first entry of any name.
func unwrapZip(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("ipuz: opening zip: %w", err)
	}
	if len(zr.File) == 0 {
		return nil, fmt.Errorf("ipuz: empty zip archive")
	}
	pick := zr.File[0]
	for _, f := range zr.File {
		name := strings.ToLower(f.Name)
		if strings.HasSuffix(name, ".ipuz") || strings.HasSuffix(name, ".json") {
			pick = f
			break
		}
	}
	rc, err := pick.Open()
	if err != nil {
		return nil, fmt.Errorf("ipuz: reading %s: %w", pick.Name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// stripCallback removes a JSONP-style ipuz(...) wrapper when present.
func stripCallback(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte("ipuz(")) {
		return data
	}
	trimmed = trimmed[len("ipuz("):]
	trimmed = bytes.TrimSuffix(bytes.TrimSpace(trimmed), []byte(")"))
	return trimmed
}

func isCrossword(kinds []string) bool {
	for _, k := range kinds {
		if strings.Contains(k, "crossword") {
			return true
		}
	}
	return false
}

// parseCell classifies one puzzle matrix entry. null means void, the block
// token means block, and anything else is a playable cell. A styled object
// is unwrapped and its inner cell value classified the same way.
func parseCell(raw json.RawMessage, block string) xword.Cell {
	c := xword.Cell{Type: grid.Normal}
	v := bytes.TrimSpace(raw)
	switch {
	case len(v) == 0 || bytes.Equal(v, []byte("null")):
		c.Type = grid.Void
		return c
	case v[0] == '{':
		var obj cellObject
		if json.Unmarshal(v, &obj) != nil {
			return c
		}
		inner := parseCell(obj.Cell, block)
		inner.Circled = obj.Style.ShapeBG == "circle"
		applyBars(&inner, obj.Style.BarSpec)
		return inner
	case v[0] == '"':
		var s string
		if json.Unmarshal(v, &s) == nil && s == block {
			c.Type = grid.Block
		}
		return c
	}
	return c
}

// applyBars reads the ipuz "TRBL" bar specification.
func applyBars(c *xword.Cell, spec string) {
	for _, r := range spec {
		switch r {
		case 'T':
			c.BarTop = true
		case 'R':
			c.BarRight = true
		case 'B':
			c.BarBottom = true
		case 'L':
			c.BarLeft = true
		}
	}
}

// solutionText extracts the letters for one solution matrix entry. Block
// and null entries yield no text; a value object contributes its value,
// which may be several characters for a rebus cell.
func solutionText(raw json.RawMessage, block string) string {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}
	if v[0] == '{' {
		var obj cellObject
		if json.Unmarshal(v, &obj) != nil {
			return ""
		}
		return obj.Value
	}
	var s string
	if json.Unmarshal(v, &s) != nil || s == block {
		return ""
	}
	return s
}

// clueMap decodes one direction's clue list into number to text form. An
// entry is either the [number, text] pair form or an object with number
// and clue fields.
func clueMap(clues map[string][]json.RawMessage, direction string) map[int]string {
	out := make(map[int]string)
	for _, raw := range clues[direction] {
		v := bytes.TrimSpace(raw)
		if len(v) == 0 {
			continue
		}
		if v[0] == '[' {
			var pair []json.RawMessage
			if json.Unmarshal(v, &pair) != nil || len(pair) < 2 {
				continue
			}
			var num int
			var text string
			if json.Unmarshal(pair[0], &num) != nil {
				continue
			}
			if json.Unmarshal(pair[1], &text) != nil {
				continue
			}
			out[num] = htmlutil.StripTags(text)
			continue
		}
		var obj struct {
			Number int    `json:"number"`
			Clue   string `json:"clue"`
		}
		if json.Unmarshal(v, &obj) == nil && obj.Number > 0 {
			out[obj.Number] = htmlutil.StripTags(obj.Clue)
		}
	}
	return out
}

func numberedClues(entries map[int]grid.Entry, texts map[int]string) []xword.Clue {
	nums := make([]int, 0, len(entries))
	for n := range entries {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	clues := make([]xword.Clue, 0, len(nums))
	for _, n := range nums {
		clues = append(clues, xword.Clue{
			Number: n,
			Text:   texts[n],
			Word:   entries[n].Word,
			Cells:  entries[n].Cells,
		})
	}
	return clues
}

func notesText(f file) string {
	if f.Notes != "" {
		return f.Notes
	}
	return f.Intro
}
