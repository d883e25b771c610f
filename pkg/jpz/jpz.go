// Package jpz reads Crossword Compiler XML puzzles into the normalized
// model. Both bare XML and the common zip-wrapped form are accepted; entry
// numbering is recomputed from the grid rather than trusted from the file.
package jpz

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/crosswordnexus/puzkit/internal/htmlutil"
	"github.com/crosswordnexus/puzkit/pkg/grid"
	"github.com/crosswordnexus/puzkit/pkg/xword"
)

var (
	// ErrNoCrossword is returned when the XML holds no crossword grid.
	ErrNoCrossword = errors.New("jpz: no crossword element")
	// ErrBadArchive is returned for a zip wrapper without a usable entry.
	ErrBadArchive = errors.New("jpz: empty zip archive")
)

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// Parse reads a .jpz file. A zip wrapper is unwrapped first; the XML inside
// (or the raw input) is then decoded into a Puzzle.
func Parse(data []byte) (*xword.Puzzle, error) {
	if bytes.HasPrefix(data, zipMagic) {
		inner, err := unwrapZip(data)
		if err != nil {
			return nil, err
		}
		data = inner
	}
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("jpz: parsing XML: %w", err)
	}
	return fromDocument(doc)
}

// unwrapZip returns the content of the first .jpz or .xml entry, falling
// back to the first entry of any name.
func unwrapZip(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("jpz: opening zip: %w", err)
	}
	if len(zr.File) == 0 {
		return nil, ErrBadArchive
	}
	pick := zr.File[0]
	for _, f := range zr.File {
		name := strings.ToLower(f.Name)
		if strings.HasSuffix(name, ".jpz") || strings.HasSuffix(name, ".xml") {
			pick = f
			break
		}
	}
	rc, err := pick.Open()
	if err != nil {
		return nil, fmt.Errorf("jpz: reading %s: %w", pick.Name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func fromDocument(doc *xmlquery.Node) (*xword.Puzzle, error) {
	cw := xmlquery.FindOne(doc, "//crossword")
	if cw == nil {
		return nil, ErrNoCrossword
	}
	gridNode := xmlquery.FindOne(cw, "grid")
	if gridNode == nil {
		return nil, ErrNoCrossword
	}

	p := &xword.Puzzle{
		Width:  attrInt(gridNode, "width"),
		Height: attrInt(gridNode, "height"),
	}
	if meta := xmlquery.FindOne(doc, "//metadata"); meta != nil {
		p.Title = metaText(meta, "title")
		p.Author = metaText(meta, "creator")
		p.Copyright = metaText(meta, "copyright")
		p.Notes = metaText(meta, "description")
	}

	for _, cn := range xmlquery.Find(gridNode, "cell") {
		c := xword.Cell{
			// jpz coordinates are 1-based.
			X:         attrInt(cn, "x") - 1,
			Y:         attrInt(cn, "y") - 1,
			Solution:  cn.SelectAttr("solution"),
			Value:     cn.SelectAttr("solve-state"),
			Circled:   cn.SelectAttr("background-shape") == "circle",
			BarTop:    attrBool(cn, "top-bar"),
			BarBottom: attrBool(cn, "bottom-bar"),
			BarLeft:   attrBool(cn, "left-bar"),
			BarRight:  attrBool(cn, "right-bar"),
		}
		switch cn.SelectAttr("type") {
		case "block":
			c.Type = grid.Block
		case "void":
			c.Type = grid.Void
		default:
			c.Type = grid.Normal
		}
		p.Cells = append(p.Cells, c)
	}

	across, down := clueTexts(cw)
	res := p.Renumber()
	p.Across = cluesByNumber(res.Across, across)
	p.Down = cluesByNumber(res.Down, down)
	return p, nil
}

// clueTexts gathers clue number to text maps from the clue sections. The
// section direction comes from its title; the first section defaults to
// across and the second to down when the title is unrecognized.
func clueTexts(cw *xmlquery.Node) (across, down map[int]string) {
	across = make(map[int]string)
	down = make(map[int]string)
	for i, section := range xmlquery.Find(cw, "clues") {
		target := across
		title := ""
		if t := xmlquery.FindOne(section, "title"); t != nil {
			title = strings.ToLower(htmlutil.StripTags(t.InnerText()))
		}
		switch {
		case strings.Contains(title, "across"):
		case strings.Contains(title, "down"):
			target = down
		case i == 1:
			target = down
		}
		for _, cl := range xmlquery.Find(section, "clue") {
			num, err := strconv.Atoi(cl.SelectAttr("number"))
			if err != nil {
				continue
			}
			target[num] = htmlutil.StripTags(cl.InnerText())
		}
	}
	return across, down
}

func cluesByNumber(entries map[int]grid.Entry, texts map[int]string) []xword.Clue {
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

func metaText(meta *xmlquery.Node, name string) string {
	if n := xmlquery.FindOne(meta, name); n != nil {
		return htmlutil.StripTags(n.InnerText())
	}
	return ""
}

func attrInt(n *xmlquery.Node, name string) int {
	v, _ := strconv.Atoi(n.SelectAttr(name))
	return v
}

func attrBool(n *xmlquery.Node, name string) bool {
	return n.SelectAttr(name) == "true"
}
