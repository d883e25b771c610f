package puz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosswordnexus/puzkit/pkg/puz"
)

const sampleText = "<ACROSS PUZZLE>\r\n" +
	"<TITLE>\r\n" +
	" Tiny\r\n" +
	"<AUTHOR>\r\n" +
	" A. Constructor\r\n" +
	"<COPYRIGHT>\r\n" +
	" (c) 2020\r\n" +
	"<SIZE>\r\n" +
	" 3x3\r\n" +
	"<GRID>\r\n" +
	" CAT\r\n" +
	" .AR\r\n" +
	" SON\r\n" +
	"<ACROSS>\r\n" +
	" Feline\r\n" +
	" Pirate chatter\r\n" +
	" Male child\r\n" +
	"<DOWN>\r\n" +
	" Exclamations\r\n" +
	" Train letters\r\n" +
	"<NOTEPAD>\r\n" +
	"A very small grid.\r\n"

func TestParseText(t *testing.T) {
	d, err := puz.ParseText([]byte(sampleText))
	require.NoError(t, err)

	assert.Equal(t, 3, d.Width)
	assert.Equal(t, 3, d.Height)
	assert.Equal(t, "Tiny", d.Title)
	assert.Equal(t, "CAT.ARSON", d.Solution)
	assert.Equal(t, "---.-----", d.Fill)
	assert.Equal(t, "A very small grid.", strings.TrimRight(d.Notes, "\r\n"))

	// File order interleaves by number with across first.
	assert.Equal(t, []string{
		"Feline",
		"Exclamations",
		"Train letters",
		"Pirate chatter",
		"Male child",
	}, d.Clues)
}

func TestParseTextBadGrid(t *testing.T) {
	bad := strings.Replace(sampleText, " .AR\r\n", " .ARX\r\n", 1)
	_, err := puz.ParseText([]byte(bad))
	assert.ErrorIs(t, err, puz.ErrText)
}

func TestSaveTextRoundTrip(t *testing.T) {
	d, err := puz.ParseText([]byte(sampleText))
	require.NoError(t, err)

	out, err := d.SaveText()
	require.NoError(t, err)

	back, err := puz.ParseText(out)
	require.NoError(t, err)
	assert.Equal(t, d.Solution, back.Solution)
	assert.Equal(t, d.Clues, back.Clues)
	assert.Equal(t, d.Title, back.Title)
	assert.Equal(t, d.Width, back.Width)
}

func TestTextRebusAndCircles(t *testing.T) {
	d := sampleDocument()
	r := puz.Rebus{
		Grid:      make([]byte, 9),
		Solutions: map[int]string{0: "CARNIVAL"},
	}
	r.Grid[0] = 1
	require.NoError(t, d.SetRebus(r))
	m := puz.Markup{Grid: make([]byte, 9)}
	m.SetFlag(8, puz.MarkupCircled, true)
	d.SetMarkup(m)

	out, err := d.SaveText()
	require.NoError(t, err)
	text := string(out)
	assert.True(t, strings.HasPrefix(text, "<ACROSS PUZZLE V2>"))
	assert.Contains(t, text, "MARK;")
	assert.Contains(t, text, "CARNIVAL")

	back, err := puz.ParseText(out)
	require.NoError(t, err)
	assert.Equal(t, d.Solution, back.Solution)

	reb, err := back.Rebus()
	require.NoError(t, err)
	sol, ok := reb.Solution(0)
	require.True(t, ok)
	assert.Equal(t, "CARNIVAL", sol)

	bm := back.Markup()
	assert.True(t, bm.Has(8, puz.MarkupCircled))
}
