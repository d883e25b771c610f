package puz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosswordnexus/puzkit/pkg/puz"
)

// sampleDocument builds the reference 3x3 puzzle used throughout the tests:
//
//	C A T
//	. A R
//	S O N
//
// Across entries start at 1, 4, and 5; down entries at 2 and 3.
func sampleDocument() *puz.Document {
	d := puz.NewDocument()
	d.Width = 3
	d.Height = 3
	d.Title = "Tiny"
	d.Author = "A. Constructor"
	d.Copyright = "(c) 2020"
	d.Notes = "A very small grid."
	d.Solution = "CAT.ARSON"
	d.Fill = "---.-----"
	d.Clues = []string{
		"Feline",          // 1 across
		"Exclamations",    // 2 down
		"Train letters",   // 3 down
		"Pirate chatter",  // 4 across
		"Male child",      // 5 across
	}
	return d
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := sampleDocument()

	first, err := d.Save()
	require.NoError(t, err)

	got, err := puz.Load(first, nil)
	require.NoError(t, err)

	assert.Equal(t, d.Width, got.Width)
	assert.Equal(t, d.Height, got.Height)
	assert.Equal(t, d.Title, got.Title)
	assert.Equal(t, d.Author, got.Author)
	assert.Equal(t, d.Copyright, got.Copyright)
	assert.Equal(t, d.Notes, got.Notes)
	assert.Equal(t, d.Solution, got.Solution)
	assert.Equal(t, d.Fill, got.Fill)
	assert.Equal(t, d.Clues, got.Clues)
	assert.Equal(t, "1.3", got.Version())
	assert.Equal(t, "ISO-8859-1", got.TextEncoding())

	second, err := got.Save()
	require.NoError(t, err)
	assert.Equal(t, first, second, "second save must reproduce the file byte for byte")
}

func TestRoundTripPreservesForeignBytes(t *testing.T) {
	d := sampleDocument()
	d.Preamble = []byte("junk before the header")
	d.Postscript = []byte("trailing application data")
	d.Extensions.Set("ZZZZ", []byte{0xDE, 0xAD})

	first, err := d.Save()
	require.NoError(t, err)

	got, err := puz.Load(first, nil)
	require.NoError(t, err)
	assert.Equal(t, d.Preamble, got.Preamble)
	assert.Equal(t, d.Postscript, got.Postscript)

	payload, ok := got.Extensions.Get("ZZZZ")
	require.True(t, ok)
	assert.Equal(t, []byte{0xDE, 0xAD}, payload)

	second, err := got.Save()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadMissingAnchor(t *testing.T) {
	_, err := puz.Load([]byte("this is not a puzzle file"), nil)
	assert.ErrorIs(t, err, puz.ErrNoAnchor)
}

func TestSaveGridSizeMismatch(t *testing.T) {
	d := sampleDocument()
	d.Solution = "CAT"
	_, err := d.Save()
	assert.ErrorIs(t, err, puz.ErrGridSize)
}

func TestLockUnlock(t *testing.T) {
	d := sampleDocument()
	plain := d.Solution

	require.NoError(t, d.LockSolution(1234))
	assert.True(t, d.IsLocked())
	assert.NotEqual(t, plain, d.Solution)
	assert.NotZero(t, d.ScrambledChecksum)
	assert.Equal(t, ".", string(d.Solution[3]), "block markers stay in place")

	assert.False(t, d.UnlockSolution(9999))
	assert.True(t, d.IsLocked(), "a failed unlock leaves the document locked")

	assert.True(t, d.UnlockSolution(1234))
	assert.False(t, d.IsLocked())
	assert.Equal(t, plain, d.Solution)
	assert.Zero(t, d.ScrambledChecksum)
}

func TestLockBadKey(t *testing.T) {
	d := sampleDocument()
	assert.ErrorIs(t, d.LockSolution(123), puz.ErrBadKey)
	assert.ErrorIs(t, d.LockSolution(10000), puz.ErrBadKey)
}

func TestLockedRoundTripBytes(t *testing.T) {
	d := sampleDocument()
	require.NoError(t, d.LockSolution(4321))

	first, err := d.Save()
	require.NoError(t, err)

	got, err := puz.Load(first, nil)
	require.NoError(t, err)
	assert.True(t, got.IsLocked())
	assert.Equal(t, d.ScrambledChecksum, got.ScrambledChecksum)

	second, err := got.Save()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadLockedMask(t *testing.T) {
	d := sampleDocument()
	require.NoError(t, d.LockSolution(2468))
	data, err := d.Save()
	require.NoError(t, err)

	got, err := puz.Load(data, &puz.LoadOptions{LockedHandling: puz.LockedMask})
	require.NoError(t, err)
	assert.Equal(t, "---.-----", got.Solution)
	assert.True(t, got.IsLocked())
}

func TestLoadLockedMaskChar(t *testing.T) {
	d := sampleDocument()
	require.NoError(t, d.LockSolution(2468))
	data, err := d.Save()
	require.NoError(t, err)

	got, err := puz.Load(data, &puz.LoadOptions{
		LockedHandling: puz.LockedMask,
		MaskChar:       '?',
	})
	require.NoError(t, err)
	assert.Equal(t, "???.?????", got.Solution)
}

func TestBruteForceUnlock(t *testing.T) {
	d := sampleDocument()
	require.NoError(t, d.LockSolution(1234))

	key, ok := d.BruteForceUnlock(0)
	require.True(t, ok)
	assert.False(t, d.IsLocked())
	assert.GreaterOrEqual(t, key, 1000)
	assert.LessOrEqual(t, key, 9999)
}

func TestBruteForceUnlockOnUnlocked(t *testing.T) {
	d := sampleDocument()
	key, ok := d.BruteForceUnlock(time.Millisecond)
	assert.True(t, ok)
	assert.Zero(t, key)
}

func TestRebusRoundTrip(t *testing.T) {
	d := sampleDocument()
	r := puz.Rebus{
		Grid:      make([]byte, 9),
		Solutions: map[int]string{0: "CAROUSEL"},
	}
	r.Grid[0] = 1 // cell 0 holds entry 0
	require.NoError(t, d.SetRebus(r))

	data, err := d.Save()
	require.NoError(t, err)
	got, err := puz.Load(data, nil)
	require.NoError(t, err)

	reb, err := got.Rebus()
	require.NoError(t, err)
	assert.True(t, reb.HasRebus())

	sol, ok := reb.Solution(0)
	require.True(t, ok)
	assert.Equal(t, "CAROUSEL", sol)

	_, ok = reb.Solution(1)
	assert.False(t, ok)
}

func TestSetRebusEmptyRemovesRecords(t *testing.T) {
	d := sampleDocument()
	r := puz.Rebus{Grid: make([]byte, 9), Solutions: map[int]string{0: "TEN"}}
	r.Grid[2] = 1
	require.NoError(t, d.SetRebus(r))
	_, ok := d.Extensions.Get(puz.CodeRebusGrid)
	require.True(t, ok)

	require.NoError(t, d.SetRebus(puz.Rebus{}))
	_, ok = d.Extensions.Get(puz.CodeRebusGrid)
	assert.False(t, ok)
	_, ok = d.Extensions.Get(puz.CodeRebusSolutions)
	assert.False(t, ok)
}

func TestMarkupRoundTrip(t *testing.T) {
	d := sampleDocument()
	m := puz.Markup{Grid: make([]byte, 9)}
	m.SetFlag(0, puz.MarkupCircled, true)
	m.SetFlag(8, puz.MarkupRevealed, true)
	d.SetMarkup(m)

	data, err := d.Save()
	require.NoError(t, err)
	got, err := puz.Load(data, nil)
	require.NoError(t, err)

	gm := got.Markup()
	assert.True(t, gm.Has(0, puz.MarkupCircled))
	assert.True(t, gm.Has(8, puz.MarkupRevealed))
	assert.False(t, gm.Has(4, puz.MarkupCircled))
}

func TestTimerRoundTrip(t *testing.T) {
	d := sampleDocument()
	d.SetTimer(puz.Timer{Elapsed: 185, Stopped: true})

	data, err := d.Save()
	require.NoError(t, err)
	got, err := puz.Load(data, nil)
	require.NoError(t, err)

	tm, ok := got.Timer()
	require.True(t, ok)
	assert.Equal(t, 185, tm.Elapsed)
	assert.True(t, tm.Stopped)
}

func TestExtensionOrder(t *testing.T) {
	var tbl puz.ExtensionTable
	tbl.Set("GRBS", []byte{1})
	tbl.Set("RTBL", []byte{2})
	tbl.Set("GEXT", []byte{3})
	assert.Equal(t, []string{"GRBS", "RTBL", "GEXT"}, tbl.Codes())

	// Replacing keeps the slot; a new code appends.
	tbl.Set("RTBL", []byte{9})
	tbl.Set("LTIM", []byte{4})
	assert.Equal(t, []string{"GRBS", "RTBL", "GEXT", "LTIM"}, tbl.Codes())

	tbl.Delete("GRBS")
	assert.Equal(t, []string{"RTBL", "GEXT", "LTIM"}, tbl.Codes())
	p, ok := tbl.Get("RTBL")
	require.True(t, ok)
	assert.Equal(t, []byte{9}, p)
}

func TestPuzzleConversion(t *testing.T) {
	d := sampleDocument()
	p, err := d.Puzzle()
	require.NoError(t, err)

	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 3, p.Height)
	require.Len(t, p.Across, 3)
	require.Len(t, p.Down, 2)
	assert.Equal(t, "Feline", p.Across[0].Text)
	assert.Equal(t, 1, p.Across[0].Number)
	assert.Equal(t, "CAT", p.Across[0].Word)
	assert.Equal(t, "Exclamations", p.Down[0].Text)
	assert.Equal(t, "AAO", p.Down[0].Word)

	back, err := puz.FromPuzzle(p)
	require.NoError(t, err)
	assert.Equal(t, d.Solution, back.Solution)
	assert.Equal(t, d.Clues, back.Clues)
}

func TestUTF8Version(t *testing.T) {
	d := sampleDocument()
	d.SetVersion("2.0")
	d.Title = "Café ☃"

	data, err := d.Save()
	require.NoError(t, err)
	got, err := puz.Load(data, nil)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", got.TextEncoding())
	assert.Equal(t, d.Title, got.Title)
}
