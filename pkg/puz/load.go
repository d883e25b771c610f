package puz

import (
	"fmt"
	"strings"

	"github.com/crosswordnexus/puzkit/internal/buf"
	"github.com/crosswordnexus/puzkit/internal/format"
)

// Load parses a .puz byte buffer into a Document. The structured header is
// located through the ACROSS&DOWN anchor marker; bytes before it become the
// preamble and bytes after the extension records become the postscript.
// Checksums are read but never used to reject the file.
func Load(data []byte, opts *LoadOptions) (*Document, error) {
	o := opts.withDefaults()

	c := buf.NewCursor(data)
	anchor, ok := c.Find(format.Anchor)
	if !ok || anchor < format.AnchorOffset {
		return nil, ErrNoAnchor
	}
	start := anchor - format.AnchorOffset

	hdr, err := format.ParseHeader(data[start:])
	if err != nil {
		return nil, err
	}
	if err := c.Seek(start + format.HeaderSize); err != nil {
		return nil, err
	}

	d := &Document{
		Width:             int(hdr.Width),
		Height:            int(hdr.Height),
		PuzzleType:        hdr.PuzzleType,
		SolutionState:     hdr.SolutionState,
		ScrambledChecksum: hdr.ScrambledChecksum,
		Preamble:          append([]byte(nil), data[:start]...),
		versionRaw:        hdr.VersionRaw,
		reserved1C:        hdr.Reserved1C,
		reserved20:        hdr.Reserved20,
		stored: FileChecksums{
			Global:    hdr.GlobalChecksum,
			Header:    hdr.HeaderChecksum,
			Masked:    hdr.MaskedChecksum,
			Scrambled: hdr.ScrambledChecksum,
		},
	}

	enc := hdr.Encoding()
	cells := d.Width * d.Height

	solRaw, err := c.Bytes(cells)
	if err != nil {
		return nil, fmt.Errorf("puz: solution grid: %w", err)
	}
	if d.Solution, err = enc.Decode(solRaw); err != nil {
		return nil, err
	}
	fillRaw, err := c.Bytes(cells)
	if err != nil {
		return nil, fmt.Errorf("puz: fill grid: %w", err)
	}
	if d.Fill, err = enc.Decode(fillRaw); err != nil {
		return nil, err
	}

	if d.Title, err = c.CString(enc.Decode); err != nil {
		return nil, err
	}
	if d.Author, err = c.CString(enc.Decode); err != nil {
		return nil, err
	}
	if d.Copyright, err = c.CString(enc.Decode); err != nil {
		return nil, err
	}
	d.Clues = make([]string, hdr.ClueCount)
	for i := range d.Clues {
		if d.Clues[i], err = c.CString(enc.Decode); err != nil {
			return nil, err
		}
	}
	if d.Notes, err = c.CString(enc.Decode); err != nil {
		return nil, err
	}

	recs, err := format.ParseExtensions(c)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		d.Extensions.Set(rec.Code, rec.Payload)
	}
	if c.Remaining() > 0 {
		rest, _ := c.Bytes(c.Remaining())
		d.Postscript = append([]byte(nil), rest...)
	}

	if d.IsLocked() {
		switch o.LockedHandling {
		case LockedMask:
			d.Solution = maskGrid(d.Solution, o.MaskChar)
		case LockedBruteForce:
			d.BruteForceUnlock(o.MaxBruteForceTime)
		}
	}
	return d, nil
}

// maskGrid replaces every character that is not a block or void marker with
// the mask character.
func maskGrid(grid string, mask byte) string {
	var sb strings.Builder
	sb.Grow(len(grid))
	for i := 0; i < len(grid); i++ {
		b := grid[i]
		if format.IsMarker(b) {
			sb.WriteByte(b)
		} else {
			sb.WriteByte(mask)
		}
	}
	return sb.String()
}
