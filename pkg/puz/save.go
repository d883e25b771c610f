package puz

import (
	"github.com/crosswordnexus/puzkit/internal/buf"
	"github.com/crosswordnexus/puzkit/internal/format"
)

// Save serializes the document back into the .puz byte layout. Every
// checksum is re-derived from current field values; stored checksums from a
// previous load are never trusted. Cipher state is not mutated: saving a
// locked document writes the scrambled grid as is.
func (d *Document) Save() ([]byte, error) {
	enc := d.encoding()

	solution, err := enc.Encode(d.Solution)
	if err != nil {
		return nil, err
	}
	fill, err := enc.Encode(d.Fill)
	if err != nil {
		return nil, err
	}
	cells := d.Width * d.Height
	if len(solution) != cells || len(fill) != cells {
		return nil, ErrGridSize
	}

	title, err := enc.Encode(d.Title)
	if err != nil {
		return nil, err
	}
	author, err := enc.Encode(d.Author)
	if err != nil {
		return nil, err
	}
	copyright, err := enc.Encode(d.Copyright)
	if err != nil {
		return nil, err
	}
	notes, err := enc.Encode(d.Notes)
	if err != nil {
		return nil, err
	}
	clues := make([][]byte, len(d.Clues))
	for i, clue := range d.Clues {
		if clues[i], err = enc.Encode(clue); err != nil {
			return nil, err
		}
	}

	hdr := d.header()
	hdr.HeaderChecksum = format.CIBChecksum(hdr)
	hdr.GlobalChecksum = format.GlobalChecksum(hdr, solution, fill, title, author, copyright, clues, notes)
	hdr.MaskedChecksum = format.MaskedChecksum(
		hdr.HeaderChecksum,
		format.Checksum16(solution, 0),
		format.Checksum16(fill, 0),
		format.TextChecksum(0, title, author, copyright, clues, notes, hdr.NotesInChecksum()),
	)

	d.stored = FileChecksums{
		Global:    hdr.GlobalChecksum,
		Header:    hdr.HeaderChecksum,
		Masked:    hdr.MaskedChecksum,
		Scrambled: hdr.ScrambledChecksum,
	}

	var b buf.Builder
	b.PushBytes(d.Preamble)
	hdr.AppendHeader(&b)
	b.PushBytes(solution)
	b.PushBytes(fill)
	for _, field := range [][]byte{title, author, copyright} {
		b.PushBytes(field)
		b.PushU8(0)
	}
	for _, clue := range clues {
		b.PushBytes(clue)
		b.PushU8(0)
	}
	b.PushBytes(notes)
	b.PushU8(0)
	for _, rec := range d.Extensions.records() {
		format.AppendExtension(&b, rec)
	}
	b.PushBytes(d.Postscript)
	return b.Bytes(), nil
}
