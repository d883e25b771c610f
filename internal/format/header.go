package format

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/crosswordnexus/puzkit/internal/buf"
)

// Header captures the fixed .puz header fields in file order. Reserved spans
// and the raw version bytes are kept verbatim so a document can be written
// back byte-for-byte. See the layout table on Anchor.
type Header struct {
	GlobalChecksum    uint16
	HeaderChecksum    uint16
	MaskedChecksum    uint64
	VersionRaw        [4]byte
	Reserved1C        [2]byte
	ScrambledChecksum uint16
	Reserved20        [12]byte
	Width             uint8
	Height            uint8
	ClueCount         uint16
	PuzzleType        uint16
	SolutionState     uint16
}

// ParseHeader extracts the header fields from b, which must start at the
// header (two bytes before the anchor marker).
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("puz header: %w", ErrTruncated)
	}
	var h Header
	h.GlobalChecksum = buf.U16LE(b[0x00:])
	h.HeaderChecksum = buf.U16LE(b[0x0E:])
	h.MaskedChecksum = buf.U64LE(b[0x10:])
	copy(h.VersionRaw[:], b[0x18:0x1C])
	copy(h.Reserved1C[:], b[0x1C:0x1E])
	h.ScrambledChecksum = buf.U16LE(b[0x1E:])
	copy(h.Reserved20[:], b[0x20:0x2C])
	h.Width = b[0x2C]
	h.Height = b[0x2D]
	h.ClueCount = buf.U16LE(b[0x2E:])
	h.PuzzleType = buf.U16LE(b[0x30:])
	h.SolutionState = buf.U16LE(b[0x32:])
	return h, nil
}

// AppendHeader writes the header in file layout, anchor included.
func (h Header) AppendHeader(b *buf.Builder) {
	b.PushU16(h.GlobalChecksum)
	b.PushBytes(Anchor)
	b.PushU8(0)
	b.PushU16(h.HeaderChecksum)
	b.PushU64(h.MaskedChecksum)
	b.PushBytes(h.VersionRaw[:])
	b.PushBytes(h.Reserved1C[:])
	b.PushU16(h.ScrambledChecksum)
	b.PushBytes(h.Reserved20[:])
	b.PushU8(h.Width)
	b.PushU8(h.Height)
	b.PushU16(h.ClueCount)
	b.PushU16(h.PuzzleType)
	b.PushU16(h.SolutionState)
}

// CIB returns the eight header bytes covered by the CIB checksum.
func (h Header) CIB() [CIBSize]byte {
	var cib [CIBSize]byte
	cib[0] = h.Width
	cib[1] = h.Height
	buf.PutU16LE(cib[:], 2, h.ClueCount)
	buf.PutU16LE(cib[:], 4, h.PuzzleType)
	buf.PutU16LE(cib[:], 6, h.SolutionState)
	return cib
}

// Version parses the raw version bytes as "major.minor". Unparsable versions
// fall back to 1.3, matching the permissive stance of load.
func (h Header) Version() (major, minor int) {
	raw := h.VersionRaw[:]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	dot := bytes.IndexByte(raw, '.')
	if dot < 0 {
		return 1, 3
	}
	maj, err := strconv.Atoi(string(raw[:dot]))
	if err != nil {
		return 1, 3
	}
	// Trailing revision letters ("1.2c") count toward the numeric minor.
	minRaw := raw[dot+1:]
	end := 0
	for end < len(minRaw) && minRaw[end] >= '0' && minRaw[end] <= '9' {
		end++
	}
	min, err := strconv.Atoi(string(minRaw[:end]))
	if err != nil {
		return 1, 3
	}
	return maj, min
}

// NotesInChecksum reports whether the version includes the notes field in the
// text and global checksums (1.3 and later).
func (h Header) NotesInChecksum() bool {
	major, minor := h.Version()
	return major > 1 || (major == 1 && minor >= 3)
}

// Encoding returns the text encoding implied by the version field.
func (h Header) Encoding() Encoding {
	major, _ := h.Version()
	return EncodingForVersion(major)
}
