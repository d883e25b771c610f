// Package format houses the low-level codec for the AcrossLite .puz binary
// format: the header layout, the rolling checksum suite, the solution
// scrambling cipher, and the extension record framing. The goal is to keep
// byte-level concerns focused and independent from the public API so higher
// level packages can orchestrate the data in a more ergonomic form.
package format

var (
	// Anchor is the magic marker inside every .puz header. The structured
	// header starts two bytes (the file checksum) before this marker.
	// Layout (little-endian, offsets relative to header start):
	//
	//	Offset  Size  Description
	//	------  ----  ----------------------------------------------------
	//	 0x00    2    File (global) checksum
	//	 0x02    12   "ACROSS&DOWN" followed by one zero byte
	//	 0x0E    2    CIB (header) checksum
	//	 0x10    8    Masked checksum (four checksums XORed with "ICHEATED")
	//	 0x18    4    Version string, e.g. "1.3" followed by a zero byte
	//	 0x1C    2    Unknown/reserved
	//	 0x1E    2    Scrambled-solution checksum (0 when unscrambled)
	//	 0x20    12   Unknown/reserved
	//	 0x2C    1    Width
	//	 0x2D    1    Height
	//	 0x2E    2    Clue count
	//	 0x30    2    Puzzle type
	//	 0x32    2    Solution state
	//	 0x34    -    Solution grid, fill grid, strings, extensions
	Anchor = []byte("ACROSS&DOWN")

	// ChecksumMask is XORed byte-for-byte against the component checksums
	// when building the 64-bit masked checksum.
	ChecksumMask = []byte("ICHEATED")
)

const (
	// HeaderSize is the size of the fixed .puz header in bytes.
	HeaderSize = 0x34

	// AnchorOffset is the offset of the anchor marker within the header.
	AnchorOffset = 0x02

	// CIBOffset is the offset of the eight header bytes covered by the CIB
	// checksum (width through solution state).
	CIBOffset = 0x2C

	// CIBSize is the number of bytes covered by the CIB checksum.
	CIBSize = 8

	// ExtensionHeaderSize is the size of an extension record header:
	// four code bytes, a 16-bit length, and a 16-bit checksum.
	ExtensionHeaderSize = 8
)

// Puzzle type tags stored in the header.
const (
	TypeNormal      uint16 = 0x0001
	TypeDiagramless uint16 = 0x0401
)

// Solution state tags stored in the header.
const (
	StateUnlocked    uint16 = 0x0000
	StateNotProvided uint16 = 0x0002
	StateLocked      uint16 = 0x0004
)

// Extension record codes.
const (
	CodeRebusGrid      = "GRBS"
	CodeRebusSolutions = "RTBL"
	CodeRebusFill      = "RUSR"
	CodeTimer          = "LTIM"
	CodeMarkup         = "GEXT"
)

// Markup bit flags, one byte per cell in a GEXT payload.
const (
	MarkupPreviouslyIncorrect byte = 0x10
	MarkupIncorrect           byte = 0x20
	MarkupRevealed            byte = 0x40
	MarkupCircled             byte = 0x80
)

// Grid marker characters.
const (
	BlockMarker = '.'
	VoidMarker  = ':'
	EmptyMarker = '-'
)

// IsMarker reports whether b is a block or void marker rather than a letter.
func IsMarker(b byte) bool {
	return b == BlockMarker || b == VoidMarker
}
