package puz

import (
	"errors"
	"fmt"

	"github.com/crosswordnexus/puzkit/internal/format"
)

// Puzzle type tags stored in the file header.
const (
	TypeNormal      = format.TypeNormal
	TypeDiagramless = format.TypeDiagramless
)

// Solution state tags stored in the file header.
const (
	StateUnlocked    = format.StateUnlocked
	StateNotProvided = format.StateNotProvided
	StateLocked      = format.StateLocked
)

// Grid marker characters used in the solution and fill strings.
const (
	BlockMarker = string(format.BlockMarker)
	VoidMarker  = string(format.VoidMarker)
	EmptyMarker = string(format.EmptyMarker)
)

var (
	// ErrNoAnchor is returned by Load when the ACROSS&DOWN marker is absent.
	ErrNoAnchor = format.ErrNoAnchor
	// ErrBadEncoding is returned when text is invalid under the file's encoding.
	ErrBadEncoding = format.ErrBadEncoding
	// ErrBadKey is returned for scramble keys outside the four-digit range.
	ErrBadKey = format.ErrBadKey
	// ErrGridSize is returned by Save when a grid's length does not match
	// width times height.
	ErrGridSize = errors.New("puz: grid length does not match dimensions")
)

// FileChecksums are the checksum fields as read from a file. They are kept
// for inspection only; Load never validates them and Save never reuses them.
type FileChecksums struct {
	Global    uint16
	Header    uint16
	Masked    uint64
	Scrambled uint16
}

// Document is a parsed .puz file. Solution and Fill are row-major strings of
// width times height characters; '.' marks a block, ':' a void, and '-' an
// unfilled cell. Preamble and Postscript capture the byte spans before the
// header and after the extensions verbatim for round-trip fidelity.
type Document struct {
	Width  int
	Height int

	PuzzleType        uint16
	SolutionState     uint16
	ScrambledChecksum uint16

	Title     string
	Author    string
	Copyright string
	Notes     string
	Clues     []string

	Solution string
	Fill     string

	Preamble   []byte
	Postscript []byte
	Extensions ExtensionTable

	versionRaw [4]byte
	reserved1C [2]byte
	reserved20 [12]byte
	stored     FileChecksums
}

// NewDocument returns an empty document with format version 1.3, a normal
// puzzle type, and an unlocked solution state.
func NewDocument() *Document {
	d := &Document{
		PuzzleType:    TypeNormal,
		SolutionState: StateUnlocked,
	}
	copy(d.versionRaw[:], "1.3\x00")
	return d
}

// Version returns the format version as a "major.minor" string.
func (d *Document) Version() string {
	major, minor := d.header().Version()
	return fmt.Sprintf("%d.%d", major, minor)
}

// SetVersion replaces the stored version field. Strings longer than four
// bytes are truncated; shorter ones are zero padded.
func (d *Document) SetVersion(v string) {
	d.versionRaw = [4]byte{}
	copy(d.versionRaw[:], v)
}

// TextEncoding returns the name of the text encoding implied by the format
// version: ISO-8859-1 below 2.0, UTF-8 from 2.0 on.
func (d *Document) TextEncoding() string {
	return d.encoding().String()
}

// StoredChecksums returns the checksum fields as read by Load. For documents
// built directly they are zero until the first Save.
func (d *Document) StoredChecksums() FileChecksums {
	return d.stored
}

// IsLocked reports whether the solution is scrambled.
func (d *Document) IsLocked() bool {
	return d.SolutionState == StateLocked
}

func (d *Document) encoding() format.Encoding {
	return d.header().Encoding()
}

// header assembles the fixed header from current field values. Checksum
// fields are left zero; Save fills them in after computing the suite.
func (d *Document) header() format.Header {
	h := format.Header{
		VersionRaw:        d.versionRaw,
		Reserved1C:        d.reserved1C,
		Reserved20:        d.reserved20,
		ScrambledChecksum: d.ScrambledChecksum,
		Width:             uint8(d.Width),
		Height:            uint8(d.Height),
		ClueCount:         uint16(len(d.Clues)),
		PuzzleType:        d.PuzzleType,
		SolutionState:     d.SolutionState,
	}
	return h
}
