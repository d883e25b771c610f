// Package textfmt parses and emits the AcrossLite plain-text interchange
// format: a sequence of tagged sections (<TITLE>, <GRID>, <ACROSS>, ...)
// describing the same document as the binary .puz layout. The mapping of
// flat clue lists back onto grid positions is left to the caller, which
// shares the grid-topology numbering with the binary codec.
package textfmt

const (
	// HeaderV1 opens a version 1 text file.
	HeaderV1 = "<ACROSS PUZZLE>"
	// HeaderV2 opens a version 2 text file, which adds the <REBUS> section
	// and circled-letter conventions.
	HeaderV2 = "<ACROSS PUZZLE V2>"

	// Section tags, in emission order.
	TagTitle     = "<TITLE>"
	TagAuthor    = "<AUTHOR>"
	TagCopyright = "<COPYRIGHT>"
	TagSize      = "<SIZE>"
	TagGrid      = "<GRID>"
	TagRebus     = "<REBUS>"
	TagAcross    = "<ACROSS>"
	TagDown      = "<DOWN>"
	TagNotepad   = "<NOTEPAD>"

	// MarkFlag inside <REBUS> enables the circled-letter convention:
	// lowercase grid letters denote circled cells.
	MarkFlag = "MARK;"

	// CRLF terminates every emitted line.
	CRLF = "\r\n"
)
