package format

import "errors"

var (
	// ErrNoAnchor indicates the ACROSS&DOWN marker was not found anywhere in
	// the buffer, so the data cannot be a .puz file.
	ErrNoAnchor = errors.New("format: anchor marker not found")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadEncoding indicates a byte sequence was invalid under the text
	// encoding declared by the file's version.
	ErrBadEncoding = errors.New("format: undecodable text")
	// ErrBadKey indicates a scramble key outside the four-digit range.
	ErrBadKey = errors.New("format: scramble key must have four digits 0-9")
)
