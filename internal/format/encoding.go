package format

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies the text encoding of a .puz file's string fields.
// Files before major version 2 use Latin-1; later files use UTF-8. The
// encoding is derived from the version field and never stored.
type Encoding int

const (
	// Latin1 is ISO 8859-1, used by .puz versions below 2.0.
	Latin1 Encoding = iota
	// UTF8 is used by .puz versions 2.0 and later.
	UTF8
)

// EncodingForVersion maps a major format version to its text encoding.
func EncodingForVersion(major int) Encoding {
	if major < 2 {
		return Latin1
	}
	return UTF8
}

// String returns the conventional name of the encoding.
func (e Encoding) String() string {
	if e == Latin1 {
		return "ISO-8859-1"
	}
	return "UTF-8"
}

// Decode converts raw file bytes into a string.
func (e Encoding) Decode(b []byte) (string, error) {
	if e == Latin1 {
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBadEncoding, err)
		}
		return string(out), nil
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrBadEncoding)
	}
	return string(b), nil
}

// Encode converts a string into raw file bytes.
func (e Encoding) Encode(s string) ([]byte, error) {
	if e == Latin1 {
		out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
		}
		return out, nil
	}
	return []byte(s), nil
}
