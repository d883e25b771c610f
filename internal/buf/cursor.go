package buf

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrShort indicates a read extended past the end of the buffer.
var ErrShort = errors.New("buf: short buffer")

// Decoder converts raw bytes into a string under some text encoding.
type Decoder func([]byte) (string, error)

// Encoder converts a string into raw bytes under some text encoding.
type Encoder func(string) ([]byte, error)

// Cursor is a sequential little-endian reader over an in-memory buffer.
// Every read advances the position by the width of the field; reads past
// the end fail with ErrShort and leave the position unchanged.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of data. The cursor
// aliases data; it never copies or mutates it.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Seek moves the read position to the absolute offset off.
func (c *Cursor) Seek(off int) error {
	if off < 0 || off > len(c.data) {
		return fmt.Errorf("seek to %d of %d: %w", off, len(c.data), ErrShort)
	}
	c.pos = off
	return nil
}

// Skip advances the read position by n bytes.
func (c *Cursor) Skip(n int) error {
	if !Has(c.data, c.pos, n) {
		return fmt.Errorf("skip %d at %d: %w", n, c.pos, ErrShort)
	}
	c.pos += n
	return nil
}

// U8 reads one byte.
func (c *Cursor) U8() (byte, error) {
	if c.Remaining() < 1 {
		return 0, fmt.Errorf("u8 at %d: %w", c.pos, ErrShort)
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// U16 reads a little-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	if c.Remaining() < 2 {
		return 0, fmt.Errorf("u16 at %d: %w", c.pos, ErrShort)
	}
	v := U16LE(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// U32 reads a little-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, fmt.Errorf("u32 at %d: %w", c.pos, ErrShort)
	}
	v := U32LE(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// U64 reads a little-endian uint64.
func (c *Cursor) U64() (uint64, error) {
	if c.Remaining() < 8 {
		return 0, fmt.Errorf("u64 at %d: %w", c.pos, ErrShort)
	}
	v := U64LE(c.data[c.pos:])
	c.pos += 8
	return v, nil
}

// Bytes reads n raw bytes. The returned slice aliases the cursor's buffer;
// callers that retain it must copy.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	b, ok := Slice(c.data, c.pos, n)
	if !ok {
		return nil, fmt.Errorf("bytes[%d] at %d: %w", n, c.pos, ErrShort)
	}
	c.pos += n
	return b, nil
}

// CString scans forward to the next zero byte (or the end of the buffer),
// decodes the preceding bytes with dec, and advances past the terminator.
func (c *Cursor) CString(dec Decoder) (string, error) {
	rest := c.data[c.pos:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		c.pos = len(c.data)
		return dec(rest)
	}
	c.pos += end + 1
	return dec(rest[:end])
}

// Find scans forward from the current position for the exact byte sequence
// needle and returns its absolute offset. The cursor does not advance.
func (c *Cursor) Find(needle []byte) (int, bool) {
	i := bytes.Index(c.data[c.pos:], needle)
	if i < 0 {
		return 0, false
	}
	return c.pos + i, true
}
