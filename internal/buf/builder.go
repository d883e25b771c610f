package buf

import "encoding/binary"

// Builder accumulates little-endian binary output into one buffer. Each push
// mirrors the corresponding Cursor read.
type Builder struct {
	buf []byte
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return len(b.buf) }

// Bytes returns the accumulated output. The slice aliases the builder's
// internal buffer.
func (b *Builder) Bytes() []byte { return b.buf }

// PushU8 appends one byte.
func (b *Builder) PushU8(v byte) {
	b.buf = append(b.buf, v)
}

// PushU16 appends a little-endian uint16.
func (b *Builder) PushU16(v uint16) {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
}

// PushU32 appends a little-endian uint32.
func (b *Builder) PushU32(v uint32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
}

// PushU64 appends a little-endian uint64.
func (b *Builder) PushU64(v uint64) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
}

// PushBytes appends raw bytes.
func (b *Builder) PushBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

// PushCString appends the encoded text followed by a single zero byte.
func (b *Builder) PushCString(s string, enc Encoder) error {
	p, err := enc(s)
	if err != nil {
		return err
	}
	b.buf = append(b.buf, p...)
	b.buf = append(b.buf, 0)
	return nil
}
