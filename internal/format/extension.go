package format

import "github.com/crosswordnexus/puzkit/internal/buf"

// ExtensionRecord is one optional chunk appended after the mandatory document
// fields: a four-byte ASCII code and an opaque payload. The stored checksum
// is recomputed at save time and never kept as state.
type ExtensionRecord struct {
	Code    string
	Payload []byte
}

// ParseExtensions reads extension records from the cursor until the remaining
// bytes cannot hold a full record. A record whose declared length would
// overrun the buffer is not an error: the cursor is rewound to the start of
// its header and parsing stops, leaving the trailing bytes to the caller
// (they become the document's postscript). Record checksums are read but
// deliberately not validated.
func ParseExtensions(c *buf.Cursor) ([]ExtensionRecord, error) {
	var records []ExtensionRecord
	for c.Remaining() >= ExtensionHeaderSize {
		mark := c.Pos()
		code, err := c.Bytes(4)
		if err != nil {
			return nil, err
		}
		length, err := c.U16()
		if err != nil {
			return nil, err
		}
		if _, err := c.U16(); err != nil { // stored checksum, unused
			return nil, err
		}
		// Payload plus the trailing zero byte must fit, or the whole
		// record is treated as trailing data.
		if c.Remaining() < int(length)+1 {
			if err := c.Seek(mark); err != nil {
				return nil, err
			}
			break
		}
		payload, err := c.Bytes(int(length))
		if err != nil {
			return nil, err
		}
		if err := c.Skip(1); err != nil {
			return nil, err
		}
		records = append(records, ExtensionRecord{
			Code:    string(code),
			Payload: append([]byte(nil), payload...),
		})
	}
	return records, nil
}

// AppendExtension writes one record in file layout, computing its checksum
// from the current payload.
func AppendExtension(b *buf.Builder, rec ExtensionRecord) {
	b.PushBytes([]byte(rec.Code))
	b.PushU16(uint16(len(rec.Payload)))
	b.PushU16(Checksum16(rec.Payload, 0))
	b.PushBytes(rec.Payload)
	b.PushU8(0)
}
