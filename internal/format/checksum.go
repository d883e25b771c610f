package format

// Checksum16 is the rolling 16-bit primitive used throughout the format.
// Starting from seed, for every byte the accumulator is rotated right by one
// bit (the low bit re-enters at the top) and the byte is added modulo 65536.
// Seeding a call with the result of a previous call is equivalent to
// checksumming the concatenation.
func Checksum16(data []byte, seed uint16) uint16 {
	sum := seed
	for _, b := range data {
		if sum&0x0001 != 0 {
			sum = (sum >> 1) + 0x8000
		} else {
			sum >>= 1
		}
		sum += uint16(b)
	}
	return sum
}

// CIBChecksum checksums the packed width/height/clue-count/type/state header
// fields with a zero seed.
func CIBChecksum(h Header) uint16 {
	cib := h.CIB()
	return Checksum16(cib[:], 0)
}

// TextChecksum accumulates the string fields of a document onto seed. Title,
// author, and copyright are included as zero-terminated strings and skipped
// entirely when empty; clues are included without terminators and skipped when
// empty; notes are a zero-terminated string included only when includeNotes is
// set (format 1.3 and later) and non-empty. All inputs are already encoded.
func TextChecksum(seed uint16, title, author, copyright []byte, clues [][]byte, notes []byte, includeNotes bool) uint16 {
	sum := seed
	for _, field := range [][]byte{title, author, copyright} {
		if len(field) > 0 {
			sum = Checksum16(field, sum)
			sum = Checksum16([]byte{0}, sum)
		}
	}
	for _, clue := range clues {
		if len(clue) > 0 {
			sum = Checksum16(clue, sum)
		}
	}
	if includeNotes && len(notes) > 0 {
		sum = Checksum16(notes, sum)
		sum = Checksum16([]byte{0}, sum)
	}
	return sum
}

// GlobalChecksum is the whole-file checksum: the CIB checksum seeded forward
// through the encoded solution and fill grids, then folded into the text
// checksum accumulation.
func GlobalChecksum(h Header, solution, fill []byte, title, author, copyright []byte, clues [][]byte, notes []byte) uint16 {
	sum := CIBChecksum(h)
	sum = Checksum16(solution, sum)
	sum = Checksum16(fill, sum)
	return TextChecksum(sum, title, author, copyright, clues, notes, h.NotesInChecksum())
}

// MaskedChecksum interleaves four component checksums into the 64-bit
// tamper-evidence field. The components are taken in reverse order (text,
// fill, solution, CIB); each low byte is XORed against successive bytes of
// the mask string into the low 32 bits, each high byte against the mask
// offset by four into the high 32 bits, at matching positions.
func MaskedChecksum(cib, solution, fill, text uint16) uint64 {
	sums := [4]uint16{cib, solution, fill, text}
	var magic uint64
	for i := len(sums) - 1; i >= 0; i-- {
		magic <<= 8
		magic |= uint64(ChecksumMask[i] ^ byte(sums[i]&0x00FF))
		magic |= uint64(ChecksumMask[i+4]^byte(sums[i]>>8)) << 32
	}
	return magic
}
