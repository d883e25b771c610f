package format

// Solution scrambling ("locking"). The cipher operates on the solution grid
// in column-major order with block and void markers stripped, applying one
// round per key digit: a Caesar shift, a left rotation, and an interleave
// shuffle. Unscrambling applies the exact inverses in reverse digit order.

// KeyDigits splits a four-digit key into its digits, most significant first.
func KeyDigits(key int) ([4]int, error) {
	var d [4]int
	if key < 1000 || key > 9999 {
		return d, ErrBadKey
	}
	for i := 3; i >= 0; i-- {
		d[i] = key % 10
		key /= 10
	}
	return d, nil
}

// ScrambleSolution scrambles a row-major solution grid under key. Block and
// void markers keep their positions; only letters are transformed.
func ScrambleSolution(solution []byte, width, height int, key int) ([]byte, error) {
	digits, err := KeyDigits(key)
	if err != nil {
		return nil, err
	}
	sq := transpose(solution, width, height)
	letters := stripMarkers(sq)
	for _, d := range digits {
		letters = caesarShift(letters, d)
		letters = rotateLeft(letters, d)
		letters = interleave(letters)
	}
	restoreMarkers(sq, letters)
	return transpose(sq, height, width), nil
}

// UnscrambleSolution reverses ScrambleSolution for the same key.
func UnscrambleSolution(solution []byte, width, height int, key int) ([]byte, error) {
	digits, err := KeyDigits(key)
	if err != nil {
		return nil, err
	}
	sq := transpose(solution, width, height)
	letters := stripMarkers(sq)
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		letters = deinterleave(letters)
		letters = rotateRight(letters, d)
		letters = caesarShift(letters, -d)
	}
	restoreMarkers(sq, letters)
	return transpose(sq, height, width), nil
}

// ScrambledChecksum is the checksum stored when a solution is locked: the
// plain 16-bit checksum of the column-major letter stream, markers excluded.
func ScrambledChecksum(solution []byte, width, height int) uint16 {
	return Checksum16(stripMarkers(transpose(solution, width, height)), 0)
}

// transpose converts a row-major w x h grid into column-major order (and back
// again when called with the dimensions swapped).
func transpose(grid []byte, width, height int) []byte {
	out := make([]byte, 0, len(grid))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			i := y*width + x
			if i < len(grid) {
				out = append(out, grid[i])
			}
		}
	}
	return out
}

func stripMarkers(grid []byte) []byte {
	out := make([]byte, 0, len(grid))
	for _, b := range grid {
		if !IsMarker(b) {
			out = append(out, b)
		}
	}
	return out
}

// restoreMarkers writes letters back into grid, skipping marker positions.
func restoreMarkers(grid, letters []byte) {
	j := 0
	for i, b := range grid {
		if IsMarker(b) {
			continue
		}
		grid[i] = letters[j]
		j++
	}
}

// caesarShift shifts every A-Z letter forward by n alphabet positions
// (cyclic); other bytes pass through untouched.
func caesarShift(s []byte, n int) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		if b >= 'A' && b <= 'Z' {
			out[i] = 'A' + byte(((int(b-'A')+n)%26+26)%26)
		} else {
			out[i] = b
		}
	}
	return out
}

// rotateLeft moves the first n bytes to the end.
func rotateLeft(s []byte, n int) []byte {
	if len(s) == 0 {
		return s
	}
	n %= len(s)
	out := make([]byte, 0, len(s))
	out = append(out, s[n:]...)
	return append(out, s[:n]...)
}

// rotateRight moves the last n bytes to the front.
func rotateRight(s []byte, n int) []byte {
	if len(s) == 0 {
		return s
	}
	n %= len(s)
	return rotateLeft(s, len(s)-n)
}

// interleave splits s at its midpoint and emits alternating bytes from the
// second and first halves. For odd lengths the final byte stays last.
func interleave(s []byte) []byte {
	mid := len(s) / 2
	out := make([]byte, 0, len(s))
	for i := 0; i < mid; i++ {
		out = append(out, s[mid+i], s[i])
	}
	if len(s)%2 != 0 {
		out = append(out, s[len(s)-1])
	}
	return out
}

// deinterleave inverts interleave: odd positions rebuild the first half,
// even positions the second.
func deinterleave(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for i := 1; i < len(s); i += 2 {
		out = append(out, s[i])
	}
	for i := 0; i < len(s); i += 2 {
		out = append(out, s[i])
	}
	return out
}
