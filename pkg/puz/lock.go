package puz

import (
	"time"

	"github.com/crosswordnexus/puzkit/internal/format"
)

// LockSolution scrambles the solution grid under a four-digit key and marks
// the document locked. The scrambled checksum of the plaintext is stored so
// the key can later be verified. Locking an already locked document is a
// no-op.
func (d *Document) LockSolution(key int) error {
	if d.IsLocked() {
		return nil
	}
	enc := d.encoding()
	plain, err := enc.Encode(d.Solution)
	if err != nil {
		return err
	}
	scrambled, err := format.ScrambleSolution(plain, d.Width, d.Height, key)
	if err != nil {
		return err
	}
	sum := format.ScrambledChecksum(plain, d.Width, d.Height)
	if d.Solution, err = enc.Decode(scrambled); err != nil {
		return err
	}
	d.ScrambledChecksum = sum
	d.SolutionState = StateLocked
	return nil
}

// UnlockSolution unscrambles the solution with key and verifies the result
// against the stored scrambled checksum. On a match the document adopts the
// candidate plaintext and transitions to Unlocked; otherwise it is left
// unchanged. Unlocking never fails with an error: the boolean is the only
// outcome, and unlocking an already unlocked document reports true.
func (d *Document) UnlockSolution(key int) bool {
	if !d.IsLocked() {
		return true
	}
	enc := d.encoding()
	scrambled, err := enc.Encode(d.Solution)
	if err != nil {
		return false
	}
	candidate, err := format.UnscrambleSolution(scrambled, d.Width, d.Height, key)
	if err != nil {
		return false
	}
	if format.ScrambledChecksum(candidate, d.Width, d.Height) != d.ScrambledChecksum {
		return false
	}
	plain, err := enc.Decode(candidate)
	if err != nil {
		return false
	}
	d.Solution = plain
	d.ScrambledChecksum = 0
	d.SolutionState = StateUnlocked
	return true
}

// BruteForceUnlock tries every four-digit key in sequence and stops at the
// first one whose unscrambled grid matches the stored scrambled checksum.
// The first match wins: a different key producing the same checksum is
// structurally possible though statistically rare, and no uniqueness check
// is made. budget bounds the search wall-clock time coarsely (the clock is
// consulted every 256 keys and a key in progress is never interrupted);
// zero means no limit. Exhaustion is a normal "not found" outcome, not an
// error.
func (d *Document) BruteForceUnlock(budget time.Duration) (int, bool) {
	if !d.IsLocked() {
		return 0, true
	}
	var deadline time.Time
	if budget > 0 {
		deadline = time.Now().Add(budget)
	}
	for key := 1000; key <= 9999; key++ {
		if !deadline.IsZero() && key%256 == 0 && time.Now().After(deadline) {
			return 0, false
		}
		if d.UnlockSolution(key) {
			return key, true
		}
	}
	return 0, false
}
