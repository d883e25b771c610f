package puz

import "time"

// LockedHandling selects what Load does with a scrambled solution grid.
type LockedHandling int

const (
	// LockedAllow leaves the scrambled grid untouched (default).
	LockedAllow LockedHandling = iota
	// LockedMask replaces every non-marker solution character with the mask
	// character, leaving the document locked without attempting recovery.
	LockedMask
	// LockedBruteForce runs the brute-force key search immediately and
	// adopts whatever it finds; the grid stays scrambled when the search is
	// exhausted.
	LockedBruteForce
)

// LoadOptions controls Load behavior. The zero value is ready to use.
type LoadOptions struct {
	// LockedHandling selects how scrambled solutions are treated.
	LockedHandling LockedHandling

	// MaskChar replaces solution characters under LockedMask.
	// Default: '-'.
	MaskChar byte

	// MaxBruteForceTime bounds the brute-force search under
	// LockedBruteForce. The check is coarse: the loop cannot be interrupted
	// mid-key and only consults the clock every few hundred keys. Zero
	// means no limit.
	MaxBruteForceTime time.Duration
}

func (o *LoadOptions) withDefaults() LoadOptions {
	var opts LoadOptions
	if o != nil {
		opts = *o
	}
	if opts.MaskChar == 0 {
		opts.MaskChar = '-'
	}
	return opts
}
