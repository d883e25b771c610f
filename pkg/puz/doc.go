// Package puz reads and writes AcrossLite .puz crossword files.
//
// A Document is created either by Load, which fully populates it from a byte
// buffer, or by NewDocument for direct field construction. Save re-derives
// every checksum from current field values and reproduces the original byte
// layout, so Save(Load(b)) is byte-identical to b for well-formed input that
// was not mutated in between.
//
// Checksums read from a file are deliberately never used to reject it; the
// design trusts file content on load and only recomputes checksums on save.
// Locked (scrambled) solutions are handled through LoadOptions and the
// LockSolution / UnlockSolution / BruteForceUnlock methods.
//
// The plain-text AcrossLite interchange format is available through
// ParseText and SaveText as an alternate load/save surface.
package puz
