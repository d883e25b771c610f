package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crosswordnexus/puzkit/pkg/ipuz"
	"github.com/crosswordnexus/puzkit/pkg/jpz"
	"github.com/crosswordnexus/puzkit/pkg/puz"
	"github.com/crosswordnexus/puzkit/pkg/xword"
)

// detectFormat names the puzzle format of a file from its extension, falling
// back to content sniffing when the extension is unknown.
func detectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".puz":
		return "puz"
	case ".txt":
		return "text"
	case ".jpz":
		return "jpz"
	case ".ipuz":
		return "ipuz"
	}
	switch {
	case bytes.Contains(data, []byte("ACROSS&DOWN")):
		return "puz"
	case bytes.Contains(data, []byte("<ACROSS PUZZLE")):
		return "text"
	case bytes.HasPrefix(data, []byte("PK")), bytes.Contains(data[:min(len(data), 512)], []byte("<?xml")):
		return "jpz"
	case bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")), bytes.HasPrefix(bytes.TrimSpace(data), []byte("ipuz(")):
		return "ipuz"
	}
	return ""
}

// loadPuzzle reads any supported format into the normalized model.
func loadPuzzle(path string, opts *puz.LoadOptions) (*xword.Puzzle, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	format := detectFormat(path, data)
	switch format {
	case "puz":
		d, err := puz.Load(data, opts)
		if err != nil {
			return nil, format, err
		}
		p, err := d.Puzzle()
		return p, format, err
	case "text":
		d, err := puz.ParseText(data)
		if err != nil {
			return nil, format, err
		}
		p, err := d.Puzzle()
		return p, format, err
	case "jpz":
		p, err := jpz.Parse(data)
		return p, format, err
	case "ipuz":
		p, err := ipuz.Parse(data)
		return p, format, err
	}
	return nil, "", fmt.Errorf("unrecognized puzzle format: %s", path)
}
