package textfmt

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RebusEntry is one <REBUS> substitution: grid characters equal to Marker
// stand for the full Solution string, with Short as the single letter used
// by the binary format's solution grid.
type RebusEntry struct {
	Key      int
	Marker   byte
	Solution string
	Short    byte
}

// File is the parsed form of a text-format puzzle.
type File struct {
	V2            bool
	Title         string
	Author        string
	Copyright     string
	Width, Height int
	Grid          []string
	Mark          bool
	Rebus         []RebusEntry
	Across        []string
	Down          []string
	Notepad       string
}

var (
	// ErrHeader indicates the file does not open with an ACROSS PUZZLE header.
	ErrHeader = errors.New("textfmt: missing ACROSS PUZZLE header")
	// ErrSection indicates a malformed or misplaced section.
	ErrSection = errors.New("textfmt: malformed section")
)

// Parse reads the tagged-section text format. Section bodies are the lines
// following a tag up to the next tag; a single leading space on a body line
// (the conventional indentation) is dropped.
func Parse(data []byte) (*File, error) {
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	f := &File{}

	seenHeader := false
	section := ""
	var notepad []string

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if !seenHeader {
			if trimmed == "" {
				continue
			}
			switch trimmed {
			case HeaderV1:
			case HeaderV2:
				f.V2 = true
			default:
				return nil, ErrHeader
			}
			seenHeader = true
			continue
		}

		if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") && section != TagNotepad {
			section = strings.ToUpper(trimmed)
			continue
		}

		body := strings.TrimPrefix(line, " ")
		switch section {
		case TagTitle:
			f.Title = strings.TrimSpace(body)
		case TagAuthor:
			f.Author = strings.TrimSpace(body)
		case TagCopyright:
			f.Copyright = strings.TrimSpace(body)
		case TagSize:
			w, h, err := parseSize(strings.TrimSpace(body))
			if err != nil {
				return nil, err
			}
			f.Width, f.Height = w, h
		case TagGrid:
			if trimmed != "" {
				f.Grid = append(f.Grid, strings.TrimSpace(body))
			}
		case TagRebus:
			if err := f.parseRebusLine(strings.TrimSpace(body)); err != nil {
				return nil, err
			}
		case TagAcross:
			if trimmed != "" {
				f.Across = append(f.Across, strings.TrimSpace(body))
			}
		case TagDown:
			if trimmed != "" {
				f.Down = append(f.Down, strings.TrimSpace(body))
			}
		case TagNotepad:
			notepad = append(notepad, body)
		case "":
			if trimmed != "" {
				return nil, fmt.Errorf("%w: content before first tag", ErrSection)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !seenHeader {
		return nil, ErrHeader
	}
	f.Notepad = strings.Join(notepad, "\n")

	if f.Width == 0 && len(f.Grid) > 0 {
		f.Width = len(f.Grid[0])
		f.Height = len(f.Grid)
	}
	return f, nil
}

// parseRebusLine handles "MARK;" and "key:solution:short" entries.
func (f *File) parseRebusLine(line string) error {
	if line == "" {
		return nil
	}
	if strings.EqualFold(line, MarkFlag) {
		f.Mark = true
		return nil
	}
	parts := strings.Split(strings.TrimSuffix(line, ";"), ":")
	if len(parts) != 3 || len(parts[0]) != 1 || len(parts[2]) != 1 {
		return fmt.Errorf("%w: rebus entry %q", ErrSection, line)
	}
	key, err := strconv.Atoi(parts[0])
	if err != nil {
		// Non-numeric markers are allowed; key them by position.
		key = len(f.Rebus) + 1
	}
	f.Rebus = append(f.Rebus, RebusEntry{
		Key:      key,
		Marker:   parts[0][0],
		Solution: parts[1],
		Short:    parts[2][0],
	})
	return nil
}

func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q", ErrSection, s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q", ErrSection, s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q", ErrSection, s)
	}
	return width, height, nil
}

// Emit serializes the file back into tagged-section text with CRLF line
// endings and the conventional single-space body indent.
func Emit(f *File) []byte {
	var sb strings.Builder
	header := HeaderV1
	if f.V2 {
		header = HeaderV2
	}
	sb.WriteString(header + CRLF)

	writeSection := func(tag string, lines ...string) {
		sb.WriteString(tag + CRLF)
		for _, l := range lines {
			sb.WriteString(" " + l + CRLF)
		}
	}
	writeSection(TagTitle, f.Title)
	writeSection(TagAuthor, f.Author)
	writeSection(TagCopyright, f.Copyright)
	writeSection(TagSize, fmt.Sprintf("%dx%d", f.Width, f.Height))
	writeSection(TagGrid, f.Grid...)
	if f.V2 && (f.Mark || len(f.Rebus) > 0) {
		var lines []string
		if f.Mark {
			lines = append(lines, MarkFlag)
		}
		for _, r := range f.Rebus {
			lines = append(lines, fmt.Sprintf("%c:%s:%c", r.Marker, r.Solution, r.Short))
		}
		writeSection(TagRebus, lines...)
	}
	writeSection(TagAcross, f.Across...)
	writeSection(TagDown, f.Down...)
	if f.Notepad != "" {
		writeSection(TagNotepad, strings.Split(f.Notepad, "\n")...)
	}
	return []byte(sb.String())
}
