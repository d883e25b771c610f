package puz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/crosswordnexus/puzkit/internal/format"
)

// Extension record codes.
const (
	CodeRebusGrid      = format.CodeRebusGrid
	CodeRebusSolutions = format.CodeRebusSolutions
	CodeRebusFill      = format.CodeRebusFill
	CodeTimer          = format.CodeTimer
	CodeMarkup         = format.CodeMarkup
)

// Markup bit flags.
const (
	MarkupPreviouslyIncorrect = format.MarkupPreviouslyIncorrect
	MarkupIncorrect           = format.MarkupIncorrect
	MarkupRevealed            = format.MarkupRevealed
	MarkupCircled             = format.MarkupCircled
)

// ExtensionTable is an ordered mapping from 4-byte record codes to opaque
// payloads. Insertion order is preserved exactly as read from the file;
// records replaced after load keep their original position and new records
// append at the end. Each document owns its own table. The zero value is
// ready to use.
type ExtensionTable struct {
	order    []string
	payloads map[string][]byte
}

// Len returns the number of records.
func (t *ExtensionTable) Len() int { return len(t.order) }

// Codes returns the record codes in table order.
func (t *ExtensionTable) Codes() []string {
	return append([]string(nil), t.order...)
}

// Get returns the payload for code.
func (t *ExtensionTable) Get(code string) ([]byte, bool) {
	p, ok := t.payloads[code]
	return p, ok
}

// Set stores payload under code, keeping the original position for known
// codes and appending new ones.
func (t *ExtensionTable) Set(code string, payload []byte) {
	if t.payloads == nil {
		t.payloads = make(map[string][]byte)
	}
	if _, ok := t.payloads[code]; !ok {
		t.order = append(t.order, code)
	}
	t.payloads[code] = payload
}

// Delete removes the record for code, if present.
func (t *ExtensionTable) Delete(code string) {
	if _, ok := t.payloads[code]; !ok {
		return
	}
	delete(t.payloads, code)
	for i, c := range t.order {
		if c == code {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// records returns the table contents in order for serialization.
func (t *ExtensionTable) records() []format.ExtensionRecord {
	recs := make([]format.ExtensionRecord, 0, len(t.order))
	for _, code := range t.order {
		recs = append(recs, format.ExtensionRecord{Code: code, Payload: t.payloads[code]})
	}
	return recs
}

// Rebus is the rebus state computed from the extension table: a per-cell
// index grid (0 = no rebus, a non-zero value is a 1-based pointer into the
// solutions dictionary) plus the solutions and user-fill dictionaries. It is
// a plain value; mutations take effect only through Document.SetRebus.
type Rebus struct {
	Grid      []byte
	Solutions map[int]string
	Fill      map[int]string
}

// HasRebus reports whether any cell carries a rebus index.
func (r *Rebus) HasRebus() bool {
	for _, v := range r.Grid {
		if v != 0 {
			return true
		}
	}
	return false
}

// Solution returns the rebus solution for the given cell index.
func (r *Rebus) Solution(cell int) (string, bool) {
	if cell < 0 || cell >= len(r.Grid) || r.Grid[cell] == 0 {
		return "", false
	}
	s, ok := r.Solutions[int(r.Grid[cell])-1]
	return s, ok
}

// UserFill returns the user-entered rebus fill for the given cell index.
func (r *Rebus) UserFill(cell int) (string, bool) {
	if cell < 0 || cell >= len(r.Grid) || r.Grid[cell] == 0 {
		return "", false
	}
	s, ok := r.Fill[int(r.Grid[cell])-1]
	return s, ok
}

// Rebus assembles the rebus view from the extension table. A document with
// no rebus records yields an all-zero grid and empty dictionaries.
func (d *Document) Rebus() (Rebus, error) {
	r := Rebus{
		Grid:      make([]byte, d.Width*d.Height),
		Solutions: make(map[int]string),
		Fill:      make(map[int]string),
	}
	if g, ok := d.Extensions.Get(CodeRebusGrid); ok {
		copy(r.Grid, g)
	}
	if raw, ok := d.Extensions.Get(CodeRebusSolutions); ok {
		m, err := parseRebusTable(raw, d.encoding())
		if err != nil {
			return Rebus{}, err
		}
		r.Solutions = m
	}
	if raw, ok := d.Extensions.Get(CodeRebusFill); ok {
		m, err := parseRebusTable(raw, d.encoding())
		if err != nil {
			return Rebus{}, err
		}
		r.Fill = m
	}
	return r, nil
}

// SetRebus commits a rebus view back into the extension table. Empty views
// remove the rebus records entirely.
func (d *Document) SetRebus(r Rebus) error {
	if !r.HasRebus() {
		d.Extensions.Delete(CodeRebusGrid)
		d.Extensions.Delete(CodeRebusSolutions)
		d.Extensions.Delete(CodeRebusFill)
		return nil
	}
	grid := make([]byte, d.Width*d.Height)
	copy(grid, r.Grid)
	d.Extensions.Set(CodeRebusGrid, grid)

	sols, err := formatRebusTable(r.Solutions, d.encoding())
	if err != nil {
		return err
	}
	d.Extensions.Set(CodeRebusSolutions, sols)

	if len(r.Fill) > 0 {
		fill, err := formatRebusTable(r.Fill, d.encoding())
		if err != nil {
			return err
		}
		d.Extensions.Set(CodeRebusFill, fill)
	} else {
		d.Extensions.Delete(CodeRebusFill)
	}
	return nil
}

// parseRebusTable decodes a semicolon-delimited "index:value;" dictionary.
func parseRebusTable(raw []byte, enc format.Encoding) (map[int]string, error) {
	text, err := enc.Decode(raw)
	if err != nil {
		return nil, err
	}
	table := make(map[int]string)
	for _, pair := range strings.Split(text, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("puz: malformed rebus entry %q", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("puz: malformed rebus index %q", key)
		}
		table[n] = value
	}
	return table, nil
}

// formatRebusTable encodes a dictionary as "index:value;" entries with
// two-character space-padded indexes, in ascending index order.
func formatRebusTable(table map[int]string, enc format.Encoding) ([]byte, error) {
	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%2d:%s;", k, table[k])
	}
	return enc.Encode(sb.String())
}

// Markup is the per-cell markup bitmap computed from the extension table.
type Markup struct {
	Grid []byte
}

// Has reports whether the cell at index carries the given flag.
func (m *Markup) Has(cell int, flag byte) bool {
	return cell >= 0 && cell < len(m.Grid) && m.Grid[cell]&flag != 0
}

// SetFlag sets or clears a flag on the cell at index.
func (m *Markup) SetFlag(cell int, flag byte, on bool) {
	if cell < 0 || cell >= len(m.Grid) {
		return
	}
	if on {
		m.Grid[cell] |= flag
	} else {
		m.Grid[cell] &^= flag
	}
}

// HasAny reports whether any cell carries any flag.
func (m *Markup) HasAny() bool {
	for _, b := range m.Grid {
		if b != 0 {
			return true
		}
	}
	return false
}

// Markup assembles the markup view from the extension table.
func (d *Document) Markup() Markup {
	m := Markup{Grid: make([]byte, d.Width*d.Height)}
	if g, ok := d.Extensions.Get(CodeMarkup); ok {
		copy(m.Grid, g)
	}
	return m
}

// SetMarkup commits a markup view back into the extension table. A view with
// no flags removes the record.
func (d *Document) SetMarkup(m Markup) {
	if !m.HasAny() {
		d.Extensions.Delete(CodeMarkup)
		return
	}
	grid := make([]byte, d.Width*d.Height)
	copy(grid, m.Grid)
	d.Extensions.Set(CodeMarkup, grid)
}

// Timer is the solve timer state stored in the LTIM record as
// "elapsed,stopped" in seconds.
type Timer struct {
	Elapsed int
	Stopped bool
}

// Timer returns the parsed timer record. ok is false when the record is
// absent or unparsable.
func (d *Document) Timer() (Timer, bool) {
	raw, ok := d.Extensions.Get(CodeTimer)
	if !ok {
		return Timer{}, false
	}
	elapsed, stopped, found := strings.Cut(string(raw), ",")
	if !found {
		return Timer{}, false
	}
	e, err := strconv.Atoi(strings.TrimSpace(elapsed))
	if err != nil {
		return Timer{}, false
	}
	s, err := strconv.Atoi(strings.TrimSpace(stopped))
	if err != nil {
		return Timer{}, false
	}
	return Timer{Elapsed: e, Stopped: s != 0}, true
}

// SetTimer commits a timer record.
func (d *Document) SetTimer(t Timer) {
	stopped := 0
	if t.Stopped {
		stopped = 1
	}
	d.Extensions.Set(CodeTimer, []byte(fmt.Sprintf("%d,%d", t.Elapsed, stopped)))
}
