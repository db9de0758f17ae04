// Package welllog holds the in-memory well log table: depth-indexed rows with
// numeric curve and class columns plus text columns such as the well name and
// formation tops.
package welllog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Standard column names used by the chart configurations.
const (
	WellColumn      = "Well"
	DepthColumn     = "Depth"
	FormationColumn = "Formation"
)

// Kind is the storage kind of a column.
type Kind int

const (
	KindNone Kind = iota
	KindNumeric
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "none"
	}
}

// Column is one named column used to build a Table. Exactly one of Floats or
// Strings is set; missing numeric samples are NaN, missing text is "".
type Column struct {
	Name    string
	Floats  []float64
	Strings []string
}

// NumericColumn builds a numeric column.
func NumericColumn(name string, v []float64) Column { return Column{Name: name, Floats: v} }

// TextColumn builds a text column.
func TextColumn(name string, v []string) Column { return Column{Name: name, Strings: v} }

func (c Column) kind() Kind {
	if c.Strings != nil {
		return KindText
	}
	return KindNumeric
}

func (c Column) len() int {
	if c.Strings != nil {
		return len(c.Strings)
	}
	return len(c.Floats)
}

// Table is an immutable column store. Row order is the load order.
type Table struct {
	order   []string
	numeric map[string][]float64
	text    map[string][]string
	rows    int
}

// New assembles a table. All columns must have the same length and unique names.
func New(cols ...Column) (*Table, error) {
	t := &Table{numeric: map[string][]float64{}, text: map[string][]string{}}
	for i, c := range cols {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if t.Has(name) {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		if i == 0 {
			t.rows = c.len()
		} else if c.len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", name, c.len(), t.rows)
		}
		t.order = append(t.order, name)
		if c.kind() == KindText {
			t.text[name] = c.Strings
		} else {
			t.numeric[name] = c.Floats
		}
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns column names in declaration order.
func (t *Table) Columns() []string { return append([]string(nil), t.order...) }

// Has reports whether a column exists.
func (t *Table) Has(name string) bool { return t.KindOf(name) != KindNone }

// KindOf returns the storage kind of a column.
func (t *Table) KindOf(name string) Kind {
	if _, ok := t.numeric[name]; ok {
		return KindNumeric
	}
	if _, ok := t.text[name]; ok {
		return KindText
	}
	return KindNone
}

// Float returns a numeric column. The slice is shared; callers must not modify it.
func (t *Table) Float(name string) ([]float64, error) {
	if v, ok := t.numeric[name]; ok {
		return v, nil
	}
	return nil, &MissingColumnError{Column: name, Want: KindNumeric, Got: t.KindOf(name)}
}

// Text returns a column as strings. Numeric columns are formatted, NaN becomes "".
func (t *Table) Text(name string) ([]string, error) {
	if v, ok := t.text[name]; ok {
		return v, nil
	}
	if v, ok := t.numeric[name]; ok {
		out := make([]string, len(v))
		for i, f := range v {
			if !math.IsNaN(f) {
				out[i] = strconv.FormatFloat(f, 'f', -1, 64)
			}
		}
		return out, nil
	}
	return nil, &MissingColumnError{Column: name, Want: KindText, Got: KindNone}
}

// Wells lists distinct well identifiers in order of first appearance.
func (t *Table) Wells() ([]string, error) {
	ids, err := t.Text(WellColumn)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var out []string
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// WellCounts returns the number of rows per well identifier.
func (t *Table) WellCounts() (map[string]int, error) {
	ids, err := t.Text(WellColumn)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, id := range ids {
		counts[id]++
	}
	return counts, nil
}

// Well returns the rows belonging to one well, order preserved. A well with no
// rows yields *EmptySelectionError.
func (t *Table) Well(id string) (*Table, error) {
	ids, err := t.Text(WellColumn)
	if err != nil {
		return nil, err
	}
	var keep []int
	for i, v := range ids {
		if v == id {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return nil, &EmptySelectionError{Well: id, Rows: t.rows}
	}
	return t.take(keep), nil
}

func (t *Table) take(idx []int) *Table {
	out := &Table{
		order:   append([]string(nil), t.order...),
		numeric: make(map[string][]float64, len(t.numeric)),
		text:    make(map[string][]string, len(t.text)),
		rows:    len(idx),
	}
	for name, v := range t.numeric {
		sel := make([]float64, len(idx))
		for j, i := range idx {
			sel[j] = v[i]
		}
		out.numeric[name] = sel
	}
	for name, v := range t.text {
		sel := make([]string, len(idx))
		for j, i := range idx {
			sel[j] = v[i]
		}
		out.text[name] = sel
	}
	return out
}

// FiniteRange returns min and max of the finite values in v. ok is false when
// there are none.
func FiniteRange(v []float64) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
		ok = true
	}
	if !ok {
		return math.NaN(), math.NaN(), false
	}
	return min, max, true
}
