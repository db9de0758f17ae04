package welllog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// textColumns are kept as text even when every value looks numeric
// (well names such as "15" or "1001").
var textColumns = map[string]bool{
	WellColumn:      true,
	FormationColumn: true,
}

// FromRecords builds a table from a header and string records, the common
// shape produced by the CSV, XLSX and SQLite readers. A column is numeric when
// every non-empty cell parses as a float; missing cells become NaN or "".
func FromRecords(header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("empty header")
	}
	cols := make([]Column, len(header))
	for c, raw := range header {
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		cells := make([]string, len(records))
		for r, rec := range records {
			if c < len(rec) {
				cells[r] = strings.TrimSpace(rec[c])
			}
		}
		if !textColumns[name] {
			if floats, ok := parseFloats(cells); ok {
				cols[c] = NumericColumn(name, floats)
				continue
			}
		}
		cols[c] = TextColumn(name, cells)
	}
	return New(cols...)
}

func parseFloats(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	for i, s := range cells {
		if s == "" {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}
