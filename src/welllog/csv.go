package welllog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV reads a header-first CSV stream into a table.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("read csv: no header row")
	}
	return FromRecords(all[0], all[1:])
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
