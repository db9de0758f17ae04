package welllog

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads one worksheet of an Excel workbook. The first row is the
// header. An empty sheet name selects the first sheet.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: no header row", sheet)
	}
	return FromRecords(rows[0], rows[1:])
}
