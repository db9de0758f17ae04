package tracks

// Strip is a categorical track expanded to an image-like matrix: one row per
// sample, Width identical palette indices per row (-1 for a missing code).
type Strip struct {
	Width int
	Cells [][]int
}

// Expand replicates each row's palette index across width columns.
func Expand(codes []float64, width int, p Palette, vr ValueRange) Strip {
	s := Strip{Width: width, Cells: make([][]int, len(codes))}
	for i, c := range codes {
		idx := p.Index(c, vr)
		row := make([]int, width)
		for j := range row {
			row[j] = idx
		}
		s.Cells[i] = row
	}
	return s
}

// Rows returns the number of samples.
func (s Strip) Rows() int { return len(s.Cells) }

// Classes returns the palette index of every row.
func (s Strip) Classes() []int {
	out := make([]int, len(s.Cells))
	for i, row := range s.Cells {
		if len(row) == 0 {
			out[i] = -1
			continue
		}
		out[i] = row[0]
	}
	return out
}

// At returns the palette index at row r, column x scaled from a target width.
func (s Strip) At(r, x, targetWidth int) int {
	if r < 0 || r >= len(s.Cells) || targetWidth <= 0 || s.Width <= 0 {
		return -1
	}
	col := x * s.Width / targetWidth
	if col >= s.Width {
		col = s.Width - 1
	}
	if col < 0 {
		col = 0
	}
	return s.Cells[r][col]
}
