package tracks

import (
	"image"
	"math"
	"sort"

	"github.com/iafilius/welltracks/src/welllog"
)

// DepthRange holds the shared depth bounds of a figure. The y limits of every
// panel are (Max, Min) so depth increases downward.
type DepthRange struct {
	Max, Min float64
}

// NewDepthRange computes the bounds of the finite depth values.
func NewDepthRange(depth []float64) (DepthRange, bool) {
	min, max, ok := welllog.FiniteRange(depth)
	return DepthRange{Max: max, Min: min}, ok
}

// Limits returns the inverted y limits (top, bottom) = (max, min).
func (r DepthRange) Limits() (float64, float64) { return r.Max, r.Min }

func (r DepthRange) span() float64 {
	s := r.Max - r.Min
	if s <= 0 || math.IsNaN(s) {
		return 1
	}
	return s
}

// Y maps a depth onto a pixel row inside rect; Min lands on rect.Min.Y.
func (r DepthRange) Y(d float64, rect image.Rectangle) int {
	f := (d - r.Min) / r.span()
	return rect.Min.Y + int(math.Round(f*float64(rect.Dy())))
}

// bands returns the pixel interval each sample covers. Boundaries sit halfway
// between neighboring depths; the outermost samples extend by half a gap.
func (r DepthRange) bands(depth []float64, rect image.Rectangle) [][2]int {
	out := make([][2]int, len(depth))
	idx := make([]int, 0, len(depth))
	for i, d := range depth {
		out[i] = [2]int{-1, -1}
		if finite(d) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return depth[idx[a]] < depth[idx[b]] })
	if len(idx) == 1 {
		out[idx[0]] = [2]int{rect.Min.Y, rect.Max.Y}
		return out
	}
	for k, i := range idx {
		d := depth[i]
		var lo, hi float64
		if k > 0 {
			lo = (depth[idx[k-1]] + d) / 2
		} else {
			lo = d - (depth[idx[k+1]]-d)/2
		}
		if k < len(idx)-1 {
			hi = (d + depth[idx[k+1]]) / 2
		} else {
			hi = d + (d-depth[idx[k-1]])/2
		}
		y0, y1 := clampInt(r.Y(lo, rect), rect.Min.Y, rect.Max.Y), clampInt(r.Y(hi, rect), rect.Min.Y, rect.Max.Y)
		if y1 <= y0 {
			y1 = y0 + 1
		}
		out[i] = [2]int{y0, y1}
	}
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
