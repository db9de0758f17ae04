package tracks

import (
	"image"
	"math"
	"strconv"
)

// Figure geometry in pixels.
const (
	titleHeight  = 44
	headerHeight = 58
	bottomPad    = 24
	depthGutter  = 84
	panelGap     = 10
	rightPad     = 16
	legendPadPct = 0.05
	legendBarPct = 0.20
	legendTextW  = 8
)

// ComputePanelDimensions applies the clamp rules for track width and figure height.
func ComputePanelDimensions(panelW, height int) (int, int) {
	if panelW < 120 {
		panelW = 120
	}
	if panelW > 600 {
		panelW = 600
	}
	if height < 400 {
		height = 400
	}
	if height > 4000 {
		height = 4000
	}
	return panelW, height
}

// layout places the title, per-panel header and plot rectangles and the legend.
type layout struct {
	width, height int
	title         image.Rectangle
	headers       []image.Rectangle
	plots         []image.Rectangle
	legend        image.Rectangle // empty when there is no categorical panel
}

// computeLayout lays n panels left to right. legendAfter is the index of the
// panel carrying the legend (-1 for none); labelW is the widest legend label.
func computeLayout(n, legendAfter, labelW int, o Options) layout {
	l := layout{height: o.Height}
	plotTop := titleHeight + headerHeight
	plotBottom := o.Height - bottomPad
	x := depthGutter
	for i := 0; i < n; i++ {
		l.headers = append(l.headers, image.Rect(x, titleHeight, x+o.PanelWidth, plotTop))
		l.plots = append(l.plots, image.Rect(x, plotTop, x+o.PanelWidth, plotBottom))
		x += o.PanelWidth
		if i == legendAfter {
			pad := int(math.Round(float64(o.PanelWidth) * legendPadPct))
			bar := int(math.Round(float64(o.PanelWidth) * legendBarPct))
			l.legend = image.Rect(x+pad, plotTop, x+pad+bar, plotBottom)
			x = l.legend.Max.X + legendTextW + labelW
		}
		if i < n-1 {
			x += panelGap
		}
	}
	l.width = x + rightPad
	l.title = image.Rect(0, 0, l.width, titleHeight)
	return l
}

// BuildNumericTicks generates up to n tick marks spanning [min,max] using a
// 1, 2, 2.5, 5 x 10^k step.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// ticksWithin keeps the ticks inside [min, max].
func ticksWithin(ticks []float64, min, max float64) []float64 {
	var out []float64
	for _, v := range ticks {
		if v >= min-1e-9 && v <= max+1e-9 {
			out = append(out, v)
		}
	}
	return out
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// FormatNumericTick provides a compact label for axis and scale values.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	case av == 0:
		return "0"
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}
