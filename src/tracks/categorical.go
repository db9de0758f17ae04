package tracks

import (
	"image"
	"image/color"
	"image/draw"
)

// drawStrip paints a categorical strip, one depth band per sample.
func drawStrip(dst draw.Image, plot image.Rectangle, s Strip, depth []float64, p Palette, dr DepthRange) {
	bands := dr.bands(depth, plot)
	for r := 0; r < s.Rows() && r < len(bands); r++ {
		y0, y1 := bands[r][0], bands[r][1]
		if y0 < 0 {
			continue
		}
		for x := plot.Min.X; x < plot.Max.X; x++ {
			idx := s.At(r, x-plot.Min.X, plot.Dx())
			if idx < 0 || idx >= len(p) {
				continue
			}
			vline(dst, x, y0, y1, p[idx])
		}
	}
}

// drawLegend draws the color bar beside the last categorical panel: one swatch
// per palette entry, code 0 at the bottom, its class label to the right.
func drawLegend(dst draw.Image, bar image.Rectangle, p CategoricalPanel) {
	n := len(p.Palette)
	if n == 0 || bar.Empty() {
		return
	}
	h := float64(bar.Dy()) / float64(n)
	for k := 0; k < n; k++ {
		y1 := bar.Max.Y - int(float64(k)*h)
		y0 := bar.Max.Y - int(float64(k+1)*h)
		fillRect(dst, image.Rect(bar.Min.X, y0, bar.Max.X, y1), p.Palette[k])
		if k < len(p.Classes) {
			baseline := (y0+y1)/2 + labelFace.Metrics().Ascent.Ceil()/2
			drawText(dst, labelFace, p.Classes[k], bar.Max.X+legendTextW/2, baseline, color.Black, alignLeft)
		}
	}
	frame(dst, bar, color.Black)
}

// legendLabelWidth is the widest class label of a panel.
func legendLabelWidth(p CategoricalPanel) int {
	w := 0
	for _, c := range p.Classes {
		if cw := textWidth(labelFace, c); cw > w {
			w = cw
		}
	}
	return w
}
