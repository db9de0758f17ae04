package tracks

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// Top is a named formation boundary.
type Top struct {
	Name  string
	Depth float64
}

var (
	topsBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xed, A: 0xff}
	topsLine       = color.RGBA{R: 0, G: 0, B: 0, A: 230}
)

// FormationTops collects the tops from a sparse formation column. Rows with no
// name or no depth are dropped; a repeated name keeps its first position and
// its last depth.
func FormationTops(names []string, depth []float64) []Top {
	var out []Top
	pos := map[string]int{}
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || i >= len(depth) || !finite(depth[i]) {
			continue
		}
		if j, ok := pos[n]; ok {
			out[j].Depth = depth[i]
			continue
		}
		pos[n] = len(out)
		out = append(out, Top{Name: n, Depth: depth[i]})
	}
	return out
}

// drawTops tints the panel and draws a rule plus a centered label per top.
func drawTops(dst draw.Image, plot image.Rectangle, tops []Top, dr DepthRange) {
	fillRect(dst, plot, topsBackground)
	x0 := plot.Min.X + int(0.06*float64(plot.Dx()))
	x1 := plot.Min.X + int(0.95*float64(plot.Dx()))
	cx := plot.Min.X + int(0.45*float64(plot.Dx()))
	for _, t := range tops {
		y := dr.Y(t.Depth, plot)
		for x := x0; x < x1; x++ {
			if image.Pt(x, y).In(plot) {
				blend(dst, x, y, premultiply(topsLine))
			}
		}
		// label sits on the rule
		drawText(dst, labelFace, t.Name, cx, y-2, color.Black, alignCenter)
	}
}

func premultiply(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint32(c.R) * uint32(c.A) / 255),
		G: uint8(uint32(c.G) * uint32(c.A) / 255),
		B: uint8(uint32(c.B) * uint32(c.A) / 255),
		A: c.A,
	}
}
