package tracks

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/welltracks/src/welllog"
)

// chartPad is the go-chart background padding around the plot box. With every
// axis hidden the plot box is exactly the padded image area.
const chartPad = 4

var gridColor = drawing.Color{R: 176, G: 176, B: 176, A: 255}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// curveSeries pairs finite samples of one curve with their depth.
func curveSeries(depth, values []float64) (xs, ys []float64) {
	for i, v := range values {
		if i >= len(depth) || !finite(v) || !finite(depth[i]) {
			continue
		}
		xs = append(xs, v)
		ys = append(ys, depth[i])
	}
	return xs, ys
}

// curveBounds returns the x range of a curve. Degenerate ranges widen by one
// unit so the chart has a non-zero domain.
func curveBounds(xs []float64) (float64, float64) {
	min, max, ok := welllog.FiniteRange(xs)
	if !ok {
		return 0, 1
	}
	if max <= min {
		max = min + 1
	}
	return min, max
}

// gridElement draws vertical grid lines at xTicks and horizontal ones at depth
// ticks inside the chart's canvas box.
func gridElement(xMin, xMax float64, xTicks []float64, dr DepthRange, yTicks []float64) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, _ chart.Style) {
		r.SetStrokeColor(gridColor)
		r.SetStrokeWidth(1)
		for _, v := range xTicks {
			x := cb.Left + int(math.Round((v-xMin)/(xMax-xMin)*float64(cb.Width())))
			r.MoveTo(x, cb.Top)
			r.LineTo(x, cb.Bottom)
			r.Stroke()
		}
		box := image.Rect(cb.Left, cb.Top, cb.Right, cb.Bottom)
		for _, d := range yTicks {
			y := dr.Y(d, box)
			r.MoveTo(cb.Left, y)
			r.LineTo(cb.Right, y)
			r.Stroke()
		}
	}
}

// renderCurve draws one log curve into an image whose inner (unpadded) area is
// plot. The returned image is positioned at plot.Min - chartPad.
func renderCurve(p CurvePanel, xs, ys []float64, xMin, xMax float64, dr DepthRange, depthTicks []float64, plot image.Rectangle, o Options) (image.Image, error) {
	yMin, yMax := dr.Min, dr.Max
	if yMax <= yMin {
		yMax = yMin + 1
	}
	xTicks := ticksWithin(BuildNumericTicks(xMin, xMax, 5), xMin, xMax)
	white := drawing.ColorWhite
	ch := chart.Chart{
		Width:  plot.Dx() + 2*chartPad,
		Height: plot.Dy() + 2*chartPad,
		Background: chart.Style{
			Padding:   chart.Box{Top: chartPad, Left: chartPad, Right: chartPad, Bottom: chartPad},
			FillColor: white,
		},
		Canvas: chart.Style{FillColor: white},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax, Descending: true},
		},
		YAxisSecondary: chart.YAxis{Style: chart.Style{Hidden: true}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    p.Label,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: toDrawing(p.Color),
					StrokeWidth: o.CurveStroke,
				},
			},
		},
		Elements: []chart.Renderable{gridElement(xMin, xMax, xTicks, DepthRange{Max: yMax, Min: yMin}, depthTicks)},
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s curve: %w", p.Column, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s curve: %w", p.Column, err)
	}
	return img, nil
}
