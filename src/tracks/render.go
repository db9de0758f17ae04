// Package tracks renders well log figures: side-by-side tracks sharing one
// inverted depth axis, each a continuous curve, a categorical color strip or
// the formation tops, with a color legend beside the last categorical track.
package tracks

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"

	"github.com/iafilius/welltracks/src/logger"
	"github.com/iafilius/welltracks/src/welllog"
)

// Render selects the rows of one well and draws spec into a new Figure. The
// caller must Close the figure. A well with no rows fails with
// *welllog.EmptySelectionError before anything is allocated.
func Render(tbl *welllog.Table, well string, spec Spec, opts Options) (*Figure, error) {
	defer logger.TimeTrack(time.Now(), "render "+well)
	if len(spec.Panels) == 0 {
		return nil, ErrEmptySpec
	}
	o := opts.withDefaults()

	sub, err := tbl.Well(well)
	if err != nil {
		return nil, err
	}
	depthCol := spec.DepthColumn
	if depthCol == "" {
		depthCol = welllog.DepthColumn
	}
	depth, err := sub.Float(depthCol)
	if err != nil {
		return nil, err
	}
	dr, ok := NewDepthRange(depth)
	if !ok {
		return nil, fmt.Errorf("well %q: no finite values in %s", well, depthCol)
	}

	legendAfter := -1
	var legendPanel CategoricalPanel
	for i, p := range spec.Panels {
		if cp, ok := p.(CategoricalPanel); ok {
			legendAfter, legendPanel = i, cp
		}
	}
	labelW := 0
	if legendAfter >= 0 {
		labelW = legendLabelWidth(legendPanel)
	}
	l := computeLayout(len(spec.Panels), legendAfter, labelW, o)

	img := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	fillRect(img, img.Bounds(), color.White)

	title := spec.Title
	if title == "" {
		title = fmt.Sprintf("%s Well", well)
	}
	tf := newTitleFace()
	drawText(img, tf, title, l.width/2, l.title.Min.Y+tf.Metrics().Ascent.Ceil()+10, color.Black, alignCenter)
	tf.Close()

	depthTicks := ticksWithin(BuildNumericTicks(dr.Min, dr.Max, o.DepthTicks), dr.Min, dr.Max)
	fig := &Figure{well: well, title: title, name: spec.Name, img: img}

	for i, p := range spec.Panels {
		plot, header := l.plots[i], l.headers[i]
		info := PanelInfo{Kind: p.Kind(), Column: p.ColumnName(), Label: p.Title(), Plot: plot, Depth: dr}
		switch p := p.(type) {
		case TopsPanel:
			if i != 0 {
				return nil, fmt.Errorf("panel %d: tops panel must be the first panel", i)
			}
			col := p.Column
			if col == "" {
				col = welllog.FormationColumn
				info.Column = col
			}
			names, err := sub.Text(col)
			if err != nil {
				return nil, fmt.Errorf("panel %d (%s): %w", i, p.Label, err)
			}
			info.Tops = FormationTops(names, depth)
			drawTops(img, plot, info.Tops, dr)
			drawHeader(img, header, p.Label)

		case CurvePanel:
			values, err := sub.Float(p.Column)
			if err != nil {
				return nil, fmt.Errorf("panel %d (%s): %w", i, p.Label, err)
			}
			xs, ys := curveSeries(depth, values)
			info.Points = len(xs)
			if len(xs) == 0 {
				info.XMin, info.XMax = math.NaN(), math.NaN()
				logger.Warnf("well %s: curve %s has no finite samples", well, p.Column)
				drawHeader(img, header, p.Label)
				break
			}
			info.XMin, info.XMax = curveBounds(xs)
			cimg, err := renderCurve(p, xs, ys, info.XMin, info.XMax, dr, depthTicks, plot, o)
			if err != nil {
				return nil, err
			}
			draw.Draw(img, plot.Inset(-chartPad), cimg, cimg.Bounds().Min, draw.Src)
			drawCurveHeader(img, header, p, info.XMin, info.XMax)

		case CategoricalPanel:
			codes, err := sub.Float(p.Column)
			if err != nil {
				return nil, fmt.Errorf("panel %d (%s): %w", i, p.Label, err)
			}
			if err := p.Palette.Validate(p.Column, codes); err != nil {
				return nil, err
			}
			strip := Expand(codes, o.StripWidth, p.Palette, p.valueRange())
			drawStrip(img, plot, strip, depth, p.Palette, dr)
			info.Strip = &strip
			drawHeader(img, header, p.Label)

		default:
			return nil, fmt.Errorf("panel %d: unsupported panel type %T", i, p)
		}
		frame(img, plot, color.Black)
		fig.panels = append(fig.panels, info)
	}

	depthLabel := spec.DepthLabel
	if depthLabel == "" {
		depthLabel = "Depth (m)"
	}
	drawDepthAxis(img, l.plots[0], dr, depthTicks, depthLabel)
	if legendAfter >= 0 {
		drawLegend(img, l.legend, legendPanel)
		fig.legend = l.legend
	}
	logger.Debugf("rendered %s: %d curves, %d strips, %dx%d px, depth %.2f-%.2f", title,
		spec.Count(PanelCurve), spec.Count(PanelCategorical), l.width, l.height, dr.Min, dr.Max)
	return fig, nil
}

// drawHeader centers a track label near the top of its header box.
func drawHeader(dst draw.Image, header image.Rectangle, label string) {
	drawText(dst, labelFace, label, (header.Min.X+header.Max.X)/2, header.Min.Y+18, color.Black, alignCenter)
}

// drawCurveHeader adds a line sample in the curve color and the scale bounds.
func drawCurveHeader(dst draw.Image, header image.Rectangle, p CurvePanel, xMin, xMax float64) {
	drawHeader(dst, header, p.Label)
	y := header.Min.Y + 30
	fillRect(dst, image.Rect(header.Min.X+4, y, header.Max.X-4, y+2), p.Color)
	vline(dst, header.Min.X+4, y-4, y+6, p.Color)
	vline(dst, header.Max.X-5, y-4, y+6, p.Color)
	base := header.Min.Y + 48
	drawText(dst, labelFace, FormatNumericTick(xMin), header.Min.X+4, base, p.Color, alignLeft)
	drawText(dst, labelFace, FormatNumericTick(xMax), header.Max.X-4, base, p.Color, alignRight)
}

// drawDepthAxis puts tick marks, depth labels and the axis name left of plot.
func drawDepthAxis(dst draw.Image, plot image.Rectangle, dr DepthRange, ticks []float64, label string) {
	asc := labelFace.Metrics().Ascent.Ceil()
	for _, t := range ticks {
		y := dr.Y(t, plot)
		hline(dst, plot.Min.X-5, plot.Min.X, y, color.Black)
		drawText(dst, labelFace, FormatNumericTick(t), plot.Min.X-8, y+asc/2, color.Black, alignRight)
	}
	drawTextVertical(dst, labelFace, label, 14, (plot.Min.Y+plot.Max.Y)/2, color.Black)
}
