package tracks

import "image/color"

// PanelKind identifies the three track types.
type PanelKind int

const (
	PanelTops PanelKind = iota
	PanelCurve
	PanelCategorical
)

func (k PanelKind) String() string {
	switch k {
	case PanelTops:
		return "tops"
	case PanelCurve:
		return "curve"
	case PanelCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Panel is one track of a figure: CurvePanel, CategoricalPanel or TopsPanel.
type Panel interface {
	Kind() PanelKind
	ColumnName() string
	Title() string
}

// CurvePanel draws a continuous log against depth.
type CurvePanel struct {
	Column string
	Label  string
	Color  color.RGBA
}

func (p CurvePanel) Kind() PanelKind    { return PanelCurve }
func (p CurvePanel) ColumnName() string { return p.Column }
func (p CurvePanel) Title() string      { return p.Label }

// CategoricalPanel draws integer class codes as a solid color strip.
// A zero ValueRange means [0, len(Palette)].
type CategoricalPanel struct {
	Column     string
	Label      string
	Palette    Palette
	Classes    []string // legend labels, one per palette entry
	ValueRange ValueRange
}

func (p CategoricalPanel) Kind() PanelKind    { return PanelCategorical }
func (p CategoricalPanel) ColumnName() string { return p.Column }
func (p CategoricalPanel) Title() string      { return p.Label }

func (p CategoricalPanel) valueRange() ValueRange {
	if p.ValueRange.IsZero() {
		return ValueRange{Min: 0, Max: float64(len(p.Palette))}
	}
	return p.ValueRange
}

// TopsPanel marks formation tops. It is only honored as the first panel.
type TopsPanel struct {
	Column string // defaults to welllog.FormationColumn
	Label  string
}

func (p TopsPanel) Kind() PanelKind    { return PanelTops }
func (p TopsPanel) ColumnName() string { return p.Column }
func (p TopsPanel) Title() string      { return p.Label }

// ValueRange is the [Min, Max] interval mapped across a palette.
type ValueRange struct {
	Min, Max float64
}

// IsZero reports whether the range was left unset.
func (v ValueRange) IsZero() bool { return v.Min == 0 && v.Max == 0 }

// Spec is the ordered panel list for one figure.
type Spec struct {
	Title       string // "<well> Well" when empty
	Name        string // chart name used in preview file names, e.g. "gas test"
	DepthColumn string // defaults to welllog.DepthColumn
	DepthLabel  string // depth axis label on the first panel
	Panels      []Panel
}

// Count returns the number of panels by kind.
func (s Spec) Count(k PanelKind) int {
	n := 0
	for _, p := range s.Panels {
		if p.Kind() == k {
			n++
		}
	}
	return n
}

// Options control figure geometry. Zero fields take DefaultOptions values.
type Options struct {
	PanelWidth  int // pixels per track
	Height      int // figure height in pixels
	StripWidth  int // columns a class code is replicated across
	DepthTicks  int // desired depth tick count
	CurveStroke float64
}

// DefaultOptions returns the geometry used by the chart configurations.
func DefaultOptions() Options {
	return Options{
		PanelWidth:  240,
		Height:      1200,
		StripWidth:  100,
		DepthTicks:  12,
		CurveStroke: 1.5,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PanelWidth <= 0 {
		o.PanelWidth = d.PanelWidth
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.StripWidth <= 0 {
		o.StripWidth = d.StripWidth
	}
	if o.DepthTicks < 2 {
		o.DepthTicks = d.DepthTicks
	}
	if o.CurveStroke <= 0 {
		o.CurveStroke = d.CurveStroke
	}
	o.PanelWidth, o.Height = ComputePanelDimensions(o.PanelWidth, o.Height)
	return o
}
