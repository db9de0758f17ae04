package charts

import (
	"fmt"

	"github.com/iafilius/welltracks/src/tracks"
	"github.com/iafilius/welltracks/src/welllog"
)

const (
	depthLabel         = "Depth (m)"
	measuredDepthLabel = "Measured Depth (m)"
	topsLabel          = "Tops"
)

// BuildSpec turns a kind and variant into the ordered panel list:
//
//	data: [tops] curves truth
//	val:  [tops] curves truth pred
//	test: test-curves pred
func BuildSpec(k Kind, v Variant) (tracks.Spec, error) {
	palette, err := tracks.ParsePalette(k.Palette...)
	if err != nil {
		return tracks.Spec{}, fmt.Errorf("kind %s: %w", k.Name, err)
	}
	category := func(column, label string) tracks.Panel {
		return tracks.CategoricalPanel{
			Column:     column,
			Label:      label,
			Palette:    palette,
			Classes:    k.Classes,
			ValueRange: k.ValueRange,
		}
	}

	var spec tracks.Spec
	curves := k.Curves
	switch v {
	case VariantData, VariantVal:
	case VariantTest:
		curves = k.TestCurves
	default:
		return tracks.Spec{}, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}

	spec.Name = k.Name + " " + v.String()
	spec.DepthLabel = depthLabel
	if k.Tops && v != VariantTest {
		spec.DepthLabel = measuredDepthLabel
		spec.Panels = append(spec.Panels, tracks.TopsPanel{Column: welllog.FormationColumn, Label: topsLabel})
	}
	for _, c := range curves {
		col, err := tracks.ParseColor(c.Color)
		if err != nil {
			return tracks.Spec{}, fmt.Errorf("kind %s curve %s: %w", k.Name, c.Column, err)
		}
		label := c.Label
		if label == "" {
			label = c.Column
		}
		spec.Panels = append(spec.Panels, tracks.CurvePanel{Column: c.Column, Label: label, Color: col})
	}
	switch v {
	case VariantData:
		spec.Panels = append(spec.Panels, category(k.Truth, k.Labels.Data))
	case VariantVal:
		spec.Panels = append(spec.Panels, category(k.Truth, k.Labels.Truth), category(k.Pred, k.Labels.Pred))
	case VariantTest:
		spec.Panels = append(spec.Panels, category(k.Pred, k.Labels.Test))
	}
	return spec, nil
}

// PanelCount is the number of panels BuildSpec produces: curves, one tops
// panel when present and one categorical panel (two for val).
func PanelCount(k Kind, v Variant) int {
	switch v {
	case VariantTest:
		return len(k.TestCurves) + 1
	case VariantVal:
		return len(k.Curves) + boolInt(k.Tops) + 2
	default:
		return len(k.Curves) + boolInt(k.Tops) + 1
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
