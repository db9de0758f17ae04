package charts

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iafilius/welltracks/src/logger"
	"github.com/iafilius/welltracks/src/tracks"
)

// File is the YAML chart configuration. Each entry overrides the named kind
// field by field; an entry for an unknown name defines a new kind.
//
//	kinds:
//	  gas:
//	    palette: [navy, "#ffd700", red]
//	    classes: [Low, Average, High]
//	    value_range: [0, 2]
type File struct {
	Kinds map[string]KindOverride `yaml:"kinds"`
}

// KindOverride mirrors Kind with optional fields.
type KindOverride struct {
	Truth      string        `yaml:"truth"`
	Pred       string        `yaml:"pred"`
	Palette    []string      `yaml:"palette"`
	Classes    []string      `yaml:"classes"`
	ValueRange []float64     `yaml:"value_range"`
	Labels     *LabelsConfig `yaml:"labels"`
	Tops       *bool         `yaml:"tops"`
	Curves     []CurveConfig `yaml:"curves"`
	TestCurves []CurveConfig `yaml:"test_curves"`
	Suffix     string        `yaml:"suffix"`
}

// LabelsConfig mirrors Labels.
type LabelsConfig struct {
	Data  string `yaml:"data"`
	Truth string `yaml:"truth"`
	Pred  string `yaml:"pred"`
	Test  string `yaml:"test"`
}

// CurveConfig mirrors Curve.
type CurveConfig struct {
	Column string `yaml:"column"`
	Label  string `yaml:"label"`
	Color  string `yaml:"color"`
}

// LoadFile applies the YAML file at path to r.
func (r *Registry) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read chart file: %w", err)
	}
	if err := r.Apply(bytes.NewReader(b)); err != nil {
		return fmt.Errorf("chart file %s: %w", path, err)
	}
	return nil
}

// Apply decodes a chart configuration and merges it into r. Nothing is
// changed when any kind fails validation.
func (r *Registry) Apply(src io.Reader) error {
	var f File
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return fmt.Errorf("decode chart config: %w", err)
	}
	merged := make([]Kind, 0, len(f.Kinds))
	for name, o := range f.Kinds {
		base, err := r.Lookup(name)
		if err != nil {
			base = Kind{Name: name}
		}
		k, err := o.merge(base)
		if err != nil {
			return fmt.Errorf("kind %s: %w", name, err)
		}
		if err := k.Validate(); err != nil {
			return err
		}
		merged = append(merged, k)
	}
	for _, k := range merged {
		if err := r.Set(k); err != nil {
			return err
		}
		logger.Debugf("chart kind %s configured: %d colors, suffix %q", k.Name, len(k.Palette), k.Suffix)
	}
	return nil
}

func (o KindOverride) merge(k Kind) (Kind, error) {
	if o.Truth != "" {
		k.Truth = o.Truth
	}
	if o.Pred != "" {
		k.Pred = o.Pred
	}
	if len(o.Palette) > 0 {
		k.Palette = append([]string(nil), o.Palette...)
	}
	if len(o.Classes) > 0 {
		k.Classes = append([]string(nil), o.Classes...)
	}
	switch len(o.ValueRange) {
	case 0:
	case 2:
		k.ValueRange = tracks.ValueRange{Min: o.ValueRange[0], Max: o.ValueRange[1]}
	default:
		return k, fmt.Errorf("%w: value_range needs [min, max], got %v", ErrInvalidKind, o.ValueRange)
	}
	if o.Labels != nil {
		k.Labels = mergeLabels(k.Labels, *o.Labels)
	}
	if o.Tops != nil {
		k.Tops = *o.Tops
	}
	if len(o.Curves) > 0 {
		k.Curves = curves(o.Curves)
	}
	if len(o.TestCurves) > 0 {
		k.TestCurves = curves(o.TestCurves)
	}
	if o.Suffix != "" {
		k.Suffix = o.Suffix
	}
	return k, nil
}

func mergeLabels(l Labels, o LabelsConfig) Labels {
	if o.Data != "" {
		l.Data = o.Data
	}
	if o.Truth != "" {
		l.Truth = o.Truth
	}
	if o.Pred != "" {
		l.Pred = o.Pred
	}
	if o.Test != "" {
		l.Test = o.Test
	}
	return l
}

func curves(cc []CurveConfig) []Curve {
	out := make([]Curve, 0, len(cc))
	for _, c := range cc {
		if c.Color == "" {
			c.Color = "black"
		}
		out = append(out, Curve{Column: c.Column, Label: c.Label, Color: c.Color})
	}
	return out
}
