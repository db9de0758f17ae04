package charts

import (
	"fmt"
	"strings"
)

// Variant selects which panels a chart shows and whether it is saved.
type Variant string

const (
	// VariantData shows the input curves with the ground-truth classes.
	VariantData Variant = "data"
	// VariantVal adds the predicted classes next to the ground truth and saves the figure.
	VariantVal Variant = "val"
	// VariantTest shows the reduced curve set with the predicted classes only.
	VariantTest Variant = "test"
)

// Variants lists every variant in display order.
func Variants() []Variant { return []Variant{VariantData, VariantVal, VariantTest} }

// ParseVariant accepts the variant names plus a few long forms.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "data", "":
		return VariantData, nil
	case "val", "validation":
		return VariantVal, nil
	case "test", "blind":
		return VariantTest, nil
	}
	return "", fmt.Errorf("%w: %q (want data, val or test)", ErrUnknownVariant, s)
}

// Saves reports whether figures of this variant are written to disk.
func (v Variant) Saves() bool { return v == VariantVal }

func (v Variant) String() string { return string(v) }
