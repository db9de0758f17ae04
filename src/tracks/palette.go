package tracks

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette maps class codes 0..k-1 to display colors.
type Palette []color.RGBA

// single-letter color shorthands
var shortColors = map[string]color.RGBA{
	"b": {0, 0, 255, 255},
	"g": {0, 128, 0, 255},
	"r": {255, 0, 0, 255},
	"c": {0, 191, 191, 255},
	"m": {191, 0, 191, 255},
	"y": {191, 191, 0, 255},
	"k": {0, 0, 0, 255},
	"w": {255, 255, 255, 255},
}

// ParseColor resolves a CSS/X11 color name ("saddlebrown"), a one-letter
// shorthand ("g") or a hex triplet ("#ffffed").
func ParseColor(s string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := shortColors[key]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(key, "#")
	if len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// ParsePalette resolves every name with ParseColor.
func ParsePalette(names ...string) (Palette, error) {
	p := make(Palette, 0, len(names))
	for _, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// Index maps a class code to a palette slot by normalizing it over vr and
// splitting the range into len(p) equal bins. A zero vr means [0, len(p)],
// which makes code c land on slot c. NaN yields -1.
func (p Palette) Index(code float64, vr ValueRange) int {
	if len(p) == 0 || math.IsNaN(code) {
		return -1
	}
	if vr.IsZero() {
		vr = ValueRange{Min: 0, Max: float64(len(p))}
	}
	span := vr.Max - vr.Min
	if span <= 0 {
		return 0
	}
	idx := int(math.Floor((code-vr.Min)/span*float64(len(p)) + 1e-9))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return idx
}

// Validate checks that every non-missing code is an integer in [0, len(p)-1].
func (p Palette) Validate(column string, codes []float64) error {
	for i, c := range codes {
		if math.IsNaN(c) {
			continue
		}
		if c != math.Trunc(c) || c < 0 || c >= float64(len(p)) {
			return &RangeError{Column: column, Row: i, Code: c, Size: len(p)}
		}
	}
	return nil
}
