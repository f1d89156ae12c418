package mapview

import (
	"fmt"
	"math"
)

// NeutralFill is the polygon color for areas whose metric is unknown.
const NeutralFill = "#d9d9d9"

// hoverDarkenFactor scales each RGB channel of the stored base color on
// hover; the base is kept so un-hovering restores the exact original.
const hoverDarkenFactor = 0.8

// RGB is a color in 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ChoroplethScale is a linear two-color gradient over an observed metric
// domain. The domain comes from the loaded areas, not from fixed bounds, so
// the palette always uses its full range.
type ChoroplethScale struct {
	Min, Max float64
	Low      RGB
	High     RGB
}

// NewChoroplethScale builds a scale over the observed values. Returns a
// degenerate scale when no value is known; ColorFor then answers the
// neutral fill for everything.
func NewChoroplethScale(values []*float64, low, high RGB) ChoroplethScale {
	scale := ChoroplethScale{
		Min: math.Inf(1),
		Max: math.Inf(-1),
		Low: low, High: high,
	}

	for _, v := range values {
		if v == nil {
			continue
		}
		scale.Min = math.Min(scale.Min, *v)
		scale.Max = math.Max(scale.Max, *v)
	}

	return scale
}

// ColorFor returns the fill for one metric value. A missing value always
// gets the neutral fill so "no data" never reads as "low".
func (s ChoroplethScale) ColorFor(value *float64) string {
	if value == nil || s.Min > s.Max {
		return NeutralFill
	}

	t := 0.0
	if s.Max > s.Min {
		t = (*value - s.Min) / (s.Max - s.Min)
	}
	t = math.Max(0, math.Min(1, t))

	return RGB{
		R: lerpChannel(s.Low.R, s.High.R, t),
		G: lerpChannel(s.Low.G, s.High.G, t),
		B: lerpChannel(s.Low.B, s.High.B, t),
	}.Hex()
}

// HoverColor darkens a stored base fill for the hover state. The neutral
// fill darkens too, so hover feedback works on no-data areas.
func HoverColor(baseHex string) string {
	base, err := parseHex(baseHex)
	if err != nil {
		return baseHex
	}

	return RGB{
		R: uint8(float64(base.R) * hoverDarkenFactor),
		G: uint8(float64(base.G) * hoverDarkenFactor),
		B: uint8(float64(base.B) * hoverDarkenFactor),
	}.Hex()
}

func lerpChannel(low, high uint8, t float64) uint8 {
	return uint8(math.Round(float64(low) + (float64(high)-float64(low))*t))
}

func parseHex(hex string) (RGB, error) {
	var c RGB
	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)

	return c, err
}
