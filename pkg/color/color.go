// Package color implements the RGB color value used by themes and the
// template color helpers.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned by FromHex for anything that is not #RRGGBB.
var ErrInvalidHex = errors.New("invalid hex format: should be #RRGGBB")

// Color is an sRGB color with channels normalized to [0,1].
// All transforms return a new Color.
type Color struct {
	c colorful.Color
}

// New creates a Color from 8-bit channels.
func New(red, green, blue uint8) Color {
	return Color{c: colorful.Color{
		R: float64(red) / 255.0,
		G: float64(green) / 255.0,
		B: float64(blue) / 255.0,
	}}
}

// FromHex parses a 7 character "#RRGGBB" string. Digits may be either case.
func FromHex(hex string) (Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, ErrInvalidHex
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Color{}, ErrInvalidHex
		}
		channels[i] = uint8(v)
	}

	return New(channels[0], channels[1], channels[2]), nil
}

// IsHex reports whether s is a valid "#RRGGBB" color.
func IsHex(s string) bool {
	_, err := FromHex(s)
	return err == nil
}

// Channels returns the normalized red, green and blue components.
func (c Color) Channels() (r, g, b float64) {
	return c.c.R, c.c.G, c.c.B
}

// RGB returns the channels quantized to 8 bits.
func (c Color) RGB() (r, g, b uint8) {
	return c.c.RGB255()
}

// Hex formats the color as lower-case "#rrggbb".
func (c Color) Hex() string {
	return c.c.Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGBA formats the color as "rgba(r, g, b, a)" with alpha to 2 decimals.
func (c Color) RGBA(alpha float64) string {
	r, g, b := c.RGB()
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}

// Lighten moves every channel toward white by amount in [0,1].
func (c Color) Lighten(amount float64) Color {
	return c.blend(colorful.Color{R: 1, G: 1, B: 1}, amount)
}

// Darken moves every channel toward black by amount in [0,1].
func (c Color) Darken(amount float64) Color {
	return c.blend(colorful.Color{}, amount)
}

// ShiftHue rotates the hue by degrees, wrapping around the color wheel.
func (c Color) ShiftHue(degrees float64) Color {
	h, s, l := c.c.Hsl()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return Color{c: colorful.Hsl(h, s, l).Clamped()}
}

// Saturate scales saturation toward 1 by amount; a negative amount scales
// it toward 0 instead.
func (c Color) Saturate(amount float64) Color {
	h, s, l := c.c.Hsl()
	amount = clamp(amount, -1, 1)
	if amount >= 0 {
		s += (1 - s) * amount
	} else {
		s += s * amount
	}
	return Color{c: colorful.Hsl(h, clamp(s, 0, 1), l).Clamped()}
}

func (c Color) blend(target colorful.Color, amount float64) Color {
	return Color{c: c.c.BlendRgb(target, clamp(amount, 0, 1)).Clamped()}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
