// Package color holds the canonical color value every CSS color syntax is
// decoded into, along with the color-model conversions and the named-color
// table.
package color

import (
	"fmt"
	col "image/color"
	"math"
	"strconv"
)

// Color is a normalized sRGB color. Each channel is in [0, 1].
//
// The zero value is transparent black. Values built through New or one of the
// From* constructors are always finite and in range.
type Color struct {
	R, G, B, A float64
}

var _ col.Color = Color{}

// New returns a normalized color: NaN channels become 0 and everything else
// is clamped into [0, 1].
func New(r, g, b, a float64) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// FromRGBA8 builds a color from 8-bit channels.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// RGBA8 quantizes the color to four bytes. Each channel is scaled by 255 and
// rounded half away from zero.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return channelToByte(c.R), channelToByte(c.G), channelToByte(c.B), channelToByte(c.A)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.RGBA8()
	return col.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// NRGBA returns the quantized color as a non-premultiplied image/color value.
func (c Color) NRGBA() col.NRGBA {
	r, g, b, a := c.RGBA8()
	return col.NRGBA{R: r, G: g, B: b, A: a}
}

// HexString formats the color as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) HexString() string {
	r, g, b, a := c.RGBA8()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// CSSString formats the color in modern rgb() syntax.
func (c Color) CSSString() string {
	r, g, b, a := c.RGBA8()
	if a == 255 {
		return fmt.Sprintf("rgb(%d %d %d)", r, g, b)
	}
	alpha := strconv.FormatFloat(math.Round(float64(a)/255*1000)/1000, 'f', -1, 64)
	return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, alpha)
}

func (c Color) String() string {
	return c.HexString()
}

func channelToByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
