package color

import (
	"github.com/mazznoer/csscolorparser"
)

// ParseReference decodes s with the third-party csscolorparser module. It is
// used to cross-check results, never as the primary parser.
func ParseReference(s string) (Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b, a := c.RGBA255()
	return FromRGBA8(r, g, b, a), nil
}

// SameRGBA8 reports whether two colors quantize to the same bytes.
func SameRGBA8(x, y Color) bool {
	xr, xg, xb, xa := x.RGBA8()
	yr, yg, yb, ya := y.RGBA8()
	return xr == yr && xg == yg && xb == yb && xa == ya
}
