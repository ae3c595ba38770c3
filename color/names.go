package color

import (
	"slices"

	"golang.org/x/image/colornames"
)

// Transparent is the value of the CSS keyword "transparent".
var Transparent = Color{}

var (
	namedColors = buildNamedColors()
	namedSorted = sortedNames(namedColors)
)

// colornames follows SVG 1.1, which predates rebeccapurple.
func buildNamedColors() map[string]Color {
	named := make(map[string]Color, len(colornames.Map)+2)
	for name, c := range colornames.Map {
		named[name] = FromRGBA8(c.R, c.G, c.B, c.A)
	}
	named["rebeccapurple"] = FromRGBA8(0x66, 0x33, 0x99, 0xff)
	named["transparent"] = Transparent
	return named
}

func sortedNames(named map[string]Color) []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Named looks up a CSS named color. The name must already be lowercase.
func Named(name string) (Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// Names returns every known color name in sorted order.
func Names() []string {
	return slices.Clone(namedSorted)
}

// NameOf returns the first name, in sorted order, whose 8-bit value equals
// the quantized c.
func NameOf(c Color) (string, bool) {
	r, g, b, a := c.RGBA8()
	for _, name := range namedSorted {
		nr, ng, nb, na := namedColors[name].RGBA8()
		if nr == r && ng == g && nb == b && na == a {
			return name, true
		}
	}
	return "", false
}
