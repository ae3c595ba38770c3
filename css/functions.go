package css

import (
	"math"

	"csscolor/color"
	"csscolor/token"
)

type colorFunction struct {
	// arity counts the components before the optional alpha.
	arity  int
	decode func(d *decoder, args arguments) (color.Color, *ParseError)
}

var functions = map[string]colorFunction{
	"rgb":   {3, decodeRGB},
	"rgba":  {3, decodeRGB},
	"hsl":   {3, decodeHSL},
	"hsla":  {3, decodeHSL},
	"hwb":   {3, decodeHWB},
	"hwba":  {3, decodeHWB},
	"hsv":   {3, decodeHSV},
	"hsva":  {3, decodeHSV},
	"lab":   {3, decodeLab},
	"lch":   {3, decodeLCH},
	"oklab": {3, decodeOKLab},
	"oklch": {3, decodeOKLCH},
	"color": {4, decodeColorSpace},
}

var unbounded = math.Inf(1)

func decodeRGB(d *decoder, args arguments) (color.Color, *ParseError) {
	c := args.components
	if d.legacy {
		if err := d.sameType(c); err != nil {
			return color.Color{}, err
		}
	}
	var ch [3]float64
	for i, name := range [3]string{"red", "green", "blue"} {
		v, err := d.scalar(c[i], name, 255, 0, 255)
		if err != nil {
			return color.Color{}, err
		}
		ch[i] = v / 255
	}
	a, err := d.alpha(args.alpha)
	if err != nil {
		return color.Color{}, err
	}
	return color.New(ch[0], ch[1], ch[2], a), nil
}

func decodeHSL(d *decoder, args arguments) (color.Color, *ParseError) {
	c := args.components
	h, err := d.hue(c[0])
	if err != nil {
		return color.Color{}, err
	}
	if d.legacy {
		for _, t := range c[1:] {
			if t.Type == token.NumberTokenType {
				return color.Color{}, d.errorf(KindMismatch, t,
					"%s() with commas needs percentages for saturation and lightness, got %q", d.name, t.Text)
			}
		}
	}
	s, err := d.scalar(c[1], "saturation", 100, 0, 100)
	if err != nil {
		return color.Color{}, err
	}
	l, err := d.scalar(c[2], "lightness", 100, 0, 100)
	if err != nil {
		return color.Color{}, err
	}
	a, err := d.alpha(args.alpha)
	if err != nil {
		return color.Color{}, err
	}
	return color.FromHSL(h, s/100, l/100, a), nil
}

func decodeHWB(d *decoder, args arguments) (color.Color, *ParseError) {
	h, x, y, a, err := d.hueAndPercents(args, "whiteness", "blackness")
	if err != nil {
		return color.Color{}, err
	}
	return color.FromHWB(h, x, y, a), nil
}

func decodeHSV(d *decoder, args arguments) (color.Color, *ParseError) {
	h, x, y, a, err := d.hueAndPercents(args, "saturation", "value")
	if err != nil {
		return color.Color{}, err
	}
	return color.FromHSV(h, x, y, a), nil
}

func (d *decoder) hueAndPercents(args arguments, first, second string) (h, x, y, a float64, err *ParseError) {
	c := args.components
	if h, err = d.hue(c[0]); err != nil {
		return
	}
	if x, err = d.scalar(c[1], first, 100, 0, 100); err != nil {
		return
	}
	if y, err = d.scalar(c[2], second, 100, 0, 100); err != nil {
		return
	}
	if a, err = d.alpha(args.alpha); err != nil {
		return
	}
	return h, x / 100, y / 100, a, nil
}

func decodeLab(d *decoder, args arguments) (color.Color, *ParseError) {
	c := args.components
	l, err := d.lightness(c[0], 100)
	if err != nil {
		return color.Color{}, err
	}
	a, err := d.scalar(c[1], "a", 125, -unbounded, unbounded)
	if err != nil {
		return color.Color{}, err
	}
	b, err := d.scalar(c[2], "b", 125, -unbounded, unbounded)
	if err != nil {
		return color.Color{}, err
	}
	alpha, err := d.alpha(args.alpha)
	if err != nil {
		return color.Color{}, err
	}
	return color.FromLab(l, a, b, alpha), nil
}

func decodeLCH(d *decoder, args arguments) (color.Color, *ParseError) {
	c := args.components
	l, err := d.lightness(c[0], 100)
	if err != nil {
		return color.Color{}, err
	}
	ch, err := d.scalar(c[1], "chroma", 150, 0, unbounded)
	if err != nil {
		return color.Color{}, err
	}
	h, err := d.hue(c[2])
	if err != nil {
		return color.Color{}, err
	}
	alpha, err := d.alpha(args.alpha)
	if err != nil {
		return color.Color{}, err
	}
	return color.FromLCH(l, ch, h, alpha), nil
}

func decodeOKLab(d *decoder, args arguments) (color.Color, *ParseError) {
	c := args.components
	l, err := d.lightness(c[0], 1)
	if err != nil {
		return color.Color{}, err
	}
	a, err := d.scalar(c[1], "a", 0.4, -unbounded, unbounded)
	if err != nil {
		return color.Color{}, err
	}
	b, err := d.scalar(c[2], "b", 0.4, -unbounded, unbounded)
	if err != nil {
		return color.Color{}, err
	}
	alpha, err := d.alpha(args.alpha)
	if err != nil {
		return color.Color{}, err
	}
	return color.FromOKLab(l, a, b, alpha), nil
}

func decodeOKLCH(d *decoder, args arguments) (color.Color, *ParseError) {
	c := args.components
	l, err := d.lightness(c[0], 1)
	if err != nil {
		return color.Color{}, err
	}
	ch, err := d.scalar(c[1], "chroma", 0.4, 0, unbounded)
	if err != nil {
		return color.Color{}, err
	}
	h, err := d.hue(c[2])
	if err != nil {
		return color.Color{}, err
	}
	alpha, err := d.alpha(args.alpha)
	if err != nil {
		return color.Color{}, err
	}
	return color.FromOKLCH(l, ch, h, alpha), nil
}

// lightness reads the L of lab-like functions and clamps it to [0, ref].
func (d *decoder) lightness(t token.Token, ref float64) (float64, *ParseError) {
	l, err := d.scalar(t, "lightness", ref, 0, ref)
	if err != nil {
		return 0, err
	}
	return math.Min(math.Max(l, 0), ref), nil
}

func decodeColorSpace(d *decoder, args arguments) (color.Color, *ParseError) {
	c := args.components
	if c[0].Type != token.IdentTokenType || c[0].IsNone() {
		return color.Color{}, d.errorf(KindSyntax, c[0], "color() needs a color space name first, got %q", c[0].Text)
	}
	space, ok := color.LookupSpace(c[0].Text)
	if !ok {
		return color.Color{}, d.errorf(KindUnknownKeyword, c[0], "unknown color space %q", c[0].Text)
	}

	lo, hi := 0.0, 1.0
	if !space.RGBFamily() {
		lo, hi = -unbounded, unbounded
	}
	var ch [3]float64
	for i, t := range c[1:] {
		v, err := d.scalar(t, string(space)+" channel", 1, lo, hi)
		if err != nil {
			return color.Color{}, err
		}
		ch[i] = v
	}
	a, err := d.alpha(args.alpha)
	if err != nil {
		return color.Color{}, err
	}
	out, cerr := color.FromColorSpace(space, ch[0], ch[1], ch[2], a)
	if cerr != nil {
		return color.Color{}, d.errorf(KindUnknownKeyword, c[0], "%v", cerr)
	}
	return out, nil
}
