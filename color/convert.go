package color

import "math"

// NormalizeHue maps an angle in degrees into [0, 360).
func NormalizeHue(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// FromHSL converts hue (degrees), saturation and lightness (both in [0, 1])
// to sRGB.
func FromHSL(h, s, l, alpha float64) Color {
	s = clamp01(s)
	l = clamp01(l)
	if s == 0 {
		return New(l, l, l, alpha)
	}
	h = NormalizeHue(h) / 360

	var t2 float64
	if l <= 0.5 {
		t2 = l * (s + 1)
	} else {
		t2 = l + s - l*s
	}
	t1 := 2*l - t2
	return New(
		hueToChannel(t1, t2, h+1.0/3),
		hueToChannel(t1, t2, h),
		hueToChannel(t1, t2, h-1.0/3),
		alpha,
	)
}

func hueToChannel(t1, t2, h float64) float64 {
	h -= math.Floor(h)
	h *= 6
	switch {
	case h < 1:
		return t1 + (t2-t1)*h
	case h < 3:
		return t2
	case h < 4:
		return t1 + (t2-t1)*(4-h)
	default:
		return t1
	}
}

// FromHWB converts hue (degrees), whiteness and blackness (both in [0, 1]).
// When whiteness and blackness add up to 1 or more the result is the gray
// w / (w + b).
func FromHWB(h, w, b, alpha float64) Color {
	w = clamp01(w)
	b = clamp01(b)
	if w+b >= 1 {
		gray := w / (w + b)
		return New(gray, gray, gray, alpha)
	}
	rgb := FromHSL(h, 1, 0.5, 1)
	scale := 1 - w - b
	return New(rgb.R*scale+w, rgb.G*scale+w, rgb.B*scale+w, alpha)
}

// FromHSV converts hue (degrees), saturation and value (both in [0, 1]).
func FromHSV(h, s, v, alpha float64) Color {
	s = clamp01(s)
	v = clamp01(v)
	l := v * (1 - s/2)
	var sl float64
	if l > 0 && l < 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}
	return FromHSL(h, sl, l, alpha)
}

// FromLinearSRGB applies the sRGB transfer function to linear-light channels.
func FromLinearSRGB(r, g, b, alpha float64) Color {
	return New(srgbEncode(r), srgbEncode(g), srgbEncode(b), alpha)
}

// FromXYZD65 converts CIE XYZ relative to the D65 white point.
func FromXYZD65(x, y, z, alpha float64) Color {
	r, g, b := xyzD65ToLinearSRGB.apply(x, y, z)
	return FromLinearSRGB(r, g, b, alpha)
}

// FromXYZD50 converts CIE XYZ relative to the D50 white point, adapting it to
// D65 with the Bradford transform first.
func FromXYZD50(x, y, z, alpha float64) Color {
	x, y, z = bradfordD50ToD65.apply(x, y, z)
	return FromXYZD65(x, y, z, alpha)
}

// FromLab converts CIE Lab (D50). l is in [0, 100].
func FromLab(l, a, b, alpha float64) Color {
	const (
		kappa   = 24389.0 / 27
		epsilon = 216.0 / 24389
	)
	l, a, b = finite(l, labLimit), finite(a, labLimit), finite(b, labLimit)
	f1 := (l + 16) / 116
	f0 := a/500 + f1
	f2 := f1 - b/200

	var x, y, z float64
	if f0*f0*f0 > epsilon {
		x = f0 * f0 * f0
	} else {
		x = (116*f0 - 16) / kappa
	}
	if l > kappa*epsilon {
		y = f1 * f1 * f1
	} else {
		y = l / kappa
	}
	if f2*f2*f2 > epsilon {
		z = f2 * f2 * f2
	} else {
		z = (116*f2 - 16) / kappa
	}
	return FromXYZD50(x*whiteD50[0], y*whiteD50[1], z*whiteD50[2], alpha)
}

// FromLCH converts CIE LCH, the polar form of Lab. h is in degrees.
func FromLCH(l, c, h, alpha float64) Color {
	a, b := polarToCartesian(c, h)
	return FromLab(l, a, b, alpha)
}

// FromOKLab converts Oklab. l is in [0, 1].
func FromOKLab(l, a, b, alpha float64) Color {
	l, a, b = finite(l, oklabLimit), finite(a, oklabLimit), finite(b, oklabLimit)
	lp := l + 0.3963377773761749*a + 0.2158037573099136*b
	mp := l - 0.1055613458156586*a - 0.0638541728258133*b
	sp := l - 0.0894841775298119*a - 1.2914855480194092*b

	lc, mc, sc := lp*lp*lp, mp*mp*mp, sp*sp*sp
	return FromLinearSRGB(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
		alpha,
	)
}

// FromOKLCH converts the polar form of Oklab. h is in degrees.
func FromOKLCH(l, c, h, alpha float64) Color {
	a, b := polarToCartesian(c, h)
	return FromOKLab(l, a, b, alpha)
}

func polarToCartesian(c, h float64) (float64, float64) {
	if c <= 0 || math.IsNaN(c) {
		return 0, 0
	}
	c = math.Min(c, labLimit)
	rad := NormalizeHue(h) * math.Pi / 180
	return c * math.Cos(rad), c * math.Sin(rad)
}

// Lab and Oklab axes are bounded before conversion. Both bounds lie far
// outside every gamut.
const (
	labLimit   = 1e6
	oklabLimit = 1e3
)

// finite bounds v to [-limit, limit] and maps NaN to 0.
func finite(v, limit float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-limit, math.Min(v, limit))
}

func srgbEncode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1, -v
	}
	if v <= 0.0031308 {
		return sign * 12.92 * v
	}
	return sign * (1.055*math.Pow(v, 1/2.4) - 0.055)
}

func srgbDecode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1, -v
	}
	if v <= 0.04045 {
		return sign * v / 12.92
	}
	return sign * math.Pow((v+0.055)/1.055, 2.4)
}

type matrix3 [3][3]float64

func (m *matrix3) apply(a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

var whiteD50 = [3]float64{0.3457 / 0.3585, 1, (1 - 0.3457 - 0.3585) / 0.3585}

var xyzD65ToLinearSRGB = matrix3{
	{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
	{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
	{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
}

var bradfordD50ToD65 = matrix3{
	{0.955473421488075, -0.02309845494876471, 0.06325924320057072},
	{-0.0283697093338637, 1.0099953980813041, 0.021041441191917323},
	{0.012314014864481998, -0.020507649298898964, 1.330365926242124},
}
