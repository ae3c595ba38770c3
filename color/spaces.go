package color

import (
	"fmt"
	"math"
)

// Space identifies a predefined color space accepted by the CSS color()
// function.
type Space string

const (
	SpaceSRGB       Space = "srgb"
	SpaceSRGBLinear Space = "srgb-linear"
	SpaceDisplayP3  Space = "display-p3"
	SpaceA98RGB     Space = "a98-rgb"
	SpaceProPhoto   Space = "prophoto-rgb"
	SpaceRec2020    Space = "rec2020"
	SpaceXYZ        Space = "xyz"
	SpaceXYZD50     Space = "xyz-d50"
	SpaceXYZD65     Space = "xyz-d65"
)

// LookupSpace returns the space with the given lowercase name.
func LookupSpace(name string) (Space, bool) {
	switch s := Space(name); s {
	case SpaceSRGB, SpaceSRGBLinear, SpaceDisplayP3, SpaceA98RGB, SpaceProPhoto,
		SpaceRec2020, SpaceXYZ, SpaceXYZD50, SpaceXYZD65:
		return s, true
	}
	return "", false
}

// RGBFamily reports whether the space has RGB channels with a nominal [0, 1]
// range. The xyz spaces have no upper bound.
func (s Space) RGBFamily() bool {
	switch s {
	case SpaceXYZ, SpaceXYZD50, SpaceXYZD65:
		return false
	}
	return true
}

// FromColorSpace converts three channel values in the given space to sRGB.
func FromColorSpace(space Space, c0, c1, c2, alpha float64) (Color, error) {
	switch space {
	case SpaceSRGB:
		return New(c0, c1, c2, alpha), nil
	case SpaceSRGBLinear:
		return FromLinearSRGB(c0, c1, c2, alpha), nil
	case SpaceDisplayP3:
		x, y, z := p3ToXYZ.apply(srgbDecode(c0), srgbDecode(c1), srgbDecode(c2))
		return FromXYZD65(x, y, z, alpha), nil
	case SpaceA98RGB:
		x, y, z := a98ToXYZ.apply(a98Decode(c0), a98Decode(c1), a98Decode(c2))
		return FromXYZD65(x, y, z, alpha), nil
	case SpaceProPhoto:
		x, y, z := prophotoToXYZD50.apply(prophotoDecode(c0), prophotoDecode(c1), prophotoDecode(c2))
		return FromXYZD50(x, y, z, alpha), nil
	case SpaceRec2020:
		x, y, z := rec2020ToXYZ.apply(rec2020Decode(c0), rec2020Decode(c1), rec2020Decode(c2))
		return FromXYZD65(x, y, z, alpha), nil
	case SpaceXYZ, SpaceXYZD65:
		return FromXYZD65(c0, c1, c2, alpha), nil
	case SpaceXYZD50:
		return FromXYZD50(c0, c1, c2, alpha), nil
	}
	return Color{}, fmt.Errorf("unknown color space %q", string(space))
}

func a98Decode(v float64) float64 {
	return signedPow(v, 563.0/256)
}

func prophotoDecode(v float64) float64 {
	const et2 = 16.0 / 512
	if math.Abs(v) <= et2 {
		return v / 16
	}
	return signedPow(v, 1.8)
}

func rec2020Decode(v float64) float64 {
	const (
		alpha = 1.09929682680944
		beta  = 0.018053968510807
	)
	if math.Abs(v) < beta*4.5 {
		return v / 4.5
	}
	return signedPow((math.Abs(v)+alpha-1)/alpha, 1/0.45) * sign(v)
}

func signedPow(v, p float64) float64 {
	return sign(v) * math.Pow(math.Abs(v), p)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

var p3ToXYZ = matrix3{
	{0.4865709486482162, 0.26566769316909306, 0.1982172852343625},
	{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
	{0.0, 0.04511338185890264, 1.043944368900976},
}

var a98ToXYZ = matrix3{
	{0.5766690429101305, 0.1855582379065463, 0.1882286462349947},
	{0.29734497525053605, 0.6273635662554661, 0.07529145849399788},
	{0.02703136138641234, 0.07068885253582723, 0.9913375368376388},
}

var prophotoToXYZD50 = matrix3{
	{0.7977666449006423, 0.13518129740053308, 0.0313477341283922},
	{0.2880748288194013, 0.711835234241873, 0.00008993693872564},
	{0.0, 0.0, 0.8251046025104602},
}

var rec2020ToXYZ = matrix3{
	{0.6369580483012914, 0.14461690358620832, 0.1688809751641721},
	{0.2627002120112671, 0.6779980715188708, 0.05930171646986196},
	{0.0, 0.028072693049087428, 1.060985057710791},
}
