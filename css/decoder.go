package css

import (
	"fmt"
	"math"

	"csscolor/color"
	"csscolor/token"
)

// decoder turns the tokens of one color function call into channel values.
type decoder struct {
	input string
	name  string
	opts  Options
	// open is the offset of '(' in input.
	open int
	// want is the component count of the function.
	want int
	// legacy is set for comma separated arguments.
	legacy bool
}

type arguments struct {
	components []token.Token
	alpha      *token.Token
}

// split checks the separators and the argument count. Comma separated
// arguments take the alpha as an optional extra component; whitespace
// separated ones take it after a '/'.
func (d *decoder) split(toks []token.Token, arity int) (arguments, *ParseError) {
	d.want = arity
	for _, t := range toks {
		if t.Type == token.CommaTokenType {
			d.legacy = true
			break
		}
	}

	var values []token.Token
	var alpha *token.Token
	if d.legacy {
		for i, t := range toks {
			if i%2 == 1 {
				if t.Type != token.CommaTokenType {
					return arguments{}, d.errorf(KindSyntax, t, "expected ',' before %q, whitespace and commas cannot be mixed", t.Text)
				}
				continue
			}
			switch {
			case t.Type == token.CommaTokenType:
				return arguments{}, d.errorf(KindSyntax, t, "missing argument before ','")
			case t.Type == token.SlashTokenType:
				return arguments{}, d.errorf(KindSyntax, t, "'/' cannot be used with comma separated arguments")
			case t.IsNone():
				return arguments{}, d.errorf(KindSyntax, t, "none cannot be used with comma separated arguments")
			}
			values = append(values, t)
		}
		if len(toks)%2 == 0 {
			return arguments{}, d.errorf(KindSyntax, toks[len(toks)-1], "trailing ','")
		}
		switch len(values) {
		case arity:
		case arity + 1:
			alpha = &values[arity]
			values = values[:arity]
		default:
			return arguments{}, d.arityError(len(values))
		}
		return arguments{components: values, alpha: alpha}, nil
	}

	slash := -1
	for i, t := range toks {
		if t.Type != token.SlashTokenType {
			continue
		}
		if slash >= 0 {
			return arguments{}, d.errorf(KindSyntax, t, "more than one '/'")
		}
		slash = i
	}
	values = toks
	if slash >= 0 {
		values = toks[:slash]
		rest := toks[slash+1:]
		switch len(rest) {
		case 0:
			return arguments{}, d.errorf(KindSyntax, toks[slash], "missing alpha after '/'")
		case 1:
			alpha = &rest[0]
		default:
			return arguments{}, d.errorf(KindArity, rest[1], "%s() takes a single alpha value after '/', got %d", d.name, len(rest))
		}
	}
	if len(values) != arity {
		return arguments{}, d.arityError(len(values))
	}
	return arguments{components: values, alpha: alpha}, nil
}

func (d *decoder) arityError(got int) *ParseError {
	return newError(d.input, KindArity, d.open, d.name,
		"%s() takes %d arguments plus an optional alpha, got %d", d.name, d.want, got)
}

// scalar reads a number or percentage. ref is the value 100% maps to and
// [lo, hi] the nominal range, both in the units the number form uses.
// Out-of-range values pass through unchanged unless the parser is strict;
// the color constructors clamp them.
func (d *decoder) scalar(t token.Token, what string, ref, lo, hi float64) (float64, *ParseError) {
	var v float64
	switch t.Type {
	case token.NumberTokenType:
		v = t.Value
	case token.PercentageTokenType:
		v = t.Value / 100 * ref
	case token.DimensionTokenType:
		return 0, d.errorf(KindNumeric, t, "unexpected unit %q in %s", t.Unit, what)
	case token.IdentTokenType:
		if t.IsNone() {
			return 0, nil
		}
		return 0, d.errorf(KindNumeric, t, "expected a number for %s, got %q", what, t.Text)
	default:
		return 0, d.errorf(KindNumeric, t, "expected a number for %s, got %s", what, t.Type)
	}
	if d.opts.Strict && (v < lo || v > hi) {
		return 0, d.errorf(KindRange, t, "%s %s is outside %s", what, t.Text, rangeString(lo, hi))
	}
	return v, nil
}

// hue reads an angle and returns it in degrees within [0, 360).
func (d *decoder) hue(t token.Token) (float64, *ParseError) {
	var deg float64
	switch t.Type {
	case token.NumberTokenType:
		deg = t.Value
	case token.DimensionTokenType:
		switch t.Unit {
		case "deg":
			deg = t.Value
		case "grad":
			deg = t.Value * 360 / 400
		case "rad":
			deg = t.Value * 180 / math.Pi
		case "turn":
			deg = t.Value * 360
		default:
			return 0, d.errorf(KindNumeric, t, "unknown angle unit %q", t.Unit)
		}
	case token.PercentageTokenType:
		return 0, d.errorf(KindNumeric, t, "hue cannot be a percentage")
	case token.IdentTokenType:
		if t.IsNone() {
			return 0, nil
		}
		return 0, d.errorf(KindNumeric, t, "expected an angle for hue, got %q", t.Text)
	default:
		return 0, d.errorf(KindNumeric, t, "expected an angle for hue, got %s", t.Type)
	}
	if math.IsInf(deg, 0) || math.IsNaN(deg) {
		return 0, d.errorf(KindHue, t, "hue %s is not a finite angle", t.Text)
	}
	return color.NormalizeHue(deg), nil
}

// alpha reads the optional alpha, a number in [0, 1] or a percentage.
func (d *decoder) alpha(t *token.Token) (float64, *ParseError) {
	if t == nil {
		return 1, nil
	}
	return d.scalar(*t, "alpha", 1, 0, 1)
}

// sameType enforces the CSS3 rule that legacy rgb() takes either three
// numbers or three percentages.
func (d *decoder) sameType(toks []token.Token) *ParseError {
	first := toks[0]
	for _, t := range toks[1:] {
		if t.Type != first.Type && numberOrPercent(t) && numberOrPercent(first) {
			return d.errorf(KindMismatch, t, "%s() with commas cannot mix %s %q and %s %q",
				d.name, first.Type, first.Text, t.Type, t.Text)
		}
	}
	return nil
}

func numberOrPercent(t token.Token) bool {
	return t.Type == token.NumberTokenType || t.Type == token.PercentageTokenType
}

func (d *decoder) errorf(kind ErrorKind, t token.Token, format string, args ...any) *ParseError {
	return newError(d.input, kind, t.Pos, t.Text, format, args...)
}

func rangeString(lo, hi float64) string {
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return "(-inf, inf)"
	case math.IsInf(hi, 1):
		return fmt.Sprintf("[%g, inf)", lo)
	}
	return fmt.Sprintf("[%g, %g]", lo, hi)
}
