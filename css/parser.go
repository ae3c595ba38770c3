// Package css decodes CSS color values.
//
// ParseColor accepts hex notation (#rgb, #rgba, #rrggbb, #rrggbbaa), the
// functional notations rgb(), rgba(), hsl(), hsla(), hwb(), hsv(), lab(),
// lch(), oklab(), oklch() and color(), and the CSS named colors. Keywords and
// function names are matched case-insensitively and surrounding whitespace is
// ignored.
//
// By default out-of-range component values are clamped, so rgb(300, -10, 0)
// is red. A Parser built with Options.Strict rejects them with KindRange
// instead.
package css

import (
	"fmt"
	"strings"

	"csscolor/color"
)

// Options tunes a Parser. The zero value gives lenient CSS parsing.
type Options struct {
	// Strict rejects component values outside their nominal range instead of
	// clamping them.
	Strict bool
	// BareHex accepts 3, 4, 6 or 8 hex digits without the leading '#'.
	BareHex bool
	// CurrentColor is substituted for the currentcolor keyword. When nil,
	// currentcolor is an error since there is no element to inherit from.
	CurrentColor *color.Color
}

// Parser decodes color strings. It holds no mutable state and may be used
// from multiple goroutines.
type Parser struct {
	opts Options
}

func NewParser(opts Options) *Parser {
	if opts.CurrentColor != nil {
		c := *opts.CurrentColor
		opts.CurrentColor = &c
	}
	return &Parser{opts: opts}
}

var defaultParser = NewParser(Options{})

// ParseColor decodes s with the default options.
func ParseColor(s string) (color.Color, error) {
	return defaultParser.Parse(s)
}

// Parse decodes s. On failure the error is a *ParseError and the color is
// the zero value.
func (p *Parser) Parse(s string) (color.Color, error) {
	c, err := p.parse(s)
	if err != nil {
		return color.Color{}, err
	}
	return c, nil
}

func (p *Parser) parse(input string) (color.Color, *ParseError) {
	start, end := trimSpace(input)
	s := input[start:end]
	if s == "" {
		return color.Color{}, newError(input, KindUnknownFormat, -1, "", "empty input")
	}

	if s[0] == '#' {
		return parseHex(input, start+1, end)
	}
	if open := strings.IndexByte(s, '('); open >= 0 {
		return p.parseFunction(input, start, start+open, end)
	}
	if i := strings.IndexByte(s, ')'); i >= 0 {
		return color.Color{}, newError(input, KindSyntax, start+i, ")", "unbalanced ')'")
	}
	if isIdent(s) {
		return p.parseKeyword(input, start, end)
	}
	if p.opts.BareHex && isHexString(s) {
		return parseHex(input, start, end)
	}
	return color.Color{}, newError(input, KindUnknownFormat, start, s, "unrecognized color format")
}

func (p *Parser) parseKeyword(input string, start, end int) (color.Color, *ParseError) {
	name := strings.ToLower(input[start:end])
	if c, ok := color.Named(name); ok {
		return c, nil
	}
	if name == "currentcolor" {
		if p.opts.CurrentColor != nil {
			return *p.opts.CurrentColor, nil
		}
		return color.Color{}, newError(input, KindUnknownKeyword, start, input[start:end],
			"currentcolor has no value without a rendering context")
	}
	if p.opts.BareHex && isHexString(name) {
		return parseHex(input, start, end)
	}
	return color.Color{}, newError(input, KindUnknownKeyword, start, input[start:end], "unknown color name %q", name)
}

func parseHex(input string, start, end int) (color.Color, *ParseError) {
	digits := input[start:end]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return color.Color{}, newError(input, KindNumeric, start+i, digits[i:i+1], "invalid hex digit %q", digits[i:i+1])
		}
	}

	var r, g, b, a uint8 = 0, 0, 0, 255
	switch len(digits) {
	case 3:
		r, g, b = nibble(digits[0])*17, nibble(digits[1])*17, nibble(digits[2])*17
	case 4:
		r, g, b, a = nibble(digits[0])*17, nibble(digits[1])*17, nibble(digits[2])*17, nibble(digits[3])*17
	case 6:
		r, g, b = hexByte(digits[0:2]), hexByte(digits[2:4]), hexByte(digits[4:6])
	case 8:
		r, g, b, a = hexByte(digits[0:2]), hexByte(digits[2:4]), hexByte(digits[4:6]), hexByte(digits[6:8])
	default:
		return color.Color{}, newError(input, KindSyntax, start, digits,
			"invalid hex length %d, want 3, 4, 6 or 8 digits", len(digits))
	}
	return color.FromRGBA8(r, g, b, a), nil
}

func nibble(c byte) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func hexByte(s string) uint8 {
	return nibble(s[0])<<4 | nibble(s[1])
}

func isHexString(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// parseFunction handles name(args). open is the offset of '(' in input.
func (p *Parser) parseFunction(input string, start, open, end int) (color.Color, *ParseError) {
	rawName := input[start:open]
	if !isIdent(rawName) {
		return color.Color{}, newError(input, KindSyntax, start, rawName, "invalid function name %q", rawName)
	}
	closing := strings.IndexByte(input[open+1:end], ')')
	if closing < 0 {
		return color.Color{}, newError(input, KindSyntax, end, "", "missing ')'")
	}
	closing += open + 1
	if closing != end-1 {
		return color.Color{}, newError(input, KindSyntax, closing+1, input[closing+1:end],
			"unexpected input %q after ')'", input[closing+1:end])
	}

	name := strings.ToLower(rawName)
	fn, ok := functions[name]
	if !ok {
		return color.Color{}, newError(input, KindUnknownFunction, start, rawName, "unknown color function %q", name)
	}

	toks, err := newLexer(input, open+1, closing).tokens()
	if err != nil {
		return color.Color{}, err
	}
	d := &decoder{input: input, name: name, opts: p.opts, open: open}
	args, err := d.split(toks, fn.arity)
	if err != nil {
		return color.Color{}, err
	}
	return fn.decode(d, args)
}

func trimSpace(s string) (int, int) {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return start, end
}

func newError(input string, kind ErrorKind, pos int, tok string, format string, args ...any) *ParseError {
	return &ParseError{
		Input: input,
		Kind:  kind,
		Pos:   pos,
		Token: tok,
		Msg:   fmt.Sprintf(format, args...),
	}
}
