package css

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why a color failed to parse.
type ErrorKind int

const (
	// KindUnknownFormat means the input is not hex, functional or a keyword.
	KindUnknownFormat ErrorKind = iota
	// KindSyntax covers structural problems: bad hex length, unbalanced
	// parentheses, misplaced separators, trailing input.
	KindSyntax
	// KindUnknownFunction means the function name is not a color function.
	KindUnknownFunction
	// KindUnknownKeyword means an identifier is not a known color name,
	// color space or keyword.
	KindUnknownKeyword
	// KindArity means a color function got the wrong number of arguments.
	KindArity
	// KindNumeric means a malformed number, percentage or angle.
	KindNumeric
	// KindMismatch means percentages and numbers were mixed where the
	// syntax forbids it.
	KindMismatch
	// KindHue means a hue that cannot be normalized.
	KindHue
	// KindRange means a component outside its range in strict mode.
	KindRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownFormat:
		return "unknown format"
	case KindSyntax:
		return "syntax"
	case KindUnknownFunction:
		return "unknown function"
	case KindUnknownKeyword:
		return "unknown keyword"
	case KindArity:
		return "arity"
	case KindNumeric:
		return "numeric"
	case KindMismatch:
		return "percentage/number mismatch"
	case KindHue:
		return "hue"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

// Error classes. A *ParseError matches exactly one of these with errors.Is.
var (
	ErrSyntax            = errors.New("syntax error")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrArity             = errors.New("wrong number of arguments")
	ErrNumeric           = errors.New("invalid number")
	ErrRange             = errors.New("value out of range")
)

func (k ErrorKind) class() error {
	switch k {
	case KindUnknownFunction, KindUnknownKeyword:
		return ErrUnknownIdentifier
	case KindArity:
		return ErrArity
	case KindNumeric, KindMismatch, KindHue:
		return ErrNumeric
	case KindRange:
		return ErrRange
	default:
		return ErrSyntax
	}
}

// ParseError describes a color string that could not be decoded.
type ParseError struct {
	// Input is the string handed to the parser, untrimmed.
	Input string
	Kind  ErrorKind
	// Pos is the byte offset into Input of the offending text, or -1.
	Pos int
	// Token is the offending text, if any.
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("invalid color %q: %s at offset %d", e.Input, e.Msg, e.Pos)
	}
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Msg)
}

func (e *ParseError) Is(target error) bool {
	return target == e.Kind.class()
}
