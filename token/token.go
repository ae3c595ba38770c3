package token

import "strconv"

type TokenType int

const (
	NumberTokenType TokenType = iota
	PercentageTokenType
	DimensionTokenType
	IdentTokenType
	CommaTokenType
	SlashTokenType
)

func (t TokenType) String() string {
	switch t {
	case NumberTokenType:
		return "number"
	case PercentageTokenType:
		return "percentage"
	case DimensionTokenType:
		return "dimension"
	case IdentTokenType:
		return "identifier"
	case CommaTokenType:
		return "','"
	case SlashTokenType:
		return "'/'"
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Token is one lexical item inside the parentheses of a color function.
// Pos is the byte offset of Text in the original input.
type Token struct {
	Type  TokenType
	Text  string
	Value float64
	Unit  string
	Pos   int
}

// IsNone reports whether the token is the CSS "none" keyword.
func (t Token) IsNone() bool {
	return t.Type == IdentTokenType && t.Text == "none"
}

func (t Token) String() string {
	return strconv.Quote(t.Text)
}
