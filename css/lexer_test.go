package css

import (
	"math"
	"testing"

	"csscolor/token"
)

func lex(input string) ([]token.Token, *ParseError) {
	return newLexer(input, 0, len(input)).tokens()
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Token
	}{
		{"", nil},
		{"  ", nil},
		{"1, 2.5,3", []token.Token{
			{Type: token.NumberTokenType, Text: "1", Value: 1, Pos: 0},
			{Type: token.CommaTokenType, Text: ",", Pos: 1},
			{Type: token.NumberTokenType, Text: "2.5", Value: 2.5, Pos: 3},
			{Type: token.CommaTokenType, Text: ",", Pos: 6},
			{Type: token.NumberTokenType, Text: "3", Value: 3, Pos: 7},
		}},
		{"50% / .5", []token.Token{
			{Type: token.PercentageTokenType, Text: "50%", Value: 50, Pos: 0},
			{Type: token.SlashTokenType, Text: "/", Pos: 4},
			{Type: token.NumberTokenType, Text: ".5", Value: 0.5, Pos: 6},
		}},
		{"90DEG -1.5turn +2e1rad", []token.Token{
			{Type: token.DimensionTokenType, Text: "90DEG", Value: 90, Unit: "deg", Pos: 0},
			{Type: token.DimensionTokenType, Text: "-1.5turn", Value: -1.5, Unit: "turn", Pos: 6},
			{Type: token.DimensionTokenType, Text: "+2e1rad", Value: 20, Unit: "rad", Pos: 15},
		}},
		{"NONE display-p3 -x", []token.Token{
			{Type: token.IdentTokenType, Text: "none", Pos: 0},
			{Type: token.IdentTokenType, Text: "display-p3", Pos: 5},
			{Type: token.IdentTokenType, Text: "-x", Pos: 16},
		}},
		{"1e-2 3E+1", []token.Token{
			{Type: token.NumberTokenType, Text: "1e-2", Value: 0.01, Pos: 0},
			{Type: token.NumberTokenType, Text: "3E+1", Value: 30, Pos: 5},
		}},
		{"1/2", []token.Token{
			{Type: token.NumberTokenType, Text: "1", Value: 1, Pos: 0},
			{Type: token.SlashTokenType, Text: "/", Pos: 1},
			{Type: token.NumberTokenType, Text: "2", Value: 2, Pos: 2},
		}},
		{"1/**/2 /* a */ 3", []token.Token{
			{Type: token.NumberTokenType, Text: "1", Value: 1, Pos: 0},
			{Type: token.NumberTokenType, Text: "2", Value: 2, Pos: 5},
			{Type: token.NumberTokenType, Text: "3", Value: 3, Pos: 15},
		}},
	}
	for _, tt := range tests {
		got, err := lex(tt.input)
		if err != nil {
			t.Errorf("input %q: unexpected error %v", tt.input, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("input %q: expected %d tokens, got %d: %v", tt.input, len(tt.want), len(got), got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("input %q: token %d = %+v, want %+v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLexerHugeExponent(t *testing.T) {
	toks, err := lex("1e999")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(toks) != 1 || !math.IsInf(toks[0].Value, 1) {
		t.Errorf("expected a single +Inf number, got %v", toks)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
		pos   int
		token string
	}{
		{"1.2.3", KindNumeric, 0, "1.2.3"},
		{"1.", KindNumeric, 0, "1."},
		{"- 1", KindNumeric, 0, "-"},
		{"1 +", KindNumeric, 2, "+"},
		{"1+2", KindNumeric, 0, "1+2"},
		{"(1)", KindSyntax, 0, "("},
		{"1 )", KindSyntax, 2, ")"},
		{"1 # 2", KindSyntax, 2, "#"},
		{"1 é", KindSyntax, 2, "é"},
		{"50%x", KindNumeric, 0, "50%x"},
		{"0 50%x 0", KindNumeric, 2, "50%x"},
		{"10deg%", KindNumeric, 0, "10deg%"},
		{"1 \\41", KindSyntax, 2, "\\"},
	}
	for _, tt := range tests {
		_, err := lex(tt.input)
		if err == nil {
			t.Errorf("input %q: expected an error", tt.input)
			continue
		}
		if err.Kind != tt.kind || err.Pos != tt.pos || err.Token != tt.token {
			t.Errorf("input %q: got %s at %d %q, want %s at %d %q",
				tt.input, err.Kind, err.Pos, err.Token, tt.kind, tt.pos, tt.token)
		}
	}
}

func TestIsIdent(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"red", true},
		{"-webkit-x", true},
		{"display-p3", true},
		{"_a", true},
		{"", false},
		{"-", false},
		{"--x", false},
		{"3d", false},
		{"a b", false},
		{"a.b", false},
	}
	for _, tt := range tests {
		if got := isIdent(tt.input); got != tt.want {
			t.Errorf("isIdent(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
