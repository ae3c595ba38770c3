package css

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	csslex "github.com/tdewolff/parse/v2/css"

	"csscolor/token"
)

// lexer splits the argument list of a color function into tokens. It runs the
// CSS syntax lexer over input[start:end] and maps its tokens onto token.Token,
// so that token positions are offsets into the original string.
type lexer struct {
	input string
	start int
	end   int
}

// rawToken is one token from the CSS lexer at its byte offset in input.
type rawToken struct {
	tt   csslex.TokenType
	text string
	pos  int
}

func newLexer(input string, start, end int) *lexer {
	return &lexer{input: input, start: start, end: end}
}

// scan runs the CSS lexer to the end of the range. Tokens are contiguous, so
// each offset is the sum of the lengths before it.
func (l *lexer) scan() ([]rawToken, *ParseError) {
	z := csslex.NewLexer(parse.NewInputString(l.input[l.start:l.end]))
	var raw []rawToken
	pos := l.start
	for {
		tt, data := z.Next()
		if tt == csslex.ErrorToken || len(data) == 0 {
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) || pos < l.end {
				return nil, l.unexpected(pos)
			}
			return raw, nil
		}
		if pos+len(data) > l.end {
			return nil, l.unexpected(pos)
		}
		raw = append(raw, rawToken{tt: tt, text: l.input[pos : pos+len(data)], pos: pos})
		pos += len(data)
	}
}

func (l *lexer) tokens() ([]token.Token, *ParseError) {
	raw, err := l.scan()
	if err != nil {
		return nil, err
	}

	var toks []token.Token
	for i, r := range raw {
		switch r.tt {
		case csslex.WhitespaceToken, csslex.CommentToken:
		case csslex.CommaToken:
			toks = append(toks, token.Token{Type: token.CommaTokenType, Text: r.text, Pos: r.pos})
		case csslex.NumberToken, csslex.PercentageToken, csslex.DimensionToken:
			if i+1 < len(raw) && !separates(raw[i+1]) {
				return nil, l.malformed(raw, i)
			}
			tok, err := l.numeric(r)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case csslex.IdentToken:
			if !isIdent(r.text) {
				return nil, l.unexpected(r.pos + firstNonName(r.text))
			}
			toks = append(toks, token.Token{Type: token.IdentTokenType, Text: strings.ToLower(r.text), Pos: r.pos})
		case csslex.DelimToken:
			switch r.text {
			case "/":
				toks = append(toks, token.Token{Type: token.SlashTokenType, Text: r.text, Pos: r.pos})
			case "+", "-", ".":
				return nil, l.malformed(raw, i)
			default:
				return nil, l.unexpected(r.pos)
			}
		case csslex.LeftParenthesisToken, csslex.FunctionToken:
			open := r.pos + len(r.text) - 1
			return nil, newError(l.input, KindSyntax, open, "(", "nested parentheses are not allowed")
		case csslex.RightParenthesisToken:
			return nil, newError(l.input, KindSyntax, r.pos, ")", "unbalanced ')'")
		default:
			return nil, l.unexpected(r.pos)
		}
	}
	return toks, nil
}

func (l *lexer) numeric(r rawToken) (token.Token, *ParseError) {
	num, unit := r.text, ""
	typ := token.NumberTokenType
	switch r.tt {
	case csslex.PercentageToken:
		num = r.text[:len(r.text)-1]
		typ = token.PercentageTokenType
	case csslex.DimensionToken:
		n := parse.Number([]byte(r.text))
		if n == 0 || n == len(r.text) {
			return token.Token{}, newError(l.input, KindNumeric, r.pos, r.text, "malformed number %q", r.text)
		}
		num, unit = r.text[:n], strings.ToLower(r.text[n:])
		typ = token.DimensionTokenType
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token.Token{}, newError(l.input, KindNumeric, r.pos, r.text, "malformed number %q", r.text)
	}
	return token.Token{Type: typ, Text: r.text, Value: value, Unit: unit, Pos: r.pos}, nil
}

// malformed reports raw[i] together with everything glued to it up to the
// next separator, so the error quotes the whole literal.
func (l *lexer) malformed(raw []rawToken, i int) *ParseError {
	j := i + 1
	for j < len(raw) && !separates(raw[j]) {
		j++
	}
	last := raw[j-1]
	text := l.input[raw[i].pos : last.pos+len(last.text)]
	return newError(l.input, KindNumeric, raw[i].pos, text, "malformed number %q", text)
}

func (l *lexer) unexpected(pos int) *ParseError {
	if pos >= l.end {
		return newError(l.input, KindSyntax, pos, "", "unexpected end of input")
	}
	r, size := utf8.DecodeRuneInString(l.input[pos:l.end])
	return newError(l.input, KindSyntax, pos, l.input[pos:pos+size], "unexpected character %q", r)
}

// separates reports whether r may directly follow a number.
func separates(r rawToken) bool {
	switch r.tt {
	case csslex.WhitespaceToken, csslex.CommentToken, csslex.CommaToken, csslex.RightParenthesisToken:
		return true
	case csslex.DelimToken:
		return r.text == "/"
	}
	return false
}

// firstNonName is the offset of the first byte of an identifier that is not
// a plain ASCII name character, such as an escape or a non-ASCII letter.
func firstNonName(s string) int {
	for i := 0; i < len(s); i++ {
		if !isNameChar(s[i]) {
			return i
		}
	}
	return 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isNameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c) || c == '-'
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i++
	}
	if i >= len(s) || !isNameStart(s[i]) {
		return false
	}
	for ; i < len(s); i++ {
		if !isNameChar(s[i]) {
			return false
		}
	}
	return true
}
