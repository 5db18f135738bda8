package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to collect the whole token stream from input, EOF included
func collectTokens(input string) []Token {
	s := NewScanner("test.brio", input)
	var tokens []Token
	for {
		t := s.NextToken()
		tokens = append(tokens, t)
		if t.Kind == EOFToken {
			return tokens
		}
	}
}

func kindsOf(tokens []Token) []TokenKind {
	var kinds []TokenKind
	for _, t := range tokens {
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

func TestNextToken(t *testing.T) {
	test := func(input string, expectedKind TokenKind, expectedLexeme string, extraAssertion ...func(t *testing.T, tok Token)) func(*testing.T) {
		return func(t *testing.T) {
			s := NewScanner("test.brio", input)
			tok := s.NextToken()
			assert.Equal(t, expectedKind, tok.Kind)
			assert.Equal(t, expectedLexeme, tok.Lexeme)
			for _, a := range extraAssertion {
				a(t, tok)
			}
		}
	}

	t.Run("", test("", EOFToken, ""))
	t.Run("", test("   \t\r  ", EOFToken, ""))
	t.Run("", test("// just a comment", EOFToken, ""))
	t.Run("", test("// comment\n// more\n", EOFToken, ""))

	t.Run("", test("(", LeftParenToken, "("))
	t.Run("", test(")", RightParenToken, ")"))
	t.Run("", test("{", LeftBraceToken, "{"))
	t.Run("", test("}", RightBraceToken, "}"))
	t.Run("", test("[", LeftBracketToken, "["))
	t.Run("", test("]", RightBracketToken, "]"))
	t.Run("", test(",", CommaToken, ","))
	t.Run("", test(":", ColonToken, ":"))
	t.Run("", test(";", SemicolonToken, ";"))
	t.Run("", test("?", TernaryToken, "?"))

	// longest match on the dot family
	t.Run("", test(".", DotToken, "."))
	t.Run("", test("..", DotDotToken, ".."))
	t.Run("", test("...", DotDotDotToken, "..."))
	t.Run("", test("....", DotDotDotToken, "..."))

	t.Run("", test("+", PlusToken, "+"))
	t.Run("", test("+=", PlusAssignToken, "+="))
	t.Run("", test("++", PlusPlusToken, "++"))
	t.Run("", test("-", MinusToken, "-"))
	t.Run("", test("->", LambdaToken, "->"))
	t.Run("", test("--", MinusMinusToken, "--"))
	t.Run("", test("-=", MinusAssignToken, "-="))
	t.Run("", test("*", StarToken, "*"))
	t.Run("", test("*=", StarAssignToken, "*="))
	t.Run("", test("/ x", SlashToken, "/"))
	t.Run("", test("/=", SlashAssignToken, "/="))
	t.Run("", test("%", PercentToken, "%"))
	t.Run("", test("%=", PercentAssignToken, "%="))

	t.Run("", test("=", AssignToken, "="))
	t.Run("", test("==", EqToken, "=="))
	t.Run("", test("!", BangToken, "!"))
	t.Run("", test("!=", NotEqToken, "!="))
	t.Run("", test("<", LessToken, "<"))
	t.Run("", test("<=", LessEqToken, "<="))
	t.Run("", test(">", GreaterToken, ">"))
	t.Run("", test(">=", GreaterEqToken, ">="))

	// keyword vs identifier boundary; matching is exact on length and bytes
	t.Run("", test("for", ForToken, "for"))
	t.Run("", test("forest", IdentifierToken, "forest"))
	t.Run("", test("fro", IdentifierToken, "fro"))
	t.Run("", test("ret", RetToken, "ret"))
	t.Run("", test("return", IdentifierToken, "return"))
	t.Run("", test("ctor", CtorToken, "ctor"))
	t.Run("", test("Ctor", IdentifierToken, "Ctor"))
	t.Run("", test("true", TrueToken, "true"))
	t.Run("", test("nil", NilToken, "nil"))
	t.Run("", test("_private2", IdentifierToken, "_private2"))
	t.Run("", test("x", IdentifierToken, "x"))

	// decimal literals
	t.Run("", test("123", NumberToken, "123"))
	t.Run("", test("123.25", NumberToken, "123.25"))
	t.Run("", test("123. ", NumberToken, "123"))
	t.Run("", test("0", NumberToken, "0"))
	t.Run("", test("0.5", NumberToken, "0.5"))
	t.Run("", test("05", NumberToken, "05"))

	// base-prefixed literals; only the digit count is validated
	t.Run("", test("0xFF", NumberToken, "0xFF"))
	t.Run("", test("0Xff", NumberToken, "0Xff"))
	t.Run("", test("0x"+strings.Repeat("a", MaxHexDigits), NumberToken, "0x"+strings.Repeat("a", MaxHexDigits)))
	t.Run("", test("0x"+strings.Repeat("a", MaxHexDigits+1), ErrorToken, errHexDigits))
	t.Run("", test("0x", ErrorToken, errHexDigits))
	t.Run("", test("0xzz", ErrorToken, errHexDigits))
	t.Run("", test("0b1011", NumberToken, "0b1011"))
	t.Run("", test("0B1", NumberToken, "0B1"))
	t.Run("", test("0b"+strings.Repeat("1", MaxBinaryDigits), NumberToken, "0b"+strings.Repeat("1", MaxBinaryDigits)))
	t.Run("", test("0b"+strings.Repeat("1", MaxBinaryDigits+1), ErrorToken, errBinaryDigits))
	t.Run("", test("0b2", ErrorToken, errBinaryDigits))
	t.Run("", test("0o777", NumberToken, "0o777"))
	t.Run("", test("0O17", NumberToken, "0O17"))
	t.Run("", test("0o"+strings.Repeat("7", MaxOctalDigits), NumberToken, "0o"+strings.Repeat("7", MaxOctalDigits)))
	t.Run("", test("0o"+strings.Repeat("7", MaxOctalDigits+1), ErrorToken, errOctalDigits))
	t.Run("", test("0o8", ErrorToken, errOctalDigits))

	// string literals
	t.Run("", test(`"hello"`, StringToken, `"hello"`))
	t.Run("", test(`""`, StringToken, `""`))
	t.Run("", test(`"a\"b"`, StringToken, `"a\"b"`))
	t.Run("", test(`"tab\tend"`, StringToken, `"tab\tend"`))
	t.Run("", test("\"multi\nline\"", StringToken, "\"multi\nline\""))
	t.Run("", test(`"unterminated`, ErrorToken, errUnterminatedString))
	t.Run("", test("\"trailing\\", ErrorToken, errUnterminatedString))

	t.Run("", test("@", ErrorToken, errUnexpectedCharacter))
	t.Run("", test("#", ErrorToken, errUnexpectedCharacter))
	t.Run("", test("$", ErrorToken, errUnexpectedCharacter))
}

func TestScanner_LongestMatchSequences(t *testing.T) {
	tokens := collectTokens("...")
	require.Equal(t, []TokenKind{DotDotDotToken, EOFToken}, kindsOf(tokens))

	tokens = collectTokens("->")
	require.Equal(t, []TokenKind{LambdaToken, EOFToken}, kindsOf(tokens))

	tokens = collectTokens("....")
	require.Equal(t, []TokenKind{DotDotDotToken, DotToken, EOFToken}, kindsOf(tokens))

	// the range operator wins over a fractional part with no digit after '.'
	tokens = collectTokens("1..5")
	require.Equal(t, []TokenKind{NumberToken, DotDotToken, NumberToken, EOFToken}, kindsOf(tokens))
	assert.Equal(t, "1", tokens[0].Lexeme)
	assert.Equal(t, "5", tokens[2].Lexeme)
}

func TestScanner_ZeroThenLetter(t *testing.T) {
	// '0' followed by a letter that is no base prefix is a decimal zero,
	// and the letter starts the next token
	tokens := collectTokens("0a")
	require.Equal(t, []TokenKind{NumberToken, IdentifierToken, EOFToken}, kindsOf(tokens))
	assert.Equal(t, "0", tokens[0].Lexeme)
	assert.Equal(t, "a", tokens[1].Lexeme)
}

func TestScanner_SlashIsNotWhitespace(t *testing.T) {
	tokens := collectTokens("1 / 2")
	require.Equal(t, []TokenKind{NumberToken, SlashToken, NumberToken, EOFToken}, kindsOf(tokens))

	tokens = collectTokens("a // trailing comment")
	require.Equal(t, []TokenKind{IdentifierToken, EOFToken}, kindsOf(tokens))
}

func TestScanner_LineTracking(t *testing.T) {
	tokens := collectTokens("a\nb\n\nc")
	require.Equal(t, []TokenKind{IdentifierToken, IdentifierToken, IdentifierToken, EOFToken}, kindsOf(tokens))

	assert.Equal(t, 1, tokens[0].Line)
	assert.False(t, tokens[0].FirstOnLine)
	assert.Equal(t, 2, tokens[1].Line)
	assert.True(t, tokens[1].FirstOnLine)
	assert.Equal(t, 4, tokens[2].Line)
	assert.True(t, tokens[2].FirstOnLine)
}

func TestScanner_FirstOnLine(t *testing.T) {
	tokens := collectTokens("x y\nz w")
	require.Len(t, tokens, 5)
	assert.False(t, tokens[0].FirstOnLine)
	assert.False(t, tokens[1].FirstOnLine)
	assert.True(t, tokens[2].FirstOnLine)
	assert.False(t, tokens[3].FirstOnLine)
}

func TestScanner_MultilineStringLineNumbers(t *testing.T) {
	// the string begins on line 1; the identifier after it is on line 3
	tokens := collectTokens("\"a\nb\"\nc")
	require.Equal(t, []TokenKind{StringToken, IdentifierToken, EOFToken}, kindsOf(tokens))
	assert.Equal(t, "\"a\nb\"", tokens[0].Lexeme)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 3, tokens[1].Line)
	assert.True(t, tokens[1].FirstOnLine)
}

func TestScanner_UnterminatedStringThenEOF(t *testing.T) {
	s := NewScanner("test.brio", "\"first\nsecond")
	tok := s.NextToken()
	assert.Equal(t, ErrorToken, tok.Kind)
	assert.Equal(t, errUnterminatedString, tok.Lexeme)
	// the error is reported at the line scanning failed on, while Pos stays
	// anchored to the opening quote
	assert.Equal(t, 2, tok.Line)
	assert.Equal(t, Pos{File: "test.brio", Line: 1, Col: 1}, s.Pos(tok))

	tok = s.NextToken()
	assert.Equal(t, EOFToken, tok.Kind)
}

func TestScanner_ErrorsDoNotAbortScanning(t *testing.T) {
	tokens := collectTokens("let a = @ + 1")
	require.Equal(t, []TokenKind{
		LetToken, IdentifierToken, AssignToken, ErrorToken, PlusToken, NumberToken, EOFToken,
	}, kindsOf(tokens))
	assert.Equal(t, errUnexpectedCharacter, tokens[3].Lexeme)
}

func TestScanner_Determinism(t *testing.T) {
	input := `
class Point {
	ctor(x, y) {
		this.x = x
		this.y = y
	}

	fn dist() -> this.x * this.x + this.y * this.y
}

let p = Point(0x1F, 2.5)
print p.dist()
`
	first := collectTokens(input)
	second := collectTokens(input)
	require.Equal(t, first, second)
	assert.Equal(t, EOFToken, first[len(first)-1].Kind)
}

func TestScanner_LineStartAndPos(t *testing.T) {
	input := "let x = 1\nlet y = 2"
	s := NewScanner("test.brio", input)

	var yTok Token
	for {
		tok := s.NextToken()
		if tok.Kind == EOFToken {
			break
		}
		if tok.Lexeme == "y" {
			yTok = tok
		}
	}

	require.Equal(t, IdentifierToken, yTok.Kind)
	assert.Equal(t, 10, s.LineStart(yTok))
	assert.Equal(t, Pos{File: "test.brio", Line: 2, Col: 5}, s.Pos(yTok))

	// tokens on the first line resolve to the start of the buffer
	s2 := NewScanner("test.brio", input)
	first := s2.NextToken()
	assert.Equal(t, 0, s2.LineStart(first))
	assert.Equal(t, Pos{File: "test.brio", Line: 1, Col: 1}, s2.Pos(first))
}

func TestScanner_EOFCarriesPosition(t *testing.T) {
	s := NewScanner("test.brio", "a\n")
	s.NextToken()
	eof := s.NextToken()
	require.Equal(t, EOFToken, eof.Kind)
	assert.Equal(t, "", eof.Lexeme)
	assert.Equal(t, 2, eof.Line)
	assert.Equal(t, 2, eof.Offset)
}

func TestScanner_IndependentInstances(t *testing.T) {
	a := NewScanner("a.brio", "1 2 3")
	b := NewScanner("b.brio", "x y")

	assert.Equal(t, "1", a.NextToken().Lexeme)
	assert.Equal(t, "x", b.NextToken().Lexeme)
	assert.Equal(t, "2", a.NextToken().Lexeme)
	assert.Equal(t, "y", b.NextToken().Lexeme)
}
