package lexer

import "strings"

// Scanner is a lexical scanner for Brio source code.
//
// It owns a cursor into an immutable source buffer and produces exactly one
// token per NextToken call, on demand, in source order. The downstream parser
// drives the pull loop and must stop once an EOFToken has been returned;
// calling NextToken again after that point is not supported.
//
// Error conditions (malformed number literals, unterminated strings,
// unexpected characters) are reported as ErrorToken values rather than
// aborting the scan, so the consumer keeps full control over recovery and
// multiple-error collection.
//
// A Scanner processes a single buffer from position zero to its end and is
// not safe for concurrent use; create one scanner per buffer.
type Scanner struct {
	input string  // the complete source being scanned, never mutated
	file  FileRef // reference to the source file for error reporting

	startIndex int // byte index where the current token starts
	curIndex   int // current byte position in input
	startLine  int // line number where the current token starts
	line       int // running line counter, bumped on every newline consumed

	firstOnLine bool // a newline was crossed since the last produced token
}

// NewScanner creates a new Scanner for the given source file and input
// string. The cursor is positioned at the start of the buffer, on line 1.
func NewScanner(file FileRef, input string) *Scanner {
	return &Scanner{input: input, file: file, line: 1}
}

// NextToken advances past insignificant content (spaces, tabs, carriage
// returns, newlines, // line comments) and scans the next token.
func (s *Scanner) NextToken() Token {
	s.firstOnLine = false
	s.skipWhitespace()
	s.startIndex = s.curIndex
	s.startLine = s.line

	if s.atEnd() {
		return s.makeToken(EOFToken)
	}

	c := s.advance()

	if isDigit(c) {
		return s.scanNumber(c)
	}
	if isAlpha(c) {
		return s.scanIdentifier()
	}

	switch c {
	case '(':
		return s.makeToken(LeftParenToken)
	case ')':
		return s.makeToken(RightParenToken)
	case '{':
		return s.makeToken(LeftBraceToken)
	case '}':
		return s.makeToken(RightBraceToken)
	case '[':
		return s.makeToken(LeftBracketToken)
	case ']':
		return s.makeToken(RightBracketToken)
	case ',':
		return s.makeToken(CommaToken)
	case ':':
		return s.makeToken(ColonToken)
	case ';':
		return s.makeToken(SemicolonToken)
	case '?':
		return s.makeToken(TernaryToken)

	case '.':
		// longest match: '.' extends to '..' extends to '...'
		if s.match('.') {
			if s.match('.') {
				return s.makeToken(DotDotDotToken)
			}
			return s.makeToken(DotDotToken)
		}
		return s.makeToken(DotToken)

	case '+':
		switch {
		case s.match('='):
			return s.makeToken(PlusAssignToken)
		case s.match('+'):
			return s.makeToken(PlusPlusToken)
		}
		return s.makeToken(PlusToken)
	case '-':
		switch {
		case s.match('>'):
			return s.makeToken(LambdaToken)
		case s.match('-'):
			return s.makeToken(MinusMinusToken)
		case s.match('='):
			return s.makeToken(MinusAssignToken)
		}
		return s.makeToken(MinusToken)
	case '*':
		if s.match('=') {
			return s.makeToken(StarAssignToken)
		}
		return s.makeToken(StarToken)
	case '/':
		if s.match('=') {
			return s.makeToken(SlashAssignToken)
		}
		return s.makeToken(SlashToken)
	case '%':
		if s.match('=') {
			return s.makeToken(PercentAssignToken)
		}
		return s.makeToken(PercentToken)

	case '=':
		if s.match('=') {
			return s.makeToken(EqToken)
		}
		return s.makeToken(AssignToken)
	case '!':
		if s.match('=') {
			return s.makeToken(NotEqToken)
		}
		return s.makeToken(BangToken)
	case '<':
		if s.match('=') {
			return s.makeToken(LessEqToken)
		}
		return s.makeToken(LessToken)
	case '>':
		if s.match('=') {
			return s.makeToken(GreaterEqToken)
		}
		return s.makeToken(GreaterToken)

	case '"':
		return s.scanString()
	}

	return s.errorToken(errUnexpectedCharacter)
}

// LineStart returns the byte offset of the first character of the line
// containing the token's start, found by scanning backward to the nearest
// preceding newline. Used for diagnostic rendering of the offending line.
func (s *Scanner) LineStart(t Token) int {
	return lineStart(s.input, t.Offset)
}

// Pos returns the position of the token's start. Line and column are
// 1-indexed and both derive from the token's Offset, so they always name the
// same character; for an unterminated multi-line string Token.Line is the
// line scanning failed on, while Pos points at the opening quote.
func (s *Scanner) Pos(t Token) Pos {
	return Pos{
		File: s.file,
		Line: lineOf(s.input, t.Offset),
		Col:  t.Offset - s.LineStart(t) + 1,
	}
}

func lineStart(input string, offset int) int {
	i := offset
	for i > 0 && input[i-1] != '\n' {
		i--
	}
	return i
}

func lineOf(input string, offset int) int {
	return strings.Count(input[:offset], "\n") + 1
}

// skipWhitespace consumes spaces, tabs, carriage returns, newlines and //
// line comments. A single '/' not followed by another '/' is an operator,
// not whitespace, and terminates skipping.
func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.firstOnLine = true
			s.line++
			s.advance()
		case '/':
			if s.peekNext() != '/' {
				return
			}
			// A comment goes until the end of the line.
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	if kind, ok := keywords[s.input[s.startIndex:s.curIndex]]; ok {
		return s.makeToken(kind)
	}
	return s.makeToken(IdentifierToken)
}

// scanNumber assumes the leading digit c has been consumed. A leading '0'
// selects a base by the following character (x/b/o, case-insensitive);
// anything else falls through to the decimal rule, so `0`, `0.5` and `05`
// are all plain decimal literals.
func (s *Scanner) scanNumber(c byte) Token {
	if c != '0' {
		return s.scanDecimal()
	}

	switch s.peek() {
	case 'x', 'X':
		s.advance()
		digits := 0
		for isHexDigit(s.peek()) {
			s.advance()
			digits++
		}
		// Only the literal's length is checked, never the value it parses to.
		if digits < 1 || digits > MaxHexDigits {
			return s.errorToken(errHexDigits)
		}
		return s.makeToken(NumberToken)
	case 'b', 'B':
		s.advance()
		digits := 0
		for s.peek() == '0' || s.peek() == '1' {
			s.advance()
			digits++
		}
		if digits < 1 || digits > MaxBinaryDigits {
			return s.errorToken(errBinaryDigits)
		}
		return s.makeToken(NumberToken)
	case 'o', 'O':
		s.advance()
		digits := 0
		for s.peek() >= '0' && s.peek() <= '7' {
			s.advance()
			digits++
		}
		if digits < 1 || digits > MaxOctalDigits {
			return s.errorToken(errOctalDigits)
		}
		return s.makeToken(NumberToken)
	}

	return s.scanDecimal()
}

func (s *Scanner) scanDecimal() Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A fractional part needs at least one digit after the '.'; a bare
	// trailing dot is left for the dot operator family.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.makeToken(NumberToken)
}

// scanString assumes the opening quote has been consumed. A backslash passes
// the following byte through uninterpreted, so an escaped quote cannot close
// the literal; decoding the escapes is the downstream consumer's job.
// Newlines are allowed inside the literal and bump the line counter.
func (s *Scanner) scanString() Token {
	for !s.atEnd() && s.peek() != '"' {
		c := s.advance()
		if c == '\n' {
			s.line++
		}
		if c == '\\' && !s.atEnd() {
			s.advance()
		}
	}

	if s.atEnd() {
		return s.errorToken(errUnterminatedString)
	}

	s.advance() // the closing quote

	return s.makeToken(StringToken)
}

// makeToken builds a token spanning [startIndex, curIndex), carrying the line
// the token began on.
func (s *Scanner) makeToken(kind TokenKind) Token {
	return Token{
		Kind:        kind,
		Lexeme:      s.input[s.startIndex:s.curIndex],
		Offset:      s.startIndex,
		Line:        s.startLine,
		FirstOnLine: s.firstOnLine,
	}
}

// errorToken builds an ErrorToken whose Lexeme is the diagnostic message, at
// the line the scan failed on. Offset still refers to the offending source
// position so LineStart and Pos stay meaningful for error tokens too.
func (s *Scanner) errorToken(message string) Token {
	return Token{
		Kind:        ErrorToken,
		Lexeme:      message,
		Offset:      s.startIndex,
		Line:        s.line,
		FirstOnLine: s.firstOnLine,
	}
}

func (s *Scanner) atEnd() bool {
	return s.curIndex >= len(s.input)
}

func (s *Scanner) advance() byte {
	c := s.input[s.curIndex]
	s.curIndex++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.input[s.curIndex]
}

func (s *Scanner) peekNext() byte {
	if s.curIndex+1 >= len(s.input) {
		return 0
	}
	return s.input[s.curIndex+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.input[s.curIndex] != expected {
		return false
	}
	s.curIndex++
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
