package lexer

import "fmt"

// TokenKind represents the kind of a lexical token. The enumeration is
// closed: every token the scanner produces carries exactly one of these.
type TokenKind int

const (
	OrToken  TokenKind = iota + 1 // 'or'
	AndToken                      // 'and'

	EqToken        // '=='
	NotEqToken     // '!='
	GreaterToken   // '>'
	LessToken      // '<'
	GreaterEqToken // '>='
	LessEqToken    // '<='

	PlusToken    // '+'
	MinusToken   // '-'
	StarToken    // '*'
	SlashToken   // '/'
	PercentToken // '%'
	BangToken    // '!'
	TernaryToken // '?'

	PlusPlusToken   // '++'
	MinusMinusToken // '--'

	DotToken          // '.'
	DotDotToken       // '..'
	DotDotDotToken    // '...'
	CommaToken        // ','
	ColonToken        // ':'
	SemicolonToken    // ';'
	AssignToken       // '='
	LeftParenToken    // '('
	RightParenToken   // ')'
	LeftBraceToken    // '{'
	RightBraceToken   // '}'
	LeftBracketToken  // '['
	RightBracketToken // ']'

	PlusAssignToken    // '+='
	MinusAssignToken   // '-='
	StarAssignToken    // '*='
	SlashAssignToken   // '/='
	PercentAssignToken // '%='

	LambdaToken // '->'

	TrueToken   // 'true'
	FalseToken  // 'false'
	NilToken    // 'nil'
	IfToken     // 'if'
	ImportToken // 'import'
	FromToken   // 'from'
	ElseToken   // 'else'
	WhileToken  // 'while'
	ForToken    // 'for'
	BreakToken  // 'break'
	SkipToken   // 'skip'
	ClassToken  // 'class'
	StaticToken // 'static'
	ThisToken   // 'this'
	PrintToken  // 'print'
	FnToken     // 'fn'
	RetToken    // 'ret'
	LetToken    // 'let'
	ConstToken  // 'const'
	CtorToken   // 'ctor'
	BaseToken   // 'base'
	TryToken    // 'try'
	ThrowToken  // 'throw'
	CatchToken  // 'catch'
	IsToken     // 'is'
	InToken     // 'in'

	IdentifierToken // [a-zA-Z_] [a-zA-Z_0-9]*
	NumberToken     // decimal or 0x/0b/0o base-prefixed literal
	StringToken     // '"' ... '"', may span lines
	OtherToken      // placeholder for downstream use, never produced directly
	ErrorToken
	EOFToken
)

// Token is one lexical unit of a source buffer. Lexeme is a substring of the
// original source; the source must outlive every token derived from it. For
// ErrorToken the Lexeme is the diagnostic message instead, while Offset still
// points into the source at the offending position.
type Token struct {
	Kind        TokenKind
	Lexeme      string
	Offset      int  // byte offset of the token's start in the source
	Line        int  // 1-based line the token begins on
	FirstOnLine bool // no other token since the most recent line break
}

// IsKeyword reports whether the kind is one of the reserved words, including
// the true/false/nil literal keywords and the 'and'/'or' operators.
func (k TokenKind) IsKeyword() bool {
	return k == OrToken || k == AndToken || (k >= TrueToken && k <= InToken)
}

func (k TokenKind) GoString() string {
	return tokenToDescription[k]
}

func (k TokenKind) String() string {
	return tokenToDescription[k]
}

func init() {
	// make sure we panic if a description isn't declared
	for k := OrToken; k <= EOFToken; k++ {
		if tokenToDescription[k] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var tokenToDescription = map[TokenKind]string{
	OrToken:  "OrToken",
	AndToken: "AndToken",

	EqToken:        "EqToken",
	NotEqToken:     "NotEqToken",
	GreaterToken:   "GreaterToken",
	LessToken:      "LessToken",
	GreaterEqToken: "GreaterEqToken",
	LessEqToken:    "LessEqToken",

	PlusToken:    "PlusToken",
	MinusToken:   "MinusToken",
	StarToken:    "StarToken",
	SlashToken:   "SlashToken",
	PercentToken: "PercentToken",
	BangToken:    "BangToken",
	TernaryToken: "TernaryToken",

	PlusPlusToken:   "PlusPlusToken",
	MinusMinusToken: "MinusMinusToken",

	DotToken:          "DotToken",
	DotDotToken:       "DotDotToken",
	DotDotDotToken:    "DotDotDotToken",
	CommaToken:        "CommaToken",
	ColonToken:        "ColonToken",
	SemicolonToken:    "SemicolonToken",
	AssignToken:       "AssignToken",
	LeftParenToken:    "LeftParenToken",
	RightParenToken:   "RightParenToken",
	LeftBraceToken:    "LeftBraceToken",
	RightBraceToken:   "RightBraceToken",
	LeftBracketToken:  "LeftBracketToken",
	RightBracketToken: "RightBracketToken",

	PlusAssignToken:    "PlusAssignToken",
	MinusAssignToken:   "MinusAssignToken",
	StarAssignToken:    "StarAssignToken",
	SlashAssignToken:   "SlashAssignToken",
	PercentAssignToken: "PercentAssignToken",

	LambdaToken: "LambdaToken",

	TrueToken:   "TrueToken",
	FalseToken:  "FalseToken",
	NilToken:    "NilToken",
	IfToken:     "IfToken",
	ImportToken: "ImportToken",
	FromToken:   "FromToken",
	ElseToken:   "ElseToken",
	WhileToken:  "WhileToken",
	ForToken:    "ForToken",
	BreakToken:  "BreakToken",
	SkipToken:   "SkipToken",
	ClassToken:  "ClassToken",
	StaticToken: "StaticToken",
	ThisToken:   "ThisToken",
	PrintToken:  "PrintToken",
	FnToken:     "FnToken",
	RetToken:    "RetToken",
	LetToken:    "LetToken",
	ConstToken:  "ConstToken",
	CtorToken:   "CtorToken",
	BaseToken:   "BaseToken",
	TryToken:    "TryToken",
	ThrowToken:  "ThrowToken",
	CatchToken:  "CatchToken",
	IsToken:     "IsToken",
	InToken:     "InToken",

	IdentifierToken: "IdentifierToken",
	NumberToken:     "NumberToken",
	StringToken:     "StringToken",
	OtherToken:      "OtherToken",
	ErrorToken:      "ErrorToken",
	EOFToken:        "EOFToken",
}

// Brio reserved words. A scanned identifier span is a keyword only on an
// exact, case-sensitive match; any strict prefix or extension is a plain
// identifier. Note the 'ret' lexeme for the return keyword.
var keywords = map[string]TokenKind{
	"and":    AndToken,
	"or":     OrToken,
	"true":   TrueToken,
	"false":  FalseToken,
	"nil":    NilToken,
	"if":     IfToken,
	"import": ImportToken,
	"from":   FromToken,
	"else":   ElseToken,
	"while":  WhileToken,
	"for":    ForToken,
	"break":  BreakToken,
	"skip":   SkipToken,
	"class":  ClassToken,
	"static": StaticToken,
	"this":   ThisToken,
	"print":  PrintToken,
	"fn":     FnToken,
	"ret":    RetToken,
	"let":    LetToken,
	"const":  ConstToken,
	"ctor":   CtorToken,
	"base":   BaseToken,
	"try":    TryToken,
	"throw":  ThrowToken,
	"catch":  CatchToken,
	"is":     IsToken,
	"in":     InToken,
}

// Digit-count bounds for base-prefixed number literals. Numbers are backed by
// a double, so the mantissa's 53 bits set the limits: hexadecimal digits
// carry 4 bits each and the 13th digit would only partially fit, leaving 12
// fully precise digits; binary digits carry 1 bit each for 53; octal digits
// carry 3 bits each for floor(53/3) = 17. The scanner validates the digit
// count only, never the literal's value.
const (
	MaxHexDigits    = 12
	MaxBinaryDigits = 53
	MaxOctalDigits  = 17
)

var (
	errHexDigits           = fmt.Sprintf("Hexadecimal number literal must have at least one digit/letter and at most %d.", MaxHexDigits)
	errBinaryDigits        = fmt.Sprintf("Binary number literal must have at least one digit and at most %d.", MaxBinaryDigits)
	errOctalDigits         = fmt.Sprintf("Octal number literal must have at least one digit and at most %d.", MaxOctalDigits)
	errUnterminatedString  = "Unterminated string."
	errUnexpectedCharacter = "Unexpected character."
)
