package parser

// regenerate tokentype_string.go with `go generate ./internal/parser`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INT_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	CHAR_LITERAL

	// Keywords
	AGR    // if
	VARNA  // else
	JABTAK // while
	TABTAK // for
	DO
	BREAK
	CONTINUE
	RETURN
	DIKHAO // print
	LIKHO  // input

	// Type keywords
	INT
	FLOAT
	BOOL
	STRING
	CHAR

	// Boolean literals
	TRUE
	FALSE

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	BANG
	EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	OR
	INCREMENT
	DECREMENT
	QUESTION
	COLON

	// Assignment operators
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL

	// Separators
	COMMA
	SEMICOLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Lexeme   string // decoded value for string/char literals, raw text otherwise
	Length   int    // raw source length, which may exceed len(Lexeme) for quoted literals
	Position Position
}

// IsTypeKeyword reports whether the token type starts a declaration.
func (t TokenType) IsTypeKeyword() bool {
	switch t {
	case INT, FLOAT, BOOL, STRING, CHAR:
		return true
	default:
		return false
	}
}

// IsStatementStart reports whether a token of this type can begin a
// statement. The synchronizer uses this set to find a safe resume point.
func (t TokenType) IsStatementStart() bool {
	if t.IsTypeKeyword() {
		return true
	}
	switch t {
	case AGR, JABTAK, TABTAK, DO, BREAK, CONTINUE, RETURN, DIKHAO, LIKHO:
		return true
	default:
		return false
	}
}
