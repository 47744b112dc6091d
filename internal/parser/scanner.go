package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// tabColumns is how many columns a tab advances. Kept at one so reported
// columns always count characters, independent of editor tab stops.
const tabColumns = 1

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	errors      []ScanError
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanTokens tokenizes the whole input. It never stops at the first fault:
// each illegal construct yields one ScanError and scanning resumes at the
// next safe boundary, so the caller gets a single coherent report.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case '[':
		s.addToken(LEFT_BRACKET)
	case ']':
		s.addToken(RIGHT_BRACKET)
	case ',':
		s.addToken(COMMA)
	case ';':
		s.addToken(SEMICOLON)
	case '?':
		s.addToken(QUESTION)
	case ':':
		s.addToken(COLON)
	case '%':
		s.addToken(PERCENT)

	// Operators with multi-character variants, longest match first
	case '+':
		s.scanPlusOperator()
	case '-':
		s.scanMinusOperator()
	case '*':
		s.scanStarOperator()
	case '/':
		s.scanSlashOperator()
	case '!':
		s.scanBangOperator()
	case '=':
		s.scanEqualOperator()
	case '&':
		s.scanAmpersandOperator()
	case '|':
		s.scanPipeOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()

	// Whitespace (consumed for position bookkeeping, no token)
	case ' ', '\r', '\t':
	case '\n':
		// Handled in advance()

	case '"':
		s.scanString()
	case '\'':
		s.scanChar()

	case '.':
		if isDigit(s.peek()) {
			s.scanNumber()
		} else {
			s.reportError(UnknownCharacter, fmt.Sprintf("Unexpected character: %q", c))
		}

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanPlusOperator() {
	if s.matchNext('+') {
		s.addToken(INCREMENT)
	} else if s.matchNext('=') {
		s.addToken(PLUS_EQUAL)
	} else {
		s.addToken(PLUS)
	}
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('-') {
		s.addToken(DECREMENT)
	} else if s.matchNext('=') {
		s.addToken(MINUS_EQUAL)
	} else {
		s.addToken(MINUS)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('=') {
		s.addToken(STAR_EQUAL)
	} else {
		s.addToken(STAR)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('=') {
		s.addToken(SLASH_EQUAL)
	} else if s.matchNext('/') {
		s.scanSingleLineComment()
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanBangOperator() {
	if s.matchNext('=') {
		s.addToken(BANG_EQUAL)
	} else {
		s.addToken(BANG)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(EQUAL_EQUAL)
	} else {
		s.addToken(EQUAL)
	}
}

func (s *Scanner) scanAmpersandOperator() {
	if s.matchNext('&') {
		s.addToken(AND)
	} else {
		s.reportError(UnknownCharacter, "Unexpected character: '&' (did you mean '&&'?)")
	}
}

func (s *Scanner) scanPipeOperator() {
	if s.matchNext('|') {
		s.addToken(OR)
	} else {
		s.reportError(UnknownCharacter, "Unexpected character: '|' (did you mean '||'?)")
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('=') {
		s.addToken(LESS_EQUAL)
	} else {
		s.addToken(LESS)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('=') {
		s.addToken(GREATER_EQUAL)
	} else {
		s.addToken(GREATER)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(UnknownCharacter, fmt.Sprintf("Unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	switch c {
	case '\n':
		s.line++
		s.column = 1
	case '\t':
		s.column += tabColumns
	default:
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenLexeme(tokenType, s.source[s.start:s.current])
}

func (s *Scanner) addTokenLexeme(tokenType TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Length: s.current - s.start,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(kind LexErrorKind, message string) {
	s.reportErrorAt(kind, message, Position{Line: s.startLine, Column: s.startColumn, Offset: s.start}, s.current-s.start)
}

func (s *Scanner) reportErrorAt(kind LexErrorKind, message string, pos Position, length int) {
	if length < 1 {
		length = 1
	}
	s.errors = append(s.errors, ScanError{
		Kind:     kind,
		Message:  message,
		Position: pos,
		Length:   length,
	})
}

// recoverToBoundary skips to the next whitespace or recognized
// single-character delimiter so one illegal construct yields one error.
func (s *Scanner) recoverToBoundary() {
	for !s.isAtEnd() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n', ';', ',', '(', ')', '{', '}', '[', ']':
			return
		}
		s.advance()
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	s.addToken(lookupIdentifier(text))
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

// scanNumber handles integers and floats. An integer is 0 or a non-zero
// digit followed by digits. A float needs a decimal point with at least one
// fractional digit, a leading point with digits, or an exponent suffix.
// Anything number-shaped that breaks those rules (leading zeros, multiple
// points, a bare exponent) is one InvalidNumberFormat error, never a
// silently truncated token.
func (s *Scanner) scanNumber() {
	isFloat := s.source[s.start] == '.'
	malformed := ""

	for isDigit(s.peek()) {
		s.advance()
	}

	if !isFloat && s.peek() == '.' && isDigit(s.peekNext()) {
		isFloat = true
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// A second decimal point makes the whole run malformed.
	if s.peek() == '.' && (isDigit(s.peekNext()) || s.peekNext() == '.') {
		malformed = "number has multiple decimal points"
		s.advance()
		for isDigit(s.peek()) || s.peek() == '.' {
			s.advance()
		}
	} else if s.peek() == '.' && isFloat {
		malformed = "number has multiple decimal points"
		s.advance()
	} else if s.peek() == '.' {
		// "1." or "1.e5": a point with nothing fractional behind it.
		malformed = "float literal needs a digit after the decimal point"
		s.advance()
	}

	if s.peek() == 'e' || s.peek() == 'E' {
		s.advance()
		isFloat = true
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if !isDigit(s.peek()) {
			if malformed == "" {
				malformed = "malformed exponent: expected digits"
			}
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.source[s.start:s.current]

	if malformed == "" && !isFloat && len(text) > 1 && text[0] == '0' {
		malformed = "integer literal has leading zero"
	}
	if malformed == "" && isFloat && strings.HasSuffix(text, ".") {
		malformed = "float literal needs a digit after the decimal point"
	}
	if malformed == "" && isAlpha(s.peek()) {
		malformed = "unexpected letter in number literal"
	}

	if malformed != "" {
		s.recoverToBoundary()
		s.reportError(InvalidNumberFormat, fmt.Sprintf("Invalid number literal %q: %s", s.source[s.start:s.current], malformed))
		return
	}

	if isFloat {
		s.addToken(FLOAT_LITERAL)
	} else {
		s.addToken(INT_LITERAL)
	}
}

// scanString reads a double-quoted literal, decoding the escape set
// \\ \" \n \t \r \0 \' and \xHH. The token lexeme is the decoded value.
func (s *Scanner) scanString() {
	value, terminated := s.scanQuotedBody('"')
	if !terminated {
		s.reportError(UnterminatedString, "Unterminated string literal")
		return
	}
	s.addTokenLexeme(STRING_LITERAL, value)
}

// scanChar reads a single-quoted literal with the same escapes as strings,
// requiring exactly one character.
func (s *Scanner) scanChar() {
	value, terminated := s.scanQuotedBody('\'')
	if !terminated {
		s.reportError(UnterminatedChar, "Unterminated character literal")
		return
	}
	if len(value) != 1 {
		detail := "empty character literal"
		if len(value) > 1 {
			detail = "character literal must contain exactly one character"
		}
		s.reportError(UnterminatedChar, detail)
		return
	}
	s.addTokenLexeme(CHAR_LITERAL, value)
}

// scanQuotedBody consumes a quoted body after the opening quote has been
// advanced over. It stops at the closing quote, an unescaped newline, or the
// end of input; the latter two leave the literal unterminated.
func (s *Scanner) scanQuotedBody(quote byte) (string, bool) {
	var value strings.Builder

	for !s.isAtEnd() && s.peek() != quote {
		c := s.peek()
		if c == '\n' {
			return "", false
		}
		if c == '\\' {
			s.advance()
			value.WriteByte(s.scanEscape())
			continue
		}
		value.WriteByte(c)
		s.advance()
	}

	if s.isAtEnd() {
		return "", false
	}
	s.advance() // closing quote
	return value.String(), true
}

// scanEscape decodes one escape sequence after the backslash. An unknown
// escape or a bad \xHH pair is reported as InvalidEscapeSequence and the
// offending character is kept literally so scanning continues.
func (s *Scanner) scanEscape() byte {
	if s.isAtEnd() || s.peek() == '\n' {
		return '\\'
	}
	escPos := Position{Line: s.line, Column: s.column - 1, Offset: s.current - 1}
	c := s.peek()
	s.advance()
	switch c {
	case '\\':
		return '\\'
	case '"':
		return '"'
	case '\'':
		return '\''
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 'x':
		hi := s.peek()
		lo := s.peekNext()
		if !isHexDigit(hi) || !isHexDigit(lo) {
			s.reportErrorAt(InvalidEscapeSequence, "Invalid escape sequence: \\x needs exactly two hex digits", escPos, 2)
			return 'x'
		}
		s.advance()
		s.advance()
		return hexValue(hi)<<4 | hexValue(lo)
	default:
		s.reportErrorAt(InvalidEscapeSequence, fmt.Sprintf("Invalid escape sequence: \\%c", c), escPos, 2)
		return c
	}
}

func hexValue(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func (s *Scanner) scanSingleLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}
