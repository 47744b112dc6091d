package parser

import "simplang/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume expects one specific token. When it is absent a MissingToken
// diagnostic is recorded; the unexpected token is only skipped when it is
// not itself a synchronization point, so recovery can resume right on it.
func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.missingToken(tt, message)
	illegal := Token{Type: ILLEGAL, Position: p.peek().Position}
	if !p.atSyncPoint() {
		p.advance()
	}
	return illegal
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// atSyncPoint reports whether the current token is one the panic-mode
// recovery can safely resume from.
func (p *Parser) atSyncPoint() bool {
	switch p.peek().Type {
	case SEMICOLON, LEFT_BRACE, RIGHT_BRACE, EOF:
		return true
	}
	return p.peek().Type.IsStatementStart()
}

func (p *Parser) missingToken(expected TokenType, message string) {
	if p.isAtEnd() {
		p.errorEOF(message)
		return
	}
	if p.duplicateOfLast(MissingToken) {
		return
	}
	p.errors = append(p.errors, ParseError{
		Kind:     MissingToken,
		Message:  message,
		Position: p.peek().Position,
		Expected: []TokenType{expected},
		Found:    p.peek().Type,
	})
}

func (p *Parser) errorAtCurrent(message string, expected ...TokenType) {
	if p.isAtEnd() {
		p.errorEOF(message)
		return
	}
	if p.duplicateOfLast(UnexpectedToken) {
		return
	}
	p.errors = append(p.errors, ParseError{
		Kind:     UnexpectedToken,
		Message:  message,
		Position: p.peek().Position,
		Expected: expected,
		Found:    p.peek().Type,
	})
}

// duplicateOfLast reports whether the previous diagnostic already covers
// the current token with the same kind. Error paths that unwind through
// several productions would otherwise restate one fault per level.
func (p *Parser) duplicateOfLast(kind SyntaxErrorKind) bool {
	if len(p.errors) == 0 {
		return false
	}
	last := p.errors[len(p.errors)-1]
	return last.Kind == kind && last.Position == p.peek().Position
}

// errorEOF reports running out of input. Only the first such fault is
// recorded: everything after it would restate the same truncation.
func (p *Parser) errorEOF(message string) {
	if p.reportedEOF {
		return
	}
	p.reportedEOF = true
	p.errors = append(p.errors, ParseError{
		Kind:     UnexpectedEOF,
		Message:  message + " (unexpected end of input)",
		Position: p.peek().Position,
		Found:    EOF,
	})
}

// synchronize discards tokens until a statement boundary. Each step
// consumes at least one token, so recovery always terminates, and one
// contiguous run of unparseable tokens yields at most one diagnostic.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.current > 0 && p.previous().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case LEFT_BRACE, RIGHT_BRACE:
			return
		}
		if p.peek().Type.IsStatementStart() {
			return
		}
		p.advance()
	}
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

// makeEndPos derives the position one past a token from its raw source
// length. Decoded lexemes of quoted literals are shorter than their
// source, so len(Lexeme) would land inside the literal.
func (p *Parser) makeEndPos(tok Token) ast.Position {
	length := tok.Length
	if length == 0 {
		length = len(tok.Lexeme)
	}
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + length,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + length,
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{Value: "error"}, false
	}
	return p.makeIdent(tok), true
}

// enterNesting bounds recursion depth so adversarial nesting fails with a
// diagnostic instead of exhausting the call stack. The limit is reported
// once per parse.
func (p *Parser) enterNesting() bool {
	p.depth++
	if p.depth <= maxNestingDepth {
		return true
	}
	if !p.reportedDepth {
		p.reportedDepth = true
		p.errors = append(p.errors, ParseError{
			Kind:     NestingTooDeep,
			Message:  "nesting too deep",
			Position: p.peek().Position,
			Found:    p.peek().Type,
		})
	}
	return false
}

func (p *Parser) leaveNesting() {
	p.depth--
}
