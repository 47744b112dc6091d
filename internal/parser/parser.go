package parser

import "simplang/internal/ast"

// maxNestingDepth bounds statement/expression recursion. Source nesting
// beyond this emits a NestingTooDeep diagnostic instead of growing the
// call stack without bound.
const maxNestingDepth = 256

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError

	depth         int
	reportedDepth bool
	reportedEOF   bool
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseProgram parses the whole token sequence into a Program. Malformed
// statements are reported and skipped via panic-mode recovery; the
// returned tree holds every statement that did parse, so a partial AST is
// still available next to a non-empty error list.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek()
	var statements []ast.Stmt

	for !p.isAtEnd() {
		before := p.current
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
		// A malformed statement must still consume input, or the loop
		// would revisit the same token forever.
		if p.current == before {
			p.errorAtCurrent("expected statement")
			p.advance()
		}
	}

	return &ast.Program{
		Pos:        p.makePos(start),
		EndPos:     p.makePos(p.peek()),
		Statements: statements,
	}
}

// parseStatement dispatches on the first token. A nil return means the
// statement was malformed and already reported.
func (p *Parser) parseStatement() ast.Stmt {
	if !p.enterNesting() {
		p.synchronize()
		p.leaveNesting()
		return nil
	}
	defer p.leaveNesting()

	switch {
	case p.peek().Type.IsTypeKeyword():
		return p.parseDeclaration()
	case p.check(AGR):
		return p.parseIfStmt()
	case p.check(JABTAK):
		return p.parseWhileStmt()
	case p.check(DO):
		return p.parseDoWhileStmt()
	case p.check(TABTAK):
		return p.parseForStmt()
	case p.check(BREAK):
		start := p.advance()
		end := p.consume(SEMICOLON, "expected ';' after 'break'")
		return &ast.BreakStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end)}
	case p.check(CONTINUE):
		start := p.advance()
		end := p.consume(SEMICOLON, "expected ';' after 'continue'")
		return &ast.ContinueStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end)}
	case p.check(RETURN):
		return p.parseReturnStmt()
	case p.check(DIKHAO):
		return p.parsePrintStmt()
	case p.check(LIKHO):
		return p.parseInputStmt()
	case p.check(LEFT_BRACE):
		return p.parseBlock()
	case p.check(SEMICOLON):
		// Stray semicolon: consume without producing a node so recovery
		// that stopped on a ';' does not cascade.
		p.advance()
		return nil
	case p.check(RIGHT_BRACE):
		// A '}' with no open block. Block bodies stop before their
		// closing brace, so reaching one here means it is unmatched;
		// consume it or recovery would stall on it.
		p.errorAtCurrent("unexpected '}' without matching '{'")
		p.advance()
		return nil
	default:
		return p.parseExprOrAssignStmt()
	}
}

// parseExprOrAssignStmt handles statements that start with an expression.
// One token of lookahead past the parsed target separates an assignment
// from a bare expression statement.
func (p *Parser) parseExprOrAssignStmt() ast.Stmt {
	expr := p.parseExpr()

	if _, bad := expr.(*ast.BadExpr); bad {
		p.synchronize()
		return nil
	}

	if isAssignTarget(expr) && isAssignOperator(p.peek()) {
		opTok := p.advance()
		value := p.parseExpr()
		semi := p.consume(SEMICOLON, "expected ';' after assignment")

		return &ast.AssignStmt{
			Pos:      expr.NodePos(),
			EndPos:   p.makeEndPos(semi),
			Target:   expr,
			Operator: assignOpFromToken(opTok),
			Value:    value,
		}
	}

	semi := p.consume(SEMICOLON, "expected ';' after expression")
	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: p.makeEndPos(semi),
		Expr:   expr,
	}
}

func (p *Parser) parseBlock() ast.Stmt {
	start := p.consume(LEFT_BRACE, "expected '{' to start block")

	var statements []ast.Stmt
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close block")
	return &ast.Block{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Statements: statements,
	}
}

func isAssignTarget(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.IdentExpr, *ast.IndexExpr:
		return true
	default:
		return false
	}
}

func isAssignOperator(tok Token) bool {
	switch tok.Type {
	case EQUAL, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL:
		return true
	default:
		return false
	}
}

func assignOpFromToken(tok Token) ast.AssignType {
	switch tok.Type {
	case EQUAL:
		return ast.ASSIGN
	case PLUS_EQUAL:
		return ast.PLUS_ASSIGN
	case MINUS_EQUAL:
		return ast.MINUS_ASSIGN
	case STAR_EQUAL:
		return ast.STAR_ASSIGN
	case SLASH_EQUAL:
		return ast.SLASH_ASSIGN
	default:
		return ast.ILLEGAL_ASSIGN
	}
}
