package parser

import (
	"simplang/internal/ast"
)

var binaryPrecedence = map[TokenType]int{
	OR:            1,
	AND:           2,
	EQUAL_EQUAL:   3,
	BANG_EQUAL:    3,
	LESS:          4,
	LESS_EQUAL:    4,
	GREATER:       4,
	GREATER_EQUAL: 4,
	PLUS:          5,
	MINUS:         5,
	STAR:          6,
	SLASH:         6,
	PERCENT:       6,
}

// parseExpr is the expression entry point and sits above the precedence
// ladder so the conditional operator binds loosest.
func (p *Parser) parseExpr() ast.Expr {
	if !p.enterNesting() {
		p.leaveNesting()
		bad := p.badExprHere("nesting too deep")
		p.synchronize()
		return bad
	}
	defer p.leaveNesting()

	return p.parseConditional()
}

// parseConditional parses "cond ? then : else". The else arm re-enters
// parseExpr, so chained conditionals associate to the right and every
// chain level counts against the nesting depth.
func (p *Parser) parseConditional() ast.Expr {
	cond := p.parsePrattExpr(1)

	if !p.match(QUESTION) {
		return cond
	}

	then := p.parseExpr()
	p.consume(COLON, "expected ':' in conditional expression")
	elseArm := p.parseExpr()

	return &ast.ConditionalExpr{
		Pos:    cond.NodePos(),
		EndPos: elseArm.NodeEndPos(),
		Cond:   cond,
		Then:   then,
		Else:   elseArm,
	}
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		right := p.parsePrattExpr(prec + 1)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

// parsePrefixExpr parses prefix operator chains. Each operator counts
// against the nesting depth so an unbounded chain fails with a diagnostic
// instead of overflowing the stack.
func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(MINUS, PLUS, BANG, INCREMENT, DECREMENT) {
		op := p.previous()
		if !p.enterNesting() {
			p.leaveNesting()
			bad := p.badExprHere("nesting too deep")
			p.synchronize()
			return bad
		}
		value := p.parsePrefixExpr()
		p.leaveNesting()
		if _, bad := value.(*ast.BadExpr); bad {
			return value
		}
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

// parsePostfixExpr layers indexing, calls and postfix increment or
// decrement onto an already parsed operand, tightest-binding first.
func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	if _, bad := expr.(*ast.BadExpr); bad {
		return expr
	}

	for {
		if p.match(LEFT_BRACKET) {
			index := p.parseExpr()
			closeTok := p.consume(RIGHT_BRACKET, "expected ']' after index expression")
			expr = &ast.IndexExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(closeTok),
				Target: expr,
				Index:  index,
			}
			continue
		}

		if p.match(LEFT_PAREN) {
			args := p.parseExprList(RIGHT_PAREN)
			closeTok := p.consume(RIGHT_PAREN, "expected ')' after call arguments")
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(closeTok),
				Callee: expr,
				Args:   args,
			}
			continue
		}

		if p.match(INCREMENT, DECREMENT) {
			op := p.previous()
			expr = &ast.PostfixExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(op),
				Op:     op.Lexeme,
				Value:  expr,
			}
			continue
		}

		return expr
	}
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case INT_LITERAL:
		p.advance()
		return p.makeLiteral(tok, ast.INT_LIT)
	case FLOAT_LITERAL:
		p.advance()
		return p.makeLiteral(tok, ast.FLOAT_LIT)
	case STRING_LITERAL:
		p.advance()
		return p.makeLiteral(tok, ast.STRING_LIT)
	case CHAR_LITERAL:
		p.advance()
		return p.makeLiteral(tok, ast.CHAR_LIT)
	case TRUE, FALSE:
		p.advance()
		return p.makeLiteral(tok, ast.BOOL_LIT)
	case IDENTIFIER:
		p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	case LEFT_PAREN:
		p.advance()
		inner := p.parseExpr()
		p.consume(RIGHT_PAREN, "expected ')' after expression")
		return inner
	case LEFT_BRACKET:
		p.advance()
		elements := p.parseExprList(RIGHT_BRACKET)
		closeTok := p.consume(RIGHT_BRACKET, "expected ']' after array elements")
		return &ast.ArrayLiteralExpr{
			Pos:      p.makePos(tok),
			EndPos:   p.makeEndPos(closeTok),
			Elements: elements,
		}
	default:
		p.errorAtCurrent("expected expression")
		bad := p.badExprHere("expected expression")
		if !p.atSyncPoint() {
			p.advance()
		}
		return bad
	}
}

// parseExprList parses a comma-separated expression list that ends at the
// given closing delimiter. The delimiter itself is left for the caller.
func (p *Parser) parseExprList(closing TokenType) []ast.Expr {
	var exprs []ast.Expr
	if p.check(closing) {
		return exprs
	}

	for {
		exprs = append(exprs, p.parseExpr())
		if !p.match(COMMA) {
			return exprs
		}
	}
}

func (p *Parser) makeLiteral(tok Token, kind ast.LiteralKind) ast.Expr {
	return &ast.LiteralExpr{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   kind,
		Value:  tok.Lexeme,
	}
}

func (p *Parser) badExprHere(message string) ast.Expr {
	pos := p.makePos(p.peek())
	return &ast.BadExpr{
		Bad: ast.BadNode{Pos: pos, EndPos: pos, Message: message},
	}
}
