package parser

import "simplang/internal/ast"

// parseDeclaration parses "type [\"[]\"] name [= expr] ;". The leading
// type keyword has already been checked by the dispatcher.
func (p *Parser) parseDeclaration() ast.Stmt {
	typeTok := p.advance()

	typeRef := ast.TypeRef{
		Pos:    p.makePos(typeTok),
		EndPos: p.makeEndPos(typeTok),
		Name:   typeTok.Lexeme,
	}
	if p.check(LEFT_BRACKET) && p.peekNext().Type == RIGHT_BRACKET {
		p.advance()
		closeTok := p.advance()
		typeRef.Array = true
		typeRef.EndPos = p.makeEndPos(closeTok)
	}

	name, ok := p.consumeIdent("expected variable name after type")
	if !ok {
		p.synchronize()
		return nil
	}

	var value ast.Expr
	if p.match(EQUAL) {
		value = p.parseExpr()
	}

	semi := p.consume(SEMICOLON, "expected ';' after declaration")
	return &ast.DeclareStmt{
		Pos:    typeRef.Pos,
		EndPos: p.makeEndPos(semi),
		Type:   typeRef,
		Name:   name,
		Value:  value,
	}
}

// parseIfStmt parses "agr ( cond ) stmt [varna stmt]". A varna always
// binds to the nearest unmatched agr because the then-branch is parsed
// before varna is looked for.
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'agr'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after condition")

	then := p.parseStatement()
	if then == nil {
		then = p.badStmtAt(start)
	}

	var elseBranch ast.Stmt
	if p.match(VARNA) {
		elseBranch = p.parseStatement()
		if elseBranch == nil {
			elseBranch = p.badStmtAt(start)
		}
	}

	end := then.NodeEndPos()
	if elseBranch != nil {
		end = elseBranch.NodeEndPos()
	}
	return &ast.IfStmt{
		Pos:    p.makePos(start),
		EndPos: end,
		Cond:   cond,
		Then:   then,
		Else:   elseBranch,
	}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'jabtak'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after condition")

	body := p.parseStatement()
	if body == nil {
		body = p.badStmtAt(start)
	}

	return &ast.WhileStmt{
		Pos:    p.makePos(start),
		EndPos: body.NodeEndPos(),
		Cond:   cond,
		Body:   body,
	}
}

// parseDoWhileStmt parses "do stmt jabtak ( cond ) ;". The trailing
// jabtak reuses the while keyword, so "do" alone decides the form.
func (p *Parser) parseDoWhileStmt() ast.Stmt {
	start := p.advance()

	body := p.parseStatement()
	if body == nil {
		body = p.badStmtAt(start)
	}

	p.consume(JABTAK, "expected 'jabtak' after do body")
	p.consume(LEFT_PAREN, "expected '(' after 'jabtak'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after condition")
	semi := p.consume(SEMICOLON, "expected ';' after do-while condition")

	return &ast.DoWhileStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(semi),
		Body:   body,
		Cond:   cond,
	}
}

// parseForStmt parses "tabtak ( init? ; cond? ; update,* ) stmt". All
// three header clauses may be empty; the update clause is a comma list of
// restricted assignment expressions.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'tabtak'")

	var init ast.Stmt
	switch {
	case p.match(SEMICOLON):
		// empty init clause
	case p.peek().Type.IsTypeKeyword():
		init = p.parseDeclaration() // consumes its own ';'
	default:
		init = p.parseAssignmentExpr()
		p.consume(SEMICOLON, "expected ';' after loop initializer")
	}

	var cond ast.Expr
	if !p.check(SEMICOLON) {
		cond = p.parseExpr()
	}
	p.consume(SEMICOLON, "expected ';' after loop condition")

	var update []ast.Stmt
	if !p.check(RIGHT_PAREN) {
		for {
			upd := p.parseAssignmentExpr()
			if upd != nil {
				update = append(update, upd)
			}
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_PAREN, "expected ')' after loop header")

	body := p.parseStatement()
	if body == nil {
		body = p.badStmtAt(start)
	}

	return &ast.ForStmt{
		Pos:    p.makePos(start),
		EndPos: body.NodeEndPos(),
		Init:   init,
		Cond:   cond,
		Update: update,
		Body:   body,
	}
}

// parseAssignmentExpr parses the restricted statement forms the tabtak
// header allows: an assignment, or a bare increment/decrement in either
// prefix or postfix position. No trailing ';' is consumed here.
func (p *Parser) parseAssignmentExpr() ast.Stmt {
	if p.check(INCREMENT) || p.check(DECREMENT) {
		opTok := p.advance()
		target, ok := p.consumeIdent("expected identifier after '" + opTok.Lexeme + "'")
		if !ok {
			return nil
		}
		expr := &ast.UnaryExpr{
			Pos:    p.makePos(opTok),
			EndPos: target.EndPos,
			Op:     opTok.Lexeme,
			Value:  &ast.IdentExpr{Pos: target.Pos, EndPos: target.EndPos, Name: target.Value},
		}
		return &ast.ExprStmt{Pos: expr.Pos, EndPos: expr.EndPos, Expr: expr}
	}

	expr := p.parseExpr()
	if _, bad := expr.(*ast.BadExpr); bad {
		return nil
	}

	if isAssignTarget(expr) && isAssignOperator(p.peek()) {
		opTok := p.advance()
		value := p.parseExpr()
		return &ast.AssignStmt{
			Pos:      expr.NodePos(),
			EndPos:   value.NodeEndPos(),
			Target:   expr,
			Operator: assignOpFromToken(opTok),
			Value:    value,
		}
	}

	if !isIncDecStep(expr) {
		p.errorAtCurrent("loop header allows only assignments and '++'/'--' steps")
		return nil
	}

	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: expr.NodeEndPos(),
		Expr:   expr,
	}
}

// isIncDecStep reports whether a parsed expression is a bare increment or
// decrement, the only non-assignment form a tabtak header clause accepts.
func isIncDecStep(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.PostfixExpr:
		return true
	case *ast.UnaryExpr:
		return e.Op == "++" || e.Op == "--"
	default:
		return false
	}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.advance()

	var value ast.Expr
	if !p.check(SEMICOLON) && !p.atSyncPoint() {
		value = p.parseExpr()
	}

	semi := p.consume(SEMICOLON, "expected ';' after return statement")
	return &ast.ReturnStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(semi),
		Value:  value,
	}
}

// parsePrintStmt parses "dikhao ( expr {, expr} ) ;" with at least one
// argument.
func (p *Parser) parsePrintStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'dikhao'")

	args := []ast.Expr{p.parseExpr()}
	for p.match(COMMA) {
		args = append(args, p.parseExpr())
	}

	p.consume(RIGHT_PAREN, "expected ')' after dikhao arguments")
	semi := p.consume(SEMICOLON, "expected ';' after dikhao statement")

	return &ast.PrintStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(semi),
		Args:   args,
	}
}

// parseInputStmt parses "likho ( name ) ;". The target must be a plain
// identifier.
func (p *Parser) parseInputStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'likho'")

	name, ok := p.consumeIdent("expected identifier inside likho")
	if !ok {
		p.synchronize()
		return nil
	}

	p.consume(RIGHT_PAREN, "expected ')' after likho target")
	semi := p.consume(SEMICOLON, "expected ';' after likho statement")

	return &ast.InputStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(semi),
		Name:   name,
	}
}

// badStmtAt stands in for a branch body that failed to parse so the
// enclosing statement can still carry positions.
func (p *Parser) badStmtAt(tok Token) ast.Stmt {
	pos := p.makePos(tok)
	return &ast.ExprStmt{
		Pos:    pos,
		EndPos: pos,
		Expr:   &ast.BadExpr{Bad: ast.BadNode{Pos: pos, EndPos: pos, Message: "malformed statement"}},
	}
}
