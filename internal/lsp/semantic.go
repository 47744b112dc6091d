package lsp

import (
	"simplang/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	if program == nil {
		return tokens
	}

	for _, stmt := range program.Statements {
		tokens = append(tokens, walkStmt(stmt)...)
	}

	return tokens
}

func walkStmt(stmt ast.Stmt) []SemanticToken {
	var tokens []SemanticToken

	if stmt == nil {
		return tokens
	}

	switch v := stmt.(type) {
	case *ast.Block:
		for _, inner := range v.Statements {
			tokens = append(tokens, walkStmt(inner)...)
		}
	case *ast.DeclareStmt:
		tokens = append(tokens, makeToken(v.Type.Pos, v.Type.EndPos, v.Type.Name, "type", 0)...)
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 1)...)
		tokens = append(tokens, walkExpr(v.Value)...)
	case *ast.AssignStmt:
		tokens = append(tokens, walkExpr(v.Target)...)
		tokens = append(tokens, walkExpr(v.Value)...)
	case *ast.IfStmt:
		tokens = append(tokens, walkExpr(v.Cond)...)
		tokens = append(tokens, walkStmt(v.Then)...)
		tokens = append(tokens, walkStmt(v.Else)...)
	case *ast.WhileStmt:
		tokens = append(tokens, walkExpr(v.Cond)...)
		tokens = append(tokens, walkStmt(v.Body)...)
	case *ast.DoWhileStmt:
		tokens = append(tokens, walkStmt(v.Body)...)
		tokens = append(tokens, walkExpr(v.Cond)...)
	case *ast.ForStmt:
		tokens = append(tokens, walkStmt(v.Init)...)
		tokens = append(tokens, walkExpr(v.Cond)...)
		for _, upd := range v.Update {
			tokens = append(tokens, walkStmt(upd)...)
		}
		tokens = append(tokens, walkStmt(v.Body)...)
	case *ast.ReturnStmt:
		tokens = append(tokens, walkExpr(v.Value)...)
	case *ast.PrintStmt:
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpr(arg)...)
		}
	case *ast.InputStmt:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 0)...)
	case *ast.ExprStmt:
		tokens = append(tokens, walkExpr(v.Expr)...)
	}

	return tokens
}

func walkExpr(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.IdentExpr:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Name, "variable", 0)...)
	case *ast.LiteralExpr:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Value, literalTokenType(v.Kind), 0)...)
	case *ast.ConditionalExpr:
		tokens = append(tokens, walkExpr(v.Cond)...)
		tokens = append(tokens, walkExpr(v.Then)...)
		tokens = append(tokens, walkExpr(v.Else)...)
	case *ast.BinaryExpr:
		tokens = append(tokens, walkExpr(v.Left)...)
		tokens = append(tokens, walkExpr(v.Right)...)
	case *ast.UnaryExpr:
		tokens = append(tokens, walkExpr(v.Value)...)
	case *ast.PostfixExpr:
		tokens = append(tokens, walkExpr(v.Value)...)
	case *ast.IndexExpr:
		tokens = append(tokens, walkExpr(v.Target)...)
		tokens = append(tokens, walkExpr(v.Index)...)
	case *ast.CallExpr:
		tokens = append(tokens, walkCallee(v.Callee)...)
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpr(arg)...)
		}
	case *ast.ArrayLiteralExpr:
		for _, element := range v.Elements {
			tokens = append(tokens, walkExpr(element)...)
		}
	}

	return tokens
}

// walkCallee tags a called identifier as a function instead of a variable.
func walkCallee(callee ast.Expr) []SemanticToken {
	if ident, ok := callee.(*ast.IdentExpr); ok {
		return makeToken(ident.Pos, ident.EndPos, ident.Name, "function", 0)
	}
	return walkExpr(callee)
}

func literalTokenType(kind ast.LiteralKind) string {
	switch kind {
	case ast.STRING_LIT, ast.CHAR_LIT:
		return "string"
	case ast.BOOL_LIT:
		return "keyword"
	default:
		return "number"
	}
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
