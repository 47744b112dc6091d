package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simplang/internal/ast"
)

// parseExprStmt parses a single expression statement and returns its
// expression.
func parseExprStmt(t *testing.T, source string) ast.Expr {
	t.Helper()

	program, parseErrors, scanErrors := ParseSource("test.sl", source)
	assert.Empty(t, parseErrors, "Should have no parse errors")
	assert.Empty(t, scanErrors, "Should have no scan errors")
	assert.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExprStmt)
	assert.True(t, ok, "Statement should be an expression statement")
	return stmt.Expr
}

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	expr := parseExprStmt(t, "2 + 3 * 4;")

	add, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "+", add.Op)

	left := add.Left.(*ast.LiteralExpr)
	assert.Equal(t, "2", left.Value)

	mul, ok := add.Right.(*ast.BinaryExpr)
	assert.True(t, ok, "Right operand should be the multiplication")
	assert.Equal(t, "*", mul.Op)
}

func TestBinaryOperatorsAssociateLeft(t *testing.T) {
	expr := parseExprStmt(t, "1 - 2 - 3;")

	outer := expr.(*ast.BinaryExpr)
	assert.Equal(t, "-", outer.Op)

	inner, ok := outer.Left.(*ast.BinaryExpr)
	assert.True(t, ok, "Left operand should be the first subtraction")
	assert.Equal(t, "-", inner.Op)

	right := outer.Right.(*ast.LiteralExpr)
	assert.Equal(t, "3", right.Value)
}

func TestComparisonBindsTighterThanLogical(t *testing.T) {
	expr := parseExprStmt(t, "1 < 2 && 3 > 2;")

	and, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "&&", and.Op)

	left := and.Left.(*ast.BinaryExpr)
	assert.Equal(t, "<", left.Op)
	right := and.Right.(*ast.BinaryExpr)
	assert.Equal(t, ">", right.Op)
}

func TestAndBindsTighterThanOr(t *testing.T) {
	expr := parseExprStmt(t, "a || b && c;")

	or := expr.(*ast.BinaryExpr)
	assert.Equal(t, "||", or.Op)

	and, ok := or.Right.(*ast.BinaryExpr)
	assert.True(t, ok, "Right operand should be the conjunction")
	assert.Equal(t, "&&", and.Op)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	expr := parseExprStmt(t, "(2 + 3) * 4;")

	mul := expr.(*ast.BinaryExpr)
	assert.Equal(t, "*", mul.Op)

	add, ok := mul.Left.(*ast.BinaryExpr)
	assert.True(t, ok, "Left operand should be the parenthesized sum")
	assert.Equal(t, "+", add.Op)
}

func TestUnaryOperators(t *testing.T) {
	expr := parseExprStmt(t, "-x + !y;")

	add := expr.(*ast.BinaryExpr)

	neg := add.Left.(*ast.UnaryExpr)
	assert.Equal(t, "-", neg.Op)

	not := add.Right.(*ast.UnaryExpr)
	assert.Equal(t, "!", not.Op)
}

func TestUnaryBindsTighterThanBinary(t *testing.T) {
	expr := parseExprStmt(t, "-a * b;")

	mul := expr.(*ast.BinaryExpr)
	assert.Equal(t, "*", mul.Op)
	_, ok := mul.Left.(*ast.UnaryExpr)
	assert.True(t, ok, "Negation should apply to a alone")
}

func TestPrefixIncrement(t *testing.T) {
	expr := parseExprStmt(t, "++i;")

	unary := expr.(*ast.UnaryExpr)
	assert.Equal(t, "++", unary.Op)
	ident := unary.Value.(*ast.IdentExpr)
	assert.Equal(t, "i", ident.Name)
}

func TestPostfixChain(t *testing.T) {
	expr := parseExprStmt(t, "xs[0](1)++;")

	postfix := expr.(*ast.PostfixExpr)
	assert.Equal(t, "++", postfix.Op)

	call, ok := postfix.Value.(*ast.CallExpr)
	assert.True(t, ok, "Increment should apply to the call result")
	assert.Len(t, call.Args, 1)

	index, ok := call.Callee.(*ast.IndexExpr)
	assert.True(t, ok, "Call target should be the index expression")

	target := index.Target.(*ast.IdentExpr)
	assert.Equal(t, "xs", target.Name)
}

func TestIndexBindsTighterThanBinary(t *testing.T) {
	expr := parseExprStmt(t, "a + xs[i];")

	add := expr.(*ast.BinaryExpr)
	assert.Equal(t, "+", add.Op)
	_, ok := add.Right.(*ast.IndexExpr)
	assert.True(t, ok, "Indexing should bind before addition")
}

func TestConditionalExpression(t *testing.T) {
	expr := parseExprStmt(t, "a > b ? a : b;")

	cond := expr.(*ast.ConditionalExpr)
	gt, ok := cond.Cond.(*ast.BinaryExpr)
	assert.True(t, ok, "Comparison should sit below the conditional")
	assert.Equal(t, ">", gt.Op)
}

func TestConditionalAssociatesRight(t *testing.T) {
	expr := parseExprStmt(t, "a ? b : c ? d : e;")

	outer := expr.(*ast.ConditionalExpr)
	thenIdent := outer.Then.(*ast.IdentExpr)
	assert.Equal(t, "b", thenIdent.Name)

	inner, ok := outer.Else.(*ast.ConditionalExpr)
	assert.True(t, ok, "Else arm should be the nested conditional")
	elseIdent := inner.Else.(*ast.IdentExpr)
	assert.Equal(t, "e", elseIdent.Name)
}

func TestLiteralKinds(t *testing.T) {
	tests := []struct {
		source string
		kind   ast.LiteralKind
		value  string
	}{
		{"42;", ast.INT_LIT, "42"},
		{"2.5;", ast.FLOAT_LIT, "2.5"},
		{"true;", ast.BOOL_LIT, "true"},
		{"false;", ast.BOOL_LIT, "false"},
		{`"hi";`, ast.STRING_LIT, "hi"},
		{"'c';", ast.CHAR_LIT, "c"},
	}

	for _, tt := range tests {
		expr := parseExprStmt(t, tt.source)
		lit, ok := expr.(*ast.LiteralExpr)
		assert.True(t, ok, "%s should parse to a literal", tt.source)
		assert.Equal(t, tt.kind, lit.Kind)
		assert.Equal(t, tt.value, lit.Value)
	}
}

func TestEmptyArrayLiteral(t *testing.T) {
	expr := parseExprStmt(t, "[];")

	arr := expr.(*ast.ArrayLiteralExpr)
	assert.Empty(t, arr.Elements)
}

func TestModuloPrecedence(t *testing.T) {
	expr := parseExprStmt(t, "a + b % c;")

	add := expr.(*ast.BinaryExpr)
	assert.Equal(t, "+", add.Op)

	mod, ok := add.Right.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "%", mod.Op)
}

func TestEqualityChain(t *testing.T) {
	expr := parseExprStmt(t, "a == b != c;")

	outer := expr.(*ast.BinaryExpr)
	assert.Equal(t, "!=", outer.Op)

	inner := outer.Left.(*ast.BinaryExpr)
	assert.Equal(t, "==", inner.Op)
}
