package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(name string) *IdentExpr {
	return &IdentExpr{Name: name}
}

func intLit(value string) *LiteralExpr {
	return &LiteralExpr{Kind: INT_LIT, Value: value}
}

func TestDeclareStmtString(t *testing.T) {
	decl := &DeclareStmt{
		Type:  TypeRef{Name: "int"},
		Name:  Ident{Value: "x"},
		Value: intLit("5"),
	}
	assert.Equal(t, "int x = 5;", decl.String())

	bare := &DeclareStmt{
		Type: TypeRef{Name: "float", Array: true},
		Name: Ident{Value: "xs"},
	}
	assert.Equal(t, "float[] xs;", bare.String())
}

func TestBinaryExprStringShowsGrouping(t *testing.T) {
	expr := &BinaryExpr{
		Op:   "+",
		Left: intLit("2"),
		Right: &BinaryExpr{
			Op:    "*",
			Left:  intLit("3"),
			Right: intLit("4"),
		},
	}
	assert.Equal(t, "(2 + (3 * 4))", expr.String())
}

func TestUnaryAndPostfixString(t *testing.T) {
	neg := &UnaryExpr{Op: "-", Value: ident("x")}
	assert.Equal(t, "(-x)", neg.String())

	inc := &PostfixExpr{Op: "++", Value: ident("i")}
	assert.Equal(t, "(i++)", inc.String())
}

func TestConditionalExprString(t *testing.T) {
	expr := &ConditionalExpr{
		Cond: ident("a"),
		Then: ident("b"),
		Else: ident("c"),
	}
	assert.Equal(t, "(a ? b : c)", expr.String())
}

func TestStringLiteralIsQuoted(t *testing.T) {
	lit := &LiteralExpr{Kind: STRING_LIT, Value: "say \"hi\"\n"}
	assert.Equal(t, `"say \"hi\"\n"`, lit.String())

	ch := &LiteralExpr{Kind: CHAR_LIT, Value: "a"}
	assert.Equal(t, "'a'", ch.String())
}

func TestBlockStringIndentsNestedStatements(t *testing.T) {
	block := &Block{
		Statements: []Stmt{
			&AssignStmt{Target: ident("x"), Operator: ASSIGN, Value: intLit("1")},
			&Block{Statements: []Stmt{
				&BreakStmt{},
			}},
		},
	}
	expected := "{\n  x = 1;\n  {\n    break;\n  }\n}"
	assert.Equal(t, expected, block.String())

	assert.Equal(t, "{}", (&Block{}).String())
}

func TestIfStmtString(t *testing.T) {
	stmt := &IfStmt{
		Cond: &BinaryExpr{Op: ">", Left: ident("x"), Right: intLit("0")},
		Then: &PrintStmt{Args: []Expr{ident("x")}},
		Else: &PrintStmt{Args: []Expr{intLit("0")}},
	}
	assert.Equal(t, "agr ((x > 0)) dikhao(x); varna dikhao(0);", stmt.String())
}

func TestForStmtString(t *testing.T) {
	stmt := &ForStmt{
		Init: &DeclareStmt{
			Type:  TypeRef{Name: "int"},
			Name:  Ident{Value: "i"},
			Value: intLit("0"),
		},
		Cond: &BinaryExpr{Op: "<", Left: ident("i"), Right: intLit("10")},
		Update: []Stmt{
			&ExprStmt{Expr: &PostfixExpr{Op: "++", Value: ident("i")}},
		},
		Body: &Block{},
	}
	assert.Equal(t, "tabtak (int i = 0; (i < 10); (i++)) {}", stmt.String())
}

func TestForStmtStringEmptyClauses(t *testing.T) {
	stmt := &ForStmt{Body: &Block{}}
	assert.Equal(t, "tabtak (; ;) {}", stmt.String())
}

func TestDoWhileString(t *testing.T) {
	stmt := &DoWhileStmt{
		Body: &Block{Statements: []Stmt{
			&ExprStmt{Expr: &PostfixExpr{Op: "++", Value: ident("x")}},
		}},
		Cond: &BinaryExpr{Op: "<", Left: ident("x"), Right: intLit("10")},
	}
	assert.Equal(t, "do {\n  (x++);\n} jabtak ((x < 10));", stmt.String())
}

func TestArrayAndCallString(t *testing.T) {
	call := &CallExpr{
		Callee: &IndexExpr{Target: ident("fs"), Index: intLit("0")},
		Args:   []Expr{ident("a"), ident("b")},
	}
	assert.Equal(t, "fs[0](a, b)", call.String())

	arr := &ArrayLiteralExpr{Elements: []Expr{intLit("1"), intLit("2")}}
	assert.Equal(t, "[1, 2]", arr.String())
}

func TestProgramStringJoinsStatements(t *testing.T) {
	program := &Program{
		Statements: []Stmt{
			&DeclareStmt{Type: TypeRef{Name: "int"}, Name: Ident{Value: "x"}, Value: intLit("1")},
			&ReturnStmt{},
		},
	}
	assert.Equal(t, "int x = 1;\nreturn;", program.String())
}
