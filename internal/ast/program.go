package ast

// Program is the root of the tree: the ordered statements of one source
// file. Example: "int x = 1; dikhao(x);"
type Program struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like variable names.
// Example: "counter", "total"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// TypeRef names a declared variable's type, optionally an array of it.
// Example: "int", "float", "string[]"
type TypeRef struct {
	Pos    Position
	EndPos Position
	Name   string
	Array  bool
}

// Block represents brace-enclosed statement lists. "{}" is a valid empty
// block. Example: "{ int x; x = 1; }"
type Block struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// DeclareStmt represents variable declarations with optional initializer.
// Example: "int x;", "float f = 2.5;", "int xs[] = [1, 2];"
type DeclareStmt struct {
	Pos    Position
	EndPos Position
	Type   TypeRef
	Name   Ident
	Value  Expr // nil when the declaration has no initializer
}

// AssignStmt represents plain and compound assignments; the operator field
// folds the compound forms into one node.
// Example: "x = 1;", "x += 2;", "xs[0] = 5;"
type AssignStmt struct {
	Pos      Position
	EndPos   Position
	Target   Expr
	Operator AssignType
	Value    Expr
}

// IfStmt represents agr/varna conditionals. A varna clause binds to the
// nearest preceding unmatched agr.
// Example: "agr (x > 0) dikhao(x); varna dikhao(0);"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil when there is no varna branch
}

// WhileStmt represents jabtak loops.
// Example: "jabtak (x < 10) { x += 1; }"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Stmt
}

// DoWhileStmt represents do loops whose condition runs after the body.
// Example: "do { x += 1; } jabtak (x < 10);"
type DoWhileStmt struct {
	Pos    Position
	EndPos Position
	Body   Stmt
	Cond   Expr
}

// ForStmt represents tabtak loops. Init, Cond and Update may each be empty.
// Example: "tabtak (int i = 0; i < n; i++) { dikhao(i); }"
type ForStmt struct {
	Pos    Position
	EndPos Position
	Init   Stmt   // *DeclareStmt or *AssignStmt, nil when empty
	Cond   Expr   // nil when empty
	Update []Stmt // restricted assignment expressions, may be empty
	Body   Stmt
}

// BreakStmt represents "break;"
type BreakStmt struct {
	Pos    Position
	EndPos Position
}

// ContinueStmt represents "continue;"
type ContinueStmt struct {
	Pos    Position
	EndPos Position
}

// ReturnStmt represents "return;" and "return expr;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil if plain `return;`
}

// PrintStmt represents dikhao statements with one or more arguments.
// Example: "dikhao("x is", x);"
type PrintStmt struct {
	Pos    Position
	EndPos Position
	Args   []Expr
}

// InputStmt represents likho statements reading into an identifier.
// Example: "likho(x);"
type InputStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// ExprStmt represents an expression in statement position.
// Example: "x++;", "f(a)[0];"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// ConditionalExpr represents the ternary operator, right-associative and
// loosest-binding. Example: "a > b ? a : b"
type ConditionalExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Expr
	Else   Expr
}

// BinaryExpr represents binary operations.
// Example: "a + b", "x <= limit", "p && q"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr represents prefix operations.
// Example: "-x", "!done", "++i"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// PostfixExpr represents postfix increment and decrement.
// Example: "i++", "j--"
type PostfixExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// IndexExpr represents array indexing.
// Example: "xs[0]", "grid[i][j]"
type IndexExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Index  Expr
}

// CallExpr represents call syntax applied to an expression.
// Example: "f(a, b)", "handlers[0](x)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// LiteralExpr represents literal values of every kind.
// Example: "42", "2.5", "true", "\"hello\"", "'a'"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

// IdentExpr represents an identifier in expression position.
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// ArrayLiteralExpr represents bracketed element lists in expression
// position. Example: "[1, 2, 3]", "[]"
type ArrayLiteralExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// BadExpr represents parse errors in expressions
type BadExpr struct {
	Bad BadNode
}

// BadNode contains error information for failed parsing
type BadNode struct {
	Pos     Position
	EndPos  Position
	Message string
}
