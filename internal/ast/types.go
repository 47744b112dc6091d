package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_EXPR

	// High-level constructs
	PROGRAM
	IDENT
	TYPE_REF

	// Statements
	BLOCK
	DECLARE_STMT
	ASSIGN_STMT
	IF_STMT
	WHILE_STMT
	DO_WHILE_STMT
	FOR_STMT
	BREAK_STMT
	CONTINUE_STMT
	RETURN_STMT
	PRINT_STMT
	INPUT_STMT
	EXPR_STMT

	// Expressions
	CONDITIONAL_EXPR
	BINARY_EXPR
	UNARY_EXPR
	POSTFIX_EXPR
	INDEX_EXPR
	CALL_EXPR
	LITERAL_EXPR
	IDENT_EXPR
	ARRAY_LITERAL_EXPR
)

type LiteralKind int

//go:generate stringer -type=LiteralKind
const (
	INT_LIT LiteralKind = iota
	FLOAT_LIT
	BOOL_LIT
	STRING_LIT
	CHAR_LIT
)

type AssignType int

//go:generate stringer -type=AssignType
const (
	// Special / error
	ILLEGAL_ASSIGN AssignType = iota
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
)

// Operator returns the source spelling of the assignment operator.
func (a AssignType) Operator() string {
	switch a {
	case ASSIGN:
		return "="
	case PLUS_ASSIGN:
		return "+="
	case MINUS_ASSIGN:
		return "-="
	case STAR_ASSIGN:
		return "*="
	case SLASH_ASSIGN:
		return "/="
	default:
		return "?"
	}
}
