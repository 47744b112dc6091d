package ast

type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr() {}

func (*ConditionalExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*PostfixExpr) isExpr() {}

func (*IndexExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*LiteralExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*ArrayLiteralExpr) isExpr() {}
