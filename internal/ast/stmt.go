package ast

type Stmt interface {
	Node
	isStmt()
}

func (*Block) isStmt() {}

func (*DeclareStmt) isStmt() {}

func (*AssignStmt) isStmt() {}

func (*IfStmt) isStmt() {}

func (*WhileStmt) isStmt() {}

func (*DoWhileStmt) isStmt() {}

func (*ForStmt) isStmt() {}

func (*BreakStmt) isStmt() {}

func (*ContinueStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*PrintStmt) isStmt() {}

func (*InputStmt) isStmt() {}

func (*ExprStmt) isStmt() {}
