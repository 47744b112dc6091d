package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (d *DeclareStmt) NodePos() Position    { return d.Pos }
func (d *DeclareStmt) NodeEndPos() Position { return d.EndPos }
func (*DeclareStmt) NodeType() NodeType     { return DECLARE_STMT }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (d *DoWhileStmt) NodePos() Position    { return d.Pos }
func (d *DoWhileStmt) NodeEndPos() Position { return d.EndPos }
func (*DoWhileStmt) NodeType() NodeType     { return DO_WHILE_STMT }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (b *BreakStmt) NodePos() Position    { return b.Pos }
func (b *BreakStmt) NodeEndPos() Position { return b.EndPos }
func (*BreakStmt) NodeType() NodeType     { return BREAK_STMT }

func (c *ContinueStmt) NodePos() Position    { return c.Pos }
func (c *ContinueStmt) NodeEndPos() Position { return c.EndPos }
func (*ContinueStmt) NodeType() NodeType     { return CONTINUE_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (p *PrintStmt) NodePos() Position    { return p.Pos }
func (p *PrintStmt) NodeEndPos() Position { return p.EndPos }
func (*PrintStmt) NodeType() NodeType     { return PRINT_STMT }

func (i *InputStmt) NodePos() Position    { return i.Pos }
func (i *InputStmt) NodeEndPos() Position { return i.EndPos }
func (*InputStmt) NodeType() NodeType     { return INPUT_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (c *ConditionalExpr) NodePos() Position    { return c.Pos }
func (c *ConditionalExpr) NodeEndPos() Position { return c.EndPos }
func (*ConditionalExpr) NodeType() NodeType     { return CONDITIONAL_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (p *PostfixExpr) NodePos() Position    { return p.Pos }
func (p *PostfixExpr) NodeEndPos() Position { return p.EndPos }
func (*PostfixExpr) NodeType() NodeType     { return POSTFIX_EXPR }

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (a *ArrayLiteralExpr) NodePos() Position    { return a.Pos }
func (a *ArrayLiteralExpr) NodeEndPos() Position { return a.EndPos }
func (*ArrayLiteralExpr) NodeType() NodeType     { return ARRAY_LITERAL_EXPR }

func (be *BadExpr) NodePos() Position    { return be.Bad.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.Bad.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }
