package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for i, stmt := range p.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (t *TypeRef) String() string {
	if t.Array {
		return t.Name + "[]"
	}
	return t.Name
}

func (b *Block) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (d *DeclareStmt) String() string {
	if d.Value == nil {
		return fmt.Sprintf("%s %s;", d.Type.String(), d.Name.Value)
	}
	return fmt.Sprintf("%s %s = %s;", d.Type.String(), d.Name.Value, d.Value.String())
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s %s %s;", a.Target.String(), a.Operator.Operator(), a.Value.String())
}

func (i *IfStmt) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("agr (%s) %s", i.Cond.String(), i.Then.String()))
	if i.Else != nil {
		b.WriteString(fmt.Sprintf(" varna %s", i.Else.String()))
	}
	return b.String()
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("jabtak (%s) %s", w.Cond.String(), w.Body.String())
}

func (d *DoWhileStmt) String() string {
	return fmt.Sprintf("do %s jabtak (%s);", d.Body.String(), d.Cond.String())
}

func (f *ForStmt) String() string {
	var b strings.Builder
	b.WriteString("tabtak (")
	if f.Init != nil {
		// Init already renders its own trailing semicolon.
		b.WriteString(f.Init.String())
	} else {
		b.WriteString(";")
	}
	b.WriteString(" ")
	if f.Cond != nil {
		b.WriteString(f.Cond.String())
	}
	b.WriteString(";")
	for i, upd := range f.Update {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" " + strings.TrimSuffix(upd.String(), ";"))
	}
	b.WriteString(fmt.Sprintf(") %s", f.Body.String()))
	return b.String()
}

func (b *BreakStmt) String() string {
	return "break;"
}

func (c *ContinueStmt) String() string {
	return "continue;"
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (p *PrintStmt) String() string {
	return fmt.Sprintf("dikhao(%s);", exprList(p.Args))
}

func (i *InputStmt) String() string {
	return fmt.Sprintf("likho(%s);", i.Name.Value)
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (c *ConditionalExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Cond.String(), c.Then.String(), c.Else.String())
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Value.String())
}

func (p *PostfixExpr) String() string {
	return fmt.Sprintf("(%s%s)", p.Value.String(), p.Op)
}

func (i *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", i.Target.String(), i.Index.String())
}

func (c *CallExpr) String() string {
	return fmt.Sprintf("%s(%s)", c.Callee.String(), exprList(c.Args))
}

func (l *LiteralExpr) String() string {
	switch l.Kind {
	case STRING_LIT:
		return strconv.Quote(l.Value)
	case CHAR_LIT:
		return "'" + l.Value + "'"
	default:
		return l.Value
	}
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (a *ArrayLiteralExpr) String() string {
	return "[" + exprList(a.Elements) + "]"
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Bad.Message)
}

func exprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
