package ast

import (
	"fmt"
	"strings"
)

// maxRenderedArgs is the cutoff beyond which argument lists collapse to a
// count summary so diagnostics stay scannable.
const maxRenderedArgs = 10

func (f *File) String() string {
	var b strings.Builder

	for _, u := range f.Usings {
		b.WriteString(u.String())
		b.WriteString("\n")
	}
	for _, s := range f.Statements {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	for _, t := range f.Types {
		b.WriteString(t.String())
		b.WriteString("\n")
	}

	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (u *UsingDirective) String() string {
	if u.Alias != nil {
		return fmt.Sprintf("using %s = %s;", u.Alias.Value, u.Path.String())
	}
	return fmt.Sprintf("using %s;", u.Path.String())
}

func (q *QualifiedName) String() string {
	parts := make([]string, len(q.Parts))
	for i, p := range q.Parts {
		parts[i] = p.Value
	}
	return strings.Join(parts, ".")
}

func (t *TypeRef) String() string {
	if t.TypeArgs != nil {
		return t.Name.String() + t.TypeArgs.String()
	}
	return t.Name.String()
}

func (t *TypeArgList) String() string {
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return "<" + strings.Join(args, ", ") + ">"
}

func (p *Param) String() string {
	s := fmt.Sprintf("%s %s", p.Type.String(), p.Name.Value)
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}

func (p *ParamList) String() string {
	params := make([]string, len(p.Params))
	for i, param := range p.Params {
		params[i] = param.String()
	}
	return "(" + strings.Join(params, ", ") + ")"
}

func (a *Arg) String() string {
	if a.Name != nil {
		return fmt.Sprintf("%s: %s", a.Name.Value, a.Value.String())
	}
	return a.Value.String()
}

func (a *ArgList) String() string {
	open, close := "(", ")"
	if a.Bracketed {
		open, close = "[", "]"
	}

	if len(a.Args) > maxRenderedArgs {
		return fmt.Sprintf("%s...%d args%s", open, len(a.Args), close)
	}

	args := make([]string, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.String()
	}
	return open + strings.Join(args, ", ") + close
}

func (l *LiteralExpr) String() string {
	return l.Text
}

func (i *IdentExpr) String() string {
	return i.Name.Value
}

func (p *ParenExpr) String() string {
	return "(" + p.Inner.String() + ")"
}

func (u *UnaryExpr) String() string {
	if u.Prefix {
		return u.Op + u.Operand.String()
	}
	return u.Operand.String() + u.Op
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (m *MemberAccessExpr) String() string {
	return m.Target.String() + "." + m.Member.Value
}

func (e *ElementAccessExpr) String() string {
	return e.Target.String() + e.Args.String()
}

func (c *CallExpr) String() string {
	return c.Callee.String() + c.Args.String()
}

func (o *ObjectCreationExpr) String() string {
	if o.Args != nil {
		return "new " + o.Type.String() + o.Args.String()
	}
	return "new " + o.Type.String()
}

func (g *GenericNameExpr) String() string {
	return g.Name.Value + g.TypeArgs.String()
}

func (c *ConditionalExpr) String() string {
	return fmt.Sprintf("%s ? %s : %s", c.Cond.String(), c.Then.String(), c.Else.String())
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (r *ReturnStmt) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}

func (v *VarDeclStmt) String() string {
	if v.Init != nil {
		return fmt.Sprintf("%s %s = %s;", v.Type.String(), v.Name.Value, v.Init.String())
	}
	return fmt.Sprintf("%s %s;", v.Type.String(), v.Name.Value)
}

func (*EmptyStmt) String() string {
	return ";"
}

func (b *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range b.Stmts {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

func (i *IfStmt) String() string {
	s := fmt.Sprintf("if (%s) %s", i.Cond.String(), i.Then.String())
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", w.Cond.String(), w.Body.String())
}

func (d *DoWhileStmt) String() string {
	return fmt.Sprintf("do %s while (%s);", d.Body.String(), d.Cond.String())
}

func (f *ForStmt) String() string {
	var init, cond, post string
	if f.Init != nil {
		init = strings.TrimSuffix(f.Init.String(), ";")
	}
	if f.Cond != nil {
		cond = f.Cond.String()
	}
	if f.Post != nil {
		post = f.Post.String()
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", init, cond, post, f.Body.String())
}

func (f *ForeachStmt) String() string {
	typeName := "var"
	if f.Type != nil {
		typeName = f.Type.String()
	}
	return fmt.Sprintf("foreach (%s %s in %s) %s", typeName, f.Name.Value, f.Collection.String(), f.Body.String())
}

func (f *LocalFuncStmt) String() string {
	return fmt.Sprintf("%s %s%s %s", f.ReturnType.String(), f.Name.Value, f.Params.String(), f.Body.String())
}

func (t *TypeDecl) String() string {
	var b strings.Builder

	if t.Access != "" {
		b.WriteString(t.Access)
		b.WriteString(" ")
	}
	for _, m := range t.Modifiers {
		b.WriteString(m)
		b.WriteString(" ")
	}
	b.WriteString(t.Kind.String())
	b.WriteString(" ")
	b.WriteString(t.Name.Value)
	b.WriteString(" { ")
	for _, m := range t.Members {
		b.WriteString(m.String())
		b.WriteString(" ")
	}
	b.WriteString("}")

	return b.String()
}

func (f *FieldDecl) String() string {
	var b strings.Builder
	writeMemberHead(&b, f.Access, f.Modifiers)
	b.WriteString(f.Type.String())
	b.WriteString(" ")
	b.WriteString(f.Name.Value)
	if f.Initializer != nil {
		b.WriteString(" = ")
		b.WriteString(f.Initializer.String())
	}
	b.WriteString(";")
	return b.String()
}

func (p *PropertyDecl) String() string {
	var b strings.Builder
	writeMemberHead(&b, p.Access, p.Modifiers)
	b.WriteString(p.Type.String())
	b.WriteString(" ")
	b.WriteString(p.Name.Value)
	b.WriteString(" { ")
	for _, a := range p.Accessors {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	if p.Initializer != nil {
		b.WriteString(" = ")
		b.WriteString(p.Initializer.String())
		b.WriteString(";")
	}
	return b.String()
}

func (a *Accessor) String() string {
	name := "get"
	if a.Kind == SET {
		name = "set"
		if a.InitOnly {
			name = "init"
		}
	}
	switch a.Body {
	case BLOCK_BODY:
		return name + " " + a.Block.String()
	case EXPR_BODY:
		return name + " => " + a.Expr.String() + ";"
	}
	return name + ";"
}

func (m *MethodDecl) String() string {
	var b strings.Builder
	writeMemberHead(&b, m.Access, m.Modifiers)
	b.WriteString(m.ReturnType.String())
	b.WriteString(" ")
	b.WriteString(m.Name.Value)
	b.WriteString(m.Params.String())
	switch {
	case m.ExprBody != nil:
		b.WriteString(" => ")
		b.WriteString(m.ExprBody.String())
		b.WriteString(";")
	case m.Body != nil:
		b.WriteString(" ")
		b.WriteString(m.Body.String())
	default:
		b.WriteString(";")
	}
	return b.String()
}

func (c *CtorDecl) String() string {
	var b strings.Builder
	writeMemberHead(&b, c.Access, nil)
	b.WriteString(c.Name.Value)
	b.WriteString(c.Params.String())
	b.WriteString(" ")
	b.WriteString(c.Body.String())
	return b.String()
}

func (e *EnumMemberDecl) String() string {
	if e.Value != nil {
		return fmt.Sprintf("%s = %s,", e.Name.Value, e.Value.String())
	}
	return e.Name.Value + ","
}

func writeMemberHead(b *strings.Builder, access string, modifiers []string) {
	if access != "" {
		b.WriteString(access)
		b.WriteString(" ")
	}
	for _, m := range modifiers {
		b.WriteString(m)
		b.WriteString(" ")
	}
}
