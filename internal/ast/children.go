package ast

// Children implementations. Element order matches source order and is part
// of the traversal contract.

func (*Ident) Children() []Node { return nil }

func (f *File) Children() []Node {
	children := make([]Node, 0, len(f.Usings)+len(f.Statements)+len(f.Types))
	for _, u := range f.Usings {
		children = append(children, u)
	}
	for _, s := range f.Statements {
		children = append(children, s)
	}
	for _, t := range f.Types {
		children = append(children, t)
	}
	return childList(children...)
}

func (u *UsingDirective) Children() []Node {
	return childList(u.Path, u.Alias)
}

func (q *QualifiedName) Children() []Node {
	children := make([]Node, 0, len(q.Parts))
	for _, p := range q.Parts {
		children = append(children, p)
	}
	return childList(children...)
}

func (t *TypeRef) Children() []Node {
	return childList(t.Name, t.TypeArgs)
}

func (t *TypeArgList) Children() []Node {
	children := make([]Node, 0, len(t.Args))
	for _, a := range t.Args {
		children = append(children, a)
	}
	return childList(children...)
}

func (p *Param) Children() []Node {
	return childList(p.Type, p.Name, p.Default)
}

func (p *ParamList) Children() []Node {
	children := make([]Node, 0, len(p.Params))
	for _, param := range p.Params {
		children = append(children, param)
	}
	return childList(children...)
}

func (a *Arg) Children() []Node {
	return childList(a.Name, a.Value)
}

func (a *ArgList) Children() []Node {
	children := make([]Node, 0, len(a.Args))
	for _, arg := range a.Args {
		children = append(children, arg)
	}
	return childList(children...)
}

func (*LiteralExpr) Children() []Node { return nil }

func (i *IdentExpr) Children() []Node {
	return childList(i.Name)
}

func (p *ParenExpr) Children() []Node {
	return childList(p.Inner)
}

func (u *UnaryExpr) Children() []Node {
	return childList(u.Operand)
}

func (b *BinaryExpr) Children() []Node {
	return childList(b.Left, b.Right)
}

func (m *MemberAccessExpr) Children() []Node {
	return childList(m.Target, m.Member)
}

func (e *ElementAccessExpr) Children() []Node {
	return childList(e.Target, e.Args)
}

func (c *CallExpr) Children() []Node {
	return childList(c.Callee, c.Args)
}

func (o *ObjectCreationExpr) Children() []Node {
	return childList(o.Type, o.Args)
}

func (g *GenericNameExpr) Children() []Node {
	return childList(g.Name, g.TypeArgs)
}

func (c *ConditionalExpr) Children() []Node {
	return childList(c.Cond, c.Then, c.Else)
}

func (e *ExprStmt) Children() []Node {
	return childList(e.Expr)
}

func (r *ReturnStmt) Children() []Node {
	return childList(r.Value)
}

func (v *VarDeclStmt) Children() []Node {
	return childList(v.Type, v.Name, v.Init)
}

func (*EmptyStmt) Children() []Node { return nil }

func (b *BlockStmt) Children() []Node {
	children := make([]Node, 0, len(b.Stmts))
	for _, s := range b.Stmts {
		children = append(children, s)
	}
	return childList(children...)
}

func (i *IfStmt) Children() []Node {
	return childList(i.Cond, i.Then, i.Else)
}

func (w *WhileStmt) Children() []Node {
	return childList(w.Cond, w.Body)
}

func (d *DoWhileStmt) Children() []Node {
	return childList(d.Body, d.Cond)
}

func (f *ForStmt) Children() []Node {
	return childList(f.Init, f.Cond, f.Post, f.Body)
}

func (f *ForeachStmt) Children() []Node {
	return childList(f.Type, f.Name, f.Collection, f.Body)
}

func (f *LocalFuncStmt) Children() []Node {
	return childList(f.ReturnType, f.Name, f.Params, f.Body)
}

func (t *TypeDecl) Children() []Node {
	children := []Node{t.Name}
	for _, m := range t.Members {
		children = append(children, m)
	}
	return childList(children...)
}

func (f *FieldDecl) Children() []Node {
	return childList(f.Type, f.Name, f.Initializer)
}

func (p *PropertyDecl) Children() []Node {
	children := []Node{p.Type, p.Name}
	for _, a := range p.Accessors {
		children = append(children, a)
	}
	children = append(children, p.Initializer)
	return childList(children...)
}

func (a *Accessor) Children() []Node {
	return childList(a.Block, a.Expr)
}

func (m *MethodDecl) Children() []Node {
	return childList(m.ReturnType, m.Name, m.Params, m.Body, m.ExprBody)
}

func (c *CtorDecl) Children() []Node {
	return childList(c.Name, c.Params, c.Body)
}

func (e *EnumMemberDecl) Children() []Node {
	return childList(e.Name, e.Value)
}
