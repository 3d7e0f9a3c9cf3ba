package ast

// Member is anything that can appear in a type declaration's member list.
type Member interface {
	Node
	isMember()
}

func (*FieldDecl) isMember() {}

func (*PropertyDecl) isMember() {}

func (*MethodDecl) isMember() {}

func (*CtorDecl) isMember() {}

func (*EnumMemberDecl) isMember() {}

func (*TypeDecl) isMember() {} // nested type declarations
