package ast

type Expr interface {
	Node
	isExpr()
}

func (*LiteralExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*ParenExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*MemberAccessExpr) isExpr() {}

func (*ElementAccessExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*ObjectCreationExpr) isExpr() {}

func (*GenericNameExpr) isExpr() {}

func (*ConditionalExpr) isExpr() {}
