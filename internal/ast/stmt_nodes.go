package ast

// ExprStmt represents expression statements
// Example: "Console.WriteLine(x);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// ReturnStmt represents return statements
// Example: "return balance;", "return;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a plain "return;"
}

// VarDeclStmt represents local variable declarations
// Example: "int x = 1;", "var items = new List<int>();"
type VarDeclStmt struct {
	Pos    Position
	EndPos Position
	Type   *TypeRef
	Name   *Ident
	Init   Expr // nil when declared without an initialiser
}

// EmptyStmt represents a lone semicolon
type EmptyStmt struct {
	Pos    Position
	EndPos Position
}

// BlockStmt represents brace-delimited statement blocks
// Example: "{ int x = 1; return x; }"
type BlockStmt struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// IfStmt represents if/else statements
// Example: "if (x > 0) { ... } else { ... }"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil when there is no else branch
}

// WhileStmt represents while loops
// Example: "while (running) { Tick(); }"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Stmt
}

// DoWhileStmt represents do-while loops
// Example: "do { Tick(); } while (running);"
type DoWhileStmt struct {
	Pos    Position
	EndPos Position
	Body   Stmt
	Cond   Expr
}

// ForStmt represents classic for loops. Init, Cond and Post are each
// optional.
// Example: "for (int i = 0; i < n; i++) { ... }"
type ForStmt struct {
	Pos    Position
	EndPos Position
	Init   Stmt
	Cond   Expr
	Post   Expr
	Body   Stmt
}

// ForeachStmt represents foreach loops
// Example: "foreach (var item in items) { ... }"
type ForeachStmt struct {
	Pos        Position
	EndPos     Position
	Type       *TypeRef
	Name       *Ident
	Collection Expr
	Body       Stmt
}

// LocalFuncStmt represents local function declarations
// Example: "int Square(int v) { return v * v; }" inside a method body
type LocalFuncStmt struct {
	Pos        Position
	EndPos     Position
	ReturnType *TypeRef
	Name       *Ident
	Params     *ParamList
	Body       *BlockStmt
}
