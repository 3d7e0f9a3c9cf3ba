package ast

// File represents a compilation unit (the entire source file)
// Example: "using System; class Point { int x; int X => x; }"
type File struct {
	Pos        Position
	EndPos     Position
	Usings     []*UsingDirective
	Statements []Stmt // top-level statements
	Types      []*TypeDecl
}

// Ident represents any identifier like variable names, type names, etc.
// Example: "Point", "balanceOf", "x", "@class"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// UsingDirective represents import directives
// Example: "using System.Collections.Generic;", "using Col = System.Collections;"
type UsingDirective struct {
	Pos    Position
	EndPos Position
	Path   *QualifiedName
	Alias  *Ident // nil unless the directive declares an alias
}

// QualifiedName represents dotted name paths
// Example: "System.Collections.Generic"
type QualifiedName struct {
	Pos    Position
	EndPos Position
	Parts  []*Ident
}

// TypeRef represents type specifications
// Example: "int", "System.String", "List<int>", "Dictionary<string, int>"
type TypeRef struct {
	Pos      Position
	EndPos   Position
	Name     *QualifiedName
	TypeArgs *TypeArgList // nil for non-generic references
}

// TypeArgList represents the type arguments of a generic reference
// Example: "<string, int>" in "Dictionary<string, int>"
type TypeArgList struct {
	Pos    Position
	EndPos Position
	Args   []*TypeRef
}

// Param represents a single parameter
// Example: "int count", "string name = null"
type Param struct {
	Pos     Position
	EndPos  Position
	Type    *TypeRef
	Name    *Ident
	Default Expr // nil unless a default value is declared
}

// ParamList represents a parenthesised parameter list
// Example: "(int a, string b)"
type ParamList struct {
	Pos    Position
	EndPos Position
	Params []*Param
}

// Arg represents a single argument
// Example: "count + 1", "name: value"
type Arg struct {
	Pos    Position
	EndPos Position
	Name   *Ident // nil unless the argument is named
	Value  Expr
}

// ArgList represents an argument list, parenthesised or bracketed
// Example: "(a, b, 1)" or "[i, j]"
type ArgList struct {
	Pos       Position
	EndPos    Position
	Args      []*Arg
	Bracketed bool // true for element-access argument lists
}

// TypeDeclKind distinguishes the five type declaration forms.
type TypeDeclKind int

const (
	CLASS TypeDeclKind = iota
	STRUCT_DECL
	INTERFACE
	ENUM
	RECORD
)

func (k TypeDeclKind) String() string {
	switch k {
	case CLASS:
		return "class"
	case STRUCT_DECL:
		return "struct"
	case INTERFACE:
		return "interface"
	case ENUM:
		return "enum"
	case RECORD:
		return "record"
	}
	return "class"
}

// TypeDecl represents class, struct, interface, enum and record
// declarations. Parent points at the enclosing node and is not a child.
// Example: "public sealed class Point { ... }"
type TypeDecl struct {
	Pos       Position
	EndPos    Position
	Kind      TypeDeclKind
	Access    string   // access modifier, "" when unspecified
	Modifiers []string // sealed, static, abstract, partial, ...
	Name      *Ident
	Members   []Member
	Parent    Node
}

// FieldDecl represents field members
// Example: "private int count = 0;"
type FieldDecl struct {
	Pos         Position
	EndPos      Position
	Access      string
	Modifiers   []string
	Type        *TypeRef
	Name        *Ident
	Initializer Expr // nil when the field has no initialiser
}

// AccessorKind distinguishes getters from setters.
type AccessorKind int

const (
	GET AccessorKind = iota
	SET
)

// AccessorBody distinguishes how an accessor is written.
type AccessorBody int

const (
	AUTO AccessorBody = iota
	BLOCK_BODY
	EXPR_BODY
)

// Accessor represents a property getter or setter
// Example: "get;", "set { x = value; }", "get => x;", "init;"
type Accessor struct {
	Pos      Position
	EndPos   Position
	Kind     AccessorKind
	Body     AccessorBody
	InitOnly bool // true for init-only setters
	Block    *BlockStmt
	Expr     Expr
}

// PropertyDecl represents property members
// Example: "public int X { get; set; } = 1;"
type PropertyDecl struct {
	Pos         Position
	EndPos      Position
	Access      string
	Modifiers   []string
	Type        *TypeRef
	Name        *Ident
	Accessors   []*Accessor
	Initializer Expr
}

// MethodDecl represents method members
// Example: "public int Area(int scale) { return w * h * scale; }"
type MethodDecl struct {
	Pos        Position
	EndPos     Position
	Access     string
	Modifiers  []string
	ReturnType *TypeRef
	Name       *Ident
	Params     *ParamList
	Body       *BlockStmt // nil for expression-bodied or abstract methods
	ExprBody   Expr       // non-nil for "=> expr" bodies
}

// CtorDecl represents constructor members
// Example: "public Point(int x, int y) { this.x = x; this.y = y; }"
type CtorDecl struct {
	Pos    Position
	EndPos Position
	Access string
	Name   *Ident
	Params *ParamList
	Body   *BlockStmt
}

// EnumMemberDecl represents enum members
// Example: "Red", "Green = 4"
type EnumMemberDecl struct {
	Pos    Position
	EndPos Position
	Name   *Ident
	Value  Expr // nil unless the member carries an explicit value
}
