package ast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryExprRendersOperatorSymbol(t *testing.T) {
	tests := []struct {
		op       string
		expected string
	}{
		{"+", "a + b"},
		{"==", "a == b"},
		{"!=", "a != b"},
		{"&&", "a && b"},
		{"+=", "a += b"},
	}
	for _, tt := range tests {
		expr := &BinaryExpr{Op: tt.op, Left: identExpr("a"), Right: identExpr("b")}
		assert.Equal(t, tt.expected, expr.String())
	}
}

func TestUnaryExprRendersPrefixAndPostfix(t *testing.T) {
	prefix := &UnaryExpr{Op: "-", Operand: identExpr("x"), Prefix: true}
	assert.Equal(t, "-x", prefix.String())

	postfix := &UnaryExpr{Op: "++", Operand: identExpr("i"), Prefix: false}
	assert.Equal(t, "i++", postfix.String())
}

func TestCallExprRendering(t *testing.T) {
	call := &CallExpr{
		Callee: &MemberAccessExpr{Target: identExpr("Console"), Member: ident("WriteLine")},
		Args: &ArgList{Args: []*Arg{
			{Value: identExpr("msg")},
		}},
	}
	assert.Equal(t, "Console.WriteLine(msg)", call.String())
}

func TestArgListCollapsesPastTen(t *testing.T) {
	args := make([]*Arg, 13)
	for i := range args {
		args[i] = &Arg{Value: identExpr(fmt.Sprintf("a%d", i))}
	}
	list := &ArgList{Args: args}
	assert.Equal(t, "(...13 args)", list.String())

	short := &ArgList{Args: args[:10]}
	assert.Contains(t, short.String(), "a0", "ten entries still render in full")
}

func TestBracketedArgList(t *testing.T) {
	access := &ElementAccessExpr{
		Target: identExpr("items"),
		Args: &ArgList{
			Bracketed: true,
			Args:      []*Arg{{Value: identExpr("i")}},
		},
	}
	assert.Equal(t, "items[i]", access.String())
}

func TestConditionalExprRendering(t *testing.T) {
	expr := &ConditionalExpr{
		Cond: &BinaryExpr{Op: ">", Left: identExpr("x"), Right: &LiteralExpr{Kind: NUMBER_LIT, Text: "0"}},
		Then: identExpr("x"),
		Else: &UnaryExpr{Op: "-", Operand: identExpr("x"), Prefix: true},
	}
	assert.Equal(t, "x > 0 ? x : -x", expr.String())
}

func TestObjectCreationRendering(t *testing.T) {
	expr := &ObjectCreationExpr{
		Type: &TypeRef{
			Name:     singleName("List"),
			TypeArgs: &TypeArgList{Args: []*TypeRef{typeRef("int")}},
		},
		Args: &ArgList{},
	}
	assert.Equal(t, "new List<int>()", expr.String())
}

func TestUsingDirectiveRendering(t *testing.T) {
	u := &UsingDirective{
		Path: &QualifiedName{Parts: []*Ident{ident("System"), ident("Collections"), ident("Generic")}},
	}
	assert.Equal(t, "using System.Collections.Generic;", u.String())

	u.Alias = ident("Gen")
	assert.Equal(t, "using Gen = System.Collections.Generic;", u.String())
}

func TestStatementRendering(t *testing.T) {
	decl := &VarDeclStmt{
		Type: typeRef("int"),
		Name: ident("x"),
		Init: &LiteralExpr{Kind: NUMBER_LIT, Text: "1", Value: int32(1)},
	}
	assert.Equal(t, "int x = 1;", decl.String())

	ret := &ReturnStmt{Value: identExpr("x")}
	assert.Equal(t, "return x;", ret.String())

	assert.Equal(t, ";", (&EmptyStmt{}).String())

	loop := &WhileStmt{Cond: identExpr("running"), Body: &BlockStmt{Stmts: []Stmt{ret}}}
	assert.Equal(t, "while (running) { return x; }", loop.String())

	doLoop := &DoWhileStmt{Body: &BlockStmt{}, Cond: identExpr("running")}
	assert.Equal(t, "do { } while (running);", doLoop.String())
}

func TestForeachRendering(t *testing.T) {
	stmt := &ForeachStmt{
		Name:       ident("item"),
		Collection: identExpr("items"),
		Body:       &BlockStmt{},
	}
	assert.Equal(t, "foreach (var item in items) { }", stmt.String())

	stmt.Type = typeRef("string")
	assert.Equal(t, "foreach (string item in items) { }", stmt.String())
}

func TestTypeDeclRendering(t *testing.T) {
	decl := &TypeDecl{
		Kind:      CLASS,
		Access:    "public",
		Modifiers: []string{"sealed"},
		Name:      ident("Point"),
		Members: []Member{
			&FieldDecl{Access: "private", Type: typeRef("int"), Name: ident("x")},
		},
	}
	assert.Equal(t, "public sealed class Point { private int x; }", decl.String())
}

func TestAccessorRendering(t *testing.T) {
	auto := &Accessor{Kind: GET, Body: AUTO}
	assert.Equal(t, "get;", auto.String())

	initOnly := &Accessor{Kind: SET, Body: AUTO, InitOnly: true}
	assert.Equal(t, "init;", initOnly.String())

	exprBody := &Accessor{Kind: GET, Body: EXPR_BODY, Expr: identExpr("x")}
	assert.Equal(t, "get => x;", exprBody.String())
}

func TestPropertyRendering(t *testing.T) {
	prop := &PropertyDecl{
		Access: "public",
		Type:   typeRef("int"),
		Name:   ident("X"),
		Accessors: []*Accessor{
			{Kind: GET, Body: AUTO},
			{Kind: SET, Body: AUTO},
		},
	}
	assert.Equal(t, "public int X { get; set; }", prop.String())
}

func TestMethodRendering(t *testing.T) {
	method := &MethodDecl{
		Access:     "public",
		ReturnType: typeRef("int"),
		Name:       ident("Area"),
		Params: &ParamList{Params: []*Param{
			{Type: typeRef("int"), Name: ident("scale")},
		}},
		ExprBody: &BinaryExpr{Op: "*", Left: identExpr("w"), Right: identExpr("h")},
	}
	assert.Equal(t, "public int Area(int scale) => w * h;", method.String())
}

func TestEnumMemberRendering(t *testing.T) {
	plain := &EnumMemberDecl{Name: ident("Red")}
	assert.Equal(t, "Red,", plain.String())

	valued := &EnumMemberDecl{Name: ident("Green"), Value: &LiteralExpr{Kind: NUMBER_LIT, Text: "4"}}
	assert.Equal(t, "Green = 4,", valued.String())
}
