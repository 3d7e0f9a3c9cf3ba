// Package grammar holds a declarative, regex-granularity description of
// the lexical surface, built on participle's stateful lexer. It is a
// coarse alternate front-end: the hand-written scanner in internal/lexer
// is authoritative, and tests use this definition to cross-check token
// coverage.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CSharpLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`, Action: nil},

		// Preprocessor lines
		{Name: "Preproc", Pattern: `#[^\n]*`, Action: nil},

		// String-ish literals (order matters: sigiled forms first)
		{Name: "VerbatimString", Pattern: `@\$?"(?:[^"]|"")*"`, Action: nil},
		{Name: "InterpString", Pattern: `\$@"(?:[^"]|"")*"|\$"(?:\\.|[^"\\])*"`, Action: nil},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`, Action: nil},
		{Name: "Char", Pattern: `'(?:\\.|[^'\\])'`, Action: nil},

		// Numeric literals
		{Name: "Number", Pattern: `0[xX][0-9a-fA-F_]*[uUlL]*|0[bB][01_]*[uUlL]*|[0-9][0-9_]*\.?[0-9_]*[a-zA-Z]*|\.[0-9][0-9_]*[a-zA-Z]*`, Action: nil},

		// Keywords and identifiers share one class at this granularity
		{Name: "Ident", Pattern: `@?[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Operators (longest first)
		{Name: "Operator", Pattern: `\?\?=|\?\?|&&|\|\||==|!=|<=|>=|=>|\+\+|--|\+=|-=|\*=|/=|%=|&=|\|=|\^=|::|\.\.|[+\-*/%&|^!<>=?~]`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[{}()\[\];,.:]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})

// Symbol names, keyed by the numeric token type participle assigns.
var symbolNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, typ := range CSharpLexer.Symbols() {
		names[typ] = name
	}
	return names
}()

// Tokens runs the declarative lexer over source and returns the symbolic
// rule name of every significant token, skipping whitespace, comments and
// preprocessor lines.
func Tokens(source string) ([]string, error) {
	lex, err := CSharpLexer.LexString("", source)
	if err != nil {
		return nil, err
	}

	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, tok := range all {
		name := symbolNames[tok.Type]
		switch name {
		case "Whitespace", "Comment", "Preproc", "EOF", "":
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
