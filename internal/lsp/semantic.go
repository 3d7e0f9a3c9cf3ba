package lsp

import (
	"strings"

	"cslex/internal/lexer"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions; TokenType is an index into
// SemanticTokenTypes.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

var semanticTypeIndex = func() map[string]int {
	m := make(map[string]int, len(SemanticTokenTypes))
	for i, name := range SemanticTokenTypes {
		m[name] = i
	}
	return m
}()

// collectSemanticTokens classifies every lexical token into a highlight
// class. Tokens the classifier has no class for (EOF, punctuation that
// carries no color) are skipped.
func collectSemanticTokens(tokens []lexer.Token) []SemanticToken {
	var out []SemanticToken

	for _, tok := range tokens {
		class, ok := classify(tok.Type)
		if !ok {
			continue
		}
		out = append(out, SemanticToken{
			Line:      uint32(tok.Position.Line - 1),
			StartChar: uint32(tok.Position.Column),
			Length:    uint32(firstLineLength(tok.Lexeme)),
			TokenType: semanticTypeIndex[class],
		})
	}

	return out
}

func classify(t lexer.TokenType) (string, bool) {
	switch t {
	case lexer.KEYWORD:
		return "keyword", true
	case lexer.IDENTIFIER:
		return "variable", true
	case lexer.NUMBER:
		return "number", true
	case lexer.STRING, lexer.INTERP_STRING, lexer.CHAR:
		return "string", true
	case lexer.EQUAL, lexer.EQUAL_EQUAL, lexer.ARROW,
		lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL,
		lexer.PLUS, lexer.INCREMENT, lexer.PLUS_EQUAL,
		lexer.MINUS, lexer.DECREMENT, lexer.MINUS_EQUAL,
		lexer.STAR, lexer.STAR_EQUAL, lexer.SLASH, lexer.SLASH_EQUAL,
		lexer.PERCENT, lexer.PERCENT_EQUAL,
		lexer.AMPERSAND, lexer.AND, lexer.AMPERSAND_EQUAL,
		lexer.PIPE, lexer.OR, lexer.PIPE_EQUAL,
		lexer.CARET, lexer.CARET_EQUAL,
		lexer.BANG, lexer.BANG_EQUAL,
		lexer.QUESTION, lexer.QUESTION_QUESTION, lexer.QUESTION_QUESTION_EQUAL,
		lexer.TILDE:
		return "operator", true
	}
	return "", false
}

// firstLineLength bounds multi-line lexemes (verbatim strings) to their
// first line; LSP semantic token entries cannot span lines.
func firstLineLength(lexeme string) int {
	if i := strings.IndexByte(lexeme, '\n'); i >= 0 {
		return i
	}
	return len(lexeme)
}
