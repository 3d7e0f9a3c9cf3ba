package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexSingleString(t *testing.T, input string, expected TokenType) Token {
	t.Helper()
	tokens, err := New(input).Lex()
	require.NoError(t, err)
	require.Len(t, tokens, 2, "expected one string token plus EOF for %q", input)
	require.Equal(t, expected, tokens[0].Type)
	return tokens[0]
}

func TestPlainString(t *testing.T) {
	tok := lexSingleString(t, `"hi"`, STRING)
	assert.Equal(t, `"hi"`, tok.Lexeme, "lexeme keeps the quotes")
}

func TestEscapesArePreservedVerbatim(t *testing.T) {
	tok := lexSingleString(t, `"a\nb\t\"c\""`, STRING)
	assert.Equal(t, `"a\nb\t\"c\""`, tok.Lexeme)
}

func TestEscapedBackslashDoesNotEscapeQuote(t *testing.T) {
	tok := lexSingleString(t, `"a\\"`, STRING)
	assert.Equal(t, `"a\\"`, tok.Lexeme)
}

func TestVerbatimStringDoubledQuotes(t *testing.T) {
	tok := lexSingleString(t, `@"a""b"`, STRING)
	assert.Equal(t, `@"a""b"`, tok.Lexeme)
}

func TestVerbatimStringBackslashesAreLiteral(t *testing.T) {
	tok := lexSingleString(t, `@"C:\temp\"`, STRING)
	assert.Equal(t, `@"C:\temp\"`, tok.Lexeme)
}

func TestVerbatimStringSpansLines(t *testing.T) {
	tok := lexSingleString(t, "@\"line1\nline2\"", STRING)
	assert.Equal(t, "@\"line1\nline2\"", tok.Lexeme)
}

func TestInterpolatedStringHoleDoesNotTerminate(t *testing.T) {
	tok := lexSingleString(t, `$"x={1+2}"`, INTERP_STRING)
	assert.Equal(t, `$"x={1+2}"`, tok.Lexeme)
}

func TestInterpolatedStringQuoteInsideHole(t *testing.T) {
	tok := lexSingleString(t, `$"{Get("k")}!"`, INTERP_STRING)
	assert.Equal(t, `$"{Get("k")}!"`, tok.Lexeme)
}

func TestInterpolatedStringLiteralBraces(t *testing.T) {
	tok := lexSingleString(t, `$"{{literal}} {x}"`, INTERP_STRING)
	assert.Equal(t, `$"{{literal}} {x}"`, tok.Lexeme)
}

func TestVerbatimInterpolatedBothSigilOrders(t *testing.T) {
	for _, input := range []string{`$@"a""b{x}"`, `@$"a""b{x}"`} {
		tok := lexSingleString(t, input, INTERP_STRING)
		assert.Equal(t, input, tok.Lexeme)
	}
}

func TestNestedHoles(t *testing.T) {
	tok := lexSingleString(t, `$"{a ? {b} : c}"`, INTERP_STRING)
	assert.Equal(t, `$"{a ? {b} : c}"`, tok.Lexeme)
}

func TestUnterminatedStringFails(t *testing.T) {
	for _, input := range []string{`"abc`, `@"abc`, `$"abc{1`, `"abc\"`} {
		_, err := New(input).Lex()
		require.Error(t, err, "input %q", input)
		scanErr, ok := err.(*ScanError)
		require.True(t, ok)
		assert.Equal(t, ErrUnterminatedLiteral, scanErr.Kind, "input %q", input)
	}
}

func TestRawStringLiteralsAreUnsupported(t *testing.T) {
	_, err := New(`"""raw"""`).Lex()
	require.Error(t, err)
	scanErr, ok := err.(*ScanError)
	require.True(t, ok)
	assert.Equal(t, ErrUnsupportedConstruct, scanErr.Kind)
}

func TestCharLiterals(t *testing.T) {
	tests := []string{`'a'`, `'\n'`, `'\''`, `'\\'`, `'\0'`, `'"'`}
	for _, input := range tests {
		tokens, err := New(input).Lex()
		require.NoError(t, err, "input %q", input)
		require.Equal(t, CHAR, tokens[0].Type)
		assert.Equal(t, input, tokens[0].Lexeme, "lexeme keeps both quotes")
	}
}

func TestCharLiteralUnknownEscape(t *testing.T) {
	_, err := New(`'\q'`).Lex()
	require.Error(t, err)
	scanErr, ok := err.(*ScanError)
	require.True(t, ok)
	assert.Equal(t, ErrUnknownEscape, scanErr.Kind)
}

func TestCharLiteralErrors(t *testing.T) {
	for _, input := range []string{`'a`, `'`, `''`, `'ab'`} {
		_, err := New(input).Lex()
		require.Error(t, err, "input %q", input)
		scanErr, ok := err.(*ScanError)
		require.True(t, ok)
		assert.Equal(t, ErrUnterminatedLiteral, scanErr.Kind, "input %q", input)
	}
}

func TestValidateEscapes(t *testing.T) {
	assert.NoError(t, ValidateEscapes(`a\nb\t\"`))
	assert.NoError(t, ValidateEscapes(`\x41\u0041\U00000041`), "\\x, \\u and \\U pass unvalidated")
	assert.Error(t, ValidateEscapes(`\q`))
}
