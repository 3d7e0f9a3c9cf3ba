package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cslex/internal/lexer"
)

func TestFormatIncludesCodeAndSource(t *testing.T) {
	source := "int x = `;"
	_, err := lexer.New(source).Lex()
	require.Error(t, err)
	scanErr, ok := err.(*lexer.ScanError)
	require.True(t, ok)

	out := NewReporter("sample.cs", source).Format(scanErr)

	assert.Contains(t, out, "E0101")
	assert.Contains(t, out, "sample.cs:1:8")
	assert.Contains(t, out, "int x = `;")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "3 tokens scanned")
}

func TestCodeForCoversAllKinds(t *testing.T) {
	tests := []struct {
		kind lexer.ErrorKind
		code string
	}{
		{lexer.ErrUnrecognizedChar, ErrorUnrecognizedCharacter},
		{lexer.ErrMalformedNumber, ErrorMalformedNumericLiteral},
		{lexer.ErrUnknownEscape, ErrorUnknownEscapeSequence},
		{lexer.ErrUnterminatedLiteral, ErrorUnterminatedLiteral},
		{lexer.ErrUnsupportedConstruct, ErrorUnsupportedConstruct},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, CodeFor(tt.kind))
	}
}
