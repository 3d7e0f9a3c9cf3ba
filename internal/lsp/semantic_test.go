package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cslex/internal/lexer"
)

func TestCollectSemanticTokens(t *testing.T) {
	tokens, err := lexer.New("int x = 1;").Lex()
	require.NoError(t, err)

	semTokens := collectSemanticTokens(tokens)
	// "int", "x", "=", "1" are classified; ";" and EOF are not.
	require.Len(t, semTokens, 4)

	assert.Equal(t, semanticTypeIndex["keyword"], semTokens[0].TokenType)
	assert.Equal(t, semanticTypeIndex["variable"], semTokens[1].TokenType)
	assert.Equal(t, semanticTypeIndex["operator"], semTokens[2].TokenType)
	assert.Equal(t, semanticTypeIndex["number"], semTokens[3].TokenType)

	assert.Equal(t, uint32(0), semTokens[0].Line)
	assert.Equal(t, uint32(0), semTokens[0].StartChar)
	assert.Equal(t, uint32(3), semTokens[0].Length)
	assert.Equal(t, uint32(4), semTokens[1].StartChar)
}

func TestStringTokensClassifyAsString(t *testing.T) {
	tokens, err := lexer.New(`string s = $"v={x}";`).Lex()
	require.NoError(t, err)

	semTokens := collectSemanticTokens(tokens)
	var classes []int
	for _, tok := range semTokens {
		classes = append(classes, tok.TokenType)
	}
	assert.Contains(t, classes, semanticTypeIndex["string"])
}

func TestMultilineLexemeLengthStopsAtLineEnd(t *testing.T) {
	tokens, err := lexer.New("@\"ab\ncd\"").Lex()
	require.NoError(t, err)

	semTokens := collectSemanticTokens(tokens)
	require.Len(t, semTokens, 1)
	assert.Equal(t, uint32(4), semTokens[0].Length, "length covers @\"ab only")
}

func TestConvertScanError(t *testing.T) {
	_, err := lexer.New("\"unterminated").Lex()
	require.Error(t, err)
	scanErr := err.(*lexer.ScanError)

	diagnostics := ConvertScanError(scanErr)
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, uint32(0), d.Range.Start.Line)
	assert.Equal(t, uint32(0), d.Range.Start.Character)
	assert.Equal(t, scanErr.Message, d.Message)
	require.NotNil(t, d.Code)
	assert.Equal(t, "E0104", d.Code.Value)
}

func TestConvertNilScanError(t *testing.T) {
	assert.Nil(t, ConvertScanError(nil))
}
