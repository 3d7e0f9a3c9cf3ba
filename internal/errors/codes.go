package errors

import "cslex/internal/lexer"

// Error codes used in diagnostics and documentation.
//
// Error code ranges:
// E0100-E0199: Lexical errors
// E0200-E0299: Reserved for parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0101: The dispatch found no rule for a character
	ErrorUnrecognizedCharacter = "E0101"

	// E0102: Numeric literal reader/parser failures
	ErrorMalformedNumericLiteral = "E0102"

	// E0103: Escape sequence outside the recognised set
	ErrorUnknownEscapeSequence = "E0103"

	// E0104: End of input inside a string or character literal
	ErrorUnterminatedLiteral = "E0104"

	// E0105: Recognised but unsupported syntax (raw string literals)
	ErrorUnsupportedConstruct = "E0105"
)

// CodeFor maps a scan error kind to its diagnostic code.
func CodeFor(kind lexer.ErrorKind) string {
	switch kind {
	case lexer.ErrUnrecognizedChar:
		return ErrorUnrecognizedCharacter
	case lexer.ErrMalformedNumber:
		return ErrorMalformedNumericLiteral
	case lexer.ErrUnknownEscape:
		return ErrorUnknownEscapeSequence
	case lexer.ErrUnterminatedLiteral:
		return ErrorUnterminatedLiteral
	case lexer.ErrUnsupportedConstruct:
		return ErrorUnsupportedConstruct
	}
	return ErrorUnrecognizedCharacter
}
