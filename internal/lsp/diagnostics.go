package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"cslex/internal/errors"
	"cslex/internal/lexer"
)

// ConvertScanError transforms a fatal scan error into LSP diagnostics for
// IDE display. Scan errors cover tokenization issues like invalid
// characters and unterminated literals.
func ConvertScanError(scanErr *lexer.ScanError) []protocol.Diagnostic {
	if scanErr == nil {
		return nil
	}

	// Columns are already 0-based, matching LSP character offsets.
	endChar := uint32(scanErr.Position.Column + scanErr.Length)
	if scanErr.Length == 0 {
		endChar = uint32(scanErr.Position.Column + 1)
	}

	code := errors.CodeFor(scanErr.Kind)
	return []protocol.Diagnostic{
		{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: endChar,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: code},
			Source:   ptrString("cslex"),
			Message:  scanErr.Message,
		},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
