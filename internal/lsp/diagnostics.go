package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"fieldpath/cst"
)

// ConvertErrors transforms parse diagnostics into LSP diagnostics for IDE
// display. The result is never nil: publishing an empty list is how the
// editor's stale squiggles get cleared.
func ConvertErrors(parseErrors []cst.SyntaxError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(parseErrors))

	for _, parseErr := range parseErrors {
		length := parseErr.Length
		if length < 1 {
			length = 1
		}

		code := protocol.IntegerOrString{Value: parseErr.Code}
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),   // LSP is 0-based
					Character: uint32(parseErr.Position.Column - 1), // LSP is 0-based
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column - 1 + length),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &code,
			Source:   ptrString("fieldpath"),
			Message:  parseErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
