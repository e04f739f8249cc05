package main

import (
	"path/filepath"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/funvibe/ppl/internal/diagnostics"
)

const diagnosticSource = "ppl"

func (s *LanguageServer) publishDiagnostics(notify glsp.NotifyFunc, doc *document) {
	diags := convertDiagnostics(doc.ctx.Errors, uriToPath(doc.uri))
	go notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: diags,
	})
}

// convertDiagnostics maps pipeline errors of the file at path to LSP
// diagnostics. Errors reported for other files are left out.
func convertDiagnostics(errs []*diagnostics.DiagnosticError, path string) []protocol.Diagnostic {
	out := []protocol.Diagnostic{}
	for _, e := range errs {
		if e.File != "" && filepath.Clean(e.File) != filepath.Clean(path) {
			continue
		}
		line := max(e.Token.Line-1, 0)
		col := max(e.Token.Column-1, 0)
		width := len([]rune(e.Token.Lexeme))
		if width == 0 {
			width = 1
		}

		severity := protocol.DiagnosticSeverityError
		if e.IsWarning() {
			severity = protocol.DiagnosticSeverityWarning
		}
		source := diagnosticSource
		out = append(out, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)},
				End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col + width)},
			},
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: string(e.Code)},
			Source:   &source,
			Message:  e.Message(),
		})
	}
	return out
}
