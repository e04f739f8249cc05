package main

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/funvibe/ppl/internal/lexer"
	"github.com/funvibe/ppl/internal/parser"
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/prettyprinter"
)

func (s *LanguageServer) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return s.format(doc), nil
}

// format replaces the whole document with its canonical layout. Sources that
// do not parse are left alone.
func (s *LanguageServer) format(doc *document) []protocol.TextEdit {
	ctx := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(&pipeline.PipelineContext{
		SourceCode:      doc.content,
		FilePath:        uriToPath(doc.uri),
		LanguageVersion: doc.ctx.LanguageVersion,
		Registry:        s.registry,
	})
	if ctx.HasErrors() || ctx.AstRoot == nil {
		return nil
	}
	formatted := prettyprinter.Format(ctx.AstRoot)
	if formatted == doc.content {
		return nil
	}

	lines := strings.Count(doc.content, "\n")
	lastLine := doc.content[strings.LastIndex(doc.content, "\n")+1:]
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(lines), Character: protocol.UInteger(len([]rune(lastLine)))},
		},
		NewText: formatted,
	}}
}
