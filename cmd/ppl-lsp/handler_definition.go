package main

import (
	"regexp"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// labelContext matches the text in front of a label reference
var labelContext = regexp.MustCompile(`(?i)\b(GOTO|GOSUB)\s+$`)

func (s *LanguageServer) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	loc, ok := s.definition(doc, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}
	return loc, nil
}

// definition locates the declaration of the name under the cursor
func (s *LanguageServer) definition(doc *document, line, char int) (protocol.Location, bool) {
	word := getWordAtPosition(doc.content, line, char)
	if word == "" || doc.ctx.AstRoot == nil {
		return protocol.Location{}, false
	}

	prefix := []rune(getLine(doc.content, line))
	start := min(char, len(prefix))
	for start > 0 && isIdentifierChar(prefix[start-1]) {
		start--
	}
	wantLabel := labelContext.MatchString(string(prefix[:start]))

	sym, ok := lookupSymbol(collectSymbols(doc.ctx.AstRoot), word, wantLabel)
	if !ok {
		return protocol.Location{}, false
	}
	return protocol.Location{URI: doc.uri, Range: symbolRange(sym)}, true
}

func symbolRange(sym symbol) protocol.Range {
	line := protocol.UInteger(max(sym.tok.Line-1, 0))
	col := protocol.UInteger(max(sym.tok.Column-1, 0))
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: col},
		End:   protocol.Position{Line: line, Character: col + protocol.UInteger(sym.width)},
	}
}
