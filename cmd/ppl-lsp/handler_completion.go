package main

import (
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/lexer"
)

const maxCompletionItems = 100

func (s *LanguageServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return s.completion(doc, int(params.Position.Line), int(params.Position.Character)), nil
}

// completion offers every name valid at the language version of the document
// that starts with the text left of the cursor
func (s *LanguageServer) completion(doc *document, line, char int) []protocol.CompletionItem {
	prefix := strings.ToUpper(getPrefixAtPosition(doc.content, line, char))
	version := doc.ctx.LanguageVersion
	if version == 0 {
		version = executable.LastPPLC
	}

	seen := make(map[string]bool)
	var items []protocol.CompletionItem
	add := func(label string, kind protocol.CompletionItemKind, detail string) {
		key := strings.ToUpper(label)
		if seen[key] || !strings.HasPrefix(key, prefix) {
			return
		}
		seen[key] = true
		item := protocol.CompletionItem{Label: label, Kind: &kind}
		if detail != "" {
			item.Detail = &detail
		}
		items = append(items, item)
	}

	for _, sym := range collectSymbols(doc.ctx.AstRoot) {
		switch sym.kind {
		case symbolFunction:
			add(sym.name, protocol.CompletionItemKindFunction, sym.detail)
		case symbolProcedure:
			add(sym.name, protocol.CompletionItemKindMethod, sym.detail)
		case symbolLabel:
			add(sym.name, protocol.CompletionItemKindReference, sym.detail)
		case symbolDeclaration:
		default:
			add(sym.name, protocol.CompletionItemKindVariable, sym.detail)
		}
	}
	for i := range executable.StatementDefinitions {
		def := &executable.StatementDefinitions[i]
		if def.Sig != executable.SigInvalid && def.Version <= version {
			add(strings.ToUpper(def.Name), protocol.CompletionItemKindKeyword, "statement")
		}
	}
	for i := range executable.FunctionDefinitions {
		def := &executable.FunctionDefinitions[i]
		if def.Sig == executable.FuncFixedParameters && def.Version <= version {
			add(def.Name, protocol.CompletionItemKindFunction, "function")
		}
	}
	for _, kw := range lexer.Keywords(version) {
		add(kw, protocol.CompletionItemKindKeyword, "keyword")
	}
	for _, kw := range executable.TypeKeywords(version) {
		add(kw, protocol.CompletionItemKindTypeParameter, "type")
	}
	for _, ut := range s.registry.Types() {
		add(ut.Name, protocol.CompletionItemKindClass, "object type")
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	if len(items) > maxCompletionItems {
		items = items[:maxCompletionItems]
	}
	return items
}
