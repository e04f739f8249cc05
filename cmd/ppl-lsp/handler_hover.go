package main

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/lexer"
)

func (s *LanguageServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	text, ok := s.hover(doc, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: text},
	}, nil
}

// hover describes the word under the cursor. Names the source declares come
// first, then host types, predefined statements, functions and keywords.
func (s *LanguageServer) hover(doc *document, line, char int) (string, bool) {
	word := getWordAtPosition(doc.content, line, char)
	if word == "" {
		return "", false
	}
	symbols := collectSymbols(doc.ctx.AstRoot)
	if sym, ok := lookupSymbol(symbols, word, false); ok {
		return codeBlock(sym.detail), true
	}
	if sym, ok := lookupSymbol(symbols, word, true); ok {
		return "label " + codeBlock(sym.detail), true
	}
	if ut, ok := s.registry.Lookup(word); ok {
		return describeUserType(ut), true
	}
	if def := executable.LookupStatement(word); def != nil {
		return describeStatement(def), true
	}
	if def := executable.LookupFunction(word); def != nil && def.Sig == executable.FuncFixedParameters {
		return describeFunction(def), true
	}
	if lexer.IsKeyword(word, executable.LastPPLC) {
		return "keyword " + codeBlock(strings.ToUpper(word)), true
	}
	if t, ok := executable.TypeFromKeyword(word, executable.LastPPLC); ok {
		return "type " + codeBlock(t.Keyword()), true
	}
	return "", false
}

func codeBlock(s string) string {
	return "\n```ppl\n" + s + "\n```"
}

func describeStatement(def *executable.StatementDef) string {
	lo, hi := def.ArgumentRange()
	var args string
	switch {
	case hi >= 1<<15:
		args = fmt.Sprintf("%d or more arguments", lo)
	case lo == hi:
		args = arguments(lo)
	default:
		args = fmt.Sprintf("%d to %d arguments", lo, hi)
	}
	return fmt.Sprintf("statement `%s`\n\n%s, since %s", strings.ToUpper(def.Name), args, versionString(def.Version))
}

func describeFunction(def *executable.FunctionDef) string {
	return fmt.Sprintf("function `%s`\n\n%s, since %s", def.Name, arguments(def.Arity), versionString(def.Version))
}

func describeUserType(ut *executable.UserType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "object type `%s`\n\n", ut.Name)
	for _, m := range ut.Members {
		switch m.Kind {
		case executable.MemberField:
			fmt.Fprintf(&b, "- `%s` %s\n", m.Name, m.Type.Keyword())
		case executable.MemberFunction:
			fmt.Fprintf(&b, "- `%s(%s)` %s\n", m.Name, typeList(m.Params), m.Type.Keyword())
		case executable.MemberProcedure:
			fmt.Fprintf(&b, "- `%s(%s)`\n", m.Name, typeList(m.Params))
		}
	}
	return b.String()
}

func typeList(ts []executable.VariableType) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.Keyword()
	}
	return strings.Join(parts, ", ")
}

func arguments(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", n)
}

func versionString(v int) string {
	return fmt.Sprintf("PPL %d.%02d", v/100, v%100)
}
