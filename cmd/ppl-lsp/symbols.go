package main

import (
	"fmt"
	"strings"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

type symbolKind int

const (
	symbolVariable symbolKind = iota
	symbolParameter
	symbolLabel
	symbolFunction
	symbolProcedure
	symbolDeclaration
)

// symbol is a name the source defines, with the token that defines it
type symbol struct {
	name   string
	kind   symbolKind
	detail string
	tok    token.Token
	width  int
}

// collectSymbols lists the variables, labels and subroutines of a program in source order
func collectSymbols(prog *ast.Program) []symbol {
	if prog == nil {
		return nil
	}
	var out []symbol
	params := func(ps []*ast.Parameter) {
		for _, p := range ps {
			if p.Name == nil {
				continue
			}
			out = append(out, symbol{
				name:   p.Name.Value,
				kind:   symbolParameter,
				detail: formatParameter(p),
				tok:    p.Name.Token,
				width:  len(p.Name.Value),
			})
		}
	}

	ast.Inspect(prog, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.VariableDeclarationStatement:
			for _, v := range n.Variables {
				if v.Name == nil {
					continue
				}
				out = append(out, symbol{
					name:   v.Name.Value,
					kind:   symbolVariable,
					detail: typeName(n.Type, n.TypeName) + " " + v.Name.Value + formatDims(v.Dimensions),
					tok:    v.Name.Token,
					width:  len(v.Name.Value),
				})
			}
			return false
		case *ast.LabelStatement:
			out = append(out, symbol{
				name:   n.Label,
				kind:   symbolLabel,
				detail: ":" + n.Label,
				tok:    n.Token,
				width:  len([]rune(n.Token.Lexeme)),
			})
		case *ast.FunctionImplementation:
			if n.Name != nil {
				out = append(out, symbol{
					name:   n.Name.Value,
					kind:   symbolFunction,
					detail: "FUNCTION " + n.Name.Value + formatParameters(n.Parameters) + " " + typeName(n.ReturnType, n.ReturnTypeName),
					tok:    n.Name.Token,
					width:  len(n.Name.Value),
				})
			}
			params(n.Parameters)
		case *ast.ProcedureImplementation:
			if n.Name != nil {
				out = append(out, symbol{
					name:   n.Name.Value,
					kind:   symbolProcedure,
					detail: "PROCEDURE " + n.Name.Value + formatParameters(n.Parameters),
					tok:    n.Name.Token,
					width:  len(n.Name.Value),
				})
			}
			params(n.Parameters)
		case *ast.FunctionDeclaration:
			if n.Name != nil {
				out = append(out, symbol{
					name:   n.Name.Value,
					kind:   symbolDeclaration,
					detail: "DECLARE FUNCTION " + n.Name.Value + formatParameters(n.Parameters) + " " + typeName(n.ReturnType, n.ReturnTypeName),
					tok:    n.Name.Token,
					width:  len(n.Name.Value),
				})
			}
			return false
		case *ast.ProcedureDeclaration:
			if n.Name != nil {
				out = append(out, symbol{
					name:   n.Name.Value,
					kind:   symbolDeclaration,
					detail: "DECLARE PROCEDURE " + n.Name.Value + formatParameters(n.Parameters),
					tok:    n.Name.Token,
					width:  len(n.Name.Value),
				})
			}
			return false
		}
		return true
	})
	return out
}

// lookupSymbol finds the definition of name. Labels only match when wantLabel
// is set, and implementations win over DECLARE lines.
func lookupSymbol(symbols []symbol, name string, wantLabel bool) (symbol, bool) {
	var found *symbol
	for i := range symbols {
		s := &symbols[i]
		if !strings.EqualFold(s.name, name) || (s.kind == symbolLabel) != wantLabel {
			continue
		}
		if found == nil || (found.kind == symbolDeclaration && s.kind != symbolDeclaration) {
			found = s
		}
	}
	if found == nil {
		return symbol{}, false
	}
	return *found, true
}

func typeName(t executable.VariableType, name string) string {
	if name != "" {
		return strings.ToUpper(name)
	}
	return t.Keyword()
}

func formatDims(dims []int) string {
	if len(dims) == 0 {
		return ""
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprint(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatParameter(p *ast.Parameter) string {
	var b strings.Builder
	if p.IsVar {
		b.WriteString("VAR ")
	}
	b.WriteString(typeName(p.Type, p.TypeName))
	if p.Name != nil {
		b.WriteString(" " + p.Name.Value + formatDims(p.Dimensions))
	}
	return b.String()
}

func formatParameters(ps []*ast.Parameter) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = formatParameter(p)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
