package ast

import (
	"reflect"
	"strings"

	"github.com/funvibe/ppl/internal/token"
)

var tokenType = reflect.TypeOf(token.Token{})

// IsSimilar compares two trees ignoring source positions and spelling:
// tokens, identifier case, number formats, optional LET and bracket style.
func IsSimilar(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(normalize(a), normalize(b))
}

func normalize(n Node) Node {
	out := Rewrite(n, func(n Node) Node {
		switch n := n.(type) {
		case *Identifier:
			n.Value = strings.ToUpper(n.Value)
		case *Constant:
			n.Value.Format = token.FormatDefault
		case *LetStatement:
			n.HasLet = false
			n.Bracketed = false
			if n.AssignOp == "" {
				n.AssignOp = token.EQ
			}
		case *PredefinedCallStatement:
			n.Name = strings.ToUpper(n.Name)
			n.Def = nil
		case *PredefinedFunctionCallExpression:
			n.Name = strings.ToUpper(n.Name)
			n.Func = nil
		case *VariableDeclarationStatement:
			n.TypeName = ""
			for _, v := range n.Variables {
				v.Bracketed = false
			}
		case *FunctionImplementation:
			n.ReturnTypeName = ""
			clearTypeNames(n.Parameters)
		case *FunctionDeclaration:
			n.ReturnTypeName = ""
			clearTypeNames(n.Parameters)
		case *ProcedureImplementation:
			clearTypeNames(n.Parameters)
		case *ProcedureDeclaration:
			clearTypeNames(n.Parameters)
		case *Program:
			n.File = ""
		}
		return n
	})
	if out != nil {
		clearTokens(reflect.ValueOf(out))
	}
	return out
}

func clearTypeNames(ps []*Parameter) {
	for _, p := range ps {
		p.TypeName = ""
	}
}

// clearTokens zeroes every token.Token reachable from v and turns empty slices into nil. v must be a copy made by Rewrite.
func clearTokens(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			clearTokens(v.Elem())
		}
	case reflect.Slice:
		if v.Len() == 0 {
			if v.CanSet() {
				v.Set(reflect.Zero(v.Type()))
			}
			return
		}
		for i := 0; i < v.Len(); i++ {
			clearTokens(v.Index(i))
		}
	case reflect.Struct:
		if v.Type() == tokenType {
			if v.CanSet() {
				v.Set(reflect.Zero(tokenType))
			}
			return
		}
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			if f.Type() == tokenType {
				if f.CanSet() {
					f.Set(reflect.Zero(tokenType))
				}
				continue
			}
			if f.CanSet() || f.Kind() == reflect.Pointer || f.Kind() == reflect.Slice || f.Kind() == reflect.Interface {
				clearTokens(f)
			}
		}
	}
}
