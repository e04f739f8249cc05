package compiler

import (
	"strings"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

type symbolKind int

const (
	symVariable symbolKind = iota
	symUserVariable
	symParameter
	symLocal
	symFunction
	symProcedure
)

// symbol is a named entry of the variable table
type symbol struct {
	name string
	kind symbolKind
	id   int
	typ  executable.VariableType
	dims int

	// callables only
	params      []*ast.Parameter
	info        *executable.FunctionInfo
	implemented bool
	returnID    int
	tok         token.Token
}

func (s *symbol) isCallable() bool { return s.kind == symFunction || s.kind == symProcedure }

// routine is a function or procedure body being compiled
type routine struct {
	sym        *symbol
	locals     map[string]*symbol
	statements []ast.Statement
	function   bool
}

func key(name string) string { return strings.ToUpper(name) }

// lookup resolves a name in the current routine, then the globals
func (c *Compiler) lookup(name string) (*symbol, bool) {
	k := key(name)
	if c.current != nil {
		if c.current.function && k == c.current.sym.name {
			return &symbol{name: k, kind: symLocal, id: c.current.sym.returnID, typ: c.current.sym.typ}, true
		}
		if s, ok := c.current.locals[k]; ok {
			return s, true
		}
	}
	if s, ok := c.callables[k]; ok {
		return s, true
	}
	s, ok := c.globals[k]
	return s, ok
}

func headerFor(typ executable.VariableType, dims []int) executable.VarHeader {
	h := executable.VarHeader{Type: typ, Dim: uint8(len(dims))}
	if len(dims) > 0 {
		h.Vector = dims[0]
	}
	if len(dims) > 1 {
		h.Matrix = dims[1]
	}
	if len(dims) > 2 {
		h.Cube = dims[2]
	}
	return h
}

func (c *Compiler) pushVariable(name string, role executable.EntryRole, typ executable.VariableType, dims []int, owner int) int {
	h := headerFor(typ, dims)
	return c.exe.Variables.Push(executable.TableEntry{
		Header:     h,
		Name:       name,
		Role:       role,
		Value:      h.NewValue(),
		FunctionID: owner,
	})
}

// declarations collects the variable declarations of already lowered code
func declarations(stmts []ast.Statement) []*ast.VariableDeclarationStatement {
	var res []*ast.VariableDeclarationStatement
	for _, s := range stmts {
		if d, ok := s.(*ast.VariableDeclarationStatement); ok {
			res = append(res, d)
		}
	}
	return res
}

// declareUserVariables pushes the U_* block. It has to be the first thing in the table.
func (c *Compiler) declareUserVariables() {
	for _, u := range executable.UserVariablesFor(c.opts.Version) {
		h := u.Header()
		id := c.exe.Variables.Push(executable.TableEntry{Header: h, Name: u.Name, Role: executable.RoleUserVariable, Value: h.NewValue()})
		c.globals[key(u.Name)] = &symbol{name: u.Name, kind: symUserVariable, id: id, typ: u.Type, dims: int(h.Dim)}
	}
}

func (c *Compiler) declareGlobals(stmts []ast.Statement) {
	for _, d := range declarations(stmts) {
		for _, v := range d.Variables {
			k := key(v.Name.Value)
			if prev, ok := c.globals[k]; ok && prev.kind != symUserVariable {
				c.addError(diagnostics.ErrC009, v.Name.Token, v.Name.Value)
				continue
			}
			if _, ok := c.callables[k]; ok {
				c.addError(diagnostics.ErrC009, v.Name.Token, v.Name.Value)
				continue
			}
			id := c.pushVariable(k, executable.RoleVariable, d.Type, v.Dimensions, 0)
			c.globals[k] = &symbol{name: k, kind: symVariable, id: id, typ: d.Type, dims: len(v.Dimensions)}
		}
	}
}

// declareCallables registers every DECLAREd or implemented function and
// procedure so calls can be resolved before their bodies are compiled
func (c *Compiler) declareCallables(prog *ast.Program) {
	signature := func(name *ast.Identifier, kind symbolKind, params []*ast.Parameter, ret executable.VariableType) *symbol {
		k := key(name.Value)
		s, ok := c.callables[k]
		if !ok {
			s = &symbol{name: k, kind: kind, typ: ret, params: params, tok: name.Token}
			c.callables[k] = s
		}
		return s
	}
	for _, d := range prog.Declarations() {
		switch d := d.(type) {
		case *ast.FunctionDeclaration:
			signature(d.Name, symFunction, d.Parameters, d.ReturnType)
		case *ast.ProcedureDeclaration:
			signature(d.Name, symProcedure, d.Parameters, executable.TypeProcedure)
		case *ast.FunctionImplementation:
			s := signature(d.Name, symFunction, d.Parameters, d.ReturnType)
			s.params = d.Parameters
			c.implemented(s, d.Name)
		case *ast.ProcedureImplementation:
			s := signature(d.Name, symProcedure, d.Parameters, executable.TypeProcedure)
			s.params = d.Parameters
			c.implemented(s, d.Name)
		}
	}
}

func (c *Compiler) implemented(s *symbol, name *ast.Identifier) {
	if s.implemented {
		c.addError(diagnostics.ErrC009, name.Token, name.Value)
		return
	}
	s.implemented = true
}

// declareRoutine lays out one routine: the entry itself, its parameters,
// its locals and for functions the result slot
func (c *Compiler) declareRoutine(s *symbol, body []ast.Statement) *routine {
	r := &routine{sym: s, locals: make(map[string]*symbol), statements: body, function: s.kind == symFunction}
	entryType := executable.TypeProcedure
	if r.function {
		entryType = executable.TypeFunction
	}
	info := &executable.FunctionInfo{Parameters: uint8(len(s.params))}
	s.id = c.exe.Variables.Push(executable.TableEntry{
		Header:   executable.VarHeader{Type: entryType},
		Name:     s.name,
		Role:     executable.RoleProcedure,
		Function: info,
	})
	if r.function {
		c.entry(s.id).Role = executable.RoleFunction
	}
	s.info = info
	info.FirstVarID = int16(s.id)

	for i, p := range s.params {
		name := ""
		if p.Name != nil {
			name = key(p.Name.Value)
		}
		id := c.pushVariable(name, executable.RoleParameter, p.Type, p.Dimensions, s.id)
		if p.IsVar && !r.function && i < 16 {
			info.PassFlags |= 1 << uint(i)
		}
		if name == "" {
			continue
		}
		if _, dup := r.locals[name]; dup {
			c.addError(diagnostics.ErrC009, p.Name.Token, p.Name.Value)
			continue
		}
		r.locals[name] = &symbol{name: name, kind: symParameter, id: id, typ: p.Type, dims: len(p.Dimensions)}
	}

	locals := 0
	for _, d := range declarations(body) {
		for _, v := range d.Variables {
			k := key(v.Name.Value)
			if _, dup := r.locals[k]; dup || (r.function && k == s.name) {
				c.addError(diagnostics.ErrC009, v.Name.Token, v.Name.Value)
				continue
			}
			id := c.pushVariable(k, executable.RoleLocalVariable, d.Type, v.Dimensions, s.id)
			r.locals[k] = &symbol{name: k, kind: symLocal, id: id, typ: d.Type, dims: len(v.Dimensions)}
			locals++
		}
	}

	if r.function {
		s.returnID = c.pushVariable(s.name, executable.RoleFunctionResult, s.typ, nil, s.id)
		info.ReturnVar = int16(s.returnID)
		locals++
	}
	info.Locals = uint8(locals)
	return r
}

func (c *Compiler) entry(id int) *executable.TableEntry {
	e, _ := c.exe.Variables.Entry(id)
	return e
}

type constantKey struct {
	kind token.ConstantKind
	text string
}

// constant returns the id of a literal. Equal literals share one entry.
func (c *Compiler) constant(v token.Constant) int {
	norm := v
	norm.Format = token.FormatDefault
	k := constantKey{v.Kind, norm.String()}
	if id, ok := c.constants[k]; ok {
		return id
	}
	val := constantValue(v)
	id := c.exe.Variables.Push(executable.TableEntry{
		Header: executable.VarHeader{Type: val.Type},
		Role:   executable.RoleConstant,
		Value:  val,
	})
	c.constants[k] = id
	return id
}

func constantValue(v token.Constant) executable.Value {
	switch v.Kind {
	case token.ConstUnsigned:
		return executable.NewUnsigned(v.Unsigned)
	case token.ConstMoney:
		return executable.NewMoney(v.Int)
	case token.ConstString:
		return executable.NewString(v.Str)
	case token.ConstDouble:
		return executable.NewDouble(v.Double)
	case token.ConstBoolean:
		return executable.NewBool(v.Bool)
	case token.ConstBuiltin:
		return executable.NewInt(v.Builtin.Value)
	}
	return executable.NewInt(v.Int)
}

// wantsUserVariables reports whether the program reads a U_* variable it never declares
func (c *Compiler) wantsUserVariables(prog *ast.Program) bool {
	if prog.UserVariables || c.opts.UserVariables {
		return true
	}
	declared := make(map[string]bool)
	for _, d := range declarations(prog.Statements()) {
		for _, v := range d.Variables {
			declared[key(v.Name.Value)] = true
		}
	}
	found := false
	ast.Rewrite(prog, func(n ast.Node) ast.Node {
		if id, ok := n.(*ast.Identifier); ok && !declared[key(id.Value)] {
			if _, ok := executable.LookupUserVariable(id.Value, c.opts.Version); ok {
				found = true
			}
		}
		return n
	})
	return found
}
