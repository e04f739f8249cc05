package compiler

import (
	"fmt"
	"strings"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

func (c *Compiler) compileStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclarationStatement, *ast.CommentStatement:
		// declarations live in the variable table

	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			c.compileStatement(inner)
		}

	case *ast.LabelStatement:
		k := key(s.Label)
		if _, dup := c.labels[k]; dup {
			c.addError(diagnostics.ErrC012, s.Token, s.Label)
			return
		}
		c.labels[k] = c.offset * 2

	case *ast.GotoStatement:
		c.jump(&executable.Statement{Op: executable.OP_GOTO}, s.Label, s.Token)

	case *ast.GosubStatement:
		c.jump(&executable.Statement{Op: executable.OP_GOSUB}, s.Label, s.Token)

	case *ast.IfStatement:
		g, ok := s.Statement.(*ast.GotoStatement)
		if !ok {
			c.addError(diagnostics.ErrC011, s.Token, "IF without GOTO")
			return
		}
		cond := c.expression(ast.Negate(s.Condition))
		if cond == nil {
			return
		}
		c.jump(&executable.Statement{Op: executable.OP_IFNOT, Args: []executable.PPEExpr{cond}}, g.Label, s.Token)

	case *ast.ReturnStatement:
		c.emit(&executable.Statement{Op: executable.OP_RETURN}, s.Token)

	case *ast.LetStatement:
		c.compileLet(s)

	case *ast.ProcedureCallStatement:
		c.compileProcedureCall(s)

	case *ast.PredefinedCallStatement:
		c.compilePredefinedCall(s)

	default:
		c.addError(diagnostics.ErrC011, tokenOf(stmt), fmt.Sprintf("%T", stmt))
	}
}

func tokenOf(n ast.Node) token.Token {
	if tp, ok := n.(ast.TokenProvider); ok {
		return tp.GetToken()
	}
	return token.Token{}
}

// jump emits a statement whose target is patched once all labels are known
func (c *Compiler) jump(s *executable.Statement, label string, tok token.Token) {
	c.emit(s, tok)
	c.pending = append(c.pending, pendingJump{stmt: s, label: label, tok: tok, labels: c.labels})
}

func (c *Compiler) compileLet(s *ast.LetStatement) {
	target := c.variable(s.Target, s.Indices)
	value := c.expression(s.Value)
	if target == nil || value == nil {
		return
	}
	c.emit(&executable.Statement{Op: executable.OP_LET, Args: []executable.PPEExpr{target, value}}, s.Token)
}

// variable resolves an assignment target
func (c *Compiler) variable(id *ast.Identifier, indices []ast.Expression) executable.PPEExpr {
	sym, ok := c.lookup(id.Value)
	if !ok {
		c.addError(diagnostics.ErrC001, id.Token, id.Value)
		return nil
	}
	if sym.isCallable() {
		c.addError(diagnostics.ErrC001, id.Token, id.Value)
		return nil
	}
	if len(indices) == 0 {
		return &executable.ValueExpr{ID: sym.id}
	}
	dims := c.expressions(indices)
	if dims == nil {
		return nil
	}
	return &executable.DimExpr{ID: sym.id, Dims: dims}
}

func (c *Compiler) compileProcedureCall(s *ast.ProcedureCallStatement) {
	sym, ok := c.lookup(s.Name.Value)
	if !ok || !sym.isCallable() {
		c.addError(diagnostics.ErrC002, s.Name.Token, s.Name.Value)
		return
	}
	if !sym.implemented {
		c.addError(diagnostics.ErrC010, s.Name.Token, s.Name.Value)
		return
	}
	if len(s.Args) != len(sym.params) {
		c.addError(diagnostics.ErrC004, s.Name.Token, s.Name.Value, len(sym.params), len(s.Args))
		return
	}
	args := c.expressions(s.Args)
	if args == nil && len(s.Args) > 0 {
		return
	}

	if sym.kind == symFunction {
		// the result is discarded
		call := &executable.FunctionCallExpr{ID: sym.id, Args: args}
		c.emit(&executable.Statement{Op: executable.OP_EVAL, Args: []executable.PPEExpr{call}}, s.Token)
		return
	}

	for i, p := range sym.params {
		if !p.IsVar {
			continue
		}
		if !c.isWritable(args[i]) {
			c.addError(diagnostics.ErrC008, s.Args[i].GetToken(), i+1, s.Name.Value)
			return
		}
	}
	c.emit(&executable.Statement{Op: executable.OP_PCALL, Target: sym.id, Args: args}, s.Token)
}

func (c *Compiler) compilePredefinedCall(s *ast.PredefinedCallStatement) {
	def := s.Def
	if def == nil {
		def = executable.LookupStatement(s.Name)
	}
	if def == nil {
		c.addError(diagnostics.ErrC002, s.Token, s.Name)
		return
	}
	name := strings.ToUpper(def.Name)
	if min, max := def.ArgumentRange(); len(s.Args) < min || len(s.Args) > max {
		c.addError(diagnostics.ErrC004, s.Token, name, min, len(s.Args))
		return
	}

	args := make([]executable.PPEExpr, 0, len(s.Args))
	for i, a := range s.Args {
		e := c.expression(a)
		if e == nil {
			return
		}
		if def.IsVariableArgument(i) && !c.isVariableOperand(def, i, e) {
			c.addError(diagnostics.ErrC008, a.GetToken(), i+1, name)
			return
		}
		args = append(args, e)
	}
	c.emit(&executable.Statement{Op: def.Opcode, Args: args}, s.Token)
}

// isVariableOperand checks an argument that is written back by the statement.
// Some signatures store a bare id and cannot take an array element.
func (c *Compiler) isVariableOperand(def *executable.StatementDef, i int, e executable.PPEExpr) bool {
	if _, bare := e.(*executable.ValueExpr); !bare && needsBareID(def, i) {
		return false
	}
	return c.isWritable(e)
}

// isWritable reports whether e names a variable rather than a literal or a computed value
func (c *Compiler) isWritable(e executable.PPEExpr) bool {
	id, ok := executable.VariableID(e)
	if !ok {
		return false
	}
	entry := c.entry(id)
	return entry != nil && entry.Role != executable.RoleConstant
}

func needsBareID(def *executable.StatementDef, i int) bool {
	switch def.Sig {
	case executable.SigVariableArguments, executable.SigSort:
		return true
	case executable.SigDcreate:
		return i == 3
	case executable.SigDlockg:
		return i == 1
	}
	return false
}
