package compiler

import (
	"fmt"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
)

// expressions compiles a list; nil means an error was reported
func (c *Compiler) expressions(list []ast.Expression) []executable.PPEExpr {
	res := make([]executable.PPEExpr, 0, len(list))
	for _, e := range list {
		compiled := c.expression(e)
		if compiled == nil {
			return nil
		}
		res = append(res, compiled)
	}
	return res
}

// expression compiles e. Errors are reported and nil is returned.
func (c *Compiler) expression(e ast.Expression) executable.PPEExpr {
	switch e := e.(type) {
	case *ast.Constant:
		return &executable.ValueExpr{ID: c.constant(e.Value)}

	case *ast.Identifier:
		return c.identifier(e)

	case *ast.ParensExpression:
		return c.expression(e.Expr)

	case *ast.UnaryExpression:
		inner := c.expression(e.Expr)
		if inner == nil {
			return nil
		}
		return &executable.UnaryExpr{Op: e.Op.FuncOpCode(), Expr: inner}

	case *ast.BinaryExpression:
		left := c.expression(e.Left)
		right := c.expression(e.Right)
		if left == nil || right == nil {
			return nil
		}
		return &executable.BinaryExpr{Op: e.Op.FuncOpCode(), Left: left, Right: right}

	case *ast.IndexerExpression:
		return c.variable(e.Name, e.Args)

	case *ast.FunctionCallExpression:
		return c.call(e)

	case *ast.PredefinedFunctionCallExpression:
		def := e.Func
		if def == nil {
			def = executable.LookupFunction(e.Name)
		}
		if def == nil {
			c.addError(diagnostics.ErrC002, e.Token, e.Name)
			return nil
		}
		if def.Arity >= 0 && len(e.Args) != def.Arity {
			c.addError(diagnostics.ErrC004, e.Token, e.Name, def.Arity, len(e.Args))
			return nil
		}
		args := c.expressions(e.Args)
		if args == nil {
			return nil
		}
		return &executable.PredefinedCallExpr{Func: def.Opcode, Args: args}

	case *ast.MemberReferenceExpression:
		obj := c.expression(e.Expr)
		if obj == nil {
			return nil
		}
		member, ok := c.member(e)
		if !ok {
			return nil
		}
		return &executable.MemberExpr{Expr: obj, ID: member}
	}
	c.addError(diagnostics.ErrC011, tokenOf(e), fmt.Sprintf("%T", e))
	return nil
}

func (c *Compiler) identifier(id *ast.Identifier) executable.PPEExpr {
	sym, ok := c.lookup(id.Value)
	if !ok {
		c.addError(diagnostics.ErrC001, id.Token, id.Value)
		return nil
	}
	switch sym.kind {
	case symFunction:
		// a parameterless function may be called without parentheses
		return c.userCall(sym, id, nil)
	case symProcedure:
		c.addError(diagnostics.ErrC001, id.Token, id.Value)
		return nil
	}
	return &executable.ValueExpr{ID: sym.id}
}

// call compiles NAME(args): a user function call, an array element or a method call
func (c *Compiler) call(e *ast.FunctionCallExpression) executable.PPEExpr {
	switch callee := e.Callee.(type) {
	case *ast.Identifier:
		if c.current != nil && c.current.function && key(callee.Value) == c.current.sym.name {
			// inside a function its own name with arguments is a recursive call
			return c.userCall(c.current.sym, callee, e.Args)
		}
		sym, ok := c.lookup(callee.Value)
		if !ok {
			c.addError(diagnostics.ErrC002, callee.Token, callee.Value)
			return nil
		}
		switch sym.kind {
		case symFunction:
			return c.userCall(sym, callee, e.Args)
		case symProcedure:
			c.addError(diagnostics.ErrC002, callee.Token, callee.Value)
			return nil
		}
		return c.variable(callee, e.Args)

	case *ast.MemberReferenceExpression:
		obj := c.expression(callee.Expr)
		if obj == nil {
			return nil
		}
		member, ok := c.member(callee)
		if !ok {
			return nil
		}
		args := c.expressions(e.Args)
		if args == nil {
			return nil
		}
		return &executable.MemberCallExpr{Expr: obj, Args: args, ID: member}
	}
	c.addError(diagnostics.ErrC011, e.Token, "call of a computed value")
	return nil
}

func (c *Compiler) userCall(sym *symbol, name *ast.Identifier, args []ast.Expression) executable.PPEExpr {
	if !sym.implemented {
		c.addError(diagnostics.ErrC010, name.Token, name.Value)
		return nil
	}
	if len(args) != len(sym.params) {
		c.addError(diagnostics.ErrC004, name.Token, name.Value, len(sym.params), len(args))
		return nil
	}
	compiled := c.expressions(args)
	if compiled == nil {
		return nil
	}
	return &executable.FunctionCallExpr{ID: sym.id, Args: compiled}
}

// member resolves obj.NAME against the user type of obj
func (c *Compiler) member(e *ast.MemberReferenceExpression) (int, bool) {
	t, ok := c.typeOf(e.Expr)
	if !ok {
		c.addError(diagnostics.ErrC011, e.Token, "member access on a value without a type")
		return 0, false
	}
	ut, ok := c.opts.Registry.ByType(t)
	if !ok {
		c.addError(diagnostics.ErrC011, e.Token, fmt.Sprintf("member access on %s", t))
		return 0, false
	}
	id, ok := ut.MemberID(e.Member.Value)
	if !ok {
		c.addError(diagnostics.ErrC001, e.Member.Token, ut.Name+"."+e.Member.Value)
		return 0, false
	}
	return id, true
}

// typeOf is the static type of the expressions a member access can start from
func (c *Compiler) typeOf(e ast.Expression) (executable.VariableType, bool) {
	switch e := e.(type) {
	case *ast.Identifier:
		if sym, ok := c.lookup(e.Value); ok {
			return sym.typ, true
		}
	case *ast.ParensExpression:
		return c.typeOf(e.Expr)
	case *ast.IndexerExpression:
		return c.typeOf(e.Name)
	case *ast.FunctionCallExpression:
		if m, ok := e.Callee.(*ast.MemberReferenceExpression); ok {
			return c.memberType(m)
		}
		return c.typeOf(e.Callee)
	case *ast.MemberReferenceExpression:
		return c.memberType(e)
	}
	return 0, false
}

func (c *Compiler) memberType(e *ast.MemberReferenceExpression) (executable.VariableType, bool) {
	t, ok := c.typeOf(e.Expr)
	if !ok {
		return 0, false
	}
	ut, ok := c.opts.Registry.ByType(t)
	if !ok {
		return 0, false
	}
	id, ok := ut.MemberID(e.Member.Value)
	if !ok {
		return 0, false
	}
	m, _ := ut.Member(id)
	return m.Type, true
}
