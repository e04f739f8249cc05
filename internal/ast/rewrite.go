package ast

import (
	"strings"

	"github.com/funvibe/ppl/internal/token"
)

// Rewrite returns a copy of n in which every node has been passed through fn,
// children before parents. fn returns its argument to keep a node unchanged.
// The input tree is never modified.
func Rewrite(n Node, fn func(Node) Node) Node {
	r := rewriter{fn: fn}
	return r.node(n)
}

type rewriter struct {
	fn func(Node) Node
}

func (r *rewriter) node(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil
	case *Program:
		out := *n
		out.Nodes = make([]Node, 0, len(n.Nodes))
		for _, c := range n.Nodes {
			if c = r.node(c); c != nil {
				out.Nodes = append(out.Nodes, c)
			}
		}
		return r.fn(&out)
	case Expression:
		if e := r.expr(n); e != nil {
			return e
		}
		return nil
	case Statement:
		if s := r.stmt(n); s != nil {
			return s
		}
		return nil
	case *FunctionDeclaration:
		out := *n
		out.Name = r.ident(n.Name)
		out.Parameters = r.params(n.Parameters)
		return r.fn(&out)
	case *ProcedureDeclaration:
		out := *n
		out.Name = r.ident(n.Name)
		out.Parameters = r.params(n.Parameters)
		return r.fn(&out)
	case *FunctionImplementation:
		out := *n
		out.Name = r.ident(n.Name)
		out.Parameters = r.params(n.Parameters)
		out.Statements = r.stmts(n.Statements)
		return r.fn(&out)
	case *ProcedureImplementation:
		out := *n
		out.Name = r.ident(n.Name)
		out.Parameters = r.params(n.Parameters)
		out.Statements = r.stmts(n.Statements)
		return r.fn(&out)
	}
	return r.fn(n)
}

func (r *rewriter) ident(id *Identifier) *Identifier {
	if id == nil {
		return nil
	}
	out := *id
	if res, ok := r.fn(&out).(*Identifier); ok {
		return res
	}
	return &out
}

func (r *rewriter) params(ps []*Parameter) []*Parameter {
	if ps == nil {
		return nil
	}
	out := make([]*Parameter, len(ps))
	for i, p := range ps {
		cp := *p
		cp.Name = r.ident(p.Name)
		out[i] = &cp
	}
	return out
}

func (r *rewriter) exprs(es []Expression) []Expression {
	if es == nil {
		return nil
	}
	out := make([]Expression, 0, len(es))
	for _, e := range es {
		out = append(out, r.expr(e))
	}
	return out
}

func (r *rewriter) expr(e Expression) Expression {
	var res Node
	switch e := e.(type) {
	case nil:
		return nil
	case *Identifier:
		cp := *e
		res = r.fn(&cp)
	case *Constant:
		cp := *e
		res = r.fn(&cp)
	case *UnaryExpression:
		cp := *e
		cp.Expr = r.expr(e.Expr)
		res = r.fn(&cp)
	case *BinaryExpression:
		cp := *e
		cp.Left = r.expr(e.Left)
		cp.Right = r.expr(e.Right)
		res = r.fn(&cp)
	case *ParensExpression:
		cp := *e
		cp.Expr = r.expr(e.Expr)
		res = r.fn(&cp)
	case *FunctionCallExpression:
		cp := *e
		cp.Callee = r.expr(e.Callee)
		cp.Args = r.exprs(e.Args)
		res = r.fn(&cp)
	case *PredefinedFunctionCallExpression:
		cp := *e
		cp.Args = r.exprs(e.Args)
		res = r.fn(&cp)
	case *IndexerExpression:
		cp := *e
		cp.Name = r.ident(e.Name)
		cp.Args = r.exprs(e.Args)
		res = r.fn(&cp)
	case *MemberReferenceExpression:
		cp := *e
		cp.Expr = r.expr(e.Expr)
		res = r.fn(&cp)
	case *ArrayInitializerExpression:
		cp := *e
		cp.Elements = r.exprs(e.Elements)
		res = r.fn(&cp)
	default:
		res = r.fn(e)
	}
	if out, ok := res.(Expression); ok {
		return out
	}
	return nil
}

func (r *rewriter) stmts(ss []Statement) []Statement {
	if ss == nil {
		return nil
	}
	out := make([]Statement, 0, len(ss))
	for _, s := range ss {
		if s = r.stmt(s); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (r *rewriter) stmt(s Statement) Statement {
	var res Node
	switch s := s.(type) {
	case nil:
		return nil
	case *LetStatement:
		cp := *s
		cp.Target = r.ident(s.Target)
		cp.Indices = r.exprs(s.Indices)
		cp.Value = r.expr(s.Value)
		res = r.fn(&cp)
	case *IfStatement:
		cp := *s
		cp.Condition = r.expr(s.Condition)
		cp.Statement = r.stmt(s.Statement)
		res = r.fn(&cp)
	case *IfThenStatement:
		cp := *s
		cp.Condition = r.expr(s.Condition)
		cp.Statements = r.stmts(s.Statements)
		cp.ElseIfs = nil
		for _, ei := range s.ElseIfs {
			cp.ElseIfs = append(cp.ElseIfs, &ElseIfBlock{Token: ei.Token, Condition: r.expr(ei.Condition), Statements: r.stmts(ei.Statements)})
		}
		if s.Else != nil {
			cp.Else = &ElseBlock{Token: s.Else.Token, Statements: r.stmts(s.Else.Statements)}
		}
		res = r.fn(&cp)
	case *WhileStatement:
		cp := *s
		cp.Condition = r.expr(s.Condition)
		cp.Statement = r.stmt(s.Statement)
		res = r.fn(&cp)
	case *WhileDoStatement:
		cp := *s
		cp.Condition = r.expr(s.Condition)
		cp.Statements = r.stmts(s.Statements)
		res = r.fn(&cp)
	case *LoopStatement:
		cp := *s
		cp.Statements = r.stmts(s.Statements)
		res = r.fn(&cp)
	case *RepeatUntilStatement:
		cp := *s
		cp.Statements = r.stmts(s.Statements)
		cp.Condition = r.expr(s.Condition)
		res = r.fn(&cp)
	case *ForStatement:
		cp := *s
		cp.Variable = r.ident(s.Variable)
		cp.Start = r.expr(s.Start)
		cp.End = r.expr(s.End)
		cp.Step = r.expr(s.Step)
		cp.Statements = r.stmts(s.Statements)
		res = r.fn(&cp)
	case *SelectStatement:
		cp := *s
		cp.Expr = r.expr(s.Expr)
		cp.Cases = nil
		for _, c := range s.Cases {
			nc := &CaseBlock{Token: c.Token, Statements: r.stmts(c.Statements)}
			for _, spec := range c.Specifiers {
				nc.Specifiers = append(nc.Specifiers, CaseSpecifier{From: r.expr(spec.From), To: r.expr(spec.To)})
			}
			cp.Cases = append(cp.Cases, nc)
		}
		if s.Default != nil {
			cp.Default = &DefaultBlock{Token: s.Default.Token, Statements: r.stmts(s.Default.Statements)}
		}
		res = r.fn(&cp)
	case *ReturnStatement:
		cp := *s
		cp.Value = r.expr(s.Value)
		res = r.fn(&cp)
	case *VariableDeclarationStatement:
		cp := *s
		cp.Variables = make([]*VariableSpecifier, len(s.Variables))
		for i, v := range s.Variables {
			nv := *v
			nv.Name = r.ident(v.Name)
			nv.Initializer = r.expr(v.Initializer)
			cp.Variables[i] = &nv
		}
		res = r.fn(&cp)
	case *ProcedureCallStatement:
		cp := *s
		cp.Name = r.ident(s.Name)
		cp.Args = r.exprs(s.Args)
		res = r.fn(&cp)
	case *PredefinedCallStatement:
		cp := *s
		cp.Args = r.exprs(s.Args)
		res = r.fn(&cp)
	case *BlockStatement:
		cp := *s
		cp.Statements = r.stmts(s.Statements)
		res = r.fn(&cp)
	case *GotoStatement:
		cp := *s
		res = r.fn(&cp)
	case *GosubStatement:
		cp := *s
		res = r.fn(&cp)
	case *LabelStatement:
		cp := *s
		res = r.fn(&cp)
	case *BreakStatement:
		cp := *s
		res = r.fn(&cp)
	case *ContinueStatement:
		cp := *s
		res = r.fn(&cp)
	case *CommentStatement:
		cp := *s
		res = r.fn(&cp)
	default:
		res = r.fn(s)
	}
	if out, ok := res.(Statement); ok {
		return out
	}
	return nil
}

// Rename replaces identifiers according to names. Lookups ignore case.
// Labels are left alone.
func Rename(n Node, names map[string]string) Node {
	upper := make(map[string]string, len(names))
	for k, v := range names {
		upper[strings.ToUpper(k)] = v
	}
	return Rewrite(n, func(n Node) Node {
		if id, ok := n.(*Identifier); ok {
			if to, ok := upper[strings.ToUpper(id.Value)]; ok {
				id.Value = to
				id.Token.Lexeme = to
				id.Token.Literal = to
			}
		}
		return n
	})
}

var inverseComparison = map[BinOp]BinOp{
	Eq: NotEq, NotEq: Eq,
	Lower: GreaterEq, GreaterEq: Lower,
	Greater: LowerEq, LowerEq: Greater,
}

// Negate returns the logical negation of e. Comparisons are inverted,
// AND/OR follow De Morgan, double negation and boolean constants collapse.
func Negate(e Expression) Expression {
	switch e := e.(type) {
	case *UnaryExpression:
		if e.Op == Not {
			return stripParens(e.Expr)
		}
	case *ParensExpression:
		return &ParensExpression{Token: e.Token, Expr: Negate(e.Expr)}
	case *Constant:
		if e.Value.Kind == token.ConstBoolean {
			return NewConstant(token.BoolConst(!e.Value.Bool))
		}
	case *BinaryExpression:
		if inv, ok := inverseComparison[e.Op]; ok {
			return &BinaryExpression{Token: token.Token{Lexeme: inv.String()}, Left: e.Left, Op: inv, Right: e.Right}
		}
		switch e.Op {
		case And:
			return NewBinary(Negate(e.Left), Or, Negate(e.Right))
		case Or:
			return NewBinary(Negate(e.Left), And, Negate(e.Right))
		}
		return &UnaryExpression{Token: token.Token{Type: token.NOT, Lexeme: "!"}, Op: Not,
			Expr: &ParensExpression{Token: token.Token{Type: token.LPAREN, Lexeme: "("}, Expr: e}}
	}
	return &UnaryExpression{Token: token.Token{Type: token.NOT, Lexeme: "!"}, Op: Not, Expr: e}
}

func stripParens(e Expression) Expression {
	for {
		p, ok := e.(*ParensExpression)
		if !ok {
			return e
		}
		e = p.Expr
	}
}

// Depth is the height of an expression tree; leaves count as 1
func Depth(e Expression) int {
	if e == nil {
		return 0
	}
	max := 0
	for _, c := range Children(e) {
		if ce, ok := c.(Expression); ok {
			if d := Depth(ce); d > max {
				max = d
			}
		}
	}
	return max + 1
}
