package compiler

import (
	"fmt"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/token"
)

// loopLabels are the jump targets of CONTINUE and BREAK inside one loop
type loopLabels struct {
	continueLabel string
	breakLabel    string
}

// lowerer flattens structured control flow into labels, GOTOs and
// IF (cond) GOTO statements. Compound assignments are expanded, RETURN with a
// value becomes an assignment to the result slot and declaration initializers
// become assignments after the declaration.
type lowerer struct {
	labels   int
	loops    []loopLabels
	function string // name of the function being lowered, "" outside functions
	errors   []*diagnostics.DiagnosticError
}

func (l *lowerer) nextLabel() string {
	l.labels++
	return fmt.Sprintf("~L%d", l.labels)
}

func (l *lowerer) addError(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) {
	l.errors = append(l.errors, diagnostics.NewError(code, tok, args...))
}

// ifGoto builds IF (cond) GOTO label
func ifGoto(tok token.Token, cond ast.Expression, label string) *ast.IfStatement {
	return &ast.IfStatement{Token: tok, Condition: cond, Statement: ast.NewGoto(label)}
}

func gotoLabel(label string) *ast.GotoStatement { return ast.NewGoto(label) }

func labelAt(label string) *ast.LabelStatement { return ast.NewLabel(label) }

func (l *lowerer) lowerAll(stmts []ast.Statement) []ast.Statement {
	var out []ast.Statement
	for _, s := range stmts {
		out = l.lower(s, out)
	}
	return out
}

// lower appends the flat form of s to out
func (l *lowerer) lower(s ast.Statement, out []ast.Statement) []ast.Statement {
	switch s := s.(type) {
	case nil, *ast.CommentStatement:
		return out

	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			out = l.lower(inner, out)
		}
		return out

	case *ast.IfStatement:
		if _, isGoto := s.Statement.(*ast.GotoStatement); isGoto {
			return append(out, s)
		}
		exit := l.nextLabel()
		out = append(out, ifGoto(s.Token, ast.Negate(s.Condition), exit))
		out = l.lower(s.Statement, out)
		return append(out, labelAt(exit))

	case *ast.IfThenStatement:
		return l.lowerIfThen(s, out)

	case *ast.WhileStatement:
		cont, brk := l.nextLabel(), l.nextLabel()
		l.loops = append(l.loops, loopLabels{cont, brk})
		out = append(out, labelAt(cont), ifGoto(s.Token, ast.Negate(s.Condition), brk))
		out = l.lower(s.Statement, out)
		out = append(out, gotoLabel(cont), labelAt(brk))
		l.loops = l.loops[:len(l.loops)-1]
		return out

	case *ast.WhileDoStatement:
		cont, brk := l.nextLabel(), l.nextLabel()
		l.loops = append(l.loops, loopLabels{cont, brk})
		out = append(out, labelAt(cont), ifGoto(s.Token, ast.Negate(s.Condition), brk))
		for _, inner := range s.Statements {
			out = l.lower(inner, out)
		}
		out = append(out, gotoLabel(cont), labelAt(brk))
		l.loops = l.loops[:len(l.loops)-1]
		return out

	case *ast.LoopStatement:
		cont, brk := l.nextLabel(), l.nextLabel()
		l.loops = append(l.loops, loopLabels{cont, brk})
		out = append(out, labelAt(cont))
		for _, inner := range s.Statements {
			out = l.lower(inner, out)
		}
		out = append(out, gotoLabel(cont), labelAt(brk))
		l.loops = l.loops[:len(l.loops)-1]
		return out

	case *ast.RepeatUntilStatement:
		top, cont, brk := l.nextLabel(), l.nextLabel(), l.nextLabel()
		l.loops = append(l.loops, loopLabels{cont, brk})
		out = append(out, labelAt(top))
		for _, inner := range s.Statements {
			out = l.lower(inner, out)
		}
		out = append(out, labelAt(cont), ifGoto(s.Token, ast.Negate(s.Condition), top), labelAt(brk))
		l.loops = l.loops[:len(l.loops)-1]
		return out

	case *ast.ForStatement:
		return l.lowerFor(s, out)

	case *ast.SelectStatement:
		return l.lowerSelect(s, out)

	case *ast.BreakStatement:
		if len(l.loops) == 0 {
			l.addError(diagnostics.ErrC006, s.Token, "BREAK")
			return out
		}
		return append(out, gotoLabel(l.loops[len(l.loops)-1].breakLabel))

	case *ast.ContinueStatement:
		if len(l.loops) == 0 {
			l.addError(diagnostics.ErrC006, s.Token, "CONTINUE")
			return out
		}
		return append(out, gotoLabel(l.loops[len(l.loops)-1].continueLabel))

	case *ast.LetStatement:
		return append(out, l.lowerLet(s))

	case *ast.ReturnStatement:
		if s.Value != nil && l.function != "" {
			target := ast.NewIdentifier(l.function)
			target.Token = s.Token
			out = append(out, &ast.LetStatement{Token: s.Token, Target: target, AssignOp: token.EQ, Value: s.Value})
		}
		return append(out, &ast.ReturnStatement{Token: s.Token})

	case *ast.VariableDeclarationStatement:
		return l.lowerDeclaration(s, out)
	}
	return append(out, s)
}

func (l *lowerer) lowerIfThen(s *ast.IfThenStatement, out []ast.Statement) []ast.Statement {
	done := l.nextLabel()
	next := l.nextLabel()
	hasElse := len(s.ElseIfs) > 0 || s.Else != nil

	out = append(out, ifGoto(s.Token, ast.Negate(s.Condition), next))
	for _, inner := range s.Statements {
		out = l.lower(inner, out)
	}
	if hasElse {
		out = append(out, gotoLabel(done))
	}
	for _, ei := range s.ElseIfs {
		out = append(out, labelAt(next))
		next = l.nextLabel()
		out = append(out, ifGoto(ei.Token, ast.Negate(ei.Condition), next))
		for _, inner := range ei.Statements {
			out = l.lower(inner, out)
		}
		out = append(out, gotoLabel(done))
	}
	if s.Else != nil {
		out = append(out, labelAt(next))
		next = l.nextLabel()
		for _, inner := range s.Else.Statements {
			out = l.lower(inner, out)
		}
	}
	return append(out, labelAt(next), labelAt(done))
}

// lowerFor expands FOR I = a TO b STEP s. The end and step expressions are
// evaluated on every iteration; the loop leaves when I passes the end in the
// direction of the step.
func (l *lowerer) lowerFor(s *ast.ForStatement, out []ast.Statement) []ast.Statement {
	top, cont, brk := l.nextLabel(), l.nextLabel(), l.nextLabel()
	variable := s.Variable

	step := s.Step
	if step == nil {
		step = ast.NewInteger(1)
	}

	out = append(out, &ast.LetStatement{Token: s.Token, Target: variable, AssignOp: token.EQ, Value: s.Start})
	l.loops = append(l.loops, loopLabels{cont, brk})
	out = append(out, labelAt(top), ifGoto(s.Token, forExitCondition(variable, s.End, step), brk))
	for _, inner := range s.Statements {
		out = l.lower(inner, out)
	}
	out = append(out,
		labelAt(cont),
		&ast.LetStatement{Token: s.Token, Target: variable, AssignOp: token.EQ, Value: ast.NewBinary(variable, ast.Add, step)},
		gotoLabel(top),
		labelAt(brk),
	)
	l.loops = l.loops[:len(l.loops)-1]
	return out
}

// forExitCondition is true once the loop variable has passed end. A constant
// step picks the comparison at compile time.
func forExitCondition(variable *ast.Identifier, end, step ast.Expression) ast.Expression {
	if sign, ok := constantSign(step); ok {
		if sign < 0 {
			return ast.NewBinary(variable, ast.Lower, end)
		}
		return ast.NewBinary(variable, ast.Greater, end)
	}
	zero := ast.NewInteger(0)
	upward := ast.NewBinary(ast.NewBinary(zero, ast.Lower, step), ast.Or, ast.NewBinary(variable, ast.Lower, end))
	downward := ast.NewBinary(ast.NewBinary(zero, ast.Greater, step), ast.Or, ast.NewBinary(variable, ast.Greater, end))
	return ast.NewBinary(upward, ast.And, downward)
}

func constantSign(e ast.Expression) (int, bool) {
	neg := false
	for {
		switch x := e.(type) {
		case *ast.ParensExpression:
			e = x.Expr
			continue
		case *ast.UnaryExpression:
			if x.Op == ast.Not {
				return 0, false
			}
			if x.Op == ast.Minus {
				neg = !neg
			}
			e = x.Expr
			continue
		case *ast.Constant:
			var v float64
			switch x.Value.Kind {
			case token.ConstInteger, token.ConstMoney:
				v = float64(x.Value.Int)
			case token.ConstUnsigned:
				v = float64(x.Value.Unsigned)
			case token.ConstDouble:
				v = x.Value.Double
			default:
				return 0, false
			}
			if neg {
				v = -v
			}
			if v < 0 {
				return -1, true
			}
			return 1, true
		}
		return 0, false
	}
}

// lowerSelect turns every CASE into a test that skips its block unless one
// of the specifiers matches. Ranges are inclusive.
func (l *lowerer) lowerSelect(s *ast.SelectStatement, out []ast.Statement) []ast.Statement {
	done := l.nextLabel()
	for _, c := range s.Cases {
		next := l.nextLabel()
		var match ast.Expression
		for _, spec := range c.Specifiers {
			var m ast.Expression
			if spec.To != nil {
				m = ast.NewBinary(ast.NewBinary(spec.From, ast.LowerEq, s.Expr), ast.And, ast.NewBinary(s.Expr, ast.LowerEq, spec.To))
			} else {
				m = ast.NewBinary(s.Expr, ast.Eq, spec.From)
			}
			if match == nil {
				match = m
			} else {
				match = ast.NewBinary(match, ast.Or, m)
			}
		}
		if match != nil {
			out = append(out, ifGoto(c.Token, ast.Negate(match), next))
		}
		for _, inner := range c.Statements {
			out = l.lower(inner, out)
		}
		out = append(out, gotoLabel(done), labelAt(next))
	}
	if s.Default != nil {
		for _, inner := range s.Default.Statements {
			out = l.lower(inner, out)
		}
	}
	return append(out, labelAt(done))
}

// lowerLet rewrites A op= B into A = A op B
func (l *lowerer) lowerLet(s *ast.LetStatement) *ast.LetStatement {
	if s.AssignOp == "" || s.AssignOp == token.EQ {
		return s
	}
	op, ok := ast.BinOpFromToken(s.AssignOp)
	if !ok {
		return s
	}
	var current ast.Expression = s.Target
	if len(s.Indices) > 0 {
		current = &ast.IndexerExpression{Token: s.Target.Token, Name: s.Target, Args: s.Indices}
	}
	return &ast.LetStatement{
		Token:     s.Token,
		HasLet:    s.HasLet,
		Target:    s.Target,
		Indices:   s.Indices,
		Bracketed: s.Bracketed,
		AssignOp:  token.EQ,
		Value:     ast.NewBinary(current, op, s.Value),
	}
}

// lowerDeclaration splits a declaration into one declaration per variable,
// each followed by the assignments of its initializer
func (l *lowerer) lowerDeclaration(s *ast.VariableDeclarationStatement, out []ast.Statement) []ast.Statement {
	for _, v := range s.Variables {
		spec := &ast.VariableSpecifier{Name: v.Name, Dimensions: v.Dimensions, Bracketed: v.Bracketed}
		init, isArray := v.Initializer.(*ast.ArrayInitializerExpression)
		if isArray && len(spec.Dimensions) == 0 {
			spec.Dimensions = []int{max(len(init.Elements)-1, 0)}
		}
		out = append(out, &ast.VariableDeclarationStatement{Token: s.Token, Type: s.Type, TypeName: s.TypeName, Variables: []*ast.VariableSpecifier{spec}})

		switch {
		case isArray:
			for i, e := range init.Elements {
				out = append(out, &ast.LetStatement{
					Token:    v.Name.Token,
					Target:   v.Name,
					Indices:  []ast.Expression{ast.NewInteger(int32(i))},
					AssignOp: token.EQ,
					Value:    e,
				})
			}
		case v.Initializer != nil:
			out = append(out, &ast.LetStatement{Token: v.Name.Token, Target: v.Name, AssignOp: token.EQ, Value: v.Initializer})
		}
	}
	return out
}
