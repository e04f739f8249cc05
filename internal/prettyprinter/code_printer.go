package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/token"
)

// --- Code Printer (Output looks like source code) ---

// KeywordCase selects how keywords, type names and predefined names are written
type KeywordCase int

const (
	KeywordUpper KeywordCase = iota
	KeywordLower
)

type Options struct {
	IndentWidth int
	Keywords    KeywordCase
}

func DefaultOptions() Options {
	return Options{IndentWidth: 4, Keywords: KeywordUpper}
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
	opts   Options
	column int // current column position
}

func NewCodePrinter() *CodePrinter {
	return NewCodePrinterWithOptions(DefaultOptions())
}

func NewCodePrinterWithOptions(opts Options) *CodePrinter {
	if opts.IndentWidth < 0 {
		opts.IndentWidth = 0
	}
	return &CodePrinter{opts: opts}
}

// Format renders a node as PPL source with default options
func Format(n ast.Node) string {
	p := NewCodePrinter()
	n.Accept(p)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

func (p *CodePrinter) writeIndent() {
	p.write(strings.Repeat(" ", p.indent*p.opts.IndentWidth))
}

// kw writes a keyword in the configured case
func (p *CodePrinter) kw(s string) {
	if p.opts.Keywords == KeywordLower {
		s = strings.ToLower(s)
	} else {
		s = strings.ToUpper(s)
	}
	p.write(s)
}

// line starts a new indented line and runs fn on it
func (p *CodePrinter) line(fn func()) {
	p.writeIndent()
	fn()
	p.writeln()
}

func (p *CodePrinter) printStatements(stmts []ast.Statement) {
	p.indent++
	for _, stmt := range stmts {
		p.printStatementLine(stmt)
	}
	p.indent--
}

// printStatementLine writes one statement on its own line. Labels stay in column 0.
func (p *CodePrinter) printStatementLine(stmt ast.Statement) {
	if stmt == nil {
		return
	}
	if _, ok := stmt.(*ast.LabelStatement); ok {
		saved := p.indent
		p.indent = 0
		p.line(func() { stmt.Accept(p) })
		p.indent = saved
		return
	}
	switch stmt.(type) {
	case *ast.IfThenStatement, *ast.WhileDoStatement, *ast.LoopStatement, *ast.RepeatUntilStatement,
		*ast.ForStatement, *ast.SelectStatement, *ast.BlockStatement:
		// block statements write their own lines
		stmt.Accept(p)
	default:
		p.line(func() { stmt.Accept(p) })
	}
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	if expr == nil {
		p.write("<???>")
		return
	}
	switch e := expr.(type) {
	case *ast.BinaryExpression:
		prec := e.Op.Precedence()
		needParens := prec < parentPrec || (prec == parentPrec && isRight)
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Left, prec, false)
		p.write(" " + e.Op.String() + " ")
		p.printExpr(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case *ast.UnaryExpression:
		p.write(e.Op.String())
		p.printExpr(e.Expr, 100, false)
	default:
		expr.Accept(p)
	}
}

func (p *CodePrinter) printExprList(exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(e, 0, false)
	}
}

// printCondition writes (cond) for IF, ELSEIF and WHILE, reusing the
// source parentheses when the condition is already wrapped.
func (p *CodePrinter) printCondition(cond ast.Expression) {
	if pe, ok := cond.(*ast.ParensExpression); ok {
		cond = pe.Expr
	}
	p.write("(")
	p.printExpr(cond, 0, false)
	p.write(")")
}

func (p *CodePrinter) printDimensions(dims []int, bracketed bool) {
	if len(dims) == 0 {
		return
	}
	lb, rb := "(", ")"
	if bracketed {
		lb, rb = "[", "]"
	}
	p.write(lb)
	for i, d := range dims {
		if i > 0 {
			p.write(", ")
		}
		p.write(strconv.Itoa(d))
	}
	p.write(rb)
}

func (p *CodePrinter) printParameters(params []*ast.Parameter) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		if param.IsVar {
			p.kw("VAR ")
		}
		p.kw(typeName(param.TypeName, param.Type.Keyword()))
		if param.Name != nil {
			p.write(" " + param.Name.Value)
			p.printDimensions(param.Dimensions, false)
		}
	}
	p.write(")")
}

func typeName(written, fallback string) string {
	if written != "" {
		return written
	}
	return fallback
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for i, node := range n.Nodes {
		switch node := node.(type) {
		case *ast.FunctionImplementation, *ast.ProcedureImplementation:
			if i > 0 {
				p.writeln()
			}
			node.Accept(p)
		case ast.Statement:
			p.printStatementLine(node)
		default:
			p.line(func() { node.Accept(p) })
		}
	}
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitConstant(n *ast.Constant) {
	if n.Value.Kind == token.ConstBoolean || n.Value.Kind == token.ConstBuiltin {
		p.kw(n.Value.String())
		return
	}
	p.write(n.Value.String())
}

func (p *CodePrinter) VisitUnaryExpression(n *ast.UnaryExpression) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitParensExpression(n *ast.ParensExpression) {
	p.write("(")
	p.printExpr(n.Expr, 0, false)
	p.write(")")
}

func (p *CodePrinter) VisitFunctionCallExpression(n *ast.FunctionCallExpression) {
	p.printExpr(n.Callee, 100, false)
	p.write("(")
	p.printExprList(n.Args)
	p.write(")")
}

func (p *CodePrinter) VisitPredefinedFunctionCallExpression(n *ast.PredefinedFunctionCallExpression) {
	p.kw(n.Name)
	p.write("(")
	p.printExprList(n.Args)
	p.write(")")
}

func (p *CodePrinter) VisitIndexerExpression(n *ast.IndexerExpression) {
	p.write(n.Name.Value)
	p.write("[")
	p.printExprList(n.Args)
	p.write("]")
}

func (p *CodePrinter) VisitMemberReferenceExpression(n *ast.MemberReferenceExpression) {
	p.printExpr(n.Expr, 100, false)
	p.write(".")
	p.write(n.Member.Value)
}

func (p *CodePrinter) VisitArrayInitializerExpression(n *ast.ArrayInitializerExpression) {
	p.write("{")
	p.printExprList(n.Elements)
	p.write("}")
}

func (p *CodePrinter) VisitLetStatement(n *ast.LetStatement) {
	if n.HasLet {
		p.kw("LET ")
	}
	p.write(n.Target.Value)
	if len(n.Indices) > 0 {
		lb, rb := "(", ")"
		if n.Bracketed {
			lb, rb = "[", "]"
		}
		p.write(lb)
		p.printExprList(n.Indices)
		p.write(rb)
	}
	op := string(n.AssignOp)
	if op == "" {
		op = "="
	}
	p.write(" " + op + " ")
	p.printExpr(n.Value, 0, false)
}

func (p *CodePrinter) VisitIfStatement(n *ast.IfStatement) {
	p.kw("IF ")
	p.printCondition(n.Condition)
	p.write(" ")
	n.Statement.Accept(p)
}

func (p *CodePrinter) VisitIfThenStatement(n *ast.IfThenStatement) {
	p.line(func() {
		p.kw("IF ")
		p.printCondition(n.Condition)
		p.kw(" THEN")
	})
	p.printStatements(n.Statements)
	for _, ei := range n.ElseIfs {
		p.line(func() {
			p.kw("ELSEIF ")
			p.printCondition(ei.Condition)
			p.kw(" THEN")
		})
		p.printStatements(ei.Statements)
	}
	if n.Else != nil {
		p.line(func() { p.kw("ELSE") })
		p.printStatements(n.Else.Statements)
	}
	p.line(func() { p.kw("ENDIF") })
}

func (p *CodePrinter) VisitWhileStatement(n *ast.WhileStatement) {
	p.kw("WHILE ")
	p.printCondition(n.Condition)
	p.write(" ")
	n.Statement.Accept(p)
}

func (p *CodePrinter) VisitWhileDoStatement(n *ast.WhileDoStatement) {
	p.line(func() {
		p.kw("WHILE ")
		p.printCondition(n.Condition)
		p.kw(" DO")
	})
	p.printStatements(n.Statements)
	p.line(func() { p.kw("ENDWHILE") })
}

func (p *CodePrinter) VisitLoopStatement(n *ast.LoopStatement) {
	p.line(func() { p.kw("LOOP") })
	p.printStatements(n.Statements)
	p.line(func() { p.kw("ENDLOOP") })
}

func (p *CodePrinter) VisitRepeatUntilStatement(n *ast.RepeatUntilStatement) {
	p.line(func() { p.kw("REPEAT") })
	p.printStatements(n.Statements)
	p.line(func() {
		p.kw("UNTIL ")
		p.printExpr(n.Condition, 0, false)
	})
}

func (p *CodePrinter) VisitForStatement(n *ast.ForStatement) {
	p.line(func() {
		p.kw("FOR ")
		p.write(n.Variable.Value + " = ")
		p.printExpr(n.Start, 0, false)
		p.kw(" TO ")
		p.printExpr(n.End, 0, false)
		if n.Step != nil {
			p.kw(" STEP ")
			p.printExpr(n.Step, 0, false)
		}
	})
	p.printStatements(n.Statements)
	p.line(func() { p.kw("NEXT") })
}

func (p *CodePrinter) VisitSelectStatement(n *ast.SelectStatement) {
	p.line(func() {
		p.kw("SELECT CASE ")
		p.printExpr(n.Expr, 0, false)
	})
	p.indent++
	for _, c := range n.Cases {
		p.line(func() {
			p.kw("CASE ")
			for i, spec := range c.Specifiers {
				if i > 0 {
					p.write(", ")
				}
				p.printExpr(spec.From, 0, false)
				if spec.To != nil {
					p.write("..")
					p.printExpr(spec.To, 0, false)
				}
			}
		})
		p.printStatements(c.Statements)
	}
	if n.Default != nil {
		p.line(func() { p.kw("DEFAULT") })
		p.printStatements(n.Default.Statements)
	}
	p.indent--
	p.line(func() { p.kw("ENDSELECT") })
}

func (p *CodePrinter) VisitGotoStatement(n *ast.GotoStatement) {
	p.kw("GOTO ")
	p.write(n.Label)
}

func (p *CodePrinter) VisitGosubStatement(n *ast.GosubStatement) {
	p.kw("GOSUB ")
	p.write(n.Label)
}

func (p *CodePrinter) VisitLabelStatement(n *ast.LabelStatement) {
	if n.Label == "~BEGIN~" {
		p.kw("BEGIN")
		return
	}
	p.write(":" + n.Label)
}

func (p *CodePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.kw("RETURN")
	if n.Value != nil {
		p.write(" ")
		p.printExpr(n.Value, 0, false)
	}
}

func (p *CodePrinter) VisitBreakStatement(n *ast.BreakStatement) {
	p.kw("BREAK")
}

func (p *CodePrinter) VisitContinueStatement(n *ast.ContinueStatement) {
	p.kw("CONTINUE")
}

func (p *CodePrinter) VisitVariableDeclarationStatement(n *ast.VariableDeclarationStatement) {
	p.kw(typeName(n.TypeName, n.Type.Keyword()))
	p.write(" ")
	for i, v := range n.Variables {
		if i > 0 {
			p.write(", ")
		}
		p.write(v.Name.Value)
		p.printDimensions(v.Dimensions, v.Bracketed)
		if v.Initializer != nil {
			p.write(" = ")
			p.printExpr(v.Initializer, 0, false)
		}
	}
}

func (p *CodePrinter) VisitProcedureCallStatement(n *ast.ProcedureCallStatement) {
	p.write(n.Name.Value)
	p.write("(")
	p.printExprList(n.Args)
	p.write(")")
}

func (p *CodePrinter) VisitPredefinedCallStatement(n *ast.PredefinedCallStatement) {
	// obj.method(args) is stored as EVAL of the call
	if strings.EqualFold(n.Name, "EVAL") && len(n.Args) == 1 {
		if call, ok := n.Args[0].(*ast.FunctionCallExpression); ok {
			if _, member := call.Callee.(*ast.MemberReferenceExpression); member {
				call.Accept(p)
				return
			}
		}
	}
	p.kw(n.Name)
	if len(n.Args) > 0 {
		p.write(" ")
		p.printExprList(n.Args)
	}
}

func (p *CodePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	for _, stmt := range n.Statements {
		p.printStatementLine(stmt)
	}
}

func (p *CodePrinter) VisitCommentStatement(n *ast.CommentStatement) {
	if n.Comment.Kind == token.CommentBlock {
		p.write(n.Comment.Text)
		return
	}
	p.write(n.Comment.Kind.Marker() + n.Comment.Text)
}

func (p *CodePrinter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	p.kw("DECLARE FUNCTION ")
	p.write(n.Name.Value)
	p.printParameters(n.Parameters)
	p.write(" ")
	p.kw(typeName(n.ReturnTypeName, n.ReturnType.Keyword()))
}

func (p *CodePrinter) VisitProcedureDeclaration(n *ast.ProcedureDeclaration) {
	p.kw("DECLARE PROCEDURE ")
	p.write(n.Name.Value)
	p.printParameters(n.Parameters)
}

func (p *CodePrinter) VisitFunctionImplementation(n *ast.FunctionImplementation) {
	p.line(func() {
		p.kw("FUNCTION ")
		p.write(n.Name.Value)
		p.printParameters(n.Parameters)
		p.write(" ")
		p.kw(typeName(n.ReturnTypeName, n.ReturnType.Keyword()))
	})
	p.printStatements(n.Statements)
	p.line(func() { p.kw("ENDFUNC") })
}

func (p *CodePrinter) VisitProcedureImplementation(n *ast.ProcedureImplementation) {
	p.line(func() {
		p.kw("PROCEDURE ")
		p.write(n.Name.Value)
		p.printParameters(n.Parameters)
	})
	p.printStatements(n.Statements)
	p.line(func() { p.kw("ENDPROC") })
}
