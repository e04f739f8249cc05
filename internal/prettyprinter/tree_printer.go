package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/ppl/internal/ast"
)

// --- Tree Printer (Output shows the AST structure) ---

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) writeln(format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteString("\n")
}

// nested prints a heading and the nodes below it one level deeper
func (p *TreePrinter) nested(heading string, nodes ...ast.Node) {
	if heading != "" {
		p.writeln("%s", heading)
		p.indent++
		defer func() { p.indent-- }()
	}
	for _, n := range nodes {
		if n == nil {
			p.writeln("<nil>")
			continue
		}
		n.Accept(p)
	}
}

func (p *TreePrinter) exprs(heading string, es []ast.Expression) {
	nodes := make([]ast.Node, 0, len(es))
	for _, e := range es {
		nodes = append(nodes, e)
	}
	p.nested(heading, nodes...)
}

func (p *TreePrinter) stmts(heading string, ss []ast.Statement) {
	nodes := make([]ast.Node, 0, len(ss))
	for _, s := range ss {
		nodes = append(nodes, s)
	}
	p.nested(heading, nodes...)
}

func (p *TreePrinter) params(ps []*ast.Parameter) {
	for _, param := range ps {
		name := "<unnamed>"
		if param.Name != nil {
			name = param.Name.Value
		}
		prefix := ""
		if param.IsVar {
			prefix = "VAR "
		}
		p.writeln("Parameter: %s%s %s%v", prefix, param.Type, name, dims(param.Dimensions))
	}
}

func dims(d []int) string {
	if len(d) == 0 {
		return ""
	}
	return fmt.Sprint(d)
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.writeln("Program")
	p.indent++
	for _, node := range n.Nodes {
		node.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.writeln("Identifier: %s", n.Value)
}

func (p *TreePrinter) VisitConstant(n *ast.Constant) {
	p.writeln("Constant: %s", n.Value.String())
}

func (p *TreePrinter) VisitUnaryExpression(n *ast.UnaryExpression) {
	p.nested("Unary: "+n.Op.String(), n.Expr)
}

func (p *TreePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.nested("Binary: "+n.Op.String(), n.Left, n.Right)
}

func (p *TreePrinter) VisitParensExpression(n *ast.ParensExpression) {
	p.nested("Parens", n.Expr)
}

func (p *TreePrinter) VisitFunctionCallExpression(n *ast.FunctionCallExpression) {
	p.writeln("FunctionCall")
	p.indent++
	p.nested("Callee:", n.Callee)
	p.exprs("Args:", n.Args)
	p.indent--
}

func (p *TreePrinter) VisitPredefinedFunctionCallExpression(n *ast.PredefinedFunctionCallExpression) {
	p.exprs("PredefinedFunctionCall: "+strings.ToUpper(n.Name), n.Args)
}

func (p *TreePrinter) VisitIndexerExpression(n *ast.IndexerExpression) {
	p.exprs("Indexer: "+n.Name.Value, n.Args)
}

func (p *TreePrinter) VisitMemberReferenceExpression(n *ast.MemberReferenceExpression) {
	p.nested("MemberReference: "+n.Member.Value, n.Expr)
}

func (p *TreePrinter) VisitArrayInitializerExpression(n *ast.ArrayInitializerExpression) {
	p.exprs("ArrayInitializer", n.Elements)
}

func (p *TreePrinter) VisitLetStatement(n *ast.LetStatement) {
	p.writeln("Let: %s %s", n.Target.Value, n.AssignOp)
	p.indent++
	if len(n.Indices) > 0 {
		p.exprs("Indices:", n.Indices)
	}
	p.nested("", n.Value)
	p.indent--
}

func (p *TreePrinter) VisitIfStatement(n *ast.IfStatement) {
	p.writeln("If")
	p.indent++
	p.nested("Condition:", n.Condition)
	p.nested("Then:", n.Statement)
	p.indent--
}

func (p *TreePrinter) VisitIfThenStatement(n *ast.IfThenStatement) {
	p.writeln("IfThen")
	p.indent++
	p.nested("Condition:", n.Condition)
	p.stmts("Then:", n.Statements)
	for _, ei := range n.ElseIfs {
		p.writeln("ElseIf")
		p.indent++
		p.nested("Condition:", ei.Condition)
		p.stmts("Then:", ei.Statements)
		p.indent--
	}
	if n.Else != nil {
		p.stmts("Else:", n.Else.Statements)
	}
	p.indent--
}

func (p *TreePrinter) VisitWhileStatement(n *ast.WhileStatement) {
	p.writeln("While")
	p.indent++
	p.nested("Condition:", n.Condition)
	p.nested("Body:", n.Statement)
	p.indent--
}

func (p *TreePrinter) VisitWhileDoStatement(n *ast.WhileDoStatement) {
	p.writeln("WhileDo")
	p.indent++
	p.nested("Condition:", n.Condition)
	p.stmts("Body:", n.Statements)
	p.indent--
}

func (p *TreePrinter) VisitLoopStatement(n *ast.LoopStatement) {
	p.stmts("Loop", n.Statements)
}

func (p *TreePrinter) VisitRepeatUntilStatement(n *ast.RepeatUntilStatement) {
	p.writeln("RepeatUntil")
	p.indent++
	p.stmts("Body:", n.Statements)
	p.nested("Until:", n.Condition)
	p.indent--
}

func (p *TreePrinter) VisitForStatement(n *ast.ForStatement) {
	p.writeln("For: %s", n.Variable.Value)
	p.indent++
	p.nested("From:", n.Start)
	p.nested("To:", n.End)
	if n.Step != nil {
		p.nested("Step:", n.Step)
	}
	p.stmts("Body:", n.Statements)
	p.indent--
}

func (p *TreePrinter) VisitSelectStatement(n *ast.SelectStatement) {
	p.writeln("Select")
	p.indent++
	p.nested("Expr:", n.Expr)
	for _, c := range n.Cases {
		p.writeln("Case")
		p.indent++
		for _, spec := range c.Specifiers {
			if spec.To != nil {
				p.nested("Range:", spec.From, spec.To)
			} else {
				p.nested("Value:", spec.From)
			}
		}
		p.stmts("Body:", c.Statements)
		p.indent--
	}
	if n.Default != nil {
		p.stmts("Default:", n.Default.Statements)
	}
	p.indent--
}

func (p *TreePrinter) VisitGotoStatement(n *ast.GotoStatement) {
	p.writeln("Goto: %s", n.Label)
}

func (p *TreePrinter) VisitGosubStatement(n *ast.GosubStatement) {
	p.writeln("Gosub: %s", n.Label)
}

func (p *TreePrinter) VisitLabelStatement(n *ast.LabelStatement) {
	p.writeln("Label: %s", n.Label)
}

func (p *TreePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Value == nil {
		p.writeln("Return")
		return
	}
	p.nested("Return", n.Value)
}

func (p *TreePrinter) VisitBreakStatement(n *ast.BreakStatement) {
	p.writeln("Break")
}

func (p *TreePrinter) VisitContinueStatement(n *ast.ContinueStatement) {
	p.writeln("Continue")
}

func (p *TreePrinter) VisitVariableDeclarationStatement(n *ast.VariableDeclarationStatement) {
	p.writeln("VariableDeclaration: %s", n.Type)
	p.indent++
	for _, v := range n.Variables {
		if v.Initializer == nil {
			p.writeln("Variable: %s%s", v.Name.Value, dims(v.Dimensions))
			continue
		}
		p.nested("Variable: "+v.Name.Value+dims(v.Dimensions), v.Initializer)
	}
	p.indent--
}

func (p *TreePrinter) VisitProcedureCallStatement(n *ast.ProcedureCallStatement) {
	p.exprs("ProcedureCall: "+n.Name.Value, n.Args)
}

func (p *TreePrinter) VisitPredefinedCallStatement(n *ast.PredefinedCallStatement) {
	p.exprs("PredefinedCall: "+strings.ToUpper(n.Name), n.Args)
}

func (p *TreePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	p.stmts("Block", n.Statements)
}

func (p *TreePrinter) VisitCommentStatement(n *ast.CommentStatement) {
	p.writeln("Comment: %q", n.Comment.Text)
}

func (p *TreePrinter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	p.writeln("FunctionDeclaration: %s %s", n.Name.Value, n.ReturnType)
	p.indent++
	p.params(n.Parameters)
	p.indent--
}

func (p *TreePrinter) VisitProcedureDeclaration(n *ast.ProcedureDeclaration) {
	p.writeln("ProcedureDeclaration: %s", n.Name.Value)
	p.indent++
	p.params(n.Parameters)
	p.indent--
}

func (p *TreePrinter) VisitFunctionImplementation(n *ast.FunctionImplementation) {
	p.writeln("Function: %s %s", n.Name.Value, n.ReturnType)
	p.indent++
	p.params(n.Parameters)
	p.stmts("Body:", n.Statements)
	p.indent--
}

func (p *TreePrinter) VisitProcedureImplementation(n *ast.ProcedureImplementation) {
	p.writeln("Procedure: %s", n.Name.Value)
	p.indent++
	p.params(n.Parameters)
	p.stmts("Body:", n.Statements)
	p.indent--
}
