package ast

// Visitor has one method per node kind.
type Visitor interface {
	VisitProgram(p *Program)

	VisitIdentifier(n *Identifier)
	VisitConstant(n *Constant)
	VisitUnaryExpression(n *UnaryExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitParensExpression(n *ParensExpression)
	VisitFunctionCallExpression(n *FunctionCallExpression)
	VisitPredefinedFunctionCallExpression(n *PredefinedFunctionCallExpression)
	VisitIndexerExpression(n *IndexerExpression)
	VisitMemberReferenceExpression(n *MemberReferenceExpression)
	VisitArrayInitializerExpression(n *ArrayInitializerExpression)

	VisitLetStatement(n *LetStatement)
	VisitIfStatement(n *IfStatement)
	VisitIfThenStatement(n *IfThenStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitWhileDoStatement(n *WhileDoStatement)
	VisitLoopStatement(n *LoopStatement)
	VisitRepeatUntilStatement(n *RepeatUntilStatement)
	VisitForStatement(n *ForStatement)
	VisitSelectStatement(n *SelectStatement)
	VisitGotoStatement(n *GotoStatement)
	VisitGosubStatement(n *GosubStatement)
	VisitLabelStatement(n *LabelStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitVariableDeclarationStatement(n *VariableDeclarationStatement)
	VisitProcedureCallStatement(n *ProcedureCallStatement)
	VisitPredefinedCallStatement(n *PredefinedCallStatement)
	VisitBlockStatement(n *BlockStatement)
	VisitCommentStatement(n *CommentStatement)

	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitProcedureDeclaration(n *ProcedureDeclaration)
	VisitFunctionImplementation(n *FunctionImplementation)
	VisitProcedureImplementation(n *ProcedureImplementation)
}

// BaseVisitor walks every child of a node. Embed it and set Self to the
// embedding visitor so overridden methods are reached during the walk:
//
//	v := &labelCollector{}
//	v.Self = v
//	prog.Accept(v)
type BaseVisitor struct {
	Self Visitor
}

func (b BaseVisitor) walk(n Node) {
	var v Visitor = b
	if b.Self != nil {
		v = b.Self
	}
	for _, c := range Children(n) {
		c.Accept(v)
	}
}

func (b BaseVisitor) VisitProgram(p *Program)                     { b.walk(p) }
func (b BaseVisitor) VisitIdentifier(n *Identifier)               {}
func (b BaseVisitor) VisitConstant(n *Constant)                   {}
func (b BaseVisitor) VisitUnaryExpression(n *UnaryExpression)     { b.walk(n) }
func (b BaseVisitor) VisitBinaryExpression(n *BinaryExpression)   { b.walk(n) }
func (b BaseVisitor) VisitParensExpression(n *ParensExpression)   { b.walk(n) }
func (b BaseVisitor) VisitFunctionCallExpression(n *FunctionCallExpression) {
	b.walk(n)
}
func (b BaseVisitor) VisitPredefinedFunctionCallExpression(n *PredefinedFunctionCallExpression) {
	b.walk(n)
}
func (b BaseVisitor) VisitIndexerExpression(n *IndexerExpression) { b.walk(n) }
func (b BaseVisitor) VisitMemberReferenceExpression(n *MemberReferenceExpression) {
	b.walk(n)
}
func (b BaseVisitor) VisitArrayInitializerExpression(n *ArrayInitializerExpression) {
	b.walk(n)
}

func (b BaseVisitor) VisitLetStatement(n *LetStatement)                 { b.walk(n) }
func (b BaseVisitor) VisitIfStatement(n *IfStatement)                   { b.walk(n) }
func (b BaseVisitor) VisitIfThenStatement(n *IfThenStatement)           { b.walk(n) }
func (b BaseVisitor) VisitWhileStatement(n *WhileStatement)             { b.walk(n) }
func (b BaseVisitor) VisitWhileDoStatement(n *WhileDoStatement)         { b.walk(n) }
func (b BaseVisitor) VisitLoopStatement(n *LoopStatement)               { b.walk(n) }
func (b BaseVisitor) VisitRepeatUntilStatement(n *RepeatUntilStatement) { b.walk(n) }
func (b BaseVisitor) VisitForStatement(n *ForStatement)                 { b.walk(n) }
func (b BaseVisitor) VisitSelectStatement(n *SelectStatement)           { b.walk(n) }
func (b BaseVisitor) VisitGotoStatement(n *GotoStatement)               {}
func (b BaseVisitor) VisitGosubStatement(n *GosubStatement)             {}
func (b BaseVisitor) VisitLabelStatement(n *LabelStatement)             {}
func (b BaseVisitor) VisitReturnStatement(n *ReturnStatement)           { b.walk(n) }
func (b BaseVisitor) VisitBreakStatement(n *BreakStatement)             {}
func (b BaseVisitor) VisitContinueStatement(n *ContinueStatement)       {}
func (b BaseVisitor) VisitVariableDeclarationStatement(n *VariableDeclarationStatement) {
	b.walk(n)
}
func (b BaseVisitor) VisitProcedureCallStatement(n *ProcedureCallStatement)   { b.walk(n) }
func (b BaseVisitor) VisitPredefinedCallStatement(n *PredefinedCallStatement) { b.walk(n) }
func (b BaseVisitor) VisitBlockStatement(n *BlockStatement)                   { b.walk(n) }
func (b BaseVisitor) VisitCommentStatement(n *CommentStatement)               {}

func (b BaseVisitor) VisitFunctionDeclaration(n *FunctionDeclaration)   { b.walk(n) }
func (b BaseVisitor) VisitProcedureDeclaration(n *ProcedureDeclaration) { b.walk(n) }
func (b BaseVisitor) VisitFunctionImplementation(n *FunctionImplementation) {
	b.walk(n)
}
func (b BaseVisitor) VisitProcedureImplementation(n *ProcedureImplementation) {
	b.walk(n)
}

// Children returns the direct child nodes of n in source order.
// Names of declarations, parameters and assignment targets are included as identifiers.
func Children(n Node) []Node {
	var out []Node
	add := func(ns ...Node) {
		for _, c := range ns {
			if c != nil && !isNilNode(c) {
				out = append(out, c)
			}
		}
	}
	addExprs := func(es []Expression) {
		for _, e := range es {
			add(e)
		}
	}
	addStmts := func(ss []Statement) {
		for _, s := range ss {
			add(s)
		}
	}
	addParams := func(ps []*Parameter) {
		for _, p := range ps {
			if p.Name != nil {
				add(p.Name)
			}
		}
	}

	switch n := n.(type) {
	case *Program:
		add(n.Nodes...)
	case *UnaryExpression:
		add(n.Expr)
	case *BinaryExpression:
		add(n.Left, n.Right)
	case *ParensExpression:
		add(n.Expr)
	case *FunctionCallExpression:
		add(n.Callee)
		addExprs(n.Args)
	case *PredefinedFunctionCallExpression:
		addExprs(n.Args)
	case *IndexerExpression:
		add(n.Name)
		addExprs(n.Args)
	case *MemberReferenceExpression:
		add(n.Expr)
	case *ArrayInitializerExpression:
		addExprs(n.Elements)

	case *LetStatement:
		add(n.Target)
		addExprs(n.Indices)
		add(n.Value)
	case *IfStatement:
		add(n.Condition, n.Statement)
	case *IfThenStatement:
		add(n.Condition)
		addStmts(n.Statements)
		for _, ei := range n.ElseIfs {
			add(ei.Condition)
			addStmts(ei.Statements)
		}
		if n.Else != nil {
			addStmts(n.Else.Statements)
		}
	case *WhileStatement:
		add(n.Condition, n.Statement)
	case *WhileDoStatement:
		add(n.Condition)
		addStmts(n.Statements)
	case *LoopStatement:
		addStmts(n.Statements)
	case *RepeatUntilStatement:
		addStmts(n.Statements)
		add(n.Condition)
	case *ForStatement:
		add(n.Variable, n.Start, n.End, n.Step)
		addStmts(n.Statements)
	case *SelectStatement:
		add(n.Expr)
		for _, c := range n.Cases {
			for _, spec := range c.Specifiers {
				add(spec.From, spec.To)
			}
			addStmts(c.Statements)
		}
		if n.Default != nil {
			addStmts(n.Default.Statements)
		}
	case *ReturnStatement:
		add(n.Value)
	case *VariableDeclarationStatement:
		for _, v := range n.Variables {
			add(v.Name, v.Initializer)
		}
	case *ProcedureCallStatement:
		add(n.Name)
		addExprs(n.Args)
	case *PredefinedCallStatement:
		addExprs(n.Args)
	case *BlockStatement:
		addStmts(n.Statements)

	case *FunctionDeclaration:
		add(n.Name)
		addParams(n.Parameters)
	case *ProcedureDeclaration:
		add(n.Name)
		addParams(n.Parameters)
	case *FunctionImplementation:
		add(n.Name)
		addParams(n.Parameters)
		addStmts(n.Statements)
	case *ProcedureImplementation:
		add(n.Name)
		addParams(n.Parameters)
		addStmts(n.Statements)
	}
	return out
}

// isNilNode catches typed nil pointers stored in an interface
func isNilNode(n Node) bool {
	id, ok := n.(*Identifier)
	return ok && id == nil
}

// Inspect traverses the tree depth first, calling fn for each node.
// If fn returns false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}
