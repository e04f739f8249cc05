package ast

import (
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

// LetStatement assigns to a variable or array element.
// [LET] NAME[(i, j)] op VALUE where op is = or a compound assignment.
type LetStatement struct {
	Token     token.Token // LET, or the target name when LET is omitted
	HasLet    bool
	Target    *Identifier
	Indices   []Expression
	Bracketed bool // indices written as [..] rather than (..)
	AssignOp  token.TokenType
	Value     Expression
}

func (ls *LetStatement) Accept(v Visitor)      { v.VisitLetStatement(ls) }
func (ls *LetStatement) statementNode()        {}
func (ls *LetStatement) TokenLiteral() string  { return ls.Token.Lexeme }
func (ls *LetStatement) GetToken() token.Token { return ls.Token }

// NewLet builds a plain assignment without source position
func NewLet(target *Identifier, indices []Expression, value Expression) *LetStatement {
	return &LetStatement{Token: target.Token, Target: target, Indices: indices, AssignOp: token.EQ, Value: value}
}

// IfStatement is the single line form: IF (cond) stmt
type IfStatement struct {
	Token     token.Token
	Condition Expression
	Statement Statement
}

func (is *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(is) }
func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

type ElseIfBlock struct {
	Token      token.Token
	Condition  Expression
	Statements []Statement
}

type ElseBlock struct {
	Token      token.Token
	Statements []Statement
}

// IfThenStatement: IF (cond) THEN ... [ELSEIF (cond) THEN ...] [ELSE ...] ENDIF
type IfThenStatement struct {
	Token      token.Token
	Condition  Expression
	Statements []Statement
	ElseIfs    []*ElseIfBlock
	Else       *ElseBlock
}

func (it *IfThenStatement) Accept(v Visitor)      { v.VisitIfThenStatement(it) }
func (it *IfThenStatement) statementNode()        {}
func (it *IfThenStatement) TokenLiteral() string  { return it.Token.Lexeme }
func (it *IfThenStatement) GetToken() token.Token { return it.Token }

// WhileStatement is the single line form: WHILE (cond) stmt
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Statement Statement
}

func (ws *WhileStatement) Accept(v Visitor)      { v.VisitWhileStatement(ws) }
func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token { return ws.Token }

// WhileDoStatement: WHILE (cond) DO ... ENDWHILE
type WhileDoStatement struct {
	Token      token.Token
	Condition  Expression
	Statements []Statement
}

func (wd *WhileDoStatement) Accept(v Visitor)      { v.VisitWhileDoStatement(wd) }
func (wd *WhileDoStatement) statementNode()        {}
func (wd *WhileDoStatement) TokenLiteral() string  { return wd.Token.Lexeme }
func (wd *WhileDoStatement) GetToken() token.Token { return wd.Token }

// LoopStatement: LOOP ... ENDLOOP, left with BREAK
type LoopStatement struct {
	Token      token.Token
	Statements []Statement
}

func (ls *LoopStatement) Accept(v Visitor)      { v.VisitLoopStatement(ls) }
func (ls *LoopStatement) statementNode()        {}
func (ls *LoopStatement) TokenLiteral() string  { return ls.Token.Lexeme }
func (ls *LoopStatement) GetToken() token.Token { return ls.Token }

// RepeatUntilStatement: REPEAT ... UNTIL cond
type RepeatUntilStatement struct {
	Token      token.Token
	Statements []Statement
	Condition  Expression
}

func (ru *RepeatUntilStatement) Accept(v Visitor)      { v.VisitRepeatUntilStatement(ru) }
func (ru *RepeatUntilStatement) statementNode()        {}
func (ru *RepeatUntilStatement) TokenLiteral() string  { return ru.Token.Lexeme }
func (ru *RepeatUntilStatement) GetToken() token.Token { return ru.Token }

// ForStatement: FOR I = start TO end [STEP step] ... NEXT
type ForStatement struct {
	Token      token.Token
	Variable   *Identifier
	Start      Expression
	End        Expression
	Step       Expression // nil means 1
	Statements []Statement
}

func (fs *ForStatement) Accept(v Visitor)      { v.VisitForStatement(fs) }
func (fs *ForStatement) statementNode()        {}
func (fs *ForStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token { return fs.Token }

// CaseSpecifier is one value (To == nil) or an inclusive range From..To
type CaseSpecifier struct {
	From Expression
	To   Expression
}

type CaseBlock struct {
	Token      token.Token
	Specifiers []CaseSpecifier
	Statements []Statement
}

type DefaultBlock struct {
	Token      token.Token
	Statements []Statement
}

// SelectStatement: SELECT CASE expr, CASE blocks, optional DEFAULT (CASE ELSE), ENDSELECT
type SelectStatement struct {
	Token   token.Token
	Expr    Expression
	Cases   []*CaseBlock
	Default *DefaultBlock
}

func (ss *SelectStatement) Accept(v Visitor)      { v.VisitSelectStatement(ss) }
func (ss *SelectStatement) statementNode()        {}
func (ss *SelectStatement) TokenLiteral() string  { return ss.Token.Lexeme }
func (ss *SelectStatement) GetToken() token.Token { return ss.Token }

type GotoStatement struct {
	Token token.Token
	Label string
}

func (gs *GotoStatement) Accept(v Visitor)      { v.VisitGotoStatement(gs) }
func (gs *GotoStatement) statementNode()        {}
func (gs *GotoStatement) TokenLiteral() string  { return gs.Token.Lexeme }
func (gs *GotoStatement) GetToken() token.Token { return gs.Token }

func NewGoto(label string) *GotoStatement {
	return &GotoStatement{Token: token.Token{Type: token.GOTO, Lexeme: "GOTO"}, Label: label}
}

type GosubStatement struct {
	Token token.Token
	Label string
}

func (gs *GosubStatement) Accept(v Visitor)      { v.VisitGosubStatement(gs) }
func (gs *GosubStatement) statementNode()        {}
func (gs *GosubStatement) TokenLiteral() string  { return gs.Token.Lexeme }
func (gs *GosubStatement) GetToken() token.Token { return gs.Token }

// LabelStatement: :NAME
type LabelStatement struct {
	Token token.Token
	Label string
}

func (ls *LabelStatement) Accept(v Visitor)      { v.VisitLabelStatement(ls) }
func (ls *LabelStatement) statementNode()        {}
func (ls *LabelStatement) TokenLiteral() string  { return ls.Token.Lexeme }
func (ls *LabelStatement) GetToken() token.Token { return ls.Token }

func NewLabel(label string) *LabelStatement {
	return &LabelStatement{Token: token.Token{Type: token.LABEL, Lexeme: ":" + label, Literal: label}, Label: label}
}

// ReturnStatement leaves a GOSUB, procedure or function. Value is only valid in functions.
type ReturnStatement struct {
	Token token.Token
	Value Expression
}

func (rs *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) Accept(v Visitor)      { v.VisitBreakStatement(bs) }
func (bs *BreakStatement) statementNode()        {}
func (bs *BreakStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token { return bs.Token }

type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) Accept(v Visitor)      { v.VisitContinueStatement(cs) }
func (cs *ContinueStatement) statementNode()        {}
func (cs *ContinueStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *ContinueStatement) GetToken() token.Token { return cs.Token }

// VariableSpecifier is one name of a declaration, with optional dimensions
// or (from 350 on) an initializer.
type VariableSpecifier struct {
	Name        *Identifier
	Dimensions  []int
	Bracketed   bool
	Initializer Expression
}

// VariableDeclarationStatement: INTEGER A, B(10), C = 5
type VariableDeclarationStatement struct {
	Token     token.Token // the type keyword
	Type      executable.VariableType
	TypeName  string
	Variables []*VariableSpecifier
}

func (vd *VariableDeclarationStatement) Accept(v Visitor)      { v.VisitVariableDeclarationStatement(vd) }
func (vd *VariableDeclarationStatement) statementNode()        {}
func (vd *VariableDeclarationStatement) TokenLiteral() string  { return vd.Token.Lexeme }
func (vd *VariableDeclarationStatement) GetToken() token.Token { return vd.Token }

// ProcedureCallStatement calls a user procedure: NAME(args)
type ProcedureCallStatement struct {
	Token token.Token
	Name  *Identifier
	Args  []Expression
}

func (pc *ProcedureCallStatement) Accept(v Visitor)      { v.VisitProcedureCallStatement(pc) }
func (pc *ProcedureCallStatement) statementNode()        {}
func (pc *ProcedureCallStatement) TokenLiteral() string  { return pc.Token.Lexeme }
func (pc *ProcedureCallStatement) GetToken() token.Token { return pc.Token }

// PredefinedCallStatement runs a statement of the built-in table: PRINTLN "HI", X
type PredefinedCallStatement struct {
	Token token.Token
	Name  string
	Def   *executable.StatementDef
	Args  []Expression
}

func (pc *PredefinedCallStatement) Accept(v Visitor)      { v.VisitPredefinedCallStatement(pc) }
func (pc *PredefinedCallStatement) statementNode()        {}
func (pc *PredefinedCallStatement) TokenLiteral() string  { return pc.Token.Lexeme }
func (pc *PredefinedCallStatement) GetToken() token.Token { return pc.Token }

// BlockStatement groups statements produced by lowering; it has no source form
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (bs *BlockStatement) Accept(v Visitor)      { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token { return bs.Token }

type CommentStatement struct {
	Token   token.Token
	Comment token.Comment
}

func (cs *CommentStatement) Accept(v Visitor)      { v.VisitCommentStatement(cs) }
func (cs *CommentStatement) statementNode()        {}
func (cs *CommentStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *CommentStatement) GetToken() token.Token { return cs.Token }
