package ast

import (
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

// BinOp is a binary operator
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Pow
	Eq
	NotEq
	Lower
	LowerEq
	Greater
	GreaterEq
	And
	Or
)

var binOpSymbols = [...]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", Pow: "^",
	Eq: "=", NotEq: "<>", Lower: "<", LowerEq: "<=", Greater: ">", GreaterEq: ">=",
	And: "&", Or: "|",
}

// String returns the operator as written in source
func (op BinOp) String() string { return binOpSymbols[op] }

// Precedence orders operators from loosest (1) to tightest binding
func (op BinOp) Precedence() int {
	switch op {
	case And, Or:
		return 1
	case Eq, NotEq, Lower, LowerEq, Greater, GreaterEq:
		return 2
	case Add, Sub:
		return 3
	case Mul, Div, Mod:
		return 4
	case Pow:
		return 5
	}
	return 0
}

func (op BinOp) FuncOpCode() executable.FuncOpCode {
	switch op {
	case Add:
		return executable.FN_PLUS
	case Sub:
		return executable.FN_MINUS
	case Mul:
		return executable.FN_TIMES
	case Div:
		return executable.FN_DIVIDE
	case Mod:
		return executable.FN_MOD
	case Pow:
		return executable.FN_EXP
	case Eq:
		return executable.FN_EQ
	case NotEq:
		return executable.FN_NE
	case Lower:
		return executable.FN_LT
	case LowerEq:
		return executable.FN_LE
	case Greater:
		return executable.FN_GT
	case GreaterEq:
		return executable.FN_GE
	case And:
		return executable.FN_AND
	}
	return executable.FN_OR
}

// BinOpFromToken maps operator and compound assignment tokens to their operator
func BinOpFromToken(t token.TokenType) (BinOp, bool) {
	switch t {
	case token.ADD, token.ADD_ASSIGN:
		return Add, true
	case token.SUB, token.SUB_ASSIGN:
		return Sub, true
	case token.MUL, token.MUL_ASSIGN:
		return Mul, true
	case token.DIV, token.DIV_ASSIGN:
		return Div, true
	case token.MOD, token.MOD_ASSIGN:
		return Mod, true
	case token.POW:
		return Pow, true
	case token.EQ:
		return Eq, true
	case token.NOT_EQ:
		return NotEq, true
	case token.LT:
		return Lower, true
	case token.LT_EQ:
		return LowerEq, true
	case token.GT:
		return Greater, true
	case token.GT_EQ:
		return GreaterEq, true
	case token.AND, token.AND_ASSIGN:
		return And, true
	case token.OR, token.OR_ASSIGN:
		return Or, true
	}
	return 0, false
}

type UnaryOp int

const (
	Plus UnaryOp = iota
	Minus
	Not
)

func (op UnaryOp) String() string {
	switch op {
	case Minus:
		return "-"
	case Not:
		return "!"
	}
	return "+"
}

func (op UnaryOp) FuncOpCode() executable.FuncOpCode {
	switch op {
	case Minus:
		return executable.FN_UMINUS
	case Not:
		return executable.FN_NOT
	}
	return executable.FN_UPLUS
}

// Constant is a literal: 123, "TEXT", $1.42, TRUE, @X07 or a builtin name like STK_LIMIT
type Constant struct {
	Token token.Token
	Value token.Constant
}

func (c *Constant) Accept(v Visitor)      { v.VisitConstant(c) }
func (c *Constant) expressionNode()       {}
func (c *Constant) TokenLiteral() string  { return c.Token.Lexeme }
func (c *Constant) GetToken() token.Token { return c.Token }

func NewConstant(c token.Constant) *Constant {
	return &Constant{Token: token.Token{Type: token.CONST, Lexeme: c.String(), Literal: c}, Value: c}
}

func NewInteger(v int32) *Constant { return NewConstant(token.IntegerConst(v, token.FormatDefault)) }

// UnaryExpression: -x, +x, !x
type UnaryExpression struct {
	Token token.Token // the operator
	Op    UnaryOp
	Expr  Expression
}

func (ue *UnaryExpression) Accept(v Visitor)      { v.VisitUnaryExpression(ue) }
func (ue *UnaryExpression) expressionNode()       {}
func (ue *UnaryExpression) TokenLiteral() string  { return ue.Token.Lexeme }
func (ue *UnaryExpression) GetToken() token.Token { return ue.Token }

type BinaryExpression struct {
	Token token.Token // the operator
	Left  Expression
	Op    BinOp
	Right Expression
}

func (be *BinaryExpression) Accept(v Visitor)      { v.VisitBinaryExpression(be) }
func (be *BinaryExpression) expressionNode()       {}
func (be *BinaryExpression) TokenLiteral() string  { return be.Token.Lexeme }
func (be *BinaryExpression) GetToken() token.Token { return be.Token }

func NewBinary(left Expression, op BinOp, right Expression) *BinaryExpression {
	return &BinaryExpression{Token: token.Token{Lexeme: op.String()}, Left: left, Op: op, Right: right}
}

// ParensExpression keeps explicit parentheses so formatting round-trips
type ParensExpression struct {
	Token token.Token // the '(' token
	Expr  Expression
}

func (pe *ParensExpression) Accept(v Visitor)      { v.VisitParensExpression(pe) }
func (pe *ParensExpression) expressionNode()       {}
func (pe *ParensExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *ParensExpression) GetToken() token.Token { return pe.Token }

// FunctionCallExpression calls a user function, indexes an array declared with
// parentheses or, when Callee is a member reference, calls a UserData method.
type FunctionCallExpression struct {
	Token  token.Token // the '(' token
	Callee Expression
	Args   []Expression
}

func (fc *FunctionCallExpression) Accept(v Visitor)      { v.VisitFunctionCallExpression(fc) }
func (fc *FunctionCallExpression) expressionNode()       {}
func (fc *FunctionCallExpression) TokenLiteral() string  { return fc.Token.Lexeme }
func (fc *FunctionCallExpression) GetToken() token.Token { return fc.Token }

// PredefinedFunctionCallExpression calls a function of the built-in table, e.g. LEN(s)
type PredefinedFunctionCallExpression struct {
	Token token.Token // the name token
	Name  string
	Func  *executable.FunctionDef
	Args  []Expression
}

func (pc *PredefinedFunctionCallExpression) Accept(v Visitor) {
	v.VisitPredefinedFunctionCallExpression(pc)
}
func (pc *PredefinedFunctionCallExpression) expressionNode()       {}
func (pc *PredefinedFunctionCallExpression) TokenLiteral() string  { return pc.Token.Lexeme }
func (pc *PredefinedFunctionCallExpression) GetToken() token.Token { return pc.Token }

// IndexerExpression is the bracket form of array access: ARR[1, 2]
type IndexerExpression struct {
	Token token.Token // the name token
	Name  *Identifier
	Args  []Expression
}

func (ie *IndexerExpression) Accept(v Visitor)      { v.VisitIndexerExpression(ie) }
func (ie *IndexerExpression) expressionNode()       {}
func (ie *IndexerExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IndexerExpression) GetToken() token.Token { return ie.Token }

// MemberReferenceExpression reads a UserData field: CONF.NAME
type MemberReferenceExpression struct {
	Token  token.Token // the '.' token
	Expr   Expression
	Member *Identifier
}

func (mr *MemberReferenceExpression) Accept(v Visitor)      { v.VisitMemberReferenceExpression(mr) }
func (mr *MemberReferenceExpression) expressionNode()       {}
func (mr *MemberReferenceExpression) TokenLiteral() string  { return mr.Token.Lexeme }
func (mr *MemberReferenceExpression) GetToken() token.Token { return mr.Token }

// ArrayInitializerExpression: {1, 2, 3}. Only valid as a declaration initializer.
type ArrayInitializerExpression struct {
	Token    token.Token // the '{' token
	Elements []Expression
}

func (ai *ArrayInitializerExpression) Accept(v Visitor)      { v.VisitArrayInitializerExpression(ai) }
func (ai *ArrayInitializerExpression) expressionNode()       {}
func (ai *ArrayInitializerExpression) TokenLiteral() string  { return ai.Token.Lexeme }
func (ai *ArrayInitializerExpression) GetToken() token.Token { return ai.Token }
