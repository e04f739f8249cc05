package ast

import (
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

// Parameter is one entry of a parameter list: [VAR] TYPE [name[(dims)]].
// The name is optional in DECLARE lines.
type Parameter struct {
	Token      token.Token // the type keyword
	IsVar      bool
	Type       executable.VariableType
	TypeName   string
	Name       *Identifier
	Dimensions []int
}

// DECLARE FUNCTION NAME(params) TYPE
type FunctionDeclaration struct {
	Token          token.Token // DECLARE
	Name           *Identifier
	Parameters     []*Parameter
	ReturnType     executable.VariableType
	ReturnTypeName string
}

func (fd *FunctionDeclaration) Accept(v Visitor)      { v.VisitFunctionDeclaration(fd) }
func (fd *FunctionDeclaration) declarationNode()      {}
func (fd *FunctionDeclaration) TokenLiteral() string  { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token { return fd.Token }

// DECLARE PROCEDURE NAME(params)
type ProcedureDeclaration struct {
	Token      token.Token
	Name       *Identifier
	Parameters []*Parameter
}

func (pd *ProcedureDeclaration) Accept(v Visitor)      { v.VisitProcedureDeclaration(pd) }
func (pd *ProcedureDeclaration) declarationNode()      {}
func (pd *ProcedureDeclaration) TokenLiteral() string  { return pd.Token.Lexeme }
func (pd *ProcedureDeclaration) GetToken() token.Token { return pd.Token }

// FunctionImplementation: FUNCTION NAME(params) TYPE ... ENDFUNC.
// The function name doubles as the result variable inside the body.
type FunctionImplementation struct {
	Token          token.Token // FUNCTION
	Name           *Identifier
	Parameters     []*Parameter
	ReturnType     executable.VariableType
	ReturnTypeName string
	Statements     []Statement
}

func (fi *FunctionImplementation) Accept(v Visitor)      { v.VisitFunctionImplementation(fi) }
func (fi *FunctionImplementation) declarationNode()      {}
func (fi *FunctionImplementation) TokenLiteral() string  { return fi.Token.Lexeme }
func (fi *FunctionImplementation) GetToken() token.Token { return fi.Token }

// ProcedureImplementation: PROCEDURE NAME(params) ... ENDPROC
type ProcedureImplementation struct {
	Token      token.Token
	Name       *Identifier
	Parameters []*Parameter
	Statements []Statement
}

func (pi *ProcedureImplementation) Accept(v Visitor)      { v.VisitProcedureImplementation(pi) }
func (pi *ProcedureImplementation) declarationNode()      {}
func (pi *ProcedureImplementation) TokenLiteral() string  { return pi.Token.Lexeme }
func (pi *ProcedureImplementation) GetToken() token.Token { return pi.Token }
