package ast

import (
	"github.com/funvibe/ppl/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Declaration is a top level node that is not a statement:
// DECLARE lines and function/procedure bodies.
type Declaration interface {
	Node
	declarationNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
// Nodes keeps source order; statements and declarations are interleaved.
type Program struct {
	File  string
	Nodes []Node
	// UserVariables is set when the program uses a statement that reads or writes
	// the U_* block (GETUSER, PUTUSER, ...).
	UserVariables bool
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Nodes) > 0 {
		return p.Nodes[0].TokenLiteral()
	}
	return ""
}

// Statements returns the top level statements in order
func (p *Program) Statements() []Statement {
	var out []Statement
	for _, n := range p.Nodes {
		if s, ok := n.(Statement); ok {
			out = append(out, s)
		}
	}
	return out
}

func (p *Program) Functions() []*FunctionImplementation {
	var out []*FunctionImplementation
	for _, n := range p.Nodes {
		if f, ok := n.(*FunctionImplementation); ok {
			out = append(out, f)
		}
	}
	return out
}

func (p *Program) Procedures() []*ProcedureImplementation {
	var out []*ProcedureImplementation
	for _, n := range p.Nodes {
		if f, ok := n.(*ProcedureImplementation); ok {
			out = append(out, f)
		}
	}
	return out
}

// Declarations returns the DECLARE lines and the function and procedure
// bodies in source order
func (p *Program) Declarations() []Declaration {
	var out []Declaration
	for _, n := range p.Nodes {
		if d, ok := n.(Declaration); ok {
			out = append(out, d)
		}
	}
	return out
}

// Identifier is a variable, label or callee name. Names are case-insensitive.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}
func (i *Identifier) String() string { return i.Value }

// NewIdentifier builds an identifier without source position, used by rewrites.
func NewIdentifier(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Lexeme: name, Literal: name}, Value: name}
}
