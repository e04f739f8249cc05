package parser

import (
	"strings"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

// checkEOL reports anything but a line end after a declaration
func (p *Parser) checkEOL() bool {
	if p.atLineEnd() {
		return true
	}
	p.addError(diagnostics.EolExpected, p.curToken, tokenText(p.curToken))
	return false
}

// parseParameters reads (params) of a declaration or implementation.
// Names are optional when named is false.
func (p *Parser) parseParameters(isFunction, named bool) ([]*ast.Parameter, bool) {
	if !p.curTokenIs(token.LPAREN) {
		p.addError(diagnostics.MissingOpenParens, p.curToken, tokenText(p.curToken))
		return nil, false
	}
	p.nextToken()

	params := []*ast.Parameter{}
	for !p.curTokenIs(token.RPAREN) {
		if p.atLineEnd() {
			p.addError(diagnostics.MissingCloseParens, p.curToken, tokenText(p.curToken))
			return nil, false
		}
		param := &ast.Parameter{}
		if p.curIdentIs("VAR") {
			if isFunction {
				p.addError(diagnostics.VarNotAllowedInFunctions, p.curToken)
			} else {
				param.IsVar = true
			}
			p.nextToken()
		}

		t, ok := p.variableType()
		if !ok {
			p.addError(diagnostics.TypeExpected, p.curToken, tokenText(p.curToken))
			return nil, false
		}
		param.Token = p.curToken
		param.Type = t
		param.TypeName = strings.ToUpper(p.curToken.Name())
		p.nextToken()

		if named || p.curTokenIs(token.IDENT) {
			spec := p.parseVarInfo()
			if spec == nil {
				return nil, false
			}
			param.Name = spec.Name
			param.Dimensions = spec.Dimensions
		}
		params = append(params, param)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.curTokenIs(token.RPAREN) {
			p.addError(diagnostics.MissingCloseParens, p.curToken, tokenText(p.curToken))
			return nil, false
		}
	}
	p.nextToken()
	return params, true
}

// parseReturnType reads the result type after a function's parameter list
func (p *Parser) parseReturnType() (executable.VariableType, string, bool) {
	t, ok := p.variableType()
	if !ok {
		p.addError(diagnostics.TypeExpected, p.curToken, tokenText(p.curToken))
		return executable.TypeNone, "", false
	}
	name := strings.ToUpper(p.curToken.Name())
	p.nextToken()
	return t, name, true
}

// parseDeclaration parses DECLARE PROCEDURE NAME(params) and
// DECLARE FUNCTION NAME(params) TYPE.
func (p *Parser) parseDeclaration() ast.Node {
	declTok := p.curToken
	p.nextToken()

	var isFunction bool
	switch p.curToken.Type {
	case token.FUNCTION:
		isFunction = true
	case token.PROCEDURE:
	default:
		p.addError(diagnostics.InvalidDeclaration, p.curToken)
		return nil
	}
	p.nextToken()

	if !p.curTokenIs(token.IDENT) {
		p.addError(diagnostics.IdentifierExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	name := p.identifier()
	p.nextToken()

	params, ok := p.parseParameters(isFunction, false)
	if !ok {
		return nil
	}

	if !isFunction {
		if executable.LookupStatement(name.Value) != nil {
			p.addError(diagnostics.AlreadyDefined, name.Token, name.Value)
			return nil
		}
		if !p.checkEOL() {
			return nil
		}
		return &ast.ProcedureDeclaration{Token: declTok, Name: name, Parameters: params}
	}

	if executable.LookupFunction(name.Value) != nil {
		p.addError(diagnostics.AlreadyDefined, name.Token, name.Value)
		return nil
	}
	ret, retName, ok := p.parseReturnType()
	if !ok || !p.checkEOL() {
		return nil
	}
	return &ast.FunctionDeclaration{Token: declTok, Name: name, Parameters: params, ReturnType: ret, ReturnTypeName: retName}
}

// parseBody reads an implementation body up to ENDPROC or ENDFUNC and
// warns when the wrong one closes it.
func (p *Parser) parseBody(opener token.Token, want token.TokenType) ([]ast.Statement, bool) {
	stmts, ok := p.parseBlock(want, otherEnd(want))
	if !ok {
		return nil, false
	}
	if !p.curTokenIs(want) {
		p.addWarning(diagnostics.MismatchedBlockEnd, p.curToken, tokenText(p.curToken), tokenText(opener))
	}
	p.nextToken()
	return stmts, true
}

func otherEnd(t token.TokenType) token.TokenType {
	if t == token.ENDFUNC {
		return token.ENDPROC
	}
	return token.ENDFUNC
}

func (p *Parser) parseProcedure() ast.Node {
	tok := p.curToken
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.addError(diagnostics.IdentifierExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	name := p.identifier()
	p.nextToken()

	params, ok := p.parseParameters(false, true)
	if !ok {
		return nil
	}
	stmts, ok := p.parseBody(tok, token.ENDPROC)
	if !ok {
		return nil
	}
	return &ast.ProcedureImplementation{Token: tok, Name: name, Parameters: params, Statements: stmts}
}

func (p *Parser) parseFunction() ast.Node {
	tok := p.curToken
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.addError(diagnostics.IdentifierExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	name := p.identifier()
	p.nextToken()

	params, ok := p.parseParameters(true, true)
	if !ok {
		return nil
	}
	ret, retName, ok := p.parseReturnType()
	if !ok {
		return nil
	}

	p.inFunction = true
	stmts, ok := p.parseBody(tok, token.ENDFUNC)
	p.inFunction = false
	if !ok {
		return nil
	}
	return &ast.FunctionImplementation{
		Token:          tok,
		Name:           name,
		Parameters:     params,
		ReturnType:     ret,
		ReturnTypeName: retName,
		Statements:     stmts,
	}
}
