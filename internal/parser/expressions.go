package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

// parseExpression returns nil without reporting when no expression starts here;
// callers that need one use expectExpression.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseBool()
}

// expectExpression parses an expression and reports ExpressionExpected
// unless a more specific error was already recorded.
func (p *Parser) expectExpression() ast.Expression {
	errs := p.errorCount()
	tok := p.curToken
	expr := p.parseExpression()
	if expr == nil && p.errorCount() == errs {
		p.addError(diagnostics.ExpressionExpected, tok, tokenText(tok))
	}
	return expr
}

// binaryLoop parses left-associative operators of one precedence level
func (p *Parser) binaryLoop(next func() ast.Expression, ops ...token.TokenType) ast.Expression {
	left := next()
	if left == nil {
		return nil
	}
	for {
		opTok := p.curToken
		matched := false
		for _, t := range ops {
			if opTok.Type == t {
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
		p.nextToken()
		errs := p.errorCount()
		right := next()
		if right == nil {
			if p.errorCount() == errs {
				p.addError(diagnostics.ExpressionExpected, p.curToken, tokenText(p.curToken))
			}
			return nil
		}
		op, _ := ast.BinOpFromToken(opTok.Type)
		left = &ast.BinaryExpression{Token: opTok, Left: left, Op: op, Right: right}
	}
}

// parseBool handles AND and OR, which share the lowest precedence level
func (p *Parser) parseBool() ast.Expression {
	return p.binaryLoop(p.parseComparison, token.AND, token.OR)
}

func (p *Parser) parseComparison() ast.Expression {
	return p.binaryLoop(p.parseTerm, token.GT, token.GT_EQ, token.LT, token.LT_EQ, token.EQ, token.NOT_EQ)
}

func (p *Parser) parseTerm() ast.Expression {
	return p.binaryLoop(p.parseFactor, token.ADD, token.SUB)
}

func (p *Parser) parseFactor() ast.Expression {
	return p.binaryLoop(p.parsePow, token.MUL, token.DIV, token.MOD)
}

func (p *Parser) parsePow() ast.Expression {
	return p.binaryLoop(p.parseUnary, token.POW)
}

func (p *Parser) parseUnary() ast.Expression {
	var op ast.UnaryOp
	switch p.curToken.Type {
	case token.ADD:
		op = ast.Plus
	case token.SUB:
		op = ast.Minus
	case token.NOT:
		op = ast.Not
	default:
		return p.parseCall()
	}
	tok := p.curToken
	p.nextToken()
	operand := p.parseUnary()
	if operand == nil {
		return nil
	}
	return &ast.UnaryExpression{Token: tok, Op: op, Expr: operand}
}

// parseCall handles NAME(args) after a primary. Predefined functions are
// resolved here; anything else stays a FunctionCallExpression for the compiler
// to bind to a user function, an array or a member call.
func (p *Parser) parseCall() ast.Expression {
	primary := p.parsePrimary()
	if primary == nil || !p.curTokenIs(token.LPAREN) {
		return primary
	}
	switch primary.(type) {
	case *ast.Identifier, *ast.MemberReferenceExpression:
	default:
		return primary
	}

	lparen := p.curToken
	args, ok := p.parseArguments(token.RPAREN)
	if !ok {
		return nil
	}

	if id, isIdent := primary.(*ast.Identifier); isIdent {
		if def := executable.LookupFunction(id.Value); def != nil {
			return p.predefinedCall(id, def, args)
		}
	}
	return &ast.FunctionCallExpression{Token: lparen, Callee: primary, Args: args}
}

func (p *Parser) predefinedCall(id *ast.Identifier, def *executable.FunctionDef, args []ast.Expression) ast.Expression {
	if def.Version > p.version {
		p.addError(diagnostics.StatementVersionNotSupported, id.Token, def.Name, def.Version, p.version)
	}
	if len(args) != def.Arity {
		p.addError(diagnostics.WrongArgumentCount, id.Token, def.Name, strconv.Itoa(def.Arity), len(args))
	}
	return &ast.PredefinedFunctionCallExpression{Token: id.Token, Name: id.Value, Func: def, Args: args}
}

// parseArguments reads a comma separated list after the opening token (current)
// up to and including closing.
func (p *Parser) parseArguments(closing token.TokenType) ([]ast.Expression, bool) {
	p.nextToken()
	args := []ast.Expression{}
	for !p.curTokenIs(closing) {
		tok := p.curToken
		errs := p.errorCount()
		arg := p.parseExpression()
		if arg == nil {
			if p.errorCount() == errs {
				p.addError(diagnostics.InvalidToken, tok, tokenText(tok))
			}
			return nil, false
		}
		args = append(args, arg)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.curTokenIs(closing) {
		code := diagnostics.MissingCloseParens
		if closing == token.RBRACKET {
			code = diagnostics.MissingCloseBracket
		}
		p.addError(code, p.curToken, tokenText(p.curToken))
		return nil, false
	}
	p.nextToken()
	return args, true
}

func (p *Parser) parsePrimary() ast.Expression {
	var expr ast.Expression
	tok := p.curToken

	switch tok.Type {
	case token.CONST:
		c, _ := tok.Literal.(token.Constant)
		p.nextToken()
		expr = &ast.Constant{Token: tok, Value: c}

	case token.IDENT:
		id := p.identifier()
		p.nextToken()
		expr = id
		if p.version >= 350 && p.curTokenIs(token.LBRACKET) {
			args, ok := p.parseArguments(token.RBRACKET)
			if !ok {
				return nil
			}
			expr = &ast.IndexerExpression{Token: tok, Name: id, Args: args}
		}

	case token.LPAREN:
		p.nextToken()
		inner := p.expectExpression()
		if inner == nil {
			return nil
		}
		if !p.curTokenIs(token.RPAREN) {
			p.addError(diagnostics.MissingCloseParens, p.curToken, tokenText(p.curToken))
			return nil
		}
		p.nextToken()
		expr = &ast.ParensExpression{Token: tok, Expr: inner}

	case token.LBRACE:
		expr = p.parseArrayInitializer()
		if expr == nil {
			return nil
		}

	default:
		return nil
	}

	if p.curTokenIs(token.DOT) {
		dot := p.curToken
		p.nextToken()
		name, ok := memberName(p.curToken)
		if !ok {
			p.addError(diagnostics.IdentifierExpected, p.curToken, tokenText(p.curToken))
			return nil
		}
		member := &ast.Identifier{Token: p.curToken, Value: name}
		p.nextToken()
		expr = &ast.MemberReferenceExpression{Token: dot, Expr: expr, Member: member}
	}
	return expr
}

// memberName returns the word after a dot. Keywords and builtin constants
// such as SEC are plain member names there.
func memberName(tok token.Token) (string, bool) {
	if tok.Type == token.IDENT {
		return tok.Name(), true
	}
	if tok.Lexeme == "" {
		return "", false
	}
	for i, ch := range tok.Lexeme {
		letter := unicode.IsLetter(ch) || ch == '_'
		if i == 0 && !letter {
			return "", false
		}
		if !letter && !unicode.IsDigit(ch) && !strings.ContainsRune("@#$¢£¥€", ch) {
			return "", false
		}
	}
	return tok.Lexeme, true
}

func (p *Parser) parseArrayInitializer() ast.Expression {
	init := &ast.ArrayInitializerExpression{Token: p.curToken, Elements: []ast.Expression{}}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		p.skipEOLAndComments()
		elem := p.expectExpression()
		if elem == nil {
			return nil
		}
		init.Elements = append(init.Elements, elem)
		p.skipEOLAndComments()
		switch p.curToken.Type {
		case token.RBRACE:
		case token.COMMA:
			p.nextToken()
			p.skipEOLAndComments()
			continue
		default:
			p.addError(diagnostics.CommaOrRBraceExpected, p.curToken, tokenText(p.curToken))
			return nil
		}
		break
	}
	p.nextToken()
	return init
}
