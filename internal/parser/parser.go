package parser

import (
	"strings"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/token"
)

// beginLabel is the label the BEGIN pseudo statement turns into
const beginLabel = "~BEGIN~"

type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	version  int
	registry *executable.TypeRegistry

	useFuncs      bool
	parsedBegin   bool
	gotFuncs      bool
	inFunction    bool
	userVariables bool
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	version := ctx.LanguageVersion
	if version == 0 {
		version = config.DefaultLanguageVersion
	}
	p := &Parser{stream: stream, ctx: ctx, version: version, registry: ctx.Registry}
	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

// readMerged reads one token and folds two-word keywords into one:
// ELSE IF, CASE ELSE and the END xxx forms.
func (p *Parser) readMerged() token.Token {
	tok := p.stream.Next()
	next := p.stream.Peek(1)[0]

	merged := token.TokenType("")
	switch tok.Type {
	case token.ELSE:
		if next.Type == token.IF {
			merged = token.ELSEIF
		}
	case token.CASE:
		if next.Type == token.ELSE {
			merged = token.DEFAULT
		}
	case token.IDENT:
		if !strings.EqualFold(tok.Name(), "END") {
			break
		}
		switch next.Type {
		case token.IF:
			merged = token.ENDIF
		case token.WHILE:
			merged = token.ENDWHILE
		case token.SELECT:
			merged = token.ENDSELECT
		case token.LOOP:
			merged = token.ENDLOOP
		case token.FOR:
			merged = token.NEXT
		case token.IDENT:
			switch strings.ToUpper(next.Name()) {
			case "PROC":
				merged = token.ENDPROC
			case "FUNC":
				merged = token.ENDFUNC
			}
		}
	}
	if merged == "" {
		return tok
	}
	p.stream.Next()
	return token.Token{
		Type:   merged,
		Lexeme: tok.Lexeme + " " + next.Lexeme,
		Line:   tok.Line,
		Column: tok.Column,
		Span:   token.Span{Start: tok.Span.Start, End: next.Span.End},
	}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.curToken.Type == token.EOF {
		return
	}
	p.peekToken = p.readMerged()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// curIdentIs checks for a contextual word such as THEN, DO, TO, STEP or VAR
func (p *Parser) curIdentIs(word string) bool {
	return p.curToken.Type == token.IDENT && strings.EqualFold(p.curToken.Name(), word)
}

// atLineEnd reports whether the current token ends a statement
func (p *Parser) atLineEnd() bool {
	switch p.curToken.Type {
	case token.EOL, token.COMMENT, token.EOF:
		return true
	}
	return false
}

func (p *Parser) skipEOL() {
	for p.curTokenIs(token.EOL) {
		p.nextToken()
	}
}

func (p *Parser) skipEOLAndComments() {
	for p.curTokenIs(token.EOL) || p.curTokenIs(token.COMMENT) {
		p.nextToken()
	}
}

// synchronize drops the rest of a broken statement
func (p *Parser) synchronize() {
	for !p.atLineEnd() {
		p.nextToken()
	}
}

func (p *Parser) addError(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) {
	err := diagnostics.NewError(code, tok, args...)
	err.File = p.ctx.FilePath
	p.ctx.Errors = append(p.ctx.Errors, err)
}

func (p *Parser) addWarning(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) {
	err := diagnostics.NewWarning(code, tok, args...)
	err.File = p.ctx.FilePath
	p.ctx.Errors = append(p.ctx.Errors, err)
}

func (p *Parser) errorCount() int { return len(p.ctx.Errors) }

// tokenText renders a token for error messages
func tokenText(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "<EOF>"
	case token.EOL:
		return "<EOL>"
	}
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return string(t.Type)
}

// variableType resolves the current token as a type name, builtin or user defined
func (p *Parser) variableType() (executable.VariableType, bool) {
	if p.curToken.Type != token.IDENT {
		return executable.TypeNone, false
	}
	name := p.curToken.Name()
	if t, ok := executable.TypeFromKeyword(name, p.version); ok {
		return t, true
	}
	if ut, ok := p.registry.Lookup(name); ok {
		return ut.Type, true
	}
	return executable.TypeNone, false
}

func (p *Parser) identifier() *ast.Identifier {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Name()}
}

// ParseProgram parses the whole token stream. It never returns nil.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{File: p.ctx.FilePath}
	p.skipEOL()
	for !p.curTokenIs(token.EOF) {
		errs := p.errorCount()
		node := p.parseTopLevel()
		if node != nil {
			prog.Nodes = append(prog.Nodes, node)
		} else if p.errorCount() > errs {
			p.synchronize()
		}
	}
	prog.UserVariables = p.userVariables || p.ctx.UserVariables
	return prog
}

func (p *Parser) parseTopLevel() ast.Node {
	switch p.curToken.Type {
	case token.EOL:
		p.nextToken()
		return nil
	case token.FUNCTION:
		if fn := p.parseFunction(); fn != nil {
			p.gotFuncs = true
			return fn
		}
		return nil
	case token.PROCEDURE:
		if proc := p.parseProcedure(); proc != nil {
			p.gotFuncs = true
			return proc
		}
		return nil
	case token.DECLARE:
		return p.parseDeclaration()
	case token.USEFUNCS:
		p.useFuncs = true
		tok := p.curToken
		p.nextToken()
		c, _ := tok.Literal.(token.Comment)
		return &ast.CommentStatement{Token: tok, Comment: c}
	}

	errs := p.errorCount()
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	if lbl, ok := stmt.(*ast.LabelStatement); ok && lbl.Label == beginLabel {
		p.parsedBegin = true
	}
	switch stmt.(type) {
	case *ast.CommentStatement:
		return stmt
	case *ast.VariableDeclarationStatement:
		if p.useFuncs && !p.parsedBegin {
			return stmt
		}
	}
	if p.useFuncs && !p.parsedBegin {
		if p.errorCount() == errs {
			p.addError(diagnostics.NoStatementsOutsideBlock, stmt.GetToken())
		}
		return nil
	}
	if p.gotFuncs && !p.useFuncs {
		if p.errorCount() == errs {
			p.addError(diagnostics.NoStatementsAfterFunctions, stmt.GetToken())
		}
		return nil
	}
	return stmt
}
