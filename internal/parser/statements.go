package parser

import (
	"strconv"
	"strings"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

// parseStatement parses one statement. It returns nil for blank lines and
// after reporting an error.
func (p *Parser) parseStatement() ast.Statement {
	tok := p.curToken
	switch tok.Type {
	case token.EOL:
		p.nextToken()
		return nil
	case token.EOF:
		return nil
	case token.COMMENT:
		p.nextToken()
		c, _ := tok.Literal.(token.Comment)
		return &ast.CommentStatement{Token: tok, Comment: c}
	case token.USEFUNCS:
		// only meaningful before the first statement
		p.nextToken()
		return nil
	case token.WHILE:
		return p.parseWhile()
	case token.REPEAT:
		return p.parseRepeatUntil()
	case token.LOOP:
		return p.parseLoop()
	case token.SELECT:
		return p.parseSelect()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.LET:
		return p.parseLet()
	case token.BREAK:
		p.nextToken()
		return &ast.BreakStatement{Token: tok}
	case token.CONTINUE:
		p.nextToken()
		return &ast.ContinueStatement{Token: tok}
	case token.ENDPROC, token.ENDFUNC:
		p.nextToken()
		return &ast.ReturnStatement{Token: tok}
	case token.RETURN:
		return p.parseReturn()
	case token.GOTO:
		if label, ok := p.parseLabelReference(); ok {
			return &ast.GotoStatement{Token: tok, Label: label}
		}
		return nil
	case token.GOSUB:
		if label, ok := p.parseLabelReference(); ok {
			return &ast.GosubStatement{Token: tok, Label: label}
		}
		return nil
	case token.LABEL:
		p.nextToken()
		return &ast.LabelStatement{Token: tok, Label: tok.Name()}
	case token.CONST:
		if c, ok := tok.Literal.(token.Constant); ok && c.Kind == token.ConstBuiltin {
			return p.parseCallStatement()
		}
	case token.IDENT:
		if t, ok := p.variableType(); ok {
			return p.parseVariableDeclaration(t)
		}
		return p.parseCallStatement()
	case token.ENDIF, token.ENDWHILE, token.NEXT, token.ENDSELECT, token.ENDLOOP, token.UNTIL:
		p.addError(diagnostics.BlockEndBeforeBlockStart, tok, tokenText(tok))
		p.nextToken()
		return nil
	}
	p.addError(diagnostics.InvalidToken, tok, tokenText(tok))
	p.nextToken()
	return nil
}

// parseBlock collects statements until one of the end tokens. ok is false
// when the input ends first.
func (p *Parser) parseBlock(ends ...token.TokenType) ([]ast.Statement, bool) {
	stmts := []ast.Statement{}
	p.skipEOL()
	for {
		for _, end := range ends {
			if p.curTokenIs(end) {
				return stmts, true
			}
		}
		if p.curTokenIs(token.EOF) {
			p.addError(diagnostics.EndExpected, p.curToken, string(ends[0]))
			return stmts, false
		}
		errs := p.errorCount()
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		} else if p.errorCount() > errs {
			p.synchronize()
		}
		p.skipEOL()
	}
}

// parseCondition reads the condition of IF, ELSEIF and WHILE. Below 350 it
// must be parenthesized.
func (p *Parser) parseCondition(version int) ast.Expression {
	if p.version < version && !p.curTokenIs(token.LPAREN) {
		p.addError(diagnostics.IfWhileConditionNotFound, p.curToken)
		return nil
	}
	errs := p.errorCount()
	cond := p.parseExpression()
	if cond == nil && p.errorCount() == errs {
		p.addError(diagnostics.IfWhileConditionNotFound, p.curToken)
	}
	return cond
}

func (p *Parser) isThenOrDo() bool {
	return p.curIdentIs("THEN") || p.curIdentIs("DO")
}

// parseSingleLineBody parses the statement of IF (c) stmt and WHILE (c) stmt
func (p *Parser) parseSingleLineBody() ast.Statement {
	p.skipEOL()
	errs := p.errorCount()
	tok := p.curToken
	stmt := p.parseStatement()
	if stmt == nil && p.errorCount() == errs {
		p.addError(diagnostics.StatementExpected, tok, tokenText(tok))
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseCondition(350)
	if cond == nil {
		return nil
	}
	if !p.isThenOrDo() {
		body := p.parseSingleLineBody()
		if body == nil {
			return nil
		}
		return &ast.WhileStatement{Token: tok, Condition: cond, Statement: body}
	}
	p.nextToken()
	stmts, ok := p.parseBlock(token.ENDWHILE)
	if !ok {
		return nil
	}
	p.nextToken()
	return &ast.WhileDoStatement{Token: tok, Condition: cond, Statements: stmts}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseCondition(350)
	if cond == nil {
		return nil
	}
	if !p.isThenOrDo() {
		body := p.parseSingleLineBody()
		if body == nil {
			return nil
		}
		return &ast.IfStatement{Token: tok, Condition: cond, Statement: body}
	}
	p.nextToken()

	stmt := &ast.IfThenStatement{Token: tok, Condition: cond}
	var ok bool
	if stmt.Statements, ok = p.parseBlock(token.ENDIF, token.ELSE, token.ELSEIF); !ok {
		return nil
	}

	for p.curTokenIs(token.ELSEIF) {
		block := &ast.ElseIfBlock{Token: p.curToken}
		p.nextToken()
		if block.Condition = p.parseCondition(350); block.Condition == nil {
			return nil
		}
		if p.isThenOrDo() {
			p.nextToken()
		} else if !p.atLineEnd() {
			p.addError(diagnostics.ThenExpected, p.curToken, tokenText(p.curToken))
			return nil
		}
		if block.Statements, ok = p.parseBlock(token.ENDIF, token.ELSE, token.ELSEIF); !ok {
			return nil
		}
		stmt.ElseIfs = append(stmt.ElseIfs, block)
	}

	if p.curTokenIs(token.ELSE) {
		stmt.Else = &ast.ElseBlock{Token: p.curToken}
		p.nextToken()
		if stmt.Else.Statements, ok = p.parseBlock(token.ENDIF); !ok {
			return nil
		}
	}

	if !p.curTokenIs(token.ENDIF) {
		p.addError(diagnostics.InvalidToken, p.curToken, tokenText(p.curToken))
		return nil
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseRepeatUntil() ast.Statement {
	tok := p.curToken
	p.nextToken()
	stmts, ok := p.parseBlock(token.UNTIL)
	if !ok {
		return nil
	}
	p.nextToken()
	cond := p.expectExpression()
	if cond == nil {
		return nil
	}
	return &ast.RepeatUntilStatement{Token: tok, Statements: stmts, Condition: cond}
}

func (p *Parser) parseLoop() ast.Statement {
	tok := p.curToken
	p.nextToken()
	stmts, ok := p.parseBlock(token.ENDLOOP)
	if !ok {
		return nil
	}
	p.nextToken()
	return &ast.LoopStatement{Token: tok, Statements: stmts}
}

func (p *Parser) parseFor() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}
	p.nextToken()

	if !p.curTokenIs(token.IDENT) {
		p.addError(diagnostics.IdentifierExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	stmt.Variable = p.identifier()
	p.nextToken()

	if !p.curTokenIs(token.EQ) {
		p.addError(diagnostics.EqTokenExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	p.nextToken()
	if stmt.Start = p.expectExpression(); stmt.Start == nil {
		return nil
	}

	if !p.curIdentIs("TO") {
		p.addError(diagnostics.ToExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	p.nextToken()
	if stmt.End = p.expectExpression(); stmt.End == nil {
		return nil
	}

	if p.curIdentIs("STEP") {
		p.nextToken()
		if stmt.Step = p.expectExpression(); stmt.Step == nil {
			return nil
		}
	}

	var ok bool
	if stmt.Statements, ok = p.parseBlock(token.NEXT); !ok {
		return nil
	}
	p.nextToken()

	if p.curTokenIs(token.IDENT) {
		if !strings.EqualFold(p.curToken.Name(), stmt.Variable.Value) {
			p.addWarning(diagnostics.NextIdentifierMismatch, p.curToken, p.curToken.Name(), stmt.Variable.Value)
		}
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseSelect() ast.Statement {
	stmt := &ast.SelectStatement{Token: p.curToken}
	p.nextToken()

	if !p.curTokenIs(token.CASE) {
		p.addError(diagnostics.CaseExpectedAfterSelect, p.curToken)
		return nil
	}
	p.nextToken()
	if stmt.Expr = p.expectExpression(); stmt.Expr == nil {
		return nil
	}
	p.skipEOLAndComments()

	for p.curTokenIs(token.CASE) {
		block := &ast.CaseBlock{Token: p.curToken}
		p.nextToken()
		for {
			spec, ok := p.parseCaseSpecifier()
			if !ok {
				return nil
			}
			block.Specifiers = append(block.Specifiers, spec)
			if !p.curTokenIs(token.COMMA) {
				break
			}
			p.nextToken()
		}
		var ok bool
		if block.Statements, ok = p.parseBlock(token.CASE, token.DEFAULT, token.ENDSELECT); !ok {
			return nil
		}
		stmt.Cases = append(stmt.Cases, block)
	}

	if p.curTokenIs(token.DEFAULT) {
		stmt.Default = &ast.DefaultBlock{Token: p.curToken}
		p.nextToken()
		var ok bool
		if stmt.Default.Statements, ok = p.parseBlock(token.ENDSELECT); !ok {
			return nil
		}
	}

	if !p.curTokenIs(token.ENDSELECT) {
		p.addError(diagnostics.InvalidToken, p.curToken, tokenText(p.curToken))
		return nil
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseCaseSpecifier() (ast.CaseSpecifier, bool) {
	from := p.expectExpression()
	if from == nil {
		return ast.CaseSpecifier{}, false
	}
	if !p.curTokenIs(token.DOTDOT) {
		return ast.CaseSpecifier{From: from}, true
	}
	p.nextToken()
	to := p.expectExpression()
	if to == nil {
		return ast.CaseSpecifier{}, false
	}
	return ast.CaseSpecifier{From: from, To: to}, true
}

func (p *Parser) parseLet() ast.Statement {
	letTok := p.curToken
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		p.addError(diagnostics.IdentifierExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	let := &ast.LetStatement{Token: letTok, HasLet: true, Target: p.identifier()}
	p.nextToken()

	if p.curTokenIs(token.LPAREN) || p.curTokenIs(token.LBRACKET) {
		let.Bracketed = p.curTokenIs(token.LBRACKET)
		closing := token.RPAREN
		if let.Bracketed {
			closing = token.RBRACKET
		}
		indices, ok := p.parseArguments(closing)
		if !ok {
			return nil
		}
		let.Indices = indices
	}
	return p.finishLet(let)
}

// finishLet parses the assignment operator and value of a LET
func (p *Parser) finishLet(let *ast.LetStatement) ast.Statement {
	if !p.curToken.IsAssign() {
		p.addError(diagnostics.EqTokenExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	if n := len(let.Indices); n > 3 {
		p.addError(diagnostics.TooManyDimensions, let.Target.Token, n)
		return nil
	}
	let.AssignOp = p.curToken.Type
	p.nextToken()
	if let.Value = p.expectExpression(); let.Value == nil {
		return nil
	}
	return let
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.curToken
	p.nextToken()
	if p.atLineEnd() {
		return &ast.ReturnStatement{Token: tok}
	}
	exprTok := p.curToken
	value := p.expectExpression()
	if value == nil {
		return nil
	}
	if !p.inFunction {
		p.addError(diagnostics.ReturnExpressionOutsideFunc, exprTok)
		return nil
	}
	return &ast.ReturnStatement{Token: tok, Value: value}
}

// parseLabelReference reads the label after GOTO or GOSUB
func (p *Parser) parseLabelReference() (string, bool) {
	p.nextToken()
	if !p.curToken.CanBeIdentifier() {
		p.addError(diagnostics.LabelExpected, p.curToken, tokenText(p.curToken))
		return "", false
	}
	name := p.curToken.Name()
	p.nextToken()
	return name, true
}

func (p *Parser) parseVariableDeclaration(t executable.VariableType) ast.Statement {
	decl := &ast.VariableDeclarationStatement{Token: p.curToken, Type: t, TypeName: strings.ToUpper(p.curToken.Name())}
	p.nextToken()
	for {
		spec := p.parseVarInfo()
		if spec == nil {
			return nil
		}
		decl.Variables = append(decl.Variables, spec)
		if !p.curTokenIs(token.COMMA) {
			return decl
		}
		p.nextToken()
	}
}

// parseVarInfo reads NAME[(d1, d2, d3)] or, from 350 on, NAME = initializer
func (p *Parser) parseVarInfo() *ast.VariableSpecifier {
	if !p.curTokenIs(token.IDENT) {
		p.addError(diagnostics.IdentifierExpected, p.curToken, tokenText(p.curToken))
		return nil
	}
	spec := &ast.VariableSpecifier{Name: p.identifier()}
	p.nextToken()

	if p.curTokenIs(token.LPAREN) || p.curTokenIs(token.LBRACKET) {
		spec.Bracketed = p.curTokenIs(token.LBRACKET)
		closing := token.RPAREN
		if spec.Bracketed {
			closing = token.RBRACKET
		}
		p.nextToken()
		for {
			c, ok := p.curToken.Literal.(token.Constant)
			if !p.curTokenIs(token.CONST) || !ok || c.Kind != token.ConstInteger {
				p.addError(diagnostics.NumberExpected, p.curToken, tokenText(p.curToken))
				return nil
			}
			spec.Dimensions = append(spec.Dimensions, int(c.Int))
			p.nextToken()
			if !p.curTokenIs(token.COMMA) {
				break
			}
			p.nextToken()
		}
		if len(spec.Dimensions) > 3 {
			p.addError(diagnostics.TooManyDimensions, spec.Name.Token, len(spec.Dimensions))
			return nil
		}
		if !p.curTokenIs(closing) {
			code := diagnostics.MissingCloseParens
			if spec.Bracketed {
				code = diagnostics.MissingCloseBracket
			}
			p.addError(code, p.curToken, tokenText(p.curToken))
			return nil
		}
		p.nextToken()
		return spec
	}

	if p.version >= 350 && p.curTokenIs(token.EQ) {
		p.nextToken()
		if spec.Initializer = p.expectExpression(); spec.Initializer == nil {
			return nil
		}
	}
	return spec
}

// parseCallStatement handles statements starting with a name: assignments
// without LET, pseudo keywords, predefined statements, procedure calls and
// (from 400 on) member calls.
func (p *Parser) parseCallStatement() ast.Statement {
	tok := p.curToken
	name := tok.Name()
	p.nextToken()

	if p.curToken.IsAssign() {
		return p.finishLet(&ast.LetStatement{Token: tok, Target: p.identifierFrom(tok)})
	}

	if !p.curTokenIs(token.LPAREN) {
		upper := strings.ToUpper(name)
		if p.version < 350 {
			switch upper {
			case "QUIT":
				return &ast.BreakStatement{Token: tok}
			case "LOOP":
				return &ast.ContinueStatement{Token: tok}
			}
		}
		if upper == "BEGIN" {
			label := tok
			label.Type = token.LABEL
			label.Literal = beginLabel
			return &ast.LabelStatement{Token: label, Label: beginLabel}
		}
	}

	if def := executable.LookupStatement(name); def != nil {
		return p.parsePredefinedCall(tok, def)
	}

	if p.curTokenIs(token.DOT) && p.version >= 400 {
		return p.parseMemberCallStatement(tok)
	}

	if p.curTokenIs(token.LPAREN) || p.curTokenIs(token.LBRACKET) {
		bracketed := p.curTokenIs(token.LBRACKET)
		closing := token.RPAREN
		if bracketed {
			closing = token.RBRACKET
		}
		args, ok := p.parseArguments(closing)
		if !ok {
			return nil
		}
		if p.curToken.IsAssign() {
			if len(args) == 0 {
				p.addError(diagnostics.ExpressionExpected, p.curToken, tokenText(p.curToken))
				return nil
			}
			return p.finishLet(&ast.LetStatement{Token: tok, Target: p.identifierFrom(tok), Indices: args, Bracketed: bracketed})
		}
		return &ast.ProcedureCallStatement{Token: tok, Name: p.identifierFrom(tok), Args: args}
	}

	p.addError(diagnostics.UnknownIdentifier, tok, tokenText(tok))
	return nil
}

func (p *Parser) identifierFrom(tok token.Token) *ast.Identifier {
	return &ast.Identifier{Token: tok, Value: tok.Name()}
}

// userVariableOpcodes need the U_* block in the variable table
var userVariableOpcodes = map[executable.OpCode]bool{
	executable.OP_GETUSER:    true,
	executable.OP_PUTUSER:    true,
	executable.OP_GETALTUSER: true,
	executable.OP_FREALTUSER: true,
	executable.OP_DELUSER:    true,
	executable.OP_ADDUSER:    true,
}

func (p *Parser) parsePredefinedCall(tok token.Token, def *executable.StatementDef) ast.Statement {
	args := []ast.Expression{}
	for !p.atLineEnd() {
		arg := p.expectExpression()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.atLineEnd() {
		p.addError(diagnostics.CommaExpected, p.curToken, tokenText(p.curToken))
		return nil
	}

	if userVariableOpcodes[def.Opcode] {
		p.userVariables = true
	}
	if def.Version > p.version {
		p.addError(diagnostics.StatementVersionNotSupported, tok, strings.ToUpper(def.Name), def.Version, p.version)
		return nil
	}
	if min, max := def.ArgumentRange(); len(args) < min || len(args) > max {
		p.addError(diagnostics.WrongArgumentCount, tok, strings.ToUpper(def.Name), rangeText(min, max), len(args))
		return nil
	}
	return &ast.PredefinedCallStatement{Token: tok, Name: tok.Name(), Def: def, Args: args}
}

// parseMemberCallStatement turns obj.method(args) into an EVAL of the call
func (p *Parser) parseMemberCallStatement(tok token.Token) ast.Statement {
	var expr ast.Expression = p.identifierFrom(tok)
	for p.curTokenIs(token.DOT) {
		dot := p.curToken
		p.nextToken()
		name, ok := memberName(p.curToken)
		if !ok {
			p.addError(diagnostics.IdentifierExpected, p.curToken, tokenText(p.curToken))
			return nil
		}
		member := &ast.Identifier{Token: p.curToken, Value: name}
		expr = &ast.MemberReferenceExpression{Token: dot, Expr: expr, Member: member}
		p.nextToken()
	}
	if !p.curTokenIs(token.LPAREN) {
		p.addError(diagnostics.MissingOpenParens, p.curToken, tokenText(p.curToken))
		return nil
	}
	lparen := p.curToken
	args, ok := p.parseArguments(token.RPAREN)
	if !ok {
		return nil
	}
	call := &ast.FunctionCallExpression{Token: lparen, Callee: expr, Args: args}
	return &ast.PredefinedCallStatement{
		Token: tok,
		Name:  "EVAL",
		Def:   executable.LookupStatement("EVAL"),
		Args:  []ast.Expression{call},
	}
}

func rangeText(min, max int) string {
	switch {
	case min == max:
		return strconv.Itoa(min)
	case max >= 1<<15:
		return strconv.Itoa(min) + " or more"
	}
	return strconv.Itoa(min) + " to " + strconv.Itoa(max)
}
