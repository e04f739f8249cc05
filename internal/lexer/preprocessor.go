package lexer

import (
	"fmt"
	"math"
	"strings"

	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/token"
)

// handleDefine processes the argument of $DEFINE: either a bare NAME (defined as TRUE)
// or NAME = expression, where the expression must fold to a boolean or an integer.
func (l *Lexer) handleDefine(src string, tok token.Token) {
	src = strings.TrimSpace(src)
	if src == "" {
		return
	}
	i := 0
	for i < len(src) && (isLetter(rune(src[i])) || isDigit(rune(src[i]))) {
		i++
	}
	name := strings.ToUpper(src[:i])
	rest := strings.TrimSpace(src[i:])

	var value token.Constant
	switch {
	case name == "":
		l.reportAt(diagnostics.ErrL010, tok, src)
		return
	case rest == "":
		value = token.BoolConst(true)
	case rest[0] == '=':
		v, err := l.evaluate(rest[1:])
		if err != nil {
			l.reportAt(diagnostics.ErrL010, tok, err.Error())
			return
		}
		if v.Kind != token.ConstBoolean && v.Kind != token.ConstInteger {
			l.reportAt(diagnostics.ErrL010, tok, src)
			return
		}
		value = v
	default:
		l.reportAt(diagnostics.ErrL010, tok, src)
		return
	}

	if _, exists := l.defines[name]; exists {
		l.warnAt(diagnostics.ErrL009, tok, name)
	}
	l.defines[name] = value
}

// evalCondition folds a $IF/$ELSEIF expression. Errors count as false.
func (l *Lexer) evalCondition(src string, tok token.Token) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	v, err := l.evaluate(src)
	if err != nil {
		l.reportAt(diagnostics.ErrL010, tok, err.Error())
		return false
	}
	return truthy(v)
}

func (l *Lexer) evaluate(src string) (token.Constant, error) {
	var scratch []*diagnostics.DiagnosticError
	sub := New(src, Options{LanguageVersion: l.version, Errors: &scratch})
	sub.state = stateBeyondEOL
	e := &ppEval{lex: sub, defines: l.defines}
	e.advance()
	v, err := e.or()
	if err != nil {
		return v, err
	}
	if e.cur.Type != token.EOF && e.cur.Type != token.EOL && e.cur.Type != token.COMMENT {
		return v, fmt.Errorf("unexpected '%s'", e.cur.Lexeme)
	}
	if len(scratch) > 0 {
		return v, fmt.Errorf("%s", scratch[0].Message())
	}
	return v, nil
}

// ppEval folds constant expressions over the define table. Unknown names are FALSE.
type ppEval struct {
	lex     *Lexer
	cur     token.Token
	defines map[string]token.Constant
}

func (e *ppEval) advance() {
	e.cur = e.lex.NextToken()
}

func (e *ppEval) or() (token.Constant, error) {
	left, err := e.and()
	for err == nil && e.cur.Type == token.OR {
		e.advance()
		var right token.Constant
		right, err = e.and()
		left = token.BoolConst(truthy(left) || truthy(right))
	}
	return left, err
}

func (e *ppEval) and() (token.Constant, error) {
	left, err := e.comparison()
	for err == nil && e.cur.Type == token.AND {
		e.advance()
		var right token.Constant
		right, err = e.comparison()
		left = token.BoolConst(truthy(left) && truthy(right))
	}
	return left, err
}

func (e *ppEval) comparison() (token.Constant, error) {
	left, err := e.term()
	for err == nil {
		op := e.cur.Type
		switch op {
		case token.EQ, token.NOT_EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		default:
			return left, nil
		}
		e.advance()
		var right token.Constant
		if right, err = e.term(); err != nil {
			break
		}
		left = token.BoolConst(compareConst(op, left, right))
	}
	return left, err
}

func (e *ppEval) term() (token.Constant, error) {
	left, err := e.factor()
	for err == nil && (e.cur.Type == token.ADD || e.cur.Type == token.SUB) {
		op := e.cur.Type
		e.advance()
		var right token.Constant
		if right, err = e.factor(); err != nil {
			break
		}
		if op == token.ADD && (left.Kind == token.ConstString || right.Kind == token.ConstString) {
			left = token.StringConst(constText(left) + constText(right))
			continue
		}
		left = arith(op, left, right)
	}
	return left, err
}

func (e *ppEval) factor() (token.Constant, error) {
	left, err := e.power()
	for err == nil && (e.cur.Type == token.MUL || e.cur.Type == token.DIV || e.cur.Type == token.MOD) {
		op := e.cur.Type
		e.advance()
		var right token.Constant
		if right, err = e.power(); err != nil {
			break
		}
		if (op == token.DIV || op == token.MOD) && constInt(right) == 0 && right.Kind != token.ConstDouble {
			return left, fmt.Errorf("division by zero")
		}
		left = arith(op, left, right)
	}
	return left, err
}

func (e *ppEval) power() (token.Constant, error) {
	left, err := e.unary()
	for err == nil && e.cur.Type == token.POW {
		e.advance()
		var right token.Constant
		if right, err = e.unary(); err != nil {
			break
		}
		left = arith(token.POW, left, right)
	}
	return left, err
}

func (e *ppEval) unary() (token.Constant, error) {
	switch e.cur.Type {
	case token.NOT:
		e.advance()
		v, err := e.unary()
		return token.BoolConst(!truthy(v)), err
	case token.SUB:
		e.advance()
		v, err := e.unary()
		if v.Kind == token.ConstDouble {
			return token.DoubleConst(-v.Double), err
		}
		return token.IntegerConst(-constInt(v), token.FormatDefault), err
	case token.ADD:
		e.advance()
		return e.unary()
	}
	return e.primary()
}

func (e *ppEval) primary() (token.Constant, error) {
	tok := e.cur
	switch tok.Type {
	case token.CONST:
		e.advance()
		c := tok.Literal.(token.Constant)
		if c.Kind == token.ConstBuiltin {
			if v, ok := e.defines[c.Builtin.Name]; ok {
				return v, nil
			}
			if c.Builtin.Name == "TRUE" || c.Builtin.Name == "FALSE" {
				return token.BoolConst(c.Builtin.Name == "TRUE"), nil
			}
			return token.IntegerConst(c.Builtin.Value, token.FormatDefault), nil
		}
		return c, nil
	case token.IDENT:
		e.advance()
		if v, ok := e.defines[strings.ToUpper(tok.Name())]; ok {
			return v, nil
		}
		return token.BoolConst(false), nil
	case token.LPAREN:
		e.advance()
		v, err := e.or()
		if err != nil {
			return v, err
		}
		if e.cur.Type != token.RPAREN {
			return v, fmt.Errorf("')' expected")
		}
		e.advance()
		return v, nil
	}
	if tok.Type == token.EOF || tok.Type == token.EOL {
		return token.Constant{}, fmt.Errorf("expression expected")
	}
	return token.Constant{}, fmt.Errorf("unexpected '%s'", tok.Lexeme)
}

func truthy(c token.Constant) bool {
	switch c.Kind {
	case token.ConstBoolean:
		return c.Bool
	case token.ConstString:
		return c.Str != ""
	case token.ConstDouble:
		return c.Double != 0
	case token.ConstUnsigned:
		return c.Unsigned != 0
	}
	return constInt(c) != 0
}

func constInt(c token.Constant) int32 {
	switch c.Kind {
	case token.ConstBoolean:
		if c.Bool {
			return 1
		}
		return 0
	case token.ConstUnsigned:
		return int32(c.Unsigned)
	case token.ConstDouble:
		return int32(c.Double)
	case token.ConstBuiltin:
		return c.Builtin.Value
	}
	return c.Int
}

func constText(c token.Constant) string {
	if c.Kind == token.ConstString {
		return c.Str
	}
	return c.String()
}

func arith(op token.TokenType, a, b token.Constant) token.Constant {
	if a.Kind == token.ConstDouble || b.Kind == token.ConstDouble {
		x, y := constFloat(a), constFloat(b)
		switch op {
		case token.ADD:
			return token.DoubleConst(x + y)
		case token.SUB:
			return token.DoubleConst(x - y)
		case token.MUL:
			return token.DoubleConst(x * y)
		case token.DIV:
			return token.DoubleConst(x / y)
		case token.MOD:
			return token.DoubleConst(math.Mod(x, y))
		}
		return token.DoubleConst(math.Pow(x, y))
	}
	x, y := constInt(a), constInt(b)
	var r int32
	switch op {
	case token.ADD:
		r = x + y
	case token.SUB:
		r = x - y
	case token.MUL:
		r = x * y
	case token.DIV:
		r = x / y
	case token.MOD:
		r = x % y
	case token.POW:
		r = int32(math.Pow(float64(x), float64(y)))
	}
	return token.IntegerConst(r, token.FormatDefault)
}

func constFloat(c token.Constant) float64 {
	if c.Kind == token.ConstDouble {
		return c.Double
	}
	return float64(constInt(c))
}

func compareConst(op token.TokenType, a, b token.Constant) bool {
	var cmp int
	switch {
	case a.Kind == token.ConstString || b.Kind == token.ConstString:
		cmp = strings.Compare(strings.ToUpper(constText(a)), strings.ToUpper(constText(b)))
	case a.Kind == token.ConstDouble || b.Kind == token.ConstDouble:
		x, y := constFloat(a), constFloat(b)
		if x < y {
			cmp = -1
		} else if x > y {
			cmp = 1
		}
	default:
		x, y := constInt(a), constInt(b)
		if x < y {
			cmp = -1
		} else if x > y {
			cmp = 1
		}
	}
	switch op {
	case token.EQ:
		return cmp == 0
	case token.NOT_EQ:
		return cmp != 0
	case token.LT:
		return cmp < 0
	case token.LT_EQ:
		return cmp <= 0
	case token.GT:
		return cmp > 0
	}
	return cmp >= 0
}
