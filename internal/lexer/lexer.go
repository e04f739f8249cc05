package lexer

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/funvibe/ppl/internal/config"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/token"
)

// lineState tracks where in a logical line the lexer is. A '*' only opens a comment
// at statement start and ':' only separates statements after something was read.
type lineState int

const (
	stateAfterEOL lineState = iota
	stateBeyondEOL
	stateAfterColon
)

// Options configure a lexer. LanguageVersion gates keywords and brackets.
type Options struct {
	LanguageVersion int
	Runtime         int
	PackageVersion  string
	// Defines are preprocessor symbols, NAME or NAME=expr
	Defines []string
	// Errors is the shared sink; when nil the lexer keeps its own list
	Errors *[]*diagnostics.DiagnosticError
	File   string
}

type ifFrame struct {
	taken  bool // some branch of this $IF was already active
	active bool // the current branch is being compiled
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number

	version  int
	keywords map[string]token.TokenType
	state    lineState
	defines  map[string]token.Constant
	ifStack  []ifFrame
	errors   *[]*diagnostics.DiagnosticError
	file     string

	start     int
	startLine int
	startCol  int
	eofSeen   bool
}

func New(input string, opts Options) *Lexer {
	if opts.LanguageVersion == 0 {
		opts.LanguageVersion = config.DefaultLanguageVersion
	}
	if opts.Runtime == 0 {
		opts.Runtime = opts.LanguageVersion
	}
	l := &Lexer{
		input:    input,
		line:     1,
		version:  opts.LanguageVersion,
		keywords: keywordsFor(opts.LanguageVersion),
		defines:  make(map[string]token.Constant),
		errors:   opts.Errors,
		file:     opts.File,
	}
	if l.errors == nil {
		l.errors = new([]*diagnostics.DiagnosticError)
	}
	l.defines["VERSION"] = token.StringConst(opts.PackageVersion)
	l.defines["LANGVERSION"] = token.IntegerConst(int32(opts.LanguageVersion), token.FormatDefault)
	l.defines["RUNTIME"] = token.IntegerConst(int32(opts.Runtime), token.FormatDefault)
	for _, d := range opts.Defines {
		l.handleDefine(d, token.Token{Line: 1, Column: 1})
	}
	l.readChar()
	return l
}

// Errors returns everything reported so far
func (l *Lexer) Errors() []*diagnostics.DiagnosticError {
	return *l.errors
}

// Define returns the value of a preprocessor symbol
func (l *Lexer) Define(name string) (token.Constant, bool) {
	c, ok := l.defines[strings.ToUpper(name)]
	return c, ok
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	// DOS editors terminate files with ^Z
	if r == 0x1A {
		r = 0
	}
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
	if r == 0 {
		l.input = l.input[:l.position]
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	if r == 0x1A {
		return 0
	}
	return r
}

func (l *Lexer) markStart() {
	l.start = l.position
	l.startLine = l.line
	l.startCol = l.column
}

func (l *Lexer) current() token.Token {
	end := l.position
	if end > len(l.input) {
		end = len(l.input)
	}
	return token.Token{
		Lexeme: l.input[l.start:end],
		Line:   l.startLine,
		Column: l.startCol,
		Span:   token.Span{Start: l.start, End: end},
	}
}

// emit builds a token spanning from markStart to the current char
func (l *Lexer) emit(t token.TokenType, literal interface{}) token.Token {
	tok := l.current()
	tok.Type = t
	tok.Literal = literal
	l.state = stateBeyondEOL
	return tok
}

// advanceEmit consumes n chars and emits
func (l *Lexer) advanceEmit(n int, t token.TokenType) token.Token {
	for i := 0; i < n; i++ {
		l.readChar()
	}
	return l.emit(t, nil)
}

func (l *Lexer) report(code diagnostics.ErrorCode, args ...interface{}) {
	err := diagnostics.NewError(code, l.current(), args...)
	err.File = l.file
	*l.errors = append(*l.errors, err)
}

func (l *Lexer) warn(code diagnostics.ErrorCode, args ...interface{}) {
	err := diagnostics.NewWarning(code, l.current(), args...)
	err.File = l.file
	*l.errors = append(*l.errors, err)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

// NextToken returns the next token; after the end of input it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	if n := len(l.ifStack); n > 0 && !l.ifStack[n-1].active && l.ch != 0 {
		if tok, ok := l.skipInactive(); ok {
			return tok
		}
	}

	l.skipWhitespace()
	l.markStart()

	switch l.ch {
	case 0:
		if !l.eofSeen {
			l.eofSeen = true
			if len(l.ifStack) > 0 {
				l.report(diagnostics.ErrL008)
			}
		}
		tok := l.current()
		tok.Type = token.EOF
		return tok
	case '\'', ';':
		return l.readComment()
	case '"':
		return l.readString()
	case '\\':
		if l.continueLine() {
			return l.NextToken()
		}
		l.readChar()
		l.report(diagnostics.ErrL001, "\\")
		return l.emit(token.ILLEGAL, nil)
	case '_':
		if l.continueLine() {
			return l.NextToken()
		}
		return l.readIdentifier()
	case '\r':
		l.readChar()
		if l.ch == '\n' {
			l.readChar()
		}
		tok := l.emit(token.EOL, nil)
		l.state = stateAfterEOL
		return tok
	case '\n':
		l.readChar()
		tok := l.emit(token.EOL, nil)
		l.state = stateAfterEOL
		return tok
	case ':':
		if l.state == stateBeyondEOL {
			l.readChar()
			tok := l.emit(token.EOL, nil)
			l.state = stateAfterColon
			return tok
		}
		return l.readLabel()
	case '(':
		return l.advanceEmit(1, token.LPAREN)
	case ')':
		return l.advanceEmit(1, token.RPAREN)
	case '[':
		if l.version < config.Version350 {
			return l.advanceEmit(1, token.LPAREN)
		}
		return l.advanceEmit(1, token.LBRACKET)
	case ']':
		if l.version < config.Version350 {
			return l.advanceEmit(1, token.RPAREN)
		}
		return l.advanceEmit(1, token.RBRACKET)
	case '{':
		if l.version < config.Version350 {
			l.readChar()
			l.warn(diagnostics.ErrL005)
			return l.emit(token.LPAREN, nil)
		}
		return l.advanceEmit(1, token.LBRACE)
	case '}':
		if l.version < config.Version350 {
			l.readChar()
			l.warn(diagnostics.ErrL005)
			return l.emit(token.RPAREN, nil)
		}
		return l.advanceEmit(1, token.RBRACE)
	case ',':
		return l.advanceEmit(1, token.COMMA)
	case '^':
		return l.advanceEmit(1, token.POW)
	case '*':
		if l.state != stateBeyondEOL {
			return l.readComment()
		}
		switch l.peekChar() {
		case '*':
			l.readChar()
			l.readChar()
			l.warn(diagnostics.ErrL004)
			return l.emit(token.POW, nil)
		case '=':
			if l.version >= config.Version350 {
				return l.advanceEmit(2, token.MUL_ASSIGN)
			}
		}
		return l.advanceEmit(1, token.MUL)
	case '/':
		return l.withAssign(token.DIV, token.DIV_ASSIGN)
	case '%':
		return l.withAssign(token.MOD, token.MOD_ASSIGN)
	case '+':
		return l.withAssign(token.ADD, token.ADD_ASSIGN)
	case '-':
		return l.withAssign(token.SUB, token.SUB_ASSIGN)
	case '=':
		switch l.peekChar() {
		case '<':
			return l.advanceEmit(2, token.LT_EQ)
		case '>':
			return l.advanceEmit(2, token.GT_EQ)
		case '=':
			return l.advanceEmit(2, token.EQ)
		}
		return l.advanceEmit(1, token.EQ)
	case '&':
		if l.peekChar() == '&' {
			return l.advanceEmit(2, token.AND)
		}
		return l.withAssign(token.AND, token.AND_ASSIGN)
	case '|':
		if l.peekChar() == '|' {
			return l.advanceEmit(2, token.OR)
		}
		return l.withAssign(token.OR, token.OR_ASSIGN)
	case '!':
		if l.peekChar() == '=' {
			return l.advanceEmit(2, token.NOT_EQ)
		}
		return l.advanceEmit(1, token.NOT)
	case '<':
		switch l.peekChar() {
		case '>':
			return l.advanceEmit(2, token.NOT_EQ)
		case '=':
			return l.advanceEmit(2, token.LT_EQ)
		}
		return l.advanceEmit(1, token.LT)
	case '>':
		switch l.peekChar() {
		case '<':
			return l.advanceEmit(2, token.NOT_EQ)
		case '=':
			return l.advanceEmit(2, token.GT_EQ)
		}
		return l.advanceEmit(1, token.GT)
	case '.':
		if l.peekChar() == '.' {
			return l.advanceEmit(2, token.DOTDOT)
		}
		if l.version >= config.Version400 {
			return l.advanceEmit(1, token.DOT)
		}
		l.readChar()
		l.report(diagnostics.ErrL011)
		return l.emit(token.ILLEGAL, nil)
	case '@':
		return l.readColorCode()
	case '$':
		return l.readMoney()
	}

	if isDigit(l.ch) {
		return l.readNumber()
	}
	if isLetter(l.ch) {
		return l.readIdentifier()
	}

	ch := l.ch
	l.readChar()
	l.report(diagnostics.ErrL001, string(ch))
	return l.emit(token.ILLEGAL, nil)
}

func (l *Lexer) withAssign(plain, assign token.TokenType) token.Token {
	if l.version >= config.Version350 && l.peekChar() == '=' {
		return l.advanceEmit(2, assign)
	}
	return l.advanceEmit(1, plain)
}

// continueLine consumes a '_' or '\' directly followed by a line break
func (l *Lexer) continueLine() bool {
	next := l.peekChar()
	if next == '\n' {
		l.readChar()
		l.readChar()
		return true
	}
	if next == '\r' && l.readPosition+1 < len(l.input) && l.input[l.readPosition+1] == '\n' {
		l.readChar()
		l.readChar()
		l.readChar()
		return true
	}
	return false
}

func (l *Lexer) readString() token.Token {
	var sb strings.Builder
	l.readChar() // opening quote
	for {
		switch l.ch {
		case 0:
			l.report(diagnostics.ErrL002)
			return l.emit(token.ILLEGAL, nil)
		case '"':
			l.readChar()
			if l.ch == '"' {
				sb.WriteRune('"')
				l.readChar()
				continue
			}
			return l.emit(token.CONST, token.StringConst(sb.String()))
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) readLabel() token.Token {
	l.readChar() // ':'
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	nameStart := l.position
	for isIdentChar(l.ch) {
		l.readChar()
	}
	name := l.input[nameStart:l.position]
	if name == "" {
		tok := l.emit(token.EOL, nil)
		l.state = stateAfterColon
		return tok
	}
	return l.emit(token.LABEL, name)
}

func (l *Lexer) readIdentifier() token.Token {
	for isIdentChar(l.ch) {
		l.readChar()
	}
	name := l.input[l.start:l.position]
	// name( name[ name{ always refer to a variable, array or call
	if l.ch != '(' && l.ch != '[' && l.ch != '{' {
		upper := strings.ToUpper(name)
		if t, ok := l.keywords[upper]; ok {
			return l.emit(t, name)
		}
		if b := token.LookupBuiltin(upper); b != nil {
			return l.emit(token.CONST, token.BuiltinConstant(b))
		}
	}
	return l.emit(token.IDENT, name)
}

func (l *Lexer) readColorCode() token.Token {
	l.readChar() // '@'
	if l.ch != 'X' && l.ch != 'x' {
		l.report(diagnostics.ErrL001, "@")
		return l.emit(token.ILLEGAL, nil)
	}
	l.readChar()
	hi, lo := l.ch, l.peekChar()
	if !isHexDigit(hi) || !isHexDigit(lo) {
		l.report(diagnostics.ErrL001, l.input[l.start:l.position])
		return l.emit(token.ILLEGAL, nil)
	}
	l.readChar()
	l.readChar()
	v, _ := strconv.ParseInt(string([]rune{hi, lo}), 16, 32)
	return l.emit(token.CONST, token.IntegerConst(int32(v), token.FormatColorCode))
}

func (l *Lexer) readMoney() token.Token {
	l.readChar() // '$'
	numStart := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	f, err := strconv.ParseFloat(l.input[numStart:l.position], 64)
	if err != nil {
		l.report(diagnostics.ErrL003, l.input[l.start:l.position])
		return l.emit(token.ILLEGAL, nil)
	}
	return l.emit(token.CONST, token.MoneyConst(int32(math.Round(f*100))))
}

// readNumber handles decimal, d/h/o/b suffixed integers and doubles.
// Hex digits are accepted while scanning so 0FFh works; a trailing b or d is a
// suffix only when no further hex digit or h follows.
func (l *Lexer) readNumber() token.Token {
	for isHexDigit(l.ch) {
		next := l.peekChar()
		switch l.ch {
		case 'd', 'D':
			if !isHexDigit(next) && next != 'h' && next != 'H' {
				digits := l.input[l.start:l.position]
				l.readChar()
				return l.integerToken(digits, 10, token.FormatDecimal)
			}
		case 'b', 'B':
			if !isHexDigit(next) && next != 'h' && next != 'H' {
				digits := l.input[l.start:l.position]
				l.readChar()
				return l.integerToken(digits, 2, token.FormatBinary)
			}
		}
		l.readChar()
	}
	digits := l.input[l.start:l.position]

	switch l.ch {
	case 'h', 'H':
		l.readChar()
		return l.integerToken(digits, 16, token.FormatHex)
	case 'o', 'O':
		l.readChar()
		return l.integerToken(digits, 8, token.FormatOctal)
	case '.':
		if l.peekChar() == '.' {
			break
		}
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		text := l.input[l.start:l.position]
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.warn(diagnostics.ErrL003, text)
			return l.emit(token.CONST, token.DoubleConst(-1))
		}
		return l.emit(token.CONST, token.DoubleConst(f))
	}

	i, err := strconv.ParseInt(digits, 10, 64)
	if err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return l.emit(token.CONST, token.IntegerConst(int32(i), token.FormatDefault))
		}
		return l.emit(token.CONST, token.UnsignedConst(uint64(i)))
	}
	if u, uerr := strconv.ParseUint(digits, 10, 64); uerr == nil {
		return l.emit(token.CONST, token.UnsignedConst(u))
	}
	l.warn(diagnostics.ErrL003, digits)
	return l.emit(token.CONST, token.IntegerConst(-1, token.FormatDefault))
}

func (l *Lexer) integerToken(digits string, base int, format token.NumberFormat) token.Token {
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil || v > math.MaxUint32 {
		l.warn(diagnostics.ErrL003, l.input[l.start:l.position])
		return l.emit(token.CONST, token.IntegerConst(-1, token.FormatDefault))
	}
	return l.emit(token.CONST, token.IntegerConst(int32(uint32(v)), format))
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch rune) bool {
	if isLetter(ch) || isDigit(ch) {
		return true
	}
	switch ch {
	case '@', '#', '$', '¢', '£', '¥', '€':
		return true
	}
	return false
}
