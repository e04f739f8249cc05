package lexer

import (
	"strings"

	"github.com/tliron/commonlog"

	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/token"
)

var log = commonlog.GetLogger("ppl.lexer")

func commentKind(ch rune) token.CommentType {
	switch ch {
	case ';':
		return token.CommentSemicolon
	case '*':
		return token.CommentStar
	}
	return token.CommentQuote
}

// readComment lexes a comment up to (not including) the line break.
// Comments whose text starts with '$' are preprocessor directives, '#NAME' expands a define.
func (l *Lexer) readComment() token.Token {
	kind := commentKind(l.ch)
	l.readChar()

	if l.ch == '#' {
		if tok, ok := l.readDefineRef(); ok {
			return tok
		}
	}

	textStart := l.position
	for l.ch != 0 && l.ch != '\n' && l.ch != '\r' {
		l.readChar()
	}
	text := l.input[textStart:l.position]
	tok := l.emit(token.COMMENT, token.Comment{Kind: kind, Text: text})
	l.state = stateAfterEOL

	directive := strings.ToUpper(strings.TrimSpace(text))
	if !strings.HasPrefix(directive, "$") {
		return tok
	}
	if strings.HasPrefix(directive, "$USEFUNCS") {
		tok.Type = token.USEFUNCS
		return tok
	}
	l.directive(directive, strings.TrimSpace(text), tok)
	return tok
}

// readDefineRef expands '#NAME'. Unknown names leave the comment untouched.
func (l *Lexer) readDefineRef() (token.Token, bool) {
	save := *l
	l.readChar() // '#'
	nameStart := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	value, ok := l.defines[strings.ToUpper(l.input[nameStart:l.position])]
	if !ok {
		*l = save
		return token.Token{}, false
	}
	for l.ch != 0 && l.ch != '\n' && l.ch != '\r' {
		l.readChar()
	}
	return l.emit(token.CONST, value), true
}

func (l *Lexer) directive(upper, raw string, tok token.Token) {
	arg := func(name string) string {
		return strings.TrimSpace(raw[len(name):])
	}

	switch {
	case strings.HasPrefix(upper, "$INCLUDE:"):
		log.Debugf("%d:%d: ignoring %s", tok.Line, tok.Column, strings.TrimSpace(raw))
	case upper == "$IF" || strings.HasPrefix(upper, "$IF "):
		cond := l.evalCondition(arg("$IF"), tok)
		l.ifStack = append(l.ifStack, ifFrame{taken: cond, active: cond})
	case strings.HasPrefix(upper, "$ELSEIF"):
		if len(l.ifStack) == 0 {
			l.reportAt(diagnostics.ErrL007, tok)
			return
		}
		top := &l.ifStack[len(l.ifStack)-1]
		if top.taken {
			top.active = false
			return
		}
		cond := l.evalCondition(arg("$ELSEIF"), tok)
		top.active = cond
		top.taken = cond
	case strings.HasPrefix(upper, "$ELSE"):
		if len(l.ifStack) == 0 {
			l.reportAt(diagnostics.ErrL006, tok)
			return
		}
		top := &l.ifStack[len(l.ifStack)-1]
		top.active = !top.taken
		top.taken = true
	case strings.HasPrefix(upper, "$ENDIF"):
		if len(l.ifStack) == 0 {
			l.reportAt(diagnostics.ErrL013, tok)
			return
		}
		l.ifStack = l.ifStack[:len(l.ifStack)-1]
	case strings.HasPrefix(upper, "$DEFINE"):
		l.handleDefine(arg("$DEFINE"), tok)
	}
}

func (l *Lexer) reportAt(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) {
	err := diagnostics.NewError(code, tok, args...)
	err.File = l.file
	*l.errors = append(*l.errors, err)
}

func (l *Lexer) warnAt(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) {
	err := diagnostics.NewWarning(code, tok, args...)
	err.File = l.file
	*l.errors = append(*l.errors, err)
}

// directiveOf returns the upper-cased directive of a source line, or "" if the line
// is not a comment starting with '$'.
func directiveOf(line string) string {
	line = strings.TrimLeft(line, " \t")
	if line == "" {
		return ""
	}
	switch line[0] {
	case '\'', ';', '*':
	default:
		return ""
	}
	text := strings.ToUpper(strings.TrimSpace(line[1:]))
	if !strings.HasPrefix(text, "$") {
		return ""
	}
	return text
}

// skipInactive swallows the lines of a disabled conditional region and returns them
// as a single block comment. It stops in front of the $ELSEIF, $ELSE or $ENDIF that
// belongs to the current frame so that line is lexed as a directive.
// ok is false when there is nothing to skip at the current position.
func (l *Lexer) skipInactive() (tok token.Token, ok bool) {
	if l.ch == '\r' || l.ch == '\n' {
		return token.Token{}, false
	}
	l.markStart()
	nest := 0
	for l.ch != 0 {
		lineStart := l.position
		end := strings.IndexByte(l.input[lineStart:], '\n')
		line := l.input[lineStart:]
		if end >= 0 {
			line = line[:end]
		}
		d := directiveOf(strings.TrimSuffix(line, "\r"))
		switch {
		case d == "$IF" || strings.HasPrefix(d, "$IF "):
			nest++
		case strings.HasPrefix(d, "$ENDIF"):
			if nest == 0 {
				return l.inactiveBlock()
			}
			nest--
		case strings.HasPrefix(d, "$ELSE"):
			if nest == 0 {
				return l.inactiveBlock()
			}
		}
		for l.ch != 0 && l.ch != '\n' {
			l.readChar()
		}
		if l.ch == '\n' {
			l.readChar()
		}
	}
	return l.inactiveBlock()
}

func (l *Lexer) inactiveBlock() (token.Token, bool) {
	tok := l.current()
	if tok.Lexeme == "" {
		return tok, false
	}
	tok.Type = token.COMMENT
	tok.Literal = token.Comment{Kind: token.CommentBlock, Text: strings.TrimRight(tok.Lexeme, "\r\n")}
	l.state = stateAfterEOL
	return tok, true
}
