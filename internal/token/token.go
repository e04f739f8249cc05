package token

import "fmt"

type TokenType string

const (
	ILLEGAL  TokenType = "ILLEGAL"
	EOF      TokenType = "EOF"
	EOL      TokenType = "EOL"
	IDENT    TokenType = "IDENT"
	CONST    TokenType = "CONST"
	LABEL    TokenType = "LABEL"
	COMMENT  TokenType = "COMMENT"
	USEFUNCS TokenType = "USEFUNCS"

	COMMA    TokenType = ","
	DOT      TokenType = "."
	DOTDOT   TokenType = ".."
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"

	POW    TokenType = "^"
	MUL    TokenType = "*"
	DIV    TokenType = "/"
	MOD    TokenType = "%"
	ADD    TokenType = "+"
	SUB    TokenType = "-"
	EQ     TokenType = "="
	NOT_EQ TokenType = "<>"
	LT     TokenType = "<"
	LT_EQ  TokenType = "<="
	GT     TokenType = ">"
	GT_EQ  TokenType = ">="
	AND    TokenType = "&"
	OR     TokenType = "|"
	NOT    TokenType = "!"

	MUL_ASSIGN TokenType = "*="
	DIV_ASSIGN TokenType = "/="
	MOD_ASSIGN TokenType = "%="
	ADD_ASSIGN TokenType = "+="
	SUB_ASSIGN TokenType = "-="
	AND_ASSIGN TokenType = "&="
	OR_ASSIGN  TokenType = "|="

	// Keywords
	IF        TokenType = "IF"
	LET       TokenType = "LET"
	WHILE     TokenType = "WHILE"
	ENDWHILE  TokenType = "ENDWHILE"
	ELSE      TokenType = "ELSE"
	ELSEIF    TokenType = "ELSEIF"
	ENDIF     TokenType = "ENDIF"
	FOR       TokenType = "FOR"
	NEXT      TokenType = "NEXT"
	BREAK     TokenType = "BREAK"
	CONTINUE  TokenType = "CONTINUE"
	RETURN    TokenType = "RETURN"
	GOSUB     TokenType = "GOSUB"
	GOTO      TokenType = "GOTO"
	SELECT    TokenType = "SELECT"
	CASE      TokenType = "CASE"
	DEFAULT   TokenType = "DEFAULT"
	ENDSELECT TokenType = "ENDSELECT"
	DECLARE   TokenType = "DECLARE"
	FUNCTION  TokenType = "FUNCTION"
	PROCEDURE TokenType = "PROCEDURE"
	ENDPROC   TokenType = "ENDPROC"
	ENDFUNC   TokenType = "ENDFUNC"
	REPEAT    TokenType = "REPEAT"
	UNTIL     TokenType = "UNTIL"
	LOOP      TokenType = "LOOP"
	ENDLOOP   TokenType = "ENDLOOP"
)

// Span is a half open byte range into the source the token was read from
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Token is a single lexical unit.
// Literal holds the decoded payload: a Constant for CONST, the name for IDENT and LABEL,
// a Comment for COMMENT.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
	Span    Span
}

func (t Token) String() string {
	if t.Lexeme != "" {
		return fmt.Sprintf("%s(%q)", t.Type, t.Lexeme)
	}
	return string(t.Type)
}

// IsAssign reports whether the token can start the value part of a LET
func (t Token) IsAssign() bool {
	switch t.Type {
	case EQ, ADD_ASSIGN, SUB_ASSIGN, MUL_ASSIGN, DIV_ASSIGN, MOD_ASSIGN, AND_ASSIGN, OR_ASSIGN:
		return true
	}
	return false
}

// CanBeIdentifier reports whether the token may be used where a name is expected
// (labels after GOTO, loop variables, type names).
func (t Token) CanBeIdentifier() bool {
	switch t.Type {
	case IDENT:
		return true
	case CONST:
		c, ok := t.Literal.(Constant)
		return ok && c.Kind == ConstBuiltin
	}
	return IsKeyword(t.Type)
}

// Name returns the identifier text of a token that CanBeIdentifier
func (t Token) Name() string {
	if s, ok := t.Literal.(string); ok {
		return s
	}
	return t.Lexeme
}

// CommentType identifies the marker that opened a comment
type CommentType int

const (
	CommentQuote CommentType = iota
	CommentSemicolon
	CommentStar
	CommentBlock
)

func (c CommentType) Marker() string {
	switch c {
	case CommentSemicolon:
		return ";"
	case CommentStar:
		return "*"
	}
	return "'"
}

type Comment struct {
	Kind CommentType
	Text string
}

var keywords = map[TokenType]bool{
	IF: true, LET: true, WHILE: true, ENDWHILE: true, ELSE: true, ELSEIF: true, ENDIF: true,
	FOR: true, NEXT: true, BREAK: true, CONTINUE: true, RETURN: true, GOSUB: true, GOTO: true,
	SELECT: true, CASE: true, DEFAULT: true, ENDSELECT: true, DECLARE: true, FUNCTION: true,
	PROCEDURE: true, ENDPROC: true, ENDFUNC: true, REPEAT: true, UNTIL: true, LOOP: true, ENDLOOP: true,
}

func IsKeyword(t TokenType) bool {
	return keywords[t]
}
