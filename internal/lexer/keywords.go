package lexer

import (
	"sort"

	"github.com/funvibe/ppl/internal/token"
)

var keywords100 = map[string]token.TokenType{
	"IF":       token.IF,
	"LET":      token.LET,
	"WHILE":    token.WHILE,
	"ENDWHILE": token.ENDWHILE,
	"ELSE":     token.ELSE,
	"ELSEIF":   token.ELSEIF,
	"ENDIF":    token.ENDIF,
	"FOR":      token.FOR,
	"NEXT":     token.NEXT,
	"ENDFOR":   token.NEXT,
	"BREAK":    token.BREAK,
	"CONTINUE": token.CONTINUE,
	"RETURN":   token.RETURN,
	"GOSUB":    token.GOSUB,
	"GOTO":     token.GOTO,
}

var keywords200 = extend(keywords100, map[string]token.TokenType{
	"SELECT":    token.SELECT,
	"CASE":      token.CASE,
	"DEFAULT":   token.DEFAULT,
	"ENDSELECT": token.ENDSELECT,
})

var keywords300 = extend(keywords200, map[string]token.TokenType{
	"DECLARE":   token.DECLARE,
	"FUNCTION":  token.FUNCTION,
	"PROCEDURE": token.PROCEDURE,
	"ENDPROC":   token.ENDPROC,
	"ENDFUNC":   token.ENDFUNC,
})

var keywords350 = extend(keywords300, map[string]token.TokenType{
	"REPEAT":  token.REPEAT,
	"UNTIL":   token.UNTIL,
	"LOOP":    token.LOOP,
	"ENDLOOP": token.ENDLOOP,
})

func extend(base, add map[string]token.TokenType) map[string]token.TokenType {
	m := make(map[string]token.TokenType, len(base)+len(add))
	for k, v := range base {
		m[k] = v
	}
	for k, v := range add {
		m[k] = v
	}
	return m
}

// keywordsFor returns the keyword table of a language version. Tables are shared and read-only.
func keywordsFor(version int) map[string]token.TokenType {
	switch {
	case version < 200:
		return keywords100
	case version < 300:
		return keywords200
	case version < 350:
		return keywords300
	}
	return keywords350
}

// Keywords returns the reserved words of a language version in sorted order
func Keywords(version int) []string {
	table := keywordsFor(version)
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsKeyword reports whether name is reserved at the given language version
func IsKeyword(name string, version int) bool {
	_, ok := keywordsFor(version)[upperASCII(name)]
	return ok
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
