package lexer

import (
	"testing"

	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/token"
)

func lexAt(t *testing.T, input string, version int) ([]token.Token, []*diagnostics.DiagnosticError) {
	t.Helper()
	var errs []*diagnostics.DiagnosticError
	tokens := Tokenize(input, Options{LanguageVersion: version, Errors: &errs})
	return tokens, errs
}

func lexOne(t *testing.T, input string) token.Token {
	t.Helper()
	tokens, errs := lexAt(t, input, 400)
	if len(errs) > 0 {
		t.Fatalf("lex(%q): unexpected errors: %v", input, errs)
	}
	if len(tokens) != 2 {
		t.Fatalf("lex(%q): expected one token, got %v", input, tokens)
	}
	return tokens[0]
}

func TestConstantLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  token.Constant
	}{
		{"123", token.IntegerConst(123, token.FormatDefault)},
		{"0FFh", token.IntegerConst(255, token.FormatHex)},
		{"123d", token.IntegerConst(123, token.FormatDecimal)},
		{"130o", token.IntegerConst(88, token.FormatOctal)},
		{"1000b", token.IntegerConst(8, token.FormatBinary)},
		{"$1.42", token.MoneyConst(142)},
		{"$10", token.MoneyConst(1000)},
		{"@X64", token.IntegerConst(100, token.FormatColorCode)},
		{"1.5", token.DoubleConst(1.5)},
		{"4294967296", token.UnsignedConst(4294967296)},
		{"18446744073709551615", token.UnsignedConst(18446744073709551615)},
		{`"Hello"`, token.StringConst("Hello")},
		{`"say ""hi"""`, token.StringConst(`say "hi"`)},
		{"1BH", token.IntegerConst(27, token.FormatHex)},
		{"0DH", token.IntegerConst(13, token.FormatHex)},
	}

	for _, tt := range tests {
		tok := lexOne(t, tt.input)
		if tok.Type != token.CONST {
			t.Errorf("lex(%q) type = %s, want CONST", tt.input, tok.Type)
			continue
		}
		got := tok.Literal.(token.Constant)
		if !got.Equal(tt.want) || got.Format != tt.want.Format {
			t.Errorf("lex(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestBuiltinConstantsAndKeywords(t *testing.T) {
	tok := lexOne(t, "true")
	c, ok := tok.Literal.(token.Constant)
	if !ok || c.Kind != token.ConstBuiltin || c.Builtin.Name != "TRUE" {
		t.Fatalf("true lexed as %v", tok)
	}

	if got := lexOne(t, "EndWhile").Type; got != token.ENDWHILE {
		t.Errorf("EndWhile = %s", got)
	}
	if got := lexOne(t, "endfor").Type; got != token.NEXT {
		t.Errorf("endfor = %s", got)
	}
	// a call is never a keyword
	tokens, _ := lexAt(t, "if(", 400)
	if tokens[0].Type != token.IDENT {
		t.Errorf("if( lexed as %s", tokens[0].Type)
	}
}

func TestKeywordsAreVersionGated(t *testing.T) {
	tests := []struct {
		input   string
		version int
		want    token.TokenType
	}{
		{"SELECT", 100, token.IDENT},
		{"SELECT", 200, token.SELECT},
		{"PROCEDURE", 200, token.IDENT},
		{"PROCEDURE", 300, token.PROCEDURE},
		{"REPEAT", 340, token.IDENT},
		{"REPEAT", 350, token.REPEAT},
	}
	for _, tt := range tests {
		tokens, _ := lexAt(t, tt.input, tt.version)
		if tokens[0].Type != tt.want {
			t.Errorf("lex(%q) at %d = %s, want %s", tt.input, tt.version, tokens[0].Type, tt.want)
		}
	}
}

func TestBracketsAreVersionGated(t *testing.T) {
	tests := []struct {
		input   string
		version int
		want    token.TokenType
	}{
		{"[", 340, token.LPAREN},
		{"]", 340, token.RPAREN},
		{"[", 350, token.LBRACKET},
		{"]", 350, token.RBRACKET},
		{"{", 350, token.LBRACE},
		{"{", 300, token.LPAREN},
	}
	for _, tt := range tests {
		tokens, _ := lexAt(t, tt.input, tt.version)
		if tokens[0].Type != tt.want {
			t.Errorf("lex(%q) at %d = %s, want %s", tt.input, tt.version, tokens[0].Type, tt.want)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "a <> b >< c <= d =< e >= f => g == h != i && j || k ! l += m"
	want := []token.TokenType{
		token.IDENT, token.NOT_EQ, token.IDENT, token.NOT_EQ, token.IDENT, token.LT_EQ,
		token.IDENT, token.LT_EQ, token.IDENT, token.GT_EQ, token.IDENT, token.GT_EQ,
		token.IDENT, token.EQ, token.IDENT, token.NOT_EQ, token.IDENT, token.AND,
		token.IDENT, token.OR, token.IDENT, token.NOT, token.IDENT, token.ADD_ASSIGN,
		token.IDENT, token.EOF,
	}
	tokens, errs := lexAt(t, input, 400)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, tokens[i].Type, w)
		}
	}
}

func TestCompoundAssignNeeds350(t *testing.T) {
	tokens, _ := lexAt(t, "a += 1", 340)
	if tokens[1].Type != token.ADD || tokens[2].Type != token.EQ {
		t.Errorf("+= at 340 lexed as %v", tokens)
	}
}

func TestSeparatorsLabelsAndComments(t *testing.T) {
	input := ":start\n* star comment\nPRINT 1 : PRINT 2 ' trailing\n; done"
	tokens, errs := lexAt(t, input, 400)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.TokenType{
		token.LABEL, token.EOL,
		token.COMMENT, token.EOL,
		token.IDENT, token.CONST, token.EOL, token.IDENT, token.CONST, token.COMMENT, token.EOL,
		token.COMMENT, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %v", tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, tokens[i].Type, w)
		}
	}
	if tokens[0].Literal != "start" {
		t.Errorf("label = %v", tokens[0].Literal)
	}
	if c := tokens[2].Literal.(token.Comment); c.Kind != token.CommentStar || c.Text != " star comment" {
		t.Errorf("star comment = %#v", c)
	}
	// a '*' after an expression is multiplication
	tokens, _ = lexAt(t, "a * b", 400)
	if tokens[1].Type != token.MUL {
		t.Errorf("a * b lexed as %v", tokens)
	}
}

func TestLineContinuation(t *testing.T) {
	tokens, errs := lexAt(t, "PRINT 1, _\n 2", 400)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for _, tok := range tokens {
		if tok.Type == token.EOL {
			t.Fatalf("continuation produced EOL: %v", tokens)
		}
	}
	if len(tokens) != 5 {
		t.Errorf("tokens = %v", tokens)
	}
}

func TestSpansIndexSource(t *testing.T) {
	input := "LET  abc = \"x\""
	tokens, _ := lexAt(t, input, 400)
	for _, tok := range tokens[:len(tokens)-1] {
		if input[tok.Span.Start:tok.Span.End] != tok.Lexeme {
			t.Errorf("span %v of %s does not match lexeme %q", tok.Span, tok.Type, tok.Lexeme)
		}
	}
	if tokens[1].Span.Start != 5 || tokens[1].Line != 1 || tokens[1].Column != 6 {
		t.Errorf("abc at %v line %d col %d", tokens[1].Span, tokens[1].Line, tokens[1].Column)
	}
}

func TestErrorsAreRecoverable(t *testing.T) {
	tokens, errs := lexAt(t, "a ? b\n\"open", 400)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0].Code != diagnostics.ErrL001 || errs[1].Code != diagnostics.ErrL002 {
		t.Errorf("codes = %s %s", errs[0].Code, errs[1].Code)
	}
	if tokens[2].Type != token.IDENT || tokens[len(tokens)-1].Type != token.EOF {
		t.Errorf("lexing did not resume: %v", tokens)
	}
}

func TestMemberAccessNeeds400(t *testing.T) {
	tokens, errs := lexAt(t, "a.b", 400)
	if len(errs) > 0 || tokens[1].Type != token.DOT {
		t.Errorf("a.b at 400 = %v %v", tokens, errs)
	}
	_, errs = lexAt(t, "a.b", 350)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrL011 {
		t.Errorf("a.b at 350 errors = %v", errs)
	}
}

func TestCtrlZEndsInput(t *testing.T) {
	tokens, _ := lexAt(t, "PRINT\x1AGARBAGE", 400)
	if len(tokens) != 2 || tokens[1].Type != token.EOF {
		t.Errorf("tokens = %v", tokens)
	}
}
