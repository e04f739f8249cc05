package prettyprinter_test

import (
	"strings"
	"testing"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/lexer"
	"github.com/funvibe/ppl/internal/parser"
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/prettyprinter"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: src}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if ctx.HasErrors() {
		t.Fatalf("parse %q: %v", src, ctx.Errors)
	}
	return ctx.AstRoot
}

func TestFormatIsStable(t *testing.T) {
	sources := []string{
		"integer i\nfor i = 1 to 10 step 2\nprintln i * (2 + 3)\nnext",
		"STRING S\nIF (LEN(S) > 0) THEN\nPRINTLN S\nELSEIF (S = \"\") THEN\nPRINTLN \"EMPTY\"\nELSE\nPRINTLN 0FFh\nENDIF",
		"INTEGER A\nSELECT CASE A\nCASE 1, 2..4\nPRINTLN 1\nDEFAULT\nPRINTLN 2\nENDSELECT",
		"INTEGER A\nWHILE (A < 3) DO\nA += 1\nIF (A = 2) CONTINUE\nENDWHILE",
		"INTEGER A\nREPEAT\nA = A - (1 - 2)\nUNTIL A > 5\nLOOP\nBREAK\nENDLOOP",
		":TOP\nGOSUB SUB\nGOTO TOP\n:SUB\nRETURN",
		"; a comment\nINTEGER ARR(3)\nARR(1) = -ARR(2) ^ 2\nPRINTLN !TRUE",
		"DECLARE PROCEDURE P(VAR INTEGER X)\nDECLARE FUNCTION F(INTEGER Y) INTEGER\nINTEGER V\nP(V)\n" +
			"PROCEDURE P(VAR INTEGER X)\nX = F(X)\nENDPROC\n" +
			"FUNCTION F(INTEGER Y) INTEGER\nF = Y * 2\nENDFUNC",
	}
	for _, src := range sources {
		first := prettyprinter.Format(parse(t, src))
		second := prettyprinter.Format(parse(t, first))
		if first != second {
			t.Errorf("format is not stable\n--- first\n%s\n--- second\n%s", first, second)
		}
		if !ast.IsSimilar(parse(t, src), parse(t, first)) {
			t.Errorf("formatting changed the meaning of\n%s\ninto\n%s", src, first)
		}
	}
}

func TestIndentation(t *testing.T) {
	got := prettyprinter.Format(parse(t, "INTEGER I\nFOR I = 1 TO 2\nIF (I = 1) THEN\nPRINTLN I\nENDIF\nNEXT"))
	want := "INTEGER I\n" +
		"FOR I = 1 TO 2\n" +
		"    IF (I = 1) THEN\n" +
		"        PRINTLN I\n" +
		"    ENDIF\n" +
		"NEXT\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestKeywordCase(t *testing.T) {
	prog := parse(t, "INTEGER Count\nWHILE (Count < 2) Count = Count + 1\nPRINTLN Count")
	p := prettyprinter.NewCodePrinterWithOptions(prettyprinter.Options{IndentWidth: 2, Keywords: prettyprinter.KeywordLower})
	prog.Accept(p)
	want := "integer Count\nwhile (Count < 2) Count = Count + 1\nprintln Count\n"
	if p.String() != want {
		t.Errorf("got %q, want %q", p.String(), want)
	}
}

func TestParenthesesOnlyWhereNeeded(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A = 1 + 2 * 3", "A = 1 + 2 * 3"},
		{"A = (1 + 2) * 3", "A = (1 + 2) * 3"},
		{"A = 1 - (2 - 3)", "A = 1 - (2 - 3)"},
		{"A = -(1 + 2)", "A = -(1 + 2)"},
	}
	for _, tt := range tests {
		got := strings.TrimSpace(prettyprinter.Format(parse(t, "INTEGER A\n"+tt.input)))
		got = strings.TrimPrefix(got, "INTEGER A\n")
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTreePrinter(t *testing.T) {
	prog := parse(t, "INTEGER A(2)\nA(1) = 5")
	tp := prettyprinter.NewTreePrinter()
	prog.Accept(tp)
	want := "Program\n" +
		"  VariableDeclaration: Integer\n" +
		"    Variable: A[2]\n" +
		"  Let: A =\n" +
		"    Indices:\n" +
		"      Constant: 1\n" +
		"    Constant: 5\n"
	if tp.String() != want {
		t.Errorf("got\n%s\nwant\n%s", tp.String(), want)
	}
}
