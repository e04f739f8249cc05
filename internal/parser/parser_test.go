package parser_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/lexer"
	"github.com/funvibe/ppl/internal/parser"
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/prettyprinter"
	"github.com/funvibe/ppl/internal/token"
)

var update = flag.Bool("update", false, "update snapshot files")

func parse(t *testing.T, src string, version int) (*ast.Program, []*diagnostics.DiagnosticError) {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: src, LanguageVersion: version}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	return ctx.AstRoot, ctx.Errors
}

func mustParse(t *testing.T, src string, version int) *ast.Program {
	t.Helper()
	prog, errs := parse(t, src, version)
	if diagnostics.HasErrors(errs) {
		var msgs []string
		for _, err := range errs {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing %q failed:\n%s", src, strings.Join(msgs, "\n"))
	}
	return prog
}

func id(name string) *ast.Identifier { return ast.NewIdentifier(name) }

func num(v int32) *ast.Constant { return ast.NewInteger(v) }

func str(s string) *ast.Constant { return ast.NewConstant(token.StringConst(s)) }

func bin(l ast.Expression, op ast.BinOp, r ast.Expression) *ast.BinaryExpression {
	return ast.NewBinary(l, op, r)
}

func parens(e ast.Expression) *ast.ParensExpression { return &ast.ParensExpression{Expr: e} }

func printlnStmt(args ...ast.Expression) *ast.PredefinedCallStatement {
	return &ast.PredefinedCallStatement{Name: "PRINTLN", Args: args}
}

func program(nodes ...ast.Node) *ast.Program { return &ast.Program{Nodes: nodes} }

func TestParser(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"precedence", "A = 1 + 2 * 3"},
		{"if_else", "INTEGER I\nIF (I > 1) THEN\nPRINTLN \"BIG\"\nELSE\nPRINTLN \"SMALL\"\nENDIF"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prog := mustParse(t, tc.input, 0)

			treePrinter := prettyprinter.NewTreePrinter()
			prog.Accept(treePrinter)
			treeOutput := treePrinter.String()

			codePrinter := prettyprinter.NewCodePrinter()
			prog.Accept(codePrinter)
			codeOutput := codePrinter.String()

			actual := "--- Input ---\n" + tc.input + "\n\n--- AST Tree ---\n" + treeOutput + "\n--- Source Code ---\n" + codeOutput

			snapshotFile := filepath.Join("testdata", tc.name+".snap")
			if *update {
				if err := os.WriteFile(snapshotFile, []byte(actual), 0644); err != nil {
					t.Fatalf("failed to update snapshot: %v", err)
				}
				return
			}

			expected, err := os.ReadFile(snapshotFile)
			if err != nil {
				t.Fatalf("failed to read snapshot file: %v. Run with -update flag to create it.", err)
			}
			if string(expected) != actual {
				t.Errorf("snapshot mismatch:\n--- expected\n%s\n--- actual\n%s", string(expected), actual)
			}
		})
	}
}

func TestExpressionPrecedence(t *testing.T) {
	b, c := id("B"), id("C")
	tests := []struct {
		input string
		want  ast.Expression
	}{
		{"A = 1 + 2 * 3", bin(num(1), ast.Add, bin(num(2), ast.Mul, num(3)))},
		{"A = 1 * 2 + 3", bin(bin(num(1), ast.Mul, num(2)), ast.Add, num(3))},
		{"A = 1 - 2 - 3", bin(bin(num(1), ast.Sub, num(2)), ast.Sub, num(3))},
		{"A = 2 ^ 3 ^ 2", bin(bin(num(2), ast.Pow, num(3)), ast.Pow, num(2))},
		{"A = 10 % 3 * 2", bin(bin(num(10), ast.Mod, num(3)), ast.Mul, num(2))},
		{"A = B = 1 & C", bin(bin(b, ast.Eq, num(1)), ast.And, c)},
		{"A = B < 1 | C >= 2", bin(bin(b, ast.Lower, num(1)), ast.Or, bin(c, ast.GreaterEq, num(2)))},
		{"A = -B ^ 2", bin(&ast.UnaryExpression{Op: ast.Minus, Expr: b}, ast.Pow, num(2))},
		{"A = !B | C", bin(&ast.UnaryExpression{Op: ast.Not, Expr: b}, ast.Or, c)},
		{"A = (1 + 2) * 3", bin(parens(bin(num(1), ast.Add, num(2))), ast.Mul, num(3))},
		{"A = B <> \"X\"", bin(b, ast.NotEq, str("X"))},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prog := mustParse(t, tt.input, 0)
			want := program(ast.NewLet(id("A"), nil, tt.want))
			if !ast.IsSimilar(prog, want) {
				t.Errorf("got\n%s", prettyprinter.Format(prog))
			}
		})
	}
}

func TestBracketsDependOnVersion(t *testing.T) {
	args := []ast.Expression{num(1)}

	old := mustParse(t, "B = A[1]", 340)
	call := &ast.FunctionCallExpression{Callee: id("A"), Args: args}
	if !ast.IsSimilar(old, program(ast.NewLet(id("B"), nil, call))) {
		t.Errorf("340: brackets should read as parentheses, got %s", prettyprinter.Format(old))
	}

	cur := mustParse(t, "B = A[1]", 350)
	indexer := &ast.IndexerExpression{Name: id("A"), Args: args}
	if !ast.IsSimilar(cur, program(ast.NewLet(id("B"), nil, indexer))) {
		t.Errorf("350: expected an indexer, got %s", prettyprinter.Format(cur))
	}
}

func TestStatements(t *testing.T) {
	a, i := id("A"), id("I")
	tests := []struct {
		name    string
		input   string
		version int
		want    *ast.Program
	}{
		{
			name:  "single line if",
			input: "IF (A > 1) PRINTLN \"X\"",
			want: program(&ast.IfStatement{
				Condition: parens(bin(a, ast.Greater, num(1))),
				Statement: printlnStmt(str("X")),
			}),
		},
		{
			name:  "if elseif else",
			input: "IF (A = 1) THEN\nPRINTLN 1\nELSE IF (A = 2) THEN\nPRINTLN 2\nELSE\nPRINTLN 3\nEND IF",
			want: program(&ast.IfThenStatement{
				Condition:  parens(bin(a, ast.Eq, num(1))),
				Statements: []ast.Statement{printlnStmt(num(1))},
				ElseIfs: []*ast.ElseIfBlock{{
					Condition:  parens(bin(a, ast.Eq, num(2))),
					Statements: []ast.Statement{printlnStmt(num(2))},
				}},
				Else: &ast.ElseBlock{Statements: []ast.Statement{printlnStmt(num(3))}},
			}),
		},
		{
			name:  "while do",
			input: "WHILE (A < 10) DO\nA = A + 1\nENDWHILE",
			want: program(&ast.WhileDoStatement{
				Condition:  parens(bin(a, ast.Lower, num(10))),
				Statements: []ast.Statement{ast.NewLet(a, nil, bin(a, ast.Add, num(1)))},
			}),
		},
		{
			name:  "for with step",
			input: "FOR I = 1 TO 10 STEP 2\nPRINTLN I\nNEXT I",
			want: program(&ast.ForStatement{
				Variable:   i,
				Start:      num(1),
				End:        num(10),
				Step:       num(2),
				Statements: []ast.Statement{printlnStmt(i)},
			}),
		},
		{
			name:  "select",
			input: "SELECT CASE A\nCASE 1, 3..5\nPRINTLN \"X\"\nCASE ELSE\nPRINTLN \"Y\"\nENDSELECT",
			want: program(&ast.SelectStatement{
				Expr: a,
				Cases: []*ast.CaseBlock{{
					Specifiers: []ast.CaseSpecifier{{From: num(1)}, {From: num(3), To: num(5)}},
					Statements: []ast.Statement{printlnStmt(str("X"))},
				}},
				Default: &ast.DefaultBlock{Statements: []ast.Statement{printlnStmt(str("Y"))}},
			}),
		},
		{
			name:  "repeat until",
			input: "REPEAT\nA += 1\nUNTIL A > 3",
			want: program(&ast.RepeatUntilStatement{
				Statements: []ast.Statement{&ast.LetStatement{Target: a, AssignOp: token.ADD_ASSIGN, Value: num(1)}},
				Condition:  bin(a, ast.Greater, num(3)),
			}),
		},
		{
			name:  "let with indices",
			input: "LET A(1, 2) = 3",
			want:  program(ast.NewLet(a, []ast.Expression{num(1), num(2)}, num(3))),
		},
		{
			name:  "goto and label",
			input: "GOTO DONE\n:DONE\nGOSUB DONE",
			want: program(
				&ast.GotoStatement{Label: "DONE"},
				&ast.LabelStatement{Label: "DONE"},
				&ast.GosubStatement{Label: "DONE"},
			),
		},
		{
			name:    "pseudo keywords before 350",
			input:   "WHILE (A) QUIT",
			version: 340,
			want:    program(&ast.WhileStatement{Condition: parens(a), Statement: &ast.BreakStatement{}}),
		},
		{
			name:  "declaration with initializer",
			input: "INTEGER A = 5, B(3)",
			want: program(&ast.VariableDeclarationStatement{
				Type: executable.TypeInteger,
				Variables: []*ast.VariableSpecifier{
					{Name: a, Initializer: num(5)},
					{Name: id("B"), Dimensions: []int{3}},
				},
			}),
		},
		{
			name:  "member call",
			input: "A.SHOW(1)",
			want: program(&ast.PredefinedCallStatement{
				Name: "EVAL",
				Args: []ast.Expression{&ast.FunctionCallExpression{
					Callee: &ast.MemberReferenceExpression{Expr: a, Member: id("SHOW")},
					Args:   []ast.Expression{num(1)},
				}},
			}),
		},
		{
			name:  "member named like a constant",
			input: "A = U.SEC",
			want:  program(ast.NewLet(a, nil, &ast.MemberReferenceExpression{Expr: id("U"), Member: id("SEC")})),
		},
		{
			name:  "member named like a keyword",
			input: "U.NEXT(1)",
			want: program(&ast.PredefinedCallStatement{
				Name: "EVAL",
				Args: []ast.Expression{&ast.FunctionCallExpression{
					Callee: &ast.MemberReferenceExpression{Expr: id("U"), Member: id("NEXT")},
					Args:   []ast.Expression{num(1)},
				}},
			}),
		},
		{
			name: "function",
			input: "DECLARE FUNCTION MYADD(INTEGER X, INTEGER Y) INTEGER\n" +
				"PRINTLN MYADD(1, 2)\n" +
				"FUNCTION MYADD(INTEGER X, INTEGER Y) INTEGER\n" +
				"    MYADD = X + Y\n" +
				"ENDFUNC",
			want: program(
				&ast.FunctionDeclaration{
					Name: id("MYADD"),
					Parameters: []*ast.Parameter{
						{Type: executable.TypeInteger, Name: id("X")},
						{Type: executable.TypeInteger, Name: id("Y")},
					},
					ReturnType: executable.TypeInteger,
				},
				printlnStmt(&ast.FunctionCallExpression{Callee: id("MYADD"), Args: []ast.Expression{num(1), num(2)}}),
				&ast.FunctionImplementation{
					Name: id("MYADD"),
					Parameters: []*ast.Parameter{
						{Type: executable.TypeInteger, Name: id("X")},
						{Type: executable.TypeInteger, Name: id("Y")},
					},
					ReturnType: executable.TypeInteger,
					Statements: []ast.Statement{ast.NewLet(id("MYADD"), nil, bin(id("X"), ast.Add, id("Y")))},
				},
			),
		},
		{
			name:  "procedure with var parameter",
			input: "PROCEDURE P(VAR STRING S)\nS = \"X\"\nENDPROC",
			want: program(&ast.ProcedureImplementation{
				Name:       id("P"),
				Parameters: []*ast.Parameter{{IsVar: true, Type: executable.TypeString, Name: id("S")}},
				Statements: []ast.Statement{ast.NewLet(id("S"), nil, str("X"))},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustParse(t, tt.input, tt.version)
			if !ast.IsSimilar(prog, tt.want) {
				tp := prettyprinter.NewTreePrinter()
				prog.Accept(tp)
				t.Errorf("unexpected tree:\n%s", tp.String())
			}
		})
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		version int
		code    diagnostics.ErrorCode
	}{
		{"unknown identifier", "FOO 1", 0, diagnostics.UnknownIdentifier},
		{"condition without parens", "IF A THEN\nENDIF", 340, diagnostics.IfWhileConditionNotFound},
		{"missing TO", "FOR I = 1 10\nNEXT", 0, diagnostics.ToExpected},
		{"select without case", "SELECT 1", 0, diagnostics.CaseExpectedAfterSelect},
		{"block end without start", "ENDIF", 0, diagnostics.BlockEndBeforeBlockStart},
		{"return value outside function", "RETURN 1", 0, diagnostics.ReturnExpressionOutsideFunc},
		{"goto without label", "GOTO", 0, diagnostics.LabelExpected},
		{"member is not a word", "A = U.\"X\"", 0, diagnostics.IdentifierExpected},
		{"too many dimensions", "INTEGER A(1, 2, 3, 4)", 0, diagnostics.TooManyDimensions},
		{"dimension not a number", "INTEGER A(B)", 0, diagnostics.NumberExpected},
		{"var in function", "DECLARE FUNCTION F(VAR INTEGER A) INTEGER", 0, diagnostics.VarNotAllowedInFunctions},
		{"unterminated block", "REPEAT\nPRINTLN 1\n", 0, diagnostics.EndExpected},
		{"missing close paren", "A = (1 + 2", 0, diagnostics.MissingCloseParens},
		{"unterminated initializer", "INTEGER A(2)\nA = {1, 2", 0, diagnostics.CommaOrRBraceExpected},
		{"missing comma", "PRINTLN 1 2", 0, diagnostics.CommaExpected},
		{"statement argument count", "CLS 1", 0, diagnostics.WrongArgumentCount},
		{"function argument count", "A = LEN(1, 2)", 0, diagnostics.WrongArgumentCount},
		{"statement too new", "GETALTUSER 1", 100, diagnostics.StatementVersionNotSupported},
		{"statements after functions", "PROCEDURE P()\nENDPROC\nPRINTLN 1", 0, diagnostics.NoStatementsAfterFunctions},
		{"statements before begin", "' $USEFUNCS\nPRINTLN 1", 0, diagnostics.NoStatementsOutsideBlock},
		{"redeclared predefined", "DECLARE PROCEDURE PRINTLN()", 0, diagnostics.AlreadyDefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parse(t, tt.input, tt.version)
			for _, err := range errs {
				if err.Code == tt.code && !err.IsWarning() {
					return
				}
			}
			t.Errorf("expected %s, got %v", tt.code, errs)
		})
	}
}

func TestNextMismatchIsWarning(t *testing.T) {
	_, errs := parse(t, "FOR I = 1 TO 2\nNEXT J", 0)
	if diagnostics.HasErrors(errs) {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(errs) != 1 || errs[0].Code != diagnostics.NextIdentifierMismatch {
		t.Errorf("expected a NEXT mismatch warning, got %v", errs)
	}
}

func TestUseFuncsProgram(t *testing.T) {
	src := "' $USEFUNCS\nINTEGER X\nPROCEDURE P()\nPRINTLN X\nENDPROC\nBEGIN\nP()\nEND"
	prog := mustParse(t, src, 0)
	if len(prog.Procedures()) != 1 {
		t.Fatalf("procedures = %d", len(prog.Procedures()))
	}
	stmts := prog.Statements()
	var sawBegin bool
	for _, s := range stmts {
		if lbl, ok := s.(*ast.LabelStatement); ok && lbl.Label == "~BEGIN~" {
			sawBegin = true
		}
	}
	if !sawBegin {
		t.Error("BEGIN label missing")
	}
}

func TestUserVariablesRequested(t *testing.T) {
	prog := mustParse(t, "GETUSER\nPRINTLN U_NAME()", 0)
	if !prog.UserVariables {
		t.Error("GETUSER should request the user variable block")
	}
}

func TestErrorRecovery(t *testing.T) {
	prog, errs := parse(t, "FOO 1\nPRINTLN \"OK\"\nBAR 2", 0)
	count := 0
	for _, err := range errs {
		if err.Code == diagnostics.UnknownIdentifier {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected two errors, got %v", errs)
	}
	if len(prog.Statements()) != 1 {
		t.Errorf("the valid statement should survive, got %d", len(prog.Statements()))
	}
}
