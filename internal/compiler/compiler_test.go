package compiler_test

import (
	"testing"

	"github.com/funvibe/ppl/internal/compiler"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/lexer"
	"github.com/funvibe/ppl/internal/parser"
	"github.com/funvibe/ppl/internal/pipeline"
)

func compile(t *testing.T, src string) (*executable.Executable, []*diagnostics.DiagnosticError) {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: src}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("parse %q: %v", src, ctx.Errors)
	}
	return compiler.Compile(ctx.AstRoot, compiler.Options{})
}

func mustCompile(t *testing.T, src string) *executable.Executable {
	t.Helper()
	exe, errs := compile(t, src)
	if diagnostics.HasErrors(errs) {
		t.Fatalf("compile %q: %v", src, errs)
	}
	return exe
}

func decode(t *testing.T, exe *executable.Executable) []*executable.Statement {
	t.Helper()
	script := executable.DecodeScript(exe)
	if len(script.Errors) > 0 {
		t.Fatalf("decode: %v", script.Errors)
	}
	return script.Statements
}

func ops(stmts []*executable.Statement) []executable.OpCode {
	res := make([]executable.OpCode, len(stmts))
	for i, s := range stmts {
		res[i] = s.Op
	}
	return res
}

func equalOps(a, b []executable.OpCode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVariableTableLayout(t *testing.T) {
	exe := mustCompile(t, "INTEGER A\nSTRING S\nA = 1 + 2\nS = \"X\"\nA = 1\nPRINTLN A, S")

	want := []struct {
		name string
		role executable.EntryRole
		typ  executable.VariableType
	}{
		{"A", executable.RoleVariable, executable.TypeInteger},
		{"S", executable.RoleVariable, executable.TypeString},
		{"", executable.RoleConstant, executable.TypeInteger},
		{"", executable.RoleConstant, executable.TypeInteger},
		{"", executable.RoleConstant, executable.TypeString},
	}
	if exe.Variables.Len() != len(want) {
		t.Fatalf("got %d entries, want %d", exe.Variables.Len(), len(want))
	}
	for i, w := range want {
		e, _ := exe.Variables.Entry(i + 1)
		if e.Name != w.name || e.Role != w.role || e.Header.Type != w.typ {
			t.Errorf("entry %d: got %q %s %s, want %q %s %s", i+1, e.Name, e.Role, e.Header.Type, w.name, w.role, w.typ)
		}
	}
	if c, _ := exe.Variables.Entry(3); c.Value.AsInt() != 1 {
		t.Errorf("first constant = %s, want 1", c.Value)
	}

	got := ops(decode(t, exe))
	wantOps := []executable.OpCode{executable.OP_LET, executable.OP_LET, executable.OP_LET, executable.LookupStatement("PRINTLN").Opcode, executable.OP_END}
	if !equalOps(got, wantOps) {
		t.Errorf("got %v, want %v", got, wantOps)
	}
}

func TestArrayDeclaration(t *testing.T) {
	exe := mustCompile(t, "INTEGER M(3, 4)\nM(1, 2) = 5")
	e, _ := exe.Variables.Entry(1)
	if e.Header.Dim != 2 || e.Header.Vector != 3 || e.Header.Matrix != 4 {
		t.Errorf("header = %s", e.Header)
	}
	stmts := decode(t, exe)
	dim, ok := stmts[0].Args[0].(*executable.DimExpr)
	if !ok || dim.ID != 1 || len(dim.Dims) != 2 {
		t.Errorf("target = %#v", stmts[0].Args[0])
	}
}

func TestArrayInitializer(t *testing.T) {
	exe := mustCompile(t, "INTEGER A = {7, 8, 9}")
	e, _ := exe.Variables.Entry(1)
	if e.Header.Dim != 1 || e.Header.Vector != 2 {
		t.Errorf("header = %s, want one dimension of upper bound 2", e.Header)
	}
	stmts := decode(t, exe)
	if len(stmts) != 4 {
		t.Fatalf("got %d statements, want 3 assignments and END", len(stmts))
	}
}

func TestLabelsAreByteOffsets(t *testing.T) {
	exe := mustCompile(t, "INTEGER I\nPRINTLN \"START\"\n:TOP\nI = I + 1\nIF (I < 3) GOTO TOP\nEND")
	stmts := decode(t, exe)
	if stmts[2].Op != executable.OP_IFNOT {
		t.Fatalf("statement 2 is %s, want IF", stmts[2].Op)
	}
	if stmts[2].Target != stmts[1].Offset() {
		t.Errorf("jump to %d, want %d", stmts[2].Target, stmts[1].Offset())
	}
	script := executable.DecodeScript(exe)
	if i, ok := script.StatementAt(stmts[2].Target); !ok || i != 1 {
		t.Errorf("label resolves to statement %d", i)
	}
}

func TestConditionIsNegatedForIfNot(t *testing.T) {
	exe := mustCompile(t, "INTEGER A\nIF (A > 1) GOTO L\n:L")
	stmts := decode(t, exe)
	cond, ok := stmts[0].Args[0].(*executable.BinaryExpr)
	if !ok {
		t.Fatalf("condition = %#v", stmts[0].Args[0])
	}
	if cond.Op != executable.FN_LE {
		t.Errorf("condition op = %s, want <=", cond.Op)
	}
}

func TestLoweringShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []executable.OpCode
	}{
		{
			"while do",
			"INTEGER I\nWHILE (I < 3) DO\nI = I + 1\nENDWHILE",
			[]executable.OpCode{executable.OP_IFNOT, executable.OP_LET, executable.OP_GOTO, executable.OP_END},
		},
		{
			"single line while",
			"INTEGER I\nWHILE (I < 3) I = I + 1",
			[]executable.OpCode{executable.OP_IFNOT, executable.OP_LET, executable.OP_GOTO, executable.OP_END},
		},
		{
			"for",
			"INTEGER I\nFOR I = 1 TO 3\nNEXT",
			[]executable.OpCode{executable.OP_LET, executable.OP_IFNOT, executable.OP_LET, executable.OP_GOTO, executable.OP_END},
		},
		{
			"repeat",
			"INTEGER I\nREPEAT\nI += 1\nUNTIL I > 3",
			[]executable.OpCode{executable.OP_LET, executable.OP_IFNOT, executable.OP_END},
		},
		{
			"if else",
			"INTEGER I\nIF (I = 1) THEN\nI = 2\nELSE\nI = 3\nENDIF",
			[]executable.OpCode{executable.OP_IFNOT, executable.OP_LET, executable.OP_GOTO, executable.OP_LET, executable.OP_END},
		},
		{
			"select",
			"INTEGER I\nSELECT CASE I\nCASE 1\nI = 2\nDEFAULT\nI = 3\nENDSELECT",
			[]executable.OpCode{executable.OP_IFNOT, executable.OP_LET, executable.OP_GOTO, executable.OP_LET, executable.OP_END},
		},
		{
			"break",
			"LOOP\nBREAK\nENDLOOP",
			[]executable.OpCode{executable.OP_GOTO, executable.OP_GOTO, executable.OP_END},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ops(decode(t, mustCompile(t, tt.src)))
			if !equalOps(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForLoopExitJumpsPastBody(t *testing.T) {
	exe := mustCompile(t, "INTEGER I\nFOR I = 1 TO 3\nPRINTLN I\nNEXT\nPRINTLN \"DONE\"")
	stmts := decode(t, exe)
	// LET, IF, PRINTLN, LET, GOTO, PRINTLN, END
	if stmts[1].Target != stmts[5].Offset() {
		t.Errorf("exit jumps to %d, want %d", stmts[1].Target, stmts[5].Offset())
	}
	if stmts[4].Target != stmts[1].Offset() {
		t.Errorf("back edge jumps to %d, want %d", stmts[4].Target, stmts[1].Offset())
	}
}

func TestFunctionLayout(t *testing.T) {
	src := "DECLARE FUNCTION TWICE(INTEGER X) INTEGER\n" +
		"DECLARE PROCEDURE SHOW(VAR INTEGER V, STRING S)\n" +
		"INTEGER R\n" +
		"R = TWICE(21)\n" +
		"SHOW(R, \"R\")\n" +
		"FUNCTION TWICE(INTEGER X) INTEGER\n" +
		"INTEGER T\n" +
		"T = X * 2\n" +
		"TWICE = T\n" +
		"ENDFUNC\n" +
		"PROCEDURE SHOW(VAR INTEGER V, STRING S)\n" +
		"PRINTLN S, V\n" +
		"ENDPROC"
	exe := mustCompile(t, src)

	fn, ok := exe.Variables.Function(2)
	if !ok {
		t.Fatalf("entry 2 is not a function")
	}
	if fn.Parameters != 1 || fn.Locals != 2 || fn.FirstVarID != 2 || fn.ReturnVar != 5 {
		t.Errorf("function = %s", fn)
	}
	proc, ok := exe.Variables.Function(6)
	if !ok {
		t.Fatalf("entry 6 is not a procedure")
	}
	if proc.Parameters != 2 || proc.Locals != 0 || !proc.IsByRef(0) || proc.IsByRef(1) {
		t.Errorf("procedure = %s", proc)
	}

	script := executable.DecodeScript(exe)
	i, ok := script.StatementAt(int(fn.StartOffset))
	if !ok {
		t.Fatalf("no statement at function start %d", fn.StartOffset)
	}
	if script.Statements[i].Op != executable.OP_LET {
		t.Errorf("function starts with %s", script.Statements[i].Op)
	}
	j, ok := script.StatementAt(int(proc.StartOffset))
	if !ok || script.Statements[j-1].Op != executable.OP_FEND {
		t.Errorf("procedure does not follow the function end")
	}
	if last := script.Statements[len(script.Statements)-1]; last.Op != executable.OP_FPCLR {
		t.Errorf("script ends with %s", last.Op)
	}
	if script.Statements[1].Op != executable.OP_PCALL || script.Statements[1].Target != 6 {
		t.Errorf("call = %s %d", script.Statements[1].Op, script.Statements[1].Target)
	}
}

func TestReturnValue(t *testing.T) {
	exe := mustCompile(t, "DECLARE FUNCTION F() INTEGER\nPRINTLN F()\nFUNCTION F() INTEGER\nRETURN 3\nENDFUNC")
	fn, _ := exe.Variables.Function(1)
	script := executable.DecodeScript(exe)
	i, _ := script.StatementAt(int(fn.StartOffset))
	let := script.Statements[i]
	if let.Op != executable.OP_LET {
		t.Fatalf("got %s, want LET of the result", let.Op)
	}
	if id, _ := executable.VariableID(let.Args[0]); id != int(fn.ReturnVar) {
		t.Errorf("RETURN writes %d, want result slot %d", id, fn.ReturnVar)
	}
	if script.Statements[i+1].Op != executable.OP_RETURN {
		t.Errorf("got %s after the assignment", script.Statements[i+1].Op)
	}
}

func TestFunctionCallStatementIsEval(t *testing.T) {
	exe := mustCompile(t, "DECLARE FUNCTION F() INTEGER\nF()\nFUNCTION F() INTEGER\nF = 1\nENDFUNC")
	stmts := decode(t, exe)
	if stmts[0].Op != executable.OP_EVAL {
		t.Errorf("got %s, want EVAL", stmts[0].Op)
	}
}

func TestProcedureWithoutDeclare(t *testing.T) {
	exe := mustCompile(t, "HELLO()\nPROCEDURE HELLO()\nPRINT \"X\"\nENDPROC\n")
	proc, ok := exe.Variables.Function(1)
	if !ok {
		t.Fatal("entry 1 is not a procedure")
	}
	stmts := decode(t, exe)
	if stmts[0].Op != executable.OP_PCALL || stmts[0].Target != 1 {
		t.Errorf("call = %s %d", stmts[0].Op, stmts[0].Target)
	}
	if stmts[1].Op != executable.OP_END {
		t.Errorf("main body ends with %s", stmts[1].Op)
	}
	if int(proc.StartOffset) != stmts[2].Offset() {
		t.Errorf("procedure starts at %d, want %d", proc.StartOffset, stmts[2].Offset())
	}
}

func TestRecursiveCall(t *testing.T) {
	exe := mustCompile(t, "PRINT FACT(3)\nFUNCTION FACT(INTEGER N) INTEGER\nFACT = N * FACT(N - 1)\nENDFUNC")
	fn, _ := exe.Variables.Function(1)
	script := executable.DecodeScript(exe)
	i, _ := script.StatementAt(int(fn.StartOffset))
	let := script.Statements[i]
	if id, _ := executable.VariableID(let.Args[0]); id != int(fn.ReturnVar) {
		t.Errorf("assignment writes %d, want result slot %d", id, fn.ReturnVar)
	}
	bin, ok := let.Args[1].(*executable.BinaryExpr)
	if !ok {
		t.Fatalf("value is %T", let.Args[1])
	}
	if call, ok := bin.Right.(*executable.FunctionCallExpr); !ok || call.ID != 1 {
		t.Errorf("right operand is %T, want a call of entry 1", bin.Right)
	}
}

func TestConstantsAreShared(t *testing.T) {
	exe := mustCompile(t, "INTEGER A\nA = 10\nA = 0AH\nA = 10 + 10\nPRINTLN \"X\", \"X\"")
	constants := 0
	for _, e := range exe.Variables.Entries() {
		if e.Role == executable.RoleConstant {
			constants++
		}
	}
	if constants != 2 {
		t.Errorf("got %d constants, want 2", constants)
	}
}

func TestUserVariables(t *testing.T) {
	exe := mustCompile(t, "GETUSER\nPRINTLN U_CITY")
	e, _ := exe.Variables.Entry(1)
	if e.Name != "U_EXPERT" || e.Role != executable.RoleUserVariable {
		t.Errorf("entry 1 = %q %s", e.Name, e.Role)
	}

	exe = mustCompile(t, "STRING U_CITY\nU_CITY = \"X\"")
	if e, _ := exe.Variables.Entry(1); e.Name != "U_CITY" || e.Role != executable.RoleVariable {
		t.Errorf("declared U_CITY = %q %s", e.Name, e.Role)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diagnostics.ErrorCode
	}{
		{"unknown variable", "A = 1", diagnostics.ErrC001},
		{"unknown procedure", "FOO(1)", diagnostics.ErrC002},
		{"missing label", "GOTO NOWHERE", diagnostics.ErrC003},
		{"argument count", "DECLARE PROCEDURE P(INTEGER A)\nP(1, 2)\nPROCEDURE P(INTEGER A)\nENDPROC", diagnostics.ErrC004},
		{"break outside loop", "BREAK", diagnostics.ErrC006},
		{"continue outside loop", "CONTINUE", diagnostics.ErrC006},
		{"var argument", "DECLARE PROCEDURE P(VAR INTEGER A)\nP(1)\nPROCEDURE P(VAR INTEGER A)\nENDPROC", diagnostics.ErrC008},
		{"predefined var argument", "INPUT \"X\", 5", diagnostics.ErrC008},
		{"duplicate variable", "INTEGER A\nSTRING A", diagnostics.ErrC009},
		{"not implemented", "DECLARE PROCEDURE P()\nP()", diagnostics.ErrC010},
		{"duplicate label", ":A\n:A", diagnostics.ErrC012},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := compile(t, tt.src)
			for _, err := range errs {
				if err.Code == tt.code {
					return
				}
			}
			t.Errorf("expected %s, got %v", tt.code, errs)
		})
	}
}

func TestFunctionsNeedVersion300(t *testing.T) {
	ctx := &pipeline.PipelineContext{
		SourceCode:      "DECLARE PROCEDURE P()\nP()\nPROCEDURE P()\nENDPROC",
		LanguageVersion: 400,
	}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("parse: %v", ctx.Errors)
	}
	_, errs := compiler.Compile(ctx.AstRoot, compiler.Options{Version: 200})
	if len(errs) == 0 || errs[0].Code != diagnostics.ErrC005 {
		t.Errorf("got %v, want C005", errs)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	src := "DECLARE FUNCTION SQ(INTEGER X) INTEGER\n" +
		"INTEGER I\nSTRING S = \"N=\"\n" +
		"FOR I = 1 TO 5 STEP 2\nPRINTLN S, SQ(I)\nNEXT\n" +
		"FUNCTION SQ(INTEGER X) INTEGER\nSQ = X * X\nENDFUNC"
	exe := mustCompile(t, src)
	data, err := exe.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := executable.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Variables.Len() != exe.Variables.Len() {
		t.Fatalf("got %d entries back, want %d", back.Variables.Len(), exe.Variables.Len())
	}
	if !equalOps(ops(decode(t, back)), ops(decode(t, exe))) {
		t.Errorf("code changed across marshal")
	}
	// I and S come first, SQ is entry 3
	fn, ok := back.Variables.Function(3)
	orig, _ := exe.Variables.Function(3)
	if !ok || orig == nil {
		t.Fatal("no function at entry 3")
	}
	if *fn != *orig {
		t.Errorf("function info %s, want %s", fn, orig)
	}
}

func TestProcessorSkipsAfterErrors(t *testing.T) {
	ctx := &pipeline.PipelineContext{SourceCode: "PRINTLN (("}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}, &compiler.CompilerProcessor{}).Run(ctx)
	if ctx.Executable != nil {
		t.Error("executable generated from a program with parse errors")
	}

	ctx = &pipeline.PipelineContext{SourceCode: "PRINTLN 1", FilePath: "a.pps"}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}, &compiler.CompilerProcessor{}).Run(ctx)
	if ctx.HasErrors() || ctx.Executable == nil {
		t.Fatalf("errors: %v", ctx.Errors)
	}
}
