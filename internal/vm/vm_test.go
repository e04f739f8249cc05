package vm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/ppl/internal/compiler"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/lexer"
	"github.com/funvibe/ppl/internal/parser"
	"github.com/funvibe/ppl/internal/pipeline"
)

// testHost records what a script displays and answers input from a queue
type testHost struct {
	dir     string
	out     strings.Builder
	writes  int
	inputs  []string
	prompts []string
	keys    []string
	scripts []string
}

func (h *testHost) Display(text string) error {
	h.writes++
	h.out.WriteString(text)
	return nil
}

func (h *testHost) Input(prompt string, opts InputOptions) (string, error) {
	h.prompts = append(h.prompts, prompt)
	if len(h.inputs) == 0 {
		return opts.Default, nil
	}
	s := h.inputs[0]
	h.inputs = h.inputs[1:]
	return s, nil
}

func (h *testHost) ReadKey() (string, error) {
	if len(h.keys) == 0 {
		return "", nil
	}
	k := h.keys[0]
	h.keys = h.keys[1:]
	return k, nil
}

func (h *testHost) RunScript(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	h.scripts = append(h.scripts, path)
	return nil
}

func (h *testHost) ResolvePath(path string) string {
	if h.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(h.dir, path)
}

// extHost additionally takes the statements and functions the VM leaves to the host
type extHost struct {
	*testHost
	statements []executable.OpCode
}

func (h *extHost) CallStatement(op executable.OpCode, args []executable.Value) error {
	h.statements = append(h.statements, op)
	return nil
}

func (h *extHost) CallFunction(op executable.FuncOpCode, args []executable.Value) (executable.Value, error) {
	if op == executable.FN_U_NAME {
		return executable.NewString("SYSOP"), nil
	}
	return executable.Value{}, errors.New("not here either")
}

// confInfo answers the Name field and knows no methods
type confInfo struct {
	name    string
	shown   int
	lastArg executable.Value
}

func (c *confInfo) GetField(name string) (executable.Value, error) {
	if strings.EqualFold(name, "Name") {
		return executable.NewString(c.name), nil
	}
	return executable.Value{}, ErrUnknownMember
}

func (c *confInfo) SetField(name string, v executable.Value) error {
	if !strings.EqualFold(name, "Name") {
		return ErrUnknownMember
	}
	c.name = v.AsString()
	return nil
}

func (c *confInfo) CallFunction(name string, args []executable.Value) (executable.Value, error) {
	return executable.Value{}, ErrUnknownMember
}

func (c *confInfo) CallMethod(name string, args []executable.Value) error {
	if !strings.EqualFold(name, "Show") {
		return ErrUnknownMember
	}
	c.shown++
	if len(args) > 0 {
		c.lastArg = args[0]
	}
	return nil
}

type provider map[string]UserData

func (p provider) Object(typeName string) (UserData, error) {
	obj, ok := p[typeName]
	if !ok {
		return nil, ErrUnknownMember
	}
	return obj, nil
}

func confRegistry(t *testing.T) *executable.TypeRegistry {
	t.Helper()
	r := executable.NewTypeRegistry()
	_, err := r.Register("ConfInfo",
		executable.Member{Name: "Name", Kind: executable.MemberField, Type: executable.TypeString},
		executable.Member{Name: "Missing", Kind: executable.MemberFunction, Type: executable.TypeInteger},
		executable.Member{Name: "Show", Kind: executable.MemberProcedure, Params: []executable.VariableType{executable.TypeInteger}},
	)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return r
}

func compile(t *testing.T, src string, registry *executable.TypeRegistry) *executable.Executable {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: src, Registry: registry}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}, &compiler.CompilerProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("compile %q: %v", src, ctx.Errors)
	}
	return ctx.Executable
}

func run(t *testing.T, src string) (*testHost, error) {
	t.Helper()
	h := &testHost{dir: t.TempDir()}
	err := New(compile(t, src, nil), h, WithSeed(1)).Run(context.Background())
	return h, err
}

func mustRun(t *testing.T, src string) string {
	t.Helper()
	h, err := run(t, src)
	if err != nil {
		t.Fatalf("run %q: %v", src, err)
	}
	return h.out.String()
}

func kindOf(err error) (ErrorKind, bool) {
	var rt *Error
	if errors.As(err, &rt) {
		return rt.Kind, true
	}
	return 0, false
}

func TestPrintDisplaysOnceAndHalts(t *testing.T) {
	h, err := run(t, "PRINT \"HELLO\"")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.out.String() != "HELLO" || h.writes != 1 {
		t.Errorf("got %q in %d writes, want HELLO once", h.out.String(), h.writes)
	}
}

func TestIfElseTakesOneBranch(t *testing.T) {
	out := mustRun(t, "INTEGER I\nI = 1\nIF (I = 1) THEN\nPRINT \"A\"\nELSE\nPRINT \"B\"\nENDIF")
	if out != "A" {
		t.Errorf("got %q, want A", out)
	}
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"arithmetic", "INTEGER A\nA = 1 + 2 * 3\nPRINT A", "7"},
		{"string concat", "STRING S\nS = \"A\" + 1\nPRINT S", "A1"},
		{"for", "INTEGER I\nFOR I = 1 TO 3\nPRINT I\nNEXT", "123"},
		{"while", "INTEGER I\nWHILE (I < 3) DO\nI = I + 1\nPRINT I\nENDWHILE", "123"},
		{"repeat", "INTEGER I\nREPEAT\nINC I\nUNTIL I >= 2\nPRINT I", "2"},
		{"select", "INTEGER A\nA = 4\nSELECT CASE A\nCASE 1, 3..5\nPRINT \"X\"\nCASE ELSE\nPRINT \"Y\"\nENDSELECT", "X"},
		{"gosub", "PRINT \"A\"\nGOSUB SUB\nPRINT \"C\"\nEND\n:SUB\nPRINT \"B\"\nRETURN", "ABC"},
		{"println", "PRINTLN \"A\", 1\nPRINT \"B\"", "A1\nB"},
		{
			"function",
			"DECLARE FUNCTION TWICE(INTEGER X) INTEGER\nPRINT TWICE(21)\n" +
				"FUNCTION TWICE(INTEGER X) INTEGER\nTWICE = X * 2\nENDFUNC",
			"42",
		},
		{
			"recursion",
			"DECLARE FUNCTION FACT(INTEGER N) INTEGER\nPRINT FACT(5)\n" +
				"FUNCTION FACT(INTEGER N) INTEGER\nIF (N <= 1) THEN\nFACT = 1\nELSE\nFACT = N * FACT(N - 1)\nENDIF\nENDFUNC",
			"120",
		},
		{
			"locals are restored",
			"DECLARE FUNCTION F(INTEGER N) INTEGER\nINTEGER X\nX = 5\nPRINT F(1), X\n" +
				"FUNCTION F(INTEGER N) INTEGER\nINTEGER X\nX = N + 1\nF = X\nENDFUNC",
			"25",
		},
		{
			"var parameter",
			"INTEGER R\nR = 1\nBUMP(R)\nPRINT R\nPROCEDURE BUMP(VAR INTEGER V)\nV = V + 10\nENDPROC",
			"11",
		},
		{
			"value parameter",
			"INTEGER R\nR = 1\nBUMP(R)\nPRINT R\nPROCEDURE BUMP(INTEGER V)\nV = V + 10\nENDPROC",
			"1",
		},
		{
			"procedure without declare",
			"HELLO()\nPROCEDURE HELLO()\nPRINT \"X\"\nENDPROC\n",
			"X",
		},
		{
			"parameterless function",
			"DECLARE FUNCTION ONE() INTEGER\nPRINT ONE()\nFUNCTION ONE() INTEGER\nONE = 1\nENDFUNC",
			"1",
		},
		{
			"return with a value",
			"PRINT SIGN(-4), SIGN(4)\nFUNCTION SIGN(INTEGER N) INTEGER\nIF (N < 0) THEN\nRETURN -1\nENDIF\nRETURN 1\nENDFUNC",
			"-11",
		},
		{"strings", "PRINT MID(\"HELLO\", 2, 3), LEFT(\"AB\", 3), \"|\", RIGHT(\"HELLO\", 2), UPPER(\"x\"), LEN(\"ABC\")", "ELLAB |LOX3"},
		{"instr", "PRINT INSTR(\"ABCABC\", \"C\"), INSTR(\"ABC\", \"\")", "30"},
		{"trim", "PRINT TRIM(\"..A..\", \".\"), LTRIM(\"  B\", \" \")", "AB"},
		{"push pop", "INTEGER A, B\nPUSH 1, 2\nPOP A, B\nPRINT A, B", "21"},
		{"tokens", "STRING S\nTOKENIZE \"A B;C\"\nPRINT TOKCOUNT()\nGETTOKEN S\nPRINT S, TOKENSTR(), TOKCOUNT()", "3AB;C0"},
		{"arrays", "INTEGER V(2)\nV(1) = 7\nV(5) = 9\nPRINT V(1), V(5)", "70"},
		{"sort", "INTEGER V(2), X(2)\nV(0) = 30\nV(1) = 10\nV(2) = 20\nSORT V, X\nPRINT X(0), X(1), X(2)", "120"},
		{"bits", "INTEGER A\nBITSET A, 3\nPRINT A, ISBITSET(A, 3)\nBITCLEAR A, 3\nPRINT A", "810"},
		{"conversions", "PRINT I2S(255, 16), S2I(\"FF\", 16), TOINTEGER(\"12ab\")", "FF25512"},
		{"freshline", "PRINT \"A\"\nFRESHLINE\nFRESHLINE\nPRINT \"B\"", "A\nB"},
		{"getenv", "SETENV \"PPL_TEST=ON\"\nPRINT GETENV(\"ppl_test\")", "ON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"division by zero", "INTEGER A\nA = 1 / A", KindDivisionByZero},
		{"pop from empty stack", "INTEGER A\nPOP A", KindPushPopStackEmpty},
		{"channel not open", "STRING S\nFGET 3, S", KindFileChannelNotOpen},
		{"missing script", "CALL \"nothere.ppe\"", KindFileNotFound},
		{"unsupported statement", "HANGUP", KindFunctionCall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.src)
			kind, ok := kindOf(err)
			if !ok || kind != tt.kind {
				t.Errorf("got %v, want %s", err, tt.kind)
			}
		})
	}
}

func TestUnsupportedStatementWrapsSentinel(t *testing.T) {
	_, err := run(t, "HANGUP")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}

func TestStopAbortsTheRun(t *testing.T) {
	h, err := run(t, "PRINT \"A\"\nSTOP\nPRINT \"B\"")
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("got %v, want ErrStopped", err)
	}
	if h.out.String() != "A" {
		t.Errorf("got %q", h.out.String())
	}
}

func TestEndIsNotAnError(t *testing.T) {
	out := mustRun(t, "PRINT \"A\"\nEND\nPRINT \"B\"")
	if out != "A" {
		t.Errorf("got %q", out)
	}
}

func TestCanceledContext(t *testing.T) {
	exe := compile(t, ":TOP\nGOTO TOP", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(exe, &testHost{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestUserDataMembers(t *testing.T) {
	reg := confRegistry(t)
	exe := compile(t, "CONFINFO C\nINTEGER R\nR = C.MISSING()\nPRINT R, C.NAME\nC.NAME(\"Sysop\")\nC.SHOW(7)\nPRINT C.NAME", reg)
	conf := &confInfo{name: "Main"}
	h := &testHost{}
	err := New(exe, h, WithRegistry(reg), WithUserDataProvider(provider{"CONFINFO": conf})).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := h.out.String(); got != "-1MainSysop" {
		t.Errorf("got %q, want -1MainSysop", got)
	}
	if conf.shown != 1 || conf.lastArg.AsInt() != 7 {
		t.Errorf("Show called %d times with %v", conf.shown, conf.lastArg)
	}
}

func TestUserDataWithoutObject(t *testing.T) {
	reg := confRegistry(t)
	exe := compile(t, "CONFINFO C\nPRINT C.NAME", reg)
	err := New(exe, &testHost{}, WithRegistry(reg)).Run(context.Background())
	if kind, ok := kindOf(err); !ok || kind != KindNoObjectFound {
		t.Errorf("got %v, want %s", err, KindNoObjectFound)
	}
}

func TestExtendedHost(t *testing.T) {
	h := &extHost{testHost: &testHost{}}
	exe := compile(t, "HANGUP\nPRINT U_NAME()", nil)
	if err := New(exe, h).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(h.statements) != 1 || h.statements[0] != executable.OP_HANGUP {
		t.Errorf("host got %v", h.statements)
	}
	if h.out.String() != "SYSOP" {
		t.Errorf("got %q", h.out.String())
	}
}

func TestInput(t *testing.T) {
	h := &testHost{inputs: []string{"BOB", "y"}}
	exe := compile(t, "STRING S, A\nINPUT \"NAME\", S\nINPUTYN \"OK\", A, 7\nPRINT S, A", nil)
	if err := New(exe, h).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.out.String() != "BOBY" {
		t.Errorf("got %q", h.out.String())
	}
	if len(h.prompts) != 2 || h.prompts[0] != "NAME" {
		t.Errorf("prompts %v", h.prompts)
	}
}

func TestFileChannels(t *testing.T) {
	src := "STRING S, T\n" +
		"FCREATE 1, \"out.txt\", 1, 0\n" +
		"FPUTLN 1, \"HELLO\"\n" +
		"FPUT 1, \"WORLD\"\n" +
		"FCLOSE 1\n" +
		"FOPEN 2, \"out.txt\", 0, 0\n" +
		"FGET 2, S\n" +
		"FGET 2, T\n" +
		"PRINT S, \"|\", T, FERR(2)\n" +
		"FGET 2, T\n" +
		"PRINT FERR(2), EXIST(\"out.txt\"), EXIST(\"none.txt\")\n" +
		"FCLOSE 2"
	h, err := run(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := h.out.String(); got != "HELLO|WORLD0110" {
		t.Errorf("got %q", got)
	}
	data, err := os.ReadFile(filepath.Join(h.dir, "out.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "HELLO\r\nWORLD" {
		t.Errorf("file holds %q", data)
	}
}

func TestOpenFailureSetsFerr(t *testing.T) {
	out := mustRun(t, "FOPEN 1, \"missing.txt\", 0, 0\nPRINT FERR(1)")
	if out != "1" {
		t.Errorf("got %q", out)
	}
}

func TestCallRunsHostScript(t *testing.T) {
	h := &testHost{dir: t.TempDir()}
	if err := os.WriteFile(filepath.Join(h.dir, "other.ppe"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	exe := compile(t, "CALL \"other.ppe\"", nil)
	if err := New(exe, h).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(h.scripts) != 1 || filepath.Base(h.scripts[0]) != "other.ppe" {
		t.Errorf("scripts %v", h.scripts)
	}
}

func TestRandomIsSeeded(t *testing.T) {
	exe := compile(t, "INTEGER I\nFOR I = 1 TO 5\nPRINT RANDOM(100), \",\"\nNEXT", nil)
	first, second := &testHost{}, &testHost{}
	if err := New(exe, first, WithSeed(42)).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := New(exe, second, WithSeed(42)).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if first.out.String() != second.out.String() {
		t.Errorf("%q != %q", first.out.String(), second.out.String())
	}
}

func TestRunDoesNotModifyExecutable(t *testing.T) {
	exe := compile(t, "INTEGER A\nA = 5", nil)
	m := New(exe, &testHost{})
	if err := m.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Value(1); v.AsInt() != 5 {
		t.Errorf("A = %v", v)
	}
	if e, _ := exe.Variables.Entry(1); e.Value.AsInt() != 0 {
		t.Errorf("table value changed to %v", e.Value)
	}
}
