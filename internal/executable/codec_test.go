package executable

import (
	"reflect"
	"slices"
	"testing"
)

// testExecutable builds a table with one of each kind of entry:
//
//	1 Integer variable, 2 String constant, 3 Integer array(10),
//	4 procedure(1 param) with 5 its parameter,
//	6 function(1 param) with 7 its parameter and 8 its result
func testExecutable(version int) *Executable {
	exe := New(version)
	v := &exe.Variables
	v.Push(TableEntry{Header: VarHeader{Type: TypeInteger}, Role: RoleVariable, Value: NewInt(0), Name: "I"})
	v.Push(TableEntry{Header: VarHeader{Type: TypeString}, Role: RoleConstant, Value: NewString("HELLO")})
	v.Push(TableEntry{Header: VarHeader{Type: TypeInteger, Dim: 1, Vector: 10}, Role: RoleVariable, Value: NewArray(TypeInteger, 1, 10, 0, 0), Name: "ARR"})
	v.Push(TableEntry{Header: VarHeader{Type: TypeProcedure}, Role: RoleProcedure, Name: "P",
		Function: &FunctionInfo{Parameters: 1, FirstVarID: 4, PassFlags: 1}})
	v.Push(TableEntry{Header: VarHeader{Type: TypeInteger}, Role: RoleParameter, FunctionID: 4, Name: "X", Value: NewInt(0)})
	v.Push(TableEntry{Header: VarHeader{Type: TypeFunction}, Role: RoleFunction, Name: "F",
		Function: &FunctionInfo{Parameters: 1, Locals: 1, FirstVarID: 6, ReturnVar: 8}})
	v.Push(TableEntry{Header: VarHeader{Type: TypeInteger}, Role: RoleParameter, FunctionID: 6, Name: "Y", Value: NewInt(0)})
	v.Push(TableEntry{Header: VarHeader{Type: TypeInteger}, Role: RoleFunctionResult, FunctionID: 6, Name: "F", Value: NewInt(0)})
	return exe
}

func val(id int) PPEExpr { return &ValueExpr{ID: id} }

func TestExpressionEncoding(t *testing.T) {
	tests := []struct {
		name string
		expr PPEExpr
		want []int16
	}{
		{"value", val(5), []int16{5, 0, 0}},
		{"call without args", &FunctionCallExpr{ID: 6}, []int16{6, 0, 0}},
		{"call", &FunctionCallExpr{ID: 7, Args: []PPEExpr{val(5)}}, []int16{7, 0, 5, 0, 0, 0}},
		{"dim", &DimExpr{ID: 3, Dims: []PPEExpr{val(1)}}, []int16{3, 1, 1, 0, 0, 0}},
		{"binary", &BinaryExpr{Op: FN_PLUS, Left: val(1), Right: val(2)}, []int16{1, 0, 2, 0, FN_PLUS.Word(), 0}},
		{"predefined", &PredefinedCallExpr{Func: FN_LEN, Args: []PPEExpr{val(2)}}, []int16{2, 0, FN_LEN.Word(), 0}},
		{"member", &MemberExpr{Expr: val(1), ID: 3}, []int16{1, 0, FN_MEMBERREFERENCE.Word(), 3, 0}},
		{"member call", &MemberCallExpr{Expr: val(1), Args: []PPEExpr{val(2)}, ID: 3},
			[]int16{1, 0, 2, 0, FN_MEMBERCALL.Word(), 1, 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeExpression(tt.expr); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func roundTrip(t *testing.T, exe *Executable, stmt *Statement) {
	t.Helper()
	words, err := EncodeStatement(stmt)
	if err != nil {
		t.Fatalf("encode %s: %v", stmt.Op, err)
	}
	exe.Script = words
	got, next, err := DecodeStatement(exe, 0)
	if err != nil {
		t.Fatalf("decode %s %v: %v", stmt.Op, words, err)
	}
	if next != len(words) {
		t.Errorf("%s: decoder stopped at %d of %d words", stmt.Op, next, len(words))
	}
	want := *stmt
	want.Span = Span{0, len(words)}
	if !reflect.DeepEqual(got, &want) {
		t.Errorf("%s: round trip mismatch\n got  %#v\n want %#v", stmt.Op, got, &want)
	}
}

func TestStatementRoundTrip(t *testing.T) {
	exe := testExecutable(340)
	sum := &BinaryExpr{Op: FN_PLUS, Left: val(1), Right: &FunctionCallExpr{ID: 6, Args: []PPEExpr{val(1)}}}
	elem := &DimExpr{ID: 3, Dims: []PPEExpr{&BinaryExpr{Op: FN_MINUS, Left: val(1), Right: val(1)}}}
	member := &MemberCallExpr{Expr: val(1), Args: []PPEExpr{val(2), &UnaryExpr{Op: FN_NOT, Expr: val(1)}}, ID: 5}

	tests := []*Statement{
		{Op: OP_END},
		{Op: OP_RETURN},
		{Op: OP_STOP},
		{Op: OP_FEND},
		{Op: OP_FPCLR},
		{Op: OP_GOTO, Target: 0x20},
		{Op: OP_GOSUB, Target: 4},
		{Op: OP_IFNOT, Args: []PPEExpr{&BinaryExpr{Op: FN_EQ, Left: val(1), Right: val(2)}}, Target: 10},
		{Op: OP_LET, Args: []PPEExpr{val(1), sum}},
		{Op: OP_LET, Args: []PPEExpr{elem, &PredefinedCallExpr{Func: FN_MID, Args: []PPEExpr{val(2), val(1), val(1)}}}},
		{Op: OP_PCALL, Target: 4, Args: []PPEExpr{val(1)}},
		{Op: OP_PRINTLN, Args: []PPEExpr{val(2), member, &PredefinedCallExpr{Func: FN_DATE}}},
		{Op: OP_PRINTLN},
		{Op: OP_INPUT, Args: []PPEExpr{val(2), val(1)}},
		{Op: OP_REDIM, Args: []PPEExpr{val(3), val(1)}},
		{Op: OP_SORT, Args: []PPEExpr{val(3), val(3)}},
		{Op: OP_VARSEG, Args: []PPEExpr{val(1), elem}},
		{Op: OP_POP, Args: []PPEExpr{val(1), elem}},
		{Op: OP_DCREATE, Args: []PPEExpr{val(2), val(1), val(1), val(3)}},
		{Op: OP_DLOCKG, Args: []PPEExpr{val(2), val(3), val(1)}},
		{Op: OP_EVAL, Args: []PPEExpr{&MemberExpr{Expr: val(1), ID: 2}}},
		{Op: OP_GETUSER},
	}
	for _, stmt := range tests {
		roundTrip(t, exe, stmt)
	}
}

func TestEncodeRejectsNonVariableTargets(t *testing.T) {
	bad := []*Statement{
		{Op: OP_LET, Args: []PPEExpr{&FunctionCallExpr{ID: 6}, val(1)}},
		{Op: OP_SORT, Args: []PPEExpr{elemOf(3), val(3)}},
		{Op: OP_LET, Args: []PPEExpr{val(1)}},
	}
	for _, stmt := range bad {
		if _, err := EncodeStatement(stmt); err == nil {
			t.Errorf("%s %v: expected an error", stmt.Op, stmt.Args)
		}
	}
}

func elemOf(id int) PPEExpr { return &DimExpr{ID: id, Dims: []PPEExpr{val(1)}} }

func TestDecodeErrorsResume(t *testing.T) {
	exe := testExecutable(340)
	good, _ := EncodeStatement(&Statement{Op: OP_PRINTLN, Args: []PPEExpr{val(2)}})
	exe.Script = append([]int16{int16(LastOpCode) + 5}, good...)
	exe.Script = append(exe.Script, int16(OP_END))

	script := DecodeScript(exe)
	if len(script.Errors) != 1 || script.Errors[0].Kind != InvalidStatement {
		t.Fatalf("errors = %v", script.Errors)
	}
	if got := script.Errors[0].Span; got != (Span{0, 1}) {
		t.Errorf("error span = %v", got)
	}
	if len(script.Statements) != 2 || script.Statements[0].Op != OP_PRINTLN || script.Statements[1].Op != OP_END {
		t.Fatalf("statements = %v", script.Statements)
	}
	if i, ok := script.StatementAt(2); !ok || i != 0 {
		t.Errorf("StatementAt(2) = %d, %v", i, ok)
	}
}

func TestDecodeSkipsOperandsOfBrokenStatement(t *testing.T) {
	exe := testExecutable(340)
	let, _ := EncodeStatement(&Statement{Op: OP_LET, Args: []PPEExpr{val(1), val(2)}})
	show, _ := EncodeStatement(&Statement{Op: OP_PRINTLN, Args: []PPEExpr{val(2)}})
	// the operands 1 0 2 0 0 read as END followed by a zero word
	let[0] = int16(LastOpCode) + 5
	exe.Script = append(append(let, show...), int16(OP_END))

	script := DecodeScript(exe)
	if len(script.Errors) != 1 {
		t.Fatalf("errors = %v", script.Errors)
	}
	if len(script.Statements) != 2 || script.Statements[0].Op != OP_PRINTLN || script.Statements[1].Op != OP_END {
		t.Fatalf("statements = %v", script.Statements)
	}
	if got := script.Statements[0].Span.Start; got != len(let) {
		t.Errorf("PRINTLN decoded at word %d, want %d", got, len(let))
	}
}

func TestDecodeStopsAtTrailingZeros(t *testing.T) {
	exe := testExecutable(340)
	show, _ := EncodeStatement(&Statement{Op: OP_PRINTLN, Args: []PPEExpr{val(2)}})
	exe.Script = append([]int16{int16(LastOpCode) + 5}, show...)
	exe.Script = append(exe.Script, 0, 0)

	script := DecodeScript(exe)
	if len(script.Errors) != 1 || len(script.Statements) != 1 || script.Statements[0].Op != OP_PRINTLN {
		t.Fatalf("statements = %v, errors = %v", script.Statements, script.Errors)
	}
}

func TestDecodeTruncated(t *testing.T) {
	exe := testExecutable(340)
	exe.Script = []int16{int16(OP_LET), 1, 0, 2}
	_, _, err := DecodeStatement(exe, 0)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != UnexpectedEnd {
		t.Fatalf("err = %v", err)
	}
}

func TestAnalyzeUsagePromotesConstants(t *testing.T) {
	exe := testExecutable(340)
	exe.Variables.entries[0].Role = RoleConstant
	script := &Script{Statements: []*Statement{
		{Op: OP_INPUT, Args: []PPEExpr{val(2), val(1)}},
		{Op: OP_PCALL, Target: 4, Args: []PPEExpr{val(3)}},
	}}
	exe.Variables.entries[2].Role = RoleConstant
	exe.Variables.analyzeUsage(script)
	if r := exe.Variables.entries[0].Role; r != RoleVariable {
		t.Errorf("INPUT target role = %s", r)
	}
	if r := exe.Variables.entries[1].Role; r != RoleConstant {
		t.Errorf("prompt role = %s", r)
	}
	if r := exe.Variables.entries[2].Role; r != RoleVariable {
		t.Errorf("VAR argument role = %s", r)
	}
}
