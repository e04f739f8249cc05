package executable

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func encodeAll(t *testing.T, stmts ...*Statement) []int16 {
	t.Helper()
	var words []int16
	for _, s := range stmts {
		var err error
		if words, err = appendStatement(words, s); err != nil {
			t.Fatalf("encode %s: %v", s.Op, err)
		}
	}
	return words
}

func assertSameTable(t *testing.T, got, want *Executable) {
	t.Helper()
	if got.Variables.Len() != want.Variables.Len() {
		t.Fatalf("variable count = %d, want %d", got.Variables.Len(), want.Variables.Len())
	}
	for i, w := range want.Variables.Entries() {
		g := got.Variables.Entries()[i]
		if g.Header != w.Header {
			t.Errorf("entry %d header = %s, want %s", i+1, g.Header, w.Header)
		}
		if (g.Function == nil) != (w.Function == nil) || (w.Function != nil && *g.Function != *w.Function) {
			t.Errorf("entry %d function = %v, want %v", i+1, g.Function, w.Function)
		}
		if w.Value.IsArray() {
			if !g.Value.IsArray() {
				t.Errorf("entry %d lost its array storage", i+1)
			}
			continue
		}
		if w.Function == nil && !g.Value.Equal(w.Value) {
			t.Errorf("entry %d value = %s, want %s", i+1, g.Value, w.Value)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, version := range []int{200, 300, 310, 330, 340, 400} {
		exe := testExecutable(version)
		v := &exe.Variables
		v.Push(TableEntry{Header: VarHeader{Type: TypeDouble}, Value: NewDouble(3.25)})
		v.Push(TableEntry{Header: VarHeader{Type: TypeMoney}, Value: NewMoney(-142)})
		v.Push(TableEntry{Header: VarHeader{Type: TypeString}, Value: NewString("Grüße ░▒▓")})
		v.Push(TableEntry{Header: VarHeader{Type: TypeString, Dim: 2, Vector: 3, Matrix: 4}, Value: NewArray(TypeString, 2, 3, 4, 0)})
		v.Push(TableEntry{Header: VarHeader{Type: TypeDate, Flags: FlagStatic}, Value: NewDate(64648)})

		var stmts []*Statement
		for range 1500 {
			stmts = append(stmts, &Statement{Op: OP_PRINTLN, Args: []PPEExpr{val(2), val(9)}})
		}
		stmts = append(stmts,
			&Statement{Op: OP_LET, Args: []PPEExpr{val(1), &FunctionCallExpr{ID: 6, Args: []PPEExpr{val(1)}}}},
			&Statement{Op: OP_SORT, Args: []PPEExpr{val(3), val(3)}},
			&Statement{Op: OP_END},
		)
		exe.Script = encodeAll(t, stmts...)

		data, err := exe.Marshal()
		if err != nil {
			t.Fatalf("%d: Marshal: %v", version, err)
		}
		wantHeader := "PCBoard Programming Language Executable  " + string(rune('0'+version/100)) + "."
		if !strings.HasPrefix(string(data[:HeaderSize]), wantHeader) || !bytes.HasSuffix(data[:HeaderSize], []byte("\r\n\x1a")) {
			t.Fatalf("%d: header = %q", version, data[:HeaderSize])
		}

		got, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("%d: Unmarshal: %v", version, err)
		}
		if got.Version != version {
			t.Errorf("version = %d, want %d", got.Version, version)
		}
		assertSameTable(t, got, exe)
		if !slices.Equal(got.Script, exe.Script) {
			t.Errorf("%d: script differs (%d vs %d words)", version, len(got.Script), len(exe.Script))
		}
	}
}

func TestMarshalVersion100(t *testing.T) {
	exe := New(100)
	exe.Variables.Push(TableEntry{Header: VarHeader{Type: TypeInteger}, Value: NewInt(-7)})
	exe.Variables.Push(TableEntry{Header: VarHeader{Type: TypeString}, Value: NewString("HELLO")})
	exe.Script = encodeAll(t, &Statement{Op: OP_PRINTLN, Args: []PPEExpr{val(2), val(1)}}, &Statement{Op: OP_END})

	data, err := exe.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	assertSameTable(t, got, exe)
	if !slices.Equal(got.Script, exe.Script) {
		t.Errorf("script = %v, want %v", got.Script, exe.Script)
	}
}

func TestUnmarshalNamesEntries(t *testing.T) {
	exe := testExecutable(340)
	exe.Script = encodeAll(t,
		&Statement{Op: OP_LET, Args: []PPEExpr{val(1), val(2)}},
		&Statement{Op: OP_PCALL, Target: 4, Args: []PPEExpr{val(1)}},
		&Statement{Op: OP_END},
	)
	data, err := exe.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]string{1: "VAR001", 2: "#2", 4: "PROC001", 5: "PAR001", 6: "FUNC001", 7: "PAR002", 8: "FUNC001"}
	for id, name := range want {
		if n := got.Variables.Name(id); n != name {
			t.Errorf("name of %d = %q, want %q", id, n, name)
		}
	}
	if e, _ := got.Variables.Entry(8); e.Role != RoleFunctionResult {
		t.Errorf("role of 8 = %s", e.Role)
	}
}

func TestUserVariablesRecognised(t *testing.T) {
	exe := New(340)
	for _, u := range UserVariablesFor(340) {
		exe.Variables.Push(TableEntry{Header: u.Header(), Role: RoleUserVariable, Value: u.Header().NewValue()})
	}
	exe.Script = encodeAll(t, &Statement{Op: OP_GETUSER}, &Statement{Op: OP_END})
	data, err := exe.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Variables.HasUserVars() {
		t.Fatal("user variables not recognised")
	}
	if n := got.Variables.Name(1); n != "U_EXPERT" {
		t.Errorf("first name = %q", n)
	}
	if n := got.Variables.Name(len(UserVariables)); n != "U_WEB" {
		t.Errorf("last name = %q", n)
	}
}

func TestUnmarshalRejects(t *testing.T) {
	if _, err := Unmarshal([]byte("not a ppe")); !errors.Is(err, ErrInvalidPPEFile) {
		t.Errorf("garbage: err = %v", err)
	}

	exe := New(340)
	exe.Script = []int16{int16(OP_END)}
	data, _ := exe.Marshal()
	data[41], data[43] = '4', '1'
	if _, err := Unmarshal(data); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("4.10: err = %v", err)
	}

	data, _ = exe.Marshal()
	if _, err := Unmarshal(data[:HeaderSize+1]); !errors.Is(err, ErrBufferTooShort) {
		t.Errorf("truncated: err = %v", err)
	}
}

func TestMarshalRejectsLongString(t *testing.T) {
	exe := New(340)
	exe.Variables.Push(TableEntry{Header: VarHeader{Type: TypeString}, Value: NewString(strings.Repeat("x", 70000))})
	if _, err := exe.Marshal(); !errors.Is(err, ErrStringTooLong) {
		t.Errorf("err = %v", err)
	}
}

func TestDisassemble(t *testing.T) {
	exe := testExecutable(340)
	exe.Script = encodeAll(t,
		&Statement{Op: OP_LET, Args: []PPEExpr{val(1), &BinaryExpr{Op: FN_PLUS, Left: val(1), Right: val(2)}}},
		&Statement{Op: OP_PCALL, Target: 4, Args: []PPEExpr{val(1)}},
		&Statement{Op: OP_END},
	)
	exe.Script = append(exe.Script, int16(LastOpCode)+1)

	var buf bytes.Buffer
	if err := Disassemble(&buf, exe, DisasmOptions{Variables: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`LET I = (I + "HELLO")`, "PCALL P(I)", "END", "0004 P", "ERROR InvalidStatement"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("colour codes written to a buffer")
	}

	buf.Reset()
	if err := Disassemble(&buf, exe, DisasmOptions{Variables: true, YAML: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "role: Procedure") {
		t.Errorf("yaml dump lacks procedure entry:\n%s", buf.String())
	}
}
