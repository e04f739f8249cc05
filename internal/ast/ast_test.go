package ast

import (
	"testing"

	"github.com/funvibe/ppl/internal/token"
)

func ident(name string) *Identifier { return NewIdentifier(name) }

func cmp(l Expression, op BinOp, r Expression) *BinaryExpression { return NewBinary(l, op, r) }

type identCounter struct {
	BaseVisitor
	names []string
}

func (c *identCounter) VisitIdentifier(n *Identifier) { c.names = append(c.names, n.Value) }

func sampleProgram() *Program {
	return &Program{Nodes: []Node{
		&VariableDeclarationStatement{Type: 4, TypeName: "INTEGER", Variables: []*VariableSpecifier{{Name: ident("i")}}},
		&ForStatement{
			Variable: ident("i"),
			Start:    NewInteger(1),
			End:      NewInteger(10),
			Statements: []Statement{
				&PredefinedCallStatement{Name: "PRINTLN", Args: []Expression{ident("I")}},
				&IfStatement{Condition: cmp(ident("i"), Eq, NewInteger(5)), Statement: &BreakStatement{}},
			},
		},
		&FunctionImplementation{Name: ident("F"), Parameters: []*Parameter{{Name: ident("x")}},
			Statements: []Statement{NewLet(ident("F"), nil, ident("x"))}},
	}}
}

func TestBaseVisitorReachesOverrides(t *testing.T) {
	c := &identCounter{}
	c.Self = c
	sampleProgram().Accept(c)
	want := []string{"i", "i", "I", "i", "F", "x", "F", "x"}
	if len(c.names) != len(want) {
		t.Fatalf("visited %v, want %v", c.names, want)
	}
	for i := range want {
		if c.names[i] != want[i] {
			t.Errorf("identifier %d = %q, want %q", i, c.names[i], want[i])
		}
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	count := 0
	Inspect(sampleProgram(), func(n Node) bool {
		count++
		_, isFor := n.(*ForStatement)
		return !isFor
	})
	// program, declaration, its name, FOR, function, name, parameter, LET, target, value
	if count != 10 {
		t.Errorf("visited %d nodes", count)
	}
}

func TestRename(t *testing.T) {
	prog := sampleProgram()
	renamed := Rename(prog, map[string]string{"I": "idx"}).(*Program)

	c := &identCounter{}
	c.Self = c
	renamed.Accept(c)
	for _, n := range c.names[:4] {
		if n != "idx" {
			t.Errorf("identifier not renamed: %v", c.names)
			break
		}
	}
	if v := prog.Nodes[1].(*ForStatement).Variable.Value; v != "i" {
		t.Errorf("original tree modified: %q", v)
	}
}

func TestNegate(t *testing.T) {
	a, b := ident("A"), ident("B")
	tests := []struct {
		name string
		in   Expression
		want Expression
	}{
		{"eq", cmp(a, Eq, b), cmp(a, NotEq, b)},
		{"lower", cmp(a, Lower, b), cmp(a, GreaterEq, b)},
		{"greater", cmp(a, Greater, b), cmp(a, LowerEq, b)},
		{"de morgan", cmp(cmp(a, Eq, b), And, a), cmp(cmp(a, NotEq, b), Or, &UnaryExpression{Op: Not, Expr: a})},
		{"double not", &UnaryExpression{Op: Not, Expr: &ParensExpression{Expr: a}}, a},
		{"bool", NewConstant(token.BoolConst(true)), NewConstant(token.BoolConst(false))},
		{"arith", cmp(a, Add, b), &UnaryExpression{Op: Not, Expr: &ParensExpression{Expr: cmp(a, Add, b)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Negate(tt.in); !IsSimilar(got, tt.want) {
				t.Errorf("Negate = %#v", got)
			}
		})
	}
}

func TestDepth(t *testing.T) {
	e := cmp(NewInteger(1), Add, cmp(NewInteger(2), Mul, &UnaryExpression{Op: Minus, Expr: NewInteger(3)}))
	if d := Depth(e); d != 4 {
		t.Errorf("Depth = %d", d)
	}
	if d := Depth(ident("X")); d != 1 {
		t.Errorf("leaf depth = %d", d)
	}
}

func TestIsSimilar(t *testing.T) {
	hex := &Constant{Token: token.Token{Lexeme: "0FFh", Line: 3}, Value: token.IntegerConst(255, token.FormatHex)}
	dec := NewInteger(255)
	if !IsSimilar(hex, dec) {
		t.Error("number format should not matter")
	}
	l1 := &LetStatement{Token: token.Token{Line: 1}, HasLet: true, Target: ident("a"), AssignOp: token.EQ, Value: dec}
	l2 := NewLet(ident("A"), nil, hex)
	if !IsSimilar(l1, l2) {
		t.Error("LET and identifier case should not matter")
	}
	l3 := NewLet(ident("B"), nil, hex)
	if IsSimilar(l1, l3) {
		t.Error("different targets reported similar")
	}
	f1 := &FunctionImplementation{Name: ident("F"), ReturnType: 4}
	f2 := &FunctionImplementation{Name: ident("f"), ReturnType: 7}
	if IsSimilar(f1, f2) {
		t.Error("return types differ")
	}
	if !IsSimilar(sampleProgram(), sampleProgram()) {
		t.Error("program not similar to itself")
	}
}

func TestDeclarationsIncludeImplementations(t *testing.T) {
	prog := &Program{Nodes: []Node{
		&ProcedureDeclaration{Name: ident("P")},
		&PredefinedCallStatement{Name: "PRINTLN"},
		&ProcedureImplementation{Name: ident("P")},
		&FunctionImplementation{Name: ident("F")},
	}}
	decls := prog.Declarations()
	if len(decls) != 3 {
		t.Fatalf("got %d declarations, want 3", len(decls))
	}
	if _, ok := decls[1].(*ProcedureImplementation); !ok {
		t.Errorf("second declaration is %T", decls[1])
	}
	if _, ok := decls[2].(*FunctionImplementation); !ok {
		t.Errorf("third declaration is %T", decls[2])
	}
}
