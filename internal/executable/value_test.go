package executable

import (
	"errors"
	"testing"
)

func TestBinaryCoercion(t *testing.T) {
	tests := []struct {
		name string
		op   FuncOpCode
		a, b Value
		want Value
	}{
		{"int add", FN_PLUS, NewInt(1), NewInt(2), NewInt(3)},
		{"string concat", FN_PLUS, NewString("A"), NewInt(1), NewString("A1")},
		{"string as number", FN_TIMES, NewString("6"), NewInt(7), NewInt(42)},
		{"double wins", FN_PLUS, NewInt(1), NewDouble(0.5), NewDouble(1.5)},
		{"float over money", FN_TIMES, NewMoney(150), NewFloat(2), NewFloat(3)},
		{"money plus int", FN_PLUS, NewMoney(150), NewInt(2), NewMoney(350)},
		{"money times int", FN_TIMES, NewMoney(150), NewInt(3), NewMoney(450)},
		{"money by int", FN_DIVIDE, NewMoney(900), NewInt(3), NewMoney(300)},
		{"money by money", FN_DIVIDE, NewMoney(900), NewMoney(300), NewMoney(300)},
		{"unsigned", FN_MINUS, NewUnsigned(10), NewInt(4), NewUnsigned(6)},
		{"power", FN_EXP, NewInt(2), NewInt(10), NewInt(1024)},
		{"mod", FN_MOD, NewInt(17), NewInt(5), NewInt(2)},
		{"and", FN_AND, NewBool(true), NewInt(0), NewBool(false)},
		{"or", FN_OR, NewBool(false), NewInt(3), NewBool(true)},
		{"case insensitive eq", FN_EQ, NewString("hello"), NewString("HELLO"), NewBool(true)},
		{"lt", FN_LT, NewInt(1), NewDouble(1.5), NewBool(true)},
		{"money ge", FN_GE, NewMoney(100), NewInt(1), NewBool(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Binary(tt.op, tt.a, tt.b)
			if err != nil {
				t.Fatalf("Binary: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %s (%s), want %s (%s)", got, got.Type, tt.want, tt.want.Type)
			}
		})
	}
}

func TestIntPow(t *testing.T) {
	tests := []struct {
		x, y, want int32
	}{
		{2, 10, 1024},
		{3, 5, 243},
		{-2, 3, -8},
		{7, 0, 1},
		{1, -5, 1},
		{2, -1, 0},
		{2, 31, -2147483648},
		{2, 32, 0},
		{3, 21, 1870418611},
		{2, 2000000000, 0},
		{-1, 2000000001, -1},
	}
	for _, tt := range tests {
		if got := intPow(tt.x, tt.y); got != tt.want {
			t.Errorf("%d ^ %d = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, b := range []Value{NewInt(0), NewDouble(0), NewMoney(0), NewUnsigned(0)} {
		for _, op := range []FuncOpCode{FN_DIVIDE, FN_MOD} {
			if _, err := Binary(op, NewInt(1), b); !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%s by %s: err = %v", op, b.Type, err)
			}
		}
	}
}

func TestUnary(t *testing.T) {
	if v, _ := Unary(FN_UMINUS, NewInt(5)); !v.Equal(NewInt(-5)) {
		t.Errorf("-5 = %s", v)
	}
	if v, _ := Unary(FN_UMINUS, NewMoney(250)); !v.Equal(NewMoney(-250)) {
		t.Errorf("-$2.50 = %s", v)
	}
	if v, _ := Unary(FN_NOT, NewString("0")); !v.Equal(NewBool(true)) {
		t.Errorf(`!"0" = %s`, v)
	}
}

func TestValueConversions(t *testing.T) {
	if s := NewMoney(142).AsString(); s != "$1.42" {
		t.Errorf("money string = %q", s)
	}
	if s := NewMoney(-5).AsString(); s != "-$0.05" {
		t.Errorf("negative money string = %q", s)
	}
	if i := NewString("  42abc").AsInt(); i != 42 {
		t.Errorf("leading int = %d", i)
	}
	if b := NewInt(300).ConvertTo(TypeByte); b.AsInt() != 44 {
		t.Errorf("byte wrap = %d", b.AsInt())
	}
	if d := NewString("12-30-76").ConvertTo(TypeDate); d.AsInt() != 64648 {
		t.Errorf("date from string = %d", d.AsInt())
	}
	if m := NewDouble(1.255).ConvertTo(TypeMoney); m.Cents() != 126 && m.Cents() != 125 {
		t.Errorf("money from double = %d cents", m.Cents())
	}
	if s := NewBool(true).AsString(); s != "1" {
		t.Errorf("bool string = %q", s)
	}
}

func TestArray(t *testing.T) {
	v := NewArray(TypeInteger, 2, 3, 4, 0)
	arr := v.Array()
	if !arr.Set(NewString("7"), 3, 4) {
		t.Fatal("Set(3,4) failed")
	}
	got, ok := arr.Get(3, 4)
	if !ok || !got.Equal(NewInt(7)) {
		t.Fatalf("Get(3,4) = %s, %v", got, ok)
	}
	if _, ok := arr.Get(4, 0); ok {
		t.Error("Get(4,0) should be out of range")
	}

	arr.Redim(5, 5)
	if got, _ := arr.Get(3, 4); !got.Equal(NewInt(7)) {
		t.Errorf("element lost on redim: %s", got)
	}

	c := v.Clone()
	c.Array().Set(NewInt(1), 0, 0)
	if got, _ := arr.Get(0, 0); got.AsInt() != 0 {
		t.Error("clone shares storage")
	}
}

func TestDates(t *testing.T) {
	if jd := DateToJulian(Date{Month: 12, Day: 30, Year: 1976}); jd != 64648 {
		t.Fatalf("DateToJulian = %d", jd)
	}
	if s := JulianToDate(64648).String(); s != "12-30-76" {
		t.Errorf("JulianToDate = %s", s)
	}
	if s := NewDate(0).AsString(); s != "00-00-00" {
		t.Errorf("empty date = %s", s)
	}
	if s := FormatTime(ParseTime("13:05:09")); s != "13:05:09" {
		t.Errorf("time = %s", s)
	}
	if d := ParseDate("123076"); d != (Date{Month: 12, Day: 30, Year: 1976}) {
		t.Errorf("ParseDate(MMDDYY) = %+v", d)
	}
}

func TestTypeKeywords(t *testing.T) {
	if typ, ok := TypeFromKeyword("integer", 100); !ok || typ != TypeInteger {
		t.Errorf("INTEGER = %s, %v", typ, ok)
	}
	if _, ok := TypeFromKeyword("DOUBLE", 100); ok {
		t.Error("DOUBLE should not exist before 3.00")
	}
}
