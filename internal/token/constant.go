package token

import (
	"strconv"
	"strings"
)

type ConstantKind int

const (
	ConstInteger ConstantKind = iota
	ConstUnsigned
	ConstMoney
	ConstString
	ConstDouble
	ConstBoolean
	ConstBuiltin
)

// NumberFormat remembers how an integer literal was written so it can be printed back
type NumberFormat int

const (
	FormatDefault NumberFormat = iota
	FormatHex
	FormatOctal
	FormatBinary
	FormatDecimal
	FormatColorCode
)

type BuiltinConst struct {
	Name  string
	Value int32
}

// Constant is a literal value as written in source
type Constant struct {
	Kind     ConstantKind
	Int      int32
	Unsigned uint64
	Double   float64
	Str      string
	Bool     bool
	Format   NumberFormat
	Builtin  *BuiltinConst
}

func IntegerConst(v int32, f NumberFormat) Constant {
	return Constant{Kind: ConstInteger, Int: v, Format: f}
}

func MoneyConst(cents int32) Constant { return Constant{Kind: ConstMoney, Int: cents} }

func StringConst(s string) Constant { return Constant{Kind: ConstString, Str: s} }

func DoubleConst(f float64) Constant { return Constant{Kind: ConstDouble, Double: f} }

func BoolConst(b bool) Constant { return Constant{Kind: ConstBoolean, Bool: b} }

func UnsignedConst(u uint64) Constant { return Constant{Kind: ConstUnsigned, Unsigned: u} }

func BuiltinConstant(b *BuiltinConst) Constant { return Constant{Kind: ConstBuiltin, Builtin: b} }

// Equal compares constants by value; the number format is presentation only
func (c Constant) Equal(o Constant) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case ConstInteger, ConstMoney:
		return c.Int == o.Int
	case ConstUnsigned:
		return c.Unsigned == o.Unsigned
	case ConstString:
		return c.Str == o.Str
	case ConstDouble:
		return c.Double == o.Double
	case ConstBoolean:
		return c.Bool == o.Bool
	case ConstBuiltin:
		return c.Builtin.Name == o.Builtin.Name
	}
	return false
}

// String renders the constant as PPL source
func (c Constant) String() string {
	switch c.Kind {
	case ConstInteger:
		switch c.Format {
		case FormatHex:
			hex := strings.ToUpper(strconv.FormatInt(int64(uint32(c.Int)), 16))
			if hex[0] > '9' {
				hex = "0" + hex
			}
			return hex + "h"
		case FormatOctal:
			return strconv.FormatInt(int64(uint32(c.Int)), 8) + "o"
		case FormatBinary:
			return strconv.FormatInt(int64(uint32(c.Int)), 2) + "b"
		case FormatDecimal:
			return strconv.FormatInt(int64(c.Int), 10) + "d"
		case FormatColorCode:
			return "@X" + strings.ToUpper(leftPad(strconv.FormatInt(int64(c.Int&0xFF), 16), 2))
		}
		return strconv.FormatInt(int64(c.Int), 10)
	case ConstUnsigned:
		return strconv.FormatUint(c.Unsigned, 10)
	case ConstMoney:
		sign := ""
		v := int64(c.Int)
		if v < 0 {
			sign = "-"
			v = -v
		}
		return sign + "$" + strconv.FormatInt(v/100, 10) + "." + leftPad(strconv.FormatInt(v%100, 10), 2)
	case ConstString:
		return `"` + strings.ReplaceAll(c.Str, `"`, `""`) + `"`
	case ConstDouble:
		s := strconv.FormatFloat(c.Double, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case ConstBoolean:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	case ConstBuiltin:
		return c.Builtin.Name
	}
	return "?"
}

func leftPad(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}
