package executable

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidCoercion = errors.New("invalid coercion")
)

type rank int

const (
	rankInteger rank = iota
	rankUnsigned
	rankMoney
	rankFloat
	rankDouble
	rankString
)

func rankOf(t VariableType) rank {
	switch t {
	case TypeString, TypeBigStr:
		return rankString
	case TypeDouble:
		return rankDouble
	case TypeFloat:
		return rankFloat
	case TypeMoney:
		return rankMoney
	case TypeUnsigned:
		return rankUnsigned
	}
	return rankInteger
}

func promote(a, b VariableType) rank {
	ra, rb := rankOf(a), rankOf(b)
	if ra > rb {
		return ra
	}
	return rb
}

// Binary applies op to a and b. Arithmetic picks the result type from the higher
// ranked operand; strings only concatenate, every other operator reads them as numbers.
func Binary(op FuncOpCode, a, b Value) (Value, error) {
	switch op {
	case FN_AND:
		return NewBool(a.AsBool() && b.AsBool()), nil
	case FN_OR:
		return NewBool(a.AsBool() || b.AsBool()), nil
	case FN_EQ, FN_NE, FN_LT, FN_LE, FN_GT, FN_GE:
		return NewBool(compareWith(op, Compare(a, b))), nil
	case FN_PLUS, FN_MINUS, FN_TIMES, FN_DIVIDE, FN_MOD, FN_EXP:
	default:
		return Value{}, ErrInvalidCoercion
	}
	if a.IsArray() || b.IsArray() {
		return Value{}, ErrInvalidCoercion
	}

	r := promote(a.Type, b.Type)
	if r == rankString {
		if op == FN_PLUS {
			return NewString(a.AsString() + b.AsString()), nil
		}
		r = rankInteger
	}

	switch r {
	case rankDouble, rankFloat:
		x, y := a.AsDouble(), b.AsDouble()
		res, err := floatOp(op, x, y)
		if err != nil {
			return Value{}, err
		}
		if r == rankFloat {
			return NewFloat(float32(res)), nil
		}
		return NewDouble(res), nil
	case rankMoney:
		return moneyOp(op, a, b)
	case rankUnsigned:
		x, y := a.AsUnsigned(), b.AsUnsigned()
		switch op {
		case FN_PLUS:
			return NewUnsigned(x + y), nil
		case FN_MINUS:
			return NewUnsigned(x - y), nil
		case FN_TIMES:
			return NewUnsigned(x * y), nil
		case FN_DIVIDE, FN_MOD:
			if y == 0 {
				return Value{}, ErrDivisionByZero
			}
			if op == FN_DIVIDE {
				return NewUnsigned(x / y), nil
			}
			return NewUnsigned(x % y), nil
		}
		return NewUnsigned(uint64(math.Pow(float64(x), float64(y)))), nil
	}

	x, y := a.AsInt(), b.AsInt()
	switch op {
	case FN_PLUS:
		return NewInt(x + y), nil
	case FN_MINUS:
		return NewInt(x - y), nil
	case FN_TIMES:
		return NewInt(x * y), nil
	case FN_DIVIDE, FN_MOD:
		if y == 0 {
			return Value{}, ErrDivisionByZero
		}
		if op == FN_DIVIDE {
			return NewInt(x / y), nil
		}
		return NewInt(x % y), nil
	}
	return NewInt(intPow(x, y)), nil
}

func floatOp(op FuncOpCode, x, y float64) (float64, error) {
	switch op {
	case FN_PLUS:
		return x + y, nil
	case FN_MINUS:
		return x - y, nil
	case FN_TIMES:
		return x * y, nil
	case FN_DIVIDE:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	case FN_MOD:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return math.Mod(x, y), nil
	}
	return math.Pow(x, y), nil
}

// moneyOp adds and subtracts in cents. Scaling by a plain number keeps the other
// operand as a factor instead of a currency amount.
func moneyOp(op FuncOpCode, a, b Value) (Value, error) {
	switch op {
	case FN_PLUS:
		return NewMoney(int32(a.Cents() + b.Cents())), nil
	case FN_MINUS:
		return NewMoney(int32(a.Cents() - b.Cents())), nil
	case FN_TIMES:
		switch {
		case a.Type == TypeMoney && b.Type == TypeMoney:
			return NewMoney(int32(a.Cents() * b.Cents() / 100)), nil
		case a.Type == TypeMoney:
			return NewMoney(int32(a.Cents() * b.AsInt64())), nil
		}
		return NewMoney(int32(a.AsInt64() * b.Cents())), nil
	case FN_DIVIDE, FN_MOD:
		divisor := b.Cents()
		if b.Type != TypeMoney {
			divisor = b.AsInt64()
		}
		if divisor == 0 {
			return Value{}, ErrDivisionByZero
		}
		if op == FN_MOD {
			return NewMoney(int32(a.Cents() % b.Cents())), nil
		}
		if b.Type == TypeMoney {
			return NewMoney(int32(a.Cents() * 100 / divisor)), nil
		}
		return NewMoney(int32(a.Cents() / divisor)), nil
	}
	return NewMoney(int32(math.Round(math.Pow(a.AsDouble(), b.AsDouble()) * 100))), nil
}

func intPow(x, y int32) int32 {
	if y < 0 {
		if x == 1 {
			return 1
		}
		return 0
	}
	res := int32(1)
	for ; y > 0; y >>= 1 {
		if y&1 != 0 {
			res *= x
		}
		x *= x
	}
	return res
}

// Compare orders two values on the coercion ladder. Strings compare case-insensitively.
func Compare(a, b Value) int {
	switch promote(a.Type, b.Type) {
	case rankString:
		return strings.Compare(strings.ToUpper(a.AsString()), strings.ToUpper(b.AsString()))
	case rankDouble, rankFloat:
		return cmp3(a.AsDouble(), b.AsDouble())
	case rankMoney:
		return cmp3(a.Cents(), b.Cents())
	case rankUnsigned:
		return cmp3(a.AsUnsigned(), b.AsUnsigned())
	}
	return cmp3(a.AsInt64(), b.AsInt64())
}

func cmp3[T int64 | uint64 | float64](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func compareWith(op FuncOpCode, c int) bool {
	switch op {
	case FN_EQ:
		return c == 0
	case FN_NE:
		return c != 0
	case FN_LT:
		return c < 0
	case FN_LE:
		return c <= 0
	case FN_GT:
		return c > 0
	}
	return c >= 0
}

// Unary applies UPLUS, UMINUS or NOT
func Unary(op FuncOpCode, v Value) (Value, error) {
	switch op {
	case FN_UPLUS:
		return v, nil
	case FN_NOT:
		return NewBool(!v.AsBool()), nil
	case FN_UMINUS:
		switch rankOf(v.Type) {
		case rankDouble:
			return NewDouble(-v.AsDouble()), nil
		case rankFloat:
			return NewFloat(-v.AsFloat()), nil
		case rankMoney:
			return NewMoney(int32(-v.Cents())), nil
		case rankUnsigned:
			return NewInt(-v.AsInt()), nil
		}
		if v.Type == TypeInteger || v.Type.IsString() || v.Type == TypeBoolean {
			return NewInt(-v.AsInt()), nil
		}
		return NewInt(-v.AsInt()).ConvertTo(v.Type), nil
	}
	return Value{}, ErrInvalidCoercion
}
