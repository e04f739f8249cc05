package executable

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a typed PPL value. Scalars live in data as raw bits, strings in str.
// Variables declared with dimensions carry their element storage in arr.
type Value struct {
	Type VariableType
	data uint64
	str  string
	arr  *Array
}

// Array is the element storage of a dimensioned variable. Every dimension holds
// size+1 elements so both 0 and the declared bound are valid indices.
type Array struct {
	Dims  int
	Sizes [3]int
	Elems []Value
}

func NewBool(b bool) Value {
	if b {
		return Value{Type: TypeBoolean, data: 1}
	}
	return Value{Type: TypeBoolean}
}

func NewInt(i int32) Value { return Value{Type: TypeInteger, data: uint64(uint32(i))} }

func NewUnsigned(u uint64) Value { return Value{Type: TypeUnsigned, data: u} }

// NewMoney creates a currency value from cents
func NewMoney(cents int32) Value { return Value{Type: TypeMoney, data: uint64(uint32(cents))} }

func NewFloat(f float32) Value { return Value{Type: TypeFloat, data: uint64(math.Float32bits(f))} }

func NewDouble(f float64) Value { return Value{Type: TypeDouble, data: math.Float64bits(f)} }

func NewString(s string) Value { return Value{Type: TypeString, str: s} }

func NewBigStr(s string) Value { return Value{Type: TypeBigStr, str: s} }

// NewDate creates a Date from a day number (see DateToJulian)
func NewDate(julian int32) Value { return Value{Type: TypeDate, data: uint64(uint32(julian))} }

func NewDDate(julian int32) Value { return Value{Type: TypeDDate, data: uint64(uint32(julian))} }

func NewEDate(julian int32) Value { return Value{Type: TypeEDate, data: uint64(uint32(julian))} }

// NewTime creates a Time from seconds since midnight
func NewTime(seconds int32) Value { return Value{Type: TypeTime, data: uint64(uint32(seconds))} }

func NewByte(b uint8) Value { return Value{Type: TypeByte, data: uint64(b)} }

func NewWord(w uint16) Value { return Value{Type: TypeWord, data: uint64(w)} }

func NewSByte(b int8) Value { return Value{Type: TypeSByte, data: uint64(uint8(b))} }

func NewSWord(w int16) Value { return Value{Type: TypeSWord, data: uint64(uint16(w))} }

func NewMessageAreaID(conference, area int32) Value {
	return Value{Type: TypeMessageAreaID, data: uint64(uint32(conference)) | uint64(uint32(area))<<32}
}

// NewUserData wraps a VM arena handle in a value of the given host type tag
func NewUserData(tag VariableType, handle int) Value {
	return Value{Type: tag, data: uint64(handle)}
}

// ZeroValue returns the default value of a scalar type
func ZeroValue(t VariableType) Value {
	return Value{Type: t}
}

// NewArray creates dimensioned storage with every element set to the zero value of t
func NewArray(t VariableType, dims int, vector, matrix, cube int) Value {
	a := &Array{Dims: dims, Sizes: [3]int{vector, matrix, cube}}
	a.Elems = make([]Value, a.capacity())
	for i := range a.Elems {
		a.Elems[i] = ZeroValue(t)
	}
	return Value{Type: t, arr: a}
}

// FromRaw rebuilds a scalar from its variable table representation
func FromRaw(t VariableType, raw uint64) Value {
	switch t {
	case TypeString, TypeBigStr:
		return Value{Type: t}
	}
	return Value{Type: t, data: raw}
}

// Raw returns the variable table representation of a scalar
func (v Value) Raw() uint64 {
	return v.data
}

func (v Value) IsArray() bool { return v.arr != nil }

func (v Value) Array() *Array { return v.arr }

// Handle returns the arena handle of a UserData value
func (v Value) Handle() int { return int(v.data) }

// MessageArea returns conference and area of a MessageAreaID
func (v Value) MessageArea() (conference, area int32) {
	if v.Type != TypeMessageAreaID {
		return v.AsInt(), 0
	}
	return int32(uint32(v.data)), int32(uint32(v.data >> 32))
}

// Cents returns the currency amount of the value in cents
func (v Value) Cents() int64 {
	switch v.Type {
	case TypeMoney:
		return int64(int32(uint32(v.data)))
	case TypeFloat, TypeDouble, TypeString, TypeBigStr:
		return int64(math.Round(v.AsDouble() * 100))
	}
	return v.AsInt64() * 100
}

func (v Value) AsBool() bool {
	switch v.Type {
	case TypeString, TypeBigStr:
		return v.AsInt() != 0
	case TypeFloat, TypeDouble:
		return v.AsDouble() != 0
	}
	return v.data != 0
}

// AsInt64 returns the integer view of the value without truncating to 32 bits
func (v Value) AsInt64() int64 {
	switch v.Type {
	case TypeBoolean:
		if v.data != 0 {
			return 1
		}
		return 0
	case TypeUnsigned:
		return int64(v.data)
	case TypeMoney:
		return int64(int32(uint32(v.data))) / 100
	case TypeFloat:
		return int64(math.Float32frombits(uint32(v.data)))
	case TypeDouble:
		return int64(math.Float64frombits(v.data))
	case TypeString, TypeBigStr:
		return parseLeadingInt(v.str)
	case TypeByte:
		return int64(uint8(v.data))
	case TypeWord:
		return int64(uint16(v.data))
	case TypeSByte:
		return int64(int8(uint8(v.data)))
	case TypeSWord:
		return int64(int16(uint16(v.data)))
	case TypeMessageAreaID:
		return int64(int32(uint32(v.data)))
	case TypeNone:
		return 0
	}
	if v.Type.IsUserData() {
		return int64(v.data)
	}
	return int64(int32(uint32(v.data)))
}

func (v Value) AsInt() int32 { return int32(v.AsInt64()) }

func (v Value) AsUnsigned() uint64 {
	switch v.Type {
	case TypeUnsigned:
		return v.data
	case TypeString, TypeBigStr:
		u, _ := strconv.ParseUint(leadingDigits(v.str), 10, 64)
		return u
	}
	return uint64(v.AsInt64())
}

func (v Value) AsDouble() float64 {
	switch v.Type {
	case TypeFloat:
		return float64(math.Float32frombits(uint32(v.data)))
	case TypeDouble:
		return math.Float64frombits(v.data)
	case TypeMoney:
		return float64(int32(uint32(v.data))) / 100
	case TypeUnsigned:
		return float64(v.data)
	case TypeString, TypeBigStr:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return float64(parseLeadingInt(v.str))
		}
		return f
	}
	return float64(v.AsInt64())
}

func (v Value) AsFloat() float32 { return float32(v.AsDouble()) }

func (v Value) AsString() string {
	switch v.Type {
	case TypeString, TypeBigStr:
		return v.str
	case TypeBoolean:
		if v.data != 0 {
			return "1"
		}
		return "0"
	case TypeUnsigned:
		return strconv.FormatUint(v.data, 10)
	case TypeDate, TypeDDate, TypeEDate:
		return JulianToDate(int32(uint32(v.data))).String()
	case TypeTime:
		return FormatTime(int32(uint32(v.data)))
	case TypeMoney:
		return formatMoney(int64(int32(uint32(v.data))))
	case TypeFloat:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.data))), 'f', -1, 32)
	case TypeDouble:
		return strconv.FormatFloat(math.Float64frombits(v.data), 'f', -1, 64)
	case TypeMessageAreaID:
		conf, area := v.MessageArea()
		return fmt.Sprintf("%d:%d", conf, area)
	case TypeFunction, TypeProcedure, TypeTable, TypeNone:
		return ""
	}
	if v.Type.IsUserData() {
		return ""
	}
	return strconv.FormatInt(v.AsInt64(), 10)
}

func formatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func (v Value) String() string {
	if v.arr != nil {
		return fmt.Sprintf("%s[%s]", v.Type, v.arr.shape())
	}
	if v.Type.IsString() {
		return strconv.Quote(v.str)
	}
	return v.AsString()
}

// ConvertTo returns the value converted to type t. Arrays convert element wise.
func (v Value) ConvertTo(t VariableType) Value {
	if v.arr != nil {
		c := v.Clone()
		for i := range c.arr.Elems {
			c.arr.Elems[i] = c.arr.Elems[i].ConvertTo(t)
		}
		c.Type = t
		return c
	}
	if v.Type == t {
		return v
	}
	switch t {
	case TypeBoolean:
		return NewBool(v.AsBool())
	case TypeUnsigned:
		return NewUnsigned(v.AsUnsigned())
	case TypeDate, TypeDDate, TypeEDate:
		jd := v.AsInt()
		if v.Type.IsString() {
			jd = DateToJulian(ParseDate(v.str))
		}
		return Value{Type: t, data: uint64(uint32(jd))}
	case TypeInteger:
		return NewInt(v.AsInt())
	case TypeMoney:
		return NewMoney(int32(v.Cents()))
	case TypeFloat:
		return NewFloat(v.AsFloat())
	case TypeDouble:
		return NewDouble(v.AsDouble())
	case TypeString:
		return NewString(v.AsString())
	case TypeBigStr:
		return NewBigStr(v.AsString())
	case TypeTime:
		if v.Type.IsString() {
			return NewTime(ParseTime(v.str))
		}
		return NewTime(v.AsInt())
	case TypeByte:
		return NewByte(uint8(v.AsInt64()))
	case TypeWord:
		return NewWord(uint16(v.AsInt64()))
	case TypeSByte:
		return NewSByte(int8(v.AsInt64()))
	case TypeSWord:
		return NewSWord(int16(v.AsInt64()))
	case TypeMessageAreaID:
		conf, area := v.MessageArea()
		return NewMessageAreaID(conf, area)
	}
	return ZeroValue(t)
}

// Clone copies the value including array storage
func (v Value) Clone() Value {
	if v.arr == nil {
		return v
	}
	a := *v.arr
	a.Elems = make([]Value, len(v.arr.Elems))
	copy(a.Elems, v.arr.Elems)
	v.arr = &a
	return v
}

// Equal compares type and content. Arrays compare element wise.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type || (v.arr == nil) != (o.arr == nil) {
		return false
	}
	if v.arr != nil {
		if v.arr.Dims != o.arr.Dims || v.arr.Sizes != o.arr.Sizes {
			return false
		}
		for i := range v.arr.Elems {
			if !v.arr.Elems[i].Equal(o.arr.Elems[i]) {
				return false
			}
		}
		return true
	}
	return v.data == o.data && v.str == o.str
}

func (a *Array) capacity() int {
	n := 1
	for d := 0; d < a.Dims; d++ {
		n *= a.Sizes[d] + 1
	}
	return n
}

func (a *Array) shape() string {
	parts := make([]string, a.Dims)
	for d := 0; d < a.Dims; d++ {
		parts[d] = strconv.Itoa(a.Sizes[d])
	}
	return strings.Join(parts, ",")
}

func (a *Array) offset(idx []int) (int, bool) {
	off := 0
	for d := 0; d < a.Dims; d++ {
		i := 0
		if d < len(idx) {
			i = idx[d]
		}
		if i < 0 || i > a.Sizes[d] {
			return 0, false
		}
		off = off*(a.Sizes[d]+1) + i
	}
	return off, true
}

// Get returns the element at idx. Out of range reads yield ok=false.
func (a *Array) Get(idx ...int) (Value, bool) {
	off, ok := a.offset(idx)
	if !ok {
		return Value{}, false
	}
	return a.Elems[off], true
}

// Set stores v at idx, converted to the element type of the array
func (a *Array) Set(v Value, idx ...int) bool {
	off, ok := a.offset(idx)
	if !ok {
		return false
	}
	a.Elems[off] = v.ConvertTo(a.Elems[off].Type)
	return true
}

// Redim resizes the array keeping elements whose indices still fit
func (a *Array) Redim(sizes ...int) {
	old := *a
	old.Elems = a.Elems
	t := TypeInteger
	if len(a.Elems) > 0 {
		t = a.Elems[0].Type
	}
	a.Dims = len(sizes)
	a.Sizes = [3]int{}
	copy(a.Sizes[:], sizes)
	a.Elems = make([]Value, a.capacity())
	for i := range a.Elems {
		a.Elems[i] = ZeroValue(t)
	}
	idx := make([]int, old.Dims)
	for i, e := range old.Elems {
		rem := i
		for d := old.Dims - 1; d >= 0; d-- {
			idx[d] = rem % (old.Sizes[d] + 1)
			rem /= old.Sizes[d] + 1
		}
		if off, ok := a.offset(idx); ok && old.Dims == a.Dims {
			a.Elems[off] = e
		}
	}
}

// leadingDigits returns an optional sign and the digits at the start of s
func leadingDigits(s string) string {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

func parseLeadingInt(s string) int64 {
	n, _ := strconv.ParseInt(leadingDigits(s), 10, 64)
	return n
}
