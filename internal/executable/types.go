package executable

import (
	"fmt"
	"strings"
)

// VariableType is the type byte stored in the variable table
type VariableType uint8

const (
	TypeBoolean VariableType = iota
	TypeUnsigned
	TypeDate
	TypeEDate
	TypeInteger
	TypeMoney
	TypeFloat
	TypeString
	TypeTime
	TypeByte
	TypeWord
	TypeSByte
	TypeSWord
	TypeBigStr
	TypeDouble
	TypeFunction
	TypeProcedure
	TypeDDate
	TypeTable
	TypeMessageAreaID

	// FirstUserDataType is the smallest tag used for host defined object types
	FirstUserDataType VariableType = 30

	TypeNone VariableType = 255
)

// IsUserData reports whether the tag names a host object type
func (t VariableType) IsUserData() bool {
	return t > TypeMessageAreaID && t != TypeNone
}

func (t VariableType) IsString() bool {
	return t == TypeString || t == TypeBigStr
}

func (t VariableType) IsCallable() bool {
	return t == TypeFunction || t == TypeProcedure
}

var typeNames = [...]string{
	TypeBoolean:       "Boolean",
	TypeUnsigned:      "Unsigned",
	TypeDate:          "Date",
	TypeEDate:         "EDate",
	TypeInteger:       "Integer",
	TypeMoney:         "Money",
	TypeFloat:         "Real",
	TypeString:        "String",
	TypeTime:          "Time",
	TypeByte:          "Byte",
	TypeWord:          "Word",
	TypeSByte:         "SByte",
	TypeSWord:         "SWord",
	TypeBigStr:        "BigStr",
	TypeDouble:        "Double",
	TypeFunction:      "FUNC",
	TypeProcedure:     "PROC",
	TypeDDate:         "DDate",
	TypeTable:         "Table",
	TypeMessageAreaID: "MsgAreaID",
}

func (t VariableType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	if t == TypeNone {
		return "None"
	}
	return fmt.Sprintf("UserData(%d)", uint8(t))
}

type typeKeyword struct {
	name    string
	typ     VariableType
	version int
}

// typeKeywords lists the declaration keywords. Version 100 only knows the first six.
var typeKeywords = []typeKeyword{
	{"INTEGER", TypeInteger, 100},
	{"STRING", TypeString, 100},
	{"BOOLEAN", TypeBoolean, 100},
	{"DATE", TypeDate, 100},
	{"TIME", TypeTime, 100},
	{"MONEY", TypeMoney, 100},
	{"SDWORD", TypeInteger, 200},
	{"LONG", TypeInteger, 200},
	{"BIGSTR", TypeBigStr, 200},
	{"DDATE", TypeDDate, 200},
	{"EDATE", TypeEDate, 200},
	{"WORD", TypeWord, 200},
	{"UWORD", TypeWord, 200},
	{"SWORD", TypeSWord, 200},
	{"INT", TypeSWord, 200},
	{"BYTE", TypeByte, 200},
	{"UBYTE", TypeByte, 200},
	{"UNSIGNED", TypeUnsigned, 200},
	{"DWORD", TypeUnsigned, 200},
	{"UDWORD", TypeUnsigned, 200},
	{"SBYTE", TypeSByte, 200},
	{"SHORT", TypeSByte, 200},
	{"REAL", TypeFloat, 200},
	{"FLOAT", TypeFloat, 200},
	{"DOUBLE", TypeDouble, 200},
	{"DREAL", TypeDouble, 200},
	{"MSGAREAID", TypeMessageAreaID, 400},
}

// TypeFromKeyword maps a declaration keyword to its type for the given language version
func TypeFromKeyword(name string, version int) (VariableType, bool) {
	upper := strings.ToUpper(name)
	for _, kw := range typeKeywords {
		if kw.name == upper && version >= kw.version {
			return kw.typ, true
		}
	}
	return TypeNone, false
}

// TypeKeywords lists the declaration keywords known at the given language version
func TypeKeywords(version int) []string {
	var out []string
	for _, kw := range typeKeywords {
		if version >= kw.version {
			out = append(out, kw.name)
		}
	}
	return out
}

// Keyword returns the canonical declaration keyword of the type
func (t VariableType) Keyword() string {
	for _, kw := range typeKeywords {
		if kw.typ == t {
			return kw.name
		}
	}
	return strings.ToUpper(t.String())
}
