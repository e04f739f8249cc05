package executable

import (
	"fmt"
	"strings"
)

// StatementSignature describes how the operands of a predefined statement are encoded
type StatementSignature int

const (
	SigInvalid StatementSignature = iota
	// SigArgumentsWithVariable: a fixed number of expressions, argument VarArg (1-based)
	// is written as a variable reference.
	SigArgumentsWithVariable
	// SigVariableArguments: a count word followed by the arguments. Argument VarArg is a bare id.
	SigVariableArguments
	SigSort   // two bare array ids
	SigVarSeg // two variable references
	SigDcreate
	SigDlockg
	SigPop // a count word followed by variable references
)

// StatementDef is one row of the statement table
type StatementDef struct {
	Name    string
	Opcode  OpCode
	Version int
	Sig     StatementSignature
	VarArg  int
	Args    int
	MinArgs int
	MaxArgs int
}

// FuncSignature describes how a predefined function pops its operands
type FuncSignature int

const (
	FuncInvalid FuncSignature = iota
	FuncUnaryOp
	FuncBinaryOp
	FuncFixedParameters
	FuncMemberReference
	FuncMemberCall
)

// FunctionDef is one row of the function table
type FunctionDef struct {
	Name    string
	Opcode  FuncOpCode
	Version int
	Sig     FuncSignature
	Arity   int
}

// unlimitedArgs is the MaxArgs used when a variable argument statement has no upper bound
const unlimitedArgs = 1 << 15

// ArgumentRange returns the accepted argument counts for the statement
func (d *StatementDef) ArgumentRange() (min, max int) {
	switch d.Sig {
	case SigArgumentsWithVariable:
		return d.Args, d.Args
	case SigVariableArguments:
		if d.MaxArgs == 0 {
			return d.MinArgs, unlimitedArgs
		}
		return d.MinArgs, d.MaxArgs
	case SigSort, SigVarSeg:
		return 2, 2
	case SigDlockg:
		return 3, 3
	case SigDcreate:
		return 4, 4
	case SigPop:
		return 1, unlimitedArgs
	}
	return 0, 0
}

// IsVariableArgument reports whether argument i (0-based) must be a variable
func (d *StatementDef) IsVariableArgument(i int) bool {
	switch d.Sig {
	case SigArgumentsWithVariable, SigVariableArguments:
		return d.VarArg > 0 && i == d.VarArg-1
	case SigSort, SigVarSeg, SigPop:
		return true
	case SigDcreate:
		return i == 3
	case SigDlockg:
		return i == 1
	}
	return false
}

var statementIndex = func() map[string]*StatementDef {
	m := make(map[string]*StatementDef, len(StatementDefinitions))
	for i := range StatementDefinitions {
		def := &StatementDefinitions[i]
		if def.Sig == SigInvalid {
			continue
		}
		key := strings.ToUpper(def.Name)
		if _, ok := m[key]; !ok {
			m[key] = def
		}
	}
	return m
}()

// LookupStatement finds a predefined statement by name, aliases included.
// Statements with dedicated syntax (IF, GOTO, ...) are not returned.
func LookupStatement(name string) *StatementDef {
	return statementIndex[strings.ToUpper(name)]
}

// Definition returns the table row of the opcode, or nil if it is out of range
func (op OpCode) Definition() *StatementDef {
	if op <= 0 || op > LastOpCode {
		return nil
	}
	return &StatementDefinitions[op]
}

func (op OpCode) String() string {
	if def := op.Definition(); def != nil {
		return strings.ToUpper(def.Name)
	}
	return fmt.Sprintf("OP_%d", int(op))
}

var functionIndex = func() map[string]*FunctionDef {
	m := make(map[string]*FunctionDef, len(FunctionDefinitions))
	for i := range FunctionDefinitions {
		def := &FunctionDefinitions[i]
		if def.Sig != FuncFixedParameters {
			continue
		}
		key := strings.ToUpper(def.Name)
		if _, ok := m[key]; !ok {
			m[key] = def
		}
	}
	return m
}()

// LookupFunction finds a predefined function callable by name
func LookupFunction(name string) *FunctionDef {
	return functionIndex[strings.ToUpper(name)]
}

// Definition returns the table row of the function opcode, or nil if it is out of range
func (op FuncOpCode) Definition() *FunctionDef {
	if op < 0 || int(op) >= len(FunctionDefinitions) {
		return nil
	}
	return &FunctionDefinitions[op]
}

func (op FuncOpCode) String() string {
	if def := op.Definition(); def != nil {
		return strings.ToUpper(def.Name)
	}
	return fmt.Sprintf("FN_%d", int(op))
}

// Word is the encoding of the function opcode in the expression stream
func (op FuncOpCode) Word() int16 {
	return -int16(op)
}
