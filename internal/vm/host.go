package vm

import (
	"errors"

	"github.com/funvibe/ppl/internal/executable"
)

// InputOptions are the field settings of the INPUT family of statements
type InputOptions struct {
	Color   int
	Length  int
	Valid   string
	Default string
	Flags   int
}

// Input masks used when a statement does not name its own
const (
	MaskAlnum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	MaskNum   = "0123456789+-"
	MaskYesNo = "YyNn"
)

// Host is the environment a script runs in. Calls block until the host answers.
type Host interface {
	Display(text string) error
	Input(prompt string, opts InputOptions) (string, error)
	// ReadKey returns the next pending key or "" when none is waiting
	ReadKey() (string, error)
	// RunScript runs another compiled script (CALL)
	RunScript(path string) error
	// ResolvePath maps a script path to a host path
	ResolvePath(path string) string
}

// ExtendedHost implements the BBS statements and functions the VM has no native version of
type ExtendedHost interface {
	CallStatement(op executable.OpCode, args []executable.Value) error
	CallFunction(op executable.FuncOpCode, args []executable.Value) (executable.Value, error)
}

// ErrUnknownMember is returned by UserData implementations for names they do not know.
// The VM logs it and continues with Integer(-1).
var ErrUnknownMember = errors.New("unknown member")

// UserData is a host object reachable from scripts through a variable of a registered type
type UserData interface {
	GetField(name string) (executable.Value, error)
	SetField(name string, v executable.Value) error
	CallFunction(name string, args []executable.Value) (executable.Value, error)
	CallMethod(name string, args []executable.Value) error
}

// ObjectFunctions is implemented by UserData whose functions return further objects
type ObjectFunctions interface {
	CallObjectFunction(name string, args []executable.Value) (UserData, error)
}

// UserDataProvider binds variables of registered types to host objects when a run starts
type UserDataProvider interface {
	// Object returns the instance for a variable of the named type, nil when there is none
	Object(typeName string) (UserData, error)
}

// UserStore is implemented by hosts that keep the record GETUSER and PUTUSER exchange.
// Keys are the U_* variable names.
type UserStore interface {
	GetUser() (map[string]executable.Value, error)
	PutUser(fields map[string]executable.Value) error
}
