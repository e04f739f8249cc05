package vm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal runtime errors
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindLabelNotFound
	KindPushPopStackEmpty
	KindFileNotFound
	KindFunctionCall
	KindFileChannelNotOpen
	KindPassValueStackEmpty
	KindWriteBackStackEmpty
	KindNoUserTypeBase
	KindTypeNotFoundInRegistry
	KindNoObjectFound
	KindStackUnderflow
	KindInvalidCoercion
	KindUnknownOpcode
	KindDivisionByZero
)

var kindNames = [...]string{
	"Internal",
	"LabelNotFound",
	"PushPopStackEmpty",
	"FileNotFound",
	"FunctionCall",
	"FileChannelNotOpen",
	"PassValueStackEmpty",
	"WriteBackStackEmpty",
	"NoUserTypeBase",
	"TypeNotFoundInRegistry",
	"NoObjectFound",
	"StackUnderflow",
	"InvalidCoercion",
	"UnknownOpcode",
	"DivisionByZero",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a fatal runtime error. It unwinds the script and is returned by Run.
type Error struct {
	Kind ErrorKind
	// Name is the label, file, function or type the error is about, if any
	Name string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Name != "" {
		msg += " " + e.Name
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

var (
	// ErrStopped is returned by Run when the script executed STOP
	ErrStopped = errors.New("script stopped")
	// ErrUnsupported is returned for statements and functions that need an ExtendedHost
	ErrUnsupported = errors.New("not supported by this host")

	errCallDepth   = errors.New("call depth exceeded")
	errGosubDepth  = errors.New("gosub depth exceeded")
	errPushStack   = errors.New("push stack overflow")
	errNotWritable = errors.New("expression is not a variable")
	errNotCallable = errors.New("not a function or procedure")
)

func newError(kind ErrorKind, name string, err error) *Error {
	return &Error{Kind: kind, Name: name, Err: err}
}
