package diagnostics

import (
	"fmt"

	"github.com/funvibe/ppl/internal/token"
)

type ErrorCode string

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// DiagnosticError is one entry of the shared error sink.
// Every compile stage appends these to the pipeline context instead of aborting.
type DiagnosticError struct {
	Code     ErrorCode
	Severity Severity
	Token    token.Token
	File     string
	Args     []interface{}
}

func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Severity: SeverityError, Token: tok, Args: args}
}

func NewWarning(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Severity: SeverityWarning, Token: tok, Args: args}
}

// Message renders the code's template without position information
func (e *DiagnosticError) Message() string {
	tmpl, ok := messages[e.Code]
	if !ok {
		if len(e.Args) > 0 {
			return fmt.Sprint(e.Args...)
		}
		return string(e.Code)
	}
	return fmt.Sprintf(tmpl, e.Args...)
}

func (e *DiagnosticError) Error() string {
	prefix := ""
	if e.File != "" {
		prefix = e.File + ":"
	}
	return fmt.Sprintf("%s%d:%d: %s %s: %s", prefix, e.Token.Line, e.Token.Column, e.Severity, e.Code, e.Message())
}

func (e *DiagnosticError) IsWarning() bool {
	return e.Severity == SeverityWarning
}

// HasErrors reports whether the list contains anything other than warnings
func HasErrors(errs []*DiagnosticError) bool {
	for _, e := range errs {
		if !e.IsWarning() {
			return true
		}
	}
	return false
}
