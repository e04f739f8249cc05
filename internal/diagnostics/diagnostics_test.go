package diagnostics

import (
	"testing"

	"github.com/funvibe/ppl/internal/token"
)

func TestErrorText(t *testing.T) {
	tok := token.Token{Lexeme: "GOTO", Line: 3, Column: 5}
	tests := []struct {
		err  *DiagnosticError
		want string
	}{
		{&DiagnosticError{Code: ErrC003, Token: tok, File: "main.pps", Args: []interface{}{"DONE"}},
			"main.pps:3:5: error C003: label 'DONE' not found"},
		{NewWarning(ErrC003, tok, "X"), "3:5: warning C003: label 'X' not found"},
		{NewError("Z999", tok, "free text"), "3:5: error Z999: free text"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestHasErrors(t *testing.T) {
	warn := NewWarning(ErrC003, token.Token{}, "A")
	if HasErrors([]*DiagnosticError{warn}) {
		t.Error("warnings counted as errors")
	}
	if !HasErrors([]*DiagnosticError{warn, NewError(ErrR001, token.Token{}, "boom")}) {
		t.Error("error not found")
	}
}
