package pipeline

import (
	"github.com/funvibe/ppl/internal/ast"
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/executable"
	"github.com/funvibe/ppl/internal/token"
)

// Processor is one stage of the compile pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is a lazily filled token buffer with lookahead.
type TokenStream interface {
	Next() token.Token
	Peek(n int) []token.Token
}

// PipelineContext carries one compile unit through the stages.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	LanguageVersion int
	Runtime         int
	PackageVersion  string
	Defines         []string
	// UserVariables forces the U_* block into the variable table
	UserVariables bool
	// Registry holds the host object types (CONFINFO, ...) known to the program
	Registry *executable.TypeRegistry

	TokenStream TokenStream
	AstRoot     *ast.Program
	Executable  *executable.Executable

	Errors []*diagnostics.DiagnosticError
}

// HasErrors reports whether any stage produced an error (warnings do not count)
func (ctx *PipelineContext) HasErrors() bool {
	return diagnostics.HasErrors(ctx.Errors)
}
