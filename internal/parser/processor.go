package parser

import (
	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		err := diagnostics.NewError(diagnostics.InvalidToken, token.Token{Type: token.EOF}, "<no token stream>")
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	ctx.AstRoot = parser.ParseProgram()

	// Lexer diagnostics are appended through a pointer and may lack the path
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}
