package compiler

import (
	"github.com/funvibe/ppl/internal/pipeline"
)

type CompilerProcessor struct{}

// Process compiles ctx.AstRoot into ctx.Executable. Nothing is generated
// when an earlier stage reported errors.
func (cp *CompilerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}
	version := ctx.Runtime
	if version == 0 {
		version = ctx.LanguageVersion
	}
	exe, errs := Compile(ctx.AstRoot, Options{
		Version:       version,
		Registry:      ctx.Registry,
		UserVariables: ctx.UserVariables,
	})
	for _, err := range errs {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, errs...)
	ctx.Executable = exe
	return ctx
}
