package backend

import (
	"errors"

	"github.com/funvibe/ppl/internal/diagnostics"
	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/token"
	"github.com/funvibe/ppl/internal/vm"
)

// ExecutionProcessor implements pipeline.Processor to run a Backend
type ExecutionProcessor struct {
	Backend Backend
}

// NewExecutionProcessor creates a new pipeline step for the given backend
func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Executable == nil || ctx.HasErrors() {
		return ctx
	}

	if err := p.Backend.Run(ctx); err != nil {
		p.handleError(ctx, err)
	}
	return ctx
}

// handleError records a failed run. STOP is a normal way to end a script.
func (p *ExecutionProcessor) handleError(ctx *pipeline.PipelineContext, err error) {
	if errors.Is(err, vm.ErrStopped) {
		log.Debugf("%s: stopped on %s", ctx.FilePath, p.Backend.Name())
		return
	}
	log.Errorf("%s: %s backend: %s", ctx.FilePath, p.Backend.Name(), err)
	d := diagnostics.NewError(diagnostics.ErrR001, token.Token{}, err.Error())
	d.File = ctx.FilePath
	ctx.Errors = append(ctx.Errors, d)
}
