package pipeline

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("ppl.pipeline")

// Pipeline runs compile stages in order over one context.
type Pipeline struct {
	stages []Processor
}

func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run passes ctx through every stage. A stage runs even when an earlier one
// reported errors, so lexer, parser and compiler diagnostics arrive together.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, stage := range p.stages {
		before := len(ctx.Errors)
		ctx = stage.Process(ctx)
		if n := len(ctx.Errors) - before; n > 0 {
			log.Debugf("%s: %T reported %d diagnostics", ctx.FilePath, stage, n)
		}
	}
	return ctx
}
