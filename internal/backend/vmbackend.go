package backend

import (
	"context"

	"github.com/tliron/commonlog"

	"github.com/funvibe/ppl/internal/pipeline"
	"github.com/funvibe/ppl/internal/vm"
)

var log = commonlog.GetLogger("ppl.backend")

// VMBackend runs executables on the statement VM
type VMBackend struct {
	host Host
	ctx  context.Context
	opts []vm.Option
}

// Host is the environment scripts of a VMBackend run in
type Host = vm.Host

// NewVMBackend creates a backend running scripts against host. Runs stop
// when ctx is canceled.
func NewVMBackend(ctx context.Context, host Host, opts ...vm.Option) *VMBackend {
	if ctx == nil {
		ctx = context.Background()
	}
	return &VMBackend{host: host, ctx: ctx, opts: opts}
}

// Run executes the compiled program from pipeline context
func (b *VMBackend) Run(ctx *pipeline.PipelineContext) error {
	opts := b.opts
	if ctx.Registry != nil {
		opts = append([]vm.Option{vm.WithRegistry(ctx.Registry)}, opts...)
	}
	machine := vm.New(ctx.Executable, b.host, opts...)
	log.Infof("run %s: %s", machine.RunID(), ctx.FilePath)
	return machine.Run(b.ctx)
}

// Name returns the backend name
func (b *VMBackend) Name() string {
	return "vm"
}
