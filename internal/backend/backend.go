// Package backend runs compiled scripts as the last stage of the pipeline.
package backend

import (
	"github.com/funvibe/ppl/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes the executable of the pipeline context
	Run(ctx *pipeline.PipelineContext) error

	// Name returns the backend name for display
	Name() string
}
