// Package pipeline chains the source-processing stages. Each stage
// reads and extends a shared context; the first error stops the run.
package pipeline

import (
	"github.com/sehnsucht13/zai-pl/internal/ast"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

// PipelineContext carries one source text through lexing and parsing.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	TokenStream []token.Token
	AstRoot     *ast.Program

	Err error
}

type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, stopping at the first stage error.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Err != nil {
			return ctx
		}
	}
	return ctx
}
