package parser

import (
	"github.com/sehnsucht13/zai-pl/internal/pipeline"
)

// ParserProcessor runs the parser as a pipeline stage.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	root, err := Parse(ctx.TokenStream, ctx.SourceCode)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.AstRoot = root
	return ctx
}
