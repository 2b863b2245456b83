package lexer

import (
	"github.com/sehnsucht13/zai-pl/internal/pipeline"
)

// LexerProcessor runs the lexer as a pipeline stage.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens, err := Tokenize(ctx.SourceCode)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.TokenStream = tokens
	return ctx
}
