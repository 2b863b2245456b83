// Package vm ties the pipeline, evaluator and module loader into a
// single interpreter instance. Every command run through one VM shares
// the same global environment.
package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/sehnsucht13/zai-pl/internal/config"
	"github.com/sehnsucht13/zai-pl/internal/evaluator"
	"github.com/sehnsucht13/zai-pl/internal/lexer"
	"github.com/sehnsucht13/zai-pl/internal/modules"
	"github.com/sehnsucht13/zai-pl/internal/parser"
	"github.com/sehnsucht13/zai-pl/internal/pipeline"
)

type VM struct {
	cfg  *config.Config
	env  *evaluator.EnvironmentStack
	eval *evaluator.Evaluator
	out  io.Writer
}

func New(cfg *config.Config) *VM {
	if cfg == nil {
		cfg = config.Default()
	}

	env := evaluator.NewEnvironmentStack()
	evaluator.RegisterBuiltins(env.Global())

	eval := evaluator.New(env)
	eval.Loader = modules.NewLoader(cfg.ModulePaths...)

	vm := &VM{cfg: cfg, env: env, eval: eval, out: os.Stdout}
	eval.Out = vm.out
	return vm
}

// SetOut redirects print output and error reporting, as the tests do.
func (vm *VM) SetOut(w io.Writer) {
	vm.out = w
	vm.eval.Out = w
}

// RunString executes one source text in the VM context. Errors are
// printed, not returned: the VM survives them and the next run sees
// the same environment.
func (vm *VM) RunString(input string) {
	if _, err := vm.execute(input); err != nil {
		fmt.Fprintln(vm.out, err.Error())
	}
}

// execute runs a source text and returns the value of its last
// statement, which the REPL echoes.
func (vm *VM) execute(input string) (evaluator.Object, error) {
	ctx := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).
		Run(&pipeline.PipelineContext{SourceCode: input})
	if ctx.Err != nil {
		return nil, ctx.Err
	}

	result := vm.eval.Eval(ctx.AstRoot)
	if errObj, ok := result.(*evaluator.Error); ok {
		return nil, errObj
	}
	return result, nil
}

// Global exposes the VM's global scope.
func (vm *VM) Global() *evaluator.Scope {
	return vm.env.Global()
}
