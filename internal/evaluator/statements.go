package evaluator

import (
	"fmt"

	"github.com/sehnsucht13/zai-pl/internal/ast"
)

// evalBlock runs the statements in a fresh scope whose parent is the
// current top. Flow signals bubble out; the scope is popped on every
// path.
func (e *Evaluator) evalBlock(node *ast.BlockStatement) Object {
	e.Env.EnterScope(e.Env.Peek())
	defer e.Env.ExitScope()

	for _, stmt := range node.Statements {
		ret := e.Eval(stmt)
		if isError(ret) || isSignal(ret) {
			return ret
		}
	}
	return nil
}

func (e *Evaluator) evalPrint(node *ast.Print) Object {
	val := e.Eval(node.Value)
	if isError(val) {
		return val
	}
	fmt.Fprintln(e.Out, val.Inspect())
	return nil
}

// evalFuncDef binds a function value under its name in the current
// scope. The scope in force now is the one the function closes over.
func (e *Evaluator) evalFuncDef(node *ast.FuncDef) Object {
	scope := e.Env.Peek()
	scope.Set(node.Name, &Function{
		Name:   node.Name,
		Params: node.Params,
		Body:   node.Body,
		Env:    scope,
	})
	return nil
}

func (e *Evaluator) evalClassDef(node *ast.ClassDef) Object {
	e.Env.Peek().Set(node.Name, &ClassDefValue{Name: node.Name, Methods: node.Methods})
	return nil
}

// evalImport loads the module through the configured loader and binds
// a Module value under the alias, or the module name when no alias was
// given.
func (e *Evaluator) evalImport(node *ast.Import) Object {
	if e.Loader == nil {
		return newError("Module %s could not be found within the interpreter path.", node.Module)
	}
	scope, path, err := e.Loader.LoadModule(node.Module)
	if err != nil {
		if evalErr, ok := err.(*Error); ok {
			return evalErr
		}
		return newError("%s", err.Error())
	}

	bindName := node.Module
	if node.Alias != "" {
		bindName = node.Alias
	}
	e.Env.Peek().Set(bindName, &Module{
		Name:      node.Module,
		Path:      path,
		Alias:     bindName,
		Namespace: scope,
	})
	return nil
}

func (e *Evaluator) evalReturn(node *ast.Return) Object {
	if node.Value == nil {
		return &ReturnValue{Value: &Nil{}}
	}
	val := e.Eval(node.Value)
	if isError(val) {
		return val
	}
	return &ReturnValue{Value: val}
}
