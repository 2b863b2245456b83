package evaluator

import (
	"github.com/sehnsucht13/zai-pl/internal/ast"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

func (e *Evaluator) evalCall(node *ast.Call) Object {
	callee := e.Eval(node.Callee)
	if isError(callee) {
		return callee
	}

	switch fn := callee.(type) {
	case *Function:
		if err := checkArity(fn.Name, fn.Arity(), len(node.Arguments)); err != nil {
			return err
		}
		args, errObj := e.evalArgs(node.Arguments)
		if errObj != nil {
			return errObj
		}
		return e.invoke(fn.Params, fn.Body, fn.Env, nil, args)
	case *ClassMethod:
		if err := checkArity(fn.Name, fn.Arity(), len(node.Arguments)); err != nil {
			return err
		}
		args, errObj := e.evalArgs(node.Arguments)
		if errObj != nil {
			return errObj
		}
		return e.invoke(fn.Params, fn.Body, fn.ClassEnv, fn.ClassEnv, args)
	case *NativeFunc:
		if err := checkArity(fn.Name, fn.Arity, len(node.Arguments)); err != nil {
			return err
		}
		args, errObj := e.evalArgs(node.Arguments)
		if errObj != nil {
			return errObj
		}
		return fn.Fn(args...)
	case *ClassDefValue:
		return e.instantiateClass(fn, node.Arguments)
	default:
		return newError("Object is not callable!")
	}
}

func checkArity(name string, arity, given int) *Error {
	if arity != given {
		return newError("function \"%s\" accepts only %d arguments but %d were given!", name, arity, given)
	}
	return nil
}

func (e *Evaluator) evalArgs(args []ast.Expression) ([]Object, Object) {
	values := make([]Object, 0, len(args))
	for _, arg := range args {
		val := e.Eval(arg)
		if isError(val) {
			return nil, val
		}
		values = append(values, val)
	}
	return values, nil
}

// invoke runs a function or method body in a fresh scope whose parent
// is the captured scope, not the caller's. this is non-nil for class
// methods and is bound as a regular variable in the call scope.
func (e *Evaluator) invoke(params []token.Token, body []ast.Statement, parent *Scope, this *Scope, args []Object) Object {
	e.Env.EnterScope(parent)
	defer e.Env.ExitScope()

	scope := e.Env.Peek()
	if this != nil {
		scope.Set("this", this)
	}
	for i, p := range params {
		scope.Set(p.Lexeme, args[i])
	}

	for _, stmt := range body {
		ret := e.Eval(stmt)
		if isError(ret) {
			return ret
		}
		if ret == nil {
			continue
		}
		switch ret.Type() {
		case RETURN_OBJ:
			val := ret.(*ReturnValue).Value
			if val == nil {
				return &Nil{}
			}
			return val
		case BREAK_OBJ:
			return newError("\"break\" statement not used within a loop or a switch block!")
		case CONTINUE_OBJ:
			return newError("\"continue\" statement not used within a loop!")
		}
	}
	return &Nil{}
}

// instantiateClass builds a new instance and runs its constructor when
// one is defined. Calling a constructor-less class with arguments is
// an error.
func (e *Evaluator) instantiateClass(class *ClassDefValue, args []ast.Expression) Object {
	instance := NewClassInstance(class.Name, class.Methods)

	ctorObj, hasCtor := instance.GetField("constructor")
	if !hasCtor {
		if len(args) != 0 {
			return newError("Class '%s' does not have a constructor method but initialization detected %d arguments passed.", class.Name, len(args))
		}
		return instance
	}

	ctor := ctorObj.(*ClassMethod)
	if err := checkArity(ctor.Name, ctor.Arity(), len(args)); err != nil {
		return err
	}
	argVals, errObj := e.evalArgs(args)
	if errObj != nil {
		return errObj
	}
	if ret := e.invoke(ctor.Params, ctor.Body, ctor.ClassEnv, ctor.ClassEnv, argVals); isError(ret) {
		return ret
	}
	return instance
}
