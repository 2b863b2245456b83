package evaluator

import (
	"github.com/sehnsucht13/zai-pl/internal/ast"
)

func (e *Evaluator) evalSymbol(node *ast.Symbol) Object {
	if val, ok := e.Env.Peek().Get(node.Name); ok {
		return val
	}
	return newError("Variable '%s' is not defined!", node.Name)
}

// evalThis resolves 'this' to the instance scope bound by the active
// method call.
func (e *Evaluator) evalThis(node *ast.This) Object {
	if val, ok := e.Env.Peek().Get("this"); ok {
		return val
	}
	return newError("'this' is not available outside of a class method!")
}

// evalPropertyAccess reads receiver.name. The receiver must expose a
// namespace: a scope handle (this), a module or a class instance.
func (e *Evaluator) evalPropertyAccess(node *ast.PropertyAccess) Object {
	left := e.Eval(node.Receiver)
	if isError(left) {
		return left
	}

	switch recv := left.(type) {
	case *Scope:
		if val, ok := recv.Get(node.Name); ok {
			return val
		}
		return newError("Current environment does not contain the variable '%s'!", node.Name)
	case *Module:
		if val, ok := recv.Namespace.Get(node.Name); ok {
			return val
		}
		return newError("Module environment does not contain the variable '%s'!", node.Name)
	case *ClassInstance:
		if val, ok := recv.GetField(node.Name); ok {
			return val
		}
		return newError("Class instance of class \"%s\" does not contain a field with name \"%s\"!", recv.ClassName, node.Name)
	default:
		return newError("variable '%s' is not accessible!", node.Receiver.String())
	}
}

func (e *Evaluator) evalArrayAccess(node *ast.ArrayAccess) Object {
	receiver := e.Eval(node.Receiver)
	if isError(receiver) {
		return receiver
	}
	index := e.Eval(node.Index)
	if isError(index) {
		return index
	}

	arr, ok := receiver.(*Array)
	if !ok {
		return newError("Object is not an array and cannot be accessed using '[]'!")
	}
	idx, ok := index.(*Integer)
	if !ok {
		return newError("Array index is not a number but a '%s'!", typeName(index.Type()))
	}
	if idx.Value < 0 || idx.Value >= int64(len(arr.Elements)) {
		return newError("Array has a size of %d but you want to access position %d!", len(arr.Elements), idx.Value)
	}
	return arr.Elements[idx.Value]
}
