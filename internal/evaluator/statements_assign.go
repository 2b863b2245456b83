package evaluator

import (
	"github.com/sehnsucht13/zai-pl/internal/ast"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

// resolveNamespace evaluates an assignment path down to a settable
// scope: a scope handle, a module's namespace or a class instance's
// namespace.
func (e *Evaluator) resolveNamespace(path ast.Expression) (*Scope, Object) {
	target := e.Eval(path)
	if isError(target) {
		return nil, target
	}
	switch t := target.(type) {
	case *Scope:
		return t, nil
	case *Module:
		return t.Namespace, nil
	case *ClassInstance:
		return t.Namespace, nil
	default:
		return nil, newError("variable '%s' is not accessible!", path.String())
	}
}

// evalNewAssign introduces a binding. Without a path the binding lands
// in the current scope, silently shadowing any outer one.
func (e *Evaluator) evalNewAssign(node *ast.NewAssign) Object {
	value := e.Eval(node.Value)
	if isError(value) {
		return value
	}

	if node.Path == nil {
		e.Env.Peek().Set(node.Name, value)
		return nil
	}

	ns, errObj := e.resolveNamespace(node.Path)
	if errObj != nil {
		return errObj
	}
	ns.Set(node.Name, value)
	return nil
}

func (e *Evaluator) evalReassign(node *ast.Reassign) Object {
	value := e.Eval(node.Value)
	if isError(value) {
		return value
	}

	ns := e.Env.Peek()
	if node.Path != nil {
		resolved, errObj := e.resolveNamespace(node.Path)
		if errObj != nil {
			return errObj
		}
		ns = resolved
	}

	// Array element target: look the array up and replace the slot.
	if node.Index != nil {
		target, ok := ns.Get(node.Name)
		if !ok {
			return newError("The array \"%s\" does not exist within the current environment!", node.Name)
		}
		arr, isArr := target.(*Array)
		if !isArr {
			return newError("Object is not an array and cannot be accessed using '[]'!")
		}
		idxVal := e.Eval(node.Index)
		if isError(idxVal) {
			return idxVal
		}
		idx, isInt := idxVal.(*Integer)
		if !isInt {
			return newError("Array index is not a number but a '%s'!", typeName(idxVal.Type()))
		}
		if idx.Value < 0 || idx.Value >= int64(len(arr.Elements)) {
			return newError("\"%d\" exceeds the length of the array \"%s\"!", idx.Value, node.Name)
		}
		arr.Elements[idx.Value] = value
		return nil
	}

	if !ns.Update(node.Name, value) {
		// Through a path the slot may not exist yet: 'this.field = v'
		// introduces the field in the instance scope.
		if node.Path != nil {
			ns.Set(node.Name, value)
			return nil
		}
		return newError("Variable \"%s\" cannot be reasigned because it has not been initialized!", node.Name)
	}
	return nil
}

// evalAugAssign implements '+=' and '-=': read the current value,
// apply the delta through the operator algebra and write the result
// back. Arrays extend in place on '+='.
func (e *Evaluator) evalAugAssign(path ast.Expression, name string, valueExpr ast.Expression, op token.TokenType) Object {
	delta := e.Eval(valueExpr)
	if isError(delta) {
		return delta
	}

	ns := e.Env.Peek()
	if path != nil {
		resolved, errObj := e.resolveNamespace(path)
		if errObj != nil {
			return errObj
		}
		ns = resolved
	}

	old, ok := ns.Get(name)
	if !ok {
		return newError("Variable \"%s\" cannot be reasigned because it does not exist within the environment.", name)
	}

	if op == token.ADDASSIGN {
		if arr, isArr := old.(*Array); isArr {
			if other, isOther := delta.(*Array); isOther {
				arr.Elements = append(arr.Elements, other.Elements...)
			} else {
				arr.Elements = append(arr.Elements, delta)
			}
			return nil
		}
	}

	var updated Object
	if op == token.ADDASSIGN {
		updated = addValues(old, delta)
	} else {
		updated = subValues(old, delta)
	}
	if isError(updated) {
		return updated
	}

	if !ns.Update(name, updated) {
		return newError("Variable \"%s\" cannot be reasigned because it does not exist within the environment.", name)
	}
	return nil
}

// evalIncrDecr implements postfix '++'/'--': resolve the target slot,
// write back the adjusted value and yield the new value. A target that
// is not a settable slot (a literal, a call result) just yields the
// adjusted value.
func (e *Evaluator) evalIncrDecr(target ast.Expression, delta int64) Object {
	switch t := target.(type) {
	case *ast.Symbol:
		old := e.evalSymbol(t)
		if isError(old) {
			return old
		}
		updated := adjustValue(old, delta)
		if isError(updated) {
			return updated
		}
		e.Env.Peek().Update(t.Name, updated)
		return updated
	case *ast.PropertyAccess:
		ns, errObj := e.resolveNamespace(t.Receiver)
		if errObj != nil {
			return errObj
		}
		old, ok := ns.Get(t.Name)
		if !ok {
			return newError("Variable '%s' is not defined!", t.Name)
		}
		updated := adjustValue(old, delta)
		if isError(updated) {
			return updated
		}
		ns.Update(t.Name, updated)
		return updated
	case *ast.ArrayAccess:
		receiver := e.Eval(t.Receiver)
		if isError(receiver) {
			return receiver
		}
		arr, isArr := receiver.(*Array)
		if !isArr {
			return newError("Object is not an array and cannot be accessed using '[]'!")
		}
		idxVal := e.Eval(t.Index)
		if isError(idxVal) {
			return idxVal
		}
		idx, isInt := idxVal.(*Integer)
		if !isInt {
			return newError("Array index is not a number but a '%s'!", typeName(idxVal.Type()))
		}
		if idx.Value < 0 || idx.Value >= int64(len(arr.Elements)) {
			return newError("Array has a size of %d but you want to access position %d!", len(arr.Elements), idx.Value)
		}
		updated := adjustValue(arr.Elements[idx.Value], delta)
		if isError(updated) {
			return updated
		}
		arr.Elements[idx.Value] = updated
		return updated
	default:
		old := e.Eval(target)
		if isError(old) {
			return old
		}
		return adjustValue(old, delta)
	}
}

func adjustValue(obj Object, delta int64) Object {
	switch o := obj.(type) {
	case *Integer:
		return &Integer{Value: o.Value + delta}
	case *Float:
		return &Float{Value: o.Value + float64(delta)}
	}
	op := "++"
	if delta < 0 {
		op = "--"
	}
	return newTypeError(op, obj.Type())
}
