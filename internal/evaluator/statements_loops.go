package evaluator

import "github.com/sehnsucht13/zai-pl/internal/ast"

// runLoopBody executes one loop body pass. done is true when the loop
// must stop; when it is, result is nil for a break and the bubbling
// object for a return or error.
func (e *Evaluator) runLoopBody(body *ast.BlockStatement) (result Object, done bool) {
	ret := e.Eval(body)
	if ret == nil {
		return nil, false
	}
	if isError(ret) {
		return ret, true
	}
	switch ret.Type() {
	case BREAK_OBJ:
		return nil, true
	case CONTINUE_OBJ:
		return nil, false
	default:
		// A return value floats up to the enclosing function.
		return ret, true
	}
}

func (e *Evaluator) evalWhile(node *ast.While) Object {
	for {
		cond := e.Eval(node.Condition)
		if isError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			return nil
		}
		if result, done := e.runLoopBody(node.Body); done {
			return result
		}
	}
}

// evalDoWhile runs the body once unconditionally, then behaves like a
// while loop on the condition.
func (e *Evaluator) evalDoWhile(node *ast.DoWhile) Object {
	if result, done := e.runLoopBody(node.Body); done {
		return result
	}
	return e.evalWhile(&ast.While{Token: node.Token, Condition: node.Condition, Body: node.Body})
}
