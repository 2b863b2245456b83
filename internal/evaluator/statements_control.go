package evaluator

import "github.com/sehnsucht13/zai-pl/internal/ast"

// evalIf tests each branch condition in order and runs the first
// truthy one. An else-less if with no truthy branch yields nothing.
func (e *Evaluator) evalIf(node *ast.If) Object {
	for _, branch := range node.Branches {
		cond := e.Eval(branch.Condition)
		if isError(cond) {
			return cond
		}
		if isTruthy(cond) {
			return e.Eval(branch.Body)
		}
	}
	if node.Else != nil {
		return e.Eval(node.Else)
	}
	return nil
}

// evalSwitch finds the first case equal to the scrutinee and runs case
// bodies from there on, falling through until a break. With no match
// the default block runs.
func (e *Evaluator) evalSwitch(node *ast.Switch) Object {
	scrutinee := e.Eval(node.Scrutinee)
	if isError(scrutinee) {
		return scrutinee
	}

	start := -1
	for idx, c := range node.Cases {
		caseVal := e.Eval(c.Condition)
		if isError(caseVal) {
			return caseVal
		}
		if objectsEqual(caseVal, scrutinee) {
			start = idx
			break
		}
	}

	if start >= 0 {
		for _, c := range node.Cases[start:] {
			ret := e.Eval(c.Body)
			if isError(ret) {
				return ret
			}
			if ret != nil {
				if ret.Type() == BREAK_OBJ {
					return nil
				}
				return ret
			}
		}
	}

	// No match, or fall-through off the last case.
	if node.Default != nil {
		ret := e.Eval(node.Default)
		if isError(ret) {
			return ret
		}
		if ret != nil {
			if ret.Type() == BREAK_OBJ {
				return nil
			}
			return ret
		}
	}
	return nil
}
