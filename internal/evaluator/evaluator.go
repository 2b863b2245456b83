package evaluator

import (
	"io"
	"os"

	"github.com/sehnsucht13/zai-pl/internal/ast"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

// ModuleLoader resolves a module name to its evaluated global scope
// and source path. Implemented by internal/modules; the indirection
// keeps the evaluator free of filesystem concerns.
type ModuleLoader interface {
	LoadModule(name string) (*Scope, string, error)
}

// maxEvalDepth bounds Eval nesting so runaway recursion in user
// programs surfaces as an error instead of a Go stack overflow.
const maxEvalDepth = 10000

// Evaluator walks the AST and mutates its environment stack. One
// evaluator serves one VM or one module load.
type Evaluator struct {
	Out    io.Writer
	Env    *EnvironmentStack
	Loader ModuleLoader

	evalDepth int
}

func New(env *EnvironmentStack) *Evaluator {
	return &Evaluator{Out: os.Stdout, Env: env}
}

// Eval dispatches on the node variant. Statements with no natural
// result return nil; failures return *Error; return/break/continue
// surface as signal objects consumed by the enclosing construct.
func (e *Evaluator) Eval(node ast.Node) Object {
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.evalDepth > maxEvalDepth {
		return newError("maximum recursion depth exceeded")
	}

	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return e.evalProgram(node)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression)
	case *ast.BlockStatement:
		return e.evalBlock(node)
	case *ast.Print:
		return e.evalPrint(node)
	case *ast.FuncDef:
		return e.evalFuncDef(node)
	case *ast.ClassDef:
		return e.evalClassDef(node)
	case *ast.Import:
		return e.evalImport(node)
	case *ast.NewAssign:
		return e.evalNewAssign(node)
	case *ast.Reassign:
		return e.evalReassign(node)
	case *ast.AddAssign:
		return e.evalAugAssign(node.Path, node.Name, node.Value, token.ADDASSIGN)
	case *ast.SubAssign:
		return e.evalAugAssign(node.Path, node.Name, node.Value, token.SUBASSIGN)
	case *ast.If:
		return e.evalIf(node)
	case *ast.While:
		return e.evalWhile(node)
	case *ast.DoWhile:
		return e.evalDoWhile(node)
	case *ast.Switch:
		return e.evalSwitch(node)
	case *ast.Return:
		return e.evalReturn(node)
	case *ast.Break:
		return &BreakSignal{}
	case *ast.Continue:
		return &ContinueSignal{}

	// Expressions
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.StringLiteral:
		return NewString(node.Value)
	case *ast.BooleanLiteral:
		return nativeBoolToBoolean(node.Value)
	case *ast.NilLiteral:
		return &Nil{}
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(node)
	case *ast.Symbol:
		return e.evalSymbol(node)
	case *ast.This:
		return e.evalThis(node)
	case *ast.PropertyAccess:
		return e.evalPropertyAccess(node)
	case *ast.ArrayAccess:
		return e.evalArrayAccess(node)
	case *ast.Call:
		return e.evalCall(node)
	case *ast.Group:
		return e.Eval(node.Inner)
	case *ast.Unary:
		return e.evalUnary(node)
	case *ast.Incr:
		return e.evalIncrDecr(node.Target, 1)
	case *ast.Decr:
		return e.evalIncrDecr(node.Target, -1)
	case *ast.Arith:
		return e.evalArith(node)
	case *ast.Relop:
		return e.evalRelop(node)
	case *ast.Eq:
		return e.evalEq(node)
	case *ast.Logic:
		return e.evalLogic(node)
	}

	return newError("cannot evaluate node %T", node)
}

// evalProgram runs top-level statements in order. A flow signal
// reaching this level means the corresponding keyword was used outside
// any construct that consumes it. The value of the last statement is
// returned so the REPL can echo expression results.
func (e *Evaluator) evalProgram(program *ast.Program) Object {
	var result Object
	for _, stmt := range program.Statements {
		result = e.Eval(stmt)
		if isError(result) {
			return result
		}
		if result != nil {
			switch result.Type() {
			case RETURN_OBJ:
				return newError("\"return\" statement not used outside of a function or class method!")
			case BREAK_OBJ:
				return newError("\"break\" statement not used within a loop or a switch block!")
			case CONTINUE_OBJ:
				return newError("\"continue\" statement not used within a loop!")
			}
		}
	}
	return result
}

func (e *Evaluator) evalArith(node *ast.Arith) Object {
	left := e.Eval(node.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right)
	if isError(right) {
		return right
	}
	switch node.Op {
	case token.PLUS:
		return addValues(left, right)
	case token.MINUS:
		return subValues(left, right)
	case token.MUL:
		return mulValues(left, right)
	default:
		return divValues(left, right)
	}
}

func (e *Evaluator) evalRelop(node *ast.Relop) Object {
	left := e.Eval(node.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right)
	if isError(right) {
		return right
	}
	return compareValues(node.Token.Lexeme, left, right)
}

func (e *Evaluator) evalEq(node *ast.Eq) Object {
	left := e.Eval(node.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right)
	if isError(right) {
		return right
	}
	equal := objectsEqual(left, right)
	if node.Op == token.NEQ {
		equal = !equal
	}
	return nativeBoolToBoolean(equal)
}

// evalLogic evaluates both operands left to right, with no
// short-circuiting, and combines their truthiness.
func (e *Evaluator) evalLogic(node *ast.Logic) Object {
	left := e.Eval(node.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right)
	if isError(right) {
		return right
	}
	if node.Op == token.AND {
		return nativeBoolToBoolean(isTruthy(left) && isTruthy(right))
	}
	return nativeBoolToBoolean(isTruthy(left) || isTruthy(right))
}

func (e *Evaluator) evalUnary(node *ast.Unary) Object {
	operand := e.Eval(node.Operand)
	if isError(operand) {
		return operand
	}
	if node.Op == token.BANG {
		return nativeBoolToBoolean(!isTruthy(operand))
	}
	return negateValue(operand)
}

func (e *Evaluator) evalArrayLiteral(node *ast.ArrayLiteral) Object {
	elems := make([]Object, 0, len(node.Elements))
	for _, el := range node.Elements {
		val := e.Eval(el)
		if isError(val) {
			return val
		}
		elems = append(elems, val)
	}
	return &Array{Elements: elems}
}
