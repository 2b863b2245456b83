package evaluator

import (
	"github.com/sehnsucht13/zai-pl/internal/ast"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

// Function is a user-defined function. Env is the scope in force at
// definition time; calls push a fresh child of it, which is what makes
// closures and same-scope mutual recursion work.
type Function struct {
	Name   string
	Params []token.Token
	Body   []ast.Statement
	Env    *Scope
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return "<function object " + f.Name + ">" }
func (f *Function) Arity() int       { return len(f.Params) }

// NativeFunc is a host-implemented function exposed to user code.
type NativeFunc struct {
	Name  string
	Arity int
	Fn    func(args ...Object) Object
}

func (n *NativeFunc) Type() ObjectType { return NATIVE_FUNC_OBJ }
func (n *NativeFunc) Inspect() string  { return "<native function object " + n.Name + ">" }

// ClassMethod is a method bound to a class instance. ClassEnv is the
// instance's backing scope, used as the parent of every call scope and
// as the value of 'this'.
type ClassMethod struct {
	Name     string
	Params   []token.Token
	Body     []ast.Statement
	ClassEnv *Scope
}

func (m *ClassMethod) Type() ObjectType { return CLASS_METHOD_OBJ }
func (m *ClassMethod) Inspect() string  { return "<class method object " + m.Name + ">" }
func (m *ClassMethod) Arity() int       { return len(m.Params) }
