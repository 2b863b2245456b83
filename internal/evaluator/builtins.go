package evaluator

import (
	"math"

	"github.com/sehnsucht13/zai-pl/internal/config"
)

// The native function registry. Builtins follow the original stdlib
// contract: type mismatches yield nil rather than an error.

func builtinLen(args ...Object) Object {
	if s, ok := args[0].(*String); ok {
		return &Integer{Value: int64(s.Length)}
	}
	return &Nil{}
}

func builtinType(args ...Object) Object {
	switch args[0].(type) {
	case *Integer, *Float:
		return NewString("number")
	case *String:
		return NewString("string")
	case *Boolean:
		return NewString("boolean")
	case *Nil:
		return NewString("nil")
	case *Array:
		return NewString("array")
	case *Function:
		return NewString("function")
	case *NativeFunc:
		return NewString("native function")
	case *ClassDefValue:
		return NewString("class_def")
	case *ClassInstance:
		return NewString("class_instance")
	case *ClassMethod:
		return NewString("class_method")
	case *Module:
		return NewString("module")
	default:
		return &Nil{}
	}
}

func builtinPow(args ...Object) Object {
	base, ok1 := args[0].(*Integer)
	exp, ok2 := args[1].(*Integer)
	if !ok1 || !ok2 {
		return &Nil{}
	}
	return &Integer{Value: int64(math.Pow(float64(base.Value), float64(exp.Value)))}
}

func builtinMod(args ...Object) Object {
	left, ok1 := args[0].(*Integer)
	right, ok2 := args[1].(*Integer)
	if !ok1 || !ok2 {
		return &Nil{}
	}
	if left.Value == 0 || right.Value == 0 {
		return &Nil{}
	}
	return &Integer{Value: left.Value % right.Value}
}

// RegisterBuiltins installs the native functions into a global scope.
// Every VM and every module evaluation starts from this set.
func RegisterBuiltins(scope *Scope) {
	natives := []*NativeFunc{
		{Name: config.LenFuncName, Arity: 1, Fn: builtinLen},
		{Name: config.TypeFuncName, Arity: 1, Fn: builtinType},
		{Name: config.PowFuncName, Arity: 2, Fn: builtinPow},
		{Name: config.ModFuncName, Arity: 2, Fn: builtinMod},
	}
	for _, fn := range natives {
		scope.Set(fn.Name, fn)
	}
}
