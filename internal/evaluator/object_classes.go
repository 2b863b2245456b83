package evaluator

import "github.com/sehnsucht13/zai-pl/internal/ast"

// ClassDefValue is what a 'class' statement binds: the class name plus
// its method definitions as AST. Calling it constructs an instance.
type ClassDefValue struct {
	Name    string
	Methods []*ast.FuncDef
}

func (c *ClassDefValue) Type() ObjectType { return CLASS_DEF_OBJ }
func (c *ClassDefValue) Inspect() string  { return "<class definition object " + c.Name + ">" }

// ClassInstance holds the instance's own scope. Methods are bound into
// it at construction time; fields are added through 'this.field = v'.
type ClassInstance struct {
	ClassName string
	Namespace *Scope
}

// NewClassInstance builds an instance and registers one ClassMethod
// per method definition, each capturing the instance scope.
func NewClassInstance(className string, methods []*ast.FuncDef) *ClassInstance {
	inst := &ClassInstance{ClassName: className, Namespace: NewScope(nil)}
	for _, m := range methods {
		inst.Namespace.Set(m.Name, &ClassMethod{
			Name:     m.Name,
			Params:   m.Params,
			Body:     m.Body,
			ClassEnv: inst.Namespace,
		})
	}
	return inst
}

func (c *ClassInstance) Type() ObjectType { return CLASS_INSTANCE_OBJ }
func (c *ClassInstance) Inspect() string  { return "<class instance object " + c.ClassName + ">" }

// GetField looks up a method or field on the instance.
func (c *ClassInstance) GetField(name string) (Object, bool) {
	return c.Namespace.Get(name)
}

// Module wraps an evaluated module's global scope.
type Module struct {
	Name      string
	Path      string
	Alias     string
	Namespace *Scope
}

func (m *Module) Type() ObjectType { return MODULE_OBJ }
func (m *Module) Inspect() string {
	if m.Alias != "" && m.Alias != m.Name {
		return "<module " + m.Name + " imported as " + m.Alias + ">"
	}
	return "<module " + m.Name + ">"
}
