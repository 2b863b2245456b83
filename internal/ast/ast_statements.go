package ast

import (
	"strings"

	"github.com/sehnsucht13/zai-pl/internal/token"
)

// ConditionBlock pairs a test expression with the block it guards.
// An if statement holds one per if/elif arm.
type ConditionBlock struct {
	Condition Expression
	Body      *BlockStatement
}

type If struct {
	Token    token.Token
	Branches []ConditionBlock
	Else     *BlockStatement
}

func (i *If) statementNode()        {}
func (i *If) GetToken() token.Token { return i.Token }
func (i *If) String() string {
	var sb strings.Builder
	for idx, br := range i.Branches {
		if idx == 0 {
			sb.WriteString("if ")
		} else {
			sb.WriteString(" elif ")
		}
		sb.WriteString("(" + br.Condition.String() + ") " + br.Body.String())
	}
	if i.Else != nil {
		sb.WriteString(" else " + i.Else.String())
	}
	return sb.String()
}

type While struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (w *While) statementNode()        {}
func (w *While) GetToken() token.Token { return w.Token }
func (w *While) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

type DoWhile struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (d *DoWhile) statementNode()        {}
func (d *DoWhile) GetToken() token.Token { return d.Token }
func (d *DoWhile) String() string {
	return "do " + d.Body.String() + " while (" + d.Condition.String() + ");"
}

// SwitchCase pairs a case expression with its statement list. Case
// bodies fall through until a break.
type SwitchCase struct {
	Condition Expression
	Body      *BlockStatement
}

type Switch struct {
	Token     token.Token
	Scrutinee Expression
	Cases     []SwitchCase
	Default   *BlockStatement
}

func (s *Switch) statementNode()        {}
func (s *Switch) GetToken() token.Token { return s.Token }
func (s *Switch) String() string {
	var sb strings.Builder
	sb.WriteString("switch (" + s.Scrutinee.String() + ") { ")
	for _, c := range s.Cases {
		sb.WriteString("case " + c.Condition.String() + ": " + c.Body.String() + " ")
	}
	if s.Default != nil {
		sb.WriteString("default: " + s.Default.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

type Break struct {
	Token token.Token
}

func (b *Break) statementNode()        {}
func (b *Break) GetToken() token.Token { return b.Token }
func (b *Break) String() string        { return "break;" }

type Continue struct {
	Token token.Token
}

func (c *Continue) statementNode()        {}
func (c *Continue) GetToken() token.Token { return c.Token }
func (c *Continue) String() string        { return "continue;" }

type Return struct {
	Token token.Token
	Value Expression // nil for a bare return
}

func (r *Return) statementNode()        {}
func (r *Return) GetToken() token.Token { return r.Token }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// FuncDef declares a named function. Class methods reuse the same
// shape.
type FuncDef struct {
	Token  token.Token
	Name   string
	Params []token.Token
	Body   []Statement
}

func (f *FuncDef) statementNode()        {}
func (f *FuncDef) GetToken() token.Token { return f.Token }
func (f *FuncDef) String() string {
	params := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, p.Lexeme)
	}
	var sb strings.Builder
	sb.WriteString("func " + f.Name + "(" + strings.Join(params, ", ") + ") { ")
	for _, s := range f.Body {
		sb.WriteString(s.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

type ClassDef struct {
	Token   token.Token
	Name    string
	Methods []*FuncDef
}

func (c *ClassDef) statementNode()        {}
func (c *ClassDef) GetToken() token.Token { return c.Token }
func (c *ClassDef) String() string {
	var sb strings.Builder
	sb.WriteString("class " + c.Name + " { ")
	for _, m := range c.Methods {
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

type Print struct {
	Token token.Token
	Value Expression
}

func (p *Print) statementNode()        {}
func (p *Print) GetToken() token.Token { return p.Token }
func (p *Print) String() string        { return "print " + p.Value.String() + ";" }

type Import struct {
	Token  token.Token
	Module string
	Alias  string // empty when no 'as' clause
}

func (i *Import) statementNode()        {}
func (i *Import) GetToken() token.Token { return i.Token }
func (i *Import) String() string {
	if i.Alias != "" {
		return "import " + i.Module + " as " + i.Alias + ";"
	}
	return "import " + i.Module + ";"
}

// NewAssign introduces a binding: let name = value, optionally into
// the scope a path resolves to (let a.b = v).
type NewAssign struct {
	Token token.Token
	Path  Expression // nil for the current scope
	Name  string
	Value Expression
}

func (n *NewAssign) statementNode()        {}
func (n *NewAssign) GetToken() token.Token { return n.Token }
func (n *NewAssign) String() string {
	if n.Path != nil {
		return "let " + n.Path.String() + "." + n.Name + " = " + n.Value.String() + ";"
	}
	return "let " + n.Name + " = " + n.Value.String() + ";"
}

// Reassign replaces an existing binding or array element. Name is
// always set: a symbol target uses Name alone, an array target uses
// Name plus Index.
type Reassign struct {
	Token token.Token
	Path  Expression // nil for the current scope
	Name  string
	Index Expression // non-nil for array element targets
	Value Expression
}

func (r *Reassign) statementNode()        {}
func (r *Reassign) GetToken() token.Token { return r.Token }
func (r *Reassign) String() string {
	target := r.Name
	if r.Path != nil {
		target = r.Path.String() + "." + target
	}
	if r.Index != nil {
		target += "[" + r.Index.String() + "]"
	}
	return target + " = " + r.Value.String() + ";"
}

// AddAssign is '+=' on a symbol, optionally through a path.
type AddAssign struct {
	Token token.Token
	Path  Expression
	Name  string
	Value Expression
}

func (a *AddAssign) statementNode()        {}
func (a *AddAssign) GetToken() token.Token { return a.Token }
func (a *AddAssign) String() string {
	target := a.Name
	if a.Path != nil {
		target = a.Path.String() + "." + target
	}
	return target + " += " + a.Value.String() + ";"
}

// SubAssign is '-=' on a symbol, optionally through a path.
type SubAssign struct {
	Token token.Token
	Path  Expression
	Name  string
	Value Expression
}

func (s *SubAssign) statementNode()        {}
func (s *SubAssign) GetToken() token.Token { return s.Token }
func (s *SubAssign) String() string {
	target := s.Name
	if s.Path != nil {
		target = s.Path.String() + "." + target
	}
	return target + " -= " + s.Value.String() + ";"
}
