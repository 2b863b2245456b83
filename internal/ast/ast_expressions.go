package ast

import (
	"strings"

	"github.com/sehnsucht13/zai-pl/internal/token"
)

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (i *IntegerLiteral) expressionNode()       {}
func (i *IntegerLiteral) GetToken() token.Token { return i.Token }
func (i *IntegerLiteral) String() string        { return i.Token.Lexeme }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (f *FloatLiteral) expressionNode()       {}
func (f *FloatLiteral) GetToken() token.Token { return f.Token }
func (f *FloatLiteral) String() string        { return f.Token.Lexeme }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()       {}
func (s *StringLiteral) GetToken() token.Token { return s.Token }
func (s *StringLiteral) String() string        { return "\"" + s.Value + "\"" }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()       {}
func (b *BooleanLiteral) GetToken() token.Token { return b.Token }
func (b *BooleanLiteral) String() string        { return b.Token.Lexeme }

type NilLiteral struct {
	Token token.Token
}

func (n *NilLiteral) expressionNode()       {}
func (n *NilLiteral) GetToken() token.Token { return n.Token }
func (n *NilLiteral) String() string        { return "nil" }

type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode()       {}
func (a *ArrayLiteral) GetToken() token.Token { return a.Token }
func (a *ArrayLiteral) String() string {
	elems := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elems = append(elems, e.String())
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// Symbol is a variable read.
type Symbol struct {
	Token token.Token
	Name  string
}

func (s *Symbol) expressionNode()       {}
func (s *Symbol) GetToken() token.Token { return s.Token }
func (s *Symbol) String() string        { return s.Name }

// This resolves to the instance scope inside a class method.
type This struct {
	Token token.Token
}

func (t *This) expressionNode()       {}
func (t *This) GetToken() token.Token { return t.Token }
func (t *This) String() string        { return "this" }

// PropertyAccess is dotted access: receiver.Name.
type PropertyAccess struct {
	Token    token.Token
	Receiver Expression
	Name     string
}

func (p *PropertyAccess) expressionNode()       {}
func (p *PropertyAccess) GetToken() token.Token { return p.Token }
func (p *PropertyAccess) String() string        { return p.Receiver.String() + "." + p.Name }

// ArrayAccess is receiver[index].
type ArrayAccess struct {
	Token    token.Token
	Receiver Expression
	Index    Expression
}

func (a *ArrayAccess) expressionNode()       {}
func (a *ArrayAccess) GetToken() token.Token { return a.Token }
func (a *ArrayAccess) String() string        { return a.Receiver.String() + "[" + a.Index.String() + "]" }

type Call struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

func (c *Call) expressionNode()       {}
func (c *Call) GetToken() token.Token { return c.Token }
func (c *Call) String() string {
	args := make([]string, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		args = append(args, a.String())
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Unary is prefix '!' or '-'.
type Unary struct {
	Token   token.Token
	Op      token.TokenType
	Operand Expression
}

func (u *Unary) expressionNode()       {}
func (u *Unary) GetToken() token.Token { return u.Token }
func (u *Unary) String() string        { return "(" + u.Token.Lexeme + u.Operand.String() + ")" }

// Incr is the postfix '++' operator. It writes back target+1 and
// yields the new value.
type Incr struct {
	Token  token.Token
	Target Expression
}

func (i *Incr) expressionNode()       {}
func (i *Incr) GetToken() token.Token { return i.Token }
func (i *Incr) String() string        { return "(" + i.Target.String() + "++)" }

// Decr is the postfix '--' operator.
type Decr struct {
	Token  token.Token
	Target Expression
}

func (d *Decr) expressionNode()       {}
func (d *Decr) GetToken() token.Token { return d.Token }
func (d *Decr) String() string        { return "(" + d.Target.String() + "--)" }

// The four binary groups stay distinct node kinds so that the
// precedence layering is visible in the tree shape itself.

// Arith is '+', '-', '*', '/'.
type Arith struct {
	Token token.Token
	Left  Expression
	Op    token.TokenType
	Right Expression
}

func (a *Arith) expressionNode()       {}
func (a *Arith) GetToken() token.Token { return a.Token }
func (a *Arith) String() string {
	return "(" + a.Left.String() + " " + token.Describe(a.Op) + " " + a.Right.String() + ")"
}

// Relop is '<', '<=', '>', '>='.
type Relop struct {
	Token token.Token
	Left  Expression
	Op    token.TokenType
	Right Expression
}

func (r *Relop) expressionNode()       {}
func (r *Relop) GetToken() token.Token { return r.Token }
func (r *Relop) String() string {
	return "(" + r.Left.String() + " " + token.Describe(r.Op) + " " + r.Right.String() + ")"
}

// Eq is '==' and '!='.
type Eq struct {
	Token token.Token
	Left  Expression
	Op    token.TokenType
	Right Expression
}

func (e *Eq) expressionNode()       {}
func (e *Eq) GetToken() token.Token { return e.Token }
func (e *Eq) String() string {
	return "(" + e.Left.String() + " " + token.Describe(e.Op) + " " + e.Right.String() + ")"
}

// Logic is '&&' and '||'.
type Logic struct {
	Token token.Token
	Left  Expression
	Op    token.TokenType
	Right Expression
}

func (l *Logic) expressionNode()       {}
func (l *Logic) GetToken() token.Token { return l.Token }
func (l *Logic) String() string {
	return "(" + l.Left.String() + " " + token.Describe(l.Op) + " " + l.Right.String() + ")"
}

// Group is a parenthesized expression.
type Group struct {
	Token token.Token
	Inner Expression
}

func (g *Group) expressionNode()       {}
func (g *Group) GetToken() token.Token { return g.Token }
func (g *Group) String() string        { return "(" + g.Inner.String() + ")" }
