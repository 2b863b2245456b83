// Package ast defines the syntax tree produced by the parser. Every
// node keeps the token that introduced it for error positions.
package ast

import (
	"strings"

	"github.com/sehnsucht13/zai-pl/internal/token"
)

type Node interface {
	GetToken() token.Token
	String() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parsed source text.
type Program struct {
	Statements []Statement
}

func (p *Program) GetToken() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetToken()
	}
	return token.Token{Type: token.EOF}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// BlockStatement is a brace-delimited statement list evaluated in its
// own scope. Switch case bodies reuse it without the braces.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (b *BlockStatement) statementNode()        {}
func (b *BlockStatement) GetToken() token.Token { return b.Token }
func (b *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range b.Statements {
		sb.WriteString(s.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// ExpressionStatement is an expression evaluated for its side effects,
// terminated by a semicolon.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()        {}
func (e *ExpressionStatement) GetToken() token.Token { return e.Token }
func (e *ExpressionStatement) String() string {
	if e.Expression == nil {
		return ";"
	}
	return e.Expression.String() + ";"
}
