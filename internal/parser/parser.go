// Package parser builds the AST from a token stream by recursive
// descent. One token of lookahead is enough for the whole grammar; the
// first error aborts the parse.
package parser

import (
	"strconv"

	"github.com/sehnsucht13/zai-pl/internal/ast"
	"github.com/sehnsucht13/zai-pl/internal/diagnostics"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

type Parser struct {
	tokens []token.Token
	pos    int
	source string
}

func New(tokens []token.Token, source string) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{{Type: token.EOF}}
	}
	return &Parser{tokens: tokens, source: source}
}

// Parse consumes the whole token stream and returns the program root.
func Parse(tokens []token.Token, source string) (*ast.Program, error) {
	return New(tokens, source).ParseProgram()
}

func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *Parser) curToken() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) curTokenIs(types ...token.TokenType) bool {
	cur := p.curToken().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// peek returns the token n positions ahead of the current one.
func (p *Parser) peek(n int) token.Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() token.Token {
	tok := p.curToken()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// match consumes and returns the current token when its type is one of
// the given ones, or fails with a parse error naming the expected set.
func (p *Parser) match(types ...token.TokenType) (token.Token, error) {
	if p.curTokenIs(types...) {
		return p.advance(), nil
	}
	return token.Token{}, diagnostics.NewParseError(p.curToken(), p.source, types...)
}

func (p *Parser) parseError(expected ...token.TokenType) error {
	return diagnostics.NewParseError(p.curToken(), p.source, expected...)
}

func parseInt(lexeme string) int64 {
	v, _ := strconv.ParseInt(lexeme, 10, 64)
	return v
}

func parseFloat(lexeme string) float64 {
	v, _ := strconv.ParseFloat(lexeme, 64)
	return v
}
