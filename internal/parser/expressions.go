package parser

import (
	"github.com/sehnsucht13/zai-pl/internal/ast"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

// The precedence cascade, lowest binding first. Every binary level is
// a left-associative fold.

func (p *Parser) orExpr() (ast.Expression, error) {
	left, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.OR) {
		op := p.advance()
		right, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.Logic{Token: op, Left: left, Op: op.Type, Right: right}
	}
	return left, nil
}

func (p *Parser) andExpr() (ast.Expression, error) {
	left, err := p.eqExpr()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.AND) {
		op := p.advance()
		right, err := p.eqExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.Logic{Token: op, Left: left, Op: op.Type, Right: right}
	}
	return left, nil
}

func (p *Parser) eqExpr() (ast.Expression, error) {
	left, err := p.relExpr()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.EQ, token.NEQ) {
		op := p.advance()
		right, err := p.relExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.Eq{Token: op, Left: left, Op: op.Type, Right: right}
	}
	return left, nil
}

func (p *Parser) relExpr() (ast.Expression, error) {
	left, err := p.addExpr()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.LT, token.LTE, token.GT, token.GTE) {
		op := p.advance()
		right, err := p.addExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.Relop{Token: op, Left: left, Op: op.Type, Right: right}
	}
	return left, nil
}

func (p *Parser) addExpr() (ast.Expression, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.PLUS, token.MINUS) {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &ast.Arith{Token: op, Left: left, Op: op.Type, Right: right}
	}
	return left, nil
}

func (p *Parser) term() (ast.Expression, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.curTokenIs(token.MUL, token.DIV) {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.Arith{Token: op, Left: left, Op: op.Type, Right: right}
	}
	return left, nil
}

func (p *Parser) factor() (ast.Expression, error) {
	if p.curTokenIs(token.BANG, token.MINUS) {
		op := p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Token: op, Op: op.Type, Operand: operand}, nil
	}

	node, err := p.primary()
	if err != nil {
		return nil, err
	}

	// Postfix '++'/'--' chain on whatever primary produced.
	for p.curTokenIs(token.INCR, token.DECR) {
		op := p.advance()
		if op.Type == token.INCR {
			node = &ast.Incr{Token: op, Target: node}
		} else {
			node = &ast.Decr{Token: op, Target: node}
		}
	}
	return node, nil
}

func (p *Parser) primary() (ast.Expression, error) {
	switch p.curToken().Type {
	case token.ID, token.THIS:
		return p.access()
	case token.LROUND:
		open := p.advance()
		inner, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(token.RROUND); err != nil {
			return nil, err
		}
		return &ast.Group{Token: open, Inner: inner}, nil
	default:
		return p.atom()
	}
}

// access parses a symbol or 'this' followed by any chain of '.name',
// '[index]' and '(args)' suffixes.
func (p *Parser) access() (ast.Expression, error) {
	var left ast.Expression
	if p.curTokenIs(token.THIS) {
		left = &ast.This{Token: p.advance()}
	} else {
		tok, err := p.match(token.ID)
		if err != nil {
			return nil, err
		}
		left = &ast.Symbol{Token: tok, Name: tok.Lexeme}
	}

	for p.curTokenIs(token.DOT, token.LSQUARE, token.LROUND) {
		switch p.curToken().Type {
		case token.DOT:
			dot := p.advance()
			name, err := p.match(token.ID)
			if err != nil {
				return nil, err
			}
			left = &ast.PropertyAccess{Token: dot, Receiver: left, Name: name.Lexeme}
		case token.LSQUARE:
			open := p.advance()
			idx, err := p.orExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.match(token.RSQUARE); err != nil {
				return nil, err
			}
			left = &ast.ArrayAccess{Token: open, Receiver: left, Index: idx}
		case token.LROUND:
			open := p.advance()
			args, err := p.arglist()
			if err != nil {
				return nil, err
			}
			if _, err := p.match(token.RROUND); err != nil {
				return nil, err
			}
			left = &ast.Call{Token: open, Callee: left, Arguments: args}
		}
	}
	return left, nil
}

func (p *Parser) arglist() ([]ast.Expression, error) {
	var args []ast.Expression
	for !p.curTokenIs(token.RROUND) {
		arg, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.curTokenIs(token.RROUND) {
			if _, err := p.match(token.COMMA); err != nil {
				return nil, err
			}
		}
	}
	return args, nil
}

func (p *Parser) atom() (ast.Expression, error) {
	switch p.curToken().Type {
	case token.DQUOTE:
		p.advance()
		str, err := p.match(token.STRING)
		if err != nil {
			return nil, err
		}
		if _, err := p.match(token.DQUOTE); err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Token: str, Value: str.Lexeme}, nil
	case token.INT:
		tok := p.advance()
		return &ast.IntegerLiteral{Token: tok, Value: parseInt(tok.Lexeme)}, nil
	case token.FLOAT:
		tok := p.advance()
		return &ast.FloatLiteral{Token: tok, Value: parseFloat(tok.Lexeme)}, nil
	case token.LSQUARE:
		open := p.advance()
		var elems []ast.Expression
		for !p.curTokenIs(token.RSQUARE) {
			elem, err := p.orExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if !p.curTokenIs(token.RSQUARE) {
				if _, err := p.match(token.COMMA); err != nil {
					return nil, err
				}
			}
		}
		p.advance()
		return &ast.ArrayLiteral{Token: open, Elements: elems}, nil
	case token.NIL:
		return &ast.NilLiteral{Token: p.advance()}, nil
	case token.TRUE, token.FALSE:
		tok := p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}, nil
	default:
		return nil, p.parseError(token.DQUOTE, token.INT, token.FLOAT, token.LSQUARE, token.NIL, token.TRUE, token.FALSE)
	}
}
