package parser

import (
	"github.com/sehnsucht13/zai-pl/internal/ast"
	"github.com/sehnsucht13/zai-pl/internal/token"
)

func (p *Parser) statement() (ast.Statement, error) {
	switch p.curToken().Type {
	case token.IF:
		return p.ifStatement()
	case token.FUNC:
		return p.funcDef()
	case token.CLASS:
		return p.classDef()
	case token.WHILE:
		return p.whileStatement()
	case token.DO:
		return p.doWhileStatement()
	case token.SWITCH:
		return p.switchStatement()
	case token.LCURLY:
		return p.block()
	case token.PRINT:
		return p.printStatement()
	case token.IMPORT:
		return p.importStatement()
	case token.RETURN, token.BREAK, token.CONTINUE:
		return p.flowStatement()
	case token.LET:
		return p.letStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() (*ast.BlockStatement, error) {
	open, err := p.match(token.LCURLY)
	if err != nil {
		return nil, err
	}
	blk := &ast.BlockStatement{Token: open}
	for !p.curTokenIs(token.RCURLY) {
		if p.curTokenIs(token.EOF) {
			return nil, p.parseError(token.RCURLY)
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		blk.Statements = append(blk.Statements, stmt)
	}
	p.advance()
	return blk, nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	tok, err := p.match(token.IF)
	if err != nil {
		return nil, err
	}
	node := &ast.If{Token: tok}

	cond, body, err := p.conditionBlock()
	if err != nil {
		return nil, err
	}
	node.Branches = append(node.Branches, ast.ConditionBlock{Condition: cond, Body: body})

	for p.curTokenIs(token.ELIF) {
		p.advance()
		cond, body, err := p.conditionBlock()
		if err != nil {
			return nil, err
		}
		node.Branches = append(node.Branches, ast.ConditionBlock{Condition: cond, Body: body})
	}

	if p.curTokenIs(token.ELSE) {
		p.advance()
		elseBlock, err := p.block()
		if err != nil {
			return nil, err
		}
		node.Else = elseBlock
	}
	return node, nil
}

// conditionBlock parses '( cond ) { body }', shared by if/elif and the
// loop statements.
func (p *Parser) conditionBlock() (ast.Expression, *ast.BlockStatement, error) {
	if _, err := p.match(token.LROUND); err != nil {
		return nil, nil, err
	}
	cond, err := p.orExpr()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.match(token.RROUND); err != nil {
		return nil, nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	tok, err := p.match(token.WHILE)
	if err != nil {
		return nil, err
	}
	cond, body, err := p.conditionBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) doWhileStatement() (ast.Statement, error) {
	tok, err := p.match(token.DO)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.match(token.LROUND); err != nil {
		return nil, err
	}
	cond, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RROUND); err != nil {
		return nil, err
	}
	if _, err := p.match(token.SEMIC); err != nil {
		return nil, err
	}
	return &ast.DoWhile{Token: tok, Condition: cond, Body: body}, nil
}

// switchCaseBody collects statements up to the next case/default
// label or the closing brace. Case bodies need no braces of their own.
func (p *Parser) switchCaseBody() (*ast.BlockStatement, error) {
	blk := &ast.BlockStatement{Token: p.curToken()}
	for !p.curTokenIs(token.CASE, token.DEFAULT, token.RCURLY) {
		if p.curTokenIs(token.EOF) {
			return nil, p.parseError(token.RCURLY)
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		blk.Statements = append(blk.Statements, stmt)
	}
	return blk, nil
}

func (p *Parser) switchStatement() (ast.Statement, error) {
	tok, err := p.match(token.SWITCH)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.LROUND); err != nil {
		return nil, err
	}
	scrutinee, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RROUND); err != nil {
		return nil, err
	}
	if _, err := p.match(token.LCURLY); err != nil {
		return nil, err
	}

	node := &ast.Switch{Token: tok, Scrutinee: scrutinee}
	for p.curTokenIs(token.CASE) {
		p.advance()
		cond, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(token.COLON); err != nil {
			return nil, err
		}
		body, err := p.switchCaseBody()
		if err != nil {
			return nil, err
		}
		node.Cases = append(node.Cases, ast.SwitchCase{Condition: cond, Body: body})
	}

	// The default clause is mandatory.
	if _, err := p.match(token.DEFAULT); err != nil {
		return nil, err
	}
	if _, err := p.match(token.COLON); err != nil {
		return nil, err
	}
	def, err := p.switchCaseBody()
	if err != nil {
		return nil, err
	}
	node.Default = def

	if _, err := p.match(token.RCURLY); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) funcDef() (*ast.FuncDef, error) {
	tok, err := p.match(token.FUNC)
	if err != nil {
		return nil, err
	}
	name, err := p.match(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.LROUND); err != nil {
		return nil, err
	}

	var params []token.Token
	if p.curTokenIs(token.ID) {
		params = append(params, p.advance())
		for p.curTokenIs(token.COMMA) {
			p.advance()
			param, err := p.match(token.ID)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}
	if _, err := p.match(token.RROUND); err != nil {
		return nil, err
	}

	if _, err := p.match(token.LCURLY); err != nil {
		return nil, err
	}
	var body []ast.Statement
	for !p.curTokenIs(token.RCURLY) {
		if p.curTokenIs(token.EOF) {
			return nil, p.parseError(token.RCURLY)
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	p.advance()

	return &ast.FuncDef{Token: tok, Name: name.Lexeme, Params: params, Body: body}, nil
}

func (p *Parser) classDef() (ast.Statement, error) {
	tok, err := p.match(token.CLASS)
	if err != nil {
		return nil, err
	}
	name, err := p.match(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.LCURLY); err != nil {
		return nil, err
	}

	var methods []*ast.FuncDef
	for !p.curTokenIs(token.RCURLY) {
		if p.curTokenIs(token.EOF) {
			return nil, p.parseError(token.RCURLY)
		}
		method, err := p.funcDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	p.advance()

	return &ast.ClassDef{Token: tok, Name: name.Lexeme, Methods: methods}, nil
}

func (p *Parser) printStatement() (ast.Statement, error) {
	tok, err := p.match(token.PRINT)
	if err != nil {
		return nil, err
	}
	value, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.SEMIC); err != nil {
		return nil, err
	}
	return &ast.Print{Token: tok, Value: value}, nil
}

func (p *Parser) importStatement() (ast.Statement, error) {
	tok, err := p.match(token.IMPORT)
	if err != nil {
		return nil, err
	}
	name, err := p.match(token.ID)
	if err != nil {
		return nil, err
	}
	node := &ast.Import{Token: tok, Module: name.Lexeme}
	if p.curTokenIs(token.AS) {
		p.advance()
		alias, err := p.match(token.ID)
		if err != nil {
			return nil, err
		}
		node.Alias = alias.Lexeme
	}
	if _, err := p.match(token.SEMIC); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) flowStatement() (ast.Statement, error) {
	var node ast.Statement
	switch p.curToken().Type {
	case token.RETURN:
		tok := p.advance()
		ret := &ast.Return{Token: tok}
		if !p.curTokenIs(token.SEMIC) {
			value, err := p.orExpr()
			if err != nil {
				return nil, err
			}
			ret.Value = value
		}
		node = ret
	case token.BREAK:
		node = &ast.Break{Token: p.advance()}
	case token.CONTINUE:
		node = &ast.Continue{Token: p.advance()}
	}
	if _, err := p.match(token.SEMIC); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) letStatement() (ast.Statement, error) {
	tok, err := p.match(token.LET)
	if err != nil {
		return nil, err
	}
	target, err := p.access()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.SEMIC); err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *ast.Symbol:
		return &ast.NewAssign{Token: tok, Name: t.Name, Value: value}, nil
	case *ast.PropertyAccess:
		return &ast.NewAssign{Token: tok, Path: t.Receiver, Name: t.Name, Value: value}, nil
	default:
		return nil, p.parseError(token.ID)
	}
}

// expressionStatement parses either a plain expression statement or an
// assignment. Assignment exists only here, at statement level, so
// chains like 'a = b = 1' cannot parse.
func (p *Parser) expressionStatement() (ast.Statement, error) {
	tok := p.curToken()
	expr, err := p.orExpr()
	if err != nil {
		return nil, err
	}

	var stmt ast.Statement
	switch p.curToken().Type {
	case token.ASSIGN:
		p.advance()
		value, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		stmt, err = p.reassignTarget(tok, expr, value)
		if err != nil {
			return nil, err
		}
	case token.ADDASSIGN:
		p.advance()
		value, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		switch t := expr.(type) {
		case *ast.Symbol:
			stmt = &ast.AddAssign{Token: tok, Name: t.Name, Value: value}
		case *ast.PropertyAccess:
			stmt = &ast.AddAssign{Token: tok, Path: t.Receiver, Name: t.Name, Value: value}
		default:
			return nil, p.parseError(token.ID)
		}
	case token.SUBASSIGN:
		p.advance()
		value, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		switch t := expr.(type) {
		case *ast.Symbol:
			stmt = &ast.SubAssign{Token: tok, Name: t.Name, Value: value}
		case *ast.PropertyAccess:
			stmt = &ast.SubAssign{Token: tok, Path: t.Receiver, Name: t.Name, Value: value}
		default:
			return nil, p.parseError(token.ID)
		}
	default:
		stmt = &ast.ExpressionStatement{Token: tok, Expression: expr}
	}

	if _, err := p.match(token.SEMIC); err != nil {
		return nil, err
	}
	return stmt, nil
}

// reassignTarget decomposes the left side of '=' into the Reassign
// shape. Only symbols, property paths and array slots are settable.
func (p *Parser) reassignTarget(tok token.Token, target ast.Expression, value ast.Expression) (ast.Statement, error) {
	switch t := target.(type) {
	case *ast.Symbol:
		return &ast.Reassign{Token: tok, Name: t.Name, Value: value}, nil
	case *ast.PropertyAccess:
		return &ast.Reassign{Token: tok, Path: t.Receiver, Name: t.Name, Value: value}, nil
	case *ast.ArrayAccess:
		switch recv := t.Receiver.(type) {
		case *ast.Symbol:
			return &ast.Reassign{Token: tok, Name: recv.Name, Index: t.Index, Value: value}, nil
		case *ast.PropertyAccess:
			return &ast.Reassign{Token: tok, Path: recv.Receiver, Name: recv.Name, Index: t.Index, Value: value}, nil
		default:
			return nil, p.parseError(token.ID)
		}
	default:
		return nil, p.parseError(token.ID)
	}
}
