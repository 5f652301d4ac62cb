package parser

import (
	"toyc/internal/frontend/ast"
	"toyc/internal/tokens"
)

// parseBody parses statements up to and including the closing '}'.
// The opening '{' has already been consumed by the caller.
func (p *Parser) parseBody() (*ast.Body, error) {
	start := p.prev.Start
	body := &ast.Body{}

	for {
		var (
			stmt ast.Statement
			err  error
		)

		switch p.tok.Kind {
		case tokens.CLOSE_CURLY:
			if err := p.advance(); err != nil {
				return nil, err
			}
			body.Location = p.makeLocation(start)
			return body, nil
		case tokens.COMMENT_TOKEN:
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		case tokens.LET_TOKEN:
			stmt, err = p.parseDeclaration()
		case tokens.FN_TOKEN:
			stmt, err = p.parseFunctionDef()
		case tokens.RETURN_TOKEN:
			stmt, err = p.parseReturn()
		case tokens.IDENTIFIER_TOKEN:
			stmt, err = p.parseIdentStmt()
		case tokens.IF_TOKEN:
			stmt, err = p.parseIf()
		default:
			return nil, p.unexpected("statement or '}'")
		}

		if err != nil {
			return nil, err
		}
		body.Stmts = append(body.Stmts, stmt)
	}
}

func (p *Parser) parseReturn() (*ast.ReturnStmt, error) {
	start := p.tok.Start
	if _, err := p.expect(tokens.RETURN_TOKEN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.SEMICOLON_TOKEN); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value, Location: p.makeLocation(start)}, nil
}

// parseIf parses `if cond { body }`
func (p *Parser) parseIf() (*ast.IfStmt, error) {
	start := p.tok.Start
	if _, err := p.expect(tokens.IF_TOKEN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.OPEN_CURLY); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.IfStmt{Cond: cond, Body: body, Location: p.makeLocation(start)}, nil
}

// parseIdentStmt parses `name(args);`, `name = expr;` or `name op= expr;`.
// The compound form is stored as `name = name op expr`.
func (p *Parser) parseIdentStmt() (ast.Statement, error) {
	start := p.tok.Start
	name, err := p.expect(tokens.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}
	target := &ast.VariableExpr{Name: name.Value, Location: *name.Location()}

	var stmt ast.Statement
	switch {
	case p.match(tokens.OPEN_PAREN):
		call, err := p.parseCall(name)
		if err != nil {
			return nil, err
		}
		call.ResultIgnored = true
		stmt = call
	case p.match(tokens.EQUALS_TOKEN):
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt = &ast.AssignStmt{Target: target, Value: value}
	case tokens.IsCompoundAssign(p.tok.Kind):
		op := p.tok
		op.Kind, _ = tokens.CompoundBase(op.Kind)
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		current := &ast.VariableExpr{Name: target.Name, Location: target.Location}
		stmt = &ast.AssignStmt{
			Target: target,
			Value:  &ast.BinaryExpr{X: current, Op: op, Y: value, Location: p.makeLocation(start)},
		}
	default:
		return nil, p.unexpected("'(' or '='")
	}

	if _, err := p.expect(tokens.SEMICOLON_TOKEN); err != nil {
		return nil, err
	}

	loc := p.makeLocation(start)
	switch s := stmt.(type) {
	case *ast.CallExpr:
		s.Location = loc
	case *ast.AssignStmt:
		s.Location = loc
	}
	return stmt, nil
}
