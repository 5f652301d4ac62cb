package parser

import (
	"toyc/internal/frontend/ast"
	"toyc/internal/tokens"
)

func (p *Parser) parseExpression() (ast.Expression, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryRHS(0, lhs)
}

// parseBinaryRHS is precedence climbing: it folds operators binding at least
// as tight as minPrec onto lhs, left to right, and recurses when the next
// operator binds tighter than the one just consumed.
func (p *Parser) parseBinaryRHS(minPrec int, lhs ast.Expression) (ast.Expression, error) {
	for {
		prec := tokens.Precedence(p.tok.Kind)
		if prec < minPrec {
			return lhs, nil
		}

		op := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if prec < tokens.Precedence(p.tok.Kind) {
			if rhs, err = p.parseBinaryRHS(prec+1, rhs); err != nil {
				return nil, err
			}
		}

		start := lhs.Loc().Start
		lhs = &ast.BinaryExpr{X: lhs, Op: op, Y: rhs, Location: p.makeLocation(*start)}
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.tok
	switch tok.Kind {
	case tokens.IDENTIFIER_TOKEN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.match(tokens.OPEN_PAREN) {
			return p.parseCall(tok)
		}
		return &ast.VariableExpr{Name: tok.Value, Location: *tok.Location()}, nil
	case tokens.NUMBER_TOKEN:
		return &ast.NumberLit{Value: tok.Number, Location: *tok.Location()}, p.advance()
	case tokens.STRING_TOKEN:
		return &ast.StringLit{Value: tok.Value, Location: *tok.Location()}, p.advance()
	case tokens.TRUE_TOKEN, tokens.FALSE_TOKEN:
		return &ast.BoolLit{Value: tok.Kind == tokens.TRUE_TOKEN, Location: *tok.Location()}, p.advance()
	case tokens.OPEN_PAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokens.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, p.unexpected("expression")
}

// parseCall parses the argument list of a call to name; the current token is '('.
func (p *Parser) parseCall(name tokens.Token) (*ast.CallExpr, error) {
	if _, err := p.expect(tokens.OPEN_PAREN); err != nil {
		return nil, err
	}

	call := &ast.CallExpr{Callee: name.Value}
	for !p.match(tokens.CLOSE_PAREN) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if !p.match(tokens.COMMA_TOKEN) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokens.CLOSE_PAREN); err != nil {
		return nil, err
	}

	call.Location = p.makeLocation(name.Start)
	return call, nil
}
