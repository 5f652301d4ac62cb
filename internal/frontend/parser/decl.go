package parser

import (
	"toyc/internal/frontend/ast"
	"toyc/internal/tokens"
	"toyc/internal/types"
)

// parseType consumes a primitive type name
func (p *Parser) parseType() (types.TYPE_NAME, error) {
	typ, ok := tokens.TypeName(p.tok.Kind)
	if !ok {
		return "", p.unexpected("type")
	}
	return typ, p.advance()
}

// parseBinding parses `[mut] name` and, when typed is set, a mandatory `: type`.
func (p *Parser) parseBinding(typed bool) (*ast.Declaration, error) {
	start := p.tok.Start
	decl := &ast.Declaration{Type: types.TYPE_UNDEFINED}

	if p.match(tokens.MUT_TOKEN) {
		decl.Mutable = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	name, err := p.expect(tokens.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}
	decl.Name = name.Value

	if typed || p.match(tokens.COLON_TOKEN) {
		if _, err := p.expect(tokens.COLON_TOKEN); err != nil {
			return nil, err
		}
		if decl.Type, err = p.parseType(); err != nil {
			return nil, err
		}
	}

	decl.Location = p.makeLocation(start)
	return decl, nil
}

// parseDeclaration parses `let [mut] name [: type] (';' | '=' expr ';')`
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	start := p.tok.Start
	if _, err := p.expect(tokens.LET_TOKEN); err != nil {
		return nil, err
	}

	decl, err := p.parseBinding(false)
	if err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case tokens.SEMICOLON_TOKEN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		decl.Location = p.makeLocation(start)
		return decl, nil
	case tokens.EQUALS_TOKEN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokens.SEMICOLON_TOKEN); err != nil {
			return nil, err
		}
		return &ast.DeclareAssign{Decl: decl, Value: value, Location: p.makeLocation(start)}, nil
	}
	return nil, p.unexpected("';' or '='")
}

// parseFunctionDef parses `fn name ( params ) [-> type] { body }`
func (p *Parser) parseFunctionDef() (*ast.FuncDef, error) {
	start := p.tok.Start
	if _, err := p.expect(tokens.FN_TOKEN); err != nil {
		return nil, err
	}

	name, err := p.expect(tokens.IDENTIFIER_TOKEN)
	if err != nil {
		return nil, err
	}
	sig := &ast.FunctionSignature{Name: name.Value, Return: types.TYPE_VOID}

	if _, err := p.expect(tokens.OPEN_PAREN); err != nil {
		return nil, err
	}
	for !p.match(tokens.CLOSE_PAREN) {
		param, err := p.parseBinding(true)
		if err != nil {
			return nil, err
		}
		sig.Params = append(sig.Params, *param)
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

	if p.match(tokens.ARROW_TOKEN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if sig.Return, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	sig.Location = p.makeLocation(start)

	if _, err := p.expect(tokens.OPEN_CURLY); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &ast.FuncDef{Signature: sig, Body: body, Location: p.makeLocation(start)}, nil
}
