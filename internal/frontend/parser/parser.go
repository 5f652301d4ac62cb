package parser

import (
	"fmt"

	"toyc/internal/frontend/ast"
	"toyc/internal/frontend/lexer"
	"toyc/internal/source"
	"toyc/internal/tokens"
)

// Parser pulls tokens from a lexer one at a time and keeps exactly one
// token of lookahead. Every parseX starts on the first token of X and
// returns positioned on the first token after it.
type Parser struct {
	lex  *lexer.Lexer
	tok  tokens.Token // current token
	prev tokens.Token // last consumed token
}

func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse parses a whole program held in src.
func Parse(src []byte) (*ast.Body, error) {
	return New(lexer.New(src)).Parse()
}

// ParseExpression parses src as a single expression.
func ParseExpression(src []byte) (ast.Expression, error) {
	p := New(lexer.New(src))
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.match(tokens.EOF_TOKEN) {
		return nil, p.unexpected("end of expression")
	}
	return expr, nil
}

// Parse reads top-level function definitions until EOF. Comments are skipped.
func (p *Parser) Parse() (*ast.Body, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	start := p.tok.Start

	body := &ast.Body{}
	for !p.match(tokens.EOF_TOKEN) {
		switch p.tok.Kind {
		case tokens.COMMENT_TOKEN:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokens.FN_TOKEN:
			fn, err := p.parseFunctionDef()
			if err != nil {
				return nil, err
			}
			body.Stmts = append(body.Stmts, fn)
		default:
			return nil, p.unexpected("function definition")
		}
	}

	body.Location = *source.Span(start, p.tok.End)
	return body, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.prev = p.tok
	p.tok = tok
	return nil
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the given kind
func (p *Parser) expect(kind tokens.TOKEN) (tokens.Token, error) {
	if !p.match(kind) {
		return p.tok, p.unexpected(fmt.Sprintf("'%s'", kind))
	}
	tok := p.tok
	return tok, p.advance()
}

// unexpected builds the error for the current token
func (p *Parser) unexpected(expected string) error {
	switch p.tok.Kind {
	case tokens.EOF_TOKEN:
		return &Error{Kind: UnexpectedEOF, Expected: expected, Found: p.tok}
	case tokens.UNKNOWN_TOKEN:
		return &lexer.Error{Kind: lexer.InvalidByte, Text: p.tok.Value, Location: p.tok.Location()}
	}
	return &Error{Kind: UnexpectedToken, Expected: expected, Found: p.tok}
}

func (p *Parser) makeLocation(start source.Position) source.Location {
	return *source.Span(start, p.prev.End)
}
