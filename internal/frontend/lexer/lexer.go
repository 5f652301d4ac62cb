package lexer

import (
	"errors"
	"strconv"

	"toyc/internal/source"
	"toyc/internal/tokens"
)

// Lexer turns a byte buffer into tokens on demand.
type Lexer struct {
	src []byte
	pos source.Position
}

func New(src []byte) *Lexer {
	return &Lexer{
		src: src,
		pos: source.Start(),
	}
}

// Line is the line of the cursor
func (lex *Lexer) Line() int {
	return lex.pos.Line
}

// Position returns the cursor so the lexer can be restarted there with Seek.
func (lex *Lexer) Position() source.Position {
	return lex.pos
}

func (lex *Lexer) Seek(pos source.Position) {
	lex.pos = pos
}

func (lex *Lexer) atEOF() bool {
	return lex.pos.Index >= len(lex.src)
}

func (lex *Lexer) peek(offset int) byte {
	i := lex.pos.Index + offset
	if i >= len(lex.src) {
		return 0
	}
	return lex.src[i]
}

func (lex *Lexer) advance(n int) {
	for ; n > 0 && !lex.atEOF(); n-- {
		lex.pos.Advance(lex.src[lex.pos.Index])
	}
}

func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (lex *Lexer) skipWhitespace() {
	for !lex.atEOF() && isSpace(lex.src[lex.pos.Index]) {
		lex.advance(1)
	}
}

func (lex *Lexer) emit(kind tokens.TOKEN, start source.Position) tokens.Token {
	return tokens.NewToken(kind, "", start, lex.pos)
}

// twoByteOps lists, per leading byte, the second bytes that extend it.
var twoByteOps = map[byte]map[byte]tokens.TOKEN{
	'+': {'=': tokens.PLUS_EQUALS_TOKEN},
	'-': {'=': tokens.MINUS_EQUALS_TOKEN, '>': tokens.ARROW_TOKEN},
	'*': {'=': tokens.MUL_EQUALS_TOKEN},
	'/': {'=': tokens.DIV_EQUALS_TOKEN},
	'&': {'=': tokens.BIT_AND_EQUALS_TOKEN, '&': tokens.AND_TOKEN},
	'|': {'=': tokens.BIT_OR_EQUALS_TOKEN, '|': tokens.OR_TOKEN},
	'^': {'=': tokens.BIT_XOR_EQUALS_TOKEN, '^': tokens.XOR_TOKEN},
	'=': {'=': tokens.DOUBLE_EQUAL_TOKEN},
	'!': {'=': tokens.NOT_EQUAL_TOKEN},
	'<': {'<': tokens.SHIFT_LEFT_TOKEN},
	'>': {'>': tokens.SHIFT_RIGHT_TOKEN},
}

var oneByteOps = map[byte]tokens.TOKEN{
	'+': tokens.PLUS_TOKEN,
	'-': tokens.MINUS_TOKEN,
	'*': tokens.MUL_TOKEN,
	'/': tokens.DIV_TOKEN,
	'&': tokens.BIT_AND_TOKEN,
	'|': tokens.BIT_OR_TOKEN,
	'^': tokens.BIT_XOR_TOKEN,
	'=': tokens.EQUALS_TOKEN,
	'!': tokens.NOT_TOKEN,
	'<': tokens.LESS_TOKEN,
	'>': tokens.GREATER_TOKEN,
	',': tokens.COMMA_TOKEN,
	';': tokens.SEMICOLON_TOKEN,
	':': tokens.COLON_TOKEN,
	'[': tokens.OPEN_BRACKET,
	']': tokens.CLOSE_BRACKET,
	'(': tokens.OPEN_PAREN,
	')': tokens.CLOSE_PAREN,
	'{': tokens.OPEN_CURLY,
	'}': tokens.CLOSE_CURLY,
}

// Next returns the next token. Once the input is exhausted it keeps returning EOF.
func (lex *Lexer) Next() (tokens.Token, error) {
	lex.skipWhitespace()

	start := lex.pos
	if lex.atEOF() {
		return lex.emit(tokens.EOF_TOKEN, start), nil
	}

	ch := lex.src[lex.pos.Index]
	switch {
	case isLetter(ch):
		return lex.scanWord(start), nil
	case isDigit(ch):
		return lex.scanNumber(start)
	case ch == '"':
		return lex.scanString(start)
	case ch == '/' && lex.peek(1) == '/':
		return lex.scanComment(start), nil
	}

	if kind, ok := twoByteOps[ch][lex.peek(1)]; ok {
		lex.advance(2)
		return lex.emit(kind, start), nil
	}
	if kind, ok := oneByteOps[ch]; ok {
		lex.advance(1)
		return lex.emit(kind, start), nil
	}

	lex.advance(1)
	return tokens.NewToken(tokens.UNKNOWN_TOKEN, string(lex.src[start.Index:lex.pos.Index]), start, lex.pos), nil
}

func (lex *Lexer) scanWord(start source.Position) tokens.Token {
	for !lex.atEOF() && (isLetter(lex.peek(0)) || isDigit(lex.peek(0))) {
		lex.advance(1)
	}
	word := string(lex.src[start.Index:lex.pos.Index])
	kind := tokens.Lookup(word)
	if kind != tokens.IDENTIFIER_TOKEN {
		return lex.emit(kind, start)
	}
	return tokens.NewToken(kind, word, start, lex.pos)
}

func (lex *Lexer) scanNumber(start source.Position) (tokens.Token, error) {
	for !lex.atEOF() && isDigit(lex.peek(0)) {
		lex.advance(1)
	}
	text := string(lex.src[start.Index:lex.pos.Index])

	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return tokens.Token{}, &Error{Kind: NumberOverflow, Text: text, Location: source.Span(start, lex.pos)}
		}
		return tokens.Token{}, err
	}

	tok := lex.emit(tokens.NUMBER_TOKEN, start)
	tok.Number = int32(value)
	return tok, nil
}

// scanString consumes through the closing quote; there are no escapes.
func (lex *Lexer) scanString(start source.Position) (tokens.Token, error) {
	lex.advance(1)
	for !lex.atEOF() && lex.peek(0) != '"' {
		lex.advance(1)
	}
	if lex.atEOF() {
		return tokens.Token{}, &Error{
			Kind:     UnterminatedStringLiteral,
			Text:     string(lex.src[start.Index:lex.pos.Index]),
			Location: source.Span(start, lex.pos),
		}
	}
	body := string(lex.src[start.Index+1 : lex.pos.Index])
	lex.advance(1)
	return tokens.NewToken(tokens.STRING_TOKEN, body, start, lex.pos), nil
}

// scanComment stops before the newline so line counting stays with skipWhitespace.
func (lex *Lexer) scanComment(start source.Position) tokens.Token {
	lex.advance(2)
	from := lex.pos.Index
	for !lex.atEOF() && lex.peek(0) != '\n' {
		lex.advance(1)
	}
	return tokens.NewToken(tokens.COMMENT_TOKEN, string(lex.src[from:lex.pos.Index]), start, lex.pos)
}

// Tokenize drains the lexer. The returned slice ends with the EOF token.
func (lex *Lexer) Tokenize() ([]tokens.Token, error) {
	var toks []tokens.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == tokens.EOF_TOKEN {
			return toks, nil
		}
	}
}
