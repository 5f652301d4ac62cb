package lexer

import (
	"errors"
	"fmt"
	"testing"

	"toyc/internal/tokens"
)

func kinds(t *testing.T, src string) []tokens.TOKEN {
	t.Helper()
	toks, err := New([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	out := make([]tokens.TOKEN, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []tokens.TOKEN
	}{
		{"+ +=", []tokens.TOKEN{tokens.PLUS_TOKEN, tokens.PLUS_EQUALS_TOKEN}},
		{"- -= ->", []tokens.TOKEN{tokens.MINUS_TOKEN, tokens.MINUS_EQUALS_TOKEN, tokens.ARROW_TOKEN}},
		{"* *= / /=", []tokens.TOKEN{tokens.MUL_TOKEN, tokens.MUL_EQUALS_TOKEN, tokens.DIV_TOKEN, tokens.DIV_EQUALS_TOKEN}},
		{"& && &=", []tokens.TOKEN{tokens.BIT_AND_TOKEN, tokens.AND_TOKEN, tokens.BIT_AND_EQUALS_TOKEN}},
		{"| || |=", []tokens.TOKEN{tokens.BIT_OR_TOKEN, tokens.OR_TOKEN, tokens.BIT_OR_EQUALS_TOKEN}},
		{"^ ^^ ^=", []tokens.TOKEN{tokens.BIT_XOR_TOKEN, tokens.XOR_TOKEN, tokens.BIT_XOR_EQUALS_TOKEN}},
		{"= == ! !=", []tokens.TOKEN{tokens.EQUALS_TOKEN, tokens.DOUBLE_EQUAL_TOKEN, tokens.NOT_TOKEN, tokens.NOT_EQUAL_TOKEN}},
		{"< << > >>", []tokens.TOKEN{tokens.LESS_TOKEN, tokens.SHIFT_LEFT_TOKEN, tokens.GREATER_TOKEN, tokens.SHIFT_RIGHT_TOKEN}},
		// <= and >= are not operators of the language
		{"<=", []tokens.TOKEN{tokens.LESS_TOKEN, tokens.EQUALS_TOKEN}},
		{"&&&", []tokens.TOKEN{tokens.AND_TOKEN, tokens.BIT_AND_TOKEN}},
		{"===", []tokens.TOKEN{tokens.DOUBLE_EQUAL_TOKEN, tokens.EQUALS_TOKEN}},
		{",;:[](){}", []tokens.TOKEN{tokens.COMMA_TOKEN, tokens.SEMICOLON_TOKEN, tokens.COLON_TOKEN,
			tokens.OPEN_BRACKET, tokens.CLOSE_BRACKET, tokens.OPEN_PAREN, tokens.CLOSE_PAREN,
			tokens.OPEN_CURLY, tokens.CLOSE_CURLY}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(t, tt.input)
			expected := append(tt.expected, tokens.EOF_TOKEN)
			if fmt.Sprint(got) != fmt.Sprint(expected) {
				t.Errorf("got %v, expected %v", got, expected)
			}
		})
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks, err := New([]byte("fn let mut if while return true false print break u8 u16 u32 i8 i16 i32 str char bool void foo x1 Fn")).Tokenize()
	if err != nil {
		t.Fatal(err)
	}

	expected := []tokens.TOKEN{
		tokens.FN_TOKEN, tokens.LET_TOKEN, tokens.MUT_TOKEN, tokens.IF_TOKEN, tokens.WHILE_TOKEN,
		tokens.RETURN_TOKEN, tokens.TRUE_TOKEN, tokens.FALSE_TOKEN, tokens.PRINT_TOKEN, tokens.BREAK_TOKEN,
		tokens.U8_TOKEN, tokens.U16_TOKEN, tokens.U32_TOKEN, tokens.I8_TOKEN, tokens.I16_TOKEN,
		tokens.I32_TOKEN, tokens.STR_TOKEN, tokens.CHAR_TOKEN, tokens.BOOL_TOKEN, tokens.VOID_TOKEN,
		tokens.IDENTIFIER_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.EOF_TOKEN,
	}
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, tok := range toks {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: got %q, expected %q", i, tok.Kind, expected[i])
		}
	}
	if toks[21].Value != "x1" {
		t.Errorf("expected identifier payload x1, got %q", toks[21].Value)
	}
}

func TestUnderscoreIsNotPartOfIdentifier(t *testing.T) {
	toks, err := New([]byte("a_b")).Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 4 || toks[1].Kind != tokens.UNKNOWN_TOKEN || toks[1].Value != "_" {
		t.Errorf("unexpected tokens %v", toks)
	}
}

func TestUnknownNonASCIIByte(t *testing.T) {
	toks, err := New([]byte("t = \xc3\xa9;")).Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if toks[2].Kind != tokens.UNKNOWN_TOKEN || toks[2].Value != "\xc3" {
		t.Fatalf("expected the raw first byte, got %+v", toks[2])
	}

	lexErr := &Error{Kind: InvalidByte, Text: toks[2].Value, Location: toks[2].Location()}
	if got := lexErr.Error(); got != `line 1: invalid byte "\xc3"` {
		t.Errorf("unexpected message %s", got)
	}
}

func TestNumbers(t *testing.T) {
	for _, value := range []int32{0, 1, 7, 255, 65536, 1000000, 2147483647} {
		src := fmt.Sprint(value)
		tok, err := New([]byte(src)).Next()
		if err != nil {
			t.Fatalf("lexing %s: %v", src, err)
		}
		if tok.Kind != tokens.NUMBER_TOKEN || tok.Number != value {
			t.Errorf("lexing %s: got %v", src, tok)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	for _, src := range []string{"2147483648", "99999999999"} {
		_, err := New([]byte(src)).Next()

		var lexErr *Error
		if !errors.As(err, &lexErr) || lexErr.Kind != NumberOverflow {
			t.Errorf("lexing %s: expected NumberOverflow, got %v", src, err)
			continue
		}
		if lexErr.Text != src {
			t.Errorf("expected offending text %q, got %q", src, lexErr.Text)
		}
	}
}

func TestStrings(t *testing.T) {
	tok, err := New([]byte(`"hello \n world"`)).Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != tokens.STRING_TOKEN || tok.Value != `hello \n world` {
		t.Errorf("unexpected token %+v", tok)
	}
}

func TestUnterminatedString(t *testing.T) {
	lex := New([]byte("let s = \"abc"))
	for i := 0; i < 3; i++ {
		if _, err := lex.Next(); err != nil {
			t.Fatalf("unexpected error before the string: %v", err)
		}
	}

	_, err := lex.Next()
	var lexErr *Error
	if !errors.As(err, &lexErr) || lexErr.Kind != UnterminatedStringLiteral {
		t.Fatalf("expected UnterminatedStringLiteral, got %v", err)
	}
	if lexErr.Line() != 1 {
		t.Errorf("expected line 1, got %d", lexErr.Line())
	}
}

func TestComments(t *testing.T) {
	lex := New([]byte("// first line\nlet // trailing\n"))

	tok, _ := lex.Next()
	if tok.Kind != tokens.COMMENT_TOKEN || tok.Value != " first line" {
		t.Errorf("unexpected first token %+v", tok)
	}
	tok, _ = lex.Next()
	if tok.Kind != tokens.LET_TOKEN || tok.Start.Line != 2 {
		t.Errorf("expected let on line 2, got %+v", tok)
	}
	tok, _ = lex.Next()
	if tok.Kind != tokens.COMMENT_TOKEN || tok.Value != " trailing" {
		t.Errorf("unexpected trailing comment %+v", tok)
	}
	if lex.Line() != 2 {
		t.Errorf("comment must not consume the newline, line is %d", lex.Line())
	}
}

func TestUnknownBytesDoNotAbort(t *testing.T) {
	got := kinds(t, "a $ b @")
	expected := []tokens.TOKEN{tokens.IDENTIFIER_TOKEN, tokens.UNKNOWN_TOKEN, tokens.IDENTIFIER_TOKEN, tokens.UNKNOWN_TOKEN, tokens.EOF_TOKEN}
	if fmt.Sprint(got) != fmt.Sprint(expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	lex := New([]byte("x"))
	lex.Next()
	for i := 0; i < 3; i++ {
		tok, err := lex.Next()
		if err != nil || tok.Kind != tokens.EOF_TOKEN {
			t.Fatalf("call %d: expected EOF, got %v, %v", i, tok, err)
		}
	}
}

func TestLineCounting(t *testing.T) {
	lex := New([]byte("fn\n\n  main\r\n(\t)"))
	var lines []int
	for {
		tok, err := lex.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind == tokens.EOF_TOKEN {
			break
		}
		lines = append(lines, tok.Start.Line)
	}
	if fmt.Sprint(lines) != "[1 3 4 4]" {
		t.Errorf("unexpected lines %v", lines)
	}
}

func TestSeekRestarts(t *testing.T) {
	lex := New([]byte("let x = 10;"))
	lex.Next()
	mark := lex.Position()

	first, _ := lex.Next()
	lex.Next()
	lex.Seek(mark)
	again, _ := lex.Next()

	if first != again {
		t.Errorf("expected the same token after Seek, got %v and %v", first, again)
	}
}

func TestTokenPositions(t *testing.T) {
	toks, err := New([]byte("let abc = 12;")).Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	ident := toks[1]
	if ident.Start.Column != 5 || ident.End.Column != 8 || ident.Start.Index != 4 || ident.End.Index != 7 {
		t.Errorf("unexpected identifier span %+v - %+v", ident.Start, ident.End)
	}
}
