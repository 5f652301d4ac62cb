package tokens

import (
	"fmt"
	"io"

	"toyc/colors"
	"toyc/internal/source"
	"toyc/internal/types"
)

type TOKEN string

const (
	//keywords
	FN_TOKEN     TOKEN = "fn"
	LET_TOKEN    TOKEN = "let"
	MUT_TOKEN    TOKEN = "mut"
	IF_TOKEN     TOKEN = "if"
	WHILE_TOKEN  TOKEN = "while"
	RETURN_TOKEN TOKEN = "return"
	TRUE_TOKEN   TOKEN = "true"
	FALSE_TOKEN  TOKEN = "false"
	PRINT_TOKEN  TOKEN = "print"
	BREAK_TOKEN  TOKEN = "break"
	//primitive type names
	U8_TOKEN   TOKEN = TOKEN(types.TYPE_U8)
	U16_TOKEN  TOKEN = TOKEN(types.TYPE_U16)
	U32_TOKEN  TOKEN = TOKEN(types.TYPE_U32)
	I8_TOKEN   TOKEN = TOKEN(types.TYPE_I8)
	I16_TOKEN  TOKEN = TOKEN(types.TYPE_I16)
	I32_TOKEN  TOKEN = TOKEN(types.TYPE_I32)
	STR_TOKEN  TOKEN = TOKEN(types.TYPE_STR)
	CHAR_TOKEN TOKEN = TOKEN(types.TYPE_CHAR)
	BOOL_TOKEN TOKEN = TOKEN(types.TYPE_BOOL)
	VOID_TOKEN TOKEN = TOKEN(types.TYPE_VOID)
	//literals
	IDENTIFIER_TOKEN TOKEN = "identifier"
	NUMBER_TOKEN     TOKEN = "numeric literal"
	STRING_TOKEN     TOKEN = "string literal"
	COMMENT_TOKEN    TOKEN = "comment"
	//arithmetic operators
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	//bitwise operators
	BIT_AND_TOKEN     TOKEN = "&"
	BIT_OR_TOKEN      TOKEN = "|"
	BIT_XOR_TOKEN     TOKEN = "^"
	SHIFT_LEFT_TOKEN  TOKEN = "<<"
	SHIFT_RIGHT_TOKEN TOKEN = ">>"
	//logical operators
	AND_TOKEN TOKEN = "&&"
	OR_TOKEN  TOKEN = "||"
	XOR_TOKEN TOKEN = "^^"
	NOT_TOKEN TOKEN = "!"
	//comparison
	DOUBLE_EQUAL_TOKEN TOKEN = "=="
	NOT_EQUAL_TOKEN    TOKEN = "!="
	LESS_TOKEN         TOKEN = "<"
	GREATER_TOKEN      TOKEN = ">"
	//assignment
	EQUALS_TOKEN         TOKEN = "="
	PLUS_EQUALS_TOKEN    TOKEN = "+="
	MINUS_EQUALS_TOKEN   TOKEN = "-="
	MUL_EQUALS_TOKEN     TOKEN = "*="
	DIV_EQUALS_TOKEN     TOKEN = "/="
	BIT_AND_EQUALS_TOKEN TOKEN = "&="
	BIT_OR_EQUALS_TOKEN  TOKEN = "|="
	BIT_XOR_EQUALS_TOKEN TOKEN = "^="
	//delimiters
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_BRACKET    TOKEN = "["
	CLOSE_BRACKET   TOKEN = "]"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	COMMA_TOKEN     TOKEN = ","
	SEMICOLON_TOKEN TOKEN = ";"
	COLON_TOKEN     TOKEN = ":"
	ARROW_TOKEN     TOKEN = "->"

	UNKNOWN_TOKEN TOKEN = "unknown"
	EOF_TOKEN     TOKEN = "end_of_file"
)

var keyWordsMap = map[string]TOKEN{
	"fn":     FN_TOKEN,
	"let":    LET_TOKEN,
	"mut":    MUT_TOKEN,
	"if":     IF_TOKEN,
	"while":  WHILE_TOKEN,
	"return": RETURN_TOKEN,
	"true":   TRUE_TOKEN,
	"false":  FALSE_TOKEN,
	"print":  PRINT_TOKEN,
	"break":  BREAK_TOKEN,
}

var builtinTypes = map[string]TOKEN{
	string(types.TYPE_U8):   U8_TOKEN,
	string(types.TYPE_U16):  U16_TOKEN,
	string(types.TYPE_U32):  U32_TOKEN,
	string(types.TYPE_I8):   I8_TOKEN,
	string(types.TYPE_I16):  I16_TOKEN,
	string(types.TYPE_I32):  I32_TOKEN,
	string(types.TYPE_STR):  STR_TOKEN,
	string(types.TYPE_CHAR): CHAR_TOKEN,
	string(types.TYPE_BOOL): BOOL_TOKEN,
	string(types.TYPE_VOID): VOID_TOKEN,
}

// Lookup returns the keyword or type token for word, or IDENTIFIER_TOKEN
func Lookup(word string) TOKEN {
	if kind, ok := keyWordsMap[word]; ok {
		return kind
	}
	if kind, ok := builtinTypes[word]; ok {
		return kind
	}
	return IDENTIFIER_TOKEN
}

func IsKeyword(word string) bool {
	_, ok := keyWordsMap[word]
	return ok
}

func IsBuiltinType(word string) bool {
	_, ok := builtinTypes[word]
	return ok
}

// TypeName maps a primitive type token to its type
func TypeName(kind TOKEN) (types.TYPE_NAME, bool) {
	if _, ok := builtinTypes[string(kind)]; !ok {
		return "", false
	}
	return types.FromName(string(kind))
}

type Token struct {
	Kind   TOKEN
	Value  string // identifier, string, comment and unknown payloads
	Number int32  // payload of NUMBER_TOKEN
	Start  source.Position
	End    source.Position
}

// Location returns the span the token covers
func (t *Token) Location() *source.Location {
	return source.Span(t.Start, t.End)
}

// Lexeme is the source spelling of the token
func (t *Token) Lexeme() string {
	switch t.Kind {
	case IDENTIFIER_TOKEN, UNKNOWN_TOKEN:
		return t.Value
	case NUMBER_TOKEN:
		return fmt.Sprintf("%d", t.Number)
	case STRING_TOKEN:
		return `"` + t.Value + `"`
	case COMMENT_TOKEN:
		return "//" + t.Value
	case EOF_TOKEN:
		return ""
	}
	return string(t.Kind)
}

func (t Token) String() string {
	switch t.Kind {
	case IDENTIFIER_TOKEN, NUMBER_TOKEN, STRING_TOKEN, UNKNOWN_TOKEN:
		return fmt.Sprintf("%s %s", t.Kind, t.Lexeme())
	case EOF_TOKEN:
		return "end of file"
	}
	return fmt.Sprintf("'%s'", t.Lexeme())
}

func (t *Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Lexeme() == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Lexeme())
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Lexeme(), t.Kind)
	}
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}
