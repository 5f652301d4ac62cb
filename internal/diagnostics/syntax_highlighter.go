package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"toyc/colors"
	"toyc/internal/tokens"
)

// SyntaxHighlighter colors source snippets shown under diagnostics
type SyntaxHighlighter struct {
	enabled bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

// Token represents a highlighted token
type Token struct {
	Text  string
	Color colors.COLOR
}

func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isSpace(b byte) bool  { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

// Highlight splits a line into colored runs.
// Lexical classes follow the language: no escapes in strings, no underscores in identifiers.
func (sh *SyntaxHighlighter) Highlight(line string) []Token {
	if !sh.enabled {
		return []Token{{Text: line, Color: colors.WHITE}}
	}

	var out []Token
	i := 0
	for i < len(line) {
		start := i
		switch c := line[i]; {
		case isSpace(c):
			for i < len(line) && isSpace(line[i]) {
				i++
			}
			out = append(out, Token{Text: line[start:i], Color: colors.WHITE})
		case c == '"':
			i++
			for i < len(line) && line[i] != '"' {
				i++
			}
			if i < len(line) {
				i++
			}
			out = append(out, Token{Text: line[start:i], Color: colors.LIGHT_GREEN})
		case isDigit(c):
			for i < len(line) && isDigit(line[i]) {
				i++
			}
			out = append(out, Token{Text: line[start:i], Color: colors.LIGHT_YELLOW})
		case isLetter(c):
			for i < len(line) && (isLetter(line[i]) || isDigit(line[i])) {
				i++
			}
			word := line[start:i]
			color := colors.WHITE
			if tokens.IsKeyword(word) {
				color = colors.PURPLE
			} else if tokens.IsBuiltinType(word) {
				color = colors.LIGHT_ORANGE
			}
			out = append(out, Token{Text: word, Color: color})
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			out = append(out, Token{Text: line[i:], Color: colors.GREY})
			i = len(line)
		default:
			i++
			out = append(out, Token{Text: line[start:i], Color: colors.WHITE})
		}
	}

	return out
}

// HighlightLine returns a highlighted line as a string ready for printing
func (sh *SyntaxHighlighter) HighlightLine(line string) string {
	var result strings.Builder
	sh.HighlightWithColor(line, &result)
	return result.String()
}

// HighlightWithColor writes the highlighted line to writer
func (sh *SyntaxHighlighter) HighlightWithColor(line string, writer io.Writer) {
	if !sh.enabled {
		fmt.Fprint(writer, line)
		return
	}

	for _, token := range sh.Highlight(line) {
		token.Color.Fprint(writer, token.Text)
	}
}
