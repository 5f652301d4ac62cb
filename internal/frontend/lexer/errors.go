package lexer

import (
	"fmt"

	"toyc/internal/diagnostics"
	"toyc/internal/source"
)

type ErrorKind int

const (
	InvalidByte ErrorKind = iota
	NumberOverflow
	UnterminatedStringLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidByte:
		return "InvalidByte"
	case NumberOverflow:
		return "NumberOverflow"
	case UnterminatedStringLiteral:
		return "UnterminatedStringLiteral"
	}
	return "Unknown"
}

// Error is a lexical failure. Text holds the offending lexeme.
type Error struct {
	Kind     ErrorKind
	Text     string
	Location *source.Location
}

func (e *Error) Line() int {
	return e.Location.Line()
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidByte:
		return fmt.Sprintf("line %d: invalid byte %q", e.Line(), e.Text)
	case NumberOverflow:
		return fmt.Sprintf("line %d: integer literal %s does not fit in i32", e.Line(), e.Text)
	default:
		return fmt.Sprintf("line %d: unterminated string literal", e.Line())
	}
}

func (e *Error) Diagnostic() *diagnostics.Diagnostic {
	switch e.Kind {
	case InvalidByte:
		return diagnostics.NewError(fmt.Sprintf("invalid byte %q in source", e.Text)).
			WithCode(diagnostics.ErrInvalidByte).
			WithPrimaryLabel(e.Location, "not part of the language")
	case NumberOverflow:
		return diagnostics.NewError("integer literal is too large").
			WithCode(diagnostics.ErrNumberOverflow).
			WithPrimaryLabel(e.Location, "does not fit in i32").
			WithNote("integer literals must lie between 0 and 2147483647")
	default:
		return diagnostics.NewError("unterminated string literal").
			WithCode(diagnostics.ErrUnterminatedString).
			WithPrimaryLabel(e.Location, "string starts here").
			WithHelp(`add a closing '"'`)
	}
}
