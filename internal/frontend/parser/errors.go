package parser

import (
	"fmt"

	"toyc/internal/diagnostics"
	"toyc/internal/source"
	"toyc/internal/tokens"
)

type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEOF
)

func (k ErrorKind) String() string {
	if k == UnexpectedEOF {
		return "UnexpectedEOF"
	}
	return "UnexpectedToken"
}

// Error is a syntax error. Parsing stops at the first one.
type Error struct {
	Kind     ErrorKind
	Expected string // what the parser was looking for, e.g. "';'" or "expression"
	Found    tokens.Token
}

func (e *Error) Line() int {
	return e.Found.Start.Line
}

func (e *Error) Error() string {
	if e.Kind == UnexpectedEOF {
		return fmt.Sprintf("line %d: unexpected end of file, expected %s", e.Line(), e.Expected)
	}
	return fmt.Sprintf("line %d: unexpected token %s, expected %s", e.Line(), e.Found, e.Expected)
}

func (e *Error) Diagnostic() *diagnostics.Diagnostic {
	if e.Kind == UnexpectedEOF {
		loc := source.Span(e.Found.Start, e.Found.Start)
		return diagnostics.NewError("unexpected end of file").
			WithCode(diagnostics.ErrUnexpectedEOF).
			WithPrimaryLabel(loc, "expected "+e.Expected).
			WithHelp("the input ends in the middle of a construct")
	}
	return diagnostics.NewError(fmt.Sprintf("unexpected token %s", e.Found)).
		WithCode(diagnostics.ErrUnexpectedToken).
		WithPrimaryLabel(e.Found.Location(), "expected "+e.Expected)
}
