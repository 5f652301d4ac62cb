package typechecker

import (
	"fmt"

	"toyc/internal/diagnostics"
	"toyc/internal/source"
	"toyc/internal/types"
	str "toyc/internal/utils/strings"
)

type ErrorKind int

const (
	UndeclaredVariable ErrorKind = iota
	UndefinedFunction
	ArityMismatch
	ArgTypeMismatch
	IncompatibleOperands
	IncompatibleOperandType
	UnsupportedOperator
	InvalidReturnType
	UnresolvedInferenceTarget
)

var kindNames = [...]string{
	UndeclaredVariable:        "UndeclaredVariable",
	UndefinedFunction:         "UndefinedFunction",
	ArityMismatch:             "ArityMismatch",
	ArgTypeMismatch:           "ArgTypeMismatch",
	IncompatibleOperands:      "IncompatibleOperands",
	IncompatibleOperandType:   "IncompatibleOperandType",
	UnsupportedOperator:       "UnsupportedOperator",
	InvalidReturnType:         "InvalidReturnType",
	UnresolvedInferenceTarget: "UnresolvedInferenceTarget",
}

var kindCodes = [...]string{
	UndeclaredVariable:        diagnostics.ErrUndeclaredVariable,
	UndefinedFunction:         diagnostics.ErrUndefinedFunction,
	ArityMismatch:             diagnostics.ErrArityMismatch,
	ArgTypeMismatch:           diagnostics.ErrArgTypeMismatch,
	IncompatibleOperands:      diagnostics.ErrIncompatibleOperands,
	IncompatibleOperandType:   diagnostics.ErrIncompatibleOperandType,
	UnsupportedOperator:       diagnostics.ErrUnsupportedOperator,
	InvalidReturnType:         diagnostics.ErrInvalidReturnType,
	UnresolvedInferenceTarget: diagnostics.ErrUnresolvedInferenceTarget,
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Code is the diagnostic code reported for k
func (k ErrorKind) Code() string {
	if int(k) < len(kindCodes) {
		return kindCodes[k]
	}
	return ""
}

// Error is a type error. Checking of the scope that raised it stops there.
//
// Name is the variable, function or operator involved; it is empty for an
// if condition. Expected and Found are set for the mismatch kinds.
type Error struct {
	Kind     ErrorKind
	Name     string
	Expected types.TYPE_NAME
	Found    types.TYPE_NAME
	Arg      int // 1-based argument position for call argument mismatches
	Want     int // parameter count, ArityMismatch only
	Got      int // argument count, ArityMismatch only
	Location *source.Location
	Declared *source.Location // signature of the function involved, if any
}

func (e *Error) Line() int {
	return e.Location.Line()
}

// subject names what a mismatch is about
func (e *Error) subject() string {
	switch {
	case e.Arg > 0:
		return fmt.Sprintf("%s argument of '%s'", str.Ordinal(e.Arg), e.Name)
	case e.Name == "":
		return "if condition"
	}
	return fmt.Sprintf("'%s'", e.Name)
}

func (e *Error) message() string {
	switch e.Kind {
	case UndeclaredVariable:
		return fmt.Sprintf("undeclared variable '%s'", e.Name)
	case UndefinedFunction:
		return fmt.Sprintf("undefined function '%s'", e.Name)
	case ArityMismatch:
		return fmt.Sprintf("function '%s' takes %s but %s supplied",
			e.Name, str.Count(e.Want, "argument", "arguments"), str.Pluralize("1 was", fmt.Sprintf("%d were", e.Got), e.Got))
	case ArgTypeMismatch:
		return fmt.Sprintf("mismatched types for %s: expected %s, found %s", e.subject(), e.Expected, e.Found)
	case IncompatibleOperands:
		return fmt.Sprintf("incompatible operands for '%s': %s and %s", e.Name, e.Expected, e.Found)
	case IncompatibleOperandType:
		return fmt.Sprintf("operator '%s' cannot be applied to %s", e.Name, e.Found)
	case UnsupportedOperator:
		return fmt.Sprintf("operator '%s' is not supported in an expression", e.Name)
	case InvalidReturnType:
		return fmt.Sprintf("invalid return type: expected %s, found %s", e.Expected, e.Found)
	case UnresolvedInferenceTarget:
		if e.Found == types.TYPE_VOID {
			return fmt.Sprintf("cannot infer the type of '%s' from a void expression", e.Name)
		}
		return fmt.Sprintf("type of '%s' is not known", e.Name)
	}
	return "type error"
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line(), e.message())
}

func (e *Error) label() string {
	switch e.Kind {
	case UndeclaredVariable:
		return "not found in this scope"
	case UndefinedFunction:
		return "no function with this name is visible here"
	case ArityMismatch:
		return fmt.Sprintf("supplied %s", str.Count(e.Got, "argument", "arguments"))
	case ArgTypeMismatch, InvalidReturnType:
		return fmt.Sprintf("expected %s", e.Expected)
	case IncompatibleOperands:
		return "operand types differ"
	case IncompatibleOperandType:
		return fmt.Sprintf("%s operands", e.Found)
	case UnsupportedOperator:
		return "only valid as a statement"
	}
	return "type unknown"
}

func (e *Error) Diagnostic() *diagnostics.Diagnostic {
	d := diagnostics.NewError(e.message()).
		WithCode(e.Kind.Code()).
		WithPrimaryLabel(e.Location, e.label())

	if e.Declared != nil && e.Location != nil {
		d = d.WithSecondaryLabel(e.Declared, fmt.Sprintf("'%s' declared here", e.Name))
	}

	switch e.Kind {
	case UnsupportedOperator:
		d = d.WithHelp(fmt.Sprintf("write '%s' as its own statement", e.Name))
	case UnresolvedInferenceTarget:
		d = d.WithHelp("give the variable a type or initialize it where it is declared")
	case IncompatibleOperands:
		d = d.WithNote("both operands of a binary operator must have the same type")
	}
	return d
}
