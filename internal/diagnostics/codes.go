package diagnostics

// Error codes
const (
	// Lexer errors (L prefix)
	ErrInvalidByte        = "L0001"
	ErrNumberOverflow     = "L0002"
	ErrUnterminatedString = "L0003"

	// Parser errors (P prefix)
	ErrUnexpectedToken = "P0001"
	ErrUnexpectedEOF   = "P0002"

	// Type checker errors (T prefix)
	ErrUndeclaredVariable        = "T0001"
	ErrUndefinedFunction         = "T0002"
	ErrArityMismatch             = "T0003"
	ErrArgTypeMismatch           = "T0004"
	ErrIncompatibleOperands      = "T0005"
	ErrIncompatibleOperandType   = "T0006"
	ErrUnsupportedOperator       = "T0007"
	ErrInvalidReturnType         = "T0008"
	ErrUnresolvedInferenceTarget = "T0009"

	// Control flow warnings (W prefix)
	WarnUnreachableCode = "W0001"
	WarnMissingReturn   = "W0002"
)
