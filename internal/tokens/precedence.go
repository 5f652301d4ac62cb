package tokens

// Precedence returns the binding power of a binary operator token.
// Higher binds tighter; -1 means the token does not continue an expression.
func Precedence(kind TOKEN) int {
	switch kind {
	case PLUS_EQUALS_TOKEN, MINUS_EQUALS_TOKEN, MUL_EQUALS_TOKEN, DIV_EQUALS_TOKEN,
		BIT_AND_EQUALS_TOKEN, BIT_OR_EQUALS_TOKEN, BIT_XOR_EQUALS_TOKEN:
		return 0
	case OR_TOKEN:
		return 1
	case AND_TOKEN:
		return 3
	case XOR_TOKEN:
		return 5
	case DOUBLE_EQUAL_TOKEN, NOT_EQUAL_TOKEN, GREATER_TOKEN, LESS_TOKEN:
		return 7
	case BIT_OR_TOKEN:
		return 9
	case BIT_XOR_TOKEN:
		return 11
	case BIT_AND_TOKEN:
		return 13
	case SHIFT_LEFT_TOKEN, SHIFT_RIGHT_TOKEN:
		return 15
	case PLUS_TOKEN, MINUS_TOKEN:
		return 17
	case MUL_TOKEN, DIV_TOKEN:
		return 19
	case NOT_TOKEN:
		return 21
	}
	return -1
}

// IsCompoundAssign reports whether kind is one of the op= operators
func IsCompoundAssign(kind TOKEN) bool {
	return Precedence(kind) == 0
}

// CompoundBase maps an op= operator to the binary operator it applies
func CompoundBase(kind TOKEN) (TOKEN, bool) {
	switch kind {
	case PLUS_EQUALS_TOKEN:
		return PLUS_TOKEN, true
	case MINUS_EQUALS_TOKEN:
		return MINUS_TOKEN, true
	case MUL_EQUALS_TOKEN:
		return MUL_TOKEN, true
	case DIV_EQUALS_TOKEN:
		return DIV_TOKEN, true
	case BIT_AND_EQUALS_TOKEN:
		return BIT_AND_TOKEN, true
	case BIT_OR_EQUALS_TOKEN:
		return BIT_OR_TOKEN, true
	case BIT_XOR_EQUALS_TOKEN:
		return BIT_XOR_TOKEN, true
	}
	return "", false
}
