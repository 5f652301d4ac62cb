package types

import "math"

func GetNumberBitSize(kind TYPE_NAME) uint8 {
	switch kind {
	case TYPE_I8, TYPE_U8:
		return 8
	case TYPE_I16, TYPE_U16:
		return 16
	case TYPE_I32, TYPE_U32:
		return 32
	default:
		return 0
	}
}

func IsSigned(kind TYPE_NAME) bool {
	switch kind {
	case TYPE_I8, TYPE_I16, TYPE_I32:
		return true
	default:
		return false
	}
}

func IsUnsigned(kind TYPE_NAME) bool {
	switch kind {
	case TYPE_U8, TYPE_U16, TYPE_U32:
		return true
	default:
		return false
	}
}

// IsInteger reports whether kind is one of the six integer kinds
func IsInteger(kind TYPE_NAME) bool {
	return IsSigned(kind) || IsUnsigned(kind)
}

// Range returns the inclusive bounds of an integer kind.
// ok is false for non-integer kinds.
func Range(kind TYPE_NAME) (lo, hi int64, ok bool) {
	switch kind {
	case TYPE_I8:
		return math.MinInt8, math.MaxInt8, true
	case TYPE_I16:
		return math.MinInt16, math.MaxInt16, true
	case TYPE_I32:
		return math.MinInt32, math.MaxInt32, true
	case TYPE_U8:
		return 0, math.MaxUint8, true
	case TYPE_U16:
		return 0, math.MaxUint16, true
	case TYPE_U32:
		return 0, math.MaxUint32, true
	}
	return 0, 0, false
}

// Fits reports whether value is representable in the integer kind
func Fits(value int64, kind TYPE_NAME) bool {
	lo, hi, ok := Range(kind)
	if !ok {
		return false
	}
	return value >= lo && value <= hi
}
