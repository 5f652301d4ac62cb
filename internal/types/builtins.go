package types

type TYPE_NAME string

const (
	TYPE_U8   TYPE_NAME = "u8"
	TYPE_U16  TYPE_NAME = "u16"
	TYPE_U32  TYPE_NAME = "u32"
	TYPE_I8   TYPE_NAME = "i8"
	TYPE_I16  TYPE_NAME = "i16"
	TYPE_I32  TYPE_NAME = "i32"
	TYPE_STR  TYPE_NAME = "str"
	TYPE_CHAR TYPE_NAME = "char"
	TYPE_BOOL TYPE_NAME = "bool"
	TYPE_VOID TYPE_NAME = "void"

	// TYPE_UNDEFINED marks a declaration whose type is still waiting on inference.
	TYPE_UNDEFINED TYPE_NAME = "undefined"
)

// DEFAULT_INT_TYPE is the type of an integer literal with no surrounding context
const DEFAULT_INT_TYPE TYPE_NAME = TYPE_I32

var builtinTypes = map[string]TYPE_NAME{
	string(TYPE_U8):   TYPE_U8,
	string(TYPE_U16):  TYPE_U16,
	string(TYPE_U32):  TYPE_U32,
	string(TYPE_I8):   TYPE_I8,
	string(TYPE_I16):  TYPE_I16,
	string(TYPE_I32):  TYPE_I32,
	string(TYPE_STR):  TYPE_STR,
	string(TYPE_CHAR): TYPE_CHAR,
	string(TYPE_BOOL): TYPE_BOOL,
	string(TYPE_VOID): TYPE_VOID,
}

// FromName maps a primitive type keyword to its TYPE_NAME
func FromName(name string) (TYPE_NAME, bool) {
	t, ok := builtinTypes[name]
	return t, ok
}

func (t TYPE_NAME) String() string {
	return string(t)
}
