package ast

import (
	"strings"
	"testing"

	"toyc/internal/tokens"
	"toyc/internal/types"
)

func v(name string) *VariableExpr { return &VariableExpr{Name: name} }

func bin(x Expression, op tokens.TOKEN, y Expression) *BinaryExpr {
	return &BinaryExpr{X: x, Op: tokens.Token{Kind: op}, Y: y}
}

func TestFormatExprParens(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expression
		expected string
	}{
		{"tighter right operand", bin(v("a"), tokens.PLUS_TOKEN, bin(v("b"), tokens.MUL_TOKEN, v("c"))), "a + b * c"},
		{"looser right operand", bin(bin(v("a"), tokens.PLUS_TOKEN, v("b")), tokens.MUL_TOKEN, v("c")), "(a + b) * c"},
		{"left chain", bin(bin(v("a"), tokens.MINUS_TOKEN, v("b")), tokens.MINUS_TOKEN, v("c")), "a - b - c"},
		{"right chain", bin(v("a"), tokens.MINUS_TOKEN, bin(v("b"), tokens.MINUS_TOKEN, v("c"))), "a - (b - c)"},
		{"logical", bin(bin(v("a"), tokens.AND_TOKEN, v("b")), tokens.OR_TOKEN, v("c")), "a && b || c"},
		{"literals", bin(&NumberLit{Value: 3}, tokens.DOUBLE_EQUAL_TOKEN, &CallExpr{Callee: "f", Args: []Expression{&StringLit{Value: "x"}, &BoolLit{Value: true}}}), `3 == f("x", true)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatExpr(tt.expr); got != tt.expected {
				t.Errorf("FormatExpr() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestFormatBody(t *testing.T) {
	body := &Body{Stmts: []Statement{
		&FuncDef{
			Signature: &FunctionSignature{
				Name:   "add",
				Params: []Declaration{{Name: "a", Type: types.TYPE_U8}, {Name: "b", Type: types.TYPE_U8, Mutable: true}},
				Return: types.TYPE_U8,
			},
			Body: &Body{Stmts: []Statement{
				&DeclareAssign{Decl: &Declaration{Name: "s", Type: types.TYPE_UNDEFINED}, Value: bin(v("a"), tokens.PLUS_TOKEN, v("b"))},
				&IfStmt{Cond: &BoolLit{Value: false}, Body: &Body{Stmts: []Statement{
					&CallExpr{Callee: "log", ResultIgnored: true},
				}}},
				&ReturnStmt{Value: v("s")},
			}},
		},
		&FuncDef{
			Signature: &FunctionSignature{Name: "main", Return: types.TYPE_VOID},
			Body:      &Body{Stmts: []Statement{&Declaration{Name: "x", Type: types.TYPE_STR}, &AssignStmt{Target: v("x"), Value: &StringLit{Value: "hi"}}}},
		},
	}}

	expected := strings.Join([]string{
		"fn add(a: u8, mut b: u8) -> u8 {",
		"    let s = a + b;",
		"    if false {",
		"        log();",
		"    }",
		"    return s;",
		"}",
		"",
		"fn main() {",
		"    let x: str;",
		`    x = "hi";`,
		"}",
		"",
	}, "\n")

	if got := Format(body); got != expected {
		t.Errorf("Format() mismatch\n got:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestSignatureCloneIsIndependent(t *testing.T) {
	sig := FunctionSignature{Name: "f", Params: []Declaration{{Name: "a", Type: types.TYPE_I32}}}
	clone := sig.Clone()
	clone.Params[0].Type = types.TYPE_STR

	if sig.Params[0].Type != types.TYPE_I32 {
		t.Error("mutating a clone must not affect the original")
	}
}

func TestBodyFunctions(t *testing.T) {
	a := &FuncDef{Signature: &FunctionSignature{Name: "a"}}
	b := &FuncDef{Signature: &FunctionSignature{Name: "b"}}
	body := &Body{Stmts: []Statement{a, &Declaration{Name: "x"}, b}}

	fns := body.Functions()
	if len(fns) != 2 || fns[0] != a || fns[1] != b {
		t.Errorf("unexpected functions %v", fns)
	}
}

func TestTypeOf(t *testing.T) {
	n := &NumberLit{Value: 1, Type: types.TYPE_U8}
	if TypeOf(n) != types.TYPE_U8 {
		t.Errorf("TypeOf() = %q", TypeOf(n))
	}
}
