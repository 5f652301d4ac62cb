package ast

import (
	"toyc/internal/source"
	"toyc/internal/tokens"
	"toyc/internal/types"
)

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	X    Expression      // left operand
	Op   tokens.Token    // operator
	Y    Expression      // right operand
	Type types.TYPE_NAME // type information (populated during semantic analysis)
	source.Location
}

func (b *BinaryExpr) INode()                {} // Implements Node interface
func (b *BinaryExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// VariableExpr is a use of a variable by name
type VariableExpr struct {
	Name string
	Type types.TYPE_NAME
	source.Location
}

func (v *VariableExpr) INode()                {} // Implements Node interface
func (v *VariableExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (v *VariableExpr) Loc() *source.Location { return &v.Location }

// CallExpr is a call by function name. As a statement its result is discarded
// and ResultIgnored is set.
type CallExpr struct {
	Callee        string
	Args          []Expression
	ResultIgnored bool
	Type          types.TYPE_NAME
	source.Location
}

func (c *CallExpr) INode()                {} // Implements Node interface
func (c *CallExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (c *CallExpr) Stmt()                 {} // Stmt is a marker interface for all statements
func (c *CallExpr) Loc() *source.Location { return &c.Location }

// TypeOf returns the checked type stored on an expression node
func TypeOf(expr Expression) types.TYPE_NAME {
	switch e := expr.(type) {
	case *BinaryExpr:
		return e.Type
	case *VariableExpr:
		return e.Type
	case *CallExpr:
		return e.Type
	case *NumberLit:
		return e.Type
	case *StringLit:
		return e.Type
	case *BoolLit:
		return e.Type
	}
	return ""
}
