package ast

import (
	"toyc/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	Expr()
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Body is an ordered statement sequence: a function body, an if branch, or the whole program.
type Body struct {
	Stmts []Statement
	source.Location
}

func (b *Body) INode()                {} // Implements Node interface
func (b *Body) Loc() *source.Location { return &b.Location }

// Functions returns the function definitions directly inside b, in source order.
func (b *Body) Functions() []*FuncDef {
	var fns []*FuncDef
	for _, stmt := range b.Stmts {
		if fn, ok := stmt.(*FuncDef); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
