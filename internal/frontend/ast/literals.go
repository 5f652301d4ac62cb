package ast

import (
	"toyc/internal/source"
	"toyc/internal/types"
)

type NumberLit struct {
	Value int32
	Type  types.TYPE_NAME
	source.Location
}

func (n *NumberLit) INode()                {} // Implements Node interface
func (n *NumberLit) Expr()                 {} // Expr is a marker interface for all expressions
func (n *NumberLit) Loc() *source.Location { return &n.Location }

// StringLit holds the text between the quotes
type StringLit struct {
	Value string
	Type  types.TYPE_NAME
	source.Location
}

func (s *StringLit) INode()                {} // Implements Node interface
func (s *StringLit) Expr()                 {} // Expr is a marker interface for all expressions
func (s *StringLit) Loc() *source.Location { return &s.Location }

type BoolLit struct {
	Value bool
	Type  types.TYPE_NAME
	source.Location
}

func (b *BoolLit) INode()                {} // Implements Node interface
func (b *BoolLit) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BoolLit) Loc() *source.Location { return &b.Location }
