package ast

import (
	"toyc/internal/source"
	"toyc/internal/types"
)

// FunctionSignature is what callers of a function are checked against
type FunctionSignature struct {
	Name   string
	Params []Declaration
	Return types.TYPE_NAME
	source.Location
}

// Clone returns a copy that shares no parameter storage with s
func (s FunctionSignature) Clone() FunctionSignature {
	params := make([]Declaration, len(s.Params))
	copy(params, s.Params)
	s.Params = params
	return s
}

type FuncDef struct {
	Signature *FunctionSignature
	Body      *Body
	source.Location
}

func (f *FuncDef) INode()                {} // Implements Node interface
func (f *FuncDef) Stmt()                 {} // Stmt is a marker interface for all statements
func (f *FuncDef) Loc() *source.Location { return &f.Location }
