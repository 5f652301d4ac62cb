package resolver

import (
	"toyc/internal/frontend/ast"
)

// VariableResolver is an append-only list of the variables visible in a scope.
// Entries are copies; nothing in the tree is referenced.
type VariableResolver struct {
	vars []ast.Declaration
}

func NewVariableResolver() *VariableResolver {
	return &VariableResolver{}
}

// Add registers decl. A later entry with the same name shadows earlier ones.
func (r *VariableResolver) Add(decl ast.Declaration) {
	r.vars = append(r.vars, decl)
}

// Resolve returns the most recently added declaration named name.
func (r *VariableResolver) Resolve(name string) (ast.Declaration, bool) {
	for i := len(r.vars) - 1; i >= 0; i-- {
		if r.vars[i].Name == name {
			return r.vars[i], true
		}
	}
	return ast.Declaration{}, false
}

// EnterScope returns a child seeded with a snapshot of r.
// Additions to the child never reach r.
func (r *VariableResolver) EnterScope() *VariableResolver {
	vars := make([]ast.Declaration, len(r.vars))
	copy(vars, r.vars)
	return &VariableResolver{vars: vars}
}

func (r *VariableResolver) Len() int {
	return len(r.vars)
}

// FunctionResolver is the flat function namespace of a scope.
type FunctionResolver struct {
	sigs []ast.FunctionSignature
}

func NewFunctionResolver() *FunctionResolver {
	return &FunctionResolver{}
}

func (r *FunctionResolver) Add(sig ast.FunctionSignature) {
	r.sigs = append(r.sigs, sig.Clone())
}

// AddFromBody registers the signature of every function defined directly in body.
func (r *FunctionResolver) AddFromBody(body *ast.Body) {
	for _, fn := range body.Functions() {
		r.Add(*fn.Signature)
	}
}

// Resolve returns the most recently added signature named name.
func (r *FunctionResolver) Resolve(name string) (ast.FunctionSignature, bool) {
	for i := len(r.sigs) - 1; i >= 0; i-- {
		if r.sigs[i].Name == name {
			return r.sigs[i].Clone(), true
		}
	}
	return ast.FunctionSignature{}, false
}

// EnterScope returns a child seeded with a snapshot of r.
func (r *FunctionResolver) EnterScope() *FunctionResolver {
	sigs := make([]ast.FunctionSignature, len(r.sigs))
	for i, sig := range r.sigs {
		sigs[i] = sig.Clone()
	}
	return &FunctionResolver{sigs: sigs}
}

func (r *FunctionResolver) Len() int {
	return len(r.sigs)
}
