package ast

import (
	"toyc/internal/source"
	"toyc/internal/types"
)

// Declaration introduces a variable. Type is TYPE_UNDEFINED until inferred.
type Declaration struct {
	Name    string
	Type    types.TYPE_NAME
	Mutable bool
	source.Location
}

func (d *Declaration) INode()                {} // Implements Node interface
func (d *Declaration) Stmt()                 {} // Stmt is a marker interface for all statements
func (d *Declaration) Loc() *source.Location { return &d.Location }

// DeclareAssign is `let name [: type] = value;`
type DeclareAssign struct {
	Decl  *Declaration
	Value Expression
	source.Location
}

func (d *DeclareAssign) INode()                {} // Implements Node interface
func (d *DeclareAssign) Stmt()                 {} // Stmt is a marker interface for all statements
func (d *DeclareAssign) Loc() *source.Location { return &d.Location }

// AssignStmt is `target = value;`
type AssignStmt struct {
	Target *VariableExpr
	Value  Expression
	source.Location
}

func (a *AssignStmt) INode()                {} // Implements Node interface
func (a *AssignStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

type ReturnStmt struct {
	Value Expression
	source.Location
}

func (r *ReturnStmt) INode()                {} // Implements Node interface
func (r *ReturnStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (r *ReturnStmt) Loc() *source.Location { return &r.Location }

// IfStmt has no else branch
type IfStmt struct {
	Cond Expression
	Body *Body
	source.Location
}

func (i *IfStmt) INode()                {} // Implements Node interface
func (i *IfStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (i *IfStmt) Loc() *source.Location { return &i.Location }
