package controlflow

import (
	"fmt"

	"toyc/internal/diagnostics"
	"toyc/internal/frontend/ast"
	"toyc/internal/source"
	"toyc/internal/types"
)

// ControlFlowGraph represents the control flow structure of a function
type ControlFlowGraph struct {
	Entry *BasicBlock
	Exit  *BasicBlock // virtual, reached by returns and by falling off the end
}

// BasicBlock is a run of statements with one entry and one exit
type BasicBlock struct {
	ID          int
	Stmts       []ast.Statement
	Successors  []*BasicBlock
	Returns     bool // ends in a return
	CanFallThru bool
}

type WarningKind int

const (
	UnreachableCode WarningKind = iota
	MissingReturn
)

// Warning is a control flow finding. It never fails a check.
type Warning struct {
	Kind     WarningKind
	Function string
	Return   types.TYPE_NAME
	Location *source.Location
}

func (w *Warning) Error() string {
	if w.Kind == MissingReturn {
		return fmt.Sprintf("line %d: function '%s' can end without returning %s", w.Location.Line(), w.Function, w.Return)
	}
	return fmt.Sprintf("line %d: unreachable code in '%s'", w.Location.Line(), w.Function)
}

func (w *Warning) Diagnostic() *diagnostics.Diagnostic {
	if w.Kind == MissingReturn {
		return diagnostics.NewWarning(fmt.Sprintf("function '%s' can end without returning a value of type %s", w.Function, w.Return)).
			WithCode(diagnostics.WarnMissingReturn).
			WithPrimaryLabel(w.Location, "missing return on some paths").
			WithHelp("add a final return at the end of the function")
	}
	return diagnostics.NewWarning("unreachable code").
		WithCode(diagnostics.WarnUnreachableCode).
		WithPrimaryLabel(w.Location, "this code will never execute").
		WithHelp("remove this code or restructure control flow")
}

// CFGBuilder builds control flow graphs from function bodies
type CFGBuilder struct {
	function     string
	blockCounter int
	warnings     []*Warning
}

func (b *CFGBuilder) newBlock() *BasicBlock {
	b.blockCounter++
	return &BasicBlock{ID: b.blockCounter, CanFallThru: true}
}

func addEdge(from, to *BasicBlock) {
	if from != nil && to != nil {
		from.Successors = append(from.Successors, to)
	}
}

// BuildFunctionCFG builds the graph of fn's own body. Nested functions get their own graphs.
func (b *CFGBuilder) BuildFunctionCFG(fn *ast.FuncDef) *ControlFlowGraph {
	b.function = fn.Signature.Name
	cfg := &ControlFlowGraph{Entry: b.newBlock(), Exit: b.newBlock()}

	if current := b.buildBody(fn.Body, cfg.Entry, cfg.Exit); current != nil {
		addEdge(current, cfg.Exit)
	}
	return cfg
}

// buildBody returns the block control is in after body, or nil if it cannot get there
func (b *CFGBuilder) buildBody(body *ast.Body, current, exit *BasicBlock) *BasicBlock {
	var unreachable []ast.Statement

	for _, stmt := range body.Stmts {
		if current == nil {
			// function definitions are declarations, not code
			if _, ok := stmt.(*ast.FuncDef); !ok {
				unreachable = append(unreachable, stmt)
			}
			continue
		}
		current = b.buildStmt(stmt, current, exit)
	}

	if len(unreachable) > 0 {
		first, last := unreachable[0].Loc(), unreachable[len(unreachable)-1].Loc()
		b.warnings = append(b.warnings, &Warning{
			Kind:     UnreachableCode,
			Function: b.function,
			Location: source.NewLocation(first.Start, last.End),
		})
	}
	return current
}

func (b *CFGBuilder) buildStmt(stmt ast.Statement, current, exit *BasicBlock) *BasicBlock {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		current.Stmts = append(current.Stmts, s)
		current.Returns = true
		current.CanFallThru = false
		addEdge(current, exit)
		return nil
	case *ast.IfStmt:
		then := b.newBlock()
		join := b.newBlock()
		addEdge(current, then)
		addEdge(current, join) // condition false
		if end := b.buildBody(s.Body, then, exit); end != nil {
			addEdge(end, join)
		}
		return join
	default:
		current.Stmts = append(current.Stmts, stmt)
		return current
	}
}

// AllPathsReturn reports whether every path from entry reaches exit through a return
func (cfg *ControlFlowGraph) AllPathsReturn() bool {
	visited := make(map[*BasicBlock]bool)
	return !fallsToExit(cfg.Entry, cfg.Exit, visited)
}

func fallsToExit(current, exit *BasicBlock, visited map[*BasicBlock]bool) bool {
	if current == nil || visited[current] {
		return false
	}
	visited[current] = true
	if current.Returns {
		return false
	}
	for _, next := range current.Successors {
		if next == exit {
			return true
		}
		if fallsToExit(next, exit, visited) {
			return true
		}
	}
	return false
}

// Analyze builds a graph for every function in body, nested ones included,
// and returns what it found in source order.
func Analyze(body *ast.Body) []*Warning {
	b := &CFGBuilder{}
	b.analyzeFunctions(body)
	return b.warnings
}

func (b *CFGBuilder) analyzeFunctions(body *ast.Body) {
	for _, stmt := range body.Stmts {
		switch s := stmt.(type) {
		case *ast.FuncDef:
			b.analyzeFunction(s)
		case *ast.IfStmt:
			b.analyzeFunctions(s.Body)
		}
	}
}

func (b *CFGBuilder) analyzeFunction(fn *ast.FuncDef) {
	cfg := b.BuildFunctionCFG(fn)

	if ret := fn.Signature.Return; ret != types.TYPE_VOID && !cfg.AllPathsReturn() {
		b.warnings = append(b.warnings, &Warning{
			Kind:     MissingReturn,
			Function: fn.Signature.Name,
			Return:   ret,
			Location: &fn.Signature.Location,
		})
	}

	b.analyzeFunctions(fn.Body)
}
