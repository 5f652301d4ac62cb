// Package context_v2 holds the state shared by the phases of one compile.
//
// Every source handed to the compiler becomes a Module that moves through
// the phases on its own. Modules never refer to each other, so they can be
// processed concurrently; diagnostics from all of them land in one bag.
package context_v2

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"toyc/internal/diagnostics"
	"toyc/internal/frontend/ast"
	"toyc/internal/phase"
	"toyc/internal/tokens"
)

// Module is one source unit and what the phases produced from it
type Module struct {
	Name    string // file path, or a label such as "<repl>" for in-memory code
	Content []byte
	Tokens  []tokens.Token // filled only when Config.KeepTokens is set
	Body    *ast.Body
	Phase   phase.ModulePhase

	Mu sync.Mutex // protects field updates while phases run in parallel
}

// Config controls how the check phase reports errors
type Config struct {
	// CollectAll checks every top-level function even after one fails,
	// reporting at most one error per function.
	CollectAll bool
	// Parallel is how many sibling functions are checked at once.
	// Values above 1 imply CollectAll.
	Parallel int
	// KeepTokens stores each module's token stream for dumping.
	KeepTokens bool
}

// CompilerContext is the central compilation state manager
type CompilerContext struct {
	Modules map[string]*Module
	order   []string // registration order
	mu      sync.RWMutex

	Diagnostics *diagnostics.DiagnosticBag
	Config      *Config

	Debug bool
	Log   io.Writer // destination of debug tracing
}

var ErrDuplicateModule = errors.New("module already registered")

func New(config *Config, debug bool) *CompilerContext {
	if config == nil {
		config = &Config{}
	}
	return &CompilerContext{
		Modules:     make(map[string]*Module),
		Diagnostics: diagnostics.NewDiagnosticBag(""),
		Config:      config,
		Debug:       debug,
		Log:         os.Stderr,
	}
}

// AddSource registers content under name and makes it available to diagnostics
func (ctx *CompilerContext) AddSource(name string, content []byte) (*Module, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if _, exists := ctx.Modules[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateModule, name)
	}
	mod := &Module{Name: name, Content: content, Phase: phase.PhaseNotStarted}
	ctx.Modules[name] = mod
	ctx.order = append(ctx.order, name)
	ctx.Diagnostics.AddSourceContent(name, string(content))
	return mod, nil
}

func (ctx *CompilerContext) GetModule(name string) (*Module, bool) {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	mod, ok := ctx.Modules[name]
	return mod, ok
}

func (ctx *CompilerContext) HasModule(name string) bool {
	_, ok := ctx.GetModule(name)
	return ok
}

// ModuleNames returns module names in registration order
func (ctx *CompilerContext) ModuleNames() []string {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	names := make([]string, len(ctx.order))
	copy(names, ctx.order)
	return names
}

func (ctx *CompilerContext) ModuleCount() int {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return len(ctx.Modules)
}

// GetModulePhase returns PhaseNotStarted for unknown modules
func (ctx *CompilerContext) GetModulePhase(name string) phase.ModulePhase {
	mod, ok := ctx.GetModule(name)
	if !ok {
		return phase.PhaseNotStarted
	}
	mod.Mu.Lock()
	defer mod.Mu.Unlock()
	return mod.Phase
}

// AdvanceModulePhase moves a module to target if its prerequisite phase is met
func (ctx *CompilerContext) AdvanceModulePhase(name string, target phase.ModulePhase) bool {
	mod, ok := ctx.GetModule(name)
	if !ok {
		return false
	}
	mod.Mu.Lock()
	defer mod.Mu.Unlock()
	if !phase.CanAdvance(mod.Phase, target) {
		return false
	}
	mod.Phase = target
	return true
}

// CanProcessPhase reports whether a module has reached at least required
func (ctx *CompilerContext) CanProcessPhase(name string, required phase.ModulePhase) bool {
	return ctx.GetModulePhase(name) >= required
}

func (ctx *CompilerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// ReportError records err against the module called name
func (ctx *CompilerContext) ReportError(name string, err error) {
	var d diagnostics.Diagnosable
	diag := diagnostics.NewError(err.Error())
	if errors.As(err, &d) {
		diag = d.Diagnostic()
	}
	diag.FilePath = name
	ctx.Diagnostics.Add(diag)
}

// ReportWarning records a finding that does not fail the compile
func (ctx *CompilerContext) ReportWarning(name string, w diagnostics.Diagnosable) {
	diag := w.Diagnostic()
	diag.FilePath = name
	ctx.Diagnostics.Add(diag)
}

// EmitDiagnostics writes every collected diagnostic to w
func (ctx *CompilerContext) EmitDiagnostics(w io.Writer) {
	ctx.Diagnostics.EmitAll(w)
}
