package pipeline

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"toyc/colors"
	"toyc/internal/context_v2"
	"toyc/internal/frontend/lexer"
	"toyc/internal/frontend/parser"
	"toyc/internal/phase"
	"toyc/internal/semantics/controlflow"
	"toyc/internal/semantics/resolver"
	"toyc/internal/semantics/typechecker"
	"toyc/internal/types"
)

// Pipeline coordinates the compilation process
type Pipeline struct {
	ctx *context_v2.CompilerContext
}

func New(ctx *context_v2.CompilerContext) *Pipeline {
	return &Pipeline{ctx: ctx}
}

// Run takes every registered module through lexing, parsing and type checking.
// Failures are recorded in the context's diagnostics; the returned error only
// summarizes them.
func (p *Pipeline) Run() error {
	if p.ctx.Debug {
		colors.CYAN.Fprintf(p.ctx.Log, "\n[Phase 1] Lex + Parse\n")
	}

	// modules are independent, so they are parsed concurrently
	var g errgroup.Group
	for _, name := range p.ctx.ModuleNames() {
		name := name
		g.Go(func() error {
			p.parseModule(name)
			return nil
		})
	}
	g.Wait()

	if p.ctx.Debug {
		colors.CYAN.Fprintf(p.ctx.Log, "\n[Phase 2] Type Checking\n")
	}
	p.runTypeCheckerPhase()

	if p.ctx.HasErrors() {
		return fmt.Errorf("check failed with %d errors", p.ctx.Diagnostics.ErrorCount())
	}
	if p.ctx.Debug {
		colors.GREEN.Fprintf(p.ctx.Log, "\n✓ Check successful! (%d modules)\n", p.ctx.ModuleCount())
	}
	return nil
}

func (p *Pipeline) parseModule(name string) {
	mod, ok := p.ctx.GetModule(name)
	if !ok {
		return
	}

	if p.ctx.Config.KeepTokens {
		// a lex error here is left for the parser to report at the point it reaches it
		toks, _ := lexer.New(mod.Content).Tokenize()
		mod.Mu.Lock()
		mod.Tokens = toks
		mod.Mu.Unlock()
	}
	if !p.ctx.AdvanceModulePhase(name, phase.PhaseLexed) {
		p.ctx.ReportError(name, fmt.Errorf("cannot advance module %s to %s", name, phase.PhaseLexed))
		return
	}

	body, err := parser.Parse(mod.Content)
	if err != nil {
		p.ctx.ReportError(name, err)
		if p.ctx.Debug {
			colors.RED.Fprintf(p.ctx.Log, "  ✗ %s\n", name)
		}
		return
	}

	mod.Mu.Lock()
	mod.Body = body
	mod.Mu.Unlock()

	if !p.ctx.AdvanceModulePhase(name, phase.PhaseParsed) {
		p.ctx.ReportError(name, fmt.Errorf("cannot advance module %s to %s", name, phase.PhaseParsed))
		return
	}
	if p.ctx.Debug {
		colors.PURPLE.Fprintf(p.ctx.Log, "  ✓ %s\n", name)
	}
}

// runTypeCheckerPhase checks every parsed module in registration order.
// Modules that check are then scanned for control flow warnings.
func (p *Pipeline) runTypeCheckerPhase() {
	for _, name := range p.ctx.ModuleNames() {
		if !p.ctx.CanProcessPhase(name, phase.PhaseParsed) {
			continue
		}
		mod, _ := p.ctx.GetModule(name)

		var errs []error
		if p.ctx.Config.CollectAll || p.ctx.Config.Parallel > 1 {
			errs = p.checkFunctions(mod)
		} else if err := typechecker.Check(mod.Body); err != nil {
			errs = append(errs, err)
		}

		for _, err := range errs {
			p.ctx.ReportError(name, err)
		}
		if len(errs) > 0 {
			if p.ctx.Debug {
				colors.RED.Fprintf(p.ctx.Log, "  ✗ %s (%d errors)\n", name, len(errs))
			}
			continue
		}

		if !p.ctx.AdvanceModulePhase(name, phase.PhaseTypeChecked) {
			p.ctx.ReportError(name, fmt.Errorf("cannot advance module %s to %s", name, phase.PhaseTypeChecked))
			continue
		}
		for _, w := range controlflow.Analyze(mod.Body) {
			p.ctx.ReportWarning(name, w)
		}
		if p.ctx.Debug {
			colors.PURPLE.Fprintf(p.ctx.Log, "  ✓ %s\n", name)
		}
	}
}

// checkFunctions checks each top-level function on its own so that one
// failure does not hide the next. Results keep source order.
func (p *Pipeline) checkFunctions(mod *context_v2.Module) []error {
	checker := typechecker.New(resolver.NewVariableResolver(), resolver.NewFunctionResolver(), mod.Body, types.TYPE_VOID)
	checker.RegisterFunctions()

	fns := mod.Body.Functions()
	results := make([]error, len(fns))

	var g errgroup.Group
	g.SetLimit(max(p.ctx.Config.Parallel, 1))
	for i, fn := range fns {
		i, fn := i, fn
		g.Go(func() error {
			results[i] = checker.CheckFunction(fn)
			return nil
		})
	}
	g.Wait()

	var errs []error
	for _, err := range results {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
