package pipeline

import (
	"fmt"
	"io"

	"toyc/colors"
)

// PrintSummary writes the phase each module reached
func (p *Pipeline) PrintSummary(w io.Writer) {
	fmt.Fprintln(w)
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	colors.CYAN.Fprintln(w, "           CHECK SUMMARY")
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")

	fmt.Fprintf(w, "Total Modules: %d\n\n", p.ctx.ModuleCount())

	for _, name := range p.ctx.ModuleNames() {
		mod, _ := p.ctx.GetModule(name)
		functions := 0
		if mod.Body != nil {
			functions = len(mod.Body.Functions())
		}
		fmt.Fprintf(w, "  • %s (%s, %d functions)\n", name, p.ctx.GetModulePhase(name), functions)
	}

	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
}
