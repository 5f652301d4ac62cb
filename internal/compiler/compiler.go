package compiler

import (
	"fmt"
	"os"

	"toyc/colors"
	"toyc/internal/context_v2"
	"toyc/internal/diagnostics"
	"toyc/internal/pipeline"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
)

func ParseFormat(s string) (FORMAT, bool) {
	switch s {
	case "ansi", "":
		return ANSI, true
	case "html":
		return HTML, true
	}
	return ANSI, false
}

// Options for compilation
type Options struct {
	// For file-based compilation; each file is checked on its own
	Files []string
	// For in-memory compilation (REPL, WASM)
	Code string
	Name string // label for Code in diagnostics, "<input>" when empty
	// Debug output
	Debug      bool
	DumpTokens bool
	// Output format: "ansi" or "html"
	LogFormat FORMAT
	NoColor   bool
	// Error collection
	CollectAll bool
	Parallel   int
}

// Result of compilation
type Result struct {
	Success     bool
	Modules     []*context_v2.Module // in the order the sources were given
	Err         error
	Output      string // rendered diagnostics
	Diagnostics []*diagnostics.Diagnostic
}

// Compile checks the sources named by opts and renders any diagnostics
func Compile(opts *Options) Result {
	ctx := context_v2.New(&context_v2.Config{
		CollectAll: opts.CollectAll,
		Parallel:   opts.Parallel,
		KeepTokens: opts.DumpTokens,
	}, opts.Debug)

	if err := addSources(ctx, opts); err != nil {
		return Result{Success: false, Err: err, Output: err.Error() + "\n"}
	}

	err := pipeline.New(ctx).Run()

	result := Result{
		Success:     !ctx.HasErrors(),
		Err:         err,
		Diagnostics: ctx.Diagnostics.Diagnostics(),
	}
	for _, name := range ctx.ModuleNames() {
		mod, _ := ctx.GetModule(name)
		result.Modules = append(result.Modules, mod)
	}

	if len(result.Diagnostics) > 0 {
		output := ctx.Diagnostics.EmitAllToString()
		switch {
		case opts.LogFormat == HTML:
			output = colors.ConvertANSIToHTML(output)
		case opts.NoColor:
			output = colors.StripANSI(output)
		}
		result.Output = output
	}
	return result
}

func addSources(ctx *context_v2.CompilerContext, opts *Options) error {
	if len(opts.Files) == 0 {
		name := opts.Name
		if name == "" {
			name = "<input>"
		}
		_, err := ctx.AddSource(name, []byte(opts.Code))
		return err
	}

	for _, path := range opts.Files {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", path)
			}
			return fmt.Errorf("cannot read %s: %w", path, err)
		}
		if _, err := ctx.AddSource(path, content); err != nil {
			return err
		}
	}
	return nil
}
