//go:build !js && !wasm

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"toyc/colors"
	"toyc/internal/compiler"
	"toyc/internal/frontend/ast"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("toyc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	debug := fs.Bool("d", false, "Enable debug output")
	fs.BoolVar(debug, "debug", false, "Enable debug output")
	showVersion := fs.Bool("v", false, "Show version")
	fs.BoolVar(showVersion, "version", false, "Show version")
	dumpTokens := fs.Bool("tokens", false, "Print every token")
	dumpAST := fs.Bool("ast", false, "Print the checked program")
	collectAll := fs.Bool("all", false, "Report one error per failing function instead of stopping at the first")
	parallel := fs.Int("j", 1, "Number of functions to check at once")
	html := fs.Bool("html", false, "Render diagnostics as HTML")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	configPath := fs.String("config", "", "Path to a config file (default: "+compiler.ConfigFileName+" next to the first file)")
	repl := fs.Bool("repl", false, "Start an interactive session")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "toyc version %s\n", version)
		return 0
	}
	if *repl {
		return runRepl()
	}

	files := fs.Args()
	if len(files) < 1 {
		fmt.Fprintln(stderr, "Usage: toyc [options] <file>...")
		fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
		return 1
	}

	config, err := loadConfig(*configPath, files[0])
	if err != nil {
		colors.RED.Fprintln(stderr, err)
		return 1
	}

	// flags given on the command line win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d", "debug":
			config.Debug = *debug
		case "tokens":
			config.DumpTokens = *dumpTokens
		case "ast":
			config.DumpAST = *dumpAST
		case "all":
			config.CollectAll = *collectAll
		case "j":
			config.Parallel = max(*parallel, 1)
		case "html":
			if *html {
				config.Format = "html"
			}
		case "no-color":
			config.Color = !*noColor
		}
	})

	result := compiler.Compile(config.Options(files...))

	for _, mod := range result.Modules {
		if config.DumpTokens {
			for i := range mod.Tokens {
				mod.Tokens[i].Debug(stdout, mod.Name)
			}
		}
		if config.DumpAST && mod.Body != nil {
			fmt.Fprint(stdout, ast.Format(mod.Body))
		}
	}

	if result.Output != "" {
		fmt.Fprint(stderr, result.Output)
	}
	if !result.Success {
		return 1
	}
	return 0
}

// loadConfig reads the explicit config path, or the default config next to
// the first file when there is one.
func loadConfig(explicit, firstFile string) (*compiler.Config, error) {
	if explicit != "" {
		return compiler.LoadConfig(explicit)
	}
	path := filepath.Join(filepath.Dir(firstFile), compiler.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return compiler.DefaultConfig(), nil
	}
	return compiler.LoadConfig(path)
}
