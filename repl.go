//go:build !js && !wasm

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"toyc/colors"
	"toyc/internal/compiler"
	"toyc/internal/frontend/ast"
	"toyc/internal/frontend/parser"
)

const (
	promptMain  = "toyc> "
	promptCont  = "  ... "
	historyFile = ".toyc_history"
	replName    = "<repl>"
)

// session is the program built up at the prompt. Input is only kept when
// the whole program still checks with it.
type session struct {
	src string
}

// submit checks the session extended by code and keeps it on success
func (s *session) submit(code string) compiler.Result {
	candidate := code
	if s.src != "" {
		candidate = s.src + "\n" + code
	}
	result := compiler.Compile(&compiler.Options{Code: candidate, Name: replName})
	if result.Success {
		s.src = candidate
	}
	return result
}

// checked returns the session program with inferred types filled in
func (s *session) checked() *ast.Body {
	result := compiler.Compile(&compiler.Options{Code: s.src, Name: replName})
	if !result.Success {
		return nil
	}
	return result.Modules[0].Body
}

// incomplete reports whether src stopped in the middle of a construct
func incomplete(src string) bool {
	_, err := parser.Parse([]byte(src))
	var perr *parser.Error
	return errors.As(err, &perr) && perr.Kind == parser.UnexpectedEOF
}

func runRepl() int {
	fmt.Printf("toyc %s interactive checker. Type :help for commands.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var s session
	for {
		code, ok := readByParseProbe(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if quit := s.command(trimmed, os.Stdout); quit {
				return 0
			}
			continue
		}

		result := s.submit(code)
		fmt.Fprint(os.Stderr, result.Output)
		if result.Success {
			colors.GREEN.Println("ok")
		}
	}
}

// command runs a :command and reports whether the session should end
func (s *session) command(cmd string, w io.Writer) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":reset":
		s.src = ""
		colors.GREY.Fprintln(w, "session cleared")
	case ":show":
		if body := s.checked(); body != nil {
			fmt.Fprint(w, ast.Format(body))
		}
	case ":help":
		fmt.Fprintln(w, "Enter function definitions; each is checked together with the ones before it.")
		fmt.Fprintln(w, "  :show   print the session with inferred types")
		fmt.Fprintln(w, "  :reset  forget every definition")
		fmt.Fprintln(w, "  :quit   leave")
	default:
		fmt.Fprintln(w, "unknown command. Type :help for a list.")
	}
	return false
}

func readByParseProbe(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C drops the pending input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); !incomplete(src) {
			return src, true
		}
	}
}
