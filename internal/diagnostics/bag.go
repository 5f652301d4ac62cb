package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"toyc/colors"
	str "toyc/internal/utils/strings"
)

// DiagnosticBag collects diagnostics during compilation
type DiagnosticBag struct {
	filepath    string
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
	sourceCache *SourceCache
}

// NewDiagnosticBag creates a new diagnostic bag for a file
func NewDiagnosticBag(filepath string) *DiagnosticBag {
	return &DiagnosticBag{
		filepath:    filepath,
		diagnostics: make([]*Diagnostic, 0),
		sourceCache: NewSourceCache(),
	}
}

// AddSourceContent registers the source text the diagnostics point into
func (db *DiagnosticBag) AddSourceContent(filepath, content string) {
	db.sourceCache.AddSource(filepath, content)
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if diag.FilePath == "" {
		diag.FilePath = db.filepath
	}
	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// AddError converts a front-end error into a diagnostic and adds it.
// Errors that carry no diagnostic of their own are reported by message only.
func (db *DiagnosticBag) AddError(err error) {
	var d Diagnosable
	if errors.As(err, &d) {
		db.Add(d.Diagnostic())
		return
	}
	db.Add(NewError(err.Error()))
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics ordered by line
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Line() < result[j].Line()
	})
	return result
}

// EmitAll writes every diagnostic followed by a summary line
func (db *DiagnosticBag) EmitAll(w io.Writer) {
	emitter := &Emitter{
		cache:  db.sourceCache,
		writer: w,
	}

	for _, diag := range db.Diagnostics() {
		emitter.Emit(diag)
	}

	db.printSummary(w)
}

// EmitAllToString emits all diagnostics to a string with ANSI codes
func (db *DiagnosticBag) EmitAllToString() string {
	var buf strings.Builder
	db.EmitAll(&buf)
	return buf.String()
}

// EmitAllToHTML emits all diagnostics to an HTML string
func (db *DiagnosticBag) EmitAllToHTML() string {
	return colors.ConvertANSIToHTML(db.EmitAllToString())
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		colors.RED.Fprintf(w, "\nCheck failed with %d %s", db.errorCount, str.Pluralize("error", "errors", db.errorCount))
		if db.warnCount > 0 {
			colors.RED.Fprintf(w, " and %d %s", db.warnCount, str.Pluralize("warning", "warnings", db.warnCount))
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		colors.ORANGE.Fprintf(w, "\nCheck succeeded with %d %s\n", db.warnCount, str.Pluralize("warning", "warnings", db.warnCount))
	}
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
