package context_v2

import (
	"errors"
	"strings"
	"testing"

	"toyc/colors"
	"toyc/internal/diagnostics"
	"toyc/internal/phase"
	"toyc/internal/source"
)

func TestNewContext(t *testing.T) {
	ctx := New(nil, true)

	if ctx.Config == nil {
		t.Fatal("Expected a default config")
	}
	if !ctx.Debug {
		t.Error("Expected debug to be set")
	}
	if ctx.ModuleCount() != 0 || ctx.HasErrors() {
		t.Error("Expected an empty context")
	}
}

func TestAddSource(t *testing.T) {
	ctx := New(&Config{}, false)

	mod, err := ctx.AddSource("b.toy", []byte("fn b() {}"))
	if err != nil {
		t.Fatalf("AddSource failed: %v", err)
	}
	if mod.Phase != phase.PhaseNotStarted {
		t.Errorf("Expected PhaseNotStarted, got %v", mod.Phase)
	}
	if _, err := ctx.AddSource("a.toy", nil); err != nil {
		t.Fatal(err)
	}

	if _, err := ctx.AddSource("b.toy", nil); !errors.Is(err, ErrDuplicateModule) {
		t.Errorf("Expected ErrDuplicateModule, got %v", err)
	}

	names := ctx.ModuleNames()
	if len(names) != 2 || names[0] != "b.toy" || names[1] != "a.toy" {
		t.Errorf("Expected registration order, got %v", names)
	}
	if !ctx.HasModule("a.toy") || ctx.HasModule("c.toy") {
		t.Error("HasModule reported the wrong modules")
	}
}

func TestModulePhaseTracking(t *testing.T) {
	ctx := New(nil, false)
	ctx.AddSource("m.toy", nil)

	if ctx.AdvanceModulePhase("m.toy", phase.PhaseParsed) {
		t.Error("Expected skipping PhaseLexed to be rejected")
	}
	for _, target := range []phase.ModulePhase{phase.PhaseLexed, phase.PhaseParsed, phase.PhaseTypeChecked} {
		if !ctx.AdvanceModulePhase("m.toy", target) {
			t.Fatalf("Expected advance to %v to succeed", target)
		}
	}
	if ctx.GetModulePhase("m.toy") != phase.PhaseTypeChecked {
		t.Errorf("Expected PhaseTypeChecked, got %v", ctx.GetModulePhase("m.toy"))
	}
	if !ctx.CanProcessPhase("m.toy", phase.PhaseParsed) {
		t.Error("Expected a checked module to satisfy PhaseParsed")
	}

	if ctx.AdvanceModulePhase("missing.toy", phase.PhaseLexed) {
		t.Error("Expected advancing an unknown module to fail")
	}
	if ctx.GetModulePhase("missing.toy") != phase.PhaseNotStarted {
		t.Error("Expected unknown modules to report PhaseNotStarted")
	}
}

type locatedError struct{}

func (locatedError) Error() string { return "located" }

func (locatedError) Diagnostic() *diagnostics.Diagnostic {
	pos := source.Position{Line: 1, Column: 4, Index: 3}
	return diagnostics.NewError("located failure").
		WithCode(diagnostics.ErrUnexpectedToken).
		WithPrimaryLabel(source.Span(pos, pos), "here")
}

func TestReportError(t *testing.T) {
	ctx := New(nil, false)
	ctx.AddSource("a.toy", []byte("fn main() {}\n"))

	ctx.ReportError("a.toy", locatedError{})
	ctx.ReportError("a.toy", errors.New("plain failure"))

	if ctx.Diagnostics.ErrorCount() != 2 {
		t.Fatalf("Expected 2 errors, got %d", ctx.Diagnostics.ErrorCount())
	}
	for _, d := range ctx.Diagnostics.Diagnostics() {
		if d.FilePath != "a.toy" {
			t.Errorf("Expected diagnostics to name the module, got %q", d.FilePath)
		}
	}

	var out strings.Builder
	ctx.EmitDiagnostics(&out)
	text := colors.StripANSI(out.String())
	for _, want := range []string{"error[P0001]: located failure", "--> a.toy:1:4", "plain failure"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, text)
		}
	}
}
