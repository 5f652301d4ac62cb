package diagnostics

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"toyc/colors"
)

type fakeError struct{ line int }

func (e *fakeError) Error() string { return "fake" }

func (e *fakeError) Diagnostic() *Diagnostic {
	return NewError("fake failure").
		WithCode(ErrUndeclaredVariable).
		WithPrimaryLabel(loc(e.line, 5, 6), "here")
}

func TestNewDiagnosticBag(t *testing.T) {
	bag := NewDiagnosticBag("test.toy")

	if bag.ErrorCount() != 0 || bag.WarningCount() != 0 {
		t.Errorf("Expected empty bag, got %d errors %d warnings", bag.ErrorCount(), bag.WarningCount())
	}
	if bag.HasErrors() {
		t.Error("Expected HasErrors() to be false for empty bag")
	}
}

func TestDiagnosticBag_Counts(t *testing.T) {
	bag := NewDiagnosticBag("test.toy")

	bag.Add(NewError("error 1"))
	bag.Add(NewWarning("warning 1"))
	bag.Add(NewError("error 2"))

	if bag.ErrorCount() != 2 {
		t.Errorf("Expected 2 errors, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 1 {
		t.Errorf("Expected 1 warning, got %d", bag.WarningCount())
	}

	bag.Clear()
	if bag.HasErrors() || len(bag.Diagnostics()) != 0 {
		t.Error("Expected empty bag after Clear")
	}
}

func TestDiagnosticBag_AddError(t *testing.T) {
	bag := NewDiagnosticBag("test.toy")

	bag.AddError(fmt.Errorf("wrapped: %w", &fakeError{line: 1}))
	bag.AddError(errors.New("plain"))

	diags := bag.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[1].Code != ErrUndeclaredVariable {
		t.Errorf("expected wrapped error to keep its code, got %q", diags[1].Code)
	}
	if diags[1].FilePath != "test.toy" {
		t.Errorf("expected bag file path to be filled in, got %q", diags[1].FilePath)
	}
	if diags[0].Message != "plain" {
		t.Errorf("expected plain error message, got %q", diags[0].Message)
	}
}

func TestDiagnosticBag_OrderedByLine(t *testing.T) {
	bag := NewDiagnosticBag("test.toy")
	bag.AddError(&fakeError{line: 9})
	bag.AddError(&fakeError{line: 2})

	diags := bag.Diagnostics()
	if diags[0].Line() != 2 || diags[1].Line() != 9 {
		t.Errorf("expected diagnostics sorted by line, got %d, %d", diags[0].Line(), diags[1].Line())
	}
}

func TestDiagnosticBag_ConcurrentAdd(t *testing.T) {
	bag := NewDiagnosticBag("test.toy")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bag.AddError(&fakeError{line: i + 1})
		}(i)
	}
	wg.Wait()

	if bag.ErrorCount() != 50 {
		t.Errorf("Expected 50 errors, got %d", bag.ErrorCount())
	}
}

func TestDiagnosticBag_EmitAllToString(t *testing.T) {
	bag := NewDiagnosticBag("test.toy")
	bag.AddSourceContent("test.toy", "fn main() {\n    y = 1;\n}\n")
	bag.AddError(&fakeError{line: 2})

	out := colors.StripANSI(bag.EmitAllToString())

	for _, want := range []string{
		"error[T0001]: fake failure",
		"--> test.toy:2:5",
		"2 |     y = 1;",
		"^ here",
		"Check failed with 1 error",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDiagnosticBag_EmitAllToHTML(t *testing.T) {
	bag := NewDiagnosticBag("test.toy")
	bag.AddSourceContent("test.toy", "fn main() {}\n")
	bag.Add(NewWarning("careful").WithPrimaryLabel(loc(1, 4, 8), "here"))

	html := bag.EmitAllToHTML()
	if strings.Contains(html, "\033[") {
		t.Error("expected no raw ANSI codes in HTML output")
	}
	if !strings.Contains(html, "Check succeeded with 1 warning") {
		t.Errorf("expected warning summary, got %s", html)
	}
}
