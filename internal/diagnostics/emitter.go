package diagnostics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"toyc/colors"
	"toyc/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache holds the text of every compiled buffer, split into lines
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource registers content under filepath
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = source.SplitLines(content)
}

// GetLine retrieves a specific 1-based line of a registered source
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		return "", fmt.Errorf("no source registered for %s", filepath)
	}
	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache       *SourceCache
	writer      io.Writer
	highlighter *SyntaxHighlighter
	width       int // line number gutter width for the current diagnostic
}

// NewEmitter creates an emitter that reads snippets from cache and writes to w
func NewEmitter(w io.Writer, cache *SourceCache) *Emitter {
	return &Emitter{
		cache:       cache,
		writer:      w,
		highlighter: NewSyntaxHighlighter(true),
	}
}

func (e *Emitter) Emit(diag *Diagnostic) {
	if e.highlighter == nil {
		e.highlighter = NewSyntaxHighlighter(true)
	}

	labels := make([]Label, 0, len(diag.Labels))
	for _, label := range diag.Labels {
		if label.Location != nil && label.Location.Start != nil {
			labels = append(labels, label)
		}
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Location.Start.Line < labels[j].Location.Start.Line
	})

	e.width = 1
	for _, label := range labels {
		if w := len(fmt.Sprint(label.Location.Start.Line)); w > e.width {
			e.width = w
		}
	}

	e.printHeader(diag)

	if len(labels) > 0 {
		anchor := labels[0]
		for _, label := range labels {
			if label.Style == Primary {
				anchor = label
			}
		}
		start := anchor.Location.Start
		colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", e.width), diag.FilePath, start.Line, start.Column)
		e.printGutter()

		shown := 0
		for _, label := range labels {
			line := label.Location.Start.Line
			if shown > 0 && line > shown+1 {
				colors.GREY.Fprint(e.writer, strings.Repeat(" ", e.width))
				colors.GREY.Fprintln(e.writer, "...")
			}
			if line != shown {
				e.printSourceLine(diag.FilePath, line)
				shown = line
			}
			e.printUnderline(label, diag.Severity)
		}
		e.printGutter()
	}

	for _, note := range diag.Notes {
		fmt.Fprint(e.writer, strings.Repeat(" ", e.width+1))
		colors.CYAN.Fprint(e.writer, "= note: ")
		fmt.Fprintln(e.writer, note.Message)
	}

	if diag.Help != "" {
		fmt.Fprint(e.writer, strings.Repeat(" ", e.width+1))
		colors.GREEN.Fprint(e.writer, "= help: ")
		fmt.Fprintln(e.writer, diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := colors.BOLD_RED
	if diag.Severity == Warning {
		color = colors.BOLD_YELLOW
	}

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printGutter() {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.width))
	colors.GREY.Fprintln(e.writer, " |")
}

func (e *Emitter) printSourceLine(filepath string, line int) {
	text, err := e.cache.GetLine(filepath, line)
	if err != nil {
		return
	}
	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, e.width, line)
	e.highlighter.HighlightWithColor(text, e.writer)
	fmt.Fprintln(e.writer)
}

func (e *Emitter) printUnderline(label Label, severity Severity) {
	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	length := end.Column - start.Column
	if end.Line != start.Line || length <= 0 {
		length = 1
	}

	color := colors.BLUE
	char := "-"
	if label.Style == Primary {
		color = colors.RED
		if severity == Warning {
			color = colors.YELLOW
		}
		char = "^"
		if length > 1 {
			char = "~"
		}
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", e.width))
	colors.GREY.Fprint(e.writer, " | ")
	fmt.Fprint(e.writer, strings.Repeat(" ", start.Column-1))
	color.Fprint(e.writer, strings.Repeat(char, length))
	if label.Message != "" {
		color.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)
}
