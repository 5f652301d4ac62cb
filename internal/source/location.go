package source

import "fmt"

// Location represents a span of source code with start and end positions
type Location struct {
	Start *Position
	End   *Position
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(start, end *Position) *Location {
	return &Location{
		Start: start,
		End:   end,
	}
}

// Span builds a location from two position values
func Span(start, end Position) *Location {
	return NewLocation(&start, &end)
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos *Position) bool {
	if l.Start.Line > pos.Line || (l.Start.Line == pos.Line && l.Start.Column > pos.Column) {
		return false
	}
	if l.End.Line < pos.Line || (l.End.Line == pos.Line && l.End.Column < pos.Column) {
		return false
	}
	return true
}

// Line is the line the location starts on, or 0 when unknown
func (l *Location) Line() int {
	if l == nil || l.Start == nil {
		return 0
	}
	return l.Start.Line
}

func (l *Location) String() string {
	if l == nil || l.Start == nil || l.End == nil {
		return "location(unknown)"
	}

	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// GetText extracts the bytes this location covers from src.
// Returns empty string if the location does not lie inside src.
func (l *Location) GetText(src []byte) string {
	if l == nil || l.Start == nil || l.End == nil {
		return ""
	}
	from, to := l.Start.Index, l.End.Index
	if from < 0 || to > len(src) || from > to {
		return ""
	}
	return string(src[from:to])
}

// SplitLines splits src on '\n' without keeping the separators.
func SplitLines(src string) []string {
	if len(src) == 0 {
		return []string{}
	}

	var lines []string
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, src[start:i])
			start = i + 1
		}
	}
	// Add the last line if there's remaining content
	if start < len(src) {
		lines = append(lines, src[start:])
	}
	return lines
}
