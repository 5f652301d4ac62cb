package source

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number in the source code.
	Column int // Column number in the source code.
	Index  int // Byte offset in the source code.
}

// Start is the position of the first byte of a buffer.
func Start() Position {
	return Position{Line: 1, Column: 1, Index: 0}
}

// Advance moves the position past one byte.
// A newline starts a new line; tabs advance the column by 4.
func (p *Position) Advance(b byte) *Position {
	switch b {
	case '\n':
		p.Line++
		p.Column = 1
	case '\t':
		p.Column += 4
	default:
		p.Column++
	}
	p.Index++
	return p
}
