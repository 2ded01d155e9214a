// Package cursor defines the (line, column) position used by an editor and
// the pure movement rules over a document.
package cursor

import "example.com/paneedit/pkg/buffer"

// Direction is a cursor movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Cursor is a position in a document. Column may equal the line length to
// mean "end of line". Cursors are values: every move returns a new one.
type Cursor struct {
	Line   int
	Column int
}

// Valid reports whether c is a legal position in doc.
func (c Cursor) Valid(doc buffer.LineStorage) bool {
	return c.Line >= 0 && c.Line < doc.LineCount() && c.Column >= 0 && c.Column <= doc.LineLen(c.Line)
}

// Move returns the cursor one step in direction d. It never mutates doc
// and never leaves the document: moves past either end are no-ops.
func (c Cursor) Move(doc buffer.LineStorage, d Direction) Cursor {
	switch d {
	case Up:
		return c.MoveLines(doc, -1)
	case Down:
		return c.MoveLines(doc, 1)
	case Left:
		if c.Column > 0 {
			return Cursor{Line: c.Line, Column: c.Column - 1}
		}
		if c.Line > 0 {
			return Cursor{Line: c.Line - 1, Column: doc.LineLen(c.Line - 1)}
		}
		return c
	case Right:
		if c.Column < doc.LineLen(c.Line) {
			return Cursor{Line: c.Line, Column: c.Column + 1}
		}
		if c.Line < doc.LineCount()-1 {
			return Cursor{Line: c.Line + 1, Column: 0}
		}
		return c
	}
	return c
}

// MoveLines moves n lines down (negative n moves up), clamping the line to
// the document and the column to the target line's length.
func (c Cursor) MoveLines(doc buffer.LineStorage, n int) Cursor {
	line := clamp(c.Line+n, 0, doc.LineCount()-1)
	return Cursor{Line: line, Column: clamp(c.Column, 0, doc.LineLen(line))}
}

// LineStart returns the cursor at column 0 of its line.
func (c Cursor) LineStart() Cursor {
	return Cursor{Line: c.Line}
}

// LineEnd returns the cursor at the end of its line.
func (c Cursor) LineEnd(doc buffer.LineStorage) Cursor {
	return Cursor{Line: c.Line, Column: doc.LineLen(c.Line)}
}

// Advance returns the cursor n columns to the right on the same line.
// Callers use it after inserting n runes at c.
func (c Cursor) Advance(n int) Cursor {
	return Cursor{Line: c.Line, Column: c.Column + n}
}

// AtFirstColumn reports whether the cursor is at the start of its line.
func (c Cursor) AtFirstColumn() bool {
	return c.Column == 0
}

// AtStart reports whether the cursor is at the start of the document.
func (c Cursor) AtStart() bool {
	return c.Line == 0 && c.Column == 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
