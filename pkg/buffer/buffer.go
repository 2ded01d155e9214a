package buffer

import (
	"fmt"
	"strings"
)

// Buffer is an ordered list of lines. It always holds at least one line;
// an empty document is a single empty line. Lines never store a trailing
// newline.
type Buffer struct {
	lines [][]rune
}

var _ LineStorage = (*Buffer)(nil)

// New returns a buffer holding one empty line.
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// FromLines builds a buffer from the given lines. A nil or empty slice
// yields a single empty line.
func FromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	b := &Buffer{lines: make([][]rune, len(lines))}
	for i, l := range lines {
		mustBeSingleLine(l)
		b.lines[i] = []rune(l)
	}
	return b
}

// LineCount returns the number of lines, which is never less than one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line idx.
func (b *Buffer) Line(idx int) string {
	b.checkLine(idx)
	return string(b.lines[idx])
}

// LineLen returns the rune length of line idx.
func (b *Buffer) LineLen(idx int) int {
	b.checkLine(idx)
	return len(b.lines[idx])
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// String joins the lines with '\n'.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// InsertAt splices text into line at column col. The text must not
// contain line breaks.
func (b *Buffer) InsertAt(line, col int, text string) {
	b.checkPos(line, col)
	mustBeSingleLine(text)
	if text == "" {
		return
	}
	ins := []rune(text)
	cur := b.lines[line]
	out := make([]rune, 0, len(cur)+len(ins))
	out = append(out, cur[:col]...)
	out = append(out, ins...)
	out = append(out, cur[col:]...)
	b.lines[line] = out
}

// RemoveAt deletes up to count runes starting at column col. Removal never
// crosses into the next line; at line end it is a no-op.
func (b *Buffer) RemoveAt(line, col, count int) {
	b.checkPos(line, col)
	cur := b.lines[line]
	if count <= 0 || col >= len(cur) {
		return
	}
	end := col + count
	if end > len(cur) {
		end = len(cur)
	}
	b.lines[line] = append(cur[:col:col], cur[end:]...)
}

// SplitLine breaks line at column col. Text before col stays on line and
// the remainder becomes a new line directly below it.
func (b *Buffer) SplitLine(line, col int) {
	b.checkPos(line, col)
	cur := b.lines[line]
	head := append([]rune(nil), cur[:col]...)
	tail := append([]rune(nil), cur[col:]...)
	b.lines = append(b.lines, nil)
	copy(b.lines[line+2:], b.lines[line+1:])
	b.lines[line] = head
	b.lines[line+1] = tail
}

// MergeLine appends line idx onto line idx-1 and removes line idx.
// idx must be in [1, LineCount()).
func (b *Buffer) MergeLine(idx int) {
	if idx < 1 || idx >= len(b.lines) {
		panic(fmt.Sprintf("buffer: merge of line %d outside [1, %d)", idx, len(b.lines)))
	}
	prev := b.lines[idx-1]
	merged := make([]rune, 0, len(prev)+len(b.lines[idx]))
	merged = append(merged, prev...)
	merged = append(merged, b.lines[idx]...)
	b.lines[idx-1] = merged
	b.lines = append(b.lines[:idx], b.lines[idx+1:]...)
}

// Contains reports whether (line, col) is a legal position in the buffer.
func (b *Buffer) Contains(line, col int) bool {
	return line >= 0 && line < len(b.lines) && col >= 0 && col <= len(b.lines[line])
}

func (b *Buffer) checkLine(idx int) {
	if idx < 0 || idx >= len(b.lines) {
		panic(fmt.Sprintf("buffer: line %d outside [0, %d)", idx, len(b.lines)))
	}
}

func (b *Buffer) checkPos(line, col int) {
	if !b.Contains(line, col) {
		panic(fmt.Sprintf("buffer: position (%d,%d) outside document", line, col))
	}
}

// HasLineBreak reports whether s contains '\n' or '\r'.
func HasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

func mustBeSingleLine(s string) {
	if HasLineBreak(s) {
		panic(fmt.Sprintf("buffer: text %q contains a line break", s))
	}
}
