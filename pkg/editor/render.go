package editor

import (
	"fmt"
	"strings"

	"example.com/paneedit/pkg/cursor"
)

// Style selects how a span of cells is drawn. The surface maps each style
// to concrete colors.
type Style int

const (
	StyleNormal Style = iota
	StyleHeader
	StyleGutter
	// StyleGutterScrolled flags a view scrolled right that may hide text
	// to the left.
	StyleGutterScrolled
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleHeader:
		return "header"
	case StyleGutter:
		return "gutter"
	case StyleGutterScrolled:
		return "gutter-scrolled"
	}
	return "unknown"
}

// Surface is the terminal capability an editor draws on. Coordinates are
// absolute cells.
type Surface interface {
	// Clear blanks width cells starting at (x, y).
	Clear(x, y, width int, style Style)
	// Write draws text starting at (x, y), one rune per cell.
	Write(x, y int, text string, style Style)
	// ShowCursor places the visible caret at (x, y).
	ShowCursor(x, y int)
}

// Render repaints the whole rectangle: the header row, then one row per
// visible buffer line. Rows past the end of the buffer are left blank.
func (e *Editor) Render() {
	r := e.rect
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	gutter := e.GutterWidth()
	e.renderHeader(gutter)

	numStyle := StyleGutter
	if e.view.LeftColumn != 0 {
		numStyle = StyleGutterScrolled
	}
	cols := r.Width - gutter
	for row := 1; row < r.Height; row++ {
		y := r.Y + row
		e.surface.Clear(r.X, y, r.Width, StyleNormal)

		idx := e.view.TopLine + row - 1
		if idx >= e.buf.LineCount() {
			continue
		}
		e.write(r.X, y, fmt.Sprintf("%*d", gutter-1, idx+1), numStyle)
		e.write(r.X+gutter, y, crop(e.buf.Line(idx), e.view.LeftColumn, cols), StyleNormal)
	}
}

func (e *Editor) renderHeader(gutter int) {
	r := e.rect
	e.surface.Clear(r.X, r.Y, r.Width, StyleHeader)
	e.write(r.X, r.Y, strings.Repeat(" ", gutter-2)+"# "+e.Name, StyleHeader)
}

// write draws text at (x, y), dropping anything past the right edge of
// the editor's rectangle.
func (e *Editor) write(x, y int, text string, style Style) {
	room := e.rect.X + e.rect.Width - x
	if room <= 0 || text == "" {
		return
	}
	e.surface.Write(x, y, crop(text, 0, room), style)
}

// crop returns at most n runes of s starting at rune offset from.
func crop(s string, from, n int) string {
	runes := []rune(s)
	if from >= len(runes) || n <= 0 {
		return ""
	}
	runes = runes[from:]
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// Translate maps a buffer position to absolute screen coordinates. The
// position must be inside the buffer.
func (e *Editor) Translate(c cursor.Cursor) (x, y int) {
	if !c.Valid(e.buf) {
		panic(fmt.Sprintf("editor %q: cursor (%d,%d) outside buffer", e.Name, c.Line, c.Column))
	}
	x = e.rect.X + e.GutterWidth() + c.Column - e.view.LeftColumn
	y = e.rect.Y + 1 + c.Line - e.view.TopLine
	return x, y
}

// ActivateCursor moves the terminal caret to the editor's cursor. Run it
// after every render and after input that did not repaint.
func (e *Editor) ActivateCursor() {
	x, y := e.Translate(e.cur)
	e.surface.ShowCursor(x, y)
}
