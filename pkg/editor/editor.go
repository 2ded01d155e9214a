// Package editor implements a single editing surface: a line buffer, the
// cursor over it, the viewport that keeps the cursor visible, and the
// renderer that paints the visible slice into a screen rectangle.
package editor

import (
	"example.com/paneedit/pkg/buffer"
	"example.com/paneedit/pkg/cursor"
	"github.com/rs/zerolog"
)

// DefaultTabWidth is the number of spaces inserted by Tab.
const DefaultTabWidth = 4

// Rect is a screen rectangle in absolute terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Editor is one addressable editing surface. It exclusively owns its
// buffer, cursor and viewport; the surface is shared with other editors
// but only written inside Rect.
type Editor struct {
	Name string

	rect     Rect
	buf      *buffer.Buffer
	cur      cursor.Cursor
	view     Viewport
	surface  Surface
	tabWidth int
	log      zerolog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithTabWidth sets the number of spaces inserted by Tab.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabWidth = n
		}
	}
}

// WithLogger attaches a logger. Editors log nothing by default.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithBuffer starts the editor on an existing buffer instead of an empty one.
func WithBuffer(b *buffer.Buffer) Option {
	return func(e *Editor) {
		if b != nil {
			e.buf = b
		}
	}
}

// New creates an editor named name drawing into r on s. The buffer starts
// as a single empty line with the cursor and viewport at the origin.
func New(s Surface, name string, r Rect, opts ...Option) *Editor {
	e := &Editor{
		Name:     name,
		rect:     r,
		buf:      buffer.New(),
		surface:  s,
		tabWidth: DefaultTabWidth,
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(e)
	}
	e.log = e.log.With().Str("editor", name).Logger()
	return e
}

// Rect returns the editor's screen rectangle.
func (e *Editor) Rect() Rect { return e.rect }

// SetRect moves or resizes the editor. Callers repaint afterwards.
func (e *Editor) SetRect(r Rect) { e.rect = r }

// Buffer returns the document being edited.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Cursor returns the current cursor.
func (e *Editor) Cursor() cursor.Cursor { return e.cur }

// Viewport returns the current scroll offsets.
func (e *Editor) Viewport() Viewport { return e.view }

// GutterWidth returns the width of the line-number gutter for the current
// line count.
func (e *Editor) GutterWidth() int {
	return GutterWidth(e.buf.LineCount())
}

// VisibleRows is the number of buffer rows below the header.
func (e *Editor) VisibleRows() int {
	return atLeastOne(e.rect.Height - 1)
}

// VisibleCols is the number of text columns right of the gutter.
func (e *Editor) VisibleCols() int {
	return atLeastOne(e.rect.Width - e.GutterWidth())
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
