package editor

import "example.com/paneedit/pkg/cursor"

// Viewport holds the buffer coordinate shown at the top-left of the text
// area.
type Viewport struct {
	TopLine    int
	LeftColumn int
}

// Follow scrolls the viewport the minimum amount needed to bring c inside
// a rows x cols window and reports whether either offset changed.
func (v *Viewport) Follow(c cursor.Cursor, rows, cols int) bool {
	top := follow(v.TopLine, c.Line, atLeastOne(rows))
	left := follow(v.LeftColumn, c.Column, atLeastOne(cols))
	changed := top != v.TopLine || left != v.LeftColumn
	v.TopLine, v.LeftColumn = top, left
	return changed
}

// Contains reports whether c lies inside the rows x cols window.
func (v Viewport) Contains(c cursor.Cursor, rows, cols int) bool {
	return c.Line >= v.TopLine && c.Line < v.TopLine+rows &&
		c.Column >= v.LeftColumn && c.Column < v.LeftColumn+cols
}

func follow(offset, pos, extent int) int {
	if pos < offset {
		return pos
	}
	if pos >= offset+extent {
		return pos - extent + 1
	}
	return offset
}

// GutterWidth returns the gutter width for a document of lineCount lines:
// the digits of the largest line number plus one separator column.
func GutterWidth(lineCount int) int {
	digits := 0
	for n := lineCount; ; {
		n /= 10
		digits++
		if n == 0 {
			break
		}
	}
	return digits + 1
}

// AdjustWindow scrolls the viewport so the cursor stays visible and
// reports whether the visible slice moved. The column extent depends on
// the gutter, so it is recomputed from the current line count each call.
func (e *Editor) AdjustWindow() bool {
	changed := e.view.Follow(e.cur, e.VisibleRows(), e.VisibleCols())
	if changed {
		e.log.Debug().
			Int("top_line", e.view.TopLine).
			Int("left_column", e.view.LeftColumn).
			Msg("viewport scrolled")
	}
	return changed
}
