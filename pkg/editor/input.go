package editor

import (
	"strings"
	"unicode/utf8"

	"example.com/paneedit/pkg/buffer"
	"example.com/paneedit/pkg/cursor"
)

// Input is a discrete navigation or editing event.
type Input int

const (
	InputUp Input = iota
	InputDown
	InputLeft
	InputRight
	InputEnter
	InputBackspace
	InputTab
	InputShiftTab
	InputPageUp
	InputPageDown
	InputHome
	InputEnd
)

var inputNames = [...]string{
	InputUp:        "up",
	InputDown:      "down",
	InputLeft:      "left",
	InputRight:     "right",
	InputEnter:     "enter",
	InputBackspace: "backspace",
	InputTab:       "tab",
	InputShiftTab:  "shift-tab",
	InputPageUp:    "page-up",
	InputPageDown:  "page-down",
	InputHome:      "home",
	InputEnd:       "end",
}

func (i Input) String() string {
	if i >= 0 && int(i) < len(inputNames) {
		return inputNames[i]
	}
	return "unknown"
}

// HandleInput applies one event and reports whether the buffer content
// changed. Movement never reports a change; the caller still has to run
// AdjustWindow and ActivateCursor.
func (e *Editor) HandleInput(in Input) bool {
	switch in {
	case InputUp:
		e.moveTo(e.cur.Move(e.buf, cursor.Up))
	case InputDown:
		e.moveTo(e.cur.Move(e.buf, cursor.Down))
	case InputLeft:
		e.moveTo(e.cur.Move(e.buf, cursor.Left))
	case InputRight:
		e.moveTo(e.cur.Move(e.buf, cursor.Right))
	case InputPageUp:
		e.moveTo(e.cur.MoveLines(e.buf, -e.VisibleRows()))
	case InputPageDown:
		e.moveTo(e.cur.MoveLines(e.buf, e.VisibleRows()))
	case InputHome:
		e.moveTo(e.cur.LineStart())
	case InputEnd:
		e.moveTo(e.cur.LineEnd(e.buf))
	case InputEnter:
		e.buf.SplitLine(e.cur.Line, e.cur.Column)
		e.moveTo(e.cur.Move(e.buf, cursor.Right))
		return true
	case InputBackspace:
		return e.backspace()
	case InputTab:
		return e.insert(strings.Repeat(" ", e.tabWidth))
	case InputShiftTab:
		// Reserved for dedent.
	}
	return false
}

func (e *Editor) backspace() bool {
	switch {
	case e.cur.AtStart():
		return false
	case e.cur.AtFirstColumn():
		next := e.cur.Move(e.buf, cursor.Left)
		e.buf.MergeLine(next.Line + 1)
		e.moveTo(next)
	default:
		next := e.cur.Move(e.buf, cursor.Left)
		e.buf.RemoveAt(next.Line, next.Column, 1)
		e.moveTo(next)
	}
	return true
}

// HandleText inserts printable text at the cursor and advances past it.
// Text containing a line break is rejected: callers split multi-line
// input into Enter events themselves.
func (e *Editor) HandleText(text string) bool {
	if text == "" {
		return false
	}
	if buffer.HasLineBreak(text) {
		e.log.Warn().Str("text", text).Msg("rejected text containing a line break")
		return false
	}
	return e.insert(text)
}

func (e *Editor) insert(text string) bool {
	e.buf.InsertAt(e.cur.Line, e.cur.Column, text)
	e.moveTo(e.cur.Advance(utf8.RuneCountInString(text)))
	return true
}

// moveTo replaces the cursor with c.
func (e *Editor) moveTo(c cursor.Cursor) {
	e.cur = c
}
