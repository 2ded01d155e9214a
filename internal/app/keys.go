package app

import (
	"example.com/paneedit/pkg/editor"
	"github.com/gdamore/tcell/v2"
)

var editorKeys = map[tcell.Key]editor.Input{
	tcell.KeyUp:         editor.InputUp,
	tcell.KeyDown:       editor.InputDown,
	tcell.KeyLeft:       editor.InputLeft,
	tcell.KeyRight:      editor.InputRight,
	tcell.KeyEnter:      editor.InputEnter,
	tcell.KeyBackspace:  editor.InputBackspace,
	tcell.KeyBackspace2: editor.InputBackspace,
	tcell.KeyTab:        editor.InputTab,
	tcell.KeyBacktab:    editor.InputShiftTab,
	tcell.KeyPgUp:       editor.InputPageUp,
	tcell.KeyPgDn:       editor.InputPageDown,
	tcell.KeyHome:       editor.InputHome,
	tcell.KeyEnd:        editor.InputEnd,
}

// handleKeyEvent processes a key event. It returns true if the event
// signals the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) (bool, error) {
	km := r.Config.Keymap
	switch {
	case km["quit"].Matches(ev):
		return true, nil
	case km["new"].Matches(ev):
		r.NewEditor()
		return false, nil
	case km["open"].Matches(ev):
		return false, r.OpenEditor()
	case km["close"].Matches(ev):
		r.CloseEditor()
		return false, nil
	}

	if ev.Modifiers()&tcell.ModCtrl != 0 {
		switch ev.Key() {
		case tcell.KeyLeft:
			r.focus(r.Workspace.Prev())
			return false, nil
		case tcell.KeyRight:
			r.focus(r.Workspace.Next())
			return false, nil
		}
	}

	e := r.Workspace.Active()
	if e == nil {
		return false, nil
	}
	repaint := false
	if in, ok := editorKeys[ev.Key()]; ok {
		repaint = e.HandleInput(in)
	} else if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		repaint = e.HandleText(string(ev.Rune()))
	} else {
		return false, nil
	}
	r.refresh(e, repaint)
	return false, nil
}
