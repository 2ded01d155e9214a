package app

import (
	"fmt"

	"example.com/paneedit/pkg/editor"
)

// Workspace holds the open editors and which one receives input. Current
// is an index into Editors, or -1 when there are none.
type Workspace struct {
	Editors []*editor.Editor
	Current int

	untitled int
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{Current: -1}
}

// Active returns the editor receiving input, or nil when empty.
func (w *Workspace) Active() *editor.Editor {
	if w.Current >= 0 && w.Current < len(w.Editors) {
		return w.Editors[w.Current]
	}
	return nil
}

// NextUntitledName returns "untitled N" with N counting from 1.
func (w *Workspace) NextUntitledName() string {
	w.untitled++
	return fmt.Sprintf("untitled %d", w.untitled)
}

// AddFront inserts e before all other editors and focuses it.
func (w *Workspace) AddFront(e *editor.Editor) {
	w.Editors = append([]*editor.Editor{e}, w.Editors...)
	w.Current = 0
}

// RemoveActive drops the active editor and focuses the one that took its
// place, or the new last editor when it was the last.
func (w *Workspace) RemoveActive() *editor.Editor {
	e := w.Active()
	if e == nil {
		return nil
	}
	w.Editors = append(w.Editors[:w.Current], w.Editors[w.Current+1:]...)
	switch {
	case len(w.Editors) == 0:
		w.Current = -1
	case w.Current >= len(w.Editors):
		w.Current = len(w.Editors) - 1
	}
	return e
}

// Next advances focus to the next editor and returns it.
func (w *Workspace) Next() *editor.Editor {
	if len(w.Editors) == 0 {
		return nil
	}
	w.Current = (w.Current + 1) % len(w.Editors)
	return w.Editors[w.Current]
}

// Prev moves focus to the previous editor and returns it.
func (w *Workspace) Prev() *editor.Editor {
	if len(w.Editors) == 0 {
		return nil
	}
	w.Current = (w.Current - 1 + len(w.Editors)) % len(w.Editors)
	return w.Editors[w.Current]
}

// Layout splits a width x height terminal into equal side-by-side columns,
// one per editor, in collection order.
func (w *Workspace) Layout(width, height int) {
	if len(w.Editors) == 0 {
		return
	}
	each := width / len(w.Editors)
	for i, e := range w.Editors {
		e.SetRect(editor.Rect{X: i * each, Y: 0, Width: each, Height: height})
	}
}
