package app

import (
	"testing"

	"example.com/paneedit/pkg/editor"
)

func names(w *Workspace) []string {
	var out []string
	for _, e := range w.Editors {
		out = append(out, e.Name)
	}
	return out
}

func TestWorkspace_AddFrontAndCycle(t *testing.T) {
	w := NewWorkspace()
	if w.Active() != nil || w.Next() != nil || w.Prev() != nil {
		t.Fatalf("empty workspace must have no active editor")
	}
	for i := 0; i < 3; i++ {
		w.AddFront(editor.New(nil, w.NextUntitledName(), editor.Rect{}))
	}
	got := names(w)
	want := []string{"untitled 3", "untitled 2", "untitled 1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if w.Active().Name != "untitled 3" {
		t.Fatalf("expected newest editor active, got %q", w.Active().Name)
	}
	if w.Prev().Name != "untitled 1" {
		t.Fatalf("expected Prev to wrap to the last editor")
	}
	if w.Next().Name != "untitled 3" {
		t.Fatalf("expected Next to wrap to the first editor")
	}
	if w.Next().Name != "untitled 2" {
		t.Fatalf("expected Next to advance")
	}
}

func TestWorkspace_RemoveActive(t *testing.T) {
	w := NewWorkspace()
	for i := 0; i < 3; i++ {
		w.AddFront(editor.New(nil, w.NextUntitledName(), editor.Rect{}))
	}
	w.Current = 2
	if e := w.RemoveActive(); e.Name != "untitled 1" {
		t.Fatalf("removed wrong editor %q", e.Name)
	}
	if w.Active().Name != "untitled 2" {
		t.Fatalf("expected focus to move to the new last editor, got %q", w.Active().Name)
	}
	w.Current = 0
	w.RemoveActive()
	if w.Active().Name != "untitled 2" {
		t.Fatalf("expected successor focused, got %q", w.Active().Name)
	}
	w.RemoveActive()
	if w.Active() != nil || w.Current != -1 {
		t.Fatalf("expected empty workspace, current=%d", w.Current)
	}
	if w.RemoveActive() != nil {
		t.Fatalf("removing from empty workspace must be a no-op")
	}
}

func TestWorkspace_Layout(t *testing.T) {
	w := NewWorkspace()
	for i := 0; i < 3; i++ {
		w.AddFront(editor.New(nil, w.NextUntitledName(), editor.Rect{}))
	}
	w.Layout(80, 24)
	for i, e := range w.Editors {
		want := editor.Rect{X: i * 26, Y: 0, Width: 26, Height: 24}
		if e.Rect() != want {
			t.Fatalf("editor %d: expected %+v, got %+v", i, want, e.Rect())
		}
	}
}
