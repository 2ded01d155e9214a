package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_SingleEmptyLine(t *testing.T) {
	b := New()
	if b.LineCount() != 1 {
		t.Fatalf("expected 1 line, got %d", b.LineCount())
	}
	if b.Line(0) != "" {
		t.Fatalf("expected empty line, got %q", b.Line(0))
	}
	if FromLines(nil).LineCount() != 1 {
		t.Fatalf("expected FromLines(nil) to hold one line")
	}
}

func TestBuffer_InsertAt(t *testing.T) {
	b := FromLines([]string{"Hello World"})
	b.InsertAt(0, 5, ",")
	if got := b.Line(0); got != "Hello, World" {
		t.Fatalf("expected 'Hello, World', got %q", got)
	}
	b.InsertAt(0, b.LineLen(0), "!")
	if got := b.Line(0); got != "Hello, World!" {
		t.Fatalf("expected append at line end, got %q", got)
	}
	if b.LineCount() != 1 {
		t.Fatalf("insert must not change line count, got %d", b.LineCount())
	}
}

func TestBuffer_InsertAtRunes(t *testing.T) {
	b := FromLines([]string{"héllo"})
	b.InsertAt(0, 2, "x")
	if got := b.Line(0); got != "héxllo" {
		t.Fatalf("expected rune-based column, got %q", got)
	}
}

func TestBuffer_InsertAtRejectsLineBreak(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for multi-line insert")
		}
	}()
	New().InsertAt(0, 0, "a\nb")
}

func TestBuffer_RemoveAt(t *testing.T) {
	tests := []struct {
		name  string
		col   int
		count int
		want  string
	}{
		{"single", 1, 1, "acd"},
		{"clamped", 2, 10, "ab"},
		{"at end", 4, 1, "abcd"},
		{"zero count", 0, 0, "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromLines([]string{"abcd", "next"})
			b.RemoveAt(0, tt.col, tt.count)
			if got := b.Line(0); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
			if got := b.Line(1); got != "next" {
				t.Fatalf("removal crossed into next line: %q", got)
			}
		})
	}
}

func TestBuffer_SplitLine(t *testing.T) {
	b := FromLines([]string{"ab", "cd"})
	b.SplitLine(0, 2)
	if diff := cmp.Diff([]string{"ab", "", "cd"}, b.Lines()); diff != "" {
		t.Fatalf("split at end of line (-want +got):\n%s", diff)
	}
	b.SplitLine(2, 1)
	if diff := cmp.Diff([]string{"ab", "", "c", "d"}, b.Lines()); diff != "" {
		t.Fatalf("split mid line (-want +got):\n%s", diff)
	}
	b.SplitLine(0, 0)
	if diff := cmp.Diff([]string{"", "ab", "", "c", "d"}, b.Lines()); diff != "" {
		t.Fatalf("split at line start (-want +got):\n%s", diff)
	}
}

func TestBuffer_SplitMergeRoundTrip(t *testing.T) {
	orig := []string{"first", "hello world", "last"}
	for col := 0; col <= len("hello world"); col++ {
		b := FromLines(orig)
		b.SplitLine(1, col)
		if b.LineCount() != len(orig)+1 {
			t.Fatalf("col %d: expected %d lines after split, got %d", col, len(orig)+1, b.LineCount())
		}
		b.MergeLine(2)
		if diff := cmp.Diff(orig, b.Lines()); diff != "" {
			t.Fatalf("col %d: round trip mismatch (-want +got):\n%s", col, diff)
		}
	}
}

func TestBuffer_MergeDownToOneLine(t *testing.T) {
	b := FromLines([]string{"", "", "", ""})
	for b.LineCount() > 1 {
		b.MergeLine(b.LineCount() - 1)
	}
	if b.LineCount() != 1 || b.Line(0) != "" {
		t.Fatalf("expected single empty line, got %q", b.Lines())
	}
}

func TestBuffer_MergeLineOutOfRangePanics(t *testing.T) {
	for _, idx := range []int{0, -1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic merging line %d", idx)
				}
			}()
			FromLines([]string{"a", "b"}).MergeLine(idx)
		}()
	}
}

func TestBuffer_String(t *testing.T) {
	b := FromLines([]string{"one", "two", "three"})
	if got := b.String(); got != "one\ntwo\nthree" {
		t.Fatalf("unexpected join: %q", got)
	}
}
