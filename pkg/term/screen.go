// Package term adapts a tcell screen to the editor drawing surface.
package term

import (
	"example.com/paneedit/pkg/config"
	"example.com/paneedit/pkg/editor"
	"github.com/gdamore/tcell/v2"
)

// Screen draws editor styles onto a tcell.Screen using a theme. It works
// the same over a real terminal and tcell's simulation screen.
type Screen struct {
	s      tcell.Screen
	styles map[editor.Style]tcell.Style
}

var _ editor.Surface = (*Screen)(nil)

// New wraps s, resolving each editor style from theme.
func New(s tcell.Screen, theme config.Theme) *Screen {
	return &Screen{s: s, styles: Styles(theme)}
}

// Styles returns the tcell style for every editor style under theme.
func Styles(theme config.Theme) map[editor.Style]tcell.Style {
	text := tcell.StyleDefault.Foreground(theme.TextForeground).Background(theme.TextBackground)
	gutter := tcell.StyleDefault.Foreground(theme.GutterForeground)
	return map[editor.Style]tcell.Style{
		editor.StyleNormal:         text,
		editor.StyleHeader:         tcell.StyleDefault.Foreground(theme.HeaderForeground).Background(theme.HeaderBackground),
		editor.StyleGutter:         gutter.Background(theme.GutterBackground),
		editor.StyleGutterScrolled: gutter.Background(theme.GutterScrolledBackground),
	}
}

// Style returns the tcell style used for st.
func (t *Screen) Style(st editor.Style) tcell.Style {
	if s, ok := t.styles[st]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Clear blanks width cells starting at (x, y).
func (t *Screen) Clear(x, y, width int, st editor.Style) {
	style := t.Style(st)
	for i := 0; i < width; i++ {
		t.s.SetContent(x+i, y, ' ', nil, style)
	}
}

// Write draws text one rune per cell starting at (x, y).
func (t *Screen) Write(x, y int, text string, st editor.Style) {
	style := t.Style(st)
	i := 0
	for _, r := range text {
		t.s.SetContent(x+i, y, r, nil, style)
		i++
	}
}

// ShowCursor places the terminal caret at (x, y).
func (t *Screen) ShowCursor(x, y int) {
	t.s.ShowCursor(x, y)
}

// WriteDefault draws text in the terminal's default style. The workspace
// uses it for messages outside any editor.
func (t *Screen) WriteDefault(x, y int, text string) {
	i := 0
	for _, r := range text {
		t.s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
		i++
	}
}
