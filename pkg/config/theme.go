package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors behind each editor draw style.
type Theme struct {
	TextForeground tcell.Color
	TextBackground tcell.Color

	// Header band across the top of every editor.
	HeaderForeground tcell.Color
	HeaderBackground tcell.Color

	// Line-number gutter. GutterScrolledBackground replaces
	// GutterBackground while a view is scrolled horizontally.
	GutterForeground         tcell.Color
	GutterBackground         tcell.Color
	GutterScrolledBackground tcell.Color
}

// DefaultTheme returns the built-in theme: black on silver chrome with a
// red gutter when scrolled.
func DefaultTheme() Theme {
	return Theme{
		TextForeground: tcell.ColorDefault,
		TextBackground: tcell.ColorDefault,

		HeaderForeground: tcell.ColorBlack,
		HeaderBackground: tcell.ColorSilver,

		GutterForeground:         tcell.ColorBlack,
		GutterBackground:         tcell.ColorSilver,
		GutterScrolledBackground: tcell.ColorRed,
	}
}

// TerminalTheme sticks to the ANSI palette so the editor follows the
// user's terminal colors.
func TerminalTheme() Theme {
	return Theme{
		TextForeground: tcell.ColorDefault,
		TextBackground: tcell.ColorDefault,

		HeaderForeground: tcell.ColorDefault,
		HeaderBackground: tcell.ColorGray,

		GutterForeground:         tcell.ColorDefault,
		GutterBackground:         tcell.ColorGray,
		GutterScrolledBackground: tcell.ColorMaroon,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
	"dark": {
		TextForeground: tcell.ColorWhite,
		TextBackground: tcell.ColorBlack,

		HeaderForeground: tcell.ColorWhite,
		HeaderBackground: tcell.ColorGray,

		GutterForeground:         tcell.ColorSilver,
		GutterBackground:         tcell.ColorDarkSlateGray,
		GutterScrolledBackground: tcell.ColorDarkRed,
	},
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// Colors holds optional per-field overrides from the config file.
type Colors struct {
	HeaderFG         string `toml:"header_fg"`
	HeaderBG         string `toml:"header_bg"`
	GutterFG         string `toml:"gutter_fg"`
	GutterBG         string `toml:"gutter_bg"`
	GutterScrolledBG string `toml:"gutter_scrolled_bg"`
	TextFG           string `toml:"text_fg"`
	TextBG           string `toml:"text_bg"`
}

// Apply returns t with every non-empty override in c applied.
func (c Colors) Apply(t Theme) Theme {
	t.HeaderForeground = ParseColor(c.HeaderFG, t.HeaderForeground)
	t.HeaderBackground = ParseColor(c.HeaderBG, t.HeaderBackground)
	t.GutterForeground = ParseColor(c.GutterFG, t.GutterForeground)
	t.GutterBackground = ParseColor(c.GutterBG, t.GutterBackground)
	t.GutterScrolledBackground = ParseColor(c.GutterScrolledBG, t.GutterScrolledBackground)
	t.TextForeground = ParseColor(c.TextFG, t.TextForeground)
	t.TextBackground = ParseColor(c.TextBG, t.TextBackground)
	return t
}
