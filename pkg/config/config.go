package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values.
type Config struct {
	TabWidth  int               `toml:"tab_width"`
	ThemeName string            `toml:"theme"`
	ThemeFile string            `toml:"theme_file"`
	Bindings  map[string]string `toml:"keymap"`
	Colors    Colors            `toml:"colors"`

	Keymap map[string]Keybinding `toml:"-"`
	Theme  Theme                 `toml:"-"`
}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{
		TabWidth:  4,
		ThemeName: "default",
		Keymap:    DefaultKeymap(),
		Theme:     DefaultTheme(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit":  mustParse("Ctrl+Q"),
		"new":   mustParse("Ctrl+N"),
		"open":  mustParse("Ctrl+O"),
		"close": mustParse("Ctrl+W"),
	}
}

// Load loads configuration from the provided TOML file. If the file does
// not exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.resolve(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault attempts to read ~/.paneedit/config.toml.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(home, ".paneedit", "config.toml"))
}

// resolve validates the decoded values and derives Keymap and Theme from
// them. Relative theme files are looked up next to the config file.
func (c *Config) resolve(dir string) error {
	var errs []error
	if c.TabWidth < 1 || c.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("tab_width=%d must be between 1 and 16", c.TabWidth))
	}

	theme, ok := BuiltinThemes[c.ThemeName]
	if !ok {
		errs = append(errs, fmt.Errorf("theme=%q is not a builtin theme", c.ThemeName))
	}
	if c.ThemeFile != "" {
		path := c.ThemeFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		imported, err := ImportTheme(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme_file: %w", err))
		} else {
			theme = imported
		}
	}
	c.Theme = c.Colors.Apply(theme)

	for cmd, binding := range c.Bindings {
		if _, known := c.Keymap[cmd]; !known {
			errs = append(errs, fmt.Errorf("keymap: unknown command %q", cmd))
			continue
		}
		kb, err := ParseKeybinding(binding)
		if err != nil {
			errs = append(errs, fmt.Errorf("keymap.%s: %w", cmd, err))
			continue
		}
		c.Keymap[cmd] = kb
	}
	return errors.Join(errs...)
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Currently only Ctrl+<letter> is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl && k.Rune >= 'a' && k.Rune <= 'z' {
		// Terminals report Ctrl+<letter> as the control key code.
		if ev.Key() == tcell.KeyCtrlA+tcell.Key(k.Rune-'a') {
			return true
		}
	}
	return false
}
