package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// ImportTheme reads a theme file in a known format and converts it to Theme.
// Supported:
// - Base16 YAML (keys base00..base0F)
// - Alacritty YAML (colors.primary/normal/bright)
func ImportTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", filepath.Base(path), err)
	}
	switch {
	case doc["base00"] != nil:
		return importBase16(doc), nil
	case doc["colors"] != nil:
		var a alacrittyDoc
		if err := yaml.Unmarshal(data, &a); err != nil {
			return Theme{}, fmt.Errorf("parse theme %s: %w", filepath.Base(path), err)
		}
		return importAlacritty(a), nil
	default:
		return Theme{}, errors.New("unrecognized theme format: " + filepath.Base(path))
	}
}

func parseHexToColor(v string, fallback tcell.Color) tcell.Color {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") {
		v = v[1:]
	} else if strings.HasPrefix(strings.ToLower(v), "0x") {
		v = v[2:]
	}
	if len(v) != 6 {
		return fallback
	}
	return ParseColor("#"+strings.ToLower(v), fallback)
}

// importBase16 maps a Base16 scheme: base00 background, base05 foreground,
// base01/base02 chrome, base08 (red) for the scrolled gutter.
func importBase16(doc map[string]any) Theme {
	get := func(key string, fallback tcell.Color) tcell.Color {
		v, ok := doc[key]
		if !ok || v == nil {
			return fallback
		}
		return parseHexToColor(fmt.Sprint(v), fallback)
	}
	th := DefaultTheme()
	th.TextBackground = get("base00", th.TextBackground)
	th.TextForeground = get("base05", th.TextForeground)
	th.HeaderBackground = get("base02", th.HeaderBackground)
	th.HeaderForeground = get("base06", th.HeaderForeground)
	th.GutterBackground = get("base01", th.GutterBackground)
	th.GutterForeground = get("base04", th.GutterForeground)
	th.GutterScrolledBackground = get("base08", th.GutterScrolledBackground)
	return th
}

type alacrittyDoc struct {
	Colors struct {
		Primary struct {
			Background string `yaml:"background"`
			Foreground string `yaml:"foreground"`
		} `yaml:"primary"`
		Normal struct {
			Black string `yaml:"black"`
			Red   string `yaml:"red"`
			White string `yaml:"white"`
		} `yaml:"normal"`
		Bright struct {
			Black string `yaml:"black"`
			White string `yaml:"white"`
		} `yaml:"bright"`
	} `yaml:"colors"`
}

func importAlacritty(a alacrittyDoc) Theme {
	c := a.Colors
	th := DefaultTheme()
	th.TextBackground = parseHexToColor(c.Primary.Background, th.TextBackground)
	th.TextForeground = parseHexToColor(c.Primary.Foreground, th.TextForeground)
	th.HeaderBackground = parseHexToColor(c.Bright.Black, th.HeaderBackground)
	th.HeaderForeground = parseHexToColor(c.Bright.White, th.HeaderForeground)
	th.GutterBackground = parseHexToColor(c.Normal.Black, th.GutterBackground)
	th.GutterForeground = parseHexToColor(c.Normal.White, th.GutterForeground)
	th.GutterScrolledBackground = parseHexToColor(c.Normal.Red, th.GutterScrolledBackground)
	return th
}
